// README: Tariff resolver implements the branch → owner-global → default fallback chain.
package tariff

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
)

// Resolver resolves the effective pricing rules and rental catalog for a
// scope. Reads never fail on data-shape problems: a missing or malformed
// stored value falls through the chain, ending at the compiled defaults.
type Resolver struct {
	store Store
}

func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// ResolvePricing returns the effective rules for every vehicle class at the
// given scope. The result is always complete: a stored set missing a whole
// class gets that class from the compiled defaults, but a stored class entry
// is always used whole, never merged field-by-field with a parent scope.
func (r *Resolver) ResolvePricing(ctx context.Context, ownerID, branch string) RuleSet {
	scope := ScopeKey{OwnerID: ownerID, Branch: branch}
	if rs, ok := r.loadRules(ctx, scope); ok {
		return completeRules(rs)
	}
	if !scope.IsGlobal() {
		if rs, ok := r.loadRules(ctx, scope.Global()); ok {
			return completeRules(rs)
		}
	}
	return DefaultRules()
}

// ResolvePackages returns the effective rental catalog at the given scope,
// walking the same fallback chain as ResolvePricing.
func (r *Resolver) ResolvePackages(ctx context.Context, ownerID, branch string) []RentalPackage {
	scope := ScopeKey{OwnerID: ownerID, Branch: branch}
	if pkgs, ok := r.loadPackages(ctx, scope); ok {
		return pkgs
	}
	if !scope.IsGlobal() {
		if pkgs, ok := r.loadPackages(ctx, scope.Global()); ok {
			return pkgs
		}
	}
	return DefaultPackages()
}

// SaveConfig writes both artifacts at exactly the given scope. It never
// touches the Global scope implicitly and never merges with a fallback
// value. Store write failures propagate to the caller.
func (r *Resolver) SaveConfig(ctx context.Context, ownerID, branch string, rules RuleSet, packages []RentalPackage) error {
	scope := ScopeKey{OwnerID: ownerID, Branch: branch}

	rulesJSON, err := json.Marshal(sanitizeRules(rules))
	if err != nil {
		return fmt.Errorf("encode pricing rules: %w", err)
	}
	if err := r.store.Set(ctx, storeKey(kindPricing, scope), rulesJSON); err != nil {
		return fmt.Errorf("save pricing rules: %w", err)
	}

	if packages == nil {
		packages = []RentalPackage{}
	}
	pkgJSON, err := json.Marshal(packages)
	if err != nil {
		return fmt.Errorf("encode rental packages: %w", err)
	}
	if err := r.store.Set(ctx, storeKey(kindPackages, scope), pkgJSON); err != nil {
		return fmt.Errorf("save rental packages: %w", err)
	}
	return nil
}

func (r *Resolver) loadRules(ctx context.Context, scope ScopeKey) (RuleSet, bool) {
	raw, err := r.store.Get(ctx, storeKey(kindPricing, scope))
	if err != nil {
		return nil, false
	}
	var rs RuleSet
	if err := json.Unmarshal(raw, &rs); err != nil {
		return nil, false
	}
	if len(rs) == 0 {
		return nil, false
	}
	return rs, true
}

func (r *Resolver) loadPackages(ctx context.Context, scope ScopeKey) ([]RentalPackage, bool) {
	raw, err := r.store.Get(ctx, storeKey(kindPackages, scope))
	if err != nil {
		return nil, false
	}
	var pkgs []RentalPackage
	if err := json.Unmarshal(raw, &pkgs); err != nil {
		return nil, false
	}
	if len(pkgs) == 0 {
		return nil, false
	}
	return pkgs, true
}

// completeRules fills classes absent from a stored set with the compiled
// defaults for that class. Present classes are kept as stored.
func completeRules(rs RuleSet) RuleSet {
	defaults := DefaultRules()
	out := make(RuleSet, len(AllVehicleClasses))
	for _, class := range AllVehicleClasses {
		if rules, ok := rs[class]; ok {
			out[class] = clampRules(rules)
			continue
		}
		out[class] = defaults[class]
	}
	return out
}

func sanitizeRules(rs RuleSet) RuleSet {
	out := make(RuleSet, len(rs))
	for class, rules := range rs {
		out[class] = clampRules(rules)
	}
	return out
}

// clampRules coerces negative or NaN rates to 0 so broken input never
// reaches arithmetic.
func clampRules(r PricingRules) PricingRules {
	r.LocalBaseFare = nonNeg(r.LocalBaseFare)
	r.LocalBaseKm = nonNeg(r.LocalBaseKm)
	r.LocalPerKmRate = nonNeg(r.LocalPerKmRate)
	r.LocalWaitingRate = nonNeg(r.LocalWaitingRate)
	r.RentalExtraKmRate = nonNeg(r.RentalExtraKmRate)
	r.RentalExtraHrRate = nonNeg(r.RentalExtraHrRate)
	r.OutstationMinKmPerDay = nonNeg(r.OutstationMinKmPerDay)
	r.OutstationBaseRateOneWay = nonNeg(r.OutstationBaseRateOneWay)
	r.OutstationExtraKmRate = nonNeg(r.OutstationExtraKmRate)
	r.OutstationDriverAllowance = nonNeg(r.OutstationDriverAllowance)
	r.OutstationNightAllowance = nonNeg(r.OutstationNightAllowance)
	return r
}

func nonNeg(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
