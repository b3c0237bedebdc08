// README: Tariff scope keys, per-vehicle pricing rules and rental package catalog.
package tariff

// VehicleClass selects which rate column applies to a trip.
type VehicleClass string

const (
	VehicleSedan VehicleClass = "sedan"
	VehicleSUV   VehicleClass = "suv"
)

// AllVehicleClasses lists every class a resolved RuleSet must cover.
var AllVehicleClasses = []VehicleClass{VehicleSedan, VehicleSUV}

// GlobalBranch is the reserved branch name meaning "all branches of this
// owner unless overridden".
const GlobalBranch = "Global"

// ScopeKey identifies where a rule set or package catalog is stored.
// At most one of each artifact exists per key.
type ScopeKey struct {
	OwnerID string
	Branch  string
}

func (k ScopeKey) IsGlobal() bool {
	return k.Branch == GlobalBranch
}

// Global returns the owner-wide scope for the same owner.
func (k ScopeKey) Global() ScopeKey {
	return ScopeKey{OwnerID: k.OwnerID, Branch: GlobalBranch}
}

// PricingRules holds every rate used by the estimate calculator for one
// vehicle class. A missing field decodes to 0, never to an error.
type PricingRules struct {
	LocalBaseFare    float64 `json:"localBaseFare"`
	LocalBaseKm      float64 `json:"localBaseKm"`
	LocalPerKmRate   float64 `json:"localPerKmRate"`
	LocalWaitingRate float64 `json:"localWaitingRate"`

	RentalExtraKmRate float64 `json:"rentalExtraKmRate"`
	RentalExtraHrRate float64 `json:"rentalExtraHrRate"`

	OutstationMinKmPerDay     float64 `json:"outstationMinKmPerDay"`
	OutstationBaseRateOneWay  float64 `json:"outstationBaseRateOneWay"`
	OutstationExtraKmRate     float64 `json:"outstationExtraKmRate"`
	OutstationDriverAllowance float64 `json:"outstationDriverAllowance"`
	OutstationNightAllowance  float64 `json:"outstationNightAllowance"`
}

// RuleSet maps every vehicle class to its rules.
type RuleSet map[VehicleClass]PricingRules

// RentalPackage is one catalog entry. Order of the catalog is
// display-relevant only.
type RentalPackage struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Hours      float64 `json:"hours"`
	Km         float64 `json:"km"`
	PriceSedan float64 `json:"priceSedan"`
	PriceSUV   float64 `json:"priceSuv"`
}

// PriceFor returns the flat package price for the given class.
func (p RentalPackage) PriceFor(class VehicleClass) float64 {
	if class == VehicleSUV {
		return p.PriceSUV
	}
	return p.PriceSedan
}

// DefaultRules is the compiled-in rate card used for owners that have
// configured nothing at any scope.
func DefaultRules() RuleSet {
	return RuleSet{
		VehicleSedan: {
			LocalBaseFare:             200,
			LocalBaseKm:               5,
			LocalPerKmRate:            20,
			LocalWaitingRate:          2,
			RentalExtraKmRate:         12,
			RentalExtraHrRate:         100,
			OutstationMinKmPerDay:     300,
			OutstationBaseRateOneWay:  0,
			OutstationExtraKmRate:     13,
			OutstationDriverAllowance: 400,
			OutstationNightAllowance:  300,
		},
		VehicleSUV: {
			LocalBaseFare:             300,
			LocalBaseKm:               5,
			LocalPerKmRate:            25,
			LocalWaitingRate:          3,
			RentalExtraKmRate:         15,
			RentalExtraHrRate:         120,
			OutstationMinKmPerDay:     300,
			OutstationBaseRateOneWay:  0,
			OutstationExtraKmRate:     16,
			OutstationDriverAllowance: 500,
			OutstationNightAllowance:  300,
		},
	}
}

// DefaultPackages is the compiled-in rental catalog for unconfigured owners.
func DefaultPackages() []RentalPackage {
	return []RentalPackage{
		{ID: "pkg_4h40", Name: "4hr / 40km", Hours: 4, Km: 40, PriceSedan: 1200, PriceSUV: 1600},
		{ID: "pkg_8h80", Name: "8hr / 80km", Hours: 8, Km: 80, PriceSedan: 2200, PriceSUV: 2900},
		{ID: "pkg_12h120", Name: "12hr / 120km", Hours: 12, Km: 120, PriceSedan: 3000, PriceSUV: 3900},
	}
}
