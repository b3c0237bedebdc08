// README: Quote service resolves tariffs, obtains distance and runs the calculator.
package quote

import (
	"context"
	"errors"

	"cabdesk/internal/maps"
	"cabdesk/internal/modules/estimate"
	"cabdesk/internal/modules/tariff"
)

// ConfigSource is the slice of the tariff resolver the quote flow needs.
type ConfigSource interface {
	ResolvePricing(ctx context.Context, ownerID, branch string) tariff.RuleSet
	ResolvePackages(ctx context.Context, ownerID, branch string) []tariff.RentalPackage
}

// DistanceProvider returns one-leg driving kilometers between two places.
// Implementations must distinguish maps.ErrDenied from transient failures.
type DistanceProvider interface {
	Distance(ctx context.Context, origin, destination string) (float64, error)
}

const (
	warnDenied        = "distance lookup denied (quota/billing); quote uses manually entered distance"
	warnUnavailable   = "distance service unavailable; quote uses manually entered distance"
	warnNotConfigured = "no distance provider configured; quote uses manually entered distance"
)

type Service struct {
	tariffs  ConfigSource
	distance DistanceProvider // nil when no maps key is configured
}

func NewService(tariffs ConfigSource, distance DistanceProvider) *Service {
	return &Service{tariffs: tariffs, distance: distance}
}

// Quote resolves the scope's config, determines the kilometers to bill and
// computes the itemized estimate. A failing distance lookup never fails the
// quote: it degrades to the manually entered distance and sets a warning so
// the operator knows the number is unverified.
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (Quote, error) {
	if req.OwnerID == "" {
		return Quote{}, ErrBadRequest
	}
	if req.Branch == "" {
		req.Branch = tariff.GlobalBranch
	}

	rules := s.tariffs.ResolvePricing(ctx, req.OwnerID, req.Branch)
	packages := s.tariffs.ResolvePackages(ctx, req.OwnerID, req.Branch)

	q := Quote{DistanceKm: req.ManualKm, Source: SourceManual}
	if s.wantsDistance(req) {
		km, err := s.lookupDistance(ctx, req)
		switch {
		case err == nil:
			q.DistanceKm = km
			q.Source = SourceMeasured
		case errors.Is(err, maps.ErrDenied):
			q.Warning = warnDenied
		case errors.Is(err, errNoProvider):
			q.Warning = warnNotConfigured
		default:
			q.Warning = warnUnavailable
		}
	}

	q.Estimate = estimate.Calculate(s.tripRequest(req, q.DistanceKm), rules, packages)
	return q, nil
}

var (
	ErrBadRequest = errors.New("bad quote request")

	errNoProvider = errors.New("no distance provider")
)

// wantsDistance reports whether the request is distance-based and carries a
// route to look up. Rental quotes are flat package prices and never need one.
func (s *Service) wantsDistance(req QuoteRequest) bool {
	if req.Category == estimate.CategoryRental {
		return false
	}
	return req.Origin != "" && req.Destination != ""
}

// lookupDistance fetches the one-leg distance and doubles it for round
// trips. The calculator never doubles; it has to happen here.
func (s *Service) lookupDistance(ctx context.Context, req QuoteRequest) (float64, error) {
	if s.distance == nil {
		return 0, errNoProvider
	}
	km, err := s.distance.Distance(ctx, req.Origin, req.Destination)
	if err != nil {
		return 0, err
	}
	if req.Category == estimate.CategoryOutstation && req.SubType == estimate.RoundTrip {
		km *= 2
	}
	return km, nil
}

func (s *Service) tripRequest(req QuoteRequest, km float64) estimate.TripRequest {
	return estimate.TripRequest{
		Category:       req.Category,
		SubType:        req.SubType,
		Vehicle:        req.Vehicle,
		EstimatedKm:    km,
		WaitingMinutes: req.WaitingMinutes,
		PackageID:      req.PackageID,
		TotalKm:        km,
		Days:           req.Days,
		Nights:         req.Nights,
	}
}
