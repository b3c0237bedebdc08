package maps

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// ErrDenied means the maps account rejected the request (quota exhausted or
// billing disabled). Callers must surface this as a degraded-mode warning
// and keep accepting manually entered kilometers.
var ErrDenied = errors.New("distance lookup denied")

// ErrUnavailable covers transient failures (network, no route). Retryable;
// the distance field is left for manual entry.
var ErrUnavailable = errors.New("distance lookup unavailable")

// DistanceService resolves driving distance between two places via the
// Google Maps Directions API.
type DistanceService struct {
	client *maps.Client
}

// NewDistanceService creates a DistanceService with the given API key.
func NewDistanceService(apiKey string) (*DistanceService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &DistanceService{client: client}, nil
}

// Distance returns the one-leg driving distance in kilometers. It never
// doubles for round trips; that is the caller's responsibility.
func (s *DistanceService) Distance(ctx context.Context, origin, destination string) (float64, error) {
	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		if isDenied(err) {
			return 0, fmt.Errorf("%w: %v", ErrDenied, err)
		}
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return 0, fmt.Errorf("%w: no route found", ErrUnavailable)
	}

	meters := 0
	for _, leg := range routes[0].Legs {
		meters += leg.Distance.Meters
	}
	return float64(meters) / 1000.0, nil
}

// isDenied classifies quota/billing rejections by the API status embedded in
// the client error.
func isDenied(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "OVER_QUERY_LIMIT") ||
		strings.Contains(msg, "OVER_DAILY_LIMIT") ||
		strings.Contains(msg, "REQUEST_DENIED")
}
