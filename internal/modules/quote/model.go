// README: Quote request/response shapes for the interactive estimation flow.
package quote

import (
	"cabdesk/internal/modules/estimate"
	"cabdesk/internal/modules/tariff"
)

// QuoteRequest is what a screen collects before asking for a price.
// Origin/Destination are optional; when both are set and the request is
// distance-based, the service consults the distance provider. ManualKm is
// the operator-typed fallback and, for round trips, is already the total
// both-ways distance.
type QuoteRequest struct {
	OwnerID string
	Branch  string

	Category estimate.TripCategory
	SubType  estimate.OutstationSubType
	Vehicle  tariff.VehicleClass

	Origin      string
	Destination string
	ManualKm    float64

	WaitingMinutes float64
	PackageID      string
	Days           int
	Nights         int
}

// DistanceSource says where the kilometers in a Quote came from.
type DistanceSource string

const (
	SourceMeasured DistanceSource = "measured"
	SourceManual   DistanceSource = "manual"
)

// Quote pairs the itemized estimate with the distance it was computed from
// and a non-fatal warning when the lookup degraded to manual entry.
type Quote struct {
	Estimate   estimate.EstimateResult `json:"estimate"`
	DistanceKm float64                 `json:"distanceKm"`
	Source     DistanceSource          `json:"distanceSource"`
	Warning    string                  `json:"warning,omitempty"`
}
