// README: Trip request and itemized estimate result definitions.
package estimate

import "cabdesk/internal/modules/tariff"

type TripCategory string

const (
	CategoryLocal      TripCategory = "local"
	CategoryRental     TripCategory = "rental"
	CategoryOutstation TripCategory = "outstation"
)

type OutstationSubType string

const (
	OneWay    OutstationSubType = "one_way"
	RoundTrip OutstationSubType = "round_trip"
)

// TripRequest carries one trip's measured quantities. Only the fields for
// the request's category are read; the rest are ignored.
type TripRequest struct {
	Category TripCategory
	SubType  OutstationSubType // outstation only
	Vehicle  tariff.VehicleClass

	// Local
	EstimatedKm    float64
	WaitingMinutes float64

	// Rental
	PackageID string

	// Outstation. TotalKm is already doubled by the caller for round trips;
	// the calculator never doubles distance itself.
	TotalKm float64
	Days    int
	Nights  int
}

// EstimateResult is the itemized cost breakdown. Every component and the
// total are non-negative and never NaN. Components that do not apply to the
// request's category stay zero.
type EstimateResult struct {
	BaseFare     float64 `json:"baseFare"`
	ExtraKmCost  float64 `json:"extraKmCost"`
	WaitingCost  float64 `json:"waitingCost"`
	PackagePrice float64 `json:"packagePrice"`
	KmCost       float64 `json:"kmCost"`
	DriverCost   float64 `json:"driverCost"`
	NightCost    float64 `json:"nightCost"`

	// ChargeableKm is the billed distance after the per-day minimum floor
	// (outstation round trips only).
	ChargeableKm float64 `json:"chargeableKm"`

	Total float64 `json:"total"`
}
