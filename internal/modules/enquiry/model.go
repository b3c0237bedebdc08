// README: Enquiry record: one quote sent onward to a customer.
package enquiry

import (
	"time"

	"cabdesk/internal/modules/estimate"
	"cabdesk/internal/modules/tariff"
	"cabdesk/internal/types"
)

// Enquiry is the durable trace of a quote. The itemized float breakdown is
// transient by design; only the rounded amount and the rendered message are
// kept.
type Enquiry struct {
	ID       types.ID
	OwnerID  string
	Branch   string
	Customer string

	Category estimate.TripCategory
	SubType  estimate.OutstationSubType
	Vehicle  tariff.VehicleClass

	Origin      string
	Destination string
	DistanceKm  float64

	Quoted  types.Money
	Message string

	CreatedAt time.Time
}
