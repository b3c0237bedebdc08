// README: Renders the human-readable quote summary sent over chat/email.
package message

import (
	"fmt"
	"strings"

	"cabdesk/internal/modules/estimate"
	"cabdesk/internal/modules/quote"
	"cabdesk/internal/modules/tariff"
)

// Compose renders the itemized estimate into plain text the operator can
// forward as-is. Zero-valued components that apply to the category are
// still listed so the customer sees the full breakdown.
func Compose(req quote.QuoteRequest, q quote.Quote, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Trip Estimate (%s)\n", vehicleLabel(req.Vehicle))
	if req.Origin != "" {
		fmt.Fprintf(&b, "From: %s\n", req.Origin)
	}
	if req.Destination != "" {
		fmt.Fprintf(&b, "To: %s\n", req.Destination)
	}

	est := q.Estimate
	switch req.Category {
	case estimate.CategoryRental:
		amount(&b, "Package price", est.PackagePrice, currency)
	case estimate.CategoryOutstation:
		fmt.Fprintf(&b, "Billed distance: %.1f km\n", est.ChargeableKm)
		if req.SubType != estimate.RoundTrip {
			amount(&b, "Base rate", est.BaseFare, currency)
		}
		amount(&b, "Distance charge", est.KmCost, currency)
		amount(&b, "Driver allowance", est.DriverCost, currency)
		if req.SubType == estimate.RoundTrip {
			amount(&b, "Night allowance", est.NightCost, currency)
		}
	default:
		fmt.Fprintf(&b, "Distance: %.1f km\n", q.DistanceKm)
		amount(&b, "Base fare", est.BaseFare, currency)
		amount(&b, "Extra km charge", est.ExtraKmCost, currency)
		amount(&b, "Waiting charge", est.WaitingCost, currency)
	}

	amount(&b, "Total", est.Total, currency)

	if q.Source == quote.SourceManual && q.DistanceKm > 0 {
		b.WriteString("(distance entered manually, not verified)\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func amount(b *strings.Builder, label string, v float64, currency string) {
	fmt.Fprintf(b, "%s: %s %.0f\n", label, currency, v)
}

func vehicleLabel(v tariff.VehicleClass) string {
	if v == tariff.VehicleSUV {
		return "SUV"
	}
	return "Sedan"
}
