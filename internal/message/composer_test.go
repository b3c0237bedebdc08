package message

import (
	"strings"
	"testing"

	"cabdesk/internal/modules/estimate"
	"cabdesk/internal/modules/quote"
	"cabdesk/internal/modules/tariff"
)

func TestCompose_LocalItemized(t *testing.T) {
	req := quote.QuoteRequest{
		Category:    estimate.CategoryLocal,
		Vehicle:     tariff.VehicleSedan,
		Origin:      "Station Rd",
		Destination: "Airport",
	}
	q := quote.Quote{
		Estimate: estimate.EstimateResult{
			BaseFare:    200,
			ExtraKmCost: 140,
			WaitingCost: 20,
			Total:       360,
		},
		DistanceKm: 12,
		Source:     quote.SourceMeasured,
	}

	got := Compose(req, q, "INR")
	for _, want := range []string{
		"Sedan",
		"From: Station Rd",
		"To: Airport",
		"Base fare: INR 200",
		"Extra km charge: INR 140",
		"Waiting charge: INR 20",
		"Total: INR 360",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "manually") {
		t.Errorf("measured distance should not carry the manual note:\n%s", got)
	}
}

func TestCompose_OutstationRoundTrip(t *testing.T) {
	req := quote.QuoteRequest{
		Category: estimate.CategoryOutstation,
		SubType:  estimate.RoundTrip,
		Vehicle:  tariff.VehicleSUV,
	}
	q := quote.Quote{
		Estimate: estimate.EstimateResult{
			KmCost:       7800,
			DriverCost:   800,
			NightCost:    300,
			ChargeableKm: 600,
			Total:        8900,
		},
	}

	got := Compose(req, q, "INR")
	for _, want := range []string{
		"SUV",
		"Billed distance: 600.0 km",
		"Distance charge: INR 7800",
		"Driver allowance: INR 800",
		"Night allowance: INR 300",
		"Total: INR 8900",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestCompose_ManualDistanceNote(t *testing.T) {
	req := quote.QuoteRequest{
		Category: estimate.CategoryLocal,
		Vehicle:  tariff.VehicleSedan,
	}
	q := quote.Quote{
		Estimate:   estimate.EstimateResult{BaseFare: 200, Total: 200},
		DistanceKm: 9,
		Source:     quote.SourceManual,
	}
	got := Compose(req, q, "INR")
	if !strings.Contains(got, "manually") {
		t.Errorf("manual distance must be flagged:\n%s", got)
	}
}
