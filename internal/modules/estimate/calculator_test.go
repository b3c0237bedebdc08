// README: Fare calculator tests (itemized scenarios + input coercion).
package estimate

import (
	"math"
	"testing"

	"cabdesk/internal/modules/tariff"
)

func defaultPackages() []tariff.RentalPackage {
	return tariff.DefaultPackages()
}

func TestCalculate_Local(t *testing.T) {
	rules := tariff.DefaultRules()

	tests := []struct {
		name string
		req  TripRequest
		want EstimateResult
	}{
		{
			name: "12km with 10min waiting",
			req: TripRequest{
				Category:       CategoryLocal,
				Vehicle:        tariff.VehicleSedan,
				EstimatedKm:    12,
				WaitingMinutes: 10,
			},
			// base 200, extra (12-5)*20 = 140, waiting 10*2 = 20
			want: EstimateResult{BaseFare: 200, ExtraKmCost: 140, WaitingCost: 20, Total: 360},
		},
		{
			name: "within base km has no extra charge",
			req: TripRequest{
				Category:    CategoryLocal,
				Vehicle:     tariff.VehicleSedan,
				EstimatedKm: 5,
			},
			want: EstimateResult{BaseFare: 200, Total: 200},
		},
		{
			name: "zero distance still charges base fare",
			req: TripRequest{
				Category: CategoryLocal,
				Vehicle:  tariff.VehicleSedan,
			},
			want: EstimateResult{BaseFare: 200, Total: 200},
		},
		{
			name: "negative inputs coerce to zero",
			req: TripRequest{
				Category:       CategoryLocal,
				Vehicle:        tariff.VehicleSedan,
				EstimatedKm:    -20,
				WaitingMinutes: -5,
			},
			want: EstimateResult{BaseFare: 200, Total: 200},
		},
		{
			name: "suv uses suv rates",
			req: TripRequest{
				Category:    CategoryLocal,
				Vehicle:     tariff.VehicleSUV,
				EstimatedKm: 10,
			},
			// base 300, extra (10-5)*25 = 125
			want: EstimateResult{BaseFare: 300, ExtraKmCost: 125, Total: 425},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Calculate(tc.req, rules, nil)
			if got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestCalculate_Rental(t *testing.T) {
	rules := tariff.DefaultRules()
	pkgs := defaultPackages()

	got := Calculate(TripRequest{
		Category:  CategoryRental,
		Vehicle:   tariff.VehicleSedan,
		PackageID: "pkg_8h80",
	}, rules, pkgs)
	if got.Total != 2200 || got.PackagePrice != 2200 {
		t.Errorf("sedan 8h80 package: got %+v", got)
	}

	got = Calculate(TripRequest{
		Category:  CategoryRental,
		Vehicle:   tariff.VehicleSUV,
		PackageID: "pkg_8h80",
	}, rules, pkgs)
	if got.Total != 2900 {
		t.Errorf("suv 8h80 package: got total %v, want 2900", got.Total)
	}

	// Unknown package quotes zero; the caller blocks submission.
	got = Calculate(TripRequest{
		Category:  CategoryRental,
		Vehicle:   tariff.VehicleSedan,
		PackageID: "nope",
	}, rules, pkgs)
	if got.Total != 0 {
		t.Errorf("unknown package: got total %v, want 0", got.Total)
	}
}

// A rental price is flat: distance and time inputs must not change it.
func TestCalculate_RentalIgnoresTripInputs(t *testing.T) {
	rules := tariff.DefaultRules()
	pkgs := defaultPackages()

	base := Calculate(TripRequest{
		Category:  CategoryRental,
		Vehicle:   tariff.VehicleSedan,
		PackageID: "pkg_4h40",
	}, rules, pkgs)

	varied := Calculate(TripRequest{
		Category:       CategoryRental,
		Vehicle:        tariff.VehicleSedan,
		PackageID:      "pkg_4h40",
		EstimatedKm:    999,
		WaitingMinutes: 120,
		TotalKm:        999,
		Days:           9,
		Nights:         9,
	}, rules, pkgs)

	if base != varied {
		t.Errorf("rental result changed with trip inputs: %+v vs %+v", base, varied)
	}
}

func TestCalculate_OutstationRoundTrip(t *testing.T) {
	rules := tariff.DefaultRules()

	// minKm 300*2=600 > 500, so 600 chargeable at 13 = 7800;
	// driver 400*2 = 800; night 300*1 = 300.
	got := Calculate(TripRequest{
		Category: CategoryOutstation,
		SubType:  RoundTrip,
		Vehicle:  tariff.VehicleSedan,
		TotalKm:  500,
		Days:     2,
		Nights:   1,
	}, rules, nil)

	want := EstimateResult{KmCost: 7800, DriverCost: 800, NightCost: 300, ChargeableKm: 600, Total: 8900}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	// Above the floor the measured distance is billed.
	got = Calculate(TripRequest{
		Category: CategoryOutstation,
		SubType:  RoundTrip,
		Vehicle:  tariff.VehicleSedan,
		TotalKm:  800,
		Days:     2,
		Nights:   1,
	}, rules, nil)
	if got.ChargeableKm != 800 {
		t.Errorf("chargeable km: got %v, want 800", got.ChargeableKm)
	}
}

// Holding distance fixed, more days can only raise the minimum-commitment
// floor, never lower the billed distance.
func TestCalculate_ChargeableKmMonotonicInDays(t *testing.T) {
	rules := tariff.DefaultRules()

	prev := 0.0
	for days := 1; days <= 6; days++ {
		got := Calculate(TripRequest{
			Category: CategoryOutstation,
			SubType:  RoundTrip,
			Vehicle:  tariff.VehicleSedan,
			TotalKm:  700,
			Days:     days,
		}, rules, nil)
		if got.ChargeableKm < prev {
			t.Fatalf("chargeable km regressed at days=%d: %v < %v", days, got.ChargeableKm, prev)
		}
		prev = got.ChargeableKm
	}
}

func TestCalculate_OutstationOneWay(t *testing.T) {
	rules := tariff.DefaultRules()

	// Full distance chargeable from zero: 500*13 + driver 400 = 6900.
	got := Calculate(TripRequest{
		Category: CategoryOutstation,
		SubType:  OneWay,
		Vehicle:  tariff.VehicleSedan,
		TotalKm:  500,
		Days:     1,
	}, rules, nil)
	if got.Total != 6900 {
		t.Errorf("one-way total: got %v, want 6900", got.Total)
	}
	if got.NightCost != 0 {
		t.Errorf("one-way must not carry a night allowance, got %v", got.NightCost)
	}

	// The flat base rate adds on top when configured.
	withBase := tariff.RuleSet{
		tariff.VehicleSedan: {
			OutstationBaseRateOneWay:  1000,
			OutstationExtraKmRate:     13,
			OutstationDriverAllowance: 400,
		},
	}
	got = Calculate(TripRequest{
		Category: CategoryOutstation,
		SubType:  OneWay,
		Vehicle:  tariff.VehicleSedan,
		TotalKm:  500,
		Days:     1,
	}, withBase, nil)
	if got.Total != 7900 {
		t.Errorf("one-way with base rate: got %v, want 7900", got.Total)
	}
}

func TestCalculate_NeverNaNOrNegative(t *testing.T) {
	poisoned := tariff.RuleSet{
		tariff.VehicleSedan: {
			LocalBaseFare:  math.NaN(),
			LocalPerKmRate: -3,
		},
	}
	reqs := []TripRequest{
		{Category: CategoryLocal, Vehicle: tariff.VehicleSedan, EstimatedKm: math.NaN(), WaitingMinutes: -1},
		{Category: CategoryOutstation, SubType: RoundTrip, Vehicle: tariff.VehicleSedan, TotalKm: math.NaN(), Days: -2, Nights: -1},
		{Category: CategoryOutstation, SubType: OneWay, Vehicle: tariff.VehicleSedan, TotalKm: -10},
		{Category: CategoryRental, Vehicle: tariff.VehicleSedan, PackageID: "missing"},
	}
	for _, req := range reqs {
		got := Calculate(req, poisoned, nil)
		if math.IsNaN(got.Total) || got.Total < 0 {
			t.Errorf("%s: total is %v", req.Category, got.Total)
		}
	}
}
