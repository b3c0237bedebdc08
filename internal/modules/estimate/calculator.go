// README: Pure fare calculator for local, rental and outstation trips.
package estimate

import (
	"math"

	"cabdesk/internal/modules/tariff"
)

// Calculate computes one itemized estimate. It is a pure function of its
// inputs: no I/O, no clock, no state. Malformed quantities (negative, NaN)
// are coerced to 0 before arithmetic so the result is never negative or NaN.
func Calculate(req TripRequest, rules tariff.RuleSet, packages []tariff.RentalPackage) EstimateResult {
	r := rules[req.Vehicle]

	switch req.Category {
	case CategoryRental:
		return calcRental(req, packages)
	case CategoryOutstation:
		if req.SubType == RoundTrip {
			return calcRoundTrip(req, r)
		}
		return calcOneWay(req, r)
	default:
		return calcLocal(req, r)
	}
}

func calcLocal(req TripRequest, r tariff.PricingRules) EstimateResult {
	km := nonNeg(req.EstimatedKm)
	waiting := nonNeg(req.WaitingMinutes)

	extraKm := km - nonNeg(r.LocalBaseKm)
	if extraKm < 0 {
		extraKm = 0
	}

	res := EstimateResult{
		BaseFare:    nonNeg(r.LocalBaseFare),
		ExtraKmCost: extraKm * nonNeg(r.LocalPerKmRate),
		WaitingCost: waiting * nonNeg(r.LocalWaitingRate),
	}
	res.Total = res.BaseFare + res.ExtraKmCost + res.WaitingCost
	return res
}

// calcRental ignores all distance and time inputs: a package price is flat.
// An unknown package id yields a zero total; blocking submission on that is
// the caller's job.
func calcRental(req TripRequest, packages []tariff.RentalPackage) EstimateResult {
	var res EstimateResult
	for _, p := range packages {
		if p.ID == req.PackageID {
			res.PackagePrice = nonNeg(p.PriceFor(req.Vehicle))
			break
		}
	}
	res.Total = res.PackagePrice
	return res
}

// calcRoundTrip bills at least the per-day minimum committed distance,
// regardless of the distance actually driven.
func calcRoundTrip(req TripRequest, r tariff.PricingRules) EstimateResult {
	km := nonNeg(req.TotalKm)
	days := atLeastOneDay(req.Days)
	nights := req.Nights
	if nights < 0 {
		nights = 0
	}

	minKm := nonNeg(r.OutstationMinKmPerDay) * float64(days)
	chargeable := math.Max(km, minKm)

	res := EstimateResult{
		KmCost:       chargeable * nonNeg(r.OutstationExtraKmRate),
		DriverCost:   nonNeg(r.OutstationDriverAllowance) * float64(days),
		NightCost:    nonNeg(r.OutstationNightAllowance) * float64(nights),
		ChargeableKm: chargeable,
	}
	res.Total = res.KmCost + res.DriverCost + res.NightCost
	return res
}

// calcOneWay charges the full distance from zero on top of the flat one-way
// base rate. One-way trips never include an overnight driver stay, so no
// night allowance applies.
func calcOneWay(req TripRequest, r tariff.PricingRules) EstimateResult {
	km := nonNeg(req.TotalKm)
	days := atLeastOneDay(req.Days)

	res := EstimateResult{
		BaseFare:     nonNeg(r.OutstationBaseRateOneWay),
		KmCost:       km * nonNeg(r.OutstationExtraKmRate),
		DriverCost:   nonNeg(r.OutstationDriverAllowance) * float64(days),
		ChargeableKm: km,
	}
	res.Total = res.BaseFare + res.KmCost + res.DriverCost
	return res
}

func atLeastOneDay(days int) int {
	if days < 1 {
		return 1
	}
	return days
}

func nonNeg(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
