package scoring

import (
	"math"

	"github.com/hydrojetpros/bidscout/internal/profile"
	"github.com/hydrojetpros/bidscout/internal/rfp"
)

// Insurance point weights. Only policies the RFP mentions contribute to the
// denominator.
const (
	glPoints           = 40
	glPartialCap       = 20
	workersCompPoints  = 30
	autoPoints         = 20
	autoPartialCap     = 10
	umbrellaPoints     = 5
	professionalPoints = 5
)

// Insurance scores coverage minimums with a weighted-point system. Being
// underinsured earns proportional credit capped at half the policy's weight;
// an RFP with no insurance language falls back to a flat heuristic rewarding
// baseline coverage.
func Insurance(required rfp.Insurance, actual profile.Insurance) Result {
	if required.Empty() {
		return Result{Score: baselineCoverage(actual)}
	}

	total := 0.0
	earned := 0.0

	if required.GeneralLiability != nil {
		total += glPoints
		earned += amountCredit(actual.GeneralLiability, *required.GeneralLiability, glPoints, glPartialCap)
	}

	if required.WorkersComp != nil {
		total += workersCompPoints
		covered := actual.WorkersComp != nil && actual.WorkersComp.Covered != nil && *actual.WorkersComp.Covered
		if covered == *required.WorkersComp {
			earned += workersCompPoints
		}
	}

	if required.CommercialAuto != nil {
		total += autoPoints
		earned += amountCredit(actual.CommercialAuto, *required.CommercialAuto, autoPoints, autoPartialCap)
	}

	if required.Umbrella != nil {
		total += umbrellaPoints
		if meetsAmount(actual.Umbrella, *required.Umbrella) {
			earned += umbrellaPoints
		}
	}

	if required.Professional != nil {
		total += professionalPoints
		if meetsAmount(actual.Professional, *required.Professional) {
			earned += professionalPoints
		}
	}

	return Result{Score: earned / total * 100}
}

// amountCredit gives full weight when the held amount meets the requirement
// and capped proportional credit when some coverage exists but falls short.
func amountCredit(held *profile.Policy, required, weight, cap float64) float64 {
	if held == nil || held.Amount <= 0 {
		return 0
	}
	if held.Amount >= required {
		return weight
	}
	return math.Min(cap, held.Amount/required*weight)
}

func meetsAmount(held *profile.Policy, required float64) bool {
	return held != nil && held.Amount > 0 && held.Amount >= required
}

// baselineCoverage rewards having the usual commercial policies when the RFP
// is silent on insurance: 50 for any general liability, 30 for workers comp,
// 20 for commercial auto.
func baselineCoverage(actual profile.Insurance) float64 {
	earned := 0.0
	if actual.GeneralLiability != nil && actual.GeneralLiability.Amount > 0 {
		earned += 50
	}
	if actual.WorkersComp != nil && actual.WorkersComp.Covered != nil && *actual.WorkersComp.Covered {
		earned += 30
	}
	if actual.CommercialAuto != nil && actual.CommercialAuto.Amount > 0 {
		earned += 20
	}
	return earned
}
