package scoring

import (
	"fmt"
	"math"

	"github.com/hydrojetpros/bidscout/internal/profile"
	"github.com/hydrojetpros/bidscout/internal/rfp"
)

// Equipment scores machinery thresholds: PSI 40 points (proportional credit
// capped at 20 when under), hot water 30, water recovery 20, aerial lift 10.
// With no stated requirements the score rewards baseline equipment instead.
func Equipment(required rfp.Equipment, actual profile.Equipment) Result {
	if required.Empty() {
		return Result{Score: baselineEquipment(actual)}
	}

	total := 0.0
	earned := 0.0
	var unmatched []string

	if required.MinPSI != nil {
		total += 40
		maxPSI := actual.MaxPSI()
		switch {
		case maxPSI >= *required.MinPSI:
			earned += 40
		case maxPSI > 0:
			earned += math.Min(20, float64(maxPSI)/float64(*required.MinPSI)*40)
			unmatched = append(unmatched, fmt.Sprintf("%d PSI minimum (best rig: %d PSI)", *required.MinPSI, maxPSI))
		default:
			unmatched = append(unmatched, fmt.Sprintf("%d PSI minimum", *required.MinPSI))
		}
	}

	if required.HotWater != nil {
		total += 30
		capable := actual.HotWater != nil && actual.HotWater.Capable != nil && *actual.HotWater.Capable
		if capable == *required.HotWater {
			earned += 30
		} else if *required.HotWater {
			unmatched = append(unmatched, "Hot water capability")
		}
	}

	if required.WaterRecovery != nil {
		total += 20
		has := actual.WaterRecovery != nil && *actual.WaterRecovery
		if has == *required.WaterRecovery {
			earned += 20
		} else if *required.WaterRecovery {
			unmatched = append(unmatched, "Water recovery system")
		}
	}

	if required.AerialLift != nil {
		total += 10
		has := actual.AerialLift != nil && *actual.AerialLift
		if has == *required.AerialLift {
			earned += 10
		} else if *required.AerialLift {
			unmatched = append(unmatched, "Aerial lift")
		}
	}

	return Result{Score: earned / total * 100, Unmatched: unmatched}
}

func baselineEquipment(actual profile.Equipment) float64 {
	earned := 0.0
	hotCapable := actual.HotWater != nil && actual.HotWater.Capable != nil && *actual.HotWater.Capable
	coldCapable := actual.ColdWater != nil && actual.ColdWater.Capable != nil && *actual.ColdWater.Capable
	if hotCapable || coldCapable {
		earned += 40
	}
	if actual.NumberOfTrucks > 0 {
		earned += 30
	}
	if actual.SurfaceCleaners != nil && *actual.SurfaceCleaners {
		earned += 15
	}
	if actual.ChemicalSystem != nil && *actual.ChemicalSystem {
		earned += 15
	}
	return earned
}
