package scoring

import (
	"github.com/hydrojetpros/bidscout/internal/profile"
	"github.com/hydrojetpros/bidscout/internal/rfp"
)

// Operational scores scheduling and response demands: night work 30 points,
// weekend work 30, emergency response 40 (20 for having any emergency
// capability, 20 more for meeting the stated response time, or 10 for a
// response time of four hours or better when none is stated).
func Operational(required rfp.Operational, actual profile.Operational) Result {
	if required.Empty() {
		return vacuous()
	}

	total := 0.0
	earned := 0.0
	var unmatched []string

	if required.NightWork != nil {
		total += 30
		works := actual.NightWork != nil && *actual.NightWork
		if works == *required.NightWork {
			earned += 30
		} else if *required.NightWork {
			unmatched = append(unmatched, "Night work availability")
		}
	}

	if required.WeekendWork != nil {
		total += 30
		works := actual.WeekendWork != nil && *actual.WeekendWork
		if works == *required.WeekendWork {
			earned += 30
		} else if *required.WeekendWork {
			unmatched = append(unmatched, "Weekend work availability")
		}
	}

	if required.EmergencyResponse != nil {
		total += 40
		switch {
		case !*required.EmergencyResponse:
			earned += 40
		case actual.EmergencyResponseTime != nil:
			earned += 20
			if required.MaxResponseTime != nil && *actual.EmergencyResponseTime <= *required.MaxResponseTime {
				earned += 20
			} else if *actual.EmergencyResponseTime <= 4 {
				earned += 10
			}
		default:
			unmatched = append(unmatched, "Emergency response capability")
		}
	}

	return Result{Score: earned / total * 100, Unmatched: unmatched}
}
