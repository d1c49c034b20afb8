package scoring

import (
	"fmt"

	"github.com/hydrojetpros/bidscout/internal/geo"
	"github.com/hydrojetpros/bidscout/internal/profile"
	"github.com/hydrojetpros/bidscout/internal/rfp"
)

// scoreUnresolvable is the geographic score when neither pass nor fail can
// be established. An address we cannot resolve is genuinely ambiguous, which
// is different from a verified violation.
const scoreUnresolvable = 50

// Geographic scores the place-of-performance requirement. No stated location
// or no configured service radius scores 100; a resolvable distance is a
// hard pass/fail against the radius (boundary inclusive); an unresolvable
// distance scores 50.
func Geographic(required rfp.Location, p *profile.CompanyProfile) Result {
	if required.Empty() {
		return vacuous()
	}

	radius := p.Basics.ServiceRadius
	if radius <= 0 {
		return vacuous()
	}

	rfpLocation := required.Zip
	if rfpLocation == "" {
		state := required.State
		if state == "" {
			state = "CA"
		}
		rfpLocation = fmt.Sprintf("%s, %s", required.City, state)
	}

	if geo.WithinRadius(p.Location(), rfpLocation, radius) {
		return Result{Score: 100}
	}

	distance, ok := geo.Distance(p.Location(), rfpLocation)
	if !ok {
		return Result{Score: scoreUnresolvable}
	}

	return Result{
		Score: 0,
		Unmatched: []string{fmt.Sprintf("Location outside service radius (%s, max: %.0f miles)",
			geo.FormatDistance(distance), radius)},
	}
}
