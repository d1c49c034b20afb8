package scoring

import (
	"strings"

	"github.com/hydrojetpros/bidscout/internal/profile"
)

// ServiceSynonyms maps free-text service keywords to profile capability
// flags. Kept as one static table so the matching rules stay auditable.
var ServiceSynonyms = map[string]string{
	"building":      "buildingExterior",
	"exterior":      "buildingExterior",
	"concrete":      "concrete",
	"parking":       "parkingStructure",
	"garage":        "parkingStructure",
	"graffiti":      "graffiti",
	"emergency":     "emergency247",
	"24/7":          "emergency247",
	"oil":           "oilStain",
	"stain":         "oilStain",
	"gum":           "gumRemoval",
	"drive-through": "driveThrough",
	"drive through": "driveThrough",
	"awning":        "awnings",
	"canopy":        "awnings",
	"dumpster":      "dumpsterAreas",
	"trash":         "dumpsterAreas",
	"sidewalk":      "sidewalks",
	"walkway":       "sidewalks",
	"brick":         "brickCleaning",
	"masonry":       "brickCleaning",
	"rust":          "rustRemoval",
	"fleet":         "fleetWashing",
	"vehicle":       "fleetWashing",
	"truck":         "fleetWashing",
	"solar":         "solarPanels",
	"panel":         "solarPanels",
	"window":        "windows",
	"glass":         "windows",
	"roof":          "roofCleaning",
	"deck":          "deckCleaning",
	"patio":         "deckCleaning",
	"fence":         "fenceCleaning",
}

// Services scores each required service string against the synonym table and
// against the profile's own capability names; a requirement matches when
// either test resolves to a capability the company offers.
func Services(required []string, actual profile.Services) Result {
	if len(required) == 0 {
		return vacuous()
	}

	flags := actual.Flags()
	matched := 0
	var unmatched []string

	for _, requirement := range required {
		if serviceMatches(strings.ToLower(requirement), flags) {
			matched++
		} else {
			unmatched = append(unmatched, requirement)
		}
	}

	return Result{
		Score:     float64(matched) / float64(len(required)) * 100,
		Unmatched: unmatched,
	}
}

func serviceMatches(requirement string, flags map[string]bool) bool {
	for keyword, flag := range ServiceSynonyms {
		if strings.Contains(requirement, keyword) && flags[flag] {
			return true
		}
	}

	// Fall back to a direct overlap between the requirement text and the
	// capability names themselves.
	for name, offered := range flags {
		if !offered {
			continue
		}
		lower := strings.ToLower(name)
		if strings.Contains(requirement, lower) || strings.Contains(lower, requirement) {
			return true
		}
	}

	return false
}
