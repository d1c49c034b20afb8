package scoring

import (
	"strings"

	"github.com/hydrojetpros/bidscout/internal/profile"
)

// CertificationSynonym pairs a free-text keyword with the profile
// certification field it identifies.
type CertificationSynonym struct {
	Keyword string
	Field   string
}

// CertificationSynonyms maps free-text certification keywords to profile
// certification fields. The first keyword found in a requirement decides the
// field, so the table is an ordered list rather than a map: requirements
// naming several credentials at once must resolve the same way every run.
var CertificationSynonyms = []CertificationSynonym{
	{"business license", "businessLicense"},
	{"contractor", "contractorLicense"},
	{"contractors", "contractorLicense"},
	{"epa", "epaCompliant"},
	{"environmental", "epaCompliant"},
	{"osha", "oshaLevel"},
	{"safety", "oshaLevel"},
	{"prevailing", "prevailingWage"},
	{"prevailing wage", "prevailingWage"},
	{"davis bacon", "prevailingWage"},
	{"sam", "samRegistration"},
	{"sam.gov", "samRegistration"},
	{"cage", "cageCode"},
	{"duns", "dunsNumber"},
	{"d-u-n-s", "dunsNumber"},
	{"small business", "smallBusiness"},
	{"sbe", "smallBusiness"},
	{"minority", "minorityOwned"},
	{"mbe", "minorityOwned"},
	{"woman", "womanOwned"},
	{"women", "womanOwned"},
	{"wbe", "womanOwned"},
	{"veteran", "veteranOwned"},
	{"vbe", "veteranOwned"},
	{"hubzone", "hubZone"},
	{"hub zone", "hubZone"},
}

// Certifications scores required credentials with partial credit: a held
// credential is a full match, a recognized-but-unmodeled one (ISO variants,
// lapsed OSHA levels) earns half credit, and true absence earns none. OSHA
// levels are ordered: a 30-hour card satisfies a 10-hour requirement, never
// the reverse.
func Certifications(required []string, actual profile.Certifications) Result {
	if len(required) == 0 {
		return vacuous()
	}

	full := 0
	partial := 0
	var unmatched []string

	for _, requirement := range required {
		switch matchCertification(strings.ToLower(requirement), actual) {
		case certMatched:
			full++
		case certPartial:
			partial++
		default:
			unmatched = append(unmatched, requirement)
		}
	}

	score := (float64(full) + 0.5*float64(partial)) / float64(len(required)) * 100

	return Result{Score: score, Unmatched: unmatched}
}

type certOutcome int

const (
	certUnmatched certOutcome = iota
	certPartial
	certMatched
)

func matchCertification(requirement string, actual profile.Certifications) certOutcome {
	for _, synonym := range CertificationSynonyms {
		if !strings.Contains(requirement, synonym.Keyword) {
			continue
		}
		// OSHA carries level semantics that a plain held/not-held check
		// would get wrong.
		if synonym.Field == "oshaLevel" {
			break
		}
		held, declared := actual.Held(synonym.Field)
		if held {
			return certMatched
		}
		if declared {
			// Explicitly answered no.
			return certUnmatched
		}
		break
	}

	if strings.Contains(requirement, "osha") {
		return matchOSHA(requirement, actual.OSHALevel)
	}

	if strings.Contains(requirement, "iso") {
		// Recognized but not modeled in the profile.
		return certPartial
	}

	return certUnmatched
}

func matchOSHA(requirement, level string) certOutcome {
	switch {
	case strings.Contains(requirement, "30"):
		// A lower-level card never satisfies a higher-level requirement.
		if level == profile.OSHA30Hour {
			return certMatched
		}
	case strings.Contains(requirement, "10"):
		// A 30-hour card covers a 10-hour requirement.
		if level == profile.OSHA10Hour || level == profile.OSHA30Hour {
			return certMatched
		}
	default:
		if level != "" && level != profile.OSHANone {
			return certMatched
		}
	}
	return certUnmatched
}
