package rfp

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hydrojetpros/bidscout/internal/geo"
)

// KnownCities is the gazetteer of recognizable service-area city names.
// A matched city implies state CA.
var KnownCities = []string{
	"los angeles", "glendale", "pasadena", "burbank", "santa monica",
	"beverly hills", "monterey park", "alhambra", "long beach", "torrance",
	"inglewood", "downtown la", "dtla", "anaheim", "riverside",
}

// ServiceKeywords are the literal service phrases extraction looks for. Hits
// are recorded verbatim as requirement strings.
var ServiceKeywords = []string{
	"building washing", "exterior cleaning", "concrete cleaning", "parking garage",
	"graffiti removal", "sidewalk cleaning", "dumpster area", "awning cleaning",
	"fleet washing", "window cleaning", "roof cleaning", "emergency services",
	"pressure washing", "power washing",
}

// CertificationKeywords are the literal certification phrases extraction
// looks for.
var CertificationKeywords = []string{
	"business license", "contractor license", "epa", "osha", "prevailing wage",
	"sam registration", "small business", "minority owned", "woman owned", "veteran owned",
}

var workersCompPhrases = []string{"workers comp", "workers' comp", "workman"}

var (
	generalLiabilityPattern = regexp.MustCompile(`(?i)general liability.*?\$(\d+(?:,\d{3})*(?:\.\d+)?)\s*(million|m|k)?`)
	commercialAutoPattern   = regexp.MustCompile(`(?i)(?:commercial |)auto(?:mobile|)\s*(?:liability|insurance).*?\$(\d+(?:,\d{3})*(?:\.\d+)?)\s*(million|m|k)?`)
	psiPattern              = regexp.MustCompile(`(?i)(\d{3,4})\s*psi`)
)

// Extract parses raw RFP text into a requirement set. It is a pure function
// of the lower-cased input and never fails: patterns that do not match leave
// their fields absent.
func Extract(text string) Requirements {
	lower := strings.ToLower(text)

	return Requirements{
		Location:       extractLocation(lower),
		Insurance:      extractInsurance(lower),
		Services:       matchKeywords(lower, ServiceKeywords),
		Certifications: matchKeywords(lower, CertificationKeywords),
		Equipment:      extractEquipment(lower),
		Operational:    extractOperational(lower),
	}
}

func extractLocation(text string) Location {
	location := Location{}

	if zip := geo.ExtractZip(text); zip != "" {
		location.Zip = zip
	}

	for _, city := range KnownCities {
		if strings.Contains(text, city) {
			location.City = titleCase(city)
			location.State = "CA"
			break
		}
	}

	return location
}

func extractInsurance(text string) Insurance {
	insurance := Insurance{}

	if amount, ok := dollarAmount(generalLiabilityPattern, text); ok {
		insurance.GeneralLiability = &amount
	}

	for _, phrase := range workersCompPhrases {
		if strings.Contains(text, phrase) {
			required := true
			insurance.WorkersComp = &required
			break
		}
	}

	if amount, ok := dollarAmount(commercialAutoPattern, text); ok {
		insurance.CommercialAuto = &amount
	}

	return insurance
}

// dollarAmount parses the first capture group of pattern as a dollar figure,
// applying million/m/k multipliers. A matched pattern whose number does not
// parse is reported as not found: malformed numerics are treated as absent
// requirements, never as errors.
func dollarAmount(pattern *regexp.Regexp, text string) (float64, bool) {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
	if err != nil {
		return 0, false
	}

	suffix := strings.ToLower(match[2])
	switch {
	case strings.HasPrefix(suffix, "m"):
		amount *= 1_000_000
	case suffix == "k":
		amount *= 1_000
	}

	return amount, true
}

func extractEquipment(text string) Equipment {
	equipment := Equipment{}

	if match := psiPattern.FindStringSubmatch(text); match != nil {
		if psi, err := strconv.Atoi(match[1]); err == nil {
			equipment.MinPSI = &psi
		}
	}

	if containsAny(text, "hot water", "heated water") {
		flag := true
		equipment.HotWater = &flag
	}
	if containsAny(text, "water recovery", "water reclamation") {
		flag := true
		equipment.WaterRecovery = &flag
	}
	if containsAny(text, "aerial lift", "boom lift") {
		flag := true
		equipment.AerialLift = &flag
	}

	return equipment
}

func extractOperational(text string) Operational {
	operational := Operational{}

	if containsAny(text, "night work", "after hours") {
		flag := true
		operational.NightWork = &flag
	}
	if strings.Contains(text, "weekend") {
		flag := true
		operational.WeekendWork = &flag
	}
	if containsAny(text, "emergency", "24/7") {
		flag := true
		operational.EmergencyResponse = &flag
	}

	return operational
}

func matchKeywords(text string, keywords []string) []string {
	var found []string
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			found = append(found, keyword)
		}
	}
	return found
}

func containsAny(text string, phrases ...string) bool {
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
