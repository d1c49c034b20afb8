package scoring

import "strings"

// Requirement categories used for gap tagging.
const (
	CategoryGeographic     = "geographic"
	CategoryInsurance      = "insurance"
	CategoryServices       = "services"
	CategoryCertifications = "certifications"
	CategoryEquipment      = "equipment"
	CategoryOperational    = "operational"
)

// fillable lists, per category, the requirement terms obtainable without new
// core capability: riders and registrations, not trucks and service lines.
var fillable = map[string][]string{
	CategoryInsurance:      {"umbrella", "professional"},
	CategoryCertifications: {"business license", "sam registration", "sam", "cage code", "cage"},
	CategoryOperational:    {"night", "weekend"},
}

// FormatMissing tags an unmatched requirement with its category phrasing for
// gap reporting.
func FormatMissing(category, requirement string) string {
	switch category {
	case CategoryServices:
		return "Service not offered: " + requirement
	case CategoryCertifications:
		return "Missing certification: " + requirement
	case CategoryEquipment:
		return "Equipment requirement: " + requirement
	case CategoryOperational:
		return "Operational capability: " + requirement
	default:
		return requirement
	}
}

// IsFillable reports whether a missing requirement is on the category's
// quickly-obtainable allow-list.
func IsFillable(category, requirement string) bool {
	lower := strings.ToLower(requirement)
	for _, term := range fillable[category] {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
