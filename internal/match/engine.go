package match

import (
	"fmt"
	"math"
	"strconv"

	"github.com/hydrojetpros/bidscout/internal/profile"
	"github.com/hydrojetpros/bidscout/internal/rfp"
	"github.com/hydrojetpros/bidscout/internal/scoring"
)

// Breakdown holds the per-dimension percentages. The four core dimensions
// carry equal 25% weight in the total; equipment and operational are
// advisory and reported alongside without affecting it.
type Breakdown struct {
	Geographic     float64 `json:"geographic"`
	Insurance      float64 `json:"insurance"`
	Services       float64 `json:"services"`
	Certifications float64 `json:"certifications"`
	Equipment      float64 `json:"equipment"`
	Operational    float64 `json:"operational"`
}

// Result is the full outcome of one analysis.
type Result struct {
	ID                  string    `json:"id"`
	Decision            Decision  `json:"decision"`
	Score               int       `json:"score"`
	TotalScore          float64   `json:"totalScore"`
	Breakdown           Breakdown `json:"breakdown"`
	MissingRequirements []string  `json:"missingRequirements"`
	FillableGaps        []string  `json:"fillableGaps"`
	Analysis            string    `json:"analysis,omitempty"`
}

// Evaluate scores a parsed requirement set against the profile and
// classifies the total under the given scheme. The total is the unweighted
// mean of the four core dimensions; a dimension with nothing to score
// defaults to 100 and still contributes its quarter share.
func Evaluate(requirements rfp.Requirements, p *profile.CompanyProfile, scheme TierScheme) *Result {
	var missing, fillableGaps []string

	geographic := scoring.Geographic(requirements.Location, p)
	missing = append(missing, geographic.Unmatched...)

	insurance := scoring.Insurance(requirements.Insurance, p.Insurance)
	insuranceGaps := insuranceGaps(requirements.Insurance, p.Insurance)
	missing = append(missing, insuranceGaps...)

	services := scoring.Services(requirements.Services, p.Services)
	for _, service := range services.Unmatched {
		missing = append(missing, scoring.FormatMissing(scoring.CategoryServices, service))
	}

	certifications := scoring.Certifications(requirements.Certifications, p.Certifications)
	for _, cert := range certifications.Unmatched {
		formatted := scoring.FormatMissing(scoring.CategoryCertifications, cert)
		missing = append(missing, formatted)
		if scoring.IsFillable(scoring.CategoryCertifications, cert) {
			fillableGaps = append(fillableGaps, formatted)
		}
	}

	for _, gap := range insuranceGaps {
		if scoring.IsFillable(scoring.CategoryInsurance, gap) {
			fillableGaps = append(fillableGaps, gap)
		}
	}

	equipment := scoring.Equipment(requirements.Equipment, p.Equipment)
	for _, item := range equipment.Unmatched {
		missing = append(missing, scoring.FormatMissing(scoring.CategoryEquipment, item))
	}

	operational := scoring.Operational(requirements.Operational, p.Operational)
	for _, item := range operational.Unmatched {
		formatted := scoring.FormatMissing(scoring.CategoryOperational, item)
		missing = append(missing, formatted)
		if scoring.IsFillable(scoring.CategoryOperational, item) {
			fillableGaps = append(fillableGaps, formatted)
		}
	}

	totalScore := (geographic.Score + insurance.Score + services.Score + certifications.Score) / 4

	return &Result{
		Decision:   scheme.Classify(totalScore),
		Score:      int(math.Round(totalScore)),
		TotalScore: totalScore,
		Breakdown: Breakdown{
			Geographic:     geographic.Score,
			Insurance:      insurance.Score,
			Services:       services.Score,
			Certifications: certifications.Score,
			Equipment:      equipment.Score,
			Operational:    operational.Score,
		},
		MissingRequirements: missing,
		FillableGaps:        fillableGaps,
	}
}

// insuranceGaps spells out each demanded policy the profile does not cover
// at the required level, with the held amount when one exists.
func insuranceGaps(required rfp.Insurance, actual profile.Insurance) []string {
	var gaps []string

	if gap := amountGap("General Liability", required.GeneralLiability, actual.GeneralLiability); gap != "" {
		gaps = append(gaps, gap)
	}

	if required.WorkersComp != nil && *required.WorkersComp {
		covered := actual.WorkersComp != nil && actual.WorkersComp.Covered != nil && *actual.WorkersComp.Covered
		if !covered {
			gaps = append(gaps, "Workers Compensation Insurance required")
		}
	}

	if gap := amountGap("Commercial Auto", required.CommercialAuto, actual.CommercialAuto); gap != "" {
		gaps = append(gaps, gap)
	}
	if gap := amountGap("Umbrella", required.Umbrella, actual.Umbrella); gap != "" {
		gaps = append(gaps, gap)
	}
	if gap := amountGap("Professional Liability", required.Professional, actual.Professional); gap != "" {
		gaps = append(gaps, gap)
	}

	return gaps
}

func amountGap(label string, required *float64, held *profile.Policy) string {
	if required == nil {
		return ""
	}
	have := 0.0
	if held != nil {
		have = held.Amount
	}
	if have >= *required {
		return ""
	}
	if have > 0 {
		return fmt.Sprintf("%s: $%s required (have $%s)", label, formatDollars(*required), formatDollars(have))
	}
	return fmt.Sprintf("%s: $%s required", label, formatDollars(*required))
}

// formatDollars renders an amount with thousands separators, dropping any
// fractional cents.
func formatDollars(amount float64) string {
	digits := strconv.FormatFloat(math.Round(amount), 'f', -1, 64)

	negative := false
	if len(digits) > 0 && digits[0] == '-' {
		negative = true
		digits = digits[1:]
	}

	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}

	if negative {
		return "-" + string(out)
	}
	return string(out)
}
