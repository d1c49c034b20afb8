// Package report renders analysis outcomes for humans. Narration is a pure
// formatting function: identical inputs always produce identical text.
package report

import (
	"fmt"
	"strings"

	"github.com/hydrojetpros/bidscout/internal/match"
)

// Narrate builds the prose explanation of an analysis: overall match, a
// per-dimension breakdown keyed off score thresholds, the gap sections, and
// a recommendation chosen purely by decision tier.
func Narrate(result *match.Result, companyName string) string {
	if companyName == "" {
		companyName = "your company"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Based on %s's profile, this RFP shows a %.1f%% match.\n\n", companyName, result.TotalScore)

	b.WriteString("Score Breakdown:\n")
	fmt.Fprintf(&b, "• Geographic Match: %.0f%% - %s\n", result.Breakdown.Geographic, geographicPhrase(result.Breakdown.Geographic))
	fmt.Fprintf(&b, "• Insurance Match: %.0f%% - %s\n", result.Breakdown.Insurance, thresholdPhrase(result.Breakdown.Insurance, "All requirements met", "Some gaps in coverage"))
	fmt.Fprintf(&b, "• Services Match: %.0f%% - %s\n", result.Breakdown.Services, thresholdPhrase(result.Breakdown.Services, "All services offered", "Some services not offered"))
	fmt.Fprintf(&b, "• Certifications Match: %.0f%% - %s\n\n", result.Breakdown.Certifications, thresholdPhrase(result.Breakdown.Certifications, "All certifications held", "Some certifications missing"))

	if len(result.MissingRequirements) > 0 {
		b.WriteString("Missing Requirements:\n")
		for _, requirement := range result.MissingRequirements {
			fmt.Fprintf(&b, "• %s\n", requirement)
		}
		b.WriteString("\n")
	}

	if len(result.FillableGaps) > 0 {
		b.WriteString("Easily Addressable Gaps:\n")
		for _, gap := range result.FillableGaps {
			fmt.Fprintf(&b, "• %s\n", gap)
		}
		b.WriteString("\n")
	}

	b.WriteString(recommendation(result.Decision))

	return b.String()
}

func geographicPhrase(score float64) string {
	switch {
	case score == 100:
		return "Within service area"
	case score == 50:
		return "Possible but may be challenging"
	default:
		return "Outside service area"
	}
}

func thresholdPhrase(score float64, full, partial string) string {
	if score == 100 {
		return full
	}
	return partial
}

func recommendation(decision match.Decision) string {
	switch decision {
	case match.DecisionGo, match.DecisionHighConfidenceGo:
		return "Recommendation: PROCEED WITH PROPOSAL. Your company is well-positioned for this opportunity."
	case match.DecisionMediumConfidenceGo:
		return "Recommendation: PROCEED WITH PROPOSAL. Your company is positioned well, with minor gaps worth addressing in the response."
	case match.DecisionMaybe, match.DecisionLowConfidenceGo:
		return "Recommendation: PROCEED WITH CAUTION. Consider addressing the gaps identified or partnering to strengthen your proposal."
	default:
		return "Recommendation: DO NOT PROCEED. The requirements significantly exceed current capabilities."
	}
}
