// Package match combines dimension scores into a bid/no-bid decision with
// gap reporting. One scoring pipeline feeds two threshold tables; the caller
// picks the granularity.
package match

import "fmt"

// Decision is a recommendation tier.
type Decision string

// Three-tier decisions.
const (
	DecisionGo    Decision = "GO"
	DecisionMaybe Decision = "MAYBE"
	DecisionNoGo  Decision = "NO-GO"
)

// Four-tier decisions.
const (
	DecisionHighConfidenceGo   Decision = "HIGH_CONFIDENCE_GO"
	DecisionMediumConfidenceGo Decision = "MEDIUM_CONFIDENCE_GO"
	DecisionLowConfidenceGo    Decision = "LOW_CONFIDENCE_GO"
	DecisionNoGoFourTier       Decision = "NO_GO"
)

// TierScheme selects which threshold table classifies a total score.
type TierScheme int

const (
	// ThreeTier classifies GO >= 75, MAYBE >= 50, NO-GO below.
	ThreeTier TierScheme = iota
	// FourTier classifies HIGH >= 90, MEDIUM >= 70, LOW >= 50, NO_GO below.
	FourTier
)

// ParseTierScheme maps the CLI flag value to a scheme.
func ParseTierScheme(tiers int) (TierScheme, error) {
	switch tiers {
	case 3:
		return ThreeTier, nil
	case 4:
		return FourTier, nil
	default:
		return ThreeTier, fmt.Errorf("unsupported tier scheme %d (want 3 or 4)", tiers)
	}
}

// Classify applies the scheme's threshold table to a total score.
func (s TierScheme) Classify(totalScore float64) Decision {
	switch s {
	case FourTier:
		switch {
		case totalScore >= 90:
			return DecisionHighConfidenceGo
		case totalScore >= 70:
			return DecisionMediumConfidenceGo
		case totalScore >= 50:
			return DecisionLowConfidenceGo
		default:
			return DecisionNoGoFourTier
		}
	default:
		switch {
		case totalScore >= 75:
			return DecisionGo
		case totalScore >= 50:
			return DecisionMaybe
		default:
			return DecisionNoGo
		}
	}
}

// Favorable reports whether the decision recommends bidding at any
// confidence.
func (d Decision) Favorable() bool {
	switch d {
	case DecisionGo, DecisionHighConfidenceGo, DecisionMediumConfidenceGo, DecisionLowConfidenceGo:
		return true
	default:
		return false
	}
}
