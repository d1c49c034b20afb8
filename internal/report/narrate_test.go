package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hydrojetpros/bidscout/internal/ai"
	"github.com/hydrojetpros/bidscout/internal/match"
)

func sampleResult() *match.Result {
	return &match.Result{
		Decision:   match.DecisionMaybe,
		Score:      62,
		TotalScore: 61.5,
		Breakdown: match.Breakdown{
			Geographic:     100,
			Insurance:      46,
			Services:       50,
			Certifications: 50,
		},
		MissingRequirements: []string{
			"General Liability: $5,000,000 required (have $2,000,000)",
			"Service not offered: roof cleaning",
			"Missing certification: sam registration",
		},
		FillableGaps: []string{
			"Missing certification: sam registration",
		},
	}
}

func TestNarrate(t *testing.T) {
	t.Parallel()

	text := Narrate(sampleResult(), "HydroJet Pros")

	assert.Contains(t, text, "Based on HydroJet Pros's profile, this RFP shows a 61.5% match.")
	assert.Contains(t, text, "Geographic Match: 100% - Within service area")
	assert.Contains(t, text, "Insurance Match: 46% - Some gaps in coverage")
	assert.Contains(t, text, "Missing Requirements:")
	assert.Contains(t, text, "• Service not offered: roof cleaning")
	assert.Contains(t, text, "Easily Addressable Gaps:")
	assert.Contains(t, text, "PROCEED WITH CAUTION")
}

func TestNarrateDeterministic(t *testing.T) {
	t.Parallel()

	first := Narrate(sampleResult(), "HydroJet Pros")
	second := Narrate(sampleResult(), "HydroJet Pros")
	assert.Equal(t, first, second)
}

func TestNarrateRecommendationsByTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		decision match.Decision
		phrase   string
	}{
		{match.DecisionGo, "PROCEED WITH PROPOSAL"},
		{match.DecisionHighConfidenceGo, "PROCEED WITH PROPOSAL"},
		{match.DecisionMediumConfidenceGo, "PROCEED WITH PROPOSAL"},
		{match.DecisionMaybe, "PROCEED WITH CAUTION"},
		{match.DecisionLowConfidenceGo, "PROCEED WITH CAUTION"},
		{match.DecisionNoGo, "DO NOT PROCEED"},
		{match.DecisionNoGoFourTier, "DO NOT PROCEED"},
	}

	for _, tt := range tests {
		result := sampleResult()
		result.Decision = tt.decision
		assert.Contains(t, Narrate(result, "HydroJet Pros"), tt.phrase)
	}
}

func TestNarrateGeographicPhrases(t *testing.T) {
	t.Parallel()

	result := sampleResult()

	result.Breakdown.Geographic = 50
	assert.Contains(t, Narrate(result, "X"), "Possible but may be challenging")

	result.Breakdown.Geographic = 0
	assert.Contains(t, Narrate(result, "X"), "Outside service area")
}

func TestFallbackProposal(t *testing.T) {
	t.Parallel()

	proposal := FallbackProposal(ai.ProposalContext{
		CompanyName:  "HydroJet Pros",
		Score:        62,
		FillableGaps: []string{"Missing certification: sam registration"},
	})

	assert.Contains(t, proposal.CoverLetter, "HydroJet Pros")
	assert.Contains(t, proposal.ExecutiveSummary, "62% match")
	assert.Contains(t, proposal.ExecutiveSummary, "sam registration")
	assert.NotEmpty(t, proposal.TechnicalApproach)
	assert.NotEmpty(t, proposal.Pricing)
	assert.Contains(t, proposal.WhyChooseUs, "HydroJet Pros")
}
