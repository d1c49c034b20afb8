package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hydrojetpros/bidscout/internal/ai"
)

const validProposal = `{
  "coverLetter": "Dear Selection Committee,",
  "executiveSummary": "We offer comprehensive services.",
  "technicalApproach": "Survey, plan, execute, verify.",
  "pricing": "$0.15 per sq ft.",
  "whyChooseUs": "Local, insured, responsive."
}`

func TestWriteProposal(t *testing.T) {
	t.Parallel()

	generator := &fakeGenerator{response: validProposal}
	writer := NewWriter(generator, zap.NewNop())

	proposal, err := writer.WriteProposal(context.Background(), "rfp text", ai.ProposalContext{
		CompanyName: "HydroJet Pros",
		Decision:    "MAYBE",
		Score:       62,
	})
	require.NoError(t, err)

	assert.Contains(t, generator.prompt, "rfp text")
	assert.Contains(t, generator.prompt, "HydroJet Pros")
	assert.Contains(t, generator.prompt, "MAYBE")

	assert.Equal(t, "Dear Selection Committee,", proposal.CoverLetter)
	assert.Equal(t, "$0.15 per sq ft.", proposal.Pricing)
}

func TestWriteProposalRejectsIncompleteResponse(t *testing.T) {
	t.Parallel()

	writer := NewWriter(&fakeGenerator{response: `{"coverLetter": "hi"}`}, zap.NewNop())

	_, err := writer.WriteProposal(context.Background(), "rfp", ai.ProposalContext{})
	assert.Error(t, err)
}
