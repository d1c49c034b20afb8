// Package ai defines the provider-neutral contracts for delegating
// requirement extraction and proposal writing to an external language-model
// service. The deterministic pipeline never depends on these succeeding: any
// failure falls back locally.
package ai

import (
	"context"

	"github.com/hydrojetpros/bidscout/internal/rfp"
)

// Extractor produces a structured requirement set from raw RFP text.
type Extractor interface {
	ExtractRequirements(ctx context.Context, rfpText string) (*rfp.Requirements, error)
}

// Proposal is a five-section draft response to a solicitation.
type Proposal struct {
	CoverLetter       string `json:"coverLetter"`
	ExecutiveSummary  string `json:"executiveSummary"`
	TechnicalApproach string `json:"technicalApproach"`
	Pricing           string `json:"pricing"`
	WhyChooseUs       string `json:"whyChooseUs"`
}

// ProposalContext carries the analysis outcome a proposal should be written
// around.
type ProposalContext struct {
	CompanyName         string
	Decision            string
	Score               int
	MissingRequirements []string
	FillableGaps        []string
	Analysis            string
}

// ProposalWriter drafts a proposal from RFP text and the analysis outcome.
type ProposalWriter interface {
	WriteProposal(ctx context.Context, rfpText string, pctx ProposalContext) (*Proposal, error)
}
