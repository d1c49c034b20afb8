package report

import (
	"fmt"
	"strings"

	"github.com/hydrojetpros/bidscout/internal/ai"
)

// FallbackProposal assembles a template proposal from the analysis context.
// It is used whenever no remote writer is configured or the remote call
// fails, so every analysis can still produce a draft.
func FallbackProposal(pctx ai.ProposalContext) *ai.Proposal {
	name := pctx.CompanyName
	if name == "" {
		name = "Our company"
	}

	var gaps string
	if len(pctx.FillableGaps) > 0 {
		gaps = fmt.Sprintf("\n\nWe have identified %d item(s) we will address before contract start:\n%s",
			len(pctx.FillableGaps), bulleted(pctx.FillableGaps))
	}

	return &ai.Proposal{
		CoverLetter: fmt.Sprintf(`Dear Selection Committee,

%s is pleased to submit our proposal for your pressure washing requirements. Our team has carefully reviewed your solicitation and we are confident in our ability to meet your expectations.

We bring commercial-grade equipment, environmentally responsible practices, and a commitment to responsive service. We look forward to the opportunity to demonstrate our capabilities and build a long-term partnership with your organization.`, name),

		ExecutiveSummary: fmt.Sprintf(`%s offers comprehensive pressure washing services tailored to this solicitation:

- Experienced crews serving commercial and municipal clients
- Commercial-grade hot and cold water equipment with waste water recovery
- Licensed and insured operations
- Transparent, value-based pricing

Based on our capability review (%d%% match), we are well-positioned to deliver on this project.%s`, name, pctx.Score, gaps),

		TechnicalApproach: `Our technical approach:

1. Initial Assessment
   - Site survey and surface condition evaluation
   - Identification of specific cleaning requirements

2. Customized Solution Design
   - Selection of appropriate pressure levels and cleaning agents
   - Scheduling to minimize operational disruption

3. Execution
   - Trained technicians with commercial-grade equipment
   - Waste water recovery and compliant disposal

4. Quality Assurance
   - Before and after photo documentation
   - Client walkthrough and sign-off`,

		Pricing: `Our pricing structure:

- Commercial properties: $0.15 - $0.25 per sq ft
- Parking lots and driveways: $0.10 - $0.18 per sq ft
- Building exteriors: $0.20 - $0.35 per sq ft

Volume and annual-contract discounts available. All pricing includes labor, equipment, eco-friendly cleaning solutions, waste water recovery, and insurance coverage.`,

		WhyChooseUs: fmt.Sprintf(`Why choose %s:

- Local expertise and knowledge of regional environmental regulations
- EPA-compliant practices and biodegradable cleaning solutions
- Responsive scheduling, including after-hours work where required
- Comprehensive insurance coverage
- Transparent reporting with detailed service documentation`, name),
	}
}

func bulleted(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- ")
		b.WriteString(item)
	}
	return b.String()
}
