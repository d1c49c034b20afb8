package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/hydrojetpros/bidscout/internal/ai"
	"github.com/hydrojetpros/bidscout/internal/util"
)

//go:embed proposal_prompt.md
var proposalPrompt string

var proposalSchema = map[string]any{
	"type":     "object",
	"required": []any{"coverLetter", "executiveSummary", "technicalApproach", "pricing", "whyChooseUs"},
	"properties": map[string]any{
		"coverLetter":       map[string]any{"type": "string"},
		"executiveSummary":  map[string]any{"type": "string"},
		"technicalApproach": map[string]any{"type": "string"},
		"pricing":           map[string]any{"type": "string"},
		"whyChooseUs":       map[string]any{"type": "string"},
	},
}

// Writer drafts proposals through Gemini.
type Writer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

// NewWriter wires a generator behind the proposal prompt.
func NewWriter(generator contentGenerator, logger *zap.Logger) *Writer {
	return &Writer{
		generator: generator,
		logger:    logger,
		maxLogLen: defaultMaxLogLength,
	}
}

// WriteProposal asks the model for a five-section proposal draft built around
// the analysis outcome.
func (w *Writer) WriteProposal(ctx context.Context, rfpText string, pctx ai.ProposalContext) (*ai.Proposal, error) {
	contextJSON, err := json.MarshalIndent(map[string]any{
		"companyName":         pctx.CompanyName,
		"decision":            pctx.Decision,
		"score":               pctx.Score,
		"missingRequirements": pctx.MissingRequirements,
		"fillableGaps":        pctx.FillableGaps,
		"analysis":            pctx.Analysis,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal analysis context: %w", err)
	}

	prompt := strings.ReplaceAll(proposalPrompt, "{{RFP_TEXT}}", rfpText)
	prompt = strings.ReplaceAll(prompt, "{{ANALYSIS_JSON}}", string(contextJSON))

	w.logger.Debug("gemini proposal request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
	)

	raw, err := w.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	w.logger.Debug("gemini proposal response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", util.TruncateForLog(raw, w.maxLogLen)),
	)

	data, err := decodeObject(raw, proposalSchema)
	if err != nil {
		return nil, err
	}

	var proposal ai.Proposal
	if err := decode(data, &proposal); err != nil {
		return nil, fmt.Errorf("decode proposal: %w", err)
	}

	return &proposal, nil
}
