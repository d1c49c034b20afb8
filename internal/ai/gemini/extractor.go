package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/hydrojetpros/bidscout/internal/rfp"
	"github.com/hydrojetpros/bidscout/internal/util"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed extract_prompt.md
var extractPrompt string

const defaultMaxLogLength = 200

// requirementsSchema is checked against every remote response before any
// field is trusted. A response missing a top-level section is rejected
// outright rather than patched up.
var requirementsSchema = map[string]any{
	"type":     "object",
	"required": []any{"location", "insurance", "services", "certifications", "equipment", "operational"},
	"properties": map[string]any{
		"location":       map[string]any{"type": "object"},
		"insurance":      map[string]any{"type": "object"},
		"services":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"certifications": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"equipment":      map[string]any{"type": "object"},
		"operational":    map[string]any{"type": "object"},
	},
}

// Extractor asks Gemini to parse an RFP into a structured requirement set.
type Extractor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

// NewExtractor wires a generator behind the extraction prompt.
func NewExtractor(generator contentGenerator, logger *zap.Logger) *Extractor {
	return &Extractor{
		generator: generator,
		logger:    logger,
		maxLogLen: defaultMaxLogLength,
	}
}

// ExtractRequirements sends the RFP text through the extraction prompt and
// decodes the response. Any parse or schema failure is returned as an error;
// the caller decides what to fall back to.
func (e *Extractor) ExtractRequirements(ctx context.Context, rfpText string) (*rfp.Requirements, error) {
	prompt := strings.ReplaceAll(extractPrompt, "{{RFP_TEXT}}", rfpText)

	e.logger.Debug("gemini extraction request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
	)

	raw, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("gemini extraction response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", util.TruncateForLog(raw, e.maxLogLen)),
	)

	data, err := decodeObject(raw, requirementsSchema)
	if err != nil {
		return nil, err
	}

	var requirements rfp.Requirements
	if err := decode(data, &requirements); err != nil {
		return nil, fmt.Errorf("decode requirements: %w", err)
	}

	return &requirements, nil
}

// decodeObject parses a model response as a JSON object and validates it
// against the schema. Fenced code blocks around the JSON are tolerated.
func decodeObject(raw string, schema map[string]any) (map[string]any, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(schema), gojsonschema.NewGoLoader(data))
	if err != nil {
		return nil, fmt.Errorf("validate gemini response: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, fmt.Errorf("gemini response failed schema validation: %v", errs)
	}

	return data, nil
}

func decode(data map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(data)
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
