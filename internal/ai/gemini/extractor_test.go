package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGenerator struct {
	response string
	err      error
	prompt   string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

const validExtraction = `{
  "location": {"city": "Glendale", "state": "CA", "zip": "91206"},
  "insurance": {"generalLiability": 2000000, "workersComp": true},
  "services": ["pressure washing", "graffiti removal"],
  "certifications": ["business license"],
  "equipment": {"minPSI": 3500, "hotWater": true},
  "operational": {"emergencyResponse": true, "maxResponseTime": 2}
}`

func TestExtractRequirements(t *testing.T) {
	t.Parallel()

	generator := &fakeGenerator{response: validExtraction}
	extractor := NewExtractor(generator, zap.NewNop())

	requirements, err := extractor.ExtractRequirements(context.Background(), "rfp text here")
	require.NoError(t, err)

	assert.Contains(t, generator.prompt, "rfp text here")

	assert.Equal(t, "91206", requirements.Location.Zip)
	require.NotNil(t, requirements.Insurance.GeneralLiability)
	assert.Equal(t, 2_000_000.0, *requirements.Insurance.GeneralLiability)
	require.NotNil(t, requirements.Insurance.WorkersComp)
	assert.True(t, *requirements.Insurance.WorkersComp)
	assert.Equal(t, []string{"pressure washing", "graffiti removal"}, requirements.Services)
	require.NotNil(t, requirements.Equipment.MinPSI)
	assert.Equal(t, 3500, *requirements.Equipment.MinPSI)
	require.NotNil(t, requirements.Operational.MaxResponseTime)
	assert.Equal(t, 2.0, *requirements.Operational.MaxResponseTime)
}

func TestExtractRequirementsFencedResponse(t *testing.T) {
	t.Parallel()

	generator := &fakeGenerator{response: "```json\n" + validExtraction + "\n```"}
	extractor := NewExtractor(generator, zap.NewNop())

	requirements, err := extractor.ExtractRequirements(context.Background(), "rfp")
	require.NoError(t, err)
	assert.Equal(t, "Glendale", requirements.Location.City)
}

func TestExtractRequirementsSchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		response string
	}{
		{"missing top-level key", `{"location": {}, "insurance": {}, "services": [], "certifications": [], "equipment": {}}`},
		{"wrong type for services", `{"location": {}, "insurance": {}, "services": "pressure washing", "certifications": [], "equipment": {}, "operational": {}}`},
		{"not json", "sorry, I cannot help with that"},
		{"json array instead of object", `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			extractor := NewExtractor(&fakeGenerator{response: tt.response}, zap.NewNop())
			_, err := extractor.ExtractRequirements(context.Background(), "rfp")
			assert.Error(t, err)
		})
	}
}

func TestExtractRequirementsGeneratorError(t *testing.T) {
	t.Parallel()

	extractor := NewExtractor(&fakeGenerator{err: errors.New("quota exceeded")}, zap.NewNop())
	_, err := extractor.ExtractRequirements(context.Background(), "rfp")
	assert.Error(t, err)
}

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `{"a":1}`, extractJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, extractJSON("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, extractJSON(`{"a":1}`))
}
