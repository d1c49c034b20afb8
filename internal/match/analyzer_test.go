package match

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hydrojetpros/bidscout/internal/rfp"
)

type fakeExtractor struct {
	requirements *rfp.Requirements
	err          error
	calls        int
}

func (f *fakeExtractor) ExtractRequirements(_ context.Context, _ string) (*rfp.Requirements, error) {
	f.calls++
	return f.requirements, f.err
}

const analyzerRFP = `Pressure washing services in Glendale, CA 91206.
General Liability: $1 million minimum. Sidewalk cleaning required.`

func TestAnalyzeValidation(t *testing.T) {
	t.Parallel()

	analyzer := NewAnalyzer(zap.NewNop())

	_, err := analyzer.Analyze(context.Background(), "   ", strongProfile())
	assert.Error(t, err)

	p := strongProfile()
	p.Basics.CompanyName = ""
	_, err = analyzer.Analyze(context.Background(), analyzerRFP, p)
	assert.Error(t, err)
}

func TestAnalyzeDeterministicPath(t *testing.T) {
	t.Parallel()

	analyzer := NewAnalyzer(zap.NewNop())

	result, err := analyzer.Analyze(context.Background(), analyzerRFP, strongProfile())
	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, DecisionGo, result.Decision)
	assert.Equal(t, 100.0, result.TotalScore)
}

func TestAnalyzeRemoteExtractorPreferred(t *testing.T) {
	t.Parallel()

	remote := &fakeExtractor{
		requirements: &rfp.Requirements{
			Services: []string{"fleet washing"},
		},
	}
	analyzer := NewAnalyzer(zap.NewNop(), WithRemoteExtractor(remote))

	result, err := analyzer.Analyze(context.Background(), analyzerRFP, strongProfile())
	require.NoError(t, err)

	// The remote's requirement set drove the evaluation: fleet washing is
	// not offered, so services failed despite the RFP text matching locally.
	assert.Equal(t, 1, remote.calls)
	assert.Equal(t, 0.0, result.Breakdown.Services)
	assert.Contains(t, result.MissingRequirements, "Service not offered: fleet washing")
}

func TestAnalyzeRemoteFailureFallsBack(t *testing.T) {
	t.Parallel()

	remote := &fakeExtractor{err: errors.New("quota exceeded")}
	analyzer := NewAnalyzer(zap.NewNop(), WithRemoteExtractor(remote))

	result, err := analyzer.Analyze(context.Background(), analyzerRFP, strongProfile())
	require.NoError(t, err)

	// One retry, then the deterministic extractor takes over silently.
	assert.Equal(t, 2, remote.calls)
	assert.Equal(t, DecisionGo, result.Decision)
	assert.Equal(t, 100.0, result.Breakdown.Services)
}

func TestAnalyzeTierSchemeOption(t *testing.T) {
	t.Parallel()

	analyzer := NewAnalyzer(zap.NewNop(), WithTierScheme(FourTier))

	result, err := analyzer.Analyze(context.Background(), analyzerRFP, strongProfile())
	require.NoError(t, err)
	assert.Equal(t, DecisionHighConfidenceGo, result.Decision)
}
