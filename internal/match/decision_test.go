package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTierScheme(t *testing.T) {
	t.Parallel()

	scheme, err := ParseTierScheme(3)
	require.NoError(t, err)
	assert.Equal(t, ThreeTier, scheme)

	scheme, err = ParseTierScheme(4)
	require.NoError(t, err)
	assert.Equal(t, FourTier, scheme)

	_, err = ParseTierScheme(5)
	assert.Error(t, err)
}

func TestClassifyThreeTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  Decision
	}{
		{100, DecisionGo},
		{75, DecisionGo},
		{74.9, DecisionMaybe},
		{50, DecisionMaybe},
		{49.9, DecisionNoGo},
		{0, DecisionNoGo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ThreeTier.Classify(tt.score), "score %.1f", tt.score)
	}
}

func TestClassifyFourTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  Decision
	}{
		{95, DecisionHighConfidenceGo},
		{90, DecisionHighConfidenceGo},
		{89.9, DecisionMediumConfidenceGo},
		{70, DecisionMediumConfidenceGo},
		{69.9, DecisionLowConfidenceGo},
		{50, DecisionLowConfidenceGo},
		{49.9, DecisionNoGoFourTier},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FourTier.Classify(tt.score), "score %.1f", tt.score)
	}
}

func TestFavorable(t *testing.T) {
	t.Parallel()

	assert.True(t, DecisionGo.Favorable())
	assert.True(t, DecisionLowConfidenceGo.Favorable())
	assert.False(t, DecisionMaybe.Favorable())
	assert.False(t, DecisionNoGo.Favorable())
	assert.False(t, DecisionNoGoFourTier.Favorable())
}
