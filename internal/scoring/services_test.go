package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrojetpros/bidscout/internal/profile"
)

func TestServicesVacuous(t *testing.T) {
	t.Parallel()

	result := Services(nil, profile.Services{})
	assert.Equal(t, 100.0, result.Score)
}

func TestServicesSynonymMatching(t *testing.T) {
	t.Parallel()

	offered := profile.Services{
		BuildingExterior: true,
		Graffiti:         true,
		Sidewalks:        true,
	}

	tests := []struct {
		requirement string
		matches     bool
	}{
		{"exterior cleaning", true},
		{"graffiti removal", true},
		{"sidewalk cleaning", true},
		{"walkway washing", true},
		{"fleet washing", false},
		{"roof cleaning", false},
	}

	for _, tt := range tests {
		t.Run(tt.requirement, func(t *testing.T) {
			t.Parallel()
			result := Services([]string{tt.requirement}, offered)
			if tt.matches {
				assert.Equal(t, 100.0, result.Score)
				assert.Empty(t, result.Unmatched)
			} else {
				assert.Equal(t, 0.0, result.Score)
				assert.Equal(t, []string{tt.requirement}, result.Unmatched)
			}
		})
	}
}

func TestServicesPartialMatch(t *testing.T) {
	t.Parallel()

	offered := profile.Services{Graffiti: true}

	result := Services([]string{"graffiti removal", "roof cleaning", "fleet washing", "window cleaning"}, offered)
	require.InDelta(t, 25.0, result.Score, 0.01)
	assert.Equal(t, []string{"roof cleaning", "fleet washing", "window cleaning"}, result.Unmatched)
}

func TestServicesDirectNameOverlap(t *testing.T) {
	t.Parallel()

	// "concrete" appears both as a synonym keyword and a capability name;
	// either path must resolve it.
	offered := profile.Services{Concrete: true}
	result := Services([]string{"concrete"}, offered)
	assert.Equal(t, 100.0, result.Score)
}
