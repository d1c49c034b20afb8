package rfp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRFP = `City of Glendale Pressure Washing Services
Location: Glendale Civic Center, 613 E Broadway, Glendale, CA 91206
Requirements:
- General Liability: $2 million minimum
- Workers compensation coverage required
- Commercial auto insurance: $1 million
- 3500 PSI hot water pressure washing capability
- Water recovery system required
- Night work and weekend availability
- 24/7 emergency response
- Valid business license and OSHA certification
Services: exterior cleaning, sidewalk cleaning, graffiti removal`

func TestExtractLocation(t *testing.T) {
	t.Parallel()

	requirements := Extract(sampleRFP)

	assert.Equal(t, "91206", requirements.Location.Zip)
	assert.Equal(t, "Glendale", requirements.Location.City)
	assert.Equal(t, "CA", requirements.Location.State)
}

func TestExtractInsurance(t *testing.T) {
	t.Parallel()

	requirements := Extract(sampleRFP)

	require.NotNil(t, requirements.Insurance.GeneralLiability)
	assert.Equal(t, 2_000_000.0, *requirements.Insurance.GeneralLiability)

	require.NotNil(t, requirements.Insurance.WorkersComp)
	assert.True(t, *requirements.Insurance.WorkersComp)

	require.NotNil(t, requirements.Insurance.CommercialAuto)
	assert.Equal(t, 1_000_000.0, *requirements.Insurance.CommercialAuto)
}

func TestExtractDollarAmounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want float64
	}{
		{"million word", "general liability of $1 million", 1_000_000},
		{"m suffix", "general liability: $2M minimum", 2_000_000},
		{"k suffix", "general liability: $500k", 500_000},
		{"plain with commas", "general liability $1,000,000", 1_000_000},
		{"decimal million", "general liability: $1.5 million", 1_500_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			requirements := Extract(tt.text)
			require.NotNil(t, requirements.Insurance.GeneralLiability)
			assert.Equal(t, tt.want, *requirements.Insurance.GeneralLiability)
		})
	}
}

func TestExtractServicesAndCertifications(t *testing.T) {
	t.Parallel()

	requirements := Extract(sampleRFP)

	assert.Contains(t, requirements.Services, "exterior cleaning")
	assert.Contains(t, requirements.Services, "sidewalk cleaning")
	assert.Contains(t, requirements.Services, "graffiti removal")
	assert.Contains(t, requirements.Services, "pressure washing")

	assert.Contains(t, requirements.Certifications, "business license")
	assert.Contains(t, requirements.Certifications, "osha")
}

func TestExtractEquipmentAndOperational(t *testing.T) {
	t.Parallel()

	requirements := Extract(sampleRFP)

	require.NotNil(t, requirements.Equipment.MinPSI)
	assert.Equal(t, 3500, *requirements.Equipment.MinPSI)
	require.NotNil(t, requirements.Equipment.HotWater)
	assert.True(t, *requirements.Equipment.HotWater)
	require.NotNil(t, requirements.Equipment.WaterRecovery)
	assert.True(t, *requirements.Equipment.WaterRecovery)
	assert.Nil(t, requirements.Equipment.AerialLift)

	require.NotNil(t, requirements.Operational.NightWork)
	require.NotNil(t, requirements.Operational.WeekendWork)
	require.NotNil(t, requirements.Operational.EmergencyResponse)
	assert.Nil(t, requirements.Operational.MaxResponseTime)
}

func TestExtractDeterministic(t *testing.T) {
	t.Parallel()

	first := Extract(sampleRFP)
	second := Extract(sampleRFP)
	assert.Equal(t, first, second)
}

func TestExtractEmptyText(t *testing.T) {
	t.Parallel()

	requirements := Extract("")

	assert.True(t, requirements.Location.Empty())
	assert.True(t, requirements.Insurance.Empty())
	assert.True(t, requirements.Equipment.Empty())
	assert.True(t, requirements.Operational.Empty())
	assert.Empty(t, requirements.Services)
	assert.Empty(t, requirements.Certifications)
}

func TestLookupSample(t *testing.T) {
	t.Parallel()

	names := SampleNames()
	require.NotEmpty(t, names)

	for _, name := range names {
		sample, err := LookupSample(name)
		require.NoError(t, err)
		assert.NotEmpty(t, sample.Title)
		assert.NotEmpty(t, sample.Content)
	}

	_, err := LookupSample("nope")
	assert.Error(t, err)
}
