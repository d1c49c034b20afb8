package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonProfile = `{
  "basics": {
    "companyName": "HydroJet Pros",
    "city": "Glendale",
    "state": "CA",
    "zip": "91206",
    "serviceRadius": 40
  },
  "insurance": {
    "generalLiability": {"amount": 2000000},
    "workersComp": {"covered": true}
  },
  "services": {
    "buildingExterior": true,
    "graffiti": true
  },
  "certifications": {
    "oshaLevel": "10-hour"
  }
}`

const yamlProfile = `basics:
  companyName: HydroJet Pros
  city: Glendale
  state: CA
  zip: "91206"
  serviceRadius: 40
insurance:
  generalLiability:
    amount: 2000000
certifications:
  oshaLevel: 30-hour
`

func writeProfile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadJSON(t *testing.T) {
	t.Parallel()

	p, err := Load(writeProfile(t, "profile.json", jsonProfile))
	require.NoError(t, err)

	assert.Equal(t, "HydroJet Pros", p.Basics.CompanyName)
	assert.Equal(t, 40.0, p.Basics.ServiceRadius)
	require.NotNil(t, p.Insurance.GeneralLiability)
	assert.Equal(t, 2_000_000.0, p.Insurance.GeneralLiability.Amount)
	require.NotNil(t, p.Insurance.WorkersComp.Covered)
	assert.True(t, *p.Insurance.WorkersComp.Covered)
	assert.True(t, p.Services.Graffiti)
	assert.Equal(t, OSHA10Hour, p.Certifications.OSHALevel)
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	p, err := Load(writeProfile(t, "profile.yaml", yamlProfile))
	require.NoError(t, err)

	assert.Equal(t, "HydroJet Pros", p.Basics.CompanyName)
	assert.Equal(t, OSHA30Hour, p.Certifications.OSHALevel)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"bad state", `{"basics": {"state": "California"}}`},
		{"bad zip", `{"basics": {"zip": "9120"}}`},
		{"bad osha level", `{"certifications": {"oshaLevel": "40-hour"}}`},
		{"negative radius", `{"basics": {"serviceRadius": -5}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(writeProfile(t, "profile.json", tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestCheckForAnalysis(t *testing.T) {
	t.Parallel()

	var p *CompanyProfile
	assert.Error(t, p.CheckForAnalysis())

	p = &CompanyProfile{}
	assert.Error(t, p.CheckForAnalysis())

	p = &CompanyProfile{Basics: Basics{CompanyName: "HydroJet Pros"}}
	assert.NoError(t, p.CheckForAnalysis())
}
