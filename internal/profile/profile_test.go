package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(v bool) *bool { return &v }

func TestHeld(t *testing.T) {
	t.Parallel()

	certs := Certifications{
		BusinessLicense: boolPtr(true),
		SAMRegistration: boolPtr(false),
		CageCode:        "1ABC2",
		OSHALevel:       OSHA30Hour,
	}

	held, declared := certs.Held("businessLicense")
	assert.True(t, held)
	assert.True(t, declared)

	held, declared = certs.Held("samRegistration")
	assert.False(t, held)
	assert.True(t, declared)

	held, declared = certs.Held("cageCode")
	assert.True(t, held)
	assert.True(t, declared)

	held, declared = certs.Held("oshaLevel")
	assert.True(t, held)
	assert.True(t, declared)

	held, declared = certs.Held("prevailingWage")
	assert.False(t, held)
	assert.False(t, declared)

	held, declared = certs.Held("unknownField")
	assert.False(t, held)
	assert.False(t, declared)
}

func TestHeldOSHANone(t *testing.T) {
	t.Parallel()

	certs := Certifications{OSHALevel: OSHANone}
	held, declared := certs.Held("oshaLevel")
	assert.False(t, held)
	assert.True(t, declared)
}

func TestMaxPSI(t *testing.T) {
	t.Parallel()

	equipment := Equipment{
		HotWater:  &WaterSystem{PSI: 3000},
		ColdWater: &WaterSystem{PSI: 3500},
	}
	assert.Equal(t, 3500, equipment.MaxPSI())
	assert.Equal(t, 0, Equipment{}.MaxPSI())
}

func TestLocation(t *testing.T) {
	t.Parallel()

	p := &CompanyProfile{Basics: Basics{Zip: "91206", City: "Glendale", State: "CA"}}
	assert.Equal(t, "91206", p.Location())

	p = &CompanyProfile{Basics: Basics{City: "Glendale"}}
	assert.Equal(t, "Glendale, CA", p.Location())

	p = &CompanyProfile{}
	assert.Equal(t, "", p.Location())
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	p := &CompanyProfile{Basics: Basics{CompanyName: "HydroJet Pros", DBAName: "HJP"}}
	assert.Equal(t, "HydroJet Pros", p.DisplayName())

	p = &CompanyProfile{Basics: Basics{DBAName: "HJP"}}
	assert.Equal(t, "HJP", p.DisplayName())
}

func TestServicesCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Services{}.Count())
	assert.Equal(t, 2, Services{Graffiti: true, Windows: true}.Count())
}
