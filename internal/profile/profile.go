// Package profile defines the company capability record that RFPs are scored
// against. Every field is optional: profiles are built incrementally and an
// absent field is distinct from an explicit false.
package profile

import (
	"fmt"
	"strings"
)

// OSHA certification levels recognized by certification scoring.
const (
	OSHANone   = "None"
	OSHA10Hour = "10-hour"
	OSHA30Hour = "30-hour"
)

// CompanyProfile is the bidder's capability record. It is read-only during
// analysis; editing and persistence belong to external tooling.
type CompanyProfile struct {
	Basics         Basics         `json:"basics" yaml:"basics"`
	Insurance      Insurance      `json:"insurance" yaml:"insurance"`
	Services       Services       `json:"services" yaml:"services"`
	Equipment      Equipment      `json:"equipment" yaml:"equipment"`
	Certifications Certifications `json:"certifications" yaml:"certifications"`
	Operational    Operational    `json:"operational" yaml:"operational"`
}

type Basics struct {
	CompanyName     string  `json:"companyName" yaml:"companyName"`
	DBAName         string  `json:"dbaName" yaml:"dbaName"`
	Address         string  `json:"address" yaml:"address"`
	City            string  `json:"city" yaml:"city"`
	State           string  `json:"state" yaml:"state" validate:"omitempty,len=2,alpha"`
	Zip             string  `json:"zip" yaml:"zip" validate:"omitempty,len=5,numeric"`
	YearEstablished int     `json:"yearEstablished" yaml:"yearEstablished" validate:"omitempty,gte=1900,lte=2100"`
	EntityType      string  `json:"entityType" yaml:"entityType"`
	EIN             string  `json:"ein" yaml:"ein"`
	Employees       int     `json:"employees" yaml:"employees" validate:"gte=0"`
	Crews           int     `json:"crews" yaml:"crews" validate:"gte=0"`
	ServiceRadius   float64 `json:"serviceRadius" yaml:"serviceRadius" validate:"gte=0"`
}

// Policy is a dollar-amount insurance policy.
type Policy struct {
	Amount  float64 `json:"amount" yaml:"amount" validate:"gte=0"`
	Carrier string  `json:"carrier" yaml:"carrier"`
	Expiry  string  `json:"expiry" yaml:"expiry"`
}

// WorkersComp coverage is a yes/no policy. Covered is a pointer so an
// unanswered question is distinguishable from an explicit "no".
type WorkersComp struct {
	Covered *bool  `json:"covered" yaml:"covered"`
	Carrier string `json:"carrier" yaml:"carrier"`
	Expiry  string `json:"expiry" yaml:"expiry"`
}

type Insurance struct {
	GeneralLiability *Policy      `json:"generalLiability" yaml:"generalLiability"`
	WorkersComp      *WorkersComp `json:"workersComp" yaml:"workersComp"`
	CommercialAuto   *Policy      `json:"commercialAuto" yaml:"commercialAuto"`
	Umbrella         *Policy      `json:"umbrella" yaml:"umbrella"`
	Professional     *Policy      `json:"professional" yaml:"professional"`
}

// Services are the company's capability flags.
type Services struct {
	BuildingExterior bool `json:"buildingExterior" yaml:"buildingExterior"`
	Concrete         bool `json:"concrete" yaml:"concrete"`
	ParkingStructure bool `json:"parkingStructure" yaml:"parkingStructure"`
	Graffiti         bool `json:"graffiti" yaml:"graffiti"`
	Emergency247     bool `json:"emergency247" yaml:"emergency247"`
	OilStain         bool `json:"oilStain" yaml:"oilStain"`
	GumRemoval       bool `json:"gumRemoval" yaml:"gumRemoval"`
	DriveThrough     bool `json:"driveThrough" yaml:"driveThrough"`
	Awnings          bool `json:"awnings" yaml:"awnings"`
	DumpsterAreas    bool `json:"dumpsterAreas" yaml:"dumpsterAreas"`
	Sidewalks        bool `json:"sidewalks" yaml:"sidewalks"`
	BrickCleaning    bool `json:"brickCleaning" yaml:"brickCleaning"`
	RustRemoval      bool `json:"rustRemoval" yaml:"rustRemoval"`
	FleetWashing     bool `json:"fleetWashing" yaml:"fleetWashing"`
	SolarPanels      bool `json:"solarPanels" yaml:"solarPanels"`
	Windows          bool `json:"windows" yaml:"windows"`
	RoofCleaning     bool `json:"roofCleaning" yaml:"roofCleaning"`
	DeckCleaning     bool `json:"deckCleaning" yaml:"deckCleaning"`
	FenceCleaning    bool `json:"fenceCleaning" yaml:"fenceCleaning"`
}

// Flags returns the capability set keyed by field name. Scorers match
// free-text requirements against these keys and values.
func (s Services) Flags() map[string]bool {
	return map[string]bool{
		"buildingExterior": s.BuildingExterior,
		"concrete":         s.Concrete,
		"parkingStructure": s.ParkingStructure,
		"graffiti":         s.Graffiti,
		"emergency247":     s.Emergency247,
		"oilStain":         s.OilStain,
		"gumRemoval":       s.GumRemoval,
		"driveThrough":     s.DriveThrough,
		"awnings":          s.Awnings,
		"dumpsterAreas":    s.DumpsterAreas,
		"sidewalks":        s.Sidewalks,
		"brickCleaning":    s.BrickCleaning,
		"rustRemoval":      s.RustRemoval,
		"fleetWashing":     s.FleetWashing,
		"solarPanels":      s.SolarPanels,
		"windows":          s.Windows,
		"roofCleaning":     s.RoofCleaning,
		"deckCleaning":     s.DeckCleaning,
		"fenceCleaning":    s.FenceCleaning,
	}
}

// Count returns the number of offered services.
func (s Services) Count() int {
	count := 0
	for _, offered := range s.Flags() {
		if offered {
			count++
		}
	}
	return count
}

// WaterSystem describes a hot- or cold-water pressure washing rig.
type WaterSystem struct {
	Capable *bool `json:"capable" yaml:"capable"`
	MaxTemp int   `json:"maxTemp" yaml:"maxTemp" validate:"gte=0"`
	PSI     int   `json:"psi" yaml:"psi" validate:"gte=0"`
}

type Equipment struct {
	HotWater             *WaterSystem `json:"hotWater" yaml:"hotWater"`
	ColdWater            *WaterSystem `json:"coldWater" yaml:"coldWater"`
	WaterRecovery        *bool        `json:"waterRecovery" yaml:"waterRecovery"`
	NumberOfTrucks       int          `json:"numberOfTrucks" yaml:"numberOfTrucks" validate:"gte=0"`
	AerialLift           *bool        `json:"aerialLift" yaml:"aerialLift"`
	SurfaceCleaners      *bool        `json:"surfaceCleaners" yaml:"surfaceCleaners"`
	ChemicalSystem       *bool        `json:"chemicalSystem" yaml:"chemicalSystem"`
	EPAApprovedChemicals *bool        `json:"epaApprovedChemicals" yaml:"epaApprovedChemicals"`
}

// MaxPSI returns the highest PSI rating across rigs.
func (e Equipment) MaxPSI() int {
	max := 0
	if e.HotWater != nil && e.HotWater.PSI > max {
		max = e.HotWater.PSI
	}
	if e.ColdWater != nil && e.ColdWater.PSI > max {
		max = e.ColdWater.PSI
	}
	return max
}

type Certifications struct {
	BusinessLicense   *bool  `json:"businessLicense" yaml:"businessLicense"`
	ContractorLicense *bool  `json:"contractorLicense" yaml:"contractorLicense"`
	EPACompliant      *bool  `json:"epaCompliant" yaml:"epaCompliant"`
	OSHALevel         string `json:"oshaLevel" yaml:"oshaLevel" validate:"omitempty,oneof=None 10-hour 30-hour"`
	PrevailingWage    *bool  `json:"prevailingWage" yaml:"prevailingWage"`
	SAMRegistration   *bool  `json:"samRegistration" yaml:"samRegistration"`
	CageCode          string `json:"cageCode" yaml:"cageCode"`
	DUNSNumber        string `json:"dunsNumber" yaml:"dunsNumber"`
	SmallBusiness     *bool  `json:"smallBusiness" yaml:"smallBusiness"`
	MinorityOwned     *bool  `json:"minorityOwned" yaml:"minorityOwned"`
	WomanOwned        *bool  `json:"womanOwned" yaml:"womanOwned"`
	VeteranOwned      *bool  `json:"veteranOwned" yaml:"veteranOwned"`
	HubZone           *bool  `json:"hubZone" yaml:"hubZone"`
}

// Held reports whether the named certification field is held (held) and
// whether the profile answered the question at all (declared). A declared
// false means the company confirmed it lacks the credential.
func (c Certifications) Held(field string) (held, declared bool) {
	switch field {
	case "businessLicense":
		return boolField(c.BusinessLicense)
	case "contractorLicense":
		return boolField(c.ContractorLicense)
	case "epaCompliant":
		return boolField(c.EPACompliant)
	case "oshaLevel":
		if c.OSHALevel == "" {
			return false, false
		}
		return c.OSHALevel != OSHANone, true
	case "prevailingWage":
		return boolField(c.PrevailingWage)
	case "samRegistration":
		return boolField(c.SAMRegistration)
	case "cageCode":
		return c.CageCode != "", c.CageCode != ""
	case "dunsNumber":
		return c.DUNSNumber != "", c.DUNSNumber != ""
	case "smallBusiness":
		return boolField(c.SmallBusiness)
	case "minorityOwned":
		return boolField(c.MinorityOwned)
	case "womanOwned":
		return boolField(c.WomanOwned)
	case "veteranOwned":
		return boolField(c.VeteranOwned)
	case "hubZone":
		return boolField(c.HubZone)
	default:
		return false, false
	}
}

func boolField(v *bool) (held, declared bool) {
	if v == nil {
		return false, false
	}
	return *v, true
}

type Operational struct {
	NightWork             *bool    `json:"nightWork" yaml:"nightWork"`
	WeekendWork           *bool    `json:"weekendWork" yaml:"weekendWork"`
	HolidayWork           *bool    `json:"holidayWork" yaml:"holidayWork"`
	MinimumContract       float64  `json:"minimumContract" yaml:"minimumContract" validate:"gte=0"`
	MaxSimultaneousJobs   int      `json:"maxSimultaneousJobs" yaml:"maxSimultaneousJobs" validate:"gte=0"`
	EmergencyResponseTime *float64 `json:"emergencyResponseTime" yaml:"emergencyResponseTime"`
	PaymentTerms          string   `json:"paymentTermsRequired" yaml:"paymentTermsRequired"`
}

// Location resolves the company's location the same way RFP locations are
// resolved for distance checks: ZIP when present, else "City, ST".
func (p *CompanyProfile) Location() string {
	if p.Basics.Zip != "" {
		return p.Basics.Zip
	}
	if p.Basics.City != "" {
		state := p.Basics.State
		if state == "" {
			state = "CA"
		}
		return fmt.Sprintf("%s, %s", p.Basics.City, state)
	}
	return ""
}

// DisplayName returns the company name for reports, falling back to the DBA.
func (p *CompanyProfile) DisplayName() string {
	if name := strings.TrimSpace(p.Basics.CompanyName); name != "" {
		return name
	}
	return strings.TrimSpace(p.Basics.DBAName)
}
