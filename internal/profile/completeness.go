package profile

import (
	"fmt"
	"math"
)

// Section names used in completeness reporting.
const (
	SectionBasics         = "basics"
	SectionInsurance      = "insurance"
	SectionServices       = "services"
	SectionEquipment      = "equipment"
	SectionCertifications = "certifications"
	SectionOperational    = "operational"
)

// sectionWeights sum to 1. Basics and insurance dominate because most RFPs
// gate on identity and coverage before anything else.
var sectionWeights = map[string]float64{
	SectionBasics:         0.30,
	SectionInsurance:      0.25,
	SectionServices:       0.15,
	SectionEquipment:      0.15,
	SectionCertifications: 0.10,
	SectionOperational:    0.05,
}

// MissingField identifies a profile field the analysis needs but the profile
// does not answer.
type MissingField struct {
	Section string `json:"section"`
	Field   string `json:"field"`
	Label   string `json:"label"`
}

// Completeness summarizes how answerable the profile is.
type Completeness struct {
	Overall         int                `json:"overall"`
	Sections        map[string]float64 `json:"sections"`
	MissingCritical []MissingField     `json:"missingCritical"`
	Suggestions     []string           `json:"suggestions"`
}

// Assess computes section-by-section completeness, the missing critical
// fields, and up to five improvement suggestions.
func (p *CompanyProfile) Assess() Completeness {
	sections := p.sectionScores()

	overall := 0.0
	for name, score := range sections {
		overall += score * sectionWeights[name]
	}

	return Completeness{
		Overall:         int(math.Round(overall)),
		Sections:        sections,
		MissingCritical: p.criticalMissing(),
		Suggestions:     p.suggestions(int(math.Round(overall))),
	}
}

func (p *CompanyProfile) sectionScores() map[string]float64 {
	sections := make(map[string]float64, len(sectionWeights))

	basicsFields := []bool{
		p.Basics.CompanyName != "",
		p.Basics.Address != "",
		p.Basics.City != "",
		p.Basics.State != "",
		p.Basics.Zip != "",
		p.Basics.YearEstablished != 0,
		p.Basics.EntityType != "",
		p.Basics.EIN != "",
		p.Basics.Employees != 0,
		p.Basics.ServiceRadius != 0,
	}
	completed := 0
	for _, set := range basicsFields {
		if set {
			completed++
		}
	}
	sections[SectionBasics] = float64(completed) / float64(len(basicsFields)) * 100

	insurance := 0.0
	if p.Insurance.GeneralLiability != nil && p.Insurance.GeneralLiability.Amount > 0 {
		insurance += 40
	}
	if p.Insurance.WorkersComp != nil && p.Insurance.WorkersComp.Covered != nil {
		insurance += 30
	}
	if p.Insurance.CommercialAuto != nil && p.Insurance.CommercialAuto.Amount > 0 {
		insurance += 20
	}
	if p.Insurance.Umbrella != nil && p.Insurance.Umbrella.Amount > 0 {
		insurance += 5
	}
	if p.Insurance.Professional != nil && p.Insurance.Professional.Amount > 0 {
		insurance += 5
	}
	sections[SectionInsurance] = insurance

	// Five declared services count as a fully described service line.
	sections[SectionServices] = math.Min(100, float64(p.Services.Count())/5*100)

	equipment := 0.0
	if p.Equipment.HotWater != nil && p.Equipment.HotWater.Capable != nil {
		equipment += 20
	}
	if p.Equipment.HotWater != nil && p.Equipment.HotWater.PSI > 0 {
		equipment += 10
	}
	if p.Equipment.ColdWater != nil && p.Equipment.ColdWater.Capable != nil {
		equipment += 20
	}
	if p.Equipment.ColdWater != nil && p.Equipment.ColdWater.PSI > 0 {
		equipment += 10
	}
	if p.Equipment.WaterRecovery != nil {
		equipment += 10
	}
	if p.Equipment.NumberOfTrucks > 0 {
		equipment += 10
	}
	if p.Equipment.SurfaceCleaners != nil {
		equipment += 10
	}
	if p.Equipment.EPAApprovedChemicals != nil {
		equipment += 10
	}
	sections[SectionEquipment] = equipment

	certs := 0.0
	if p.Certifications.BusinessLicense != nil {
		certs += 30
	}
	if p.Certifications.ContractorLicense != nil {
		certs += 20
	}
	if p.Certifications.EPACompliant != nil {
		certs += 20
	}
	if p.Certifications.OSHALevel != "" && p.Certifications.OSHALevel != OSHANone {
		certs += 20
	}
	if p.Certifications.SAMRegistration != nil {
		certs += 10
	}
	sections[SectionCertifications] = certs

	operational := 0.0
	if p.Operational.NightWork != nil {
		operational += 20
	}
	if p.Operational.WeekendWork != nil {
		operational += 20
	}
	if p.Operational.EmergencyResponseTime != nil {
		operational += 30
	}
	if p.Operational.PaymentTerms != "" {
		operational += 30
	}
	sections[SectionOperational] = operational

	return sections
}

func (p *CompanyProfile) criticalMissing() []MissingField {
	missing := []MissingField{}

	if p.Basics.CompanyName == "" {
		missing = append(missing, MissingField{SectionBasics, "companyName", "Company Name"})
	}
	if p.Basics.Address == "" {
		missing = append(missing, MissingField{SectionBasics, "address", "Business Address"})
	}
	if p.Basics.City == "" {
		missing = append(missing, MissingField{SectionBasics, "city", "City"})
	}
	if p.Basics.State == "" {
		missing = append(missing, MissingField{SectionBasics, "state", "State"})
	}
	if p.Basics.Zip == "" {
		missing = append(missing, MissingField{SectionBasics, "zip", "ZIP Code"})
	}
	if p.Basics.ServiceRadius == 0 {
		missing = append(missing, MissingField{SectionBasics, "serviceRadius", "Service Radius"})
	}

	if p.Insurance.GeneralLiability == nil || p.Insurance.GeneralLiability.Amount == 0 {
		missing = append(missing, MissingField{SectionInsurance, "generalLiability", "General Liability Coverage"})
	}
	if p.Insurance.WorkersComp == nil || p.Insurance.WorkersComp.Covered == nil {
		missing = append(missing, MissingField{SectionInsurance, "workersComp", "Workers Compensation Status"})
	}

	if p.Services.Count() == 0 {
		missing = append(missing, MissingField{SectionServices, "any", "At least one service"})
	}

	if p.Certifications.BusinessLicense == nil {
		missing = append(missing, MissingField{SectionCertifications, "businessLicense", "Business License Status"})
	}

	return missing
}

func (p *CompanyProfile) suggestions(completeness int) []string {
	suggestions := []string{}

	if p.Basics.ServiceRadius == 0 {
		suggestions = append(suggestions, "Set your service radius to unlock location-based RFP matching")
	}
	if p.Insurance.GeneralLiability == nil || p.Insurance.GeneralLiability.Amount == 0 {
		suggestions = append(suggestions, "Add your General Liability coverage amount - this is required for most RFPs")
	}
	if count := p.Services.Count(); count < 5 {
		suggestions = append(suggestions, fmt.Sprintf("Add %d more services to expand your RFP opportunities", 5-count))
	}
	hotCapable := p.Equipment.HotWater != nil && p.Equipment.HotWater.Capable != nil && *p.Equipment.HotWater.Capable
	coldCapable := p.Equipment.ColdWater != nil && p.Equipment.ColdWater.Capable != nil && *p.Equipment.ColdWater.Capable
	if !hotCapable && !coldCapable {
		suggestions = append(suggestions, "Specify your pressure washing equipment capabilities")
	}
	if p.Certifications.SAMRegistration == nil || !*p.Certifications.SAMRegistration {
		suggestions = append(suggestions, "Register on SAM.gov to access federal government contracts")
	}
	if p.Certifications.OSHALevel == "" || p.Certifications.OSHALevel == OSHANone {
		suggestions = append(suggestions, "Consider OSHA certification to qualify for more commercial RFPs")
	}
	if p.Operational.EmergencyResponseTime == nil {
		suggestions = append(suggestions, "Add emergency response capability to qualify for 24/7 service RFPs")
	}

	if completeness < 50 {
		suggestions = append([]string{"Complete at least 50% of your profile to get accurate RFP matches"}, suggestions...)
	} else if completeness < 80 {
		suggestions = append(suggestions, "Complete your profile to 80% for optimal RFP matching accuracy")
	}

	if len(suggestions) > 5 {
		suggestions = suggestions[:5]
	}
	return suggestions
}
