package rfp

import (
	"fmt"
	"sort"
	"strings"
)

// Sample is a built-in solicitation used for demos and tests.
type Sample struct {
	Title    string
	Content  string
	Category string
}

// Samples are realistic solicitations spanning the scoring range, from a
// local near-perfect fit to out-of-reach infrastructure work.
var Samples = map[string]Sample{
	"glendale": {
		Title:    "City of Glendale Pressure Washing",
		Category: "government",
		Content: `City of Glendale Pressure Washing Services
Location: Glendale Civic Center, 613 E Broadway, Glendale, CA 91206
Requirements:
- General Liability: $1M minimum
- Service radius: Within 20 miles
- Hot water pressure washing capability
- Monthly service schedule
- EPA compliant operations
Services: Building exterior, sidewalk cleaning, parking garage
Budget: $5,000/month
Contact: facilities@glendale.gov
Deadline: 30 days from posting`,
	},
	"lax": {
		Title:    "LAX Airport Facility Cleaning",
		Category: "aviation",
		Content: `Los Angeles Airport Facility Cleaning
Location: LAX Airport, Los Angeles, CA
Requirements:
- General Liability: $5M minimum
- Specialized runway cleaning equipment
- 24/7 emergency response
- Prevailing wage certified
- Airport security clearance
Services: Terminal exterior cleaning, runway marks removal
Budget: $25,000/month
Contact: procurement@lawa.org
Special Requirements: TSA background checks required`,
	},
	"golden-gate": {
		Title:    "Golden Gate Bridge Maintenance",
		Category: "infrastructure",
		Content: `San Francisco Bridge Maintenance
Location: Golden Gate Bridge, San Francisco, CA 94102
Requirements:
- General Liability: $10M minimum
- Specialized bridge equipment
- Working at heights certification
- Marine equipment for under-bridge
- Union labor required
Services: Bridge cable cleaning, tower maintenance
Budget: $100,000/month
Contact: maintenance@goldengate.org
Special Requirements: Coast Guard certification for marine operations`,
	},
	"retail": {
		Title:    "Target Stores Regional Cleaning",
		Category: "retail",
		Content: `Target Corporation - Regional Store Cleaning Contract
Locations: 15 stores across Southern California
Requirements:
- General Liability: $2M minimum
- Workers Comp coverage required
- Background checks for all employees
- Green cleaning products only
- Night and weekend availability
Services: Pressure washing, sidewalk cleaning, dumpster area sanitization
Budget: $8,000/month per store
Contact: vendor.relations@target.com
Special Requirements: Target vendor certification required`,
	},
	"hospital": {
		Title:    "County Hospital System Cleaning",
		Category: "healthcare",
		Content: `Los Angeles County Hospital System
Locations: 5 medical facilities countywide
Requirements:
- General Liability: $3M minimum
- Healthcare facility experience (5 years)
- OSHA bloodborne pathogen certified
- HIPAA compliance training
- 24/7 emergency response capability
Services: Medical facility exterior cleaning, biohazard disposal
Budget: $50,000/month
Contact: procurement@lacounty.gov
Special Requirements: Joint Commission standards compliance`,
	},
	"emergency": {
		Title:    "Emergency Spill Response Services",
		Category: "emergency",
		Content: `California Emergency Spill Response
Coverage Area: Statewide on-call services
Requirements:
- General Liability: $5M minimum
- Hazmat certification required
- 2-hour response time guarantee
- Specialized spill equipment
- EPA emergency response certified
Services: Chemical spills, oil spills, biohazard cleanup
Budget: $10,000/month retainer + per incident
Contact: emergency@calema.ca.gov
Special Requirements: CalOSHA certified, DEQ permits`,
	},
	"office-park": {
		Title:    "Office Park Exterior Services",
		Category: "commercial",
		Content: `Irvine Business Complex Cleaning
Location: 2525 Main Street, Irvine, CA 92614
Requirements:
- General Liability: $1M minimum
- Workers Comp required
- Evening service (after hours)
- Green cleaning products
- 5 days per week service
Services: Building washing, sidewalk cleaning, dumpster area, awning cleaning
Budget: $12,000/month
Contact: property@irvineco.com
Special Requirements: Background checks for all staff`,
	},
}

// SampleNames returns the sample keys in stable order.
func SampleNames() []string {
	names := make([]string, 0, len(Samples))
	for name := range Samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupSample fetches a sample by name, listing the valid names on a miss.
func LookupSample(name string) (Sample, error) {
	sample, ok := Samples[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Sample{}, fmt.Errorf("unknown sample %q (available: %s)", name, strings.Join(SampleNames(), ", "))
	}
	return sample, nil
}
