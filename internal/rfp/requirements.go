// Package rfp parses free-text solicitation documents into structured
// requirement sets. Extraction is keyword and regex based; an unmatched
// pattern leaves the field absent, which downstream scoring treats as
// "the RFP does not ask for this".
package rfp

// Location is the demanded place of performance. Any part may be absent.
type Location struct {
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Address string `json:"address,omitempty"`
	Zip     string `json:"zip,omitempty"`
}

// Empty reports whether the RFP stated no location requirement.
func (l Location) Empty() bool {
	return l.City == "" && l.Zip == ""
}

// Insurance holds demanded coverage minimums. Nil means the policy was not
// mentioned; mentioning a policy without an amount is represented by the
// boolean fields.
type Insurance struct {
	GeneralLiability *float64 `json:"generalLiability,omitempty"`
	WorkersComp      *bool    `json:"workersComp,omitempty"`
	CommercialAuto   *float64 `json:"commercialAuto,omitempty"`
	Umbrella         *float64 `json:"umbrella,omitempty"`
	Professional     *float64 `json:"professional,omitempty"`
}

// Empty reports whether the RFP stated no insurance requirement at all.
func (i Insurance) Empty() bool {
	return i.GeneralLiability == nil && i.WorkersComp == nil &&
		i.CommercialAuto == nil && i.Umbrella == nil && i.Professional == nil
}

// Equipment holds demanded equipment thresholds.
type Equipment struct {
	MinPSI        *int  `json:"minPSI,omitempty"`
	HotWater      *bool `json:"hotWater,omitempty"`
	WaterRecovery *bool `json:"waterRecovery,omitempty"`
	AerialLift    *bool `json:"aerialLift,omitempty"`
}

// Empty reports whether the RFP stated no equipment requirement.
func (e Equipment) Empty() bool {
	return e.MinPSI == nil && e.HotWater == nil && e.WaterRecovery == nil && e.AerialLift == nil
}

// Operational holds demanded scheduling and response capabilities.
type Operational struct {
	NightWork         *bool    `json:"nightWork,omitempty"`
	WeekendWork       *bool    `json:"weekendWork,omitempty"`
	EmergencyResponse *bool    `json:"emergencyResponse,omitempty"`
	MaxResponseTime   *float64 `json:"maxResponseTime,omitempty"`
}

// Empty reports whether the RFP stated no operational requirement.
func (o Operational) Empty() bool {
	return o.NightWork == nil && o.WeekendWork == nil &&
		o.EmergencyResponse == nil && o.MaxResponseTime == nil
}

// Requirements is the RFP's parsed demand set. It mirrors the profile shape
// but every field is a requirement, not a capability. Created fresh per
// analysis, immutable once produced.
type Requirements struct {
	Location       Location    `json:"location"`
	Insurance      Insurance   `json:"insurance"`
	Services       []string    `json:"services"`
	Certifications []string    `json:"certifications"`
	Equipment      Equipment   `json:"equipment"`
	Operational    Operational `json:"operational"`
}
