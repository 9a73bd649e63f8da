package entities

import "strings"

// Appraiser is one panel entry, master or client-specific. Panel rows are
// administered outside this service; we only read them.
//
// The numeric columns (workload, capacity, fees, quality) stay raw strings on
// purpose: panel sheets contain blank and malformed cells, and the matching
// engine gives malformed values different treatment per check (fail-open for
// capacity, fail-closed for quality). Parsing happens at the point of use.

type Appraiser struct {
	ID                string `json:"appraiser_id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	Company           string `json:"company,omitempty"`
	States            string `json:"states"`
	PropertyTypes     string `json:"property_types"`
	Certifications    string `json:"certifications,omitempty"`
	CurrentWorkload   string `json:"current_workload"`
	Capacity          string `json:"capacity"`
	AvgFee            string `json:"avg_fee"`
	AvgTurnaroundDays string `json:"avg_turnaround_days"`
	QualityScore      string `json:"quality_score"`
	Active            string `json:"active"`
}

// IsActive reports whether the panel marks this appraiser active. The sheet
// stores the flag as TRUE/FALSE text.
func (a Appraiser) IsActive() bool {
	return strings.EqualFold(strings.TrimSpace(a.Active), "TRUE")
}

// CoversState checks the comma-separated licensed-state list,
// case-insensitively.
func (a Appraiser) CoversState(state string) bool {
	want := strings.ToUpper(strings.TrimSpace(state))
	for _, s := range strings.Split(a.States, ",") {
		if strings.ToUpper(strings.TrimSpace(s)) == want {
			return true
		}
	}
	return false
}

// CoversPropertyType checks the comma-separated property-type list. Property
// types match exactly (e.g. "Mixed-Use" is not "mixed-use").
func (a Appraiser) CoversPropertyType(propertyType string) bool {
	for _, t := range strings.Split(a.PropertyTypes, ",") {
		if strings.TrimSpace(t) == propertyType {
			return true
		}
	}
	return false
}
