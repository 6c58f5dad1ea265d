package profile

import "time"

// JobStatus values accepted by the profile editor.
const (
	StatusEmployed     = "employed"
	StatusUnemployed   = "unemployed"
	StatusStudent      = "student"
	StatusFreelancer   = "freelancer"
	StatusEntrepreneur = "entrepreneur"
)

// BioSoftLimit is advisory; the editor warns past it but never rejects.
const BioSoftLimit = 600

// Record is the profile blob persisted as a single serialized slot.
// Empty-string fields are dropped at write time and re-defaulted on load,
// which is what makes the save/load round trip lawful for non-empty fields.
type Record struct {
	Name       string          `json:"name,omitempty"`
	JobStatus  string          `json:"jobStatus,omitempty"`
	BatchYear  string          `json:"batchYear,omitempty"`
	JobTitle   string          `json:"jobTitle,omitempty"`
	Location   string          `json:"location,omitempty"`
	Bio        string          `json:"bio,omitempty"`
	Social     Social          `json:"social"`
	Experience []TimelineEntry `json:"experience,omitempty"`
	Education  []TimelineEntry `json:"education,omitempty"`
	Skills     []string        `json:"skills,omitempty"`
	LastSaved  time.Time       `json:"lastSaved"`
}

// Social holds the profile's social links.
type Social struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// TimelineEntry is one experience or education item. Entries are created with
// placeholder defaults, edited in place, and removed only by explicit action.
type TimelineEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// NewExperienceEntry returns the placeholder an "add experience" action creates.
func NewExperienceEntry() TimelineEntry {
	return TimelineEntry{
		Title:       "Position Title",
		Company:     "Company Name",
		Duration:    "Start - End Date",
		Description: "Description of role and achievements...",
	}
}

// NewEducationEntry returns the placeholder an "add education" action creates.
func NewEducationEntry() TimelineEntry {
	return TimelineEntry{
		Title:       "Degree Name",
		Company:     "Institution Name",
		Duration:    "Year - Year",
		Description: "Details about your education...",
	}
}
