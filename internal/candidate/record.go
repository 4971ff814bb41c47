package candidate

import "strings"

// MaxTechStackSize limits how many technologies a candidate may declare.
const MaxTechStackSize = 10

// TechnicalAnswer pairs a generated question with the candidate's answer.
type TechnicalAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Record accumulates the information collected during one screening session.
// It is owned by a single conversation engine and never shared.
type Record struct {
	FullName         string                     `json:"full_name"`
	Email            string                     `json:"email"`
	Phone            string                     `json:"phone"`
	ExperienceYears  int                        `json:"experience_years"`
	DesiredPosition  string                     `json:"desired_position"`
	Location         string                     `json:"location"`
	TechStack        []string                   `json:"tech_stack"`
	TechnicalAnswers map[string]TechnicalAnswer `json:"technical_answers"`

	// A zero ExperienceYears is a valid answer, so track explicit
	// assignment separately instead of overloading the value.
	experienceSet bool
}

// NewRecord returns an empty record ready for a new session.
func NewRecord() *Record {
	return &Record{
		TechnicalAnswers: make(map[string]TechnicalAnswer),
	}
}

// SetExperience records the candidate's years of experience and marks the
// field as answered.
func (r *Record) SetExperience(years int) {
	r.ExperienceYears = years
	r.experienceSet = true
}

// HasExperience reports whether the experience question has been answered.
func (r *Record) HasExperience() bool {
	return r.experienceSet
}

// IsComplete reports whether every required field has been collected.
func (r *Record) IsComplete() bool {
	return r.FullName != "" &&
		r.Email != "" &&
		r.Phone != "" &&
		r.experienceSet &&
		r.DesiredPosition != "" &&
		r.Location != "" &&
		len(r.TechStack) > 0
}

// HasContact reports whether the record carries enough identity to be worth
// persisting when a session ends early.
func (r *Record) HasContact() bool {
	return r.FullName != "" || r.Email != ""
}

// TechStackString renders the stack for display, comma separated.
func (r *Record) TechStackString() string {
	return strings.Join(r.TechStack, ", ")
}
