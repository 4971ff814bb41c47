package engine

import (
	"fmt"
	"strings"

	"github.com/talentscout/assistant/internal/candidate"
	"github.com/talentscout/assistant/internal/extract"
)

// fieldSpec declares one collectable field: how to detect that it is still
// missing, how to fill it from a turn of free text, and what to say when the
// input was accepted or not recognized. The specs are walked in order, so the
// engine always requests the first missing field and never a later one.
type fieldSpec struct {
	name     string
	missing  func(*candidate.Record) bool
	fill     func(*candidate.Record, string) bool
	accepted func(*candidate.Record) string
	retry    string
}

var fieldSpecs = []fieldSpec{
	{
		name:    "full_name",
		missing: func(r *candidate.Record) bool { return r.FullName == "" },
		fill: func(r *candidate.Record, input string) bool {
			name, ok := extract.Name(input)
			if ok {
				r.FullName = name
			}
			return ok
		},
		accepted: func(r *candidate.Record) string {
			return fmt.Sprintf("Nice to meet you, %s! Let me gather some information for your application. Could you please provide your email address?", r.FullName)
		},
		retry: promptName,
	},
	{
		name:    "email",
		missing: func(r *candidate.Record) bool { return r.Email == "" },
		fill: func(r *candidate.Record, input string) bool {
			email, ok := extract.Email(input)
			if ok {
				r.Email = email
			}
			return ok
		},
		accepted: func(*candidate.Record) string {
			return "Perfect! Now, could you please provide your phone number?"
		},
		retry: "I need a valid email address. Could you please provide your email?",
	},
	{
		name:    "phone",
		missing: func(r *candidate.Record) bool { return r.Phone == "" },
		fill: func(r *candidate.Record, input string) bool {
			phone, ok := extract.Phone(input)
			if ok {
				r.Phone = phone
			}
			return ok
		},
		accepted: func(*candidate.Record) string {
			return "Great! How many years of professional experience do you have?"
		},
		retry: "Please provide a valid phone number.",
	},
	{
		name:    "experience_years",
		missing: func(r *candidate.Record) bool { return !r.HasExperience() },
		fill: func(r *candidate.Record, input string) bool {
			years, ok := extract.Years(input)
			if ok {
				r.SetExperience(years)
			}
			return ok
		},
		accepted: func(*candidate.Record) string {
			return "Excellent! What position(s) are you interested in applying for?"
		},
		retry: "Please provide your years of experience as a number (e.g., 3, 5, 10).",
	},
	{
		name:    "desired_position",
		missing: func(r *candidate.Record) bool { return r.DesiredPosition == "" },
		fill: func(r *candidate.Record, input string) bool {
			position := strings.TrimSpace(input)
			if position == "" {
				return false
			}
			r.DesiredPosition = position
			return true
		},
		accepted: func(*candidate.Record) string {
			return "Thank you! What's your current location (city, state/country)?"
		},
		retry: "What position(s) are you interested in applying for?",
	},
	{
		name:    "location",
		missing: func(r *candidate.Record) bool { return r.Location == "" },
		fill: func(r *candidate.Record, input string) bool {
			location := strings.TrimSpace(input)
			if location == "" {
				return false
			}
			r.Location = location
			return true
		},
		accepted: func(*candidate.Record) string {
			return "Almost done! Please list your tech stack - the programming languages, frameworks, databases, and tools you're proficient in. You can separate them with commas."
		},
		retry: "What's your current location (city, state/country)?",
	},
	{
		name:    "tech_stack",
		missing: func(r *candidate.Record) bool { return len(r.TechStack) == 0 },
		fill: func(r *candidate.Record, input string) bool {
			stack := extract.TechStack(input)
			if len(stack) == 0 {
				return false
			}
			r.TechStack = stack
			return true
		},
		accepted: func(r *candidate.Record) string {
			return fmt.Sprintf("Perfect! I've recorded your tech stack: %s.", r.TechStackString())
		},
		retry: "Please provide your technical skills (e.g., Python, React, MySQL, Docker).",
	},
}

// nextMissing returns the first field spec not yet satisfied by the record.
func nextMissing(r *candidate.Record) (fieldSpec, bool) {
	for _, spec := range fieldSpecs {
		if spec.missing(r) {
			return spec, true
		}
	}
	return fieldSpec{}, false
}
