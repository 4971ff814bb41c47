// Package questions generates technical screening questions from a
// candidate's declared tech stack and experience.
package questions

import "context"

// MaxQuestions is the upper bound on questions a generator may return.
const MaxQuestions = 5

// Generator produces an ordered sequence of technical questions for the
// given tech stack and years of experience. Implementations return between
// zero and MaxQuestions items and must be deterministic for a given input
// pair where possible.
type Generator interface {
	Generate(ctx context.Context, techStack []string, experienceYears int) ([]string, error)
}

// level buckets candidates by experience for question selection.
type level string

const (
	levelBeginner     level = "beginner"
	levelIntermediate level = "intermediate"
	levelAdvanced     level = "advanced"
)

func levelFor(years int) level {
	switch {
	case years < 2:
		return levelBeginner
	case years <= 5:
		return levelIntermediate
	default:
		return levelAdvanced
	}
}
