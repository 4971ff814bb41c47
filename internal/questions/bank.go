package questions

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed bank.json
var bankFile []byte

var (
	bankOnce sync.Once
	bankData map[string]map[level][]string
	bankErr  error
)

// Bank is the default question generator. It walks the tech stack in order
// and draws questions for the candidate's experience level from an embedded
// bank, falling back to a generic question for unknown technologies. Output
// is fully deterministic.
type Bank struct {
	max int
}

// NewBank creates a bank-backed generator producing at most max questions.
// Non-positive or oversized values fall back to MaxQuestions.
func NewBank(max int) *Bank {
	if max <= 0 || max > MaxQuestions {
		max = MaxQuestions
	}
	return &Bank{max: max}
}

// Generate implements Generator.
func (b *Bank) Generate(_ context.Context, techStack []string, experienceYears int) ([]string, error) {
	bank, err := loadBank()
	if err != nil {
		return nil, err
	}

	if len(techStack) == 0 {
		return nil, nil
	}

	lvl := levelFor(experienceYears)
	generated := make([]string, 0, b.max)

	// One question per technology per pass, so every declared technology
	// gets covered before any gets a second question.
	for pass := 0; len(generated) < b.max; pass++ {
		added := false
		for _, tech := range techStack {
			if len(generated) == b.max {
				break
			}

			question, ok := b.questionFor(bank, tech, lvl, pass)
			if !ok {
				continue
			}

			generated = append(generated, question)
			added = true
		}
		if !added {
			break
		}
	}

	return generated, nil
}

func (b *Bank) questionFor(bank map[string]map[level][]string, tech string, lvl level, pass int) (string, bool) {
	tiers, known := bank[strings.ToLower(strings.TrimSpace(tech))]
	if !known {
		if pass > 0 {
			return "", false
		}
		return fmt.Sprintf("Tell me about a recent project where you used %s. What challenges did you run into and how did you solve them?", tech), true
	}

	// Prefer the candidate's level, then spill into the remaining tiers.
	ordered := append([]string{}, tiers[lvl]...)
	for _, other := range []level{levelBeginner, levelIntermediate, levelAdvanced} {
		if other != lvl {
			ordered = append(ordered, tiers[other]...)
		}
	}

	if pass >= len(ordered) {
		return "", false
	}

	return ordered[pass], true
}

func loadBank() (map[string]map[level][]string, error) {
	bankOnce.Do(func() {
		bankErr = json.Unmarshal(bankFile, &bankData)
	})
	if bankErr != nil {
		return nil, fmt.Errorf("parsing embedded question bank: %w", bankErr)
	}
	return bankData, nil
}
