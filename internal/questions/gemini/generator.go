// Package gemini generates technical screening questions with the Gemini API.
package gemini

import (
	"context"
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/talentscout/assistant/internal/logger"
	"github.com/talentscout/assistant/internal/questions"
	"github.com/talentscout/assistant/internal/utils"
)

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// retryBackoff is a variable so tests can disable the wait.
var retryBackoff = 2 * time.Second

var numberedLine = regexp.MustCompile(`^\s*\d+[.)]\s*(.+)$`)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Generator asks Gemini for screening questions tailored to the candidate's
// stack and experience. It implements questions.Generator.
type Generator struct {
	client     contentGenerator
	logger     *zap.Logger
	max        int
	maxRetries int
	maxLogLen  int
}

// NewGenerator builds a Gemini-backed question generator producing at most
// max questions with the given retry budget.
func NewGenerator(client contentGenerator, log *zap.Logger, max, maxRetries, maxLogLength int) *Generator {
	if max <= 0 || max > questions.MaxQuestions {
		max = questions.MaxQuestions
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Generator{
		client:     client,
		logger:     log,
		max:        max,
		maxRetries: maxRetries,
		maxLogLen:  maxLogLength,
	}
}

// Generate implements questions.Generator.
func (g *Generator) Generate(ctx context.Context, techStack []string, experienceYears int) ([]string, error) {
	if len(techStack) == 0 {
		return nil, nil
	}

	prompt := g.buildPrompt(techStack, experienceYears)

	g.logger.Debug("gemini question request",
		zap.Strings("tech_stack", techStack),
		zap.Int("experience_years", experienceYears),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, g.maxLogLen)),
	)

	var lastErr error
	for attempt := 0; attempt <= g.maxRetries; attempt++ {
		if attempt > 0 {
			if err := utils.WaitFor(ctx, retryBackoff); err != nil {
				return nil, err
			}
		}

		raw, err := g.client.GenerateContent(ctx, prompt)
		if err != nil {
			lastErr = err
			g.logger.Warn("gemini question generation failed",
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			continue
		}

		g.logger.Debug("gemini question response",
			zap.Int("response_length", utf8.RuneCountInString(raw)),
			zap.String("response_preview", logger.TruncateForLog(raw, g.maxLogLen)),
		)

		parsed := parseQuestions(raw, g.max)
		if len(parsed) == 0 {
			lastErr = fmt.Errorf("no questions found in gemini response")
			continue
		}

		return parsed, nil
	}

	return nil, fmt.Errorf("generating questions after %d attempts: %w", g.maxRetries+1, lastErr)
}

func (g *Generator) buildPrompt(techStack []string, experienceYears int) string {
	prompt := strings.ReplaceAll(promptTemplate, "{{TECH_STACK}}", strings.Join(techStack, ", "))
	prompt = strings.ReplaceAll(prompt, "{{EXPERIENCE_YEARS}}", fmt.Sprintf("%d", experienceYears))
	prompt = strings.ReplaceAll(prompt, "{{MAX_QUESTIONS}}", fmt.Sprintf("%d", g.max))
	return prompt
}

// parseQuestions extracts numbered list items from the model output, keeping
// at most max entries in order.
func parseQuestions(raw string, max int) []string {
	var parsed []string
	for _, line := range strings.Split(raw, "\n") {
		match := numberedLine.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		question := strings.TrimSpace(match[1])
		if question == "" {
			continue
		}
		parsed = append(parsed, question)
		if len(parsed) == max {
			break
		}
	}
	return parsed
}
