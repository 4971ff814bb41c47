// Package engine drives the turn-by-turn screening dialogue: a single-session
// state machine that validates answers, mutates the candidate record and
// hands it to the store exactly once.
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentscout/assistant/internal/candidate"
	"github.com/talentscout/assistant/internal/logger"
	"github.com/talentscout/assistant/internal/questions"
)

// endingKeywords terminate the session when present anywhere in a turn's
// input, case-insensitively, in every stage.
var endingKeywords = []string{
	"goodbye", "bye", "exit", "quit", "end", "stop",
	"thanks", "thank you", "done", "finish", "complete",
}

// Recorder persists a finished or abandoned candidate record. Save reports
// success; failures stay behind the store boundary.
type Recorder interface {
	Save(record *candidate.Record) bool
}

// Message is one entry of the conversation history.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Summary describes the state of a session for display and logging.
type Summary struct {
	SessionID         string `json:"session_id"`
	Stage             string `json:"stage"`
	QuestionsAsked    int    `json:"questions_asked"`
	QuestionsAnswered int    `json:"questions_answered"`
	Turns             int    `json:"turns"`
}

// Engine runs one screening session. It is synchronous and single-session:
// every ProcessTurn call runs to completion before returning, and the record
// it mutates is never shared.
type Engine struct {
	ctx       context.Context
	sessionID string
	logger    *zap.Logger
	store     Recorder
	generator questions.Generator

	record      *candidate.Record
	stage       Stage
	questions   []string
	questionIdx int
	saved       bool
	history     []Message
}

// New creates an engine for a fresh session with an empty record.
func New(ctx context.Context, store Recorder, generator questions.Generator, log *zap.Logger) *Engine {
	sessionID := uuid.NewString()

	return &Engine{
		ctx:       ctx,
		sessionID: sessionID,
		logger:    logger.WithFields(log, zap.String(logger.FieldSession, sessionID)),
		store:     store,
		generator: generator,
		record:    candidate.NewRecord(),
		stage:     StageGreeting,
	}
}

// SessionID returns the unique identifier of this session.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// Stage returns the current conversation stage.
func (e *Engine) Stage() Stage {
	return e.stage
}

// ProcessTurn consumes one line of candidate input and returns the reply plus
// whether the conversation has ended. It never fails: malformed input is
// answered with a re-prompt, and persistence problems are swallowed at the
// store boundary.
func (e *Engine) ProcessTurn(input string) (string, bool) {
	e.appendHistory("user", input)

	var reply string
	if e.isEnding(input) {
		reply = e.endConversation()
	} else {
		reply = e.dispatch(input)
	}

	e.appendHistory("assistant", reply)

	return reply, e.stage == StageEnded
}

func (e *Engine) dispatch(input string) string {
	before := e.stage

	var reply string
	switch e.stage {
	case StageGreeting:
		reply = e.handleGreeting(input)
	case StageCollectingInfo:
		reply = e.handleInfoCollection(input)
	case StageTechQuestions:
		reply = e.handleTechQuestions(input)
	case StageConclusion:
		e.stage = StageEnded
		reply = conclusionFarewell
	default:
		reply = fallbackMessage
	}

	if e.stage != before {
		e.logger.Debug("stage transition",
			zap.String("from", before.String()),
			zap.String("to", e.stage.String()),
		)
	}

	return reply
}

// handleGreeting asks for and accepts the candidate's name. An empty first
// turn means "begin conversation" and yields the canned welcome.
func (e *Engine) handleGreeting(input string) string {
	if strings.TrimSpace(input) == "" {
		return welcomeMessage
	}

	name := fieldSpecs[0]
	if !name.fill(e.record, input) {
		return name.retry
	}

	e.stage = StageCollectingInfo
	return name.accepted(e.record)
}

// handleInfoCollection fills exactly the first missing field each turn. A
// validation miss re-prompts without any state change.
func (e *Engine) handleInfoCollection(input string) string {
	spec, ok := nextMissing(e.record)
	if !ok {
		return e.beginTechQuestions("")
	}

	if !spec.fill(e.record, input) {
		return spec.retry
	}

	accepted := spec.accepted(e.record)

	if _, remaining := nextMissing(e.record); remaining {
		return accepted
	}

	return e.beginTechQuestions(accepted)
}

// beginTechQuestions calls the question generator once, caches the result and
// either asks the first question or moves straight to the conclusion when the
// generator has nothing to ask.
func (e *Engine) beginTechQuestions(accepted string) string {
	generated := e.generateQuestions()
	e.questions = generated
	e.questionIdx = 0

	if len(generated) == 0 {
		return joinReplies(accepted, e.moveToConclusion())
	}

	e.stage = StageTechQuestions
	e.logger.Info("technical questions prepared", zap.Int("count", len(generated)))

	return joinReplies(accepted, fmt.Sprintf("%s\n\n1. %s", techQuestionsIntro, generated[0]))
}

func (e *Engine) generateQuestions() []string {
	if e.generator == nil {
		return nil
	}

	generated, err := e.generator.Generate(e.ctx, e.record.TechStack, e.record.ExperienceYears)
	if err != nil {
		// A failed generator is not fatal for the candidate: skip the
		// technical round rather than breaking the session.
		e.logger.Warn("question generation failed, skipping technical questions", zap.Error(err))
		return nil
	}

	if len(generated) > questions.MaxQuestions {
		generated = generated[:questions.MaxQuestions]
	}

	return generated
}

// handleTechQuestions stores the answer to the current question and asks the
// next one, concluding after the last.
func (e *Engine) handleTechQuestions(input string) string {
	if len(e.questions) == 0 {
		return e.moveToConclusion()
	}

	if e.questionIdx < len(e.questions) {
		key := fmt.Sprintf("question_%d", e.questionIdx+1)
		e.record.TechnicalAnswers[key] = candidate.TechnicalAnswer{
			Question: e.questions[e.questionIdx],
			Answer:   input,
		}
	}

	e.questionIdx++

	if e.questionIdx < len(e.questions) {
		number := e.questionIdx + 1
		return fmt.Sprintf("Thank you for your answer. Here's question %d:\n\n%d. %s", number, number, e.questions[e.questionIdx])
	}

	return e.moveToConclusion()
}

func (e *Engine) moveToConclusion() string {
	e.persist()
	e.stage = StageConclusion
	return conclusionMessage
}

// endConversation handles a termination keyword: the record is persisted when
// it carries a name or an email, and the session closes immediately.
func (e *Engine) endConversation() string {
	if e.record.HasContact() {
		e.persist()
	}

	e.stage = StageEnded
	return closingMessage
}

// persist hands the record to the store at most once per session.
func (e *Engine) persist() {
	if e.saved {
		return
	}
	e.saved = true

	if !e.store.Save(e.record) {
		e.logger.Warn("candidate record was not persisted")
		return
	}

	e.logger.Debug("candidate record handed to store",
		zap.Bool("complete", e.record.IsComplete()),
	)
}

func (e *Engine) isEnding(input string) bool {
	lowered := strings.ToLower(strings.TrimSpace(input))
	for _, keyword := range endingKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

func (e *Engine) appendHistory(role, content string) {
	e.history = append(e.history, Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
}

// History returns a copy of the conversation so far.
func (e *Engine) History() []Message {
	return append([]Message(nil), e.history...)
}

// Snapshot returns a copy of the record collected so far, for display only.
// The engine keeps exclusive ownership of the live record.
func (e *Engine) Snapshot() candidate.Record {
	snapshot := *e.record
	snapshot.TechStack = append([]string(nil), e.record.TechStack...)

	answers := make(map[string]candidate.TechnicalAnswer, len(e.record.TechnicalAnswers))
	for key, answer := range e.record.TechnicalAnswers {
		answers[key] = answer
	}
	snapshot.TechnicalAnswers = answers

	return snapshot
}

// Summarize reports the current session state.
func (e *Engine) Summarize() Summary {
	return Summary{
		SessionID:         e.sessionID,
		Stage:             e.stage.String(),
		QuestionsAsked:    len(e.questions),
		QuestionsAnswered: e.questionIdx,
		Turns:             len(e.history) / 2,
	}
}

func joinReplies(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, " ")
}
