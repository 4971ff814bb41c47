package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubClient struct {
	responses  []string
	errs       []error
	calls      int
	lastPrompt string
}

func (s *stubClient) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	idx := s.calls
	s.calls++

	if idx < len(s.errs) && s.errs[idx] != nil {
		return "", s.errs[idx]
	}
	if idx < len(s.responses) {
		return s.responses[idx], nil
	}
	return "", errors.New("no scripted response")
}

func TestGenerateParsesNumberedList(t *testing.T) {
	t.Parallel()

	stub := &stubClient{responses: []string{
		"1. What is a goroutine?\n2) How do channels work?\nnot a question line\n3. Explain context cancellation.",
	}}
	generator := NewGenerator(stub, zap.NewNop(), 0, 0, 0)

	generated, err := generator.Generate(context.Background(), []string{"go"}, 3)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"What is a goroutine?",
		"How do channels work?",
		"Explain context cancellation.",
	}, generated)

	assert.True(t, strings.Contains(stub.lastPrompt, "go"), "prompt should mention the tech stack")
	assert.True(t, strings.Contains(stub.lastPrompt, "3"), "prompt should mention experience years")
}

func TestGenerateCapsQuestionCount(t *testing.T) {
	t.Parallel()

	stub := &stubClient{responses: []string{
		"1. a1\n2. a2\n3. a3\n4. a4\n5. a5\n6. a6\n7. a7",
	}}
	generator := NewGenerator(stub, zap.NewNop(), 0, 0, 0)

	generated, err := generator.Generate(context.Background(), []string{"go"}, 3)
	require.NoError(t, err)
	assert.Len(t, generated, 5)
}

func TestGenerateRetriesOnFailure(t *testing.T) {
	t.Parallel()

	originalBackoff := retryBackoff
	retryBackoff = 0
	defer func() { retryBackoff = originalBackoff }()

	stub := &stubClient{
		errs:      []error{errors.New("quota exceeded"), nil},
		responses: []string{"", "1. Recovered question?"},
	}
	generator := NewGenerator(stub, zap.NewNop(), 0, 2, 0)

	generated, err := generator.Generate(context.Background(), []string{"go"}, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Recovered question?"}, generated)
	assert.Equal(t, 2, stub.calls)
}

func TestGenerateExhaustsRetries(t *testing.T) {
	t.Parallel()

	originalBackoff := retryBackoff
	retryBackoff = 0
	defer func() { retryBackoff = originalBackoff }()

	stub := &stubClient{errs: []error{
		errors.New("boom"), errors.New("boom"), errors.New("boom"),
	}}
	generator := NewGenerator(stub, zap.NewNop(), 0, 2, 0)

	_, err := generator.Generate(context.Background(), []string{"go"}, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 attempts")
	assert.Equal(t, 3, stub.calls)
}

func TestGenerateEmptyStack(t *testing.T) {
	t.Parallel()

	generator := NewGenerator(&stubClient{}, zap.NewNop(), 0, 0, 0)

	generated, err := generator.Generate(context.Background(), nil, 3)
	require.NoError(t, err)
	assert.Empty(t, generated)
}

func TestGenerateUnparseableResponseIsAnError(t *testing.T) {
	t.Parallel()

	stub := &stubClient{responses: []string{"I cannot help with that."}}
	generator := NewGenerator(stub, zap.NewNop(), 0, 0, 0)

	_, err := generator.Generate(context.Background(), []string{"go"}, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no questions found")
}

func TestParseQuestions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		max  int
		want []string
	}{
		{
			name: "dot and paren numbering",
			raw:  "1. first\n2) second",
			max:  5,
			want: []string{"first", "second"},
		},
		{
			name: "leading whitespace tolerated",
			raw:  "  1. indented",
			max:  5,
			want: []string{"indented"},
		},
		{
			name: "max truncates",
			raw:  "1. a\n2. b\n3. c",
			max:  2,
			want: []string{"a", "b"},
		},
		{
			name: "no numbered lines",
			raw:  "nothing here",
			max:  5,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parseQuestions(tt.raw, tt.max))
		})
	}
}
