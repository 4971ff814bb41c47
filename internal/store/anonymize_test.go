package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talentscout/assistant/internal/candidate"
)

func TestAnonymizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"two tokens", "John Smith", "J*** S***"},
		{"single token", "John", "J***"},
		{"three tokens keep first and last initials", "Mary Jane Watson", "M*** W***"},
		{"empty name untouched", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, anonymizeName(tt.input))
		})
	}
}

func TestAnonymizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"long local part masked", "john.smith@example.com", "jo***@example.com"},
		{"two character local untouched", "jo@example.com", "jo@example.com"},
		{"single character local untouched", "j@example.com", "j@example.com"},
		{"no at sign untouched", "not-an-email", "not-an-email"},
		{"empty untouched", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, anonymizeEmail(tt.input))
		})
	}
}

func TestAnonymizeEmailIdempotentInShape(t *testing.T) {
	t.Parallel()

	once := anonymizeEmail("john.smith@example.com")
	twice := anonymizeEmail(once)
	assert.Equal(t, once, twice)
}

func TestAnonymizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"keeps last four characters", "555-123-4567", "***-***-4567"},
		{"formatted number keeps trailing characters", "+1 (555) 123-9999", "***-***-9999"},
		{"four characters fully masked", "1234", "***-***-****"},
		{"empty untouched", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, anonymizePhone(tt.input))
		})
	}
}

func TestAnonymizePhoneNeverWidensVisibleSuffix(t *testing.T) {
	t.Parallel()

	once := anonymizePhone("555-123-4567")
	twice := anonymizePhone(once)
	assert.Equal(t, "***-***-4567", twice)
}

func TestAnonymizeDoesNotMutateOriginal(t *testing.T) {
	t.Parallel()

	record := candidate.NewRecord()
	record.FullName = "John Smith"
	record.Email = "john.smith@example.com"
	record.Phone = "555-123-4567"
	record.TechStack = []string{"python"}

	masked := Anonymize(record)

	assert.Equal(t, "J*** S***", masked.FullName)
	assert.Equal(t, "jo***@example.com", masked.Email)
	assert.Equal(t, "***-***-4567", masked.Phone)

	assert.Equal(t, "John Smith", record.FullName)
	assert.Equal(t, "john.smith@example.com", record.Email)
	assert.Equal(t, "555-123-4567", record.Phone)

	masked.TechStack[0] = "changed"
	assert.Equal(t, "python", record.TechStack[0])
}

func TestAnonymizeStoredKeepsIDAndTimestamp(t *testing.T) {
	t.Parallel()

	record := candidate.NewRecord()
	record.FullName = "Jane Doe"

	stored := &candidate.Stored{
		Record:    *record,
		ID:        "CAND_20240501120000",
		Timestamp: "2024-05-01T12:00:00Z",
	}

	masked := AnonymizeStored(stored)
	assert.Equal(t, "J*** D***", masked.FullName)
	assert.Equal(t, stored.ID, masked.ID)
	assert.Equal(t, stored.Timestamp, masked.Timestamp)
}
