package store

import (
	"fmt"
	"strings"

	"github.com/talentscout/assistant/internal/candidate"
)

const maskedPhone = "***-***-****"

// Anonymize returns a masked copy of the record for privacy-preserving
// display. The input is never mutated and the transform is one-way.
func Anonymize(record *candidate.Record) *candidate.Record {
	masked := *record
	masked.TechStack = append([]string(nil), record.TechStack...)

	masked.FullName = anonymizeName(record.FullName)
	masked.Email = anonymizeEmail(record.Email)
	masked.Phone = anonymizePhone(record.Phone)

	return &masked
}

// AnonymizeStored masks a stored candidate, keeping its ID and timestamp.
func AnonymizeStored(stored *candidate.Stored) *candidate.Stored {
	return &candidate.Stored{
		Record:    *Anonymize(&stored.Record),
		ID:        stored.ID,
		Timestamp: stored.Timestamp,
	}
}

func anonymizeName(name string) string {
	parts := strings.Fields(name)

	switch len(parts) {
	case 0:
		return name
	case 1:
		return fmt.Sprintf("%c***", []rune(parts[0])[0])
	default:
		return fmt.Sprintf("%c*** %c***", []rune(parts[0])[0], []rune(parts[len(parts)-1])[0])
	}
}

func anonymizeEmail(email string) string {
	local, domain, found := strings.Cut(email, "@")
	if !found {
		return email
	}

	// Short local parts stay as-is, which also makes the transform
	// idempotent on already-masked values.
	if len(local) <= 2 {
		return email
	}

	return local[:2] + "***@" + domain
}

func anonymizePhone(phone string) string {
	if phone == "" {
		return phone
	}

	if len(phone) > 4 {
		return "***-***-" + phone[len(phone)-4:]
	}

	return maskedPhone
}
