// Package extract turns one line of candidate free text into a typed value.
// Every function is deterministic and side-effect free; a false result means
// the input was not recognized and the caller should re-prompt.
package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	emailPattern  = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	numberPattern = regexp.MustCompile(`\d+`)
	nonDigit      = regexp.MustCompile(`\D`)
)

// techStackSeparators are applied exhaustively, in any order.
var techStackSeparators = []string{",", ";", "|", "\n", " and ", " & "}

// Name accepts either a single alphabetic token starting with an uppercase
// letter, or two such leading tokens. Tokens past the second are discarded.
func Name(text string) (string, bool) {
	words := strings.Fields(strings.TrimSpace(text))

	switch {
	case len(words) >= 2:
		if isCapitalizedWord(words[0]) && isCapitalizedWord(words[1]) {
			return words[0] + " " + words[1], true
		}
	case len(words) == 1:
		if isCapitalizedWord(words[0]) {
			return words[0], true
		}
	}

	return "", false
}

func isCapitalizedWord(word string) bool {
	runes := []rune(word)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Email returns the first substring shaped like local@domain.tld. No
// validation beyond the shape is attempted.
func Email(text string) (string, bool) {
	match := emailPattern.FindString(text)
	return match, match != ""
}

// Phone accepts the trimmed input as-is when it contains 10 to 15 digits
// after stripping everything else. The original formatting is preserved.
func Phone(text string) (string, bool) {
	digits := nonDigit.ReplaceAllString(text, "")
	if len(digits) >= 10 && len(digits) <= 15 {
		return strings.TrimSpace(text), true
	}
	return "", false
}

// Years returns the first integer found in the text when it falls in the
// closed range [0, 50]. Later numerals are ignored.
func Years(text string) (int, bool) {
	match := numberPattern.FindString(text)
	if match == "" {
		return 0, false
	}

	years, err := strconv.Atoi(match)
	if err != nil || years > 50 {
		return 0, false
	}

	return years, true
}

// TechStack splits the input on commas, semicolons, pipes, newlines, " and "
// and " & ", lowercases and trims each token, drops empty and one-character
// tokens, and keeps at most the first ten in original order.
func TechStack(text string) []string {
	items := []string{text}
	for _, sep := range techStackSeparators {
		var next []string
		for _, item := range items {
			next = append(next, strings.Split(item, sep)...)
		}
		items = next
	}

	stack := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if len(item) > 1 {
			stack = append(stack, item)
		}
		if len(stack) == MaxTechStackSize {
			break
		}
	}

	return stack
}

// MaxTechStackSize mirrors the record-level cap on declared technologies.
const MaxTechStackSize = 10
