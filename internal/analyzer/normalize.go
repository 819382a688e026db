package analyzer

import (
	"strings"
	"unicode"
)

// Normalize lowercases text, replaces every character that is not a letter,
// digit, or whitespace with a space, and collapses runs of whitespace to a
// single space. The result is trimmed and may be empty.
func Normalize(text string) string {
	lowered := strings.ToLower(text)

	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, lowered)

	return strings.Join(strings.Fields(mapped), " ")
}
