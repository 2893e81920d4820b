// Package lyrics aligns transcribed caption text to a user-supplied
// reference line sequence without reordering or reusing lines.
package lyrics

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes text for comparison only; stored caption text is
// never normalized. Lowercases, maps punctuation to spaces, and collapses
// runs of whitespace. Idempotent.
func Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}
