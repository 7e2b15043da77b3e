// Package textnorm normalizes free text for matching and grouping.
// Folding lowercases and strips diacritics so "Zürich" and "zurich"
// compare equal in filters and facet keys.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s, trims surrounding whitespace, and removes combining marks
func Fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}
	return strings.ToLower(s)
}

// Collapse squeezes inner whitespace runs to single spaces
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
