package catalogue

import (
	"strings"
	"unicode"
)

// CleanName trims a name and collapses inner whitespace to single spaces.
// Capitalization is kept. This is the form written to the store.
func CleanName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// NormalizeName returns the canonical form of a station name: trimmed,
// single spaced, every word lower-cased with a capital first letter.
// It is used for identity comparisons only, not for display.
func NormalizeName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

// SameStation reports whether two names denote the same station.
func SameStation(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}

func titleWord(w string) string {
	rs := []rune(strings.ToLower(w))
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}
