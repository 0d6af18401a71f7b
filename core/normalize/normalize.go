// Package normalize canonicalizes free text into index lookup keys.
//
// The same function builds the name and region indices and resolves incoming
// path parameters, so "Côte d'Ivoire", "cote-d'ivoire" and "COTE_D'IVOIRE"
// all meet on the key "cote d'ivoire".
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningMarks is the Combining Diacritical Marks block (U+0300–U+036F).
var combiningMarks = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

var separators = strings.NewReplacer("_", " ", "-", " ", "+", " ", ".", " ")

// Key returns the lookup key for s: separators (_ - + .) become spaces,
// surrounding whitespace is trimmed, internal runs collapse to one space, the
// result is lowercased, decomposed (NFD) and stripped of diacritical marks.
// Key is pure and idempotent.
func Key(s string) string {
	s = strings.ToLower(separators.Replace(s))

	// A fresh chain per call: transform.Chain keeps internal state.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningMarks)))
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}

	// Collapsing last keeps the key idempotent when a bare combining mark
	// followed a space.
	return strings.Join(strings.Fields(s), " ")
}

// Any normalizes v when it is a string and returns "" for anything else.
func Any(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return Key(s)
}
