// Package vocab implements controlled-vocabulary normalization for brand,
// vitola, wrapper, and country text. Each vocabulary is an ordered table of
// (pattern, canonical) aliases evaluated top to bottom with case-insensitive
// substring matching, so more specific aliases must precede the shorter
// aliases they would otherwise be shadowed by. Table order is load-bearing.
package vocab

import (
	"strings"
)

// Alias maps a match pattern to its canonical display form.
type Alias struct {
	Pattern   string `json:"pattern" yaml:"pattern"`
	Canonical string `json:"canonical" yaml:"canonical"`
}

// Table is an ordered list of aliases. First match wins.
type Table []Alias

// Lookup returns the canonical form for the first alias whose pattern is a
// case-insensitive substring of text, or ("", false) when nothing matches.
func (t Table) Lookup(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	lower := strings.ToLower(text)
	for _, a := range t {
		if strings.Contains(lower, strings.ToLower(a.Pattern)) {
			return a.Canonical, true
		}
	}
	return "", false
}
