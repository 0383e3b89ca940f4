package vocab

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// NormalizeBrand returns the canonical display form for a raw brand string.
// Unknown brands fall back to title case, which is a best-effort default
// rather than a guarantee of correctness.
func NormalizeBrand(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if canonical, ok := Brands.Lookup(raw); ok {
		return canonical
	}
	return titleCaser.String(strings.ToLower(raw))
}

// Vitola returns the standardized vitola for a product. The dedicated
// vitola field is consulted first, then the product name. When neither
// matches, the raw field value passes through unchanged (which may be
// empty).
func Vitola(name, field string) string {
	field = strings.TrimSpace(field)
	if field != "" {
		if canonical, ok := Vitolas.Lookup(field); ok {
			return canonical
		}
	}
	if canonical, ok := Vitolas.Lookup(name); ok {
		return canonical
	}
	return field
}

// Wrapper returns the standardized wrapper type found in the product name,
// or empty when no alias matches. No fallback transformation is applied.
func Wrapper(name string) string {
	if canonical, ok := Wrappers.Lookup(name); ok {
		return canonical
	}
	return ""
}

// Country returns the canonical country name. Unmatched values pass
// through trimmed, since adapters emit origin strings (e.g. "USA (Tampa)")
// that are already more specific than the vocabulary.
func Country(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if canonical, ok := Countries.Lookup(raw); ok {
		return canonical
	}
	return raw
}
