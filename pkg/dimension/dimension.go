// Package dimension parses and sanity-corrects cigar dimensions. Vendor
// size strings encode length and ring gauge in inconsistent order, with
// fraction notation, unicode fraction glyphs, and assorted multiplication
// symbols, so resolution happens in two phases: a best-effort parse and a
// post-hoc range correction applied before deduplication.
package dimension

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Range thresholds for telling lengths and ring gauges apart. These values
// are observable behavior: a record that parses differently after changing
// one of them lands under a different dedup key.
const (
	// MaxLength is the largest plausible cigar length in inches.
	MaxLength = 15.0

	// MinRing and MaxRing bound plausible ring gauges (64ths of an inch).
	MinRing = 15
	MaxRing = 80

	// parseLengthCeiling and parseRingFloor drive assignment during the
	// initial parse: a value below the ceiling paired with one at or
	// above the floor is unambiguous.
	parseLengthCeiling = 20.0
	parseRingFloor     = 30.0

	// ringLikeFloor marks a value that reads as a ring gauge; when both
	// parsed values exceed it the pair is re-derived from the raw string.
	ringLikeFloor = 30.0

	// typicalLength anchors the re-derivation heuristic: whichever
	// candidate sits closer to a typical cigar length is taken as the
	// length. Known approximation; a genuinely long large-ring cigar can
	// be misclassified.
	typicalLength = 6.0
)

// sizePatterns are tried in order until one yields two numeric groups.
var sizePatterns = []*regexp.Regexp{
	// 5 x 50, 6 1/2 x 52, 6.5 x 52, 5" x 50
	regexp.MustCompile(`(\d+(?:\s+\d+/\d+)?|\d+\.\d+|\d+/\d+)["']?\s*[x×*]\s*(\d+(?:\s+\d+/\d+)?|\d+\.\d+)`),
	// 52/6 (ring/length notation used by a few order forms)
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*/\s*(\d+(?:\.\d+)?)`),
}

// fractionGlyphs rewrites unicode vulgar fractions into ASCII notation
// before pattern matching.
var fractionGlyphs = strings.NewReplacer(
	"¼", " 1/4",
	"½", " 1/2",
	"¾", " 3/4",
	"⅛", " 1/8",
	"⅜", " 3/8",
	"⅝", " 5/8",
	"⅞", " 7/8",
)

// Parse resolves a free-text size description into (length, ring gauge).
// It never guesses from unrelated text: when no pattern matches, ok is
// false and both values are zero.
func Parse(size string) (length float64, ring int, ok bool) {
	size = strings.ToLower(strings.TrimSpace(size))
	if size == "" {
		return 0, 0, false
	}
	size = fractionGlyphs.Replace(size)

	for _, pattern := range sizePatterns {
		match := pattern.FindStringSubmatch(size)
		if match == nil {
			continue
		}
		n1, err1 := parseNumber(match[1])
		n2, err2 := parseNumber(match[2])
		if err1 != nil || err2 != nil {
			continue
		}
		length, ring = assign(n1, n2)
		return length, ring, true
	}
	return 0, 0, false
}

// assign decides which of two parsed values is the length. An unambiguous
// split (one value below the length ceiling, the other at or above the
// ring floor) wins; otherwise the smaller value is taken as length.
func assign(n1, n2 float64) (float64, int) {
	switch {
	case n1 < parseLengthCeiling && n2 >= parseRingFloor:
		return n1, roundRing(n2)
	case n2 < parseLengthCeiling && n1 >= parseRingFloor:
		return n2, roundRing(n1)
	case n1 < n2:
		return n1, roundRing(n2)
	default:
		return n2, roundRing(n1)
	}
}

// Sanitize re-validates an already-assigned (length, ring gauge) pair
// against the plausible ranges, repairing transposed values and re-deriving
// from the raw size string when both values read as ring gauges. Pairs that
// remain implausible are nulled rather than guessed. Values arrive and
// leave as pointers so a nulled dimension stays distinguishable from zero.
func Sanitize(length *float64, ring *int, size string) (*float64, *int) {
	if length == nil || ring == nil {
		return length, ring
	}

	l, r := *length, *ring
	switch {
	case l > MaxLength && float64(r) < MinRing:
		// Transposed: the "length" is a ring gauge and vice versa.
		l, r = float64(r), roundRing(l)
	case l > ringLikeFloor && float64(r) > ringLikeFloor:
		// Both read as ring gauges; go back to the raw string.
		if rl, rr, ok := rederive(size); ok {
			l, r = rl, rr
		}
	}

	if l > MaxLength || r < MinRing || r > MaxRing {
		return nil, nil
	}
	return &l, &r
}

// rederiveRe intentionally ignores fraction notation: this path only runs
// when both stored values are ring-like, which fractions never are.
var rederiveRe = regexp.MustCompile(`(\d+\.?\d*)\s*[x×*]\s*(\d+)`)

// rederive re-parses the raw size string and picks whichever number sits
// closer to a typical cigar length as the length.
func rederive(size string) (float64, int, bool) {
	match := rederiveRe.FindStringSubmatch(strings.ToLower(size))
	if match == nil {
		return 0, 0, false
	}
	n1, err1 := strconv.ParseFloat(match[1], 64)
	n2, err2 := strconv.ParseFloat(match[2], 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	if math.Abs(n1-typicalLength) < math.Abs(n2-typicalLength) {
		return n1, roundRing(n2), true
	}
	return n2, roundRing(n1), true
}

// parseNumber parses a number that may carry fraction notation:
// "6 1/2", "1/2", "6.5", or "6".
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "/") {
		return strconv.ParseFloat(s, 64)
	}

	whole := 0.0
	frac := s
	if parts := strings.Fields(s); len(parts) == 2 {
		w, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0, err
		}
		whole = w
		frac = parts[1]
	}

	fracParts := strings.SplitN(frac, "/", 2)
	num, err := strconv.ParseFloat(fracParts[0], 64)
	if err != nil {
		return 0, err
	}
	den, err := strconv.ParseFloat(fracParts[1], 64)
	if err != nil {
		return 0, err
	}
	if den == 0 {
		return 0, strconv.ErrSyntax
	}
	return whole + num/den, nil
}

func roundRing(v float64) int {
	return int(math.Round(v))
}
