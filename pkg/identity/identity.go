// Package identity derives the two identifiers every canonical product
// carries: a human-readable slug for URLs and lookup, and a content-derived
// fingerprint used as the stable join key by downstream storage. Both are
// deterministic, so re-running the pipeline on identical input yields
// identical identifiers.
package identity

import (
	"crypto/md5" //nolint:gosec // fingerprint, not security
	"encoding/hex"
	"fmt"

	"github.com/gosimple/slug"
)

// idLength is the number of hex characters kept from the fingerprint.
// Collision probability is negligible at catalog scale; this is not
// cryptographically hardened.
const idLength = 12

// Slug generates a URL-friendly slug: lowercase, ASCII alphanumerics and
// hyphens, collapsed and trimmed separators. Not guaranteed globally
// unique.
func Slug(text string) string {
	return slug.Make(text)
}

// CigarSlug builds a product slug from the normalized brand and name.
func CigarSlug(brand, name string) string {
	return Slug(fmt.Sprintf("%s %s", brand, name))
}

// LineSlug builds a line slug scoped to its brand:
// "{brand_slug}-{line_slug}".
func LineSlug(brandSlug, line string) string {
	return fmt.Sprintf("%s-%s", brandSlug, Slug(line))
}

// ID computes the stable identifier for a (brand, name, size) triple. The
// same triple always yields the same id; distinct triples collide with
// negligible probability.
func ID(brand, name, size string) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%s-%s-%s", brand, name, size))) //nolint:gosec
	return hex.EncodeToString(sum[:])[:idLength]
}
