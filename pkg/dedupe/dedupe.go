// Package dedupe collapses records that refer to the same physical product
// across sources. Two records with an identical (normalized brand, name,
// size) key are the same cigar regardless of which vendor document produced
// them; the first-seen record is kept as the representative and later
// duplicates enrich it without ever overwriting populated fields.
package dedupe

import (
	"fmt"
	"strings"

	"dario.cat/mergo"

	"github.com/boxbluebook/boxbluebook/pkg/catalog"
	"github.com/boxbluebook/boxbluebook/pkg/dimension"
	"github.com/boxbluebook/boxbluebook/pkg/logging"
)

// Key computes the dedup key for a cigar. The brand must already be
// normalized; name and size are compared case-insensitively as-is.
func Key(c *catalog.Cigar) string {
	return fmt.Sprintf("%s|%s|%s",
		strings.ToLower(c.Brand),
		strings.ToLower(c.Name),
		strings.ToLower(c.Size))
}

// Deduplicate returns the cigars with duplicates merged into their
// first-seen representative, preserving first-seen order. The dimension
// sanity pass runs on every record before its key is computed, so a
// transposed size pair cannot fracture one product into two keys.
//
// The merge is a conservative union: a field on the representative is
// filled from the incoming duplicate only when it is currently absent.
// Later sources are not assumed more authoritative, so populated values
// are never replaced and no information is lost.
func Deduplicate(cigars []catalog.Cigar) []catalog.Cigar {
	seen := make(map[string]int, len(cigars))
	unique := make([]catalog.Cigar, 0, len(cigars))

	for _, c := range cigars {
		c.Length, c.RingGauge = dimension.Sanitize(c.Length, c.RingGauge, c.Size)

		key := Key(&c)
		if idx, ok := seen[key]; ok {
			if err := mergo.Merge(&unique[idx], c); err != nil {
				logging.Warn().
					Err(err).
					Str("key", key).
					Str("source", c.Source).
					Msg("Skipping unmergeable duplicate")
			}
			continue
		}
		seen[key] = len(unique)
		unique = append(unique, c)
	}
	return unique
}
