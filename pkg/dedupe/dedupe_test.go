package dedupe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boxbluebook/boxbluebook/pkg/catalog"
	"github.com/boxbluebook/boxbluebook/pkg/dedupe"
)

func cigar(brand, name, size, source string) catalog.Cigar {
	return catalog.Cigar{
		ID:   "test-id",
		Slug: "test-slug",
		Record: catalog.Record{
			Brand:  brand,
			Name:   name,
			Size:   size,
			Source: source,
		},
	}
}

func TestKeyCaseInsensitive(t *testing.T) {
	a := cigar("Arturo Fuente", "Hemingway", "4 x 49", "fuente")
	b := cigar("arturo fuente", "HEMINGWAY", "4 X 49", "ausa")
	assert.Equal(t, dedupe.Key(&a), dedupe.Key(&b))

	c := cigar("Arturo Fuente", "Hemingway", "6 x 48", "fuente")
	assert.NotEqual(t, dedupe.Key(&a), dedupe.Key(&c))
}

func TestDeduplicate(t *testing.T) {
	t.Run("distinct products survive", func(t *testing.T) {
		out := dedupe.Deduplicate([]catalog.Cigar{
			cigar("Oliva", "Serie V Melanio", "5 x 52", "oliva"),
			cigar("Oliva", "Serie V Melanio", "6 x 52", "oliva"),
		})
		assert.Len(t, out, 2)
	})

	t.Run("duplicates collapse to first seen", func(t *testing.T) {
		first := cigar("Oliva", "Serie V", "6 x 54", "oliva")
		second := cigar("OLIVA", "SERIE V", "6 X 54", "ausa")
		out := dedupe.Deduplicate([]catalog.Cigar{first, second})
		require.Len(t, out, 1)
		assert.Equal(t, "oliva", out[0].Source)
	})

	t.Run("merge fills absent fields only", func(t *testing.T) {
		first := cigar("My Father", "Le Bijou 1922 Toro", "6 x 52", "myfather")
		first.MSRPBox = catalog.Float(250)
		first.Country = "Nicaragua"

		second := cigar("My Father", "Le Bijou 1922 Toro", "6 x 52", "distributor")
		second.WholesalePrice = catalog.Float(155)
		second.Country = "Honduras" // Conflicts; first-seen value must win
		second.BoxCount = catalog.Int(23)

		out := dedupe.Deduplicate([]catalog.Cigar{first, second})
		require.Len(t, out, 1)

		merged := out[0]
		require.NotNil(t, merged.MSRPBox)
		assert.Equal(t, 250.0, *merged.MSRPBox)
		require.NotNil(t, merged.WholesalePrice)
		assert.Equal(t, 155.0, *merged.WholesalePrice)
		require.NotNil(t, merged.BoxCount)
		assert.Equal(t, 23, *merged.BoxCount)
		assert.Equal(t, "Nicaragua", merged.Country)
	})

	t.Run("first seen order preserved", func(t *testing.T) {
		out := dedupe.Deduplicate([]catalog.Cigar{
			cigar("Padron", "1964 Exclusivo", "5 1/2 x 50", "padron"),
			cigar("Oliva", "Serie O", "5 x 50", "oliva"),
			cigar("Padron", "1964 Exclusivo", "5 1/2 x 50", "ausa"),
			cigar("Ashton", "VSG Robusto", "5 1/2 x 50", "ashton"),
		})
		require.Len(t, out, 3)
		assert.Equal(t, "Padron", out[0].Brand)
		assert.Equal(t, "Oliva", out[1].Brand)
		assert.Equal(t, "Ashton", out[2].Brand)
	})

	t.Run("sanity pass runs before keying", func(t *testing.T) {
		transposed := cigar("Foundation", "Tabernacle", "6 x 52", "foundation")
		transposed.Length = catalog.Float(52)
		transposed.RingGauge = catalog.Int(6)

		out := dedupe.Deduplicate([]catalog.Cigar{transposed})
		require.Len(t, out, 1)
		require.NotNil(t, out[0].Length)
		require.NotNil(t, out[0].RingGauge)
		assert.Equal(t, 6.0, *out[0].Length)
		assert.Equal(t, 52, *out[0].RingGauge)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, dedupe.Deduplicate(nil))
	})
}

func TestDeduplicateOrderIndependentOutcome(t *testing.T) {
	// Permuting the input changes which representative's conflicting
	// fields win, but never the set of dedup keys or its size.
	records := []catalog.Cigar{
		cigar("Drew Estate", "Undercrown Maduro", "6 x 52", "de"),
		cigar("Oliva", "Serie G", "5 x 50", "oliva"),
		cigar("DREW ESTATE", "UNDERCROWN MADURO", "6 X 52", "diplomat"),
	}
	reversed := []catalog.Cigar{records[2], records[1], records[0]}

	a := dedupe.Deduplicate(records)
	b := dedupe.Deduplicate(reversed)
	require.Equal(t, len(a), len(b))

	keysOf := func(cs []catalog.Cigar) map[string]bool {
		m := make(map[string]bool)
		for i := range cs {
			m[dedupe.Key(&cs[i])] = true
		}
		return m
	}
	assert.Equal(t, keysOf(a), keysOf(b))
}
