package dimension_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boxbluebook/boxbluebook/pkg/dimension"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		size       string
		wantLength float64
		wantRing   int
		wantOK     bool
	}{
		{"simple", "5 x 50", 5, 50, true},
		{"fraction", "6 1/2 x 52", 6.5, 52, true},
		{"unicode fraction", "6½ x 52", 6.5, 52, true},
		{"decimal", "5.5 x 44", 5.5, 44, true},
		{"no spaces", "6x60", 6, 60, true},
		{"multiplication sign", "7 × 48", 7, 48, true},
		{"inch quote", `5" x 50`, 5, 50, true},
		{"reversed order", "52 x 6", 6, 52, true},
		{"ring slash length", "52/6", 6, 52, true},
		{"uppercase x", "6 X 52", 6, 52, true},
		{"embedded in text", "Toro (6 x 52) Box of 25", 6, 52, true},
		{"no numbers", "Robusto", 0, 0, false},
		{"single number", "gordo 60", 0, 0, false},
		{"empty", "", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			length, ring, ok := dimension.Parse(tt.size)
			require.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.wantLength, length, 0.001)
			assert.Equal(t, tt.wantRing, ring)
		})
	}
}

func TestParseAmbiguousPair(t *testing.T) {
	// Neither value is clearly a ring gauge; the smaller one is taken as
	// the length.
	length, ring, ok := dimension.Parse("4 x 7")
	require.True(t, ok)
	assert.Equal(t, 4.0, length)
	assert.Equal(t, 7, ring)
}

func TestSanitize(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	n := func(v int) *int { return &v }

	t.Run("valid pair untouched", func(t *testing.T) {
		length, ring := dimension.Sanitize(f(6.5), n(52), "6 1/2 x 52")
		require.NotNil(t, length)
		require.NotNil(t, ring)
		assert.Equal(t, 6.5, *length)
		assert.Equal(t, 52, *ring)
	})

	t.Run("transposed pair swapped", func(t *testing.T) {
		length, ring := dimension.Sanitize(f(52), n(6), "52 x 6")
		require.NotNil(t, length)
		require.NotNil(t, ring)
		assert.Equal(t, 6.0, *length)
		assert.Equal(t, 52, *ring)
	})

	t.Run("both ring-like rederived from size", func(t *testing.T) {
		length, ring := dimension.Sanitize(f(50), n(55), "5 x 50")
		require.NotNil(t, length)
		require.NotNil(t, ring)
		assert.Equal(t, 5.0, *length)
		assert.Equal(t, 50, *ring)
	})

	t.Run("implausible pair nulled", func(t *testing.T) {
		length, ring := dimension.Sanitize(f(120), n(300), "")
		assert.Nil(t, length)
		assert.Nil(t, ring)
	})

	t.Run("ring out of range nulled", func(t *testing.T) {
		length, ring := dimension.Sanitize(f(6), n(9), "")
		assert.Nil(t, length)
		assert.Nil(t, ring)
	})

	t.Run("nil values pass through", func(t *testing.T) {
		length, ring := dimension.Sanitize(nil, nil, "6 x 52")
		assert.Nil(t, length)
		assert.Nil(t, ring)

		length, ring = dimension.Sanitize(f(6), nil, "6 x 52")
		require.NotNil(t, length)
		assert.Nil(t, ring)
	})

	t.Run("does not mutate inputs", func(t *testing.T) {
		origLength, origRing := f(52), n(6)
		dimension.Sanitize(origLength, origRing, "52 x 6")
		assert.Equal(t, 52.0, *origLength)
		assert.Equal(t, 6, *origRing)
	})
}

func TestSanitizeRederivePicksTypicalLength(t *testing.T) {
	// Both stored values look like ring gauges and the raw string is
	// reversed; the re-parse takes the value nearer six inches as length.
	f := func(v float64) *float64 { return &v }
	n := func(v int) *int { return &v }

	length, ring := dimension.Sanitize(f(54), n(50), "54 x 7")
	if assert.NotNil(t, length) && assert.NotNil(t, ring) {
		assert.Equal(t, 7.0, *length)
		assert.Equal(t, 54, *ring)
	}
}
