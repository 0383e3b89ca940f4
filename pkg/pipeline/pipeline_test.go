package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boxbluebook/boxbluebook/pkg/catalog"
	"github.com/boxbluebook/boxbluebook/pkg/pipeline"
)

func testRecords() []catalog.Record {
	return []catalog.Record{
		{
			Brand:   "AF",
			Name:    "Hemingway Short Story",
			Size:    "4 x 49",
			MSRPBox: catalog.Float(312),
			Source:  "fuente_2025",
		},
		{
			// Duplicate of the record above from another vendor document,
			// carrying the complementary price field.
			Brand:          "ARTURO FUENTE",
			Name:           "Hemingway Short Story",
			Size:           "4 x 49",
			WholesalePrice: catalog.Float(198),
			Country:        "DR",
			Source:         "ausa_2025",
		},
		{
			Brand:  "DREW ESTATE",
			Line:   "Undercrown",
			Name:   "Undercrown Maduro Toro",
			Size:   "6 x 52",
			Source: "drew_estate",
		},
		{
			// Empty brand: stays in the catalog, skipped by the taxonomy.
			Name:   "Mystery House Blend",
			Size:   "5 x 50",
			Source: "ausa_2025",
		},
	}
}

func TestRun(t *testing.T) {
	result := pipeline.New().Run(testRecords())

	t.Run("deduplicates and merges", func(t *testing.T) {
		require.Len(t, result.Catalog.Cigars, 3)

		hemingway := result.Catalog.Cigars[0]
		assert.Equal(t, "Arturo Fuente", hemingway.Brand)
		require.NotNil(t, hemingway.MSRPBox)
		assert.Equal(t, 312.0, *hemingway.MSRPBox)
		require.NotNil(t, hemingway.WholesalePrice)
		assert.Equal(t, 198.0, *hemingway.WholesalePrice)
		assert.Equal(t, "Dominican Republic", hemingway.Country)
		assert.Equal(t, "fuente_2025", hemingway.Source)
	})

	t.Run("resolves dimensions from size text", func(t *testing.T) {
		hemingway := result.Catalog.Cigars[0]
		require.NotNil(t, hemingway.Length)
		require.NotNil(t, hemingway.RingGauge)
		assert.Equal(t, 4.0, *hemingway.Length)
		assert.Equal(t, 49, *hemingway.RingGauge)
	})

	t.Run("derives vitola and wrapper from name", func(t *testing.T) {
		undercrown := result.Catalog.Cigars[1]
		assert.Equal(t, "Toro", undercrown.Vitola)
		assert.Equal(t, "Maduro", undercrown.Wrapper)
	})

	t.Run("stamps identifiers", func(t *testing.T) {
		for _, c := range result.Catalog.Cigars {
			assert.Len(t, c.ID, 12)
			assert.NotEmpty(t, c.Slug)
		}
		assert.Equal(t, "arturo-fuente-hemingway-short-story", result.Catalog.Cigars[0].Slug)
	})

	t.Run("taxonomy excludes empty brand", func(t *testing.T) {
		require.Len(t, result.Brands, 2)
		assert.Equal(t, "Arturo Fuente", result.Brands[0].Name)
		assert.Equal(t, "Drew Estate", result.Brands[1].Name)
		require.Len(t, result.Lines, 1)
		assert.Equal(t, "Undercrown", result.Lines[0].Name)

		// The brandless cigar is still in the product catalog.
		assert.Equal(t, "", result.Catalog.Cigars[2].Brand)
	})

	t.Run("metadata and report totals agree", func(t *testing.T) {
		assert.Equal(t, 3, result.Catalog.Metadata.TotalCigars)
		assert.Equal(t, 2, result.Catalog.Metadata.TotalBrands)
		assert.Equal(t, 1, result.Catalog.Metadata.TotalLines)

		assert.Equal(t, 4, result.Report.Totals.RawRecords)
		assert.Equal(t, 1, result.Report.Totals.DuplicatesRemoved)
		assert.Equal(t, map[string]int{"fuente_2025": 1, "ausa_2025": 2, "drew_estate": 1}, result.Report.Sources)
	})

	t.Run("coverage counts", func(t *testing.T) {
		cov := result.Report.Coverage
		assert.Equal(t, 1, cov.WithMSRP)
		assert.Equal(t, 1, cov.WithWholesale)
		assert.Equal(t, 3, cov.WithSize)
		assert.Equal(t, 1, cov.WithCountry)
		assert.InDelta(t, 100.0, result.Report.Percent(cov.WithSize), 0.001)
	})
}

func TestRunIdempotentIdentifiers(t *testing.T) {
	first := pipeline.New().Run(testRecords())
	second := pipeline.New().Run(testRecords())

	require.Equal(t, len(first.Catalog.Cigars), len(second.Catalog.Cigars))
	for i := range first.Catalog.Cigars {
		assert.Equal(t, first.Catalog.Cigars[i].ID, second.Catalog.Cigars[i].ID)
		assert.Equal(t, first.Catalog.Cigars[i].Slug, second.Catalog.Cigars[i].Slug)
	}
}

func TestRunTopBrands(t *testing.T) {
	records := []catalog.Record{
		{Brand: "OLIVA", Name: "Serie V", Size: "6 x 54", Source: "oliva"},
		{Brand: "OLIVA", Name: "Serie O", Size: "5 x 50", Source: "oliva"},
		{Brand: "PADRON", Name: "1964 Exclusivo", Size: "5 1/2 x 50", Source: "padron"},
	}
	result := pipeline.New(pipeline.WithTopBrands(1)).Run(records)
	require.Len(t, result.Report.ByBrand, 1)
	assert.Equal(t, "Oliva", result.Report.ByBrand[0].Name)
	assert.Equal(t, 2, result.Report.ByBrand[0].Count)
}

func TestRunEmptyBatch(t *testing.T) {
	result := pipeline.New().Run(nil)
	assert.Empty(t, result.Catalog.Cigars)
	assert.Empty(t, result.Brands)
	assert.Zero(t, result.Report.Totals.RawRecords)
	assert.Zero(t, result.Report.Percent(result.Report.Coverage.WithSize))
}
