package catalog

import (
	"github.com/agentstation/utc"
)

// Report is the coverage and aggregation summary for one run. It is an
// observability artifact only; nothing downstream consumes it.
type Report struct {
	Timestamp utc.Time       `json:"timestamp" yaml:"timestamp"`
	Totals    Totals         `json:"totals" yaml:"totals"`
	ByBrand   []BrandCount   `json:"by_brand" yaml:"by_brand"` // Top brands, descending cigar count
	Sources   map[string]int `json:"sources" yaml:"sources"`
	Coverage  Coverage       `json:"coverage" yaml:"coverage"`
}

// Totals holds the headline counts for a run.
type Totals struct {
	Cigars            int `json:"cigars" yaml:"cigars"`
	Brands            int `json:"brands" yaml:"brands"`
	Lines             int `json:"lines" yaml:"lines"`
	RawRecords        int `json:"raw_records" yaml:"raw_records"`
	DuplicatesRemoved int `json:"duplicates_removed" yaml:"duplicates_removed"`
}

// BrandCount pairs a brand name with its deduplicated product count.
type BrandCount struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// Coverage counts how many deduplicated cigars carry each optional field.
type Coverage struct {
	WithMSRP      int `json:"with_msrp" yaml:"with_msrp"`
	WithWholesale int `json:"with_wholesale" yaml:"with_wholesale"`
	WithSize      int `json:"with_size" yaml:"with_size"`
	WithVitola    int `json:"with_vitola" yaml:"with_vitola"`
	WithWrapper   int `json:"with_wrapper" yaml:"with_wrapper"`
	WithCountry   int `json:"with_country" yaml:"with_country"`
}

// Percent converts a coverage count to a percentage of the deduplicated
// catalog. Returns 0 for an empty catalog.
func (r *Report) Percent(count int) float64 {
	if r.Totals.Cigars == 0 {
		return 0
	}
	return float64(count) / float64(r.Totals.Cigars) * 100
}
