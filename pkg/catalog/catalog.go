package catalog

import (
	"github.com/agentstation/utc"
)

// Catalog is the canonical product catalog produced by one aggregation
// run: generation metadata plus the full deduplicated cigar list in
// first-seen order.
type Catalog struct {
	Metadata Metadata `json:"metadata" yaml:"metadata"`
	Cigars   []Cigar  `json:"cigars" yaml:"cigars"`
}

// Metadata describes an aggregation run.
type Metadata struct {
	Generated   utc.Time       `json:"generated" yaml:"generated"`
	TotalCigars int            `json:"total_cigars" yaml:"total_cigars"`
	TotalBrands int            `json:"total_brands" yaml:"total_brands"`
	TotalLines  int            `json:"total_lines" yaml:"total_lines"`
	Sources     map[string]int `json:"sources" yaml:"sources"` // Raw record count per provenance tag
}

// New creates a Catalog for the given cigars, stamped with the current time.
func New(cigars []Cigar, brands, lines int, sources map[string]int) *Catalog {
	return &Catalog{
		Metadata: Metadata{
			Generated:   utc.Now(),
			TotalCigars: len(cigars),
			TotalBrands: brands,
			TotalLines:  lines,
			Sources:     sources,
		},
		Cigars: cigars,
	}
}
