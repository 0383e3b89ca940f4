package catalog

// Line is an aggregate entity scoped to a brand, keyed by
// "{brand_slug}-{line_slug}". A Line always references an existing Brand.
type Line struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Slug       string `json:"slug" yaml:"slug"`
	BrandID    string `json:"brand_id" yaml:"brand_id"`
	BrandName  string `json:"brand_name" yaml:"brand_name"`
	CigarCount int    `json:"cigar_count" yaml:"cigar_count"`
}
