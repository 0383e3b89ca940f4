package catalog

// Brand is an aggregate entity keyed by the slug of its canonical display
// name. Created lazily the first time a cigar with that brand is processed
// and enriched on every subsequent sighting.
type Brand struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Slug       string   `json:"slug" yaml:"slug"`
	Country    string   `json:"country,omitempty" yaml:"country,omitempty"` // First non-empty value seen wins
	CigarCount int      `json:"cigar_count" yaml:"cigar_count"`
	Lines      []string `json:"lines" yaml:"lines"` // Line slugs belonging to this brand, no duplicates
}

// HasLine reports whether the brand already references the given line slug.
func (b *Brand) HasLine(slug string) bool {
	for _, s := range b.Lines {
		if s == slug {
			return true
		}
	}
	return false
}

// AddLine appends a line slug if not already present.
func (b *Brand) AddLine(slug string) {
	if !b.HasLine(slug) {
		b.Lines = append(b.Lines, slug)
	}
}
