package catalog

// Cigar is a canonical product: a Record after normalization, carrying the
// two derived identifiers. Exactly one Cigar exists per distinct
// (normalized brand, name, size) triple; duplicates from other sources are
// merged into the first-seen instance and never create a second one.
type Cigar struct {
	// ID is the content-derived stable identifier used as the join key by
	// downstream storage. Same triple, same ID, on every run.
	ID string `json:"id" yaml:"id"`

	// Slug is the URL-safe human-readable identifier. Collisions are
	// possible and acceptable; identity is enforced by the dedup key.
	Slug string `json:"slug" yaml:"slug"`

	Record `yaml:",inline"`
}
