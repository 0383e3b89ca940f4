package pipeline

// Stats is the mutable run-scoped context threaded through the pipeline
// stages. Keeping it explicit (rather than package-level counters) keeps
// the engine re-entrant and testable one batch at a time.
type Stats struct {
	// Sources counts raw records per provenance tag.
	Sources map[string]int

	// RawRecords is the total raw record count before deduplication.
	RawRecords int

	// SizeParsed counts records whose dimensions were resolved from the
	// free-text size string during normalization.
	SizeParsed int
}

// NewStats creates an empty run context.
func NewStats() *Stats {
	return &Stats{Sources: make(map[string]int)}
}

// Observe records one raw record from the given source.
func (s *Stats) Observe(source string) {
	if source == "" {
		source = "unknown"
	}
	s.Sources[source]++
	s.RawRecords++
}
