// Package pipeline wires the normalization stages into one batch run:
// lexical normalization, dimension resolution, identity generation,
// deduplication, and taxonomy derivation, in that order. Each stage is a
// pure transformation over the in-memory record set; the only mutable
// state is the explicit per-run Stats context.
//
// The engine is single-threaded. Merge outcomes depend on first-seen
// order across all sources combined, so parallelizing anything past raw
// extraction would change observable results.
package pipeline

import (
	"sort"

	"github.com/agentstation/utc"

	"github.com/boxbluebook/boxbluebook/pkg/catalog"
	"github.com/boxbluebook/boxbluebook/pkg/dedupe"
	"github.com/boxbluebook/boxbluebook/pkg/dimension"
	"github.com/boxbluebook/boxbluebook/pkg/identity"
	"github.com/boxbluebook/boxbluebook/pkg/logging"
	"github.com/boxbluebook/boxbluebook/pkg/taxonomy"
	"github.com/boxbluebook/boxbluebook/pkg/vocab"
)

// DefaultTopBrands is how many brands the report ranks by product count.
const DefaultTopBrands = 20

// Pipeline runs the normalization and reconciliation engine over one
// fully-materialized batch of raw records.
type Pipeline struct {
	topBrands int
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTopBrands sets how many brands the report ranks.
func WithTopBrands(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.topBrands = n
		}
	}
}

// New creates a Pipeline with options.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{topBrands: DefaultTopBrands}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result holds every artifact of one aggregation run.
type Result struct {
	Catalog *catalog.Catalog
	Brands  []catalog.Brand
	Lines   []catalog.Line
	Report  *catalog.Report
	Stats   *Stats
}

// Run executes the full pipeline over a batch of raw records. It never
// fails: malformed fields degrade to absent values and the run always
// completes with its own coverage statistics.
func (p *Pipeline) Run(records []catalog.Record) *Result {
	stats := NewStats()

	cigars := make([]catalog.Cigar, 0, len(records))
	for _, rec := range records {
		cigars = append(cigars, p.normalize(rec, stats))
	}

	unique := dedupe.Deduplicate(cigars)
	brands, lines := taxonomy.Build(unique)

	cat := catalog.New(unique, len(brands), len(lines), stats.Sources)
	report := p.buildReport(stats, unique, brands, lines)

	logging.Info().
		Int("raw", stats.RawRecords).
		Int("cigars", len(unique)).
		Int("brands", len(brands)).
		Int("lines", len(lines)).
		Int("duplicates_removed", report.Totals.DuplicatesRemoved).
		Msg("Aggregation complete")

	return &Result{
		Catalog: cat,
		Brands:  brands,
		Lines:   lines,
		Report:  report,
		Stats:   stats,
	}
}

// normalize applies the lexical normalizers and dimension resolver to one
// raw record and stamps the derived identifiers.
func (p *Pipeline) normalize(rec catalog.Record, stats *Stats) catalog.Cigar {
	rec.Brand = vocab.NormalizeBrand(rec.Brand)
	rec.Vitola = vocab.Vitola(rec.Name, rec.Vitola)
	rec.Country = vocab.Country(rec.Country)

	if rec.Wrapper == "" {
		rec.Wrapper = vocab.Wrapper(rec.Name)
	} else if canonical, ok := vocab.Wrappers.Lookup(rec.Wrapper); ok {
		rec.Wrapper = canonical
	}

	if rec.Length == nil || rec.RingGauge == nil {
		if length, ring, ok := dimension.Parse(rec.Size); ok {
			rec.Length, rec.RingGauge = &length, &ring
			stats.SizeParsed++
		}
	}

	stats.Observe(rec.Source)

	return catalog.Cigar{
		ID:     identity.ID(rec.Brand, rec.Name, rec.Size),
		Slug:   identity.CigarSlug(rec.Brand, rec.Name),
		Record: rec,
	}
}

// buildReport assembles the coverage and aggregation summary.
func (p *Pipeline) buildReport(stats *Stats, cigars []catalog.Cigar, brands []catalog.Brand, lines []catalog.Line) *catalog.Report {
	report := &catalog.Report{
		Timestamp: utc.Now(),
		Totals: catalog.Totals{
			Cigars:            len(cigars),
			Brands:            len(brands),
			Lines:             len(lines),
			RawRecords:        stats.RawRecords,
			DuplicatesRemoved: stats.RawRecords - len(cigars),
		},
		Sources: stats.Sources,
	}

	for i := range cigars {
		c := &cigars[i]
		if c.HasPriceData() {
			report.Coverage.WithMSRP++
		}
		if c.WholesalePrice != nil {
			report.Coverage.WithWholesale++
		}
		if c.HasSizeData() {
			report.Coverage.WithSize++
		}
		if c.Vitola != "" {
			report.Coverage.WithVitola++
		}
		if c.Wrapper != "" {
			report.Coverage.WithWrapper++
		}
		if c.Country != "" {
			report.Coverage.WithCountry++
		}
	}

	ranked := make([]catalog.BrandCount, 0, len(brands))
	for _, b := range brands {
		ranked = append(ranked, catalog.BrandCount{Name: b.Name, Count: b.CigarCount})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > p.topBrands {
		ranked = ranked[:p.topBrands]
	}
	report.ByBrand = ranked

	return report
}
