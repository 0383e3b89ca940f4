// Package store persists an aggregated catalog into a SQLite database.
// Every table is keyed by slug and written with upserts, so an import is
// idempotent: re-running it against the same database converges instead of
// duplicating. Cigars are written in batches; a failed batch is recorded
// in the summary and the import moves on to the next one.
package store

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/boxbluebook/boxbluebook/pkg/catalog"
	"github.com/boxbluebook/boxbluebook/pkg/errors"
	"github.com/boxbluebook/boxbluebook/pkg/identity"
	"github.com/boxbluebook/boxbluebook/pkg/logging"
)

// DefaultBatchSize is how many cigars are written per transaction.
const DefaultBatchSize = 100

// Store wraps a SQLite catalog database.
type Store struct {
	db        *sql.DB
	batchSize int
	dryRun    bool
}

// Option configures a Store.
type Option func(*Store)

// WithBatchSize sets the cigar batch size.
func WithBatchSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// WithDryRun counts what would be written without touching the database.
func WithDryRun(dry bool) Option {
	return func(s *Store) {
		s.dryRun = dry
	}
}

// Open opens (creating if needed) the catalog database at path.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.WrapResource("open", "catalog store", path, err)
	}

	// WAL mode for friendlier concurrent readers
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, errors.WrapResource("configure", "catalog store", path, err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, errors.WrapResource("configure", "catalog store", path, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, errors.WrapResource("migrate", "catalog store", path, err)
	}

	s := &Store{db: db, batchSize: DefaultBatchSize}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS brands (
	slug TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	country TEXT
);

CREATE TABLE IF NOT EXISTS lines (
	slug TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	brand_slug TEXT NOT NULL REFERENCES brands(slug)
);

CREATE TABLE IF NOT EXISTS cigars (
	slug TEXT PRIMARY KEY,
	id TEXT NOT NULL,
	name TEXT,
	brand_slug TEXT,
	line_slug TEXT,
	vitola TEXT,
	size TEXT,
	length REAL,
	ring_gauge INTEGER,
	box_count INTEGER,
	wholesale_price REAL,
	msrp_single REAL,
	msrp_box REAL,
	wrapper TEXT,
	country TEXT,
	upc TEXT,
	sku TEXT,
	source TEXT
);

CREATE INDEX IF NOT EXISTS idx_cigars_brand ON cigars(brand_slug);
CREATE INDEX IF NOT EXISTS idx_lines_brand ON lines(brand_slug);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Summary reports what one import run wrote, and every per-record or
// per-batch error it survived.
type Summary struct {
	Brands int
	Lines  int
	Cigars int
	Errors []error
}

// Import upserts the taxonomy and catalog. Brands go first so line and
// cigar references resolve; failures are collected in the summary and
// never abort the run.
func (s *Store) Import(ctx context.Context, cat *catalog.Catalog, brands []catalog.Brand, lines []catalog.Line) *Summary {
	summary := &Summary{}

	s.importBrands(ctx, brands, summary)
	s.importLines(ctx, lines, summary)
	s.importCigars(ctx, cat.Cigars, summary)

	logging.Info().
		Int("brands", summary.Brands).
		Int("lines", summary.Lines).
		Int("cigars", summary.Cigars).
		Int("errors", len(summary.Errors)).
		Bool("dry_run", s.dryRun).
		Msg("Import complete")
	return summary
}

func (s *Store) importBrands(ctx context.Context, brands []catalog.Brand, summary *Summary) {
	const upsert = `
INSERT INTO brands (slug, name, country) VALUES (?, ?, NULLIF(?, ''))
ON CONFLICT(slug) DO UPDATE SET
	name = excluded.name,
	country = COALESCE(brands.country, excluded.country);`

	for _, b := range brands {
		if s.dryRun {
			summary.Brands++
			continue
		}
		if _, err := s.db.ExecContext(ctx, upsert, b.Slug, b.Name, b.Country); err != nil {
			summary.Errors = append(summary.Errors, errors.WrapResource("upsert", "brand", b.Slug, err))
			continue
		}
		summary.Brands++
	}
}

func (s *Store) importLines(ctx context.Context, lines []catalog.Line, summary *Summary) {
	const upsert = `
INSERT INTO lines (slug, name, brand_slug) VALUES (?, ?, ?)
ON CONFLICT(slug) DO UPDATE SET
	name = excluded.name,
	brand_slug = excluded.brand_slug;`

	for _, l := range lines {
		if s.dryRun {
			summary.Lines++
			continue
		}
		if _, err := s.db.ExecContext(ctx, upsert, l.Slug, l.Name, l.BrandID); err != nil {
			summary.Errors = append(summary.Errors, errors.WrapResource("upsert", "line", l.Slug, err))
			continue
		}
		summary.Lines++
	}
}

func (s *Store) importCigars(ctx context.Context, cigars []catalog.Cigar, summary *Summary) {
	for batchNum := 0; batchNum*s.batchSize < len(cigars); batchNum++ {
		start := batchNum * s.batchSize
		end := min(start+s.batchSize, len(cigars))
		batch := cigars[start:end]

		if s.dryRun {
			summary.Cigars += len(batch)
			continue
		}

		if err := s.writeBatch(ctx, batch); err != nil {
			summary.Errors = append(summary.Errors, errors.NewImportError("cigars", batchNum+1, len(batch), err))
			continue
		}
		summary.Cigars += len(batch)
	}
}

// writeBatch upserts one batch of cigars inside a transaction.
func (s *Store) writeBatch(ctx context.Context, batch []catalog.Cigar) error {
	const upsert = `
INSERT INTO cigars (
	slug, id, name, brand_slug, line_slug, vitola, size,
	length, ring_gauge, box_count, wholesale_price, msrp_single, msrp_box,
	wrapper, country, upc, sku, source
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(slug) DO UPDATE SET
	id = excluded.id,
	name = excluded.name,
	brand_slug = excluded.brand_slug,
	line_slug = excluded.line_slug,
	vitola = COALESCE(cigars.vitola, excluded.vitola),
	size = COALESCE(cigars.size, excluded.size),
	length = COALESCE(cigars.length, excluded.length),
	ring_gauge = COALESCE(cigars.ring_gauge, excluded.ring_gauge),
	box_count = COALESCE(cigars.box_count, excluded.box_count),
	wholesale_price = COALESCE(cigars.wholesale_price, excluded.wholesale_price),
	msrp_single = COALESCE(cigars.msrp_single, excluded.msrp_single),
	msrp_box = COALESCE(cigars.msrp_box, excluded.msrp_box),
	wrapper = COALESCE(cigars.wrapper, excluded.wrapper),
	country = COALESCE(cigars.country, excluded.country),
	upc = COALESCE(cigars.upc, excluded.upc),
	sku = COALESCE(cigars.sku, excluded.sku),
	source = excluded.source;`

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.PrepareContext(ctx, upsert)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range batch {
		c := &batch[i]
		brandSlug := ""
		lineSlug := ""
		if c.Brand != "" {
			brandSlug = identity.Slug(c.Brand)
			if c.Line != "" {
				lineSlug = identity.LineSlug(brandSlug, c.Line)
			}
		}

		_, err := stmt.ExecContext(ctx,
			c.Slug, c.ID, nullable(c.Name), nullable(brandSlug), nullable(lineSlug),
			nullable(c.Vitola), nullable(c.Size),
			c.Length, c.RingGauge, c.BoxCount, c.WholesalePrice, c.MSRPSingle, c.MSRPBox,
			nullable(c.Wrapper), nullable(c.Country), nullable(c.UPC), nullable(c.SKU), c.Source,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// nullable maps empty strings to SQL NULL so COALESCE-based enrichment
// works the same way for text and numeric columns.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
