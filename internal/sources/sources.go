// Package sources loads raw-record batches produced by the per-vendor
// extraction adapters. The engine does not care how a record was produced,
// only that each batch file is a JSON array of records tagged with a
// provenance source. A file that fails to parse is recorded and skipped;
// ingestion never aborts the run.
package sources

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/boxbluebook/boxbluebook/pkg/catalog"
	"github.com/boxbluebook/boxbluebook/pkg/errors"
	"github.com/boxbluebook/boxbluebook/pkg/logging"
)

// LoadDir walks dir and loads every .json batch file beneath it, in
// lexical path order so runs are reproducible. It returns all records plus
// the per-file errors encountered along the way.
func LoadDir(dir string) ([]catalog.Record, []error) {
	var records []catalog.Record
	var errs []error

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, errors.WrapIO("read", path, err))
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}

		batch, err := LoadFile(path)
		if err != nil {
			errs = append(errs, err)
			logging.Warn().Err(err).Str("file", path).Msg("Skipping unreadable batch")
			return nil
		}

		logging.Info().Str("file", filepath.Base(path)).Int("records", len(batch)).Msg("Loaded batch")
		records = append(records, batch...)
		return nil
	})
	if walkErr != nil {
		errs = append(errs, errors.WrapIO("walk", dir, walkErr))
	}

	return records, errs
}

// LoadFile reads one JSON batch file.
func LoadFile(path string) ([]catalog.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var records []catalog.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return records, nil
}
