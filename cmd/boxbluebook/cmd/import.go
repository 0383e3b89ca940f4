package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/boxbluebook/boxbluebook/internal/store"
	"github.com/boxbluebook/boxbluebook/pkg/catalog"
)

var (
	importDB        string
	importData      string
	importBatchSize int
	importDryRun    bool
)

// maxPrintedErrors caps how many import errors the summary lists before
// truncating; the full set is still counted.
const maxPrintedErrors = 10

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import master catalog artifacts into the SQLite store",
	Long: `Import reads the master catalog artifacts written by aggregate and
upserts them into a SQLite database. Imports are idempotent: re-running
against the same database converges instead of duplicating, and existing
field values are preserved over incoming empty ones.`,
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importDB, "db", "data/catalog.db", "path to the SQLite catalog database")
	importCmd.Flags().StringVarP(&importData, "data", "d", "data", "directory holding master catalog artifacts")
	importCmd.Flags().IntVar(&importBatchSize, "batch-size", store.DefaultBatchSize, "cigars written per transaction")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "report what would be written without touching the database")
}

func runImport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	var cat catalog.Catalog
	if err := readArtifact(filepath.Join(importData, "master-cigars.json"), &cat); err != nil {
		return err
	}

	var brandFile struct {
		Brands []catalog.Brand `json:"brands"`
	}
	if err := readArtifact(filepath.Join(importData, "brands.json"), &brandFile); err != nil {
		return err
	}

	var lineFile struct {
		Lines []catalog.Line `json:"lines"`
	}
	if err := readArtifact(filepath.Join(importData, "lines.json"), &lineFile); err != nil {
		return err
	}

	s, err := store.Open(ctx, importDB,
		store.WithBatchSize(importBatchSize),
		store.WithDryRun(importDryRun))
	if err != nil {
		return err
	}
	defer s.Close()

	summary := s.Import(ctx, &cat, brandFile.Brands, lineFile.Lines)

	out := cmd.OutOrStdout()
	mode := "Imported"
	if importDryRun {
		mode = "Would import"
	}
	fmt.Fprintf(out, "%s %d brands, %d lines, %d cigars into %s\n",
		mode, summary.Brands, summary.Lines, summary.Cigars, importDB)

	if len(summary.Errors) > 0 {
		fmt.Fprintf(out, "\n%d errors:\n", len(summary.Errors))
		for i, err := range summary.Errors {
			if i == maxPrintedErrors {
				fmt.Fprintf(out, "  ... and %d more\n", len(summary.Errors)-maxPrintedErrors)
				break
			}
			fmt.Fprintf(out, "  %v\n", err)
		}
		return fmt.Errorf("import finished with %d errors", len(summary.Errors))
	}
	return nil
}
