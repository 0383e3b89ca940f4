package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/boxbluebook/boxbluebook/internal/cmd/output"
	"github.com/boxbluebook/boxbluebook/internal/sources"
	"github.com/boxbluebook/boxbluebook/pkg/catalog"
	"github.com/boxbluebook/boxbluebook/pkg/errors"
	"github.com/boxbluebook/boxbluebook/pkg/logging"
	"github.com/boxbluebook/boxbluebook/pkg/pipeline"
)

var (
	aggregateInput  string
	aggregateOutput string
	aggregateTop    int
)

// aggregateCmd runs the full normalization and reconciliation engine over
// every extracted batch file and writes the master catalog artifacts.
var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Aggregate extracted batches into the master catalog",
	Long: `Aggregate loads every extracted batch file, normalizes brand, vitola,
wrapper, and country vocabulary, resolves physical dimensions, removes
duplicates by merging complementary fields, derives the brand and line
taxonomy, and writes the master catalog artifacts:

  master-cigars.json           the deduplicated catalog
  brands.json                  derived brand taxonomy
  lines.json                   derived product-line taxonomy
  reports/aggregation_report.json  coverage and source statistics`,
	RunE: runAggregate,
}

func init() {
	rootCmd.AddCommand(aggregateCmd)

	aggregateCmd.Flags().StringVarP(&aggregateInput, "input", "i", "data/extracted", "directory of extracted batch files")
	aggregateCmd.Flags().StringVarP(&aggregateOutput, "output", "o", "data", "directory for master catalog artifacts")
	aggregateCmd.Flags().IntVar(&aggregateTop, "top", pipeline.DefaultTopBrands, "how many brands the report ranks")
}

func runAggregate(cmd *cobra.Command, _ []string) error {
	records, loadErrs := sources.LoadDir(aggregateInput)
	for _, err := range loadErrs {
		logging.Warn().Err(err).Msg("Batch load problem")
	}
	if len(records) == 0 {
		return fmt.Errorf("no records found under %s: %w", aggregateInput, errors.ErrNoData)
	}

	result := pipeline.New(pipeline.WithTopBrands(aggregateTop)).Run(records)

	if err := writeArtifacts(aggregateOutput, result); err != nil {
		return err
	}

	printSummary(cmd, result)
	return nil
}

// writeArtifacts persists the master catalog, taxonomy, and report files.
func writeArtifacts(dir string, result *pipeline.Result) error {
	reportsDir := filepath.Join(dir, "reports")
	if err := os.MkdirAll(reportsDir, 0o755); err != nil {
		return errors.WrapIO("create", reportsDir, err)
	}

	artifacts := []struct {
		path string
		data any
	}{
		{filepath.Join(dir, "master-cigars.json"), result.Catalog},
		{filepath.Join(dir, "brands.json"), map[string]any{"brands": result.Brands}},
		{filepath.Join(dir, "lines.json"), map[string]any{"lines": result.Lines}},
		{filepath.Join(reportsDir, "aggregation_report.json"), result.Report},
	}

	for _, a := range artifacts {
		if err := writeJSON(a.path, a.data); err != nil {
			return err
		}
		logging.Info().Str("file", a.path).Msg("Wrote artifact")
	}
	return nil
}

func writeJSON(path string, data any) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer f.Close()

	if err := output.JSON(f, data); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// printSummary writes the run summary, top-brand ranking, and field
// coverage to stdout.
func printSummary(cmd *cobra.Command, result *pipeline.Result) {
	report := result.Report
	out := cmd.OutOrStdout()

	if output.DetectFormat("") == output.FormatJSON {
		_ = output.JSON(out, report)
		return
	}

	fmt.Fprintf(out, "Aggregated %d raw records into %d cigars (%d duplicates merged)\n",
		report.Totals.RawRecords, report.Totals.Cigars, report.Totals.DuplicatesRemoved)
	fmt.Fprintf(out, "Brands: %d   Lines: %d   Sources: %d\n\n",
		report.Totals.Brands, report.Totals.Lines, len(report.Sources))

	if len(report.ByBrand) > 0 {
		rows := make([][]string, 0, len(report.ByBrand))
		for _, bc := range report.ByBrand {
			rows = append(rows, []string{bc.Name, fmt.Sprintf("%d", bc.Count)})
		}
		fmt.Fprintf(out, "Top brands by product count:\n")
		if err := output.Table(out, []string{"Brand", "Cigars"}, rows); err != nil {
			logging.Warn().Err(err).Msg("Could not render brand table")
		}
		fmt.Fprintln(out)
	}

	printCoverage(out, report)
}

func printCoverage(out io.Writer, report *catalog.Report) {
	cov := report.Coverage
	rows := [][]string{
		{"MSRP", coverageCell(report, cov.WithMSRP)},
		{"Wholesale price", coverageCell(report, cov.WithWholesale)},
		{"Size", coverageCell(report, cov.WithSize)},
		{"Vitola", coverageCell(report, cov.WithVitola)},
		{"Wrapper", coverageCell(report, cov.WithWrapper)},
		{"Country", coverageCell(report, cov.WithCountry)},
	}
	fmt.Fprintf(out, "Field coverage:\n")
	if err := output.Table(out, []string{"Field", "Coverage"}, rows); err != nil {
		logging.Warn().Err(err).Msg("Could not render coverage table")
	}
}

func coverageCell(report *catalog.Report, count int) string {
	return fmt.Sprintf("%d (%.1f%%)", count, report.Percent(count))
}

// readArtifact loads one master artifact back from disk; import uses it to
// round-trip what aggregate wrote.
func readArtifact(path string, into any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapIO("read", path, err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		return errors.WrapParse("json", path, err)
	}
	return nil
}
