package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coolbeans/labreport/pkg/benchmark"
	"github.com/coolbeans/labreport/pkg/extract"
	"github.com/coolbeans/labreport/pkg/report"
	"github.com/coolbeans/labreport/pkg/summary"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "labreport",
		Short: "Lab report extraction and reconciliation",
		Long: `Labreport extracts discrete laboratory-test measurements from
document text and tables, reconciles each measurement against a curated
benchmark table, and classifies it as NORMAL, LOW, or HIGH.

It consumes the output of any document reader (newline-delimited text
and/or CSV cell grids) and produces enriched JSON results, aggregate
counts, and Markdown summaries.`,
		Version: version,
	}

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(benchmarksCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// analyzeOutput is the JSON shape written by the analyze command.
type analyzeOutput struct {
	Results []report.Enriched `json:"results"`
	Stats   report.Stats      `json:"stats"`
}

func analyzeCmd() *cobra.Command {
	var (
		sourcePath     string
		tablePaths     []string
		benchmarksPath string
		outputPath     string
		format         string
		showStats      bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Extract and classify measurements from report text",
		Long: `Analyze a lab report: extract measurements from its text lines and
CSV tables, reconcile them against the benchmark table, and classify each.

Example:
  labreport analyze --source report.txt
  labreport analyze --source report.txt --table cbc.csv --format clinical
  labreport analyze --source report.txt --benchmarks custom.yaml --output results.json --stats`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sourcePath == "" && len(tablePaths) == 0 {
				return fmt.Errorf("nothing to analyze: provide --source and/or --table")
			}

			doc, err := readDocument(sourcePath, tablePaths)
			if err != nil {
				return err
			}

			registry, err := loadRegistry(benchmarksPath)
			if err != nil {
				return err
			}

			results := benchmark.Compare(doc.Extract(), registry.Entries())
			stats := report.Aggregate(results)

			rendered, err := renderResults(results, stats, format)
			if err != nil {
				return err
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, []byte(rendered), 0644); err != nil {
					return fmt.Errorf("writing %s: %w", outputPath, err)
				}
				fmt.Printf("Wrote %d result(s) to %s\n", len(results), outputPath)
			} else {
				fmt.Println(rendered)
			}

			if showStats {
				fmt.Fprintf(os.Stderr, "Total: %d  Normal: %d  Low: %d  High: %d\n",
					stats.Total, stats.Normal, stats.Low, stats.High)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sourcePath, "source", "", "Path to newline-delimited report text")
	cmd.Flags().StringArrayVar(&tablePaths, "table", nil, "Path to a CSV cell grid (repeatable)")
	cmd.Flags().StringVar(&benchmarksPath, "benchmarks", "", "Path to a YAML benchmark table (default: built-in)")
	cmd.Flags().StringVar(&outputPath, "output", "", "Write output to a file instead of stdout")
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json, patient, or clinical")
	cmd.Flags().BoolVar(&showStats, "stats", false, "Print aggregate counts to stderr")
	return cmd
}

func benchmarksCmd() *cobra.Command {
	var benchmarksPath string

	cmd := &cobra.Command{
		Use:   "benchmarks",
		Short: "List the loaded benchmark table",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(benchmarksPath)
			if err != nil {
				return err
			}

			entries := registry.Entries()
			fmt.Printf("%d benchmark entries\n\n", len(entries))
			for _, entry := range entries {
				fmt.Printf("  %-28s %-22s %s\n",
					entry.TestName, entry.Category, formatBounds(entry))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&benchmarksPath, "benchmarks", "", "Path to a YAML benchmark table (default: built-in)")
	return cmd
}

// readDocument assembles the extraction input from the given files. This is
// the document-reader seam: the extraction core itself never touches files.
func readDocument(sourcePath string, tablePaths []string) (extract.Document, error) {
	var doc extract.Document

	if sourcePath != "" {
		data, err := os.ReadFile(sourcePath)
		if err != nil {
			return doc, fmt.Errorf("reading %s: %w", sourcePath, err)
		}
		doc.Lines = strings.Split(string(data), "\n")
	}

	for _, path := range tablePaths {
		table, err := readCSVTable(path)
		if err != nil {
			return doc, err
		}
		doc.Tables = append(doc.Tables, table)
	}
	return doc, nil
}

// readCSVTable reads one CSV file as a cell grid.
func readCSVTable(path string) (extract.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows may differ in length
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	table := make(extract.Table, len(rows))
	for i, row := range rows {
		table[i] = row
	}
	return table, nil
}

// loadRegistry loads the benchmark table from the given path, falling back
// to the built-in table when no path is set.
func loadRegistry(path string) (*benchmark.Registry, error) {
	if path == "" {
		return benchmark.NewRegistry(benchmark.DefaultEntries())
	}
	return benchmark.LoadFile(path)
}

// renderResults produces the requested output format.
func renderResults(results []report.Enriched, stats report.Stats, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(analyzeOutput{Results: results, Stats: stats}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding results: %w", err)
		}
		return string(data), nil
	case "patient":
		return summary.Patient(results), nil
	case "clinical":
		return summary.Clinical(results), nil
	default:
		return "", fmt.Errorf("unknown format %q (expected json, patient, or clinical)", format)
	}
}

func formatBounds(entry benchmark.Entry) string {
	switch {
	case entry.Low != nil && entry.High != nil:
		return fmt.Sprintf("%v - %v", *entry.Low, *entry.High)
	case entry.High != nil:
		return fmt.Sprintf("< %v", *entry.High)
	case entry.Low != nil:
		return fmt.Sprintf("> %v", *entry.Low)
	default:
		return "(no bounds)"
	}
}
