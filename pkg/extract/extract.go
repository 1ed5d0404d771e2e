// Package extract turns raw document text lines and table grids into
// candidate laboratory measurements. Extraction is best effort: lines, rows,
// and tables that cannot be parsed are dropped, never surfaced as errors.
package extract

import "github.com/coolbeans/labreport/pkg/report"

// Document is the in-memory input contract with the external document
// reader: zero or more cell grids plus the newline-split text of all pages.
type Document struct {
	Tables []Table
	Lines  []string
}

// Extract unions both extraction paths over one document. Table results take
// priority; text results fill the gaps. Both paths share a single
// de-duplication space keyed by lower-cased trimmed test name.
func (d Document) Extract() []report.Measurement {
	seen := make(map[string]bool)
	measurements := tablesInto(seen, d.Tables)
	return append(measurements, linesInto(seen, d.Lines)...)
}
