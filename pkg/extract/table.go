package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/coolbeans/labreport/pkg/report"
)

// Table is a rectangular-ish grid of cell strings. Rows may differ in
// length; missing cells read as empty strings.
type Table [][]string

// Column-role keywords for header cells.
var (
	nameKeywords  = []string{"test", "parameter", "investigation", "name", "analyte"}
	valueKeywords = []string{"result", "value", "observed"}
	refKeywords   = []string{"reference", "range", "normal", "ref"}
)

// numericTokenPattern finds the first numeric token in a value cell.
var numericTokenPattern = regexp.MustCompile(`(\d+\.?\d*)`)

// columnRoles maps the four measurement fields to column indexes.
type columnRoles struct {
	name  int
	value int
	unit  int
	ref   int
}

// Tables extracts measurements from a sequence of cell grids. Malformed rows
// and tables are skipped individually; one bad table never aborts the rest.
func Tables(tables []Table) []report.Measurement {
	return tablesInto(make(map[string]bool), tables)
}

// tablesInto is Tables with a caller-supplied de-duplication set.
func tablesInto(seen map[string]bool, tables []Table) []report.Measurement {
	var measurements []report.Measurement
	for _, table := range tables {
		measurements = append(measurements, extractTable(seen, table)...)
	}
	return measurements
}

// extractTable infers the header row and column roles of one table, then
// reads one candidate measurement per data row.
func extractTable(seen map[string]bool, table Table) []report.Measurement {
	if len(table) < 2 {
		return nil
	}

	header, dataStart := findHeaderRow(table)
	roles := assignColumnRoles(header)

	var measurements []report.Measurement
	for _, row := range table[dataStart:] {
		if len(row) == 0 {
			continue
		}

		name := cellAt(row, roles.name)
		if utf8.RuneCountInString(name) < 2 {
			continue
		}
		valueMatch := numericTokenPattern.FindStringSubmatch(cellAt(row, roles.value))
		if valueMatch == nil {
			continue
		}
		value, err := strconv.ParseFloat(valueMatch[1], 64)
		if err != nil {
			continue
		}

		key := dedupeKey(name)
		if seen[key] || invalidNames[key] {
			continue
		}
		seen[key] = true

		measurements = append(measurements, report.Measurement{
			TestName:     name,
			Value:        value,
			Unit:         cellAt(row, roles.unit),
			RefRangeText: cellAt(row, roles.ref),
		})
	}
	return measurements
}

// findHeaderRow returns the first row containing a name-role keyword and the
// index of the first data row. With no keyword hit, row 0 is the header.
func findHeaderRow(table Table) ([]string, int) {
	for i, row := range table {
		for _, cell := range row {
			if containsAnyKeyword(cell, nameKeywords) {
				return row, i + 1
			}
		}
	}
	return table[0], 1
}

// assignColumnRoles maps header cells to the four measurement fields by
// keyword containment, defaulting to columns 0,1,2,3 in field order. Later
// header cells win when several match the same role.
func assignColumnRoles(header []string) columnRoles {
	roles := columnRoles{name: 0, value: 1, unit: 2, ref: 3}
	for index, cell := range header {
		if cell == "" {
			continue
		}
		switch {
		case containsAnyKeyword(cell, nameKeywords):
			roles.name = index
		case containsAnyKeyword(cell, valueKeywords):
			roles.value = index
		case strings.Contains(strings.ToLower(cell), "unit"):
			roles.unit = index
		case containsAnyKeyword(cell, refKeywords):
			roles.ref = index
		}
	}
	return roles
}

func containsAnyKeyword(cell string, keywords []string) bool {
	lowered := strings.ToLower(cell)
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// cellAt reads a role column from a row, treating missing indexes as empty.
func cellAt(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
