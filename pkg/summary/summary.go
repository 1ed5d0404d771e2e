// Package summary renders classified lab results as Markdown, in two
// registers: a plain-language patient summary and a category-grouped
// clinical summary. Both are pure template output; no external service is
// involved.
package summary

import (
	"fmt"
	"strings"

	"github.com/coolbeans/labreport/pkg/report"
)

// Patient generates a plain-language Markdown summary for a reader with no
// medical background. Abnormal results come first; the summary never
// diagnoses, and always ends with an educational disclaimer.
func Patient(results []report.Enriched) string {
	stats := report.Aggregate(results)
	abnormal := report.Abnormal(results)

	var b strings.Builder
	b.WriteString("# Your Lab Report Summary\n\n")
	b.WriteString(fmt.Sprintf("We analyzed **%d tests** from your report.\n\n", stats.Total))

	if stats.Low == 0 && stats.High == 0 {
		b.WriteString("**Great news!** All your test results fall within the normal reference ranges.\n")
	} else {
		if stats.Normal > 0 {
			b.WriteString(fmt.Sprintf("**%d test(s)** are within normal range - that's good news!\n\n", stats.Normal))
		}
		b.WriteString(fmt.Sprintf("**%d test(s)** are outside the normal range:\n\n", len(abnormal)))
		for _, r := range abnormal {
			direction := "higher"
			label := "Above Range"
			if r.Status == report.StatusLow {
				direction = "lower"
				label = "Below Range"
			}
			b.WriteString(fmt.Sprintf("### %s: %v %s (%s)\n", r.TestName, r.Value, r.Unit, label))
			if r.BenchmarkLow != nil && r.BenchmarkHigh != nil {
				b.WriteString(fmt.Sprintf("- **Normal range:** %v - %v %s\n", *r.BenchmarkLow, *r.BenchmarkHigh, r.Unit))
				b.WriteString(fmt.Sprintf("- Your value is %s than the typical range.\n", direction))
			}
			if r.Description != "" {
				b.WriteString(fmt.Sprintf("- **What this measures:** %s\n", r.Description))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n---\n")
	b.WriteString("**Disclaimer:** This is for educational purposes only. Not a medical diagnosis. " +
		"Please consult your doctor for interpretation.\n")
	return b.String()
}

// Clinical generates a structured Markdown summary for healthcare
// professionals: headline counts, one table per test category, and an
// abnormal-findings list.
func Clinical(results []report.Enriched) string {
	stats := report.Aggregate(results)
	abnormal := report.Abnormal(results)

	var b strings.Builder
	b.WriteString("# Clinical Lab Report Summary\n\n")
	b.WriteString(fmt.Sprintf("**Parameters:** %d | **Normal:** %d | **Low:** %d | **High:** %d\n",
		stats.Total, stats.Normal, stats.Low, stats.High))

	for _, category := range categoriesInOrder(results) {
		b.WriteString(fmt.Sprintf("\n## %s\n\n", category))
		b.WriteString("| Parameter | Result | Unit | Reference | Status |\n")
		b.WriteString("|-----------|--------|------|-----------|--------|\n")
		for _, r := range results {
			if resultCategory(r) != category {
				continue
			}
			b.WriteString(fmt.Sprintf("| %s | %v | %s | %s | %s |\n",
				r.TestName, r.Value, r.Unit, referenceColumn(r), r.Status))
		}
	}

	if len(abnormal) > 0 {
		b.WriteString("\n## Abnormal Findings\n\n")
		for _, r := range abnormal {
			b.WriteString(fmt.Sprintf("- **%s**: %s\n", r.TestName, r.Status))
		}
	}

	b.WriteString("\n---\n")
	b.WriteString("*Generated summary for reference only. Clinical correlation advised.*\n")
	return b.String()
}

// categoriesInOrder returns the distinct categories in first-seen order.
func categoriesInOrder(results []report.Enriched) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, r := range results {
		category := resultCategory(r)
		if !seen[category] {
			seen[category] = true
			categories = append(categories, category)
		}
	}
	return categories
}

func resultCategory(r report.Enriched) string {
	if r.Category == "" {
		return "Uncategorized"
	}
	return r.Category
}

// referenceColumn renders the reference cell: benchmark bounds when
// resolved, the raw range text otherwise, or N/A.
func referenceColumn(r report.Enriched) string {
	switch {
	case r.BenchmarkLow != nil && r.BenchmarkHigh != nil:
		return fmt.Sprintf("%v - %v", *r.BenchmarkLow, *r.BenchmarkHigh)
	case r.BenchmarkHigh != nil:
		return fmt.Sprintf("< %v", *r.BenchmarkHigh)
	case r.BenchmarkLow != nil:
		return fmt.Sprintf("> %v", *r.BenchmarkLow)
	case r.RefRangeText != "":
		return r.RefRangeText
	default:
		return "N/A"
	}
}
