package benchmark

import "github.com/coolbeans/labreport/pkg/report"

// UncategorizedCategory is the category sentinel for measurements with no
// resolved benchmark.
const UncategorizedCategory = "Uncategorized"

// Classify reconciles one measurement against the benchmark list and assigns
// its status. Bounds come from the resolved benchmark when one exists,
// otherwise from parsing the measurement's raw reference-range text. With no
// usable bounds the measurement is reported NORMAL.
func Classify(m report.Measurement, entries []Entry) report.Enriched {
	enriched := report.Enriched{
		TestName:     m.TestName,
		Value:        m.Value,
		Unit:         m.Unit,
		RefRangeText: m.RefRangeText,
		Status:       report.StatusNormal,
		Category:     UncategorizedCategory,
	}

	var low, high *float64
	if entry := Resolve(m.TestName, entries); entry != nil {
		low, high = entry.Low, entry.High
		enriched.Benchmark = entry.TestName
		enriched.BenchmarkLow = low
		enriched.BenchmarkHigh = high
		if entry.Category != "" {
			enriched.Category = entry.Category
		}
		enriched.Description = entry.Description
	} else if m.RefRangeText != "" {
		low, high = report.ParseRefRange(m.RefRangeText)
		enriched.BenchmarkLow = low
		enriched.BenchmarkHigh = high
	}

	enriched.Status = classifyValue(m.Value, low, high)
	return enriched
}

// Compare classifies a batch of measurements, preserving order.
func Compare(measurements []report.Measurement, entries []Entry) []report.Enriched {
	results := make([]report.Enriched, 0, len(measurements))
	for _, m := range measurements {
		results = append(results, Classify(m, entries))
	}
	return results
}

// classifyValue applies the inclusive-bounds status rule: a value exactly on
// a bound is NORMAL.
func classifyValue(value float64, low, high *float64) report.Status {
	switch {
	case low != nil && value < *low:
		return report.StatusLow
	case high != nil && value > *high:
		return report.StatusHigh
	default:
		return report.StatusNormal
	}
}
