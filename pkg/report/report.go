// Package report defines the shared domain types for extracted laboratory
// measurements and their classified results, plus the name-normalization and
// reference-range parsing helpers used by both the extraction and
// reconciliation layers.
package report

// Status classifies a measurement relative to its reference bounds.
type Status string

const (
	StatusNormal Status = "NORMAL"
	StatusLow    Status = "LOW"
	StatusHigh   Status = "HIGH"
)

// Measurement is one tentative test result extracted from raw input, before
// benchmark reconciliation. Immutable once produced; the identity used for
// de-duplication is the lower-cased, trimmed TestName.
type Measurement struct {
	TestName     string  `json:"test_name"`
	Value        float64 `json:"value"`
	Unit         string  `json:"unit"`
	RefRangeText string  `json:"ref_range_text"`
}

// Enriched is the terminal output of the core: one measurement combined with
// its resolved benchmark context and classification.
type Enriched struct {
	TestName      string   `json:"test_name"`
	Value         float64  `json:"value"`
	Unit          string   `json:"unit"`
	RefRangeText  string   `json:"ref_range_text"`
	Status        Status   `json:"status"`
	Benchmark     string   `json:"benchmark,omitempty"`
	BenchmarkLow  *float64 `json:"benchmark_low"`
	BenchmarkHigh *float64 `json:"benchmark_high"`
	Category      string   `json:"category"`
	Description   string   `json:"description,omitempty"`
}

// Stats is the aggregate count tuple consumed by the presentation layer.
type Stats struct {
	Total  int `json:"total"`
	Normal int `json:"normal"`
	Low    int `json:"low"`
	High   int `json:"high"`
}

// Aggregate counts results by status.
func Aggregate(results []Enriched) Stats {
	stats := Stats{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case StatusLow:
			stats.Low++
		case StatusHigh:
			stats.High++
		default:
			stats.Normal++
		}
	}
	return stats
}

// Abnormal returns the results whose status is LOW or HIGH, preserving order.
func Abnormal(results []Enriched) []Enriched {
	var abnormal []Enriched
	for _, r := range results {
		if r.Status == StatusLow || r.Status == StatusHigh {
			abnormal = append(abnormal, r)
		}
	}
	return abnormal
}
