// Package benchmark reconciles extracted measurements against a curated
// reference table: it resolves test names to benchmark entries, derives
// numeric bounds, and classifies each measurement as normal, low, or high.
package benchmark

import "fmt"

// Entry is one reference record: the expected normal numeric range and
// metadata for a named lab test. Entries are read-only once loaded.
type Entry struct {
	TestName    string   `yaml:"test_name" json:"test_name"`
	Aliases     []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
	Low         *float64 `yaml:"low" json:"low"`
	High        *float64 `yaml:"high" json:"high"`
	Category    string   `yaml:"category" json:"category"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
}

// Validate checks an entry for configuration mistakes that would corrupt
// classification: a missing name or inverted bounds.
func (e *Entry) Validate() error {
	if e.TestName == "" {
		return fmt.Errorf("benchmark entry has no test_name")
	}
	if e.Low != nil && e.High != nil && *e.Low > *e.High {
		return fmt.Errorf("benchmark entry %q has low %v above high %v", e.TestName, *e.Low, *e.High)
	}
	return nil
}
