package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/coolbeans/labreport/pkg/report"
)

// LineMatcher attempts to parse one cleaned line of text into a measurement.
// Implementations must be safe for concurrent use.
type LineMatcher interface {
	// Name returns the human-readable matcher name.
	Name() string

	// Match parses the line. The boolean reports whether the matcher
	// produced a valid measurement; matchers that structurally match but
	// fail validation (bad name, unparsable value) report false so the
	// cascade can try the next rule.
	Match(line string) (report.Measurement, bool)
}

// regexLineMatcher parses a line with a single compiled pattern using the
// named capture groups "name", "value", "unit", and "ref".
type regexLineMatcher struct {
	name    string
	pattern *regexp.Regexp
}

// DefaultMatchers returns the ordered structural rules applied to each text
// line, most specific first. The cascade stops at the first rule that yields
// a valid measurement.
func DefaultMatchers() []LineMatcher {
	namePart := `(?P<name>[A-Za-z][A-Za-z0-9\s()\-.,/']+?)`
	return []LineMatcher{
		// name  value unit low-high-range [unit]
		&regexLineMatcher{
			name: "columnar with range",
			pattern: regexp.MustCompile(`(?i)^` + namePart +
				`\s{2,}(?P<value>\d+\.?\d*)\s+` +
				`(?P<unit>` + unitAlternation + `)\s+` +
				`(?P<ref>\d+\.?\d*\s*[-\x{2013}\x{2014}]+\s*\d+\.?\d*` +
				`(?:\s*(?:` + unitAlternation + `))?)`),
		},
		// name  value unit </>/up-to bound
		&regexLineMatcher{
			name: "columnar with bound",
			pattern: regexp.MustCompile(`(?i)^` + namePart +
				`\s{2,}(?P<value>\d+\.?\d*)\s+` +
				`(?P<unit>` + unitAlternation + `)\s+` +
				`(?P<ref>(?:[<>]|up\s*to)\s*\d+\.?\d*)`),
		},
		// name  value unit (no reference captured)
		&regexLineMatcher{
			name: "columnar without range",
			pattern: regexp.MustCompile(`(?i)^` + namePart +
				`\s{2,}(?P<value>\d+\.?\d*)\s+` +
				`(?P<unit>` + unitAlternation + `)`),
		},
		// name: value [unit] [(Ref: low-high)]
		&regexLineMatcher{
			name: "labeled value",
			pattern: regexp.MustCompile(`(?i)^` + namePart +
				`\s*[:=]\s*(?P<value>\d+\.?\d*)\s*` +
				`(?P<unit>` + unitAlternation + `)?\s*[(\[]*\s*(?:ref[:.]?\s*)?` +
				`(?P<ref>\d+\.?\d*\s*[-\x{2013}]+\s*\d+\.?\d*)?`),
		},
		// single-space fallback: name value unit low-high-range
		&regexLineMatcher{
			name: "loose columnar",
			pattern: regexp.MustCompile(`(?i)^(?P<name>[A-Za-z][A-Za-z0-9\s()\-.,/']{2,}?)` +
				`\s+(?P<value>\d+\.?\d*)\s+` +
				`(?P<unit>` + unitAlternation + `)\s+` +
				`(?P<ref>\d+\.?\d*\s*[-\x{2013}]+\s*\d+\.?\d*)`),
		},
	}
}

// Name returns the matcher name.
func (m *regexLineMatcher) Name() string {
	return m.name
}

// Match applies the matcher's pattern and validates the captured fields.
func (m *regexLineMatcher) Match(line string) (report.Measurement, bool) {
	submatch := m.pattern.FindStringSubmatch(line)
	if submatch == nil {
		return report.Measurement{}, false
	}

	name := cleanCapturedName(submatch[m.pattern.SubexpIndex("name")])
	if !validTestName(name) {
		return report.Measurement{}, false
	}

	value, err := strconv.ParseFloat(submatch[m.pattern.SubexpIndex("value")], 64)
	if err != nil {
		return report.Measurement{}, false
	}

	return report.Measurement{
		TestName:     name,
		Value:        value,
		Unit:         capturedGroup(m.pattern, submatch, "unit"),
		RefRangeText: capturedGroup(m.pattern, submatch, "ref"),
	}, true
}

// cleanCapturedName collapses internal whitespace and trims the separator
// characters a labeled-value match can leave on the name.
func cleanCapturedName(raw string) string {
	name := strings.TrimSpace(whitespaceRun.ReplaceAllString(raw, " "))
	return strings.TrimRight(name, ":= ")
}

// validTestName rejects names under two characters and generic header words.
func validTestName(name string) bool {
	if utf8.RuneCountInString(name) < 2 {
		return false
	}
	return !invalidNames[strings.ToLower(name)]
}

// capturedGroup returns a named group's trimmed text, or "" when the group
// did not participate in the match.
func capturedGroup(pattern *regexp.Regexp, submatch []string, group string) string {
	index := pattern.SubexpIndex(group)
	if index < 0 || index >= len(submatch) {
		return ""
	}
	return strings.TrimSpace(submatch[index])
}

var whitespaceRun = regexp.MustCompile(`\s+`)
