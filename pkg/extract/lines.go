package extract

import (
	"regexp"
	"strings"

	"github.com/coolbeans/labreport/pkg/report"
)

// wideGapPattern collapses runs of three or more spaces down to the two-space
// column separator the line matchers key on.
var wideGapPattern = regexp.MustCompile(` {3,}`)

// Lines runs the text extraction pipeline over newline-split document text:
// separator cleanup, wrapped-line merging, noise filtering, the pattern
// cascade, and first-occurrence de-duplication by lower-cased trimmed name.
// Extraction is best effort; lines that match nothing are dropped silently.
func Lines(lines []string) []report.Measurement {
	return linesInto(make(map[string]bool), lines)
}

// linesInto is the Lines pipeline with a caller-supplied de-duplication set,
// so table and text extraction can share one identity space.
func linesInto(seen map[string]bool, lines []string) []report.Measurement {
	matchers := DefaultMatchers()

	cleaned := make([]string, len(lines))
	for i, line := range lines {
		cleaned[i] = cleanSeparators(line)
	}

	var measurements []report.Measurement
	for _, line := range mergeWrappedLines(cleaned) {
		if ShouldSkip(line) {
			continue
		}
		for _, matcher := range matchers {
			m, ok := matcher.Match(line)
			if !ok {
				continue
			}
			if key := dedupeKey(m.TestName); !seen[key] {
				seen[key] = true
				measurements = append(measurements, m)
			}
			break
		}
	}
	return measurements
}

// cleanSeparators neutralizes table-ish separators in raw text: pipes become
// spaces, tabs become double spaces, and wide gaps shrink to double spaces.
func cleanSeparators(line string) string {
	line = strings.ReplaceAll(line, "|", " ")
	line = strings.ReplaceAll(line, "\t", "  ")
	return wideGapPattern.ReplaceAllString(line, "  ")
}

// dedupeKey is the identity used for de-duplication: the lower-cased,
// trimmed test name.
func dedupeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
