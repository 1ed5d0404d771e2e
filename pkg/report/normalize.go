package report

import (
	"regexp"
	"strings"
)

var (
	// namePunctuationPattern matches the punctuation characters that lab
	// reports sprinkle into test names ("R.B.C.", "HDL-Cholesterol",
	// "SGPT/ALT").
	namePunctuationPattern = regexp.MustCompile(`[.\-_/,()]`)

	// whitespaceRunPattern collapses runs of whitespace to a single space.
	whitespaceRunPattern = regexp.MustCompile(`\s+`)

	// totalPrefixPattern strips a leading "total" token so that
	// "Total R.B.C. Count" and "RBC Count" normalize toward the same key.
	totalPrefixPattern = regexp.MustCompile(`^total\s+`)
)

// NormalizeName reduces a test name to its matching key: lower-cased,
// punctuation replaced by spaces, whitespace collapsed, and any leading
// "total" token removed. The function is total and idempotent; strings with
// no alphanumeric content simply come back without their punctuation.
func NormalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = namePunctuationPattern.ReplaceAllString(n, " ")
	n = strings.TrimSpace(whitespaceRunPattern.ReplaceAllString(n, " "))
	for {
		stripped := totalPrefixPattern.ReplaceAllString(n, "")
		if stripped == n {
			return n
		}
		n = stripped
	}
}
