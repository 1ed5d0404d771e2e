package extract

import "strings"

// mergeWrappedLines recombines test names that were line-wrapped away from
// their numeric result. A line with no digit that is not itself skippable is
// joined to its successor (with a double space) when the successor carries a
// digit; the merged pair is consumed as one logical record. Single pass,
// greedy, left to right. All emitted lines are trimmed.
func mergeWrappedLines(lines []string) []string {
	merged := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		if i+1 < len(lines) && line != "" && !containsDigit(line) &&
			len(line) > 2 && !ShouldSkip(line) {
			next := strings.TrimSpace(lines[i+1])
			if containsDigit(next) {
				merged = append(merged, line+"  "+next)
				i++
				continue
			}
		}

		merged = append(merged, line)
	}
	return merged
}

func containsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}
