package extract

import (
	"regexp"
	"strings"
)

// skipPatterns match lines that carry no measurement data: report and page
// metadata, patient demographics, column headers, separator rules, and
// signature/disclaimer boilerplate. A line matching any of these never
// reaches the pattern cascade.
var skipPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*(page|report|date|time|patient|doctor|dr\.|lab|hospital|clinic|specimen|sample|collected|received|printed|barcode|accession)`),
	regexp.MustCompile(`(?i)^\s*(test\s*name|investigation|parameter|analyte)\s+(result|value|observed)`),
	regexp.MustCompile(`(?i)^\s*(name|age|sex|gender|id|uhid|mrn)\s*[:/]`),
	regexp.MustCompile(`^\s*[-=_*]{5,}\s*$`),
	regexp.MustCompile(`^\s*$`),
	regexp.MustCompile(`(?i)^\s*(end\s*of\s*report|signature|pathologist|technician|verified|approved)`),
	regexp.MustCompile(`(?i)^\s*(note|disclaimer|this\s*report|please\s*consult|address|phone|nabl|iso)`),
}

// invalidNames is the stoplist of generic header words that are never valid
// test names on their own.
var invalidNames = map[string]bool{
	"test": true, "name": true, "result": true, "value": true,
	"unit": true, "reference": true, "range": true, "normal": true,
	"parameter": true, "investigation": true, "method": true,
	"remarks": true, "status": true,
}

// ShouldSkip reports whether a line is noise that must not reach the pattern
// cascade: under three characters once trimmed, or matching any skip pattern.
func ShouldSkip(line string) bool {
	if len(strings.TrimSpace(line)) < 3 {
		return true
	}
	for _, pattern := range skipPatterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}
