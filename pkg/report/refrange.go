package report

import (
	"regexp"
	"strconv"
)

var (
	// lowHighRangePattern matches "low - high" with a hyphen, en-dash, or
	// em-dash (possibly repeated) as the separator.
	lowHighRangePattern = regexp.MustCompile(`(\d+\.?\d*)\s*[-\x{2013}\x{2014}]+\s*(\d+\.?\d*)`)

	// upperBoundPattern matches "< upper" or "up to upper".
	upperBoundPattern = regexp.MustCompile(`(?:<|[Uu]p\s*to)\s*(\d+\.?\d*)`)

	// lowerBoundPattern matches "> lower".
	lowerBoundPattern = regexp.MustCompile(`>\s*(\d+\.?\d*)`)
)

// ParseRefRange parses a free-text reference range expression into optional
// numeric bounds. Recognized forms, in priority order: "low - high",
// "< upper" / "up to upper", and "> lower". Trailing unit text is ignored;
// anything unrecognized (including empty input) yields (nil, nil).
func ParseRefRange(text string) (low, high *float64) {
	if text == "" {
		return nil, nil
	}

	if m := lowHighRangePattern.FindStringSubmatch(text); m != nil {
		return parseBound(m[1]), parseBound(m[2])
	}
	if m := upperBoundPattern.FindStringSubmatch(text); m != nil {
		return nil, parseBound(m[1])
	}
	if m := lowerBoundPattern.FindStringSubmatch(text); m != nil {
		return parseBound(m[1]), nil
	}
	return nil, nil
}

// parseBound converts a matched numeric token to a bound pointer. The regex
// groups only admit valid float syntax, so a parse failure means no bound.
func parseBound(token string) *float64 {
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil
	}
	return &value
}
