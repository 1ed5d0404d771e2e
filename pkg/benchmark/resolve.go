package benchmark

import (
	"strings"

	"github.com/coolbeans/labreport/pkg/report"
)

// resolvePass is one lookup strategy over the benchmark list. Each pass is a
// total function: it returns the first matching entry in list order, or nil.
type resolvePass func(name string, entries []Entry) *Entry

// resolvePasses is the ordered lookup cascade: exact/alias equality, then
// normalized-name equality, then fuzzy substring containment. The first pass
// to produce a hit wins; list order breaks ties within a pass.
var resolvePasses = []resolvePass{
	exactPass,
	normalizedPass,
	fuzzyPass,
}

// Resolve looks up a test name in the benchmark list. Returns nil when no
// pass matches.
func Resolve(name string, entries []Entry) *Entry {
	for _, pass := range resolvePasses {
		if entry := pass(name, entries); entry != nil {
			return entry
		}
	}
	return nil
}

// exactPass matches on case-insensitive equality with an entry's name or any
// of its aliases.
func exactPass(name string, entries []Entry) *Entry {
	lowered := strings.ToLower(strings.TrimSpace(name))
	for i := range entries {
		if strings.ToLower(entries[i].TestName) == lowered {
			return &entries[i]
		}
		for _, alias := range entries[i].Aliases {
			if strings.ToLower(alias) == lowered {
				return &entries[i]
			}
		}
	}
	return nil
}

// normalizedPass matches on equality after name normalization, which strips
// punctuation, casing, and a leading "total" token from both sides.
func normalizedPass(name string, entries []Entry) *Entry {
	normalized := report.NormalizeName(name)
	for i := range entries {
		if report.NormalizeName(entries[i].TestName) == normalized {
			return &entries[i]
		}
		for _, alias := range entries[i].Aliases {
			if report.NormalizeName(alias) == normalized {
				return &entries[i]
			}
		}
	}
	return nil
}

// fuzzyPass matches when either normalized name is a substring of the other.
// Containment is also checked with spaces removed, so abbreviation/expansion
// pairs like "RBC Count" and "Total R.B.C. Count" (which normalizes to
// "r b c count") still meet.
func fuzzyPass(name string, entries []Entry) *Entry {
	normalized := report.NormalizeName(name)
	if normalized == "" {
		return nil
	}
	for i := range entries {
		if fuzzyContains(report.NormalizeName(entries[i].TestName), normalized) {
			return &entries[i]
		}
		for _, alias := range entries[i].Aliases {
			if fuzzyContains(report.NormalizeName(alias), normalized) {
				return &entries[i]
			}
		}
	}
	return nil
}

// fuzzyContains reports whether either string contains the other, in spaced
// or space-compacted form. Empty strings never match.
func fuzzyContains(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	compactA := strings.ReplaceAll(a, " ", "")
	compactB := strings.ReplaceAll(b, " ", "")
	return strings.Contains(compactA, compactB) || strings.Contains(compactB, compactA)
}
