package report

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple_lowercase", "Hemoglobin", "hemoglobin"},
		{"dotted_abbreviation", "Total R.B.C. Count", "r b c count"},
		{"hyphenated", "HDL-Cholesterol", "hdl cholesterol"},
		{"slash_separated", "SGPT/ALT", "sgpt alt"},
		{"parenthesized", "Vitamin D (25-OH)", "vitamin d 25 oh"},
		{"total_prefix_stripped", "Total Cholesterol", "cholesterol"},
		{"surrounding_whitespace", "  WBC Count  ", "wbc count"},
		{"internal_whitespace_collapsed", "MCV   Value", "mcv value"},
		{"empty", "", ""},
		{"punctuation_only", "...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeName(tt.input); got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeNameIdempotent(t *testing.T) {
	inputs := []string{
		"Total R.B.C. Count",
		"Hemoglobin",
		"total total count",
		"  HDL-Cholesterol  ",
		"",
		"!!??..--",
	}
	for _, input := range inputs {
		once := NormalizeName(input)
		twice := NormalizeName(once)
		if once != twice {
			t.Errorf("NormalizeName not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func FuzzNormalizeName(f *testing.F) {
	seeds := []string{
		"Total R.B.C. Count",
		"Hemoglobin",
		"HDL-Cholesterol",
		"",
		"total ",
		"a.b,c/d(e)f-g_h",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		once := NormalizeName(input)
		twice := NormalizeName(once)
		if once != twice {
			t.Errorf("NormalizeName not idempotent for %q: first %q, second %q", input, once, twice)
		}
	})
}
