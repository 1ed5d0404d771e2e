package summary

import (
	"strings"
	"testing"

	"github.com/coolbeans/labreport/pkg/report"
)

func boundPtr(v float64) *float64 { return &v }

func sampleResults() []report.Enriched {
	return []report.Enriched{
		{
			TestName: "Hemoglobin", Value: 10.2, Unit: "g/dL",
			Status:        report.StatusLow,
			Benchmark:     "Hemoglobin",
			BenchmarkLow:  boundPtr(13.0),
			BenchmarkHigh: boundPtr(17.0),
			Category:      "Complete Blood Count",
			Description:   "Oxygen-carrying protein in red blood cells.",
		},
		{
			TestName: "Platelet Count", Value: 250, Unit: "thou/uL",
			Status:        report.StatusNormal,
			Benchmark:     "Platelet Count",
			BenchmarkLow:  boundPtr(150),
			BenchmarkHigh: boundPtr(450),
			Category:      "Complete Blood Count",
		},
		{
			TestName: "Triglycerides", Value: 210, Unit: "mg/dL",
			Status:        report.StatusHigh,
			Benchmark:     "Triglycerides",
			BenchmarkHigh: boundPtr(150),
			Category:      "Lipid Profile",
		},
		{
			TestName: "Serum Widget", Value: 5, Unit: "mg/L",
			Status:       report.StatusNormal,
			RefRangeText: "1 - 10",
			Category:     "Uncategorized",
		},
	}
}

func TestPatientSummary(t *testing.T) {
	text := Patient(sampleResults())

	for _, want := range []string{
		"# Your Lab Report Summary",
		"**4 tests**",
		"**2 test(s)** are within normal range",
		"**2 test(s)** are outside the normal range",
		"### Hemoglobin: 10.2 g/dL (Below Range)",
		"**Normal range:** 13 - 17 g/dL",
		"lower than the typical range",
		"Oxygen-carrying protein",
		"### Triglycerides: 210 mg/dL (Above Range)",
		"**Disclaimer:**",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("patient summary missing %q\n%s", want, text)
		}
	}
}

func TestPatientSummaryAllNormal(t *testing.T) {
	results := []report.Enriched{
		{TestName: "Hemoglobin", Value: 14, Status: report.StatusNormal},
	}
	text := Patient(results)
	if !strings.Contains(text, "Great news!") {
		t.Errorf("all-normal summary missing good-news line\n%s", text)
	}
	if strings.Contains(text, "outside the normal range") {
		t.Errorf("all-normal summary mentions abnormal results\n%s", text)
	}
}

func TestClinicalSummary(t *testing.T) {
	text := Clinical(sampleResults())

	for _, want := range []string{
		"# Clinical Lab Report Summary",
		"**Parameters:** 4 | **Normal:** 2 | **Low:** 1 | **High:** 1",
		"## Complete Blood Count",
		"## Lipid Profile",
		"## Uncategorized",
		"| Parameter | Result | Unit | Reference | Status |",
		"| Hemoglobin | 10.2 | g/dL | 13 - 17 | LOW |",
		"| Triglycerides | 210 | mg/dL | < 150 | HIGH |",
		"| Serum Widget | 5 | mg/L | 1 - 10 | NORMAL |",
		"## Abnormal Findings",
		"- **Hemoglobin**: LOW",
		"Clinical correlation advised",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("clinical summary missing %q\n%s", want, text)
		}
	}
}

func TestClinicalSummaryGroupsByCategoryOnce(t *testing.T) {
	text := Clinical(sampleResults())
	if strings.Count(text, "## Complete Blood Count") != 1 {
		t.Errorf("category header repeated\n%s", text)
	}
}
