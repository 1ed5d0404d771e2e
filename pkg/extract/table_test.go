package extract

import (
	"testing"

	"github.com/coolbeans/labreport/pkg/report"
)

func TestTablesBasic(t *testing.T) {
	tables := []Table{{
		{"Test", "Result", "Unit", "Range"},
		{"Hemoglobin", "10.2", "g/dL", "12.0 - 17.5"},
	}}

	got := Tables(tables)
	want := report.Measurement{
		TestName: "Hemoglobin", Value: 10.2, Unit: "g/dL", RefRangeText: "12.0 - 17.5",
	}

	if len(got) != 1 {
		t.Fatalf("Tables() returned %d measurements, want 1: %+v", len(got), got)
	}
	if got[0] != want {
		t.Errorf("Tables()[0] = %+v, want %+v", got[0], want)
	}
}

func TestTablesHeaderDetection(t *testing.T) {
	t.Run("header_below_banner_rows", func(t *testing.T) {
		tables := []Table{{
			{"ACME Diagnostics", "", "", ""},
			{"Investigation", "Observed Value", "Unit", "Reference Range"},
			{"Serum Creatinine", "1.4", "mg/dL", "0.7 - 1.3"},
		}}

		got := Tables(tables)
		if len(got) != 1 {
			t.Fatalf("Tables() returned %d measurements, want 1: %+v", len(got), got)
		}
		if got[0].TestName != "Serum Creatinine" || got[0].Value != 1.4 {
			t.Errorf("got %+v, want Serum Creatinine 1.4", got[0])
		}
	})

	t.Run("no_header_keywords_defaults_to_row_zero", func(t *testing.T) {
		tables := []Table{{
			{"Hemoglobin", "10.2", "g/dL", "12.0 - 17.5"},
			{"Platelet Count", "250", "thou/uL", "150 - 450"},
		}}

		// Row 0 is consumed as the header, so only row 1 yields data.
		got := Tables(tables)
		if len(got) != 1 {
			t.Fatalf("Tables() returned %d measurements, want 1: %+v", len(got), got)
		}
		if got[0].TestName != "Platelet Count" {
			t.Errorf("got %+v, want Platelet Count", got[0])
		}
	})

	t.Run("reordered_columns", func(t *testing.T) {
		tables := []Table{{
			{"Reference Range", "Result", "Test Name", "Unit"},
			{"12.0 - 17.5", "10.2", "Hemoglobin", "g/dL"},
		}}

		got := Tables(tables)
		if len(got) != 1 {
			t.Fatalf("Tables() returned %d measurements, want 1: %+v", len(got), got)
		}
		want := report.Measurement{
			TestName: "Hemoglobin", Value: 10.2, Unit: "g/dL", RefRangeText: "12.0 - 17.5",
		}
		if got[0] != want {
			t.Errorf("got %+v, want %+v", got[0], want)
		}
	})
}

func TestTablesMalformedRows(t *testing.T) {
	tables := []Table{{
		{"Test", "Result", "Unit", "Range"},
		{"Hemoglobin"},                           // short row: value column missing
		{"X", "10.2", "g/dL", "12.0 - 17.5"},     // name too short
		{"WBC Count", "pending", "cells/uL", ""}, // non-numeric value
		{},                                       // empty row
		{"Platelet Count", "250", "thou/uL", "150 - 450"},
	}}

	got := Tables(tables)
	if len(got) != 1 {
		t.Fatalf("Tables() returned %d measurements, want 1: %+v", len(got), got)
	}
	if got[0].TestName != "Platelet Count" {
		t.Errorf("got %+v, want Platelet Count", got[0])
	}
}

func TestTablesSkipsStoplistedNames(t *testing.T) {
	tables := []Table{{
		{"Test", "Result", "Unit", "Range"},
		{"Normal", "10.2", "g/dL", "12.0 - 17.5"},
		{"Hemoglobin", "10.2", "g/dL", "12.0 - 17.5"},
	}}

	got := Tables(tables)
	if len(got) != 1 || got[0].TestName != "Hemoglobin" {
		t.Errorf("Tables() = %+v, want only Hemoglobin", got)
	}
}

func TestTablesTooSmallAndDeduplication(t *testing.T) {
	tables := []Table{
		{{"Test", "Result", "Unit", "Range"}}, // single row, ignored
		{
			{"Test", "Result", "Unit", "Range"},
			{"Hemoglobin", "10.2", "g/dL", "12.0 - 17.5"},
		},
		{
			{"Test", "Result", "Unit", "Range"},
			{"Hemoglobin", "11.0", "g/dL", "12.0 - 17.5"}, // duplicate across tables
			{"MCV", "88.5", "fL", "80 - 100"},
		},
	}

	got := Tables(tables)
	if len(got) != 2 {
		t.Fatalf("Tables() returned %d measurements, want 2: %+v", len(got), got)
	}
	if got[0].TestName != "Hemoglobin" || got[0].Value != 10.2 {
		t.Errorf("got[0] = %+v, want first Hemoglobin occurrence", got[0])
	}
	if got[1].TestName != "MCV" {
		t.Errorf("got[1] = %+v, want MCV", got[1])
	}
}

func TestDocumentExtractUnion(t *testing.T) {
	doc := Document{
		Tables: []Table{{
			{"Test", "Result", "Unit", "Range"},
			{"Hemoglobin", "10.2", "g/dL", "12.0 - 17.5"},
		}},
		Lines: []string{
			"Hemoglobin  11.0  g/dL  12.0 - 17.5", // duplicate: table wins
			"Triglycerides  210  mg/dL  < 150",    // gap: filled from text
		},
	}

	got := doc.Extract()
	if len(got) != 2 {
		t.Fatalf("Extract() returned %d measurements, want 2: %+v", len(got), got)
	}
	if got[0].TestName != "Hemoglobin" || got[0].Value != 10.2 {
		t.Errorf("got[0] = %+v, want table Hemoglobin 10.2", got[0])
	}
	if got[1].TestName != "Triglycerides" {
		t.Errorf("got[1] = %+v, want Triglycerides from text", got[1])
	}
}
