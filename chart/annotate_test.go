package chart

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/ayushsubedi/chartrace/table"
)

func annotatorTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New(table.NumericIndex([]float64{2000, 2001, 2002, 2003}), []table.Column{
		{Name: "a", Floats: []float64{1, 2, 3, 4}},
	})
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	return tbl
}

func TestAnnotatorCreatesAtMostTwoHandles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PeriodSummaryFunc = func(row map[string]float64) map[string]any {
		return map[string]any{"x": 0.1, "y": 0.9, "s": "total"}
	}
	a := NewPeriodAnnotator(&cfg)

	tbl := annotatorTable(t)
	for i := 0; i < 4; i++ {
		for range [25]struct{}{} {
			if err := a.Update(tbl, i); err != nil {
				t.Fatalf("Update(%d): %v", i, err)
			}
		}
	}
	if n := len(a.Texts()); n > 2 {
		t.Errorf("text handles grew to %d, want at most 2", n)
	}
}

func TestAnnotatorMutatesSameHandle(t *testing.T) {
	cfg := DefaultConfig()
	a := NewPeriodAnnotator(&cfg)
	tbl := annotatorTable(t)

	if err := a.Update(tbl, 0); err != nil {
		t.Fatalf("Update: %v", err)
	}
	first := a.Texts()[0]
	if first.Text != "2000" {
		t.Errorf("first label = %q", first.Text)
	}

	if err := a.Update(tbl, 3); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := a.Texts()[0]; got != first {
		t.Error("period handle was re-created instead of updated")
	} else if got.Text != "2003" {
		t.Errorf("updated label = %q", got.Text)
	}
}

func TestAnnotatorDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PeriodLabel = false
	a := NewPeriodAnnotator(&cfg)
	if err := a.Update(annotatorTable(t), 0); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(a.Texts()) != 0 {
		t.Errorf("disabled annotator produced %d handles", len(a.Texts()))
	}
}

func TestAnnotatorPeriodFmt(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PeriodFmt = "Year {x}"
	a := NewPeriodAnnotator(&cfg)
	tbl := annotatorTable(t)
	if err := a.Update(tbl, 1); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := a.Texts()[0].Text; got != "Year 2001" {
		t.Errorf("formatted label = %q", got)
	}
}

func TestAnnotatorLiteralPeriodFmt(t *testing.T) {
	// A format string without a placeholder is literal text, not a
	// request to fall back to the raw index value.
	cfg := DefaultConfig()
	cfg.PeriodFmt = "Year"
	a := NewPeriodAnnotator(&cfg)
	if err := a.Update(annotatorTable(t), 2); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := a.Texts()[0].Text; got != "Year" {
		t.Errorf("literal label = %q, want %q", got, "Year")
	}
}

func TestAnnotatorTimeFmt(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PeriodFmt = "Jan 2006"
	a := NewPeriodAnnotator(&cfg)

	tbl, _ := table.New(table.TimeIndex([]time.Time{
		time.Date(2019, 7, 1, 0, 0, 0, 0, time.UTC),
	}), []table.Column{{Name: "a", Floats: []float64{1}}})

	if err := a.Update(tbl, 0); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := a.Texts()[0].Text; got != "Jul 2019" {
		t.Errorf("formatted label = %q", got)
	}
}

func summaryMissingY(row map[string]float64) map[string]any {
	return map[string]any{"x": 0.5, "s": "oops"}
}

func TestSummaryFuncMissingKeyNamesFunction(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PeriodSummaryFunc = summaryMissingY
	a := NewPeriodAnnotator(&cfg)

	err := a.Update(annotatorTable(t), 0)
	if err == nil {
		t.Fatal("expected validation error for missing \"y\"")
	}
	if !strings.Contains(err.Error(), "summaryMissingY") {
		t.Errorf("error should name the offending function, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), `"x", "y", and "s"`) {
		t.Errorf("error should list the required keys, got %q", err.Error())
	}
}

func TestConfigRequiresBothLabelCoordinates(t *testing.T) {
	cfg := DefaultConfig()
	spec := NewTextSpec()
	spec.X = 0.5 // y left unset
	cfg.PeriodLabelSpec = &spec
	if err := cfg.validate(); err == nil {
		t.Error("expected validation error when only x is set")
	}

	spec.Y = 0.5
	if err := cfg.validate(); err != nil {
		t.Errorf("both coordinates set should validate, got %v", err)
	}

	both := NewTextSpec()
	if math.IsNaN(both.X) != math.IsNaN(both.Y) {
		t.Error("NewTextSpec should leave both coordinates unset")
	}
}

func TestAnnotatorResetDropsHandles(t *testing.T) {
	cfg := DefaultConfig()
	a := NewPeriodAnnotator(&cfg)
	if err := a.Update(annotatorTable(t), 0); err != nil {
		t.Fatalf("Update: %v", err)
	}
	a.Reset()
	if len(a.Texts()) != 0 {
		t.Error("Reset left stale handles behind")
	}
}
