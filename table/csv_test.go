package table

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestLoadCSVDateIndex(t *testing.T) {
	csv := strings.Join([]string{
		"date,india,china,note",
		"2020-01-01,100,200,a",
		"2020-01-02,110,,b",
		"2020-01-03,120,220,c",
	}, "\n")

	tbl, err := LoadCSVFromReader(strings.NewReader(csv), nil)
	if err != nil {
		t.Fatalf("LoadCSVFromReader: %v", err)
	}
	if !tbl.Index.IsTime() {
		t.Fatal("expected a time-valued index")
	}
	if want := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC); !tbl.Index.Times[1].Equal(want) {
		t.Errorf("index[1] = %v, want %v", tbl.Index.Times[1], want)
	}

	cols, err := tbl.NumericColumns()
	if err != nil {
		t.Fatalf("NumericColumns: %v", err)
	}
	if len(cols) != 2 || cols[0] != "india" || cols[1] != "china" {
		t.Errorf("numeric columns = %v", cols)
	}
	if china := tbl.Column("china").Floats; !math.IsNaN(china[1]) {
		t.Errorf("empty cell should be missing, got %v", china[1])
	}
	if note := tbl.Column("note"); note.IsNumeric() {
		t.Error("note column should be a string column")
	}
}

func TestLoadCSVNumericIndexNoHeader(t *testing.T) {
	csv := "0,5\n1,6\n2,7\n"
	opts := DefaultCSVOptions()
	opts.HasHeader = false

	tbl, err := LoadCSVFromReader(strings.NewReader(csv), opts)
	if err != nil {
		t.Fatalf("LoadCSVFromReader: %v", err)
	}
	if tbl.Index.IsTime() {
		t.Fatal("expected a numeric index")
	}
	if tbl.NumRows() != 3 || tbl.Index.Nums[2] != 2 {
		t.Errorf("index = %v", tbl.Index.Nums)
	}
	if got := tbl.Columns[0].Floats; got[0] != 5 || got[2] != 7 {
		t.Errorf("column = %v", got)
	}
}

func TestLoadCSVRejectsNarrowTable(t *testing.T) {
	if _, err := LoadCSVFromReader(strings.NewReader("just_one\n1\n"), nil); err == nil {
		t.Error("expected error for a table without data columns")
	}
}
