package table

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestInterpolateRowCountProperty(t *testing.T) {
	cases := []struct {
		rows  int
		steps int
	}{
		{2, 1},
		{2, 10},
		{3, 10},
		{5, 3},
		{12, 7},
	}
	for _, tc := range cases {
		values := make([]float64, tc.rows)
		for i := range values {
			values[i] = float64(i)
		}
		tbl, _ := New(RangeIndex(tc.rows), []Column{{Name: "v", Floats: values}})
		out, err := Interpolate(tbl, tc.steps, false)
		if err != nil {
			t.Fatalf("Interpolate(%d rows, %d steps): %v", tc.rows, tc.steps, err)
		}
		want := (tc.rows-1)*tc.steps + 1
		if out.NumRows() != want {
			t.Errorf("rows=%d steps=%d: got %d dense rows, want %d", tc.rows, tc.steps, out.NumRows(), want)
		}
	}
}

func TestInterpolateOneStepIsNoOp(t *testing.T) {
	tbl, _ := New(RangeIndex(4), []Column{{Name: "v", Floats: []float64{1, 4, 9, 16}}})
	out, err := Interpolate(tbl, 1, false)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	if out.NumRows() != 4 {
		t.Fatalf("steps=1 changed row count: %d", out.NumRows())
	}
	for i, v := range out.Column("v").Floats {
		if !almostEqual(v, tbl.Column("v").Floats[i]) {
			t.Errorf("row %d changed: %v", i, v)
		}
	}
}

func TestInterpolateForwardFillsIndex(t *testing.T) {
	// 3 rows, values [1,2,3], steps 10, no period interpolation:
	// 21 dense rows, linear data, index forward-filled in 10-row blocks.
	tbl, _ := New(NumericIndex([]float64{0, 1, 2}), []Column{
		{Name: "v", Floats: []float64{1, 2, 3}},
	})
	out, err := Interpolate(tbl, 10, false)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	if out.NumRows() != 21 {
		t.Fatalf("dense rows = %d, want 21", out.NumRows())
	}

	v := out.Column("v").Floats
	for j := 0; j < 21; j++ {
		if want := 1 + float64(j)/10; !almostEqual(v[j], want) {
			t.Errorf("value[%d] = %v, want %v", j, v[j], want)
		}
	}

	ix := out.Index.Nums
	for j := 0; j < 21; j++ {
		want := float64(j / 10)
		if j == 20 {
			want = 2
		}
		if ix[j] != want {
			t.Errorf("index[%d] = %v, want %v", j, ix[j], want)
		}
	}
}

func TestInterpolateNumericIndexLinear(t *testing.T) {
	tbl, _ := New(NumericIndex([]float64{0, 10}), []Column{
		{Name: "v", Floats: []float64{0, 1}},
	})
	out, err := Interpolate(tbl, 4, true)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	want := []float64{0, 2.5, 5, 7.5, 10}
	for j, w := range want {
		if !almostEqual(out.Index.Nums[j], w) {
			t.Errorf("index[%d] = %v, want %v", j, out.Index.Nums[j], w)
		}
	}
}

func TestInterpolateEvenDateRange(t *testing.T) {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	// Unevenly spaced source timestamps still produce uniform steps.
	tbl, _ := New(TimeIndex([]time.Time{
		base,
		base.AddDate(0, 0, 1),
		base.AddDate(0, 0, 3),
	}), []Column{{Name: "v", Floats: []float64{0, 1, 3}}})

	out, err := Interpolate(tbl, 2, true)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	if out.NumRows() != 5 {
		t.Fatalf("dense rows = %d, want 5", out.NumRows())
	}
	step := 18 * time.Hour // 3 days over 4 gaps
	for j := 0; j < 5; j++ {
		want := base.Add(time.Duration(j) * step)
		if !out.Index.Times[j].Equal(want) {
			t.Errorf("time[%d] = %v, want %v", j, out.Index.Times[j], want)
		}
	}
}

func TestInterpolateTimeIndexForwardFill(t *testing.T) {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	tbl, _ := New(TimeIndex([]time.Time{base, base.AddDate(0, 0, 1)}), []Column{
		{Name: "v", Floats: []float64{0, 1}},
	})
	out, err := Interpolate(tbl, 3, false)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	for j := 0; j < 3; j++ {
		if !out.Index.Times[j].Equal(base) {
			t.Errorf("time[%d] = %v, want first period held", j, out.Index.Times[j])
		}
	}
	if !out.Index.Times[3].Equal(base.AddDate(0, 0, 1)) {
		t.Errorf("time[3] = %v, want second period", out.Index.Times[3])
	}
}

func TestInterpolateMissingValues(t *testing.T) {
	tbl, _ := New(RangeIndex(3), []Column{
		{Name: "lead", Floats: []float64{math.NaN(), 2, 4}},
		{Name: "gap", Floats: []float64{0, math.NaN(), 4}},
	})
	out, err := Interpolate(tbl, 2, false)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}

	lead := out.Column("lead").Floats
	if !math.IsNaN(lead[0]) || !math.IsNaN(lead[1]) {
		t.Errorf("leading gap should stay missing, got %v", lead[:2])
	}
	if !almostEqual(lead[3], 3) {
		t.Errorf("lead[3] = %v, want 3", lead[3])
	}

	// Interior missing observation interpolates across the whole gap.
	gap := out.Column("gap").Floats
	for j, want := range []float64{0, 1, 2, 3, 4} {
		if !almostEqual(gap[j], want) {
			t.Errorf("gap[%d] = %v, want %v", j, gap[j], want)
		}
	}
}

func TestInterpolateRejectsBadSteps(t *testing.T) {
	tbl, _ := New(RangeIndex(2), []Column{{Name: "v", Floats: []float64{0, 1}}})
	if _, err := Interpolate(tbl, 0, false); err == nil {
		t.Error("expected error for steps_per_period = 0")
	}
}
