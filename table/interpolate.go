package table

import (
	"fmt"
	"math"
	"time"
)

// Interpolate expands t into the dense animation timeline: row i of the
// source lands on dense row i*stepsPerPeriod and the gaps in between are
// filled so every dense row can be rendered as one frame.
//
// The index column is filled first. With interpolatePeriod set, a
// time-valued index is replaced by an evenly spaced date range from first
// to last observation (uniform time steps, not proportional interpolation
// between unevenly spaced source timestamps) and a numeric index is
// linearly interpolated. Without it the last known index value is carried
// forward, so the period label holds still between real periods.
//
// Data columns are then linearly interpolated across the dense range:
// time-aware against the filled index when the source index was
// time-valued and interpolatePeriod is set, positional otherwise. Interior
// missing observations interpolate across, leading ones stay missing and
// trailing ones carry the last valid value. String columns are not
// interpolated; their gap rows stay empty.
//
// The result has (rows-1)*stepsPerPeriod + 1 rows; stepsPerPeriod of 1
// leaves the row count unchanged.
func Interpolate(t *Table, stepsPerPeriod int, interpolatePeriod bool) (*Table, error) {
	if stepsPerPeriod < 1 {
		return nil, fmt.Errorf("steps_per_period must be a positive integer, got %d", stepsPerPeriod)
	}
	n := t.NumRows()
	if n == 0 {
		return nil, fmt.Errorf("cannot interpolate an empty table")
	}

	dense := (n-1)*stepsPerPeriod + 1

	index, err := fillIndex(t.Index, stepsPerPeriod, dense, interpolatePeriod)
	if err != nil {
		return nil, err
	}

	// x positions the data interpolation runs against.
	x := make([]float64, dense)
	timeAware := t.Index.IsTime() && interpolatePeriod
	for j := range x {
		if timeAware {
			x[j] = timeToFloat(index.Times[j])
		} else {
			x[j] = float64(j)
		}
	}

	columns := make([]Column, len(t.Columns))
	for ci, c := range t.Columns {
		columns[ci] = Column{Name: c.Name}
		if c.IsNumeric() {
			y := make([]float64, dense)
			for j := range y {
				y[j] = math.NaN()
			}
			for i, v := range c.Floats {
				y[i*stepsPerPeriod] = v
			}
			linearFill(x, y)
			columns[ci].Floats = y
		} else {
			labels := make([]string, dense)
			for i, s := range c.Labels {
				labels[i*stepsPerPeriod] = s
			}
			columns[ci].Labels = labels
		}
	}

	return &Table{Index: index, Columns: columns}, nil
}

func fillIndex(ix Index, steps, dense int, interpolatePeriod bool) (Index, error) {
	if ix.IsTime() {
		times := make([]time.Time, dense)
		switch {
		case interpolatePeriod && dense > 1:
			first, last := ix.Times[0], ix.Times[len(ix.Times)-1]
			span := last.Sub(first)
			for j := range times {
				frac := float64(j) / float64(dense-1)
				times[j] = first.Add(time.Duration(frac * float64(span)))
			}
		case interpolatePeriod:
			times[0] = ix.Times[0]
		default:
			for j := range times {
				times[j] = ix.Times[j/steps]
			}
		}
		return Index{Times: times}, nil
	}

	nums := make([]float64, dense)
	if interpolatePeriod {
		for j := range nums {
			nums[j] = math.NaN()
		}
		for i, v := range ix.Nums {
			nums[i*steps] = v
		}
		x := make([]float64, dense)
		for j := range x {
			x[j] = float64(j)
		}
		linearFill(x, nums)
	} else {
		for j := range nums {
			nums[j] = ix.Nums[j/steps]
		}
	}
	return Index{Nums: nums}, nil
}

// linearFill interpolates the NaN runs of y in place against positions x.
// Values between two known points are linear in x, values after the last
// known point repeat it, values before the first stay NaN.
func linearFill(x, y []float64) {
	prev := -1
	for j, v := range y {
		if math.IsNaN(v) {
			continue
		}
		if prev >= 0 && j-prev > 1 {
			dx := x[j] - x[prev]
			for k := prev + 1; k < j; k++ {
				if dx == 0 {
					y[k] = y[prev]
					continue
				}
				y[k] = y[prev] + (y[j]-y[prev])*(x[k]-x[prev])/dx
			}
		}
		prev = j
	}
	if prev >= 0 {
		for k := prev + 1; k < len(y); k++ {
			y[k] = y[prev]
		}
	}
}
