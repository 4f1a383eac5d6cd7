package chart

import (
	"math"

	"github.com/ayushsubedi/chartrace/table"
)

// Axis scaling: per-frame (or fixed) x/y bounds with a small padding margin
// so the first frame never collapses to a zero-width range.

const (
	// timePad avoids a degenerate x range on the first frame of a
	// time-valued index: one second past the last visible timestamp.
	timePad = 1.0
	// numPad is the numeric-index counterpart.
	numPad = 1e-6
)

// Bounds is a (min, max) pair for one axis. Time-valued axes are expressed
// in unix seconds.
type Bounds struct {
	Min, Max float64
}

// XBounds spans the index up to frame i, or the whole index when fixed.
// The end is always padded to keep the range non-degenerate.
func XBounds(full *table.Table, i int, fixed bool) Bounds {
	pad := numPad
	if full.Index.IsTime() {
		pad = timePad
	}

	view := full
	if !fixed {
		view = full.Head(i + 1)
	}
	first, last := view.IndexSpan()
	return Bounds{Min: first, Max: last + pad}
}

// YBounds returns the value-axis bounds for frame i. The 5% padding is
// always derived from the whole table's span (not the truncated view) so
// the visual margin stays constant while the data range grows; only the
// min/max themselves follow the frame when not fixed. Padding is dropped
// on the bottom when the data never goes negative, and on the top when it
// never goes positive.
func YBounds(full *table.Table, i int, fixed bool) Bounds {
	gmin, gmax := full.MinMax()
	pad := (gmax - gmin) * 0.05
	botPad, topPad := pad, pad
	if gmin >= 0 {
		botPad = 0
	}
	if gmax <= 0 {
		topPad = 0
	}

	min, max := gmin, gmax
	if !fixed {
		min, max = full.Head(i + 1).MinMax()
		if math.IsNaN(min) || math.IsNaN(max) {
			min, max = gmin, gmax
		}
	}
	return Bounds{Min: min - botPad, Max: max + topPad}
}
