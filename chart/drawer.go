package chart

import (
	"image/color"

	"github.com/ayushsubedi/chartrace/table"
)

// FrameData is everything a chart drawer needs to render one frame: the
// full interpolated table, the frame row, the resolved series colors and
// the axis bounds the scaler computed for this frame.
type FrameData struct {
	Table         *table.Table
	Frame         int
	Cols          []string
	Colors        []color.RGBA
	X, Y          Bounds
	TickLabelSize float64
}

// Drawer renders the chart-type-specific content of one frame onto the
// surface. The driver has already cleared the surface and computed bounds;
// the drawer must not touch annotation or encoding state.
type Drawer interface {
	Name() string
	Draw(s *Surface, f FrameData) error
}

// valueToY maps a data value into pixel space inside the axes rectangle
// (top-left origin, so larger values sit higher).
func valueToY(v float64, b Bounds, y0, h float64) float64 {
	span := b.Max - b.Min
	if span == 0 {
		return y0 + h
	}
	return y0 + h - (v-b.Min)/span*h
}

// indexToX maps an index value (unix seconds for time indexes) into pixel
// space inside the axes rectangle.
func indexToX(v float64, b Bounds, x0, w float64) float64 {
	span := b.Max - b.Min
	if span == 0 {
		return x0
	}
	return x0 + (v-b.Min)/span*w
}
