package chart

import (
	"image/color"
	"math"
	"strconv"

	"github.com/ayushsubedi/chartrace/table"
)

var (
	gridColor     = color.RGBA{255, 255, 255, 255}
	axesFaceColor = color.RGBA{229, 229, 229, 255}
	labelColor    = color.RGBA{40, 40, 40, 255}
)

// BarRace draws one vertical bar per series for the current frame, bars
// racing up and down as the interpolated values change.
type BarRace struct {
	// BarGap is the fraction of each slot left empty, 0..1.
	BarGap float64
}

func (b *BarRace) Name() string { return "BarRace" }

func (b *BarRace) Draw(s *Surface, f FrameData) error {
	dc := s.Context()
	x0, y0, w, h := s.AxesPx()
	gap := b.BarGap
	if gap <= 0 || gap >= 1 {
		gap = 0.2
	}

	s.FillAxes(axesFaceColor)
	drawValueGrid(s, f, 4)

	slot := w / float64(len(f.Cols))
	barW := slot * (1 - gap)
	baseline := valueToY(math.Max(0, f.Y.Min), f.Y, y0, h)

	s.SetFontSize(f.TickLabelSize)
	for ci, name := range f.Cols {
		col := f.Table.Column(name)
		v := col.Floats[f.Frame]

		barX := x0 + float64(ci)*slot + slot*gap/2
		if !math.IsNaN(v) {
			top := valueToY(v, f.Y, y0, h)
			dc.SetColor(f.Colors[ci%len(f.Colors)])
			if top <= baseline {
				dc.DrawRectangle(barX, top, barW, baseline-top)
			} else {
				dc.DrawRectangle(barX, baseline, barW, top-baseline)
			}
			dc.Fill()

			// Value label centered over the bar tip.
			dc.SetColor(labelColor)
			valueText := formatValue(v)
			dc.DrawStringAnchored(valueText, barX+barW/2, top-6, 0.5, 0)
		}

		// Series name under the slot.
		dc.SetColor(labelColor)
		dc.DrawStringAnchored(name, barX+barW/2, y0+h+14, 0.5, 0)
	}
	return nil
}

// drawValueGrid paints n horizontal grid lines across the axes with their
// value labels on the left.
func drawValueGrid(s *Surface, f FrameData, n int) {
	dc := s.Context()
	x0, y0, w, h := s.AxesPx()

	s.SetFontSize(f.TickLabelSize)
	dc.SetLineWidth(1)
	for i := 0; i <= n; i++ {
		v := f.Y.Min + (f.Y.Max-f.Y.Min)*float64(i)/float64(n)
		y := valueToY(v, f.Y, y0, h)
		dc.SetColor(gridColor)
		dc.DrawLine(x0, y, x0+w, y)
		dc.Stroke()
		dc.SetColor(labelColor)
		dc.DrawStringAnchored(formatValue(v), x0-6, y, 1, 0.35)
	}
}

func formatValue(v float64) string {
	av := math.Abs(v)
	switch {
	case av >= 1e9:
		return strconv.FormatFloat(v/1e9, 'f', 1, 64) + "B"
	case av >= 1e6:
		return strconv.FormatFloat(v/1e6, 'f', 1, 64) + "M"
	case av >= 1e4:
		return strconv.FormatFloat(v/1e3, 'f', 1, 64) + "k"
	case av >= 10 || v == math.Trunc(v):
		return strconv.FormatFloat(v, 'f', 0, 64)
	default:
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
}

// maxValueLabel formats the largest value in the table the way the axis
// will label it; layout measurement uses it as the widest x tick sample.
func maxValueLabel(t *table.Table) string {
	_, max := t.MinMax()
	if math.IsNaN(max) {
		return "0"
	}
	return formatValue(max)
}
