package chart

import (
	"math"
	"time"

	"github.com/ayushsubedi/chartrace/table"
)

// LineRace draws every series as a line growing along the index as frames
// advance, with a dot and the series name at the moving tip.
type LineRace struct {
	LineWidth float64
}

func (l *LineRace) Name() string { return "LineRace" }

func (l *LineRace) Draw(s *Surface, f FrameData) error {
	dc := s.Context()
	x0, y0, w, h := s.AxesPx()
	lw := l.LineWidth
	if lw <= 0 {
		lw = 2
	}

	s.FillAxes(axesFaceColor)
	drawValueGrid(s, f, 4)
	drawIndexTicks(s, f, 5)

	xs := indexFloats(f.Table, f.Frame+1)

	s.SetFontSize(f.TickLabelSize)
	for ci, name := range f.Cols {
		col := f.Table.Column(name)
		dc.SetColor(f.Colors[ci%len(f.Colors)])
		dc.SetLineWidth(lw)

		started := false
		var tipX, tipY float64
		hasTip := false
		for i := 0; i <= f.Frame; i++ {
			v := col.Floats[i]
			if math.IsNaN(v) {
				started = false
				continue
			}
			px := indexToX(xs[i], f.X, x0, w)
			py := valueToY(v, f.Y, y0, h)
			if started {
				dc.LineTo(px, py)
			} else {
				dc.MoveTo(px, py)
				started = true
			}
			tipX, tipY, hasTip = px, py, true
		}
		dc.Stroke()

		if hasTip {
			dc.DrawCircle(tipX, tipY, lw+1)
			dc.Fill()
			dc.DrawStringAnchored(name, tipX+6, tipY, 0, 0.35)
		}
	}
	return nil
}

// drawIndexTicks labels n positions along the visible index span.
func drawIndexTicks(s *Surface, f FrameData, n int) {
	dc := s.Context()
	x0, y0, w, h := s.AxesPx()

	s.SetFontSize(f.TickLabelSize)
	dc.SetColor(labelColor)
	for i := 0; i <= n; i++ {
		v := f.X.Min + (f.X.Max-f.X.Min)*float64(i)/float64(n)
		px := indexToX(v, f.X, x0, w)
		dc.DrawStringAnchored(indexTickLabel(f.Table, v), px, y0+h+14, 0.5, 0)
	}
}

func indexTickLabel(t *table.Table, v float64) string {
	if t.Index.IsTime() {
		return time.Unix(0, int64(v*float64(time.Second))).UTC().Format("2006-01-02")
	}
	return formatValue(v)
}

// indexFloats converts the first n index values to the float domain the
// axis bounds live in.
func indexFloats(t *table.Table, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		if t.Index.IsTime() {
			out[i] = float64(t.Index.Times[i].UnixNano()) / float64(time.Second)
		} else {
			out[i] = t.Index.Nums[i]
		}
	}
	return out
}
