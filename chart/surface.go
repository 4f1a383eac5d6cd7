package chart

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"sync"

	"github.com/fogleman/gg"
	"go.uber.org/zap"

	logging "github.com/ayushsubedi/chartrace/internal/infra/log"
)

// Rect is an axes rectangle in figure fractions, matplotlib-style:
// left and bottom measured from the bottom-left corner.
type Rect struct {
	Left, Bottom, Width, Height float64
}

// Surface is the shared mutable rendering target every frame draws onto.
// It wraps a gg context sized in inches at a given dpi and owns the font
// registration that the rest of the pipeline relies on. A single Surface
// is reused across all frames and across consecutive animations; Clear is
// the only mechanism preventing state leaking between runs.
type Surface struct {
	dc       *gg.Context
	widthIn  float64
	heightIn float64
	dpi      int
	axes     Rect
	fontPath string
}

var (
	fontOnce   sync.Once
	cachedFont string
)

// fontSearchPaths is the fallback chain for a usable TTF face. When none
// exists the gg default bitmap face still renders, just less prettily.
var fontSearchPaths = []string{
	"etc/fonts/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"/Library/Fonts/Arial.ttf",
	"C:\\Windows\\Fonts\\arial.ttf",
}

// findFontFace resolves the first loadable font on the search path once
// per process. Font setup is done here, by the surface factory, rather
// than as an import-time side effect.
func findFontFace() string {
	fontOnce.Do(func() {
		for _, p := range fontSearchPaths {
			expanded := p
			if len(p) > 0 && p[0] == '~' {
				if home, err := os.UserHomeDir(); err == nil {
					expanded = filepath.Join(home, p[1:])
				}
			}
			if _, err := os.Stat(expanded); err == nil {
				cachedFont = expanded
				logging.LogDebug("Resolved chart font", zap.String("path", expanded))
				return
			}
		}
		logging.LogWarn("No TTF font found on search path, using built-in bitmap face",
			zap.Int("paths_checked", len(fontSearchPaths)))
	})
	return cachedFont
}

// NewSurface creates a rendering surface of the given physical size.
func NewSurface(widthIn, heightIn float64, dpi int) *Surface {
	s := &Surface{
		widthIn:  widthIn,
		heightIn: heightIn,
		dpi:      dpi,
		axes:     Rect{Left: 0.125, Bottom: 0.11, Width: 0.775, Height: 0.77},
		fontPath: findFontFace(),
	}
	s.dc = gg.NewContext(s.PxWidth(), s.PxHeight())
	s.Clear()
	return s
}

func (s *Surface) PxWidth() int  { return int(s.widthIn * float64(s.dpi)) }
func (s *Surface) PxHeight() int { return int(s.heightIn * float64(s.dpi)) }

// SizeInches returns the figure size.
func (s *Surface) SizeInches() (w, h float64) { return s.widthIn, s.heightIn }

// DPI returns the surface resolution.
func (s *Surface) DPI() int { return s.dpi }

// Context exposes the underlying gg context to chart drawers.
func (s *Surface) Context() *gg.Context { return s.dc }

// Resize replaces the backing context with one of the new physical size.
func (s *Surface) Resize(widthIn, heightIn float64) {
	s.widthIn, s.heightIn = widthIn, heightIn
	s.dc = gg.NewContext(s.PxWidth(), s.PxHeight())
	s.Clear()
}

// SetAxesRect fixes the axes rectangle in figure fractions.
func (s *Surface) SetAxesRect(r Rect) { s.axes = r }

// AxesRect returns the axes rectangle in figure fractions.
func (s *Surface) AxesRect() Rect { return s.axes }

// AxesPx returns the axes rectangle in pixel coordinates, top-left origin.
func (s *Surface) AxesPx() (x0, y0, w, h float64) {
	fw, fh := float64(s.PxWidth()), float64(s.PxHeight())
	x0 = s.axes.Left * fw
	w = s.axes.Width * fw
	h = s.axes.Height * fh
	y0 = (1 - s.axes.Bottom - s.axes.Height) * fh
	return x0, y0, w, h
}

// SetFontSize loads the resolved face at size points. Without a resolved
// face the gg default stays active.
func (s *Surface) SetFontSize(points float64) {
	if s.fontPath == "" {
		return
	}
	px := points * float64(s.dpi) / 72
	if err := s.dc.LoadFontFace(s.fontPath, px); err != nil {
		logging.LogWarn("Font file exists but failed to load",
			zap.String("path", s.fontPath), zap.Error(err))
	}
}

// Clear wipes every drawn artifact so the surface can host the next frame
// or a subsequent independent animation without leaking prior state.
func (s *Surface) Clear() {
	s.dc.SetColor(color.White)
	s.dc.Clear()
}

// FillAxes paints the axes background (the light face behind the data).
func (s *Surface) FillAxes(c color.Color) {
	x0, y0, w, h := s.AxesPx()
	s.dc.SetColor(c)
	s.dc.DrawRectangle(x0, y0, w, h)
	s.dc.Fill()
}

// Snapshot copies the current pixels so the frame survives the next Clear.
func (s *Surface) Snapshot() image.Image {
	src := s.dc.Image()
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}

// MeasureLabels implements LabelMeasurer by rendering the labels onto a
// throwaway context at the requested font size and taking the maximum
// extents in pixels. Tick label width is font- and content-dependent, so
// measurement happens against real rendered text.
func (s *Surface) MeasureLabels(points float64, labels []string) (w, h float64) {
	probe := gg.NewContext(16, 16)
	if s.fontPath != "" {
		px := points * float64(s.dpi) / 72
		if err := probe.LoadFontFace(s.fontPath, px); err != nil {
			logging.LogWarn("Measurement font load failed, falling back to default face",
				zap.Error(err))
		}
	}
	for _, label := range labels {
		lw, lh := probe.MeasureString(label)
		if lw > w {
			w = lw
		}
		if lh > h {
			h = lh
		}
	}
	return w, h
}
