// Package chart turns an interpolated table into an animated chart: it
// owns the per-frame axis scaling, figure layout, period annotation and the
// animation driver that hands frames to an encoder.
package chart

import (
	"math"
)

// SummaryFunc receives the current frame's row of values and returns the
// placement and text of the summary annotation. The returned map must hold
// "x", "y" (axes fractions) and "s" (the text).
type SummaryFunc func(row map[string]float64) map[string]any

// TextSpec is an explicit placement for the period label. X and Y are axes
// fractions; both must be set together.
type TextSpec struct {
	X, Y   float64
	Size   float64
	HAlign string
}

// NewTextSpec returns a spec with unset coordinates and default styling.
func NewTextSpec() TextSpec {
	return TextSpec{X: math.NaN(), Y: math.NaN(), Size: 12, HAlign: "right"}
}

// defaultTextSpec is the bottom-right placement used when the period label
// is enabled without an explicit spec.
func defaultTextSpec() TextSpec {
	return TextSpec{X: 0.9, Y: 0.1, Size: 12, HAlign: "right"}
}

// Config holds every recognized animation option. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	StepsPerPeriod    int     // intermediate frames per period, >= 1
	PeriodLength      int     // milliseconds of animation per period
	InterpolatePeriod bool    // interpolate the index itself between periods
	PeriodFmt         string  // period label format: Go time layout or "{x}" template
	FigWidth          float64 // inches
	FigHeight         float64 // inches
	Title             string
	Cmap              any     // color spec, see colors.Resolve
	TickLabelSize     float64 // points
	PeriodLabel       bool
	PeriodLabelSpec   *TextSpec // nil means default bottom-right placement
	PeriodSummaryFunc SummaryFunc
	FixedMax          bool // compute axis bounds once from the whole dataset
	DPI               int
	Writer            string // external encoder name, empty for the built-in paths
	EnableProgressBar bool
}

// DefaultConfig mirrors the library defaults.
func DefaultConfig() Config {
	return Config{
		StepsPerPeriod: 10,
		PeriodLength:   500,
		FigWidth:       6.5,
		FigHeight:      3.5,
		Cmap:           "dark24",
		TickLabelSize:  7,
		PeriodLabel:    true,
		DPI:            144,
	}
}

// validate checks the construction-time invariants. Violations are
// configuration errors: the caller must fix the input and retry.
func (c *Config) validate() error {
	if c.StepsPerPeriod < 1 {
		return configErrorf("steps_per_period must be a positive integer, got %d", c.StepsPerPeriod)
	}
	if c.PeriodLength <= 0 {
		return configErrorf("period_length must be positive milliseconds, got %d", c.PeriodLength)
	}
	if c.FigWidth <= 0 || c.FigHeight <= 0 {
		return configErrorf("figsize must be positive inches, got %gx%g", c.FigWidth, c.FigHeight)
	}
	if c.DPI <= 0 {
		return configErrorf("dpi must be positive, got %d", c.DPI)
	}
	if c.PeriodLabelSpec != nil {
		xSet, ySet := !math.IsNaN(c.PeriodLabelSpec.X), !math.IsNaN(c.PeriodLabelSpec.Y)
		if xSet != ySet {
			return configErrorf(`period_label placement must set both "x" and "y"`)
		}
	}
	if c.Writer == "pillow" || c.Writer == "gif" {
		return configErrorf("the GIF path is built in: use the .gif extension and leave writer unset")
	}
	return nil
}

// fps is the output frame rate implied by the pacing options.
func (c *Config) fps() float64 {
	return 1000 / float64(c.PeriodLength) * float64(c.StepsPerPeriod)
}

// frameInterval is the duration of one frame in milliseconds.
func (c *Config) frameInterval() float64 {
	return float64(c.PeriodLength) / float64(c.StepsPerPeriod)
}
