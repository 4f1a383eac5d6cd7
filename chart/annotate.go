package chart

import (
	"math"
	"reflect"
	"runtime"
	"strconv"
	"strings"

	"github.com/ayushsubedi/chartrace/table"
)

// TextHandle is one owned annotation on the axes. The handle is created on
// the first frame and only its Text mutates afterwards, so an animation of
// any length carries at most one period handle and one summary handle.
type TextHandle struct {
	X, Y   float64 // axes fractions
	Size   float64 // points
	HAlign string  // "left" or "right"
	Text   string
}

// PeriodAnnotator formats and places the period label and the optional
// summary text for each frame.
type PeriodAnnotator struct {
	enabled   bool
	spec      TextSpec
	periodFmt string
	summary   SummaryFunc

	periodText  *TextHandle
	summaryText *TextHandle
}

// NewPeriodAnnotator builds the annotator from the animation config. The
// config is assumed validated.
func NewPeriodAnnotator(cfg *Config) *PeriodAnnotator {
	a := &PeriodAnnotator{
		enabled:   cfg.PeriodLabel,
		spec:      defaultTextSpec(),
		periodFmt: cfg.PeriodFmt,
		summary:   cfg.PeriodSummaryFunc,
	}
	if cfg.PeriodLabelSpec != nil {
		spec := *cfg.PeriodLabelSpec
		if math.IsNaN(spec.X) && math.IsNaN(spec.Y) {
			spec.X, spec.Y = 0.9, 0.1
		}
		if spec.Size == 0 {
			spec.Size = 12
		}
		if spec.HAlign == "" {
			spec.HAlign = "right"
		}
		a.spec = spec
	}
	return a
}

// Update recomputes both annotations for frame i of the interpolated
// table. The first call creates the handles, later calls only swap their
// text, never creating a second instance.
func (a *PeriodAnnotator) Update(t *table.Table, i int) error {
	if a.enabled {
		s := a.formatPeriod(t, i)
		if a.periodText == nil {
			a.periodText = &TextHandle{
				X:      a.spec.X,
				Y:      a.spec.Y,
				Size:   a.spec.Size,
				HAlign: a.spec.HAlign,
				Text:   s,
			}
		} else {
			a.periodText.Text = s
		}
	}

	if a.summary != nil {
		if err := a.updateSummary(t, i); err != nil {
			return err
		}
	}
	return nil
}

func (a *PeriodAnnotator) formatPeriod(t *table.Table, i int) string {
	if a.periodFmt == "" {
		return t.Index.Label(i)
	}
	if t.Index.IsTime() {
		return t.Index.Times[i].Format(a.periodFmt)
	}
	v := strconv.FormatFloat(t.Index.Nums[i], 'g', -1, 64)
	if strings.Contains(a.periodFmt, "{x}") {
		return strings.ReplaceAll(a.periodFmt, "{x}", v)
	}
	// No placeholder: the format string is literal text.
	return a.periodFmt
}

func (a *PeriodAnnotator) updateSummary(t *table.Table, i int) error {
	out := a.summary(t.Row(i))

	for _, key := range []string{"x", "y", "s"} {
		if _, ok := out[key]; !ok {
			name := runtime.FuncForPC(reflect.ValueOf(a.summary).Pointer()).Name()
			return configErrorf(`the map returned from %q must contain "x", "y", and "s"`, name)
		}
	}

	x, okX := toFloat(out["x"])
	y, okY := toFloat(out["y"])
	s, okS := out["s"].(string)
	if !okX || !okY || !okS {
		name := runtime.FuncForPC(reflect.ValueOf(a.summary).Pointer()).Name()
		return configErrorf(`%q must return numeric "x" and "y" and a string "s"`, name)
	}

	if a.summaryText == nil {
		a.summaryText = &TextHandle{X: x, Y: y, Size: 12, HAlign: "left", Text: s}
	} else {
		a.summaryText.Text = s
	}
	return nil
}

// Texts returns the live handles, at most two regardless of frame count.
func (a *PeriodAnnotator) Texts() []*TextHandle {
	var texts []*TextHandle
	if a.periodText != nil {
		texts = append(texts, a.periodText)
	}
	if a.summaryText != nil {
		texts = append(texts, a.summaryText)
	}
	return texts
}

// Reset drops the handles so a reused surface starts the next animation
// without stale labels.
func (a *PeriodAnnotator) Reset() {
	a.periodText = nil
	a.summaryText = nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
