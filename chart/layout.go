package chart

// Figure layout: pre-measure tick label extents so the final axes rectangle
// reserves exactly the margin the labels need instead of clipping them.

// LabelMeasurer is the narrow capability the layout calculator needs from a
// rendering surface: the pixel extents of a set of labels at a font size.
// Keeping it an interface lets tests substitute a deterministic measurer.
type LabelMeasurer interface {
	MeasureLabels(points float64, labels []string) (w, h float64)
}

// Default margins an unlabeled axes occupies, as figure fractions.
const (
	baseLeft   = 0.125
	baseBottom = 0.11
	baseRight  = 0.9
	baseTop    = 0.88
	// labelPad is breathing room between tick labels and the axes, inches.
	labelPad = 0.05
	// minAxesExtent keeps the axes rect from inverting when labels eat
	// the whole figure fraction.
	minAxesExtent = 0.05
)

// Layout is the figure size and axes rectangle that fit the tick labels.
type Layout struct {
	FigWidth  float64 // inches
	FigHeight float64 // inches
	Axes      Rect
}

// ComputeLayout measures the y-axis tick labels (series names) and x-axis
// tick labels (the widest formatted value) and grows the figure by the
// extra inches the labels need beyond the default margins. The returned
// axes rectangle reserves exactly that margin, so the plotting area keeps
// its original physical size.
func ComputeLayout(m LabelMeasurer, figW, figH float64, dpi int, tickSize float64, yLabels, xLabels []string) Layout {
	yw, _ := m.MeasureLabels(tickSize, yLabels)
	_, xh := m.MeasureLabels(tickSize, xLabels)

	neededLeftIn := yw/float64(dpi) + labelPad
	neededBottomIn := xh/float64(dpi) + labelPad

	extraW := neededLeftIn - baseLeft*figW
	if extraW < 0 {
		extraW = 0
	}
	extraH := neededBottomIn - baseBottom*figH
	if extraH < 0 {
		extraH = 0
	}

	newW := figW + extraW
	newH := figH + extraH

	left := (baseLeft*figW + extraW) / newW
	bottom := (baseBottom*figH + extraH) / newH

	width := baseRight - left
	if width < minAxesExtent {
		width = minAxesExtent
	}
	height := baseTop - bottom
	if height < minAxesExtent {
		height = minAxesExtent
	}

	return Layout{
		FigWidth:  newW,
		FigHeight: newH,
		Axes: Rect{
			Left:   left,
			Bottom: bottom,
			Width:  width,
			Height: height,
		},
	}
}
