// Package colors resolves a color specification (palette name, colormap
// name, single color or explicit list) to the ordered per-series color list
// the chart drawers consume.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// gradientResolution is how many colors a continuous colormap expands to.
const gradientResolution = 256

// Resolve maps spec to an ordered list of RGBA colors. spec may be:
//   - the name of a discrete palette ("dark24", "pastel", "bold")
//   - the name of a continuous colormap ("viridis", "plasma", ...), sampled
//     at full resolution
//   - any other string, treated as a single hex or named color and
//     replicated once per data column
//   - an explicit []color.RGBA or []string of colors, used as-is
//
// Resolution is a pure function of spec and numCols; anything else is an
// unsupported-type error.
func Resolve(spec any, numCols int) ([]color.RGBA, error) {
	switch s := spec.(type) {
	case string:
		return resolveName(s, numCols)
	case []color.RGBA:
		return s, nil
	case []string:
		out := make([]color.RGBA, len(s))
		for i, name := range s {
			c, err := parseColor(name)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	case color.RGBA:
		return repeat(s, numCols), nil
	default:
		return nil, fmt.Errorf("cmap must be a string name of a color, a colormap name or a list of colors, got %T", spec)
	}
}

func resolveName(name string, numCols int) ([]color.RGBA, error) {
	key := strings.ToLower(name)

	if hexes, ok := discretePalettes[key]; ok {
		out := make([]color.RGBA, len(hexes))
		for i, h := range hexes {
			c, _ := colorful.Hex(h)
			out[i] = toRGBA(c)
		}
		return out, nil
	}

	if anchors, ok := gradientAnchors[key]; ok {
		return sampleGradient(anchors, gradientResolution), nil
	}

	// Not a palette or colormap: treat as one color for every column.
	c, err := parseColor(name)
	if err != nil {
		return nil, fmt.Errorf("provide a suitable color name or colormap: %w", err)
	}
	return repeat(c, numCols), nil
}

// sampleGradient expands evenly spaced anchor colors to n colors, blending
// between neighbors in HCL space.
func sampleGradient(anchorHexes []string, n int) []color.RGBA {
	anchors := make([]colorful.Color, len(anchorHexes))
	for i, h := range anchorHexes {
		anchors[i], _ = colorful.Hex(h)
	}

	out := make([]color.RGBA, n)
	segments := float64(len(anchors) - 1)
	for i := range out {
		t := float64(i) / float64(n-1) * segments
		seg := int(t)
		if seg >= len(anchors)-1 {
			seg = len(anchors) - 2
		}
		frac := t - float64(seg)
		out[i] = toRGBA(anchors[seg].BlendHcl(anchors[seg+1], frac).Clamped())
	}
	return out
}

func parseColor(name string) (color.RGBA, error) {
	key := strings.ToLower(name)
	if hex, ok := namedColors[key]; ok {
		key = hex
	}
	c, err := colorful.Hex(strings.ToLower(key))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("unknown color %q", name)
	}
	return toRGBA(c), nil
}

func repeat(c color.RGBA, n int) []color.RGBA {
	out := make([]color.RGBA, n)
	for i := range out {
		out[i] = c
	}
	return out
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
