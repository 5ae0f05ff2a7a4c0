package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette for elements without a data-supplied color
var (
	DefaultNodeColor = colorful.Color{R: 0.30, G: 0.55, B: 1.00}
	EdgeColor        = colorful.Color{R: 0.45, G: 0.50, B: 0.68}
	EdgeHighlight    = colorful.Color{R: 0.80, G: 0.85, B: 1.00}
	LabelColor       = colorful.Color{R: 0.85, G: 0.87, B: 0.95}
	IconColor        = colorful.Color{R: 1.00, G: 1.00, B: 1.00}
	PanelColor       = colorful.Color{R: 0.09, G: 0.10, B: 0.16}
	StatusColor      = colorful.Color{R: 0.45, G: 0.48, B: 0.60}
)

// ParseColor decodes a #rrggbb or #rgb hex string, falling back on error
func ParseColor(hex string, fallback colorful.Color) colorful.Color {
	if hex == "" {
		return fallback
	}
	if len(hex) == 4 && hex[0] == '#' {
		hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c
}

// blend mixes src over dst in RGB space: src*alpha + dst*(1-alpha)
func blend(dst, src colorful.Color, alpha float64) colorful.Color {
	switch {
	case alpha <= 0:
		return dst
	case alpha >= 1:
		return src
	}
	return dst.BlendRgb(src, alpha).Clamped()
}

// Fade blends c toward the canvas background
func Fade(c colorful.Color, alpha float64) colorful.Color {
	return blend(Background, c, alpha)
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
