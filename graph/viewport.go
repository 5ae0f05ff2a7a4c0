package graph

// Viewport is the drawable area in CSS-like pixels
// DPR is informational for renderers, layout math stays in logical pixels
type Viewport struct {
	Width  float64
	Height float64
	DPR    float64
}

// Valid reports whether the viewport has a usable area
// Hidden or not-yet-laid-out surfaces report zero size
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// MinSide returns the shorter side
func (v Viewport) MinSide() float64 {
	if v.Width < v.Height {
		return v.Width
	}
	return v.Height
}

// Small reports whether the viewport falls below the breakpoint
func (v Viewport) Small(breakpoint float64) bool {
	return v.MinSide() < breakpoint
}
