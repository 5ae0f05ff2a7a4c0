package camera

import "github.com/lixenwraith/galaxy/vmath"

// State is the view transform: graph (gx, gy) maps to screen (gx*Zoom+PanX, gy*Zoom+PanY)
type State struct {
	Zoom float64
	PanX float64
	PanY float64
}

// Identity is the overview framing
func Identity() State {
	return State{Zoom: 1}
}

// ScreenToGraph inverts the transform
func (s State) ScreenToGraph(sx, sy float64) (gx, gy float64) {
	return (sx - s.PanX) / s.Zoom, (sy - s.PanY) / s.Zoom
}

// GraphToScreen applies the transform
func (s State) GraphToScreen(gx, gy float64) (sx, sy float64) {
	return gx*s.Zoom + s.PanX, gy*s.Zoom + s.PanY
}

// lerp interpolates every field by e
func (s State) lerp(to State, e float64) State {
	return State{
		Zoom: vmath.Lerp(s.Zoom, to.Zoom, e),
		PanX: vmath.Lerp(s.PanX, to.PanX, e),
		PanY: vmath.Lerp(s.PanY, to.PanY, e),
	}
}

// Observer is notified after every camera change
// The graph renderer and decorative layers subscribe so framing stays in sync
type Observer interface {
	CameraChanged(State)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(State)

// CameraChanged implements Observer
func (f ObserverFunc) CameraChanged(s State) { f(s) }

// MotionPreference reports the platform reduced-motion setting
// Read fresh at every animation decision since it can change mid-session
type MotionPreference interface {
	ReducedMotion() bool
}

// MotionFunc adapts a function to MotionPreference
type MotionFunc func() bool

// ReducedMotion implements MotionPreference
func (f MotionFunc) ReducedMotion() bool { return f() }
