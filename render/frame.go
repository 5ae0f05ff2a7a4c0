package render

import "github.com/lixenwraith/galaxy/camera"

// NodeView is a node as drawn this frame, already in screen pixels
type NodeView struct {
	ID          string
	Label       string
	Icon        string
	Color       string
	Description string

	X, Y   float64
	Radius float64

	// Alpha combines entrance fade, hover dimming and fly-in fade
	Alpha float64
	Glow  float64

	Hovered  bool
	Focused  bool
	Selected bool
}

// EdgeView is an edge segment in screen pixels
type EdgeView struct {
	X1, Y1 float64
	X2, Y2 float64
	Label  string
	Alpha  float64

	// Highlight marks edges incident to the hovered or focused node
	Highlight bool
}

// Tooltip describes the hovered node near the pointer
type Tooltip struct {
	Title string
	Body  string
	X, Y  float64
}

// Frame is an immutable snapshot of one view, produced after physics and camera have stepped
// Renderers read it only; nothing in it aliases live simulation state
type Frame struct {
	Width, Height float64
	Camera        camera.State

	Nodes []NodeView
	Edges []EdgeView

	Tooltip *Tooltip
	Status  string
}

// Renderer consumes frame snapshots
type Renderer interface {
	Render(f *Frame) error
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(f *Frame) error

// Render implements Renderer
func (fn RendererFunc) Render(f *Frame) error { return fn(f) }

// Discard drops every frame, used by headless runs
var Discard Renderer = RendererFunc(func(*Frame) error { return nil })
