package input

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/galaxy/camera"
	"github.com/lixenwraith/galaxy/config"
	"github.com/lixenwraith/galaxy/graph"
)

// Simulation is the energy surface the controller re-awakens
type Simulation interface {
	Reheat(floor float64)
	Settled() bool
}

// Camera is the transform the controller pans and zooms
type Camera interface {
	State() camera.State
	PanBy(dx, dy float64)
	ZoomAt(sx, sy, factor float64)
}

// Waker re-arms a parked frame loop
type Waker interface {
	Wake()
}

// WakerFunc adapts a function to Waker
type WakerFunc func()

// Wake implements Waker
func (f WakerFunc) Wake() { f() }

// Navigator receives the id of an activated node
type Navigator func(id string)

// Controller is the pointer, touch, wheel and keyboard state machine for one view
// Not safe for concurrent use; the view's frame loop feeds it events
type Controller struct {
	graph *graph.Graph
	cam   Camera
	sim   Simulation
	wake  Waker
	nav   Navigator
	log   zerolog.Logger

	interaction config.InteractionConfig
	wheelIn     float64
	wheelOut    float64
	reheatDrag  float64
	reheatDrop  float64

	state State

	// Pointer tracking in screen pixels
	downX, downY float64
	lastX, lastY float64
	dragNode     *graph.Node
	dragMoved    bool

	hovered *graph.Node
	focused *graph.Node

	touch touchState

	tourActive bool
}

// Option configures a controller
type Option func(*Controller)

// WithNavigator sets the activation callback
func WithNavigator(nav Navigator) Option {
	return func(c *Controller) {
		c.nav = nav
	}
}

// WithWaker sets the loop re-arm hook
func WithWaker(w Waker) Option {
	return func(c *Controller) {
		c.wake = w
	}
}

// WithLogger sets the controller logger
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// NewController wires a controller to a graph, camera and simulation
func NewController(g *graph.Graph, cam Camera, sim Simulation, cfg *config.Config, opts ...Option) *Controller {
	c := &Controller{
		graph:       g,
		cam:         cam,
		sim:         sim,
		log:         zerolog.Nop(),
		interaction: cfg.Interaction,
		wheelIn:     cfg.Camera.WheelZoomIn,
		wheelOut:    cfg.Camera.WheelZoomOut,
		reheatDrag:  cfg.Physics.ReheatDrag,
		reheatDrop:  cfg.Physics.ReheatRelease,
		state:       StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetGraph swaps the graph after a dataset rebuild, dropping references into the old one
func (c *Controller) SetGraph(g *graph.Graph) {
	c.cancelPointer()
	c.graph = g
	c.hovered = nil
	c.focused = nil
	c.touch = touchState{}
}

// SetTourActive suppresses navigation while a guided tour drives the camera
func (c *Controller) SetTourActive(active bool) {
	c.tourActive = active
}

// State returns the pointer state
func (c *Controller) State() State {
	return c.state
}

// Dragging reports whether a node is held
func (c *Controller) Dragging() bool {
	return c.state == StateDragging
}

// Hovered returns the node under the pointer or nil
func (c *Controller) Hovered() *graph.Node {
	return c.hovered
}

// Focused returns the keyboard-focused node or nil
func (c *Controller) Focused() *graph.Node {
	return c.focused
}

// Handle advances the state machine by one event
func (c *Controller) Handle(ev Event) Intent {
	switch ev.Type {
	case EventPointerDown:
		return c.pointerDown(ev.X, ev.Y)
	case EventPointerMove:
		return c.pointerMove(ev.X, ev.Y)
	case EventPointerUp:
		return c.pointerUp()
	case EventPointerLeave:
		return c.pointerLeave()
	case EventWheel:
		return c.wheel(ev.X, ev.Y, ev.DeltaY)
	case EventTouchStart:
		return c.touchStart(ev)
	case EventTouchMove:
		return c.touchMove(ev)
	case EventTouchEnd:
		return c.touchEnd(ev)
	case EventKey:
		return c.key(ev.Key)
	case EventQuit:
		return Intent{Type: IntentQuit}
	}
	return Intent{}
}

func (c *Controller) wakeLoop() {
	if c.wake != nil {
		c.wake.Wake()
	}
}

// activate resolves a click, tap or keyboard activation on n
func (c *Controller) activate(n *graph.Node) Intent {
	if n == nil {
		return Intent{}
	}
	if c.tourActive {
		c.log.Debug().Str("node", n.ID).Msg("activation suppressed during tour")
		return Intent{Type: IntentRedraw}
	}
	c.log.Debug().Str("node", n.ID).Msg("node activated")
	if c.nav != nil {
		c.nav(n.ID)
	}
	return Intent{Type: IntentActivate, NodeID: n.ID}
}
