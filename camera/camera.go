package camera

import (
	"math"
	"time"

	"github.com/lixenwraith/galaxy/clock"
	"github.com/lixenwraith/galaxy/config"
	"github.com/lixenwraith/galaxy/graph"
	"github.com/lixenwraith/galaxy/vmath"
)

// Camera owns zoom and pan for one view and drives at most one tween at a time
// Not safe for concurrent use; the view's frame loop is the single writer
type Camera struct {
	cfg    config.CameraConfig
	clock  clock.Provider
	motion MotionPreference

	state         State
	width, height float64

	active    *tween
	nextTween uint64

	observers []Observer
}

// Option configures a camera
type Option func(*Camera)

// WithReducedMotion sets the reduced-motion source
func WithReducedMotion(m MotionPreference) Option {
	return func(c *Camera) {
		c.motion = m
	}
}

// WithObserver subscribes o to every change
func WithObserver(o Observer) Option {
	return func(c *Camera) {
		c.observers = append(c.observers, o)
	}
}

// New creates a camera at the identity framing
func New(cfg config.CameraConfig, clk clock.Provider, opts ...Option) *Camera {
	if clk == nil {
		clk = clock.NewMonotonic()
	}
	c := &Camera{
		cfg:   cfg,
		clock: clk,
		state: Identity(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddObserver subscribes o to every change
func (c *Camera) AddObserver(o Observer) {
	c.observers = append(c.observers, o)
}

// SetViewport records the screen size used to center tween targets
func (c *Camera) SetViewport(vp graph.Viewport) {
	c.width, c.height = vp.Width, vp.Height
}

// State returns the current transform
func (c *Camera) State() State {
	return c.state
}

// Animating reports whether a tween is in flight
func (c *Camera) Animating() bool {
	return c.active != nil
}

func (c *Camera) reducedMotion() bool {
	return c.motion != nil && c.motion.ReducedMotion()
}

func (c *Camera) notify() {
	for _, o := range c.observers {
		o.CameraChanged(c.state)
	}
}

// PanBy translates immediately by a raw screen delta
// Live interaction supersedes any in-flight tween
func (c *Camera) PanBy(dx, dy float64) {
	c.Cancel()
	c.state.PanX += dx
	c.state.PanY += dy
	c.notify()
}

// ZoomAt scales by factor about screen point (sx, sy), keeping the graph point under it fixed
// The resulting zoom is clamped to the configured bounds
func (c *Camera) ZoomAt(sx, sy, factor float64) {
	if factor <= 0 || !vmath.Finite(factor) {
		return
	}
	c.Cancel()
	c.zoomAt(sx, sy, c.state.Zoom*factor)
	c.notify()
}

func (c *Camera) zoomAt(sx, sy, zoom float64) {
	zoom = vmath.Clamp(zoom, c.cfg.ZoomMin, c.cfg.ZoomMax)
	gx, gy := c.state.ScreenToGraph(sx, sy)
	c.state.Zoom = zoom
	c.state.PanX = sx - gx*zoom
	c.state.PanY = sy - gy*zoom
}

// Reset cancels any tween and snaps to the identity view
func (c *Camera) Reset() {
	c.Cancel()
	c.state = Identity()
	c.notify()
}

// centerOn returns the framing that centers n on screen at zoom
func (c *Camera) centerOn(n *graph.Node, zoom float64) State {
	return State{
		Zoom: zoom,
		PanX: c.width/2 - n.X*zoom,
		PanY: c.height/2 - n.Y*zoom,
	}
}

// frameZoom sizes n to width/(radius*factor), capped at max
// Degenerate sizes fall back to max
func (c *Camera) frameZoom(n *graph.Node, factor, max float64) float64 {
	zoom := math.Min(c.width/(n.Radius*factor), max)
	if !vmath.Finite(zoom) || zoom <= 0 {
		return max
	}
	return zoom
}

// AnimateTo tweens to a framing centered on n at zoom; zoom <= 0 uses the pan-to default
// Returns the tween id, zero when the transition completed immediately
func (c *Camera) AnimateTo(n *graph.Node, d time.Duration, zoom float64, onComplete func()) uint64 {
	if n == nil {
		return 0
	}
	if zoom <= 0 {
		zoom = c.cfg.PanToZoom
	}
	return c.start(c.centerOn(n, zoom), d, nil, onComplete)
}

// PanTo frames n at the configured tour zoom over the configured duration
func (c *Camera) PanTo(n *graph.Node, onComplete func()) uint64 {
	return c.AnimateTo(n, c.cfg.PanToDuration.Duration, c.cfg.PanToZoom, onComplete)
}

// ZoomTo frames n so it fills a fraction of the screen width
func (c *Camera) ZoomTo(n *graph.Node, d time.Duration, onComplete func()) uint64 {
	if n == nil {
		return 0
	}
	zoom := c.frameZoom(n, c.cfg.ZoomToRadiusFactor, c.cfg.ZoomToMax)
	return c.start(c.centerOn(n, zoom), d, nil, onComplete)
}

// FlyIn is the cinematic dive into n, reporting eased progress every step
func (c *Camera) FlyIn(n *graph.Node, d time.Duration, onProgress func(float64), onComplete func()) uint64 {
	if n == nil {
		return 0
	}
	zoom := c.frameZoom(n, c.cfg.FlyInRadiusFactor, c.cfg.FlyInMax)
	return c.start(c.centerOn(n, zoom), d, onProgress, onComplete)
}

// FlyOut returns to the overview framing, reporting eased progress every step
func (c *Camera) FlyOut(d time.Duration, onProgress func(float64), onComplete func()) uint64 {
	return c.start(Identity(), d, onProgress, onComplete)
}
