package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/galaxy/camera"
	"github.com/lixenwraith/galaxy/clock"
	"github.com/lixenwraith/galaxy/config"
	"github.com/lixenwraith/galaxy/graph"
	"github.com/lixenwraith/galaxy/input"
	"github.com/lixenwraith/galaxy/physics"
	"github.com/lixenwraith/galaxy/render"
)

// Level is the navigation depth of a view
type Level int

const (
	// LevelGalaxy is the interactive overview
	LevelGalaxy Level = iota
	// LevelDomain is reached after flying into a node; the overview stops animating
	LevelDomain
)

func (l Level) String() string {
	if l == LevelDomain {
		return "domain"
	}
	return "galaxy"
}

// View is the simulation context of one galaxy: graph, physics, camera and input
// Exactly one goroutine may call its methods, normally the scheduler loop
type View struct {
	id  uuid.UUID
	cfg *config.Config

	graph *graph.Graph
	sim   *physics.Simulation
	drift *physics.Drift
	cam   *camera.Camera
	ctrl  *input.Controller
	clock *clock.Pausable
	base  clock.Provider

	motion   camera.MotionPreference
	renderer render.Renderer
	obs      Observer
	cues     Cues
	nav      input.Navigator
	waker    input.Waker
	log      zerolog.Logger

	level    Level
	selected string
	fade     float64

	visible      bool
	active       bool
	dirty        bool
	settled      bool
	entranceDone bool
	start        time.Time

	tour    []string
	tourIdx int

	pointerX, pointerY float64
	frames             uint64
}

// ViewOption configures a view
type ViewOption func(*View)

// WithRenderer sets the frame consumer
func WithRenderer(r render.Renderer) ViewOption {
	return func(v *View) {
		v.renderer = r
	}
}

// WithObserver sets the telemetry sink
func WithObserver(o Observer) ViewOption {
	return func(v *View) {
		v.obs = o
	}
}

// WithCues sets the sound feedback sink
func WithCues(c Cues) ViewOption {
	return func(v *View) {
		v.cues = c
	}
}

// WithNavigator sets the callback invoked with the id of an activated node
func WithNavigator(nav input.Navigator) ViewOption {
	return func(v *View) {
		v.nav = nav
	}
}

// WithLogger sets the view logger
func WithLogger(l zerolog.Logger) ViewOption {
	return func(v *View) {
		v.log = l
	}
}

// WithClock sets the base time source the view's pausable clock runs on
func WithClock(p clock.Provider) ViewOption {
	return func(v *View) {
		v.base = p
	}
}

// WithReducedMotion sets the reduced-motion source, read fresh at every decision point
func WithReducedMotion(m camera.MotionPreference) ViewOption {
	return func(v *View) {
		v.motion = m
	}
}

// NewView assembles a view over g; the view owns g exclusively from here on
func NewView(g *graph.Graph, cfg *config.Config, opts ...ViewOption) *View {
	v := &View{
		id:       uuid.New(),
		cfg:      cfg,
		graph:    g,
		motion:   camera.MotionFunc(func() bool { return false }),
		renderer: render.Discard,
		obs:      NopObserver{},
		cues:     nopCues{},
		log:      zerolog.Nop(),
		level:    LevelGalaxy,
		visible:  true,
		active:   true,
		dirty:    true,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.log = v.log.With().Str("view", v.id.String()).Logger()

	v.clock = clock.NewPausable(v.base)
	v.start = v.clock.Now()

	v.sim = physics.NewSimulation(cfg.Physics)
	v.drift = physics.NewDrift(cfg.Drift, cfg.Physics.BoundaryMargin)
	v.cam = camera.New(cfg.Camera, v.clock,
		camera.WithReducedMotion(v.motion),
		camera.WithObserver(camera.ObserverFunc(v.cameraChanged)),
	)
	v.cam.SetViewport(g.Viewport())
	v.ctrl = input.NewController(g, v.cam, v.sim, cfg,
		input.WithWaker(input.WakerFunc(v.wake)),
		input.WithLogger(v.log),
	)
	v.settled = v.sim.Settled()
	return v
}

func (v *View) ID() uuid.UUID                   { return v.id }
func (v *View) Graph() *graph.Graph             { return v.graph }
func (v *View) Camera() *camera.Camera          { return v.cam }
func (v *View) Simulation() *physics.Simulation { return v.sim }
func (v *View) Controller() *input.Controller   { return v.ctrl }
func (v *View) Clock() *clock.Pausable          { return v.clock }
func (v *View) Level() Level                    { return v.level }
func (v *View) Selected() string                { return v.selected }
func (v *View) Active() bool                    { return v.active }
func (v *View) Visible() bool                   { return v.visible }
func (v *View) Frames() uint64                  { return v.frames }
func (v *View) Touring() bool                   { return v.tour != nil }

// SetWaker installs the hook that re-arms a parked frame loop
func (v *View) SetWaker(w input.Waker) {
	v.waker = w
}

func (v *View) wake() {
	v.dirty = true
	if v.waker != nil {
		v.waker.Wake()
	}
}

func (v *View) cameraChanged(camera.State) {
	v.dirty = true
}

func (v *View) reducedMotion() bool {
	return v.motion != nil && v.motion.ReducedMotion()
}

// SetGraph replaces the graph after a dataset rebuild and restarts the layout
func (v *View) SetGraph(g *graph.Graph) {
	v.stopTour()
	v.graph = g
	v.ctrl.SetGraph(g)
	v.cam.SetViewport(g.Viewport())
	v.sim.Restart()
	v.level = LevelGalaxy
	v.selected = ""
	v.fade = 0
	v.active = true
	v.entranceDone = false
	v.start = v.clock.Now()
	v.log.Debug().Int("nodes", len(g.Nodes)).Msg("graph rebuilt")
	v.wake()
}

// Handle applies one input event and acts on the resulting intent
func (v *View) Handle(ev input.Event) input.Intent {
	switch ev.Type {
	case input.EventResize:
		v.Resize(graph.Viewport{Width: ev.Width, Height: ev.Height, DPR: v.graph.Viewport().DPR})
		return input.Intent{Type: input.IntentRedraw}
	case input.EventVisibility:
		v.SetVisible(ev.Visible)
		return input.Intent{}
	case input.EventPointerMove, input.EventPointerDown:
		v.pointerX, v.pointerY = ev.X, ev.Y
	}

	if v.level == LevelDomain {
		return v.handleDomain(ev)
	}

	it := v.ctrl.Handle(ev)
	switch it.Type {
	case input.IntentRedraw:
		v.wake()
	case input.IntentActivate:
		v.Enter(it.NodeID)
	case input.IntentResetView:
		v.ResetView()
	case input.IntentTour:
		v.TourNext()
	}
	return it
}

// handleDomain accepts only navigation back out while flown in
func (v *View) handleDomain(ev input.Event) input.Intent {
	switch {
	case ev.Type == input.EventQuit, ev.Type == input.EventKey && ev.Key == input.KeyQuit:
		return input.Intent{Type: input.IntentQuit}
	case ev.Type == input.EventKey && (ev.Key == input.KeyEscape || ev.Key == input.KeyResetView):
		v.Back()
		return input.Intent{Type: input.IntentResetView}
	}
	return input.Intent{}
}

// Resize adopts a new viewport; a zero size is ignored until a real one arrives
func (v *View) Resize(vp graph.Viewport) {
	if !vp.Valid() {
		v.log.Debug().Msg("resize deferred on zero viewport")
		return
	}
	wasPending := v.graph.Pending()
	v.graph.Resize(vp)
	v.cam.SetViewport(vp)
	if wasPending {
		v.start = v.clock.Now()
		v.entranceDone = false
	}
	v.sim.Reheat(v.cfg.Physics.ReheatDrag)
	v.wake()
}

// SetVisible pauses the view clock while hidden so tweens and fades resume in place
func (v *View) SetVisible(visible bool) {
	if visible == v.visible {
		return
	}
	v.visible = visible
	if visible {
		v.clock.Resume()
		v.wake()
	} else {
		v.clock.Pause()
	}
	v.log.Debug().Bool("visible", visible).Msg("visibility changed")
}

// SetActive marks whether this view is the one on screen
func (v *View) SetActive(active bool) {
	if active == v.active {
		return
	}
	v.active = active
	if active {
		v.wake()
	}
	v.log.Debug().Bool("active", active).Msg("view activation changed")
}

// Enter resolves an activation: notify the navigator and fly into the node
func (v *View) Enter(id string) {
	if v.level != LevelGalaxy {
		return
	}
	n := v.graph.Node(id)
	if n == nil {
		return
	}
	v.stopTour()
	v.level = LevelDomain
	v.selected = id
	v.fade = 0

	v.cues.Bell()
	if v.nav != nil {
		v.nav(id)
	}

	v.cues.Whoosh()
	v.cam.FlyIn(n, v.cfg.Camera.FlyInDuration.Duration,
		func(p float64) { v.fade = p },
		func() {
			v.active = false
			v.log.Debug().Str("node", id).Msg("fly-in complete, view deactivated")
		},
	)
	v.wake()
}

// Back flies out to the overview and reactivates the view
func (v *View) Back() {
	if v.level != LevelDomain {
		return
	}
	v.level = LevelGalaxy
	v.active = true
	v.cues.Whoosh()
	v.cam.FlyOut(v.cfg.Camera.FlyOutDuration.Duration,
		func(p float64) { v.fade = 1 - p },
		func() {
			v.selected = ""
			v.fade = 0
		},
	)
	v.wake()
}

// ResetView returns to the overview framing from any state
func (v *View) ResetView() {
	if v.level == LevelDomain {
		v.Back()
		return
	}
	v.stopTour()
	v.cam.FlyOut(v.cfg.Camera.FlyOutDuration.Duration, nil, nil)
	v.wake()
}

// TourNext pans to the next node left to right, ending with a return to overview
func (v *View) TourNext() {
	if v.level != LevelGalaxy {
		return
	}
	if v.tour == nil {
		sorted := v.graph.SortedByX()
		v.tour = make([]string, len(sorted))
		for i, n := range sorted {
			v.tour[i] = n.ID
		}
		v.tourIdx = -1
		v.ctrl.SetTourActive(true)
		v.log.Debug().Int("stops", len(v.tour)).Msg("tour started")
	}

	v.tourIdx++
	if v.tourIdx >= len(v.tour) {
		v.stopTour()
		v.cam.FlyOut(v.cfg.Camera.FlyOutDuration.Duration, nil, nil)
		v.wake()
		return
	}
	if n := v.graph.Node(v.tour[v.tourIdx]); n != nil {
		v.cam.PanTo(n, nil)
	}
	v.wake()
}

func (v *View) stopTour() {
	if v.tour == nil {
		return
	}
	v.tour = nil
	v.tourIdx = 0
	v.ctrl.SetTourActive(false)
	v.log.Debug().Msg("tour ended")
}

// driftEligible reports whether idle drift replaces the settled integrator this frame
func (v *View) driftEligible(reduced bool) bool {
	return v.cfg.Drift.Enabled &&
		!reduced &&
		v.level == LevelGalaxy &&
		v.sim.Settled() &&
		!v.ctrl.Dragging()
}

// ParkReason returns why the loop may stop, or ParkNone while frames are still needed
func (v *View) ParkReason() ParkReason {
	switch {
	case !v.visible:
		return ParkHidden
	case v.graph.Pending():
		return ParkPending
	case v.dirty:
		return ParkNone
	case !v.active:
		return ParkInactive
	case !v.sim.Settled(),
		v.cam.Animating(),
		v.ctrl.Dragging(),
		v.ctrl.Hovered() != nil,
		!v.entranceDone:
		return ParkNone
	case v.driftEligible(v.reducedMotion()):
		return ParkNone
	}
	return ParkIdle
}

// NeedsFrame reports whether the loop must stay armed
func (v *View) NeedsFrame() bool {
	return v.ParkReason() == ParkNone
}

// Frame advances one display frame: physics, then camera, then render
func (v *View) Frame(now time.Time) bool {
	if v.graph.Pending() {
		return false
	}
	reduced := v.reducedMotion()

	if v.sim.Tick(v.graph) {
		v.obs.IntegratorTick(v.sim.Alpha())
	} else if v.driftEligible(reduced) {
		v.obs.DriftTick(v.drift.Tick(v.graph))
	}
	if s := v.sim.Settled(); s != v.settled {
		v.settled = s
		v.obs.SettledChanged(s)
		v.log.Debug().Bool("settled", s).Uint64("ticks", v.sim.Ticks()).Msg("layout energy changed")
	}

	v.cam.Step(now)
	v.updateEntrance(now, reduced)

	f := v.snapshot(now, reduced)
	if err := v.renderer.Render(f); err != nil {
		v.log.Warn().Err(err).Msg("render failed")
	}
	v.dirty = false
	v.frames++
	v.obs.FrameRendered()
	return true
}

func (v *View) updateEntrance(now time.Time, reduced bool) {
	if v.entranceDone {
		return
	}
	elapsed := now.Sub(v.start)
	d := v.cfg.Layout.EntranceDuration.Duration
	if reduced {
		d = 0
	}
	done := true
	for _, n := range v.graph.Nodes {
		n.UpdateEntrance(elapsed, d)
		if n.EntranceAlpha < 1 {
			done = false
		}
	}
	v.entranceDone = done
}
