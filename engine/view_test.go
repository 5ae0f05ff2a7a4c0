package engine

import (
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/galaxy/camera"
	"github.com/lixenwraith/galaxy/clock"
	"github.com/lixenwraith/galaxy/config"
	"github.com/lixenwraith/galaxy/graph"
	"github.com/lixenwraith/galaxy/input"
	"github.com/lixenwraith/galaxy/physics"
	"github.com/lixenwraith/galaxy/render"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type countingObserver struct {
	frames, ticks, drifts atomic.Int64
	settled, parks, arms  atomic.Int64
}

func (o *countingObserver) FrameRendered()               { o.frames.Add(1) }
func (o *countingObserver) IntegratorTick(float64)       { o.ticks.Add(1) }
func (o *countingObserver) DriftTick(physics.DriftStats) { o.drifts.Add(1) }
func (o *countingObserver) SettledChanged(bool)          { o.settled.Add(1) }
func (o *countingObserver) LoopParked(ParkReason)        { o.parks.Add(1) }
func (o *countingObserver) LoopArmed()                   { o.arms.Add(1) }

type recordingCues struct {
	bells, whooshes int
}

func (c *recordingCues) Bell()   { c.bells++ }
func (c *recordingCues) Whoosh() { c.whooshes++ }

type viewFixture struct {
	cfg     *config.Config
	clk     *clock.Mock
	view    *View
	obs     *countingObserver
	cues    *recordingCues
	reduced bool
	frames  []*render.Frame
	nav     []string
}

func cycleDataset() *graph.Dataset {
	return &graph.Dataset{
		Name: "cycle",
		Domains: []graph.Domain{
			{ID: "A", Name: "Alpha", Description: "first", Connections: []graph.Connection{{Target: "B"}}},
			{ID: "B", Name: "Beta", Connections: []graph.Connection{{Target: "C"}}},
			{ID: "C", Name: "Gamma", Connections: []graph.Connection{{Target: "D"}}},
			{ID: "D", Name: "Delta", Connections: []graph.Connection{{Target: "A"}}},
		},
	}
}

func fastConfig() *config.Config {
	cfg := config.Default()
	cfg.Physics.AlphaDecay = 0.8
	cfg.Drift.Enabled = false
	cfg.Layout.EntranceStagger = config.D(0)
	cfg.Layout.EntranceDuration = config.D(0)
	return cfg
}

func newViewFixture(t *testing.T, cfg *config.Config, vp graph.Viewport) *viewFixture {
	t.Helper()
	f := &viewFixture{
		cfg:  cfg,
		clk:  clock.NewMock(epoch),
		obs:  &countingObserver{},
		cues: &recordingCues{},
	}
	g := graph.Build(cycleDataset(), cfg.Layout, vp, graph.WithRand(rand.New(rand.NewSource(11))))
	f.view = NewView(g, cfg,
		WithClock(f.clk),
		WithObserver(f.obs),
		WithCues(f.cues),
		WithReducedMotion(camera.MotionFunc(func() bool { return f.reduced })),
		WithNavigator(func(id string) { f.nav = append(f.nav, id) }),
		WithRenderer(render.RendererFunc(func(fr *render.Frame) error {
			f.frames = append(f.frames, fr)
			return nil
		})),
	)
	return f
}

func (f *viewFixture) step(d time.Duration) bool {
	f.clk.Advance(d)
	return f.view.Frame(f.view.Clock().Now())
}

func (f *viewFixture) settle(t *testing.T) {
	t.Helper()
	for i := 0; i < 1000 && !f.view.Simulation().Settled(); i++ {
		f.step(16 * time.Millisecond)
	}
	require.True(t, f.view.Simulation().Settled())
	f.step(16 * time.Millisecond)
}

func TestFrameRendersPhysicsResult(t *testing.T) {
	f := newViewFixture(t, fastConfig(), graph.Viewport{Width: 1200, Height: 900})

	require.True(t, f.step(16*time.Millisecond))
	require.Len(t, f.frames, 1)

	fr := f.frames[0]
	assert.Equal(t, 1200.0, fr.Width)
	require.Len(t, fr.Nodes, 4)
	require.Len(t, fr.Edges, 4)

	s := f.view.Camera().State()
	for i, n := range f.view.Graph().Nodes {
		sx, sy := s.GraphToScreen(n.X, n.Y)
		assert.InDelta(t, sx, fr.Nodes[i].X, 1e-9)
		assert.InDelta(t, sy, fr.Nodes[i].Y, 1e-9)
	}
	assert.Equal(t, int64(1), f.obs.ticks.Load())
	assert.Equal(t, int64(1), f.obs.frames.Load())
}

func TestSnapshotDoesNotAliasGraph(t *testing.T) {
	f := newViewFixture(t, fastConfig(), graph.Viewport{Width: 1200, Height: 900})
	f.step(16 * time.Millisecond)

	x := f.frames[0].Nodes[0].X
	f.view.Graph().Nodes[0].X += 500
	assert.Equal(t, x, f.frames[0].Nodes[0].X)
}

func TestViewParksWhenSettled(t *testing.T) {
	f := newViewFixture(t, fastConfig(), graph.Viewport{Width: 1200, Height: 900})
	assert.True(t, f.view.NeedsFrame())

	f.settle(t)
	assert.Equal(t, ParkIdle, f.view.ParkReason())
	assert.Equal(t, int64(1), f.obs.settled.Load())
}

func TestDriftKeepsViewArmed(t *testing.T) {
	cfg := fastConfig()
	cfg.Drift.Enabled = true
	f := newViewFixture(t, cfg, graph.Viewport{Width: 1200, Height: 900})
	f.settle(t)

	assert.Equal(t, ParkNone, f.view.ParkReason())
	f.step(16 * time.Millisecond)
	assert.Positive(t, f.obs.drifts.Load())
	assert.Contains(t, f.frames[len(f.frames)-1].Status, "drifting")

	// Reduced motion disables drift, read fresh
	f.reduced = true
	assert.Equal(t, ParkIdle, f.view.ParkReason())
}

func TestDriftPausesWhileDragging(t *testing.T) {
	cfg := fastConfig()
	cfg.Drift.Enabled = true
	f := newViewFixture(t, cfg, graph.Viewport{Width: 1200, Height: 900})
	f.settle(t)

	a := f.view.Graph().Node("A")
	sx, sy := f.view.Camera().State().GraphToScreen(a.X, a.Y)
	f.view.Handle(input.Event{Type: input.EventPointerDown, X: sx, Y: sy})
	require.True(t, f.view.Controller().Dragging())

	drifts := f.obs.drifts.Load()
	f.step(16 * time.Millisecond)
	assert.Equal(t, drifts, f.obs.drifts.Load())
	assert.Equal(t, ParkNone, f.view.ParkReason())
}

func TestHiddenViewParksAndPausesClock(t *testing.T) {
	f := newViewFixture(t, fastConfig(), graph.Viewport{Width: 1200, Height: 900})

	f.view.Handle(input.Event{Type: input.EventVisibility, Visible: false})
	assert.Equal(t, ParkHidden, f.view.ParkReason())

	before := f.view.Clock().Now()
	f.clk.Advance(time.Minute)
	assert.Equal(t, before, f.view.Clock().Now())

	f.view.Handle(input.Event{Type: input.EventVisibility, Visible: true})
	assert.True(t, f.view.NeedsFrame())
	assert.Equal(t, before, f.view.Clock().Now())
}

func TestEnterFliesInAndDeactivates(t *testing.T) {
	f := newViewFixture(t, fastConfig(), graph.Viewport{Width: 1200, Height: 900})
	f.settle(t)

	f.view.Enter("B")
	assert.Equal(t, LevelDomain, f.view.Level())
	assert.Equal(t, []string{"B"}, f.nav)
	assert.Equal(t, 1, f.cues.bells)
	assert.Equal(t, 1, f.cues.whooshes)
	assert.True(t, f.view.Camera().Animating())

	half := f.cfg.Camera.FlyInDuration.Duration / 2
	f.step(half)
	mid := f.frames[len(f.frames)-1]
	for _, n := range mid.Nodes {
		if n.ID == "B" {
			assert.True(t, n.Selected)
			assert.InDelta(t, 1.0, n.Alpha, 1e-9)
		} else {
			assert.Less(t, n.Alpha, 1.0)
		}
	}

	f.step(half)
	assert.False(t, f.view.Camera().Animating())
	assert.False(t, f.view.Active())
	assert.Equal(t, ParkInactive, f.view.ParkReason())

	// Re-entering while flown in is ignored
	f.view.Enter("C")
	assert.Equal(t, "B", f.view.Selected())
}

func TestReducedMotionEnterRendersOnce(t *testing.T) {
	f := newViewFixture(t, fastConfig(), graph.Viewport{Width: 1200, Height: 900})
	f.settle(t)
	f.reduced = true

	f.view.Enter("C")
	assert.False(t, f.view.Camera().Animating())
	assert.False(t, f.view.Active())
	assert.True(t, f.view.NeedsFrame())

	frames := len(f.frames)
	f.step(0)
	assert.Len(t, f.frames, frames+1)
	assert.Equal(t, ParkInactive, f.view.ParkReason())
}

func TestBackReactivatesAndClearsSelection(t *testing.T) {
	f := newViewFixture(t, fastConfig(), graph.Viewport{Width: 1200, Height: 900})
	f.settle(t)
	f.view.Enter("A")
	f.step(f.cfg.Camera.FlyInDuration.Duration)

	intent := f.view.Handle(input.Event{Type: input.EventKey, Key: input.KeyEscape})
	assert.Equal(t, input.IntentResetView, intent.Type)
	assert.Equal(t, LevelGalaxy, f.view.Level())
	assert.True(t, f.view.Active())

	f.step(f.cfg.Camera.FlyOutDuration.Duration)
	assert.Empty(t, f.view.Selected())
	assert.Equal(t, camera.Identity(), f.view.Camera().State())
	assert.Equal(t, 2, f.cues.whooshes)
}

func TestDomainLevelIgnoresPointer(t *testing.T) {
	f := newViewFixture(t, fastConfig(), graph.Viewport{Width: 1200, Height: 900})
	f.settle(t)
	f.view.Enter("A")

	intent := f.view.Handle(input.Event{Type: input.EventPointerDown, X: 10, Y: 10})
	assert.Equal(t, input.IntentNone, intent.Type)
	assert.Equal(t, input.StateIdle, f.view.Controller().State())

	intent = f.view.Handle(input.Event{Type: input.EventKey, Key: input.KeyQuit})
	assert.Equal(t, input.IntentQuit, intent.Type)
}

func TestZeroViewportDefersUntilResize(t *testing.T) {
	f := newViewFixture(t, fastConfig(), graph.Viewport{})

	assert.False(t, f.step(16*time.Millisecond))
	assert.Equal(t, ParkPending, f.view.ParkReason())

	f.view.Handle(input.Event{Type: input.EventResize})
	assert.Equal(t, ParkPending, f.view.ParkReason())

	f.view.Handle(input.Event{Type: input.EventResize, Width: 800, Height: 600})
	assert.False(t, f.view.Graph().Pending())
	assert.True(t, f.step(16*time.Millisecond))
	for _, n := range f.view.Graph().Nodes {
		assert.Greater(t, n.X, 0.0)
		assert.Greater(t, n.Y, 0.0)
	}
}

func TestResizeReheats(t *testing.T) {
	f := newViewFixture(t, fastConfig(), graph.Viewport{Width: 1200, Height: 900})
	f.settle(t)

	f.view.Resize(graph.Viewport{Width: 500, Height: 500})
	assert.False(t, f.view.Simulation().Settled())
	assert.GreaterOrEqual(t, f.view.Simulation().Alpha(), f.cfg.Physics.ReheatDrag)
	assert.True(t, f.view.Graph().Small())
}

func TestEntranceCompletesBeforeParking(t *testing.T) {
	cfg := fastConfig()
	cfg.Layout.EntranceStagger = config.D(50 * time.Millisecond)
	cfg.Layout.EntranceDuration = config.D(400 * time.Millisecond)
	f := newViewFixture(t, cfg, graph.Viewport{Width: 1200, Height: 900})

	for i := 0; i < 200 && !f.view.Simulation().Settled(); i++ {
		f.step(time.Millisecond)
	}
	require.True(t, f.view.Simulation().Settled())
	assert.Equal(t, ParkNone, f.view.ParkReason(), "entrance still fading")

	f.step(time.Second)
	assert.Equal(t, ParkIdle, f.view.ParkReason())
	for _, n := range f.frames[len(f.frames)-1].Nodes {
		assert.InDelta(t, 1.0, n.Alpha, 1e-9)
	}
}

func TestHoverDimsOthersAndHighlightsEdges(t *testing.T) {
	f := newViewFixture(t, fastConfig(), graph.Viewport{Width: 1200, Height: 900})
	f.settle(t)

	a := f.view.Graph().Node("A")
	sx, sy := f.view.Camera().State().GraphToScreen(a.X, a.Y)
	f.view.Handle(input.Event{Type: input.EventPointerMove, X: sx, Y: sy})
	require.Equal(t, a, f.view.Controller().Hovered())
	assert.Equal(t, ParkNone, f.view.ParkReason())

	f.step(16 * time.Millisecond)
	fr := f.frames[len(f.frames)-1]
	require.NotNil(t, fr.Tooltip)
	assert.Equal(t, "Alpha", fr.Tooltip.Title)
	assert.Equal(t, "first", fr.Tooltip.Body)

	for _, n := range fr.Nodes {
		if n.ID == "A" {
			assert.True(t, n.Hovered)
			assert.InDelta(t, 1.0, n.Alpha, 1e-9)
		} else {
			assert.Less(t, n.Alpha, 1.0)
		}
	}
	highlighted := 0
	for _, e := range fr.Edges {
		if e.Highlight {
			highlighted++
		}
	}
	assert.Equal(t, 2, highlighted)
}

func TestTourStepsLeftToRightThenReturns(t *testing.T) {
	f := newViewFixture(t, fastConfig(), graph.Viewport{Width: 1200, Height: 900})
	f.settle(t)

	f.view.Handle(input.Event{Type: input.EventKey, Key: input.KeyTour})
	require.True(t, f.view.Touring())
	assert.True(t, f.view.Camera().Animating())

	// Activation is suppressed while the tour drives the camera
	f.view.Handle(input.Event{Type: input.EventKey, Key: input.KeyTab})
	intent := f.view.Handle(input.Event{Type: input.EventKey, Key: input.KeyEnter})
	assert.NotEqual(t, input.IntentActivate, intent.Type)
	assert.Equal(t, LevelGalaxy, f.view.Level())

	for i := 0; i < 4; i++ {
		f.view.TourNext()
	}
	assert.False(t, f.view.Touring())
	f.step(f.cfg.Camera.FlyOutDuration.Duration)
	assert.Equal(t, camera.Identity(), f.view.Camera().State())
}

func TestActivationViaClickNavigates(t *testing.T) {
	f := newViewFixture(t, fastConfig(), graph.Viewport{Width: 1200, Height: 900})
	f.settle(t)

	d := f.view.Graph().Node("D")
	sx, sy := f.view.Camera().State().GraphToScreen(d.X, d.Y)
	f.view.Handle(input.Event{Type: input.EventPointerDown, X: sx, Y: sy})
	intent := f.view.Handle(input.Event{Type: input.EventPointerUp, X: sx, Y: sy})

	assert.Equal(t, input.IntentActivate, intent.Type)
	assert.Equal(t, []string{"D"}, f.nav)
	assert.Equal(t, LevelDomain, f.view.Level())
}

func TestSetGraphRestartsLayout(t *testing.T) {
	f := newViewFixture(t, fastConfig(), graph.Viewport{Width: 1200, Height: 900})
	f.settle(t)

	ds := cycleDataset()
	ds.Domains = ds.Domains[:2]
	g := graph.Build(ds, f.cfg.Layout, graph.Viewport{Width: 1200, Height: 900})
	f.view.SetGraph(g)

	assert.False(t, f.view.Simulation().Settled())
	f.step(16 * time.Millisecond)
	assert.Len(t, f.frames[len(f.frames)-1].Nodes, 2)
}
