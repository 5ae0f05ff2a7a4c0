package camera

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/galaxy/clock"
	"github.com/lixenwraith/galaxy/config"
	"github.com/lixenwraith/galaxy/graph"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newCamera(t *testing.T, opts ...Option) (*Camera, *clock.Mock) {
	t.Helper()
	clk := clock.NewMock(epoch)
	c := New(config.Default().Camera, clk, opts...)
	c.SetViewport(graph.Viewport{Width: 1200, Height: 800})
	return c, clk
}

func TestAnimateToEasesAndCenters(t *testing.T) {
	c, clk := newCamera(t)
	nodeB := &graph.Node{ID: "B", X: 300, Y: 450, Radius: 30}

	done := 0
	id := c.AnimateTo(nodeB, 800*time.Millisecond, 1.4, func() { done++ })
	require.NotZero(t, id)
	require.True(t, c.Animating())

	assert.True(t, c.Step(clk.Now()))
	z0 := c.State().Zoom
	assert.InDelta(t, 1.0, z0, 1e-12)

	assert.True(t, c.Step(clk.Now().Add(400*time.Millisecond)))
	z1 := c.State().Zoom
	assert.Greater(t, z1, z0)
	assert.Less(t, z1, 1.4)
	// Ease-out covers 87.5% of the way by the midpoint
	assert.InDelta(t, 1+0.4*0.875, z1, 1e-9)

	assert.False(t, c.Step(clk.Now().Add(800*time.Millisecond)))
	s := c.State()
	assert.InDelta(t, 1.4, s.Zoom, 1e-9)
	assert.InDelta(t, 600.0, nodeB.X*s.Zoom+s.PanX, 1e-9)
	assert.InDelta(t, 400.0, nodeB.Y*s.Zoom+s.PanY, 1e-9)
	assert.Equal(t, 1, done)
	assert.False(t, c.Animating())

	// Further steps are inert and never re-fire completion
	assert.False(t, c.Step(clk.Now().Add(time.Second)))
	assert.Equal(t, 1, done)
}

func TestReducedMotionFlyInCompletesImmediately(t *testing.T) {
	renders := 0
	c, _ := newCamera(t,
		WithReducedMotion(MotionFunc(func() bool { return true })),
		WithObserver(ObserverFunc(func(State) { renders++ })),
	)
	nodeC := &graph.Node{ID: "C", X: 500, Y: 300, Radius: 30}

	var progress []float64
	completed := false
	id := c.FlyIn(nodeC, time.Second, func(p float64) { progress = append(progress, p) }, func() { completed = true })

	assert.Zero(t, id)
	assert.Equal(t, []float64{1}, progress)
	assert.True(t, completed)
	assert.Equal(t, 1, renders)
	assert.False(t, c.Animating())

	// Final framing is applied, capped at the fly-in maximum
	s := c.State()
	assert.InDelta(t, 5.0, s.Zoom, 1e-9)
	assert.InDelta(t, 600.0, nodeC.X*s.Zoom+s.PanX, 1e-9)
}

func TestReducedMotionReadFresh(t *testing.T) {
	reduced := false
	c, clk := newCamera(t, WithReducedMotion(MotionFunc(func() bool { return reduced })))
	n := &graph.Node{X: 100, Y: 100, Radius: 20}

	assert.NotZero(t, c.PanTo(n, nil))
	assert.True(t, c.Animating())

	reduced = true
	assert.Zero(t, c.FlyOut(time.Second, nil, nil))
	assert.False(t, c.Animating())
	assert.Equal(t, Identity(), c.State())
	assert.False(t, c.Step(clk.Now()))
}

func TestNewTweenCancelsPrevious(t *testing.T) {
	c, clk := newCamera(t)
	a := &graph.Node{X: 100, Y: 100, Radius: 20}
	b := &graph.Node{X: 900, Y: 600, Radius: 20}

	firstDone := false
	first := c.AnimateTo(a, 800*time.Millisecond, 2, func() { firstDone = true })
	c.Step(clk.Now().Add(200 * time.Millisecond))

	secondDone := false
	second := c.AnimateTo(b, 800*time.Millisecond, 1.4, func() { secondDone = true })
	assert.NotEqual(t, first, second)
	assert.False(t, c.CancelTween(first))

	c.Step(clk.Now().Add(2 * time.Second))
	assert.False(t, firstDone)
	assert.True(t, secondDone)
	s := c.State()
	assert.InDelta(t, 600.0, b.X*s.Zoom+s.PanX, 1e-9)
}

func TestCancelTweenByID(t *testing.T) {
	c, clk := newCamera(t)
	n := &graph.Node{X: 100, Y: 100, Radius: 20}

	fired := false
	id := c.AnimateTo(n, time.Second, 2, func() { fired = true })
	assert.True(t, c.CancelTween(id))
	assert.False(t, c.Step(clk.Now().Add(2*time.Second)))
	assert.False(t, fired)
	assert.Equal(t, Identity(), c.State())
}

func TestFlyOutReportsProgress(t *testing.T) {
	c, clk := newCamera(t)
	c.ZoomAt(600, 400, 2)

	var progress []float64
	done := false
	c.FlyOut(700*time.Millisecond, func(p float64) { progress = append(progress, p) }, func() { done = true })

	for i := 0; i <= 7; i++ {
		c.Step(clk.Now().Add(time.Duration(i) * 100 * time.Millisecond))
	}
	require.Len(t, progress, 8)
	for i := 1; i < len(progress); i++ {
		assert.GreaterOrEqual(t, progress[i], progress[i-1])
	}
	assert.Equal(t, 1.0, progress[len(progress)-1])
	assert.True(t, done)
	assert.Equal(t, Identity(), c.State())
}

func TestZoomAtKeepsPointFixed(t *testing.T) {
	c, _ := newCamera(t)
	c.PanBy(37, -12)

	gx, gy := c.State().ScreenToGraph(420, 310)
	c.ZoomAt(420, 310, 1.1)
	c.ZoomAt(420, 310, 1.1)

	sx, sy := c.State().GraphToScreen(gx, gy)
	assert.InDelta(t, 420.0, sx, 1e-9)
	assert.InDelta(t, 310.0, sy, 1e-9)
	assert.InDelta(t, 1.21, c.State().Zoom, 1e-9)
}

func TestZoomAtClamps(t *testing.T) {
	c, _ := newCamera(t)
	for i := 0; i < 100; i++ {
		c.ZoomAt(0, 0, 1.1)
	}
	assert.Equal(t, 3.0, c.State().Zoom)

	for i := 0; i < 100; i++ {
		c.ZoomAt(0, 0, 0.9)
	}
	assert.Equal(t, 0.3, c.State().Zoom)

	c.ZoomAt(0, 0, 0)
	assert.Equal(t, 0.3, c.State().Zoom)
}

func TestResetCancelsAndSnaps(t *testing.T) {
	c, _ := newCamera(t)
	c.ZoomAt(100, 100, 2)
	c.AnimateTo(&graph.Node{X: 10, Y: 10, Radius: 10}, time.Second, 2, nil)

	c.Reset()
	assert.False(t, c.Animating())
	assert.Equal(t, State{Zoom: 1}, c.State())
}

func TestObserversSeeEveryStep(t *testing.T) {
	var graphLayer, particleLayer []State
	c, clk := newCamera(t,
		WithObserver(ObserverFunc(func(s State) { graphLayer = append(graphLayer, s) })),
	)
	c.AddObserver(ObserverFunc(func(s State) { particleLayer = append(particleLayer, s) }))

	c.AnimateTo(&graph.Node{X: 10, Y: 10, Radius: 10}, 100*time.Millisecond, 2, nil)
	c.Step(clk.Now().Add(50 * time.Millisecond))
	c.Step(clk.Now().Add(100 * time.Millisecond))

	require.Len(t, graphLayer, 2)
	assert.Equal(t, graphLayer, particleLayer)
}
