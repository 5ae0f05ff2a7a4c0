package physics

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/galaxy/config"
	"github.com/lixenwraith/galaxy/graph"
	"github.com/lixenwraith/galaxy/vmath"
)

func cycleGraph(t *testing.T, vp graph.Viewport) *graph.Graph {
	t.Helper()
	ds := &graph.Dataset{
		Domains: []graph.Domain{
			{ID: "A", Connections: []graph.Connection{{Target: "B"}}},
			{ID: "B", Connections: []graph.Connection{{Target: "C"}}},
			{ID: "C", Connections: []graph.Connection{{Target: "D"}}},
			{ID: "D", Connections: []graph.Connection{{Target: "A"}}},
		},
	}
	g := graph.Build(ds, config.Default().Layout, vp, graph.WithRand(rand.New(rand.NewSource(42))))
	require.Len(t, g.Edges, 4)
	return g
}

func fastPhysics() config.PhysicsConfig {
	cfg := config.Default().Physics
	cfg.AlphaDecay = 0.985
	return cfg
}

func TestCycleSettlesWithoutOverlap(t *testing.T) {
	g := cycleGraph(t, graph.Viewport{Width: 1200, Height: 900})
	sim := NewSimulation(fastPhysics())

	for i := 0; i < 500; i++ {
		sim.Tick(g)
	}

	assert.Less(t, sim.Alpha(), 1e-3)
	assert.True(t, sim.Settled())
	assert.Zero(t, Overlaps(g.Nodes, 0, 0))
	for _, n := range g.Nodes {
		assert.True(t, vmath.Finite(n.X) && vmath.Finite(n.Y), "node %s not finite", n.ID)
	}
}

func TestAlphaMonotonicAndSticky(t *testing.T) {
	g := cycleGraph(t, graph.Viewport{Width: 1200, Height: 900})
	sim := NewSimulation(fastPhysics())

	prev := sim.Alpha()
	for i := 0; i < 600; i++ {
		sim.Tick(g)
		require.LessOrEqual(t, sim.Alpha(), prev)
		prev = sim.Alpha()
	}
	require.True(t, sim.Settled())

	// Settled ticks are no-ops
	before := make([]float64, len(g.Nodes))
	for i, n := range g.Nodes {
		before[i] = n.X
	}
	assert.False(t, sim.Tick(g))
	assert.Equal(t, prev, sim.Alpha())
	for i, n := range g.Nodes {
		assert.Equal(t, before[i], n.X)
	}

	sim.Reheat(0.3)
	assert.False(t, sim.Settled())
	assert.Equal(t, 0.3, sim.Alpha())

	// Reheat never lowers energy
	sim.Reheat(0.1)
	assert.Equal(t, 0.3, sim.Alpha())
}

func TestPinnedNodeHoldsAcrossTicks(t *testing.T) {
	g := cycleGraph(t, graph.Viewport{Width: 1200, Height: 900})
	sim := NewSimulation(config.Default().Physics)

	a := g.Node("A")
	a.Pin(100, 100)
	sim.Reheat(0.3)
	assert.Equal(t, 100.0, a.X)
	assert.Equal(t, 100.0, a.Y)

	for i := 0; i < 10; i++ {
		sim.Tick(g)
		require.Equal(t, 100.0, a.X, "tick %d", i)
		require.Equal(t, 100.0, a.Y, "tick %d", i)
		require.Zero(t, a.VX)
		require.Zero(t, a.VY)
	}

	a.Unpin()
	sim.Reheat(0.1)
	assert.False(t, a.Pinned)
	sim.Tick(g)
	moved := a.X != 100 || a.Y != 100
	assert.True(t, moved, "released node should move within one tick")
}

func TestCoincidentNodesStayFinite(t *testing.T) {
	ds := &graph.Dataset{Domains: []graph.Domain{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	g := graph.Build(ds, config.Default().Layout, graph.Viewport{Width: 1200, Height: 900})
	for _, n := range g.Nodes {
		n.X, n.Y = 600, 500
	}

	sim := NewSimulation(config.Default().Physics)
	for i := 0; i < 50; i++ {
		sim.Tick(g)
	}
	for _, n := range g.Nodes {
		assert.True(t, vmath.Finite(n.X) && vmath.Finite(n.Y))
		assert.True(t, vmath.Finite(n.VX) && vmath.Finite(n.VY))
	}
	assert.Positive(t, vmath.Distance(g.Nodes[1].X-g.Nodes[0].X, g.Nodes[1].Y-g.Nodes[0].Y))
}

func TestMissingEdgeEndpointIsSkipped(t *testing.T) {
	g := cycleGraph(t, graph.Viewport{Width: 1200, Height: 900})
	g.Edges = append(g.Edges, graph.Edge{Source: "A", Target: "ghost"})

	sim := NewSimulation(config.Default().Physics)
	assert.NotPanics(t, func() {
		for i := 0; i < 5; i++ {
			sim.Tick(g)
		}
	})
}

func TestPendingViewportDefersTicks(t *testing.T) {
	g := cycleGraph(t, graph.Viewport{})
	sim := NewSimulation(config.Default().Physics)

	assert.False(t, sim.Tick(g))
	assert.Equal(t, 1.0, sim.Alpha())

	g.Resize(graph.Viewport{Width: 800, Height: 700})
	assert.True(t, sim.Tick(g))
}

func TestNodesStayInsideChrome(t *testing.T) {
	g := cycleGraph(t, graph.Viewport{Width: 1200, Height: 900})
	cfg := config.Default().Physics
	sim := NewSimulation(cfg)

	for i := 0; i < 200; i++ {
		sim.Tick(g)
		for _, n := range g.Nodes {
			minX, maxX, minY, maxY := g.Bounds(n.Radius, cfg.BoundaryMargin)
			require.GreaterOrEqual(t, n.X, minX)
			require.LessOrEqual(t, n.X, maxX)
			require.GreaterOrEqual(t, n.Y, minY)
			require.LessOrEqual(t, n.Y, maxY)
		}
	}
}

func settledCycle(t *testing.T) *graph.Graph {
	t.Helper()
	g := cycleGraph(t, graph.Viewport{Width: 1200, Height: 900})
	sim := NewSimulation(fastPhysics())
	for !sim.Settled() {
		sim.Tick(g)
	}
	return g
}

func TestDriftNeverOverlaps(t *testing.T) {
	g := settledCycle(t)
	cfg := config.Default()
	drift := NewDrift(cfg.Drift, cfg.Physics.BoundaryMargin)

	for i := 0; i < 2000; i++ {
		drift.Tick(g)
		require.Zero(t, Overlaps(g.Nodes, cfg.Drift.CollisionGap, 1e-6), "tick %d", i)
	}
}

func TestDriftKeepsMoving(t *testing.T) {
	g := settledCycle(t)
	cfg := config.Default()
	drift := NewDrift(cfg.Drift, cfg.Physics.BoundaryMargin)

	a := g.Node("A")
	x, y := a.X, a.Y
	for i := 0; i < 100; i++ {
		drift.Tick(g)
	}
	assert.False(t, a.X == x && a.Y == y, "drift should rotate the layout")
}

func TestDriftResolvesPackedCluster(t *testing.T) {
	ds := &graph.Dataset{}
	for i := 0; i < 5; i++ {
		ds.Domains = append(ds.Domains, graph.Domain{ID: fmt.Sprintf("n%d", i)})
	}
	g := graph.Build(ds, config.Default().Layout, graph.Viewport{Width: 2000, Height: 1600})
	_, cy := g.Focal()
	for i, n := range g.Nodes {
		n.Radius = 30
		n.X = 900 + float64(i)*50
		n.Y = cy
		n.VX, n.VY = 0, 0
	}
	// Head-on approach on the first pair
	g.Nodes[0].VX = 0.4
	g.Nodes[1].VX = -0.4

	cfg := config.Default()
	cfg.Drift.SolverMaxIterations = 64
	drift := NewDrift(cfg.Drift, cfg.Physics.BoundaryMargin)

	stats := drift.Tick(g)
	assert.Positive(t, stats.Corrections)
	assert.GreaterOrEqual(t, stats.Passes, cfg.Drift.SolverIterations)
	assert.Zero(t, Overlaps(g.Nodes, cfg.Drift.CollisionGap, 1e-3))

	for i := 0; i < 50; i++ {
		drift.Tick(g)
		require.Zero(t, Overlaps(g.Nodes, cfg.Drift.CollisionGap, 1e-3), "tick %d", i)
	}
}

func TestDriftRespectsSpeedCap(t *testing.T) {
	g := settledCycle(t)
	cfg := config.Default()
	drift := NewDrift(cfg.Drift, cfg.Physics.BoundaryMargin)
	for _, n := range g.Nodes {
		n.VX, n.VY = 30, -40
	}

	drift.Tick(g)
	for _, n := range g.Nodes {
		assert.LessOrEqual(t, vmath.Distance(n.VX, n.VY), cfg.Drift.MaxSpeed+1e-9)
	}
}
