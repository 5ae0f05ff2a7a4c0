package hittest

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/galaxy/camera"
	"github.com/lixenwraith/galaxy/graph"
	"github.com/lixenwraith/galaxy/vmath"
)

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		s := camera.State{
			Zoom: 0.3 + rng.Float64()*4.7,
			PanX: (rng.Float64() - 0.5) * 4000,
			PanY: (rng.Float64() - 0.5) * 4000,
		}
		sx, sy := rng.Float64()*2000, rng.Float64()*2000

		gx, gy := ScreenToGraph(s, sx, sy)
		rx, ry := GraphToScreen(s, gx, gy)
		assert.True(t, vmath.ApproxEqual(sx, rx, 1e-9), "x %v -> %v", sx, rx)
		assert.True(t, vmath.ApproxEqual(sy, ry, 1e-9), "y %v -> %v", sy, ry)
	}
}

func TestPickTopmostWins(t *testing.T) {
	below := &graph.Node{ID: "below", X: 200, Y: 200, Radius: 30}
	above := &graph.Node{ID: "above", X: 200, Y: 200, Radius: 30}
	nodes := []*graph.Node{below, above}

	for i := 0; i < 10; i++ {
		assert.Same(t, above, Pick(nodes, camera.Identity(), 200, 200, 1.2))
	}
	assert.Equal(t, 1, PickIndex(nodes, camera.Identity(), 200, 200, 1.2))
}

func TestPickTolerance(t *testing.T) {
	n := &graph.Node{ID: "n", X: 100, Y: 100, Radius: 20}
	nodes := []*graph.Node{n}
	id := camera.Identity()

	// Outside the visual radius but inside the tolerance band
	assert.Same(t, n, Pick(nodes, id, 123, 100, 1.2))
	assert.Nil(t, Pick(nodes, id, 123, 100, 1.0))
	assert.Nil(t, Pick(nodes, id, 125, 100, 1.2))
	assert.Equal(t, -1, PickIndex(nodes, id, 300, 300, 1.2))
}

func TestPickThroughTransform(t *testing.T) {
	n := &graph.Node{ID: "n", X: 100, Y: 100, Radius: 20}
	s := camera.State{Zoom: 2, PanX: 50, PanY: -30}

	sx, sy := GraphToScreen(s, n.X, n.Y)
	assert.Same(t, n, Pick([]*graph.Node{n}, s, sx, sy, 1.2))
	// 30 screen px at zoom 2 is 15 graph px from center
	assert.Same(t, n, Pick([]*graph.Node{n}, s, sx+30, sy, 1.0))
	assert.Nil(t, Pick([]*graph.Node{n}, s, sx+50, sy, 1.2))
}

func TestPickDegenerateZoom(t *testing.T) {
	n := &graph.Node{ID: "n", X: 0, Y: 0, Radius: 20}
	assert.Nil(t, Pick([]*graph.Node{n}, camera.State{Zoom: 0}, 10, 10, 1.2))
}
