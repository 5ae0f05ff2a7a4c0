// Package hittest maps screen coordinates into graph space and picks the topmost node
// All functions are pure and safe to call from renderers
package hittest

import (
	"github.com/lixenwraith/galaxy/camera"
	"github.com/lixenwraith/galaxy/graph"
	"github.com/lixenwraith/galaxy/vmath"
)

// ScreenToGraph converts a screen point through the camera transform
func ScreenToGraph(s camera.State, sx, sy float64) (gx, gy float64) {
	return s.ScreenToGraph(sx, sy)
}

// GraphToScreen converts a graph point through the camera transform
func GraphToScreen(s camera.State, gx, gy float64) (sx, sy float64) {
	return s.GraphToScreen(gx, gy)
}

// Pick returns the topmost node within tolerance*radius of screen point (sx, sy), or nil
// Nodes are scanned back-to-front so the one drawn last wins
func Pick(nodes []*graph.Node, s camera.State, sx, sy, tolerance float64) *graph.Node {
	gx, gy := s.ScreenToGraph(sx, sy)
	if !vmath.Finite(gx) || !vmath.Finite(gy) {
		return nil
	}
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		r := n.Radius * tolerance
		if vmath.DistanceSq(gx-n.X, gy-n.Y) <= r*r {
			return n
		}
	}
	return nil
}

// PickIndex is Pick returning the draw-order index, -1 when nothing matches
func PickIndex(nodes []*graph.Node, s camera.State, sx, sy, tolerance float64) int {
	n := Pick(nodes, s, sx, sy, tolerance)
	if n == nil {
		return -1
	}
	for i := len(nodes) - 1; i >= 0; i-- {
		if nodes[i] == n {
			return i
		}
	}
	return -1
}
