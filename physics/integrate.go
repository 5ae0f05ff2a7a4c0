package physics

import (
	"github.com/lixenwraith/galaxy/graph"
	"github.com/lixenwraith/galaxy/vmath"
)

// integrate applies friction, advances positions and clamps into bounds
// A pinned node snaps to its pin with zero velocity and is exempt from clamping
func (s *Simulation) integrate(g *graph.Graph) {
	for _, n := range g.Nodes {
		if n.Pinned {
			n.X, n.Y = n.FX, n.FY
			n.VX, n.VY = 0, 0
			continue
		}

		n.VX *= s.cfg.Friction
		n.VY *= s.cfg.Friction
		if !vmath.Finite(n.VX) || !vmath.Finite(n.VY) {
			n.VX, n.VY = 0, 0
		}
		n.X += n.VX
		n.Y += n.VY

		minX, maxX, minY, maxY := g.Bounds(n.Radius, s.cfg.BoundaryMargin)
		n.X = vmath.Clamp(n.X, minX, maxX)
		n.Y = vmath.Clamp(n.Y, minY, maxY)
	}
}
