package physics

import (
	"github.com/lixenwraith/galaxy/config"
	"github.com/lixenwraith/galaxy/graph"
	"github.com/lixenwraith/galaxy/parameter"
	"github.com/lixenwraith/galaxy/vmath"
)

// Drift is the idle orbital solver run in place of the integrator once the layout settles
// Callers gate it on settled state, absent drag and reduced motion
type Drift struct {
	cfg      config.DriftConfig
	margin   float64
	sin, cos float64
}

// DriftStats summarizes one drift tick
type DriftStats struct {
	Passes      int
	Corrections int
	WallHits    int
}

// NewDrift returns a solver; margin matches the integrator's boundary margin
func NewDrift(cfg config.DriftConfig, margin float64) *Drift {
	sin, cos := vmath.SinCos(cfg.OrbitSpeed)
	return &Drift{cfg: cfg, margin: margin, sin: sin, cos: cos}
}

// Tick rotates, repels, integrates, projects, damps and reflects, in that order
// After Tick no two nodes overlap unless SolverMaxIterations was exhausted
func (d *Drift) Tick(g *graph.Graph) DriftStats {
	var stats DriftStats
	if g.Pending() || !g.Viewport().Valid() || len(g.Nodes) == 0 {
		return stats
	}

	d.rotate(g)
	d.repel(g.Nodes)

	for _, n := range g.Nodes {
		if n.Pinned {
			continue
		}
		n.X += n.VX
		n.Y += n.VY
	}

	stats.Passes, stats.Corrections = d.resolve(g.Nodes, true)

	for _, n := range g.Nodes {
		if n.Pinned {
			continue
		}
		n.VX *= d.cfg.Damping
		n.VY *= d.cfg.Damping
		n.VX, n.VY = vmath.ClampMagnitude(n.VX, n.VY, d.cfg.MaxSpeed)
		if d.reflect(g, n) {
			stats.WallHits++
		}
	}

	// Wall pushback can reintroduce contact; re-project positions only
	if stats.WallHits > 0 {
		p, c := d.resolve(g.Nodes, false)
		stats.Passes += p
		stats.Corrections += c
	}
	return stats
}

// rotate turns every free node about the focal point by the orbit increment
func (d *Drift) rotate(g *graph.Graph) {
	cx, cy := g.Focal()
	for _, n := range g.Nodes {
		if n.Pinned {
			continue
		}
		n.X, n.Y = vmath.RotateAround(n.X, n.Y, cx, cy, d.cos, d.sin)
	}
}

// repel ramps a preventive force quadratically from zero at the buffer edge to full at contact
func (d *Drift) repel(nodes []*graph.Node) {
	for i := 0; i < len(nodes); i++ {
		a := nodes[i]
		for j := i + 1; j < len(nodes); j++ {
			b := nodes[j]
			dx, dy := separation(a, b, i, j)
			dist := vmath.SafeDistance(dx, dy, parameter.DriftMinDistance)

			contact := a.Radius + b.Radius + d.cfg.CollisionGap
			buffer := contact + d.cfg.RepulsionRange
			if dist >= buffer {
				continue
			}

			wa, wb, sum, ok := pairWeights(a, b)
			if !ok {
				continue
			}
			t := 1.0
			if d.cfg.RepulsionRange > 0 {
				t = vmath.Clamp(1-(dist-contact)/(buffer-contact), 0, 1)
			}
			force := t * t * d.cfg.RepulsionStrength
			nx, ny := dx/dist, dy/dist

			a.VX -= nx * force * (wa / sum)
			a.VY -= ny * force * (wa / sum)
			b.VX += nx * force * (wb / sum)
			b.VY += ny * force * (wb / sum)
		}
	}
}

// resolve runs at least SolverIterations passes, continuing while overlaps remain up to SolverMaxIterations
func (d *Drift) resolve(nodes []*graph.Node, impulses bool) (passes, corrections int) {
	limit := d.cfg.SolverMaxIterations
	if limit < d.cfg.SolverIterations {
		limit = d.cfg.SolverIterations
	}
	for passes < limit {
		c := d.project(nodes, impulses)
		passes++
		corrections += c
		if c == 0 && passes >= d.cfg.SolverIterations {
			break
		}
	}
	return passes, corrections
}

// reflect keeps n inside the chrome-aware bounds, reversing velocity with a soft bounce
func (d *Drift) reflect(g *graph.Graph, n *graph.Node) bool {
	minX, maxX, minY, maxY := g.Bounds(n.Radius, d.margin)
	hit := false
	switch {
	case n.X < minX:
		n.X = minX
		n.VX = vmath.ReflectSoft(n.VX, 1, d.cfg.WallBounce)
		hit = true
	case n.X > maxX:
		n.X = maxX
		n.VX = vmath.ReflectSoft(n.VX, -1, d.cfg.WallBounce)
		hit = true
	}
	switch {
	case n.Y < minY:
		n.Y = minY
		n.VY = vmath.ReflectSoft(n.VY, 1, d.cfg.WallBounce)
		hit = true
	case n.Y > maxY:
		n.Y = maxY
		n.VY = vmath.ReflectSoft(n.VY, -1, d.cfg.WallBounce)
		hit = true
	}
	return hit
}
