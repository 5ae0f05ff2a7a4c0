package physics

import (
	"github.com/lixenwraith/galaxy/graph"
	"github.com/lixenwraith/galaxy/vmath"
)

// repel applies inverse-square repulsion over every unordered pair
// force = (minDist² / dist²) * strength * alpha, minDist = ra + rb + margin
func (s *Simulation) repel(nodes []*graph.Node) {
	strength := s.cfg.RepulsionStrength * s.alpha
	for i := 0; i < len(nodes); i++ {
		a := nodes[i]
		for j := i + 1; j < len(nodes); j++ {
			b := nodes[j]
			dx, dy := separation(a, b, i, j)
			dist := vmath.SafeDistance(dx, dy, vmath.MinDistance)

			minDist := a.Radius + b.Radius + s.cfg.RepulsionMargin
			force := (minDist * minDist) / (dist * dist) * strength
			fx, fy := dx/dist*force, dy/dist*force

			a.VX -= fx
			a.VY -= fy
			b.VX += fx
			b.VY += fy
		}
	}
}

// springs pulls connected nodes toward the ideal length, signed
// Edges whose endpoints are absent are skipped
func (s *Simulation) springs(g *graph.Graph) {
	ideal := s.cfg.SpringLength
	if g.Small() {
		ideal = s.cfg.SpringLengthSmall
	}
	k := s.cfg.SpringStiffness * s.alpha

	for i, e := range g.Edges {
		src, dst := g.Node(e.Source), g.Node(e.Target)
		if src == nil || dst == nil {
			continue
		}
		dx, dy := separation(src, dst, i, i+1)
		dist := vmath.SafeDistance(dx, dy, vmath.MinDistance)

		force := (dist - ideal) * k
		fx, fy := dx/dist*force, dy/dist*force

		src.VX += fx
		src.VY += fy
		dst.VX -= fx
		dst.VY -= fy
	}
}

// center pulls every node toward the focal point, weaker on X to spread the band
func (s *Simulation) center(g *graph.Graph) {
	cx, cy := g.Focal()
	kx := s.cfg.CenterGravityX * s.alpha
	ky := s.cfg.CenterGravityY * s.alpha
	for _, n := range g.Nodes {
		n.VX += (cx - n.X) * kx
		n.VY += (cy - n.Y) * ky
	}
}

// cluster pulls grouped nodes toward their group center in addition to center
func (s *Simulation) cluster(g *graph.Graph) {
	if s.cfg.GroupGravity == 0 {
		return
	}
	k := s.cfg.GroupGravity * s.alpha
	for _, n := range g.Nodes {
		if n.Group == "" {
			continue
		}
		tx, ty, ok := g.GroupCenter(n.Group)
		if !ok {
			continue
		}
		n.VX += (tx - n.X) * k
		n.VY += (ty - n.Y) * k
	}
}
