package graph

import (
	"math"

	"github.com/lixenwraith/galaxy/config"
	"github.com/lixenwraith/galaxy/parameter"
)

// seed places nodes around the focal point before the first tick
func (g *Graph) seed(domains map[string]Domain) {
	cx, cy := g.Focal()
	l := g.layout
	count := len(g.Nodes)

	for i, n := range g.Nodes {
		var angle, ring float64
		if s := domains[n.ID].Seed; s != nil {
			angle, ring = s.Angle, s.Ring
		} else if l.SeedShape == config.SeedCircle {
			angle, ring = float64(i)/float64(count)*2*math.Pi, 1
		} else {
			angle, ring = g.rng.Float64()*2*math.Pi, parameter.SeedRingDefault
		}

		jx := (g.rng.Float64() - 0.5) * l.SeedJitter
		jy := (g.rng.Float64() - 0.5) * l.SeedJitter

		switch l.SeedShape {
		case config.SeedCircle:
			spread := g.vp.MinSide() * l.SeedSpreadX
			n.X = cx + math.Cos(angle)*spread*ring + jx
			n.Y = cy + math.Sin(angle)*spread*ring + jy
		default:
			// Tilted ellipse: wide horizontal spread, flat vertical band
			ex := math.Cos(angle) * g.vp.Width * l.SeedSpreadX * ring
			ey := math.Sin(angle) * g.vp.Height * l.SeedSpreadY * ring
			sinT, cosT := math.Sincos(l.SeedTilt)
			n.X = cx + ex*cosT - ey*sinT + jx
			n.Y = cy + ex*sinT + ey*cosT + jy
		}
		n.VX, n.VY = 0, 0
	}
}
