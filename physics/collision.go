package physics

import (
	"math"

	"github.com/lixenwraith/galaxy/graph"
	"github.com/lixenwraith/galaxy/parameter"
	"github.com/lixenwraith/galaxy/vmath"
)

// goldenAngle spreads fallback directions for coincident pairs
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// separation returns the vector from a to b
// Coincident nodes get a tiny deterministic offset derived from their indices so they can part
func separation(a, b *graph.Node, i, j int) (dx, dy float64) {
	dx, dy = b.X-a.X, b.Y-a.Y
	if dx != 0 || dy != 0 {
		return dx, dy
	}
	sin, cos := vmath.SinCos(float64(i*31+j) * goldenAngle)
	return cos * parameter.DriftMinDistance, sin * parameter.DriftMinDistance
}

// pairWeights returns inverse-mass shares for a and b
// Pinned nodes act as immovable; ok is false when neither side can move
func pairWeights(a, b *graph.Node) (wa, wb, sum float64, ok bool) {
	if !a.Pinned {
		wa = a.InvMass()
	}
	if !b.Pinned {
		wb = b.InvMass()
	}
	sum = wa + wb
	return wa, wb, sum, sum > 0
}

// project runs one Gauss-Seidel pass of overlap resolution and returns corrections applied
// Overlapping pairs are pushed apart along the contact normal by the penetration depth,
// split by inverse mass; approaching pairs also receive a restitution impulse when impulses is set
func (d *Drift) project(nodes []*graph.Node, impulses bool) int {
	corrections := 0
	for i := 0; i < len(nodes); i++ {
		a := nodes[i]
		for j := i + 1; j < len(nodes); j++ {
			b := nodes[j]
			dx, dy := separation(a, b, i, j)
			dist := vmath.SafeDistance(dx, dy, parameter.DriftMinDistance)
			minDist := a.Radius + b.Radius + d.cfg.CollisionGap
			if dist >= minDist-parameter.DriftProjectionSlop {
				continue
			}

			wa, wb, sum, ok := pairWeights(a, b)
			if !ok {
				continue
			}
			nx, ny := dx/dist, dy/dist
			overlap := minDist - dist

			a.X -= nx * overlap * (wa / sum)
			a.Y -= ny * overlap * (wa / sum)
			b.X += nx * overlap * (wb / sum)
			b.Y += ny * overlap * (wb / sum)
			corrections++

			if !impulses {
				continue
			}
			relVel := vmath.DotProduct(b.VX-a.VX, b.VY-a.VY, nx, ny)
			if relVel < 0 {
				impulse := -(1 + d.cfg.Restitution) * relVel / sum
				a.VX -= nx * impulse * wa
				a.VY -= ny * impulse * wa
				b.VX += nx * impulse * wb
				b.VY += ny * impulse * wb
			}
		}
	}
	return corrections
}

// Overlaps counts pairs closer than the sum of radii plus gap, less tolerance
func Overlaps(nodes []*graph.Node, gap, tolerance float64) int {
	count := 0
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			a, b := nodes[i], nodes[j]
			dist := vmath.Distance(b.X-a.X, b.Y-a.Y)
			if dist < a.Radius+b.Radius+gap-tolerance {
				count++
			}
		}
	}
	return count
}
