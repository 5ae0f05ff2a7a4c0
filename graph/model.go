package graph

import (
	"math"
	"time"
)

// Node is a domain body in graph space
type Node struct {
	ID          string
	Label       string
	Description string
	Icon        string
	Color       string
	Group       string

	ComponentCount  int
	ConnectionCount int

	// Score is the static raw radius score; Radius is its viewport-dependent normalization
	Score  float64
	Radius float64

	X, Y   float64
	VX, VY float64

	// FX, FY hold the pin while Pinned is set
	Pinned bool
	FX, FY float64

	EntranceDelay time.Duration
	EntranceAlpha float64

	BreathPhase float64
	PulsePhase  float64
}

// Pin forces the node to (x, y) and zeroes velocity until Unpin
func (n *Node) Pin(x, y float64) {
	n.Pinned = true
	n.FX, n.FY = x, y
	n.X, n.Y = x, y
	n.VX, n.VY = 0, 0
}

// Unpin releases the forced position
func (n *Node) Unpin() {
	n.Pinned = false
	n.FX, n.FY = 0, 0
}

// Mass is area-proportional, larger bodies move less in collisions
func (n *Node) Mass() float64 {
	return n.Radius * n.Radius
}

// InvMass returns 1/mass, zero for degenerate radii
func (n *Node) InvMass() float64 {
	m := n.Mass()
	if m <= 0 {
		return 0
	}
	return 1 / m
}

// UpdateEntrance advances the one-shot fade-in, never decreasing it
func (n *Node) UpdateEntrance(elapsed, duration time.Duration) {
	if n.EntranceAlpha >= 1 {
		return
	}
	var a float64
	switch {
	case duration <= 0:
		a = 1
	case elapsed <= n.EntranceDelay:
		a = 0
	default:
		a = float64(elapsed-n.EntranceDelay) / float64(duration)
	}
	if a > 1 {
		a = 1
	}
	if a > n.EntranceAlpha {
		n.EntranceAlpha = a
	}
}

// EntranceScale grows from half size to full size during fade-in
func (n *Node) EntranceScale() float64 {
	return 0.5 + n.EntranceAlpha*0.5
}

// Breath returns the idle radius oscillation factor at time now
func (n *Node) Breath(now time.Duration, amplitude, rate float64, reducedMotion bool) float64 {
	if reducedMotion {
		return 1
	}
	ms := float64(now) / float64(time.Millisecond)
	return 1 + amplitude*math.Sin(ms*rate+n.BreathPhase)
}

// Glow returns the glow opacity oscillation at time now
func (n *Node) Glow(now time.Duration, base, amplitude, rate float64, reducedMotion bool) float64 {
	if reducedMotion {
		return 1
	}
	ms := float64(now) / float64(time.Millisecond)
	return base + amplitude*math.Sin(ms*rate+n.BreathPhase)
}

// Edge is an undirected link stored once per unordered pair
type Edge struct {
	Source string
	Target string
	Label  string
}

// Key returns the canonical pair key
func (e Edge) Key() string {
	return EdgeKey(e.Source, e.Target)
}

// EdgeKey canonicalizes a pair so A--B and B--A collide
func EdgeKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "--" + b
}

// Touches reports whether the edge is incident to id
func (e Edge) Touches(id string) bool {
	return e.Source == id || e.Target == id
}
