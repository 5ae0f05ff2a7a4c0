package physics

import (
	"github.com/lixenwraith/galaxy/config"
	"github.com/lixenwraith/galaxy/graph"
	"github.com/lixenwraith/galaxy/parameter"
)

// Simulation is the primary force-directed integrator
// Not safe for concurrent use; a single frame loop owns it
type Simulation struct {
	cfg   config.PhysicsConfig
	alpha float64
	ticks uint64
}

// NewSimulation returns a simulation at full energy
func NewSimulation(cfg config.PhysicsConfig) *Simulation {
	return &Simulation{
		cfg:   cfg,
		alpha: parameter.AlphaInitial,
	}
}

// Alpha returns the current simulation energy
func (s *Simulation) Alpha() float64 {
	return s.alpha
}

// Settled reports whether energy has decayed below epsilon
// Stays true until Reheat or Restart injects energy
func (s *Simulation) Settled() bool {
	return s.alpha < s.cfg.AlphaEpsilon
}

// Ticks returns the number of integration steps performed
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

// Reheat raises alpha to at least floor, never lowering it
func (s *Simulation) Reheat(floor float64) {
	if floor > parameter.AlphaInitial {
		floor = parameter.AlphaInitial
	}
	if s.alpha < floor {
		s.alpha = floor
	}
}

// Restart resets energy to its initial value, used after a dataset rebuild
func (s *Simulation) Restart() {
	s.alpha = parameter.AlphaInitial
}

// Tick advances the layout by one step and reports whether it ran
// A settled simulation or a graph awaiting a real viewport is left untouched
func (s *Simulation) Tick(g *graph.Graph) bool {
	if s.Settled() || g.Pending() || !g.Viewport().Valid() {
		return false
	}

	s.alpha *= s.cfg.AlphaDecay
	s.ticks++

	s.repel(g.Nodes)
	s.springs(g)
	s.center(g)
	s.cluster(g)
	s.integrate(g)
	return true
}
