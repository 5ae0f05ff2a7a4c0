package graph

import "github.com/lixenwraith/galaxy/parameter"

// Score computes the static raw radius score of a domain
// raw = (weight + components*10 + connections*3) * foundational
func Score(d Domain) float64 {
	w := d.Weight
	if w <= 0 {
		w = parameter.ComplexityWeightDefault
	}
	mult := d.Foundational
	if mult <= 0 {
		mult = parameter.FoundationalDefault
	}
	raw := w +
		float64(d.ComponentCount)*parameter.ComponentScoreWeight +
		float64(d.Connectivity())*parameter.ConnectionScoreWeight
	return raw * mult
}

// RadiusRange returns the normalization range for the current viewport
func (g *Graph) RadiusRange() (min, span float64) {
	if g.Small() {
		return g.layout.RadiusMinSmall, g.layout.RadiusRangeSmall
	}
	return g.layout.RadiusMin, g.layout.RadiusRange
}

func (g *Graph) scoreExtent() {
	for i, n := range g.Nodes {
		if i == 0 || n.Score < g.minScore {
			g.minScore = n.Score
		}
		if i == 0 || n.Score > g.maxScore {
			g.maxScore = n.Score
		}
	}
}

// applyRadii min-max normalizes scores into the viewport's radius range
// A flat score distribution maps every node to the middle of the range
func (g *Graph) applyRadii() {
	min, span := g.RadiusRange()
	extent := g.maxScore - g.minScore
	for _, n := range g.Nodes {
		t := 0.5
		if extent > 0 {
			t = (n.Score - g.minScore) / extent
		}
		n.Radius = min + t*span
	}
}
