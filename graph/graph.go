package graph

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/lixenwraith/galaxy/config"
	"github.com/lixenwraith/galaxy/parameter"
)

// Graph owns the node and edge set of one view
// Not safe for concurrent use; the owning view's frame loop is the single writer
type Graph struct {
	Nodes []*Node
	Edges []Edge

	index   map[string]*Node
	groups  map[string]Group
	layout  config.LayoutConfig
	vp      Viewport
	rng     *rand.Rand
	pending bool

	// seedDomains retains domain seeds while seeding is deferred
	seedDomains map[string]Domain

	// minScore and maxScore cache the score extent for radius normalization
	minScore, maxScore float64
}

// Option configures graph construction
type Option func(*Graph)

// WithRand injects the random source used for seed jitter and phases
func WithRand(r *rand.Rand) Option {
	return func(g *Graph) {
		g.rng = r
	}
}

// Build constructs nodes and deduplicated edges from a dataset
// Connections and group members naming absent ids are skipped
// A zero viewport defers seeding until Resize observes a real size
func Build(ds *Dataset, layout config.LayoutConfig, vp Viewport, opts ...Option) *Graph {
	g := &Graph{
		index:  make(map[string]*Node),
		groups: make(map[string]Group),
		layout: layout,
		vp:     vp,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if ds == nil {
		return g
	}

	domains := make(map[string]Domain, len(ds.Domains))
	g.Nodes = make([]*Node, 0, len(ds.Domains))
	for _, d := range ds.Domains {
		if d.ID == "" {
			continue
		}
		if _, dup := g.index[d.ID]; dup {
			continue
		}
		n := &Node{
			ID:              d.ID,
			Label:           d.Name,
			Description:     d.Description,
			Icon:            d.Icon,
			Color:           d.Color,
			ComponentCount:  d.ComponentCount,
			ConnectionCount: d.Connectivity(),
			Score:           Score(d),
			EntranceDelay:   time.Duration(len(g.Nodes)) * layout.EntranceStagger.Duration,
			BreathPhase:     g.rng.Float64() * 2 * math.Pi,
			PulsePhase:      g.rng.Float64() * 2 * math.Pi,
		}
		if n.Label == "" {
			n.Label = d.ID
		}
		g.Nodes = append(g.Nodes, n)
		g.index[d.ID] = n
		domains[d.ID] = d
	}

	g.buildEdges(domains)
	g.buildGroups(ds.Groups)
	g.scoreExtent()
	g.applyRadii()

	if vp.Valid() {
		g.seed(domains)
	} else {
		g.pending = true
		g.seedDomains = domains
	}
	return g
}

func (g *Graph) buildEdges(domains map[string]Domain) {
	seen := make(map[string]struct{})
	for _, n := range g.Nodes {
		for _, c := range domains[n.ID].Connections {
			if c.Target == n.ID {
				continue
			}
			if _, ok := g.index[c.Target]; !ok {
				continue
			}
			key := EdgeKey(n.ID, c.Target)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			g.Edges = append(g.Edges, Edge{Source: n.ID, Target: c.Target, Label: c.Label})
		}
	}
}

func (g *Graph) buildGroups(groups []Group) {
	for _, grp := range groups {
		if grp.Name == "" {
			continue
		}
		g.groups[grp.Name] = grp
		for _, id := range grp.Members {
			if n, ok := g.index[id]; ok {
				n.Group = grp.Name
			}
		}
	}
}

// Node returns the node with id or nil
func (g *Graph) Node(id string) *Node {
	return g.index[id]
}

// Viewport returns the current viewport
func (g *Graph) Viewport() Viewport {
	return g.vp
}

// Layout returns the layout configuration
func (g *Graph) Layout() config.LayoutConfig {
	return g.layout
}

// Pending reports whether seeding is deferred until a valid viewport
func (g *Graph) Pending() bool {
	return g.pending
}

// Small reports whether the current viewport is below the small-screen breakpoint
func (g *Graph) Small() bool {
	return g.vp.Small(g.layout.SmallScreenBreakpoint)
}

// GroupCenter returns a group's center in pixels
func (g *Graph) GroupCenter(name string) (x, y float64, ok bool) {
	grp, ok := g.groups[name]
	if !ok {
		return 0, 0, false
	}
	return grp.X * g.vp.Width, grp.Y * g.vp.Height, true
}

// Focal returns the scene focal point used for centering and orbital rotation
// Offset below the title band and above the bottom chrome
func (g *Graph) Focal() (x, y float64) {
	top, _, focal := g.insets()
	return g.vp.Width / 2, (top + g.vp.Height - focal) / 2
}

// Bounds returns the valid center range for a node of radius r with margin
// Respects top and bottom chrome insets
func (g *Graph) Bounds(r, margin float64) (minX, maxX, minY, maxY float64) {
	top, bottom, _ := g.insets()
	m := r + margin
	minX = m
	maxX = g.vp.Width - m
	minY = m
	if top > minY {
		minY = top
	}
	maxY = g.vp.Height - m - bottom
	return
}

// insets returns the chrome insets, scaled down together when they would claim
// more than MaxInsetFraction of the viewport height
func (g *Graph) insets() (top, bottom, focal float64) {
	top, bottom, focal = g.layout.TopInset, g.layout.BottomInset, g.layout.FocalBottomOffset
	limit := g.vp.Height * parameter.MaxInsetFraction
	if sum := top + bottom; sum > limit && sum > 0 {
		k := limit / sum
		top, bottom, focal = top*k, bottom*k, focal*k
	}
	return top, bottom, focal
}

// Resize adopts a new viewport, recomputing radii from static scores
// Seeds positions if construction was deferred on a zero viewport
func (g *Graph) Resize(vp Viewport) {
	if !vp.Valid() {
		return
	}
	g.vp = vp
	g.applyRadii()
	if g.pending {
		g.seed(g.seedDomains)
		g.pending = false
		g.seedDomains = nil
	}
}

// SortedByX returns nodes ordered left to right, ties broken by draw order
func (g *Graph) SortedByX() []*Node {
	out := make([]*Node, len(g.Nodes))
	copy(out, g.Nodes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].X < out[j].X
	})
	return out
}
