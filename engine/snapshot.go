package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/galaxy/graph"
	"github.com/lixenwraith/galaxy/parameter"
	"github.com/lixenwraith/galaxy/render"
)

// snapshot copies the drawable state after physics and camera have stepped
func (v *View) snapshot(now time.Time, reduced bool) *render.Frame {
	s := v.cam.State()
	vp := v.graph.Viewport()
	t := now.Sub(v.start)

	hovered := v.ctrl.Hovered()
	focused := v.ctrl.Focused()
	highlight := hovered
	if highlight == nil {
		highlight = focused
	}
	fade := 1 - v.fade

	f := &render.Frame{
		Width:  vp.Width,
		Height: vp.Height,
		Camera: s,
		Nodes:  make([]render.NodeView, 0, len(v.graph.Nodes)),
		Edges:  make([]render.EdgeView, 0, len(v.graph.Edges)),
	}

	for _, e := range v.graph.Edges {
		a, b := v.graph.Node(e.Source), v.graph.Node(e.Target)
		if a == nil || b == nil {
			continue
		}
		hl := highlight != nil && e.Touches(highlight.ID)
		alpha := parameter.EdgeAlpha
		if hl {
			alpha = parameter.EdgeHighlightAlpha
		}
		x1, y1 := s.GraphToScreen(a.X, a.Y)
		x2, y2 := s.GraphToScreen(b.X, b.Y)
		f.Edges = append(f.Edges, render.EdgeView{
			X1: x1, Y1: y1,
			X2: x2, Y2: y2,
			Label:     e.Label,
			Alpha:     alpha * math.Min(a.EntranceAlpha, b.EntranceAlpha) * fade,
			Highlight: hl,
		})
	}

	for _, n := range v.graph.Nodes {
		f.Nodes = append(f.Nodes, v.nodeView(n, s.GraphToScreen, t, reduced, hovered, focused, fade))
	}

	switch {
	case hovered != nil:
		f.Tooltip = &render.Tooltip{Title: hovered.Label, Body: hovered.Description, X: v.pointerX, Y: v.pointerY}
	case focused != nil:
		x, y := s.GraphToScreen(focused.X, focused.Y)
		f.Tooltip = &render.Tooltip{Title: focused.Label, Body: focused.Description, X: x, Y: y}
	}

	f.Status = v.status(s.Zoom, reduced)
	return f
}

func (v *View) nodeView(
	n *graph.Node,
	toScreen func(gx, gy float64) (float64, float64),
	t time.Duration,
	reduced bool,
	hovered, focused *graph.Node,
	fade float64,
) render.NodeView {
	x, y := toScreen(n.X, n.Y)
	breath := n.Breath(t, parameter.BreathAmplitude, parameter.BreathRate, reduced)

	alpha := n.EntranceAlpha
	if hovered != nil && n != hovered {
		alpha *= parameter.HoverDimAlpha
	}
	selected := v.selected != "" && n.ID == v.selected
	if v.selected != "" && !selected {
		alpha *= fade
	}

	return render.NodeView{
		ID:          n.ID,
		Label:       n.Label,
		Icon:        n.Icon,
		Color:       n.Color,
		Description: n.Description,
		X:           x,
		Y:           y,
		Radius:      n.Radius * n.EntranceScale() * breath * v.cam.State().Zoom,
		Alpha:       alpha,
		Glow:        n.Glow(t, parameter.GlowBase, parameter.GlowAmplitude, parameter.GlowRate, reduced),
		Hovered:     n == hovered,
		Focused:     n == focused,
		Selected:    selected,
	}
}

func (v *View) status(zoom float64, reduced bool) string {
	mode := "settling"
	switch {
	case v.Touring():
		mode = "tour"
	case v.driftEligible(reduced):
		mode = "drifting"
	case v.sim.Settled():
		mode = "settled"
	}
	return fmt.Sprintf("%s  %s  alpha %.3f  zoom %.2fx", v.level, mode, v.sim.Alpha(), zoom)
}
