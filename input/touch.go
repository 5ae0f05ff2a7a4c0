package input

import (
	"math"
	"time"

	"github.com/lixenwraith/galaxy/graph"
	"github.com/lixenwraith/galaxy/vmath"
)

// touchState tracks a single-finger tap/pan or a two-finger pinch
type touchState struct {
	node     *graph.Node
	start    time.Time
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	pinching bool
	lastDist float64
}

func (c *Controller) touchStart(ev Event) Intent {
	switch len(ev.Touches) {
	case 1:
		t := ev.Touches[0]
		c.touch = touchState{
			node:   c.pick(t.X, t.Y),
			start:  ev.Time,
			startX: t.X,
			startY: t.Y,
			lastX:  t.X,
			lastY:  t.Y,
		}
	case 2:
		a, b := ev.Touches[0], ev.Touches[1]
		c.touch.node = nil
		c.touch.pinching = true
		c.touch.lastDist = vmath.Distance(a.X-b.X, a.Y-b.Y)
	}
	return Intent{}
}

func (c *Controller) touchMove(ev Event) Intent {
	switch len(ev.Touches) {
	case 1:
		if c.touch.pinching {
			return Intent{}
		}
		t := ev.Touches[0]
		defer func() { c.touch.lastX, c.touch.lastY = t.X, t.Y }()
		if math.Abs(t.X-c.touch.startX)+math.Abs(t.Y-c.touch.startY) <= c.interaction.TouchMoveThreshold {
			return Intent{}
		}
		c.touch.node = nil
		c.cam.PanBy(t.X-c.touch.lastX, t.Y-c.touch.lastY)
		return Intent{Type: IntentRedraw}

	case 2:
		a, b := ev.Touches[0], ev.Touches[1]
		dist := vmath.Distance(a.X-b.X, a.Y-b.Y)
		prev := c.touch.lastDist
		c.touch.lastDist = dist
		c.touch.pinching = true
		c.touch.node = nil
		if prev <= 0 || dist <= 0 {
			return Intent{}
		}
		c.cam.ZoomAt((a.X+b.X)/2, (a.Y+b.Y)/2, dist/prev)
		return Intent{Type: IntentRedraw}
	}
	return Intent{}
}

// touchEnd activates a quick, still tap on a node
func (c *Controller) touchEnd(ev Event) Intent {
	ts := c.touch
	if len(ev.Touches) > 0 {
		// A finger lifted from a pinch; the remaining contact does not tap
		c.touch.node = nil
		return Intent{}
	}
	c.touch = touchState{}

	if ts.node == nil || ts.pinching {
		return Intent{}
	}
	if ev.Time.Sub(ts.start) >= c.interaction.TapMaxDuration.Duration {
		return Intent{}
	}
	return c.activate(ts.node)
}
