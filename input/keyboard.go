package input

import "github.com/lixenwraith/galaxy/graph"

// key moves keyboard focus over nodes ordered left to right
// Order is recomputed on every press since drift keeps moving nodes
func (c *Controller) key(k Key) Intent {
	switch k {
	case KeyRight, KeyDown, KeyTab:
		return c.moveFocus(1)
	case KeyLeft, KeyUp, KeyBacktab:
		return c.moveFocus(-1)
	case KeyEnter, KeySpace:
		n := c.focused
		if n == nil {
			return Intent{}
		}
		c.focused = nil
		return c.activate(n)
	case KeyEscape:
		if c.focused == nil {
			return Intent{}
		}
		c.focused = nil
		c.wakeLoop()
		return Intent{Type: IntentRedraw}
	case KeyZoomIn, KeyZoomOut:
		return c.keyZoom(k == KeyZoomIn)
	case KeyResetView:
		return Intent{Type: IntentResetView}
	case KeyTour:
		return Intent{Type: IntentTour}
	case KeyQuit:
		return Intent{Type: IntentQuit}
	}
	return Intent{}
}

func (c *Controller) moveFocus(step int) Intent {
	if c.tourActive || c.graph == nil {
		return Intent{}
	}
	sorted := c.graph.SortedByX()
	if len(sorted) == 0 {
		return Intent{}
	}

	idx := indexOf(sorted, c.focused)
	switch {
	case idx < 0 && step > 0:
		idx = 0
	case idx < 0:
		idx = len(sorted) - 1
	default:
		idx = (idx + step + len(sorted)) % len(sorted)
	}
	c.focused = sorted[idx]
	c.wakeLoop()
	return Intent{Type: IntentRedraw}
}

func (c *Controller) keyZoom(in bool) Intent {
	if c.graph == nil {
		return Intent{}
	}
	factor := c.wheelOut
	if in {
		factor = c.wheelIn
	}
	vp := c.graph.Viewport()
	c.cam.ZoomAt(vp.Width/2, vp.Height/2, factor)
	return Intent{Type: IntentRedraw}
}

func indexOf(nodes []*graph.Node, n *graph.Node) int {
	if n == nil {
		return -1
	}
	for i, m := range nodes {
		if m == n {
			return i
		}
	}
	return -1
}
