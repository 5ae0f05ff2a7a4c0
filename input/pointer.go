package input

import (
	"math"

	"github.com/lixenwraith/galaxy/graph"
	"github.com/lixenwraith/galaxy/hittest"
)

func (c *Controller) pick(sx, sy float64) *graph.Node {
	if c.graph == nil {
		return nil
	}
	return hittest.Pick(c.graph.Nodes, c.cam.State(), sx, sy, c.interaction.HitTolerance)
}

func (c *Controller) pointerDown(sx, sy float64) Intent {
	if c.state != StateIdle {
		c.cancelPointer()
	}
	c.downX, c.downY = sx, sy
	c.lastX, c.lastY = sx, sy

	n := c.pick(sx, sy)
	if n == nil {
		c.state = StatePanning
		return Intent{}
	}

	c.state = StateDragging
	c.dragNode = n
	c.dragMoved = false
	n.Pin(n.X, n.Y)
	c.sim.Reheat(c.reheatDrag)
	c.wakeLoop()
	return Intent{Type: IntentRedraw}
}

func (c *Controller) pointerMove(sx, sy float64) Intent {
	defer func() { c.lastX, c.lastY = sx, sy }()

	switch c.state {
	case StateDragging:
		if math.Abs(sx-c.downX)+math.Abs(sy-c.downY) > c.interaction.DragThreshold {
			c.dragMoved = true
		}
		gx, gy := c.cam.State().ScreenToGraph(sx, sy)
		c.dragNode.Pin(gx, gy)
		c.wakeLoop()
		return Intent{Type: IntentRedraw}

	case StatePanning:
		c.cam.PanBy(sx-c.lastX, sy-c.lastY)
		return Intent{Type: IntentRedraw}
	}

	n := c.pick(sx, sy)
	if n == c.hovered {
		return Intent{}
	}
	c.hovered = n
	c.wakeLoop()
	return Intent{Type: IntentRedraw}
}

func (c *Controller) pointerUp() Intent {
	switch c.state {
	case StateDragging:
		n := c.dragNode
		moved := c.dragMoved
		n.Unpin()
		c.dragNode = nil
		c.dragMoved = false
		c.state = StateIdle

		if !moved {
			return c.activate(n)
		}
		c.log.Debug().Str("node", n.ID).Msg("node released")
		c.sim.Reheat(c.reheatDrop)
		c.wakeLoop()
		return Intent{Type: IntentRedraw}

	case StatePanning:
		c.state = StateIdle
	}
	return Intent{}
}

func (c *Controller) pointerLeave() Intent {
	hadHover := c.hovered != nil
	c.hovered = nil
	c.cancelPointer()
	if hadHover {
		c.wakeLoop()
		return Intent{Type: IntentRedraw}
	}
	return Intent{}
}

// cancelPointer abandons any drag or pan without activating
func (c *Controller) cancelPointer() {
	if c.dragNode != nil {
		c.dragNode.Unpin()
		c.dragNode = nil
	}
	c.dragMoved = false
	c.state = StateIdle
}

// wheel zooms about the pointer by a fixed step, clamped by the camera
func (c *Controller) wheel(sx, sy, deltaY float64) Intent {
	if deltaY == 0 {
		return Intent{}
	}
	factor := c.wheelOut
	if deltaY < 0 {
		factor = c.wheelIn
	}
	c.cam.ZoomAt(sx, sy, factor)
	return Intent{Type: IntentRedraw}
}
