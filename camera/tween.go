package camera

import (
	"time"

	"github.com/lixenwraith/galaxy/vmath"
)

// tween interpolates the transform with ease-out cubic over wall-clock time
type tween struct {
	id       uint64
	start    time.Time
	duration time.Duration
	from, to State

	onProgress func(float64)
	onComplete func()
}

// start cancels any in-flight tween and begins a new one
// Reduced motion or a non-positive duration applies the target immediately:
// state is set, progress reports 1, observers render once and completion fires
func (c *Camera) start(to State, d time.Duration, onProgress func(float64), onComplete func()) uint64 {
	c.Cancel()

	if d <= 0 || c.reducedMotion() {
		c.state = to
		if onProgress != nil {
			onProgress(1)
		}
		c.notify()
		if onComplete != nil {
			onComplete()
		}
		return 0
	}

	c.nextTween++
	c.active = &tween{
		id:         c.nextTween,
		start:      c.clock.Now(),
		duration:   d,
		from:       c.state,
		to:         to,
		onProgress: onProgress,
		onComplete: onComplete,
	}
	return c.nextTween
}

// Cancel stops the in-flight tween without firing its completion
func (c *Camera) Cancel() {
	c.active = nil
}

// CancelTween cancels the tween with id if it is still the active one
func (c *Camera) CancelTween(id uint64) bool {
	if c.active == nil || c.active.id != id {
		return false
	}
	c.active = nil
	return true
}

// Step advances the active tween to now and reports whether it is still running
// Completion lands exactly on the target before the callback fires
func (c *Camera) Step(now time.Time) bool {
	tw := c.active
	if tw == nil {
		return false
	}

	t := float64(now.Sub(tw.start)) / float64(tw.duration)
	t = vmath.Clamp(t, 0, 1)
	e := vmath.EaseOutCubic(t)

	done := t >= 1
	if done {
		c.state = tw.to
		c.active = nil
	} else {
		c.state = tw.from.lerp(tw.to, e)
	}

	if tw.onProgress != nil {
		tw.onProgress(e)
	}
	c.notify()

	if done && tw.onComplete != nil {
		tw.onComplete()
	}
	return c.active != nil
}
