package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonotonicAdvances(t *testing.T) {
	p := NewMonotonic()

	t1 := p.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := p.Now()

	assert.True(t, t2.After(t1))
	assert.GreaterOrEqual(t, t2.Sub(t1), 10*time.Millisecond)
}

func TestMock(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMock(start)
	assert.True(t, m.Now().Equal(start))

	next := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	m.Set(next)
	assert.True(t, m.Now().Equal(next))

	m.Advance(time.Hour)
	m.Advance(30 * time.Minute)
	assert.True(t, m.Now().Equal(next.Add(90*time.Minute)))
}

func TestPausableFreezesWhileHidden(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	base := NewMock(start)
	pc := NewPausable(base)

	base.Advance(100 * time.Millisecond)
	assert.Equal(t, 100*time.Millisecond, pc.Elapsed())

	pc.Pause()
	pc.Pause()
	assert.True(t, pc.Paused())
	base.Advance(time.Second)
	assert.Equal(t, 100*time.Millisecond, pc.Elapsed())
	assert.Equal(t, time.Second, pc.TotalPaused())

	pc.Resume()
	assert.False(t, pc.Paused())
	base.Advance(50 * time.Millisecond)
	assert.Equal(t, 150*time.Millisecond, pc.Elapsed())
	assert.Equal(t, time.Second, pc.TotalPaused())
}
