package clock

import (
	"sync"
	"time"
)

// Pausable is a view clock that freezes while the view is hidden
// Tweens and entrance fades measured against it resume where they stopped
type Pausable struct {
	mu sync.RWMutex

	base  Provider
	start time.Time

	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration
}

// NewPausable creates a running clock over base, nil base uses real time
func NewPausable(base Provider) *Pausable {
	if base == nil {
		base = NewMonotonic()
	}
	return &Pausable{
		base:  base,
		start: base.Now(),
	}
}

// Now returns view time: real elapsed minus paused spans
func (pc *Pausable) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	ref := pc.base.Now()
	if pc.paused {
		ref = pc.pauseStart
	}
	return pc.start.Add(ref.Sub(pc.start) - pc.totalPaused)
}

// Elapsed returns view time since creation
func (pc *Pausable) Elapsed() time.Duration {
	return pc.Now().Sub(pc.start)
}

// Pause stops time advancement, repeated calls are no-ops
func (pc *Pausable) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.base.Now()
}

// Resume continues time advancement, accumulating the paused span
func (pc *Pausable) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.totalPaused += pc.base.Now().Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
}

// Paused reports the current pause state
func (pc *Pausable) Paused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPaused returns cumulative pause time including any current pause
func (pc *Pausable) TotalPaused() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPaused
	if pc.paused {
		total += pc.base.Now().Sub(pc.pauseStart)
	}
	return total
}
