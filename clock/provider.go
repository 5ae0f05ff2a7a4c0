package clock

import "time"

// Provider supplies the current time
// Camera tweens, entrance fades and the frame loop all read time through it
type Provider interface {
	Now() time.Time
}

// Monotonic provides real system time with monotonic clock readings
type Monotonic struct{}

// NewMonotonic creates a real time provider
func NewMonotonic() *Monotonic {
	return &Monotonic{}
}

// Now returns the current time with monotonic clock reading
func (p *Monotonic) Now() time.Time {
	return time.Now()
}
