package parameter

import "time"

// Frame loop timing
const (
	// FrameInterval is the display frame interval (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// EventQueueSize is the capacity of the scheduler inbox
	EventQueueSize = 256

	// ParkedPollInterval bounds how long a parked loop waits before re-checking its conditions
	ParkedPollInterval = 500 * time.Millisecond
)
