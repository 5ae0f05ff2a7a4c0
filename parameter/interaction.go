package parameter

import "time"

// Pointer, touch and hit-test tuning
const (
	// DragThreshold is the Manhattan pixel distance separating a click from a drag
	DragThreshold = 3.0

	// TouchMoveThreshold is the Manhattan pixel distance before a touch becomes a pan
	TouchMoveThreshold = 10.0

	// TapMaxDuration is the longest touch that still counts as a tap
	TapMaxDuration = 300 * time.Millisecond

	// HitTolerance scales node radius for picking so small targets are easier to hit
	HitTolerance = 1.2
)
