package input

import "time"

// EventType discriminates platform-neutral input events
type EventType uint8

const (
	EventNone EventType = iota

	EventPointerDown  // Primary button pressed at X, Y
	EventPointerMove  // Pointer moved to X, Y, button state implied by controller state
	EventPointerUp    // Primary button released
	EventPointerLeave // Pointer left the surface
	EventWheel        // Wheel at X, Y; negative DeltaY zooms in

	EventTouchStart // Touches holds the active contacts
	EventTouchMove
	EventTouchEnd

	EventKey // Key holds the logical key

	EventResize     // Width, Height hold the new viewport in pixels
	EventVisibility // Visible holds the new visibility
	EventQuit       // Surface closed
)

// Key is a logical key after platform translation
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
	KeySpace
	KeyEscape
	KeyTab
	KeyBacktab
	KeyZoomIn
	KeyZoomOut
	KeyResetView
	KeyTour
	KeyQuit
)

// Touch is one contact point in screen pixels
type Touch struct {
	ID   int
	X, Y float64
}

// Event is a single input occurrence in screen pixels
type Event struct {
	Type EventType
	Time time.Time

	X, Y   float64
	DeltaY float64

	Touches []Touch
	Key     Key

	Width, Height float64
	Visible       bool
}
