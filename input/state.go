package input

// State is the pointer interaction state
type State uint8

const (
	StateIdle     State = iota // No button held
	StatePanning               // Button held on empty space, moves translate the camera
	StateDragging              // Button held on a node, moves update its pin
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePanning:
		return "panning"
	case StateDragging:
		return "dragging"
	}
	return "unknown"
}
