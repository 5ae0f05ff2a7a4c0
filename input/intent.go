package input

// IntentType reports what the owner of the controller should do after an event
type IntentType uint8

const (
	IntentNone      IntentType = iota
	IntentRedraw               // View changed without needing physics
	IntentActivate             // NodeID was clicked, tapped or keyboard-activated
	IntentResetView            // Return to overview
	IntentTour                 // Start or advance the guided tour
	IntentQuit                 // Close the view
)

// Intent is the controller's outcome for one event
type Intent struct {
	Type   IntentType
	NodeID string
}
