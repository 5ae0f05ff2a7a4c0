package engine

import "github.com/lixenwraith/galaxy/physics"

// ParkReason explains why the frame loop stopped scheduling frames
type ParkReason string

const (
	ParkNone     ParkReason = ""
	ParkHidden   ParkReason = "hidden"
	ParkInactive ParkReason = "inactive"
	ParkPending  ParkReason = "pending"
	ParkIdle     ParkReason = "idle"
)

// Observer receives frame loop telemetry
// Calls arrive on the loop goroutine and must not block
type Observer interface {
	FrameRendered()
	IntegratorTick(alpha float64)
	DriftTick(stats physics.DriftStats)
	SettledChanged(settled bool)
	LoopParked(reason ParkReason)
	LoopArmed()
}

// NopObserver discards telemetry
type NopObserver struct{}

func (NopObserver) FrameRendered()               {}
func (NopObserver) IntegratorTick(float64)       {}
func (NopObserver) DriftTick(physics.DriftStats) {}
func (NopObserver) SettledChanged(bool)          {}
func (NopObserver) LoopParked(ParkReason)        {}
func (NopObserver) LoopArmed()                   {}

// Cues plays short feedback sounds
type Cues interface {
	// Bell marks a node activation
	Bell()
	// Whoosh marks the start of a cinematic camera flight
	Whoosh()
}

type nopCues struct{}

func (nopCues) Bell()   {}
func (nopCues) Whoosh() {}
