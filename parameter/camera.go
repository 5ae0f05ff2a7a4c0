package parameter

import "time"

// Camera bounds and transition defaults
const (
	// ZoomMin and ZoomMax bound interactive zoom
	ZoomMin = 0.3
	ZoomMax = 3.0

	// WheelZoomIn and WheelZoomOut are multiplicative wheel steps
	WheelZoomIn  = 1.1
	WheelZoomOut = 0.9

	// PanToZoom is the default framing zoom for guided camera moves
	PanToZoom = 1.4

	// PanToDuration is the guided move duration used by tours
	PanToDuration = 800 * time.Millisecond

	// ZoomToRadiusFactor frames a node so it spans 1/6 of viewport width, capped at ZoomToMax
	ZoomToRadiusFactor = 6.0
	ZoomToMax          = 3.0

	// FlyInRadiusFactor frames a node so it spans 1/4 of viewport width, capped at FlyInMax
	FlyInRadiusFactor = 4.0
	FlyInMax          = 5.0

	// FlyInDuration and FlyOutDuration are the cinematic transition lengths
	FlyInDuration  = 900 * time.Millisecond
	FlyOutDuration = 700 * time.Millisecond
)
