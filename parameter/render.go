package parameter

// Snapshot styling shared by renderers
const (
	// HoverDimAlpha scales nodes other than the hovered one
	HoverDimAlpha = 0.35

	// EdgeAlpha and EdgeHighlightAlpha are edge opacities at full entrance
	EdgeAlpha          = 0.25
	EdgeHighlightAlpha = 0.8
)
