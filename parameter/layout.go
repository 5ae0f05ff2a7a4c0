package parameter

import "time"

// Radius normalization ranges by breakpoint
const (
	// SmallScreenBreakpoint is the min(width, height) below which small ranges apply
	SmallScreenBreakpoint = 600.0

	RadiusMin        = 28.0
	RadiusRange      = 24.0
	RadiusMinSmall   = 18.0
	RadiusRangeSmall = 16.0
)

// Radius score weights
const (
	// ComplexityWeightDefault is used for ids without an explicit weight
	ComplexityWeightDefault = 5.0

	// ComponentScoreWeight and ConnectionScoreWeight multiply per-node counts
	ComponentScoreWeight  = 10.0
	ConnectionScoreWeight = 3.0

	// FoundationalDefault is the multiplier for ids without an explicit entry
	FoundationalDefault = 1.0
)

// UI chrome insets in pixels
const (
	// TopInset keeps nodes below the title band
	TopInset = 200.0

	// BottomInset keeps nodes above the stats band
	BottomInset = 100.0

	// FocalBottomOffset shifts the focal point above the bottom edge
	FocalBottomOffset = 80.0

	// MaxInsetFraction caps top plus bottom insets as a share of viewport height
	MaxInsetFraction = 0.5
)

// Seed layout (tilted ellipse)
const (
	SeedSpreadX     = 0.38
	SeedSpreadY     = 0.18
	SeedTilt        = -0.26
	SeedJitter      = 20.0
	SeedRingDefault = 0.7
)

// Entrance stagger and idle oscillation
const (
	// EntranceStagger is the per-node delay before fade-in starts
	EntranceStagger = 50 * time.Millisecond

	// EntranceDuration is the fade-in length per node
	EntranceDuration = 400 * time.Millisecond

	// BreathAmplitude and BreathRate shape radius breathing (rate in radians per ms)
	BreathAmplitude = 0.03
	BreathRate      = 0.001

	// GlowBase, GlowAmplitude and GlowRate shape glow breathing
	GlowBase      = 0.9
	GlowAmplitude = 0.1
	GlowRate      = 0.0008
)
