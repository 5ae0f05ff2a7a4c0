package parameter

// Primary integrator (force simulation) defaults
const (
	// AlphaInitial is simulation energy on graph construction
	AlphaInitial = 1.0

	// AlphaDecay is the per-tick geometric decay of alpha, tuned in [0.985, 0.995]
	AlphaDecay = 0.992

	// AlphaEpsilon is the energy floor below which the layout is settled
	AlphaEpsilon = 0.001

	// RepulsionMargin is added to the radius sum to form the repulsion reference distance
	RepulsionMargin = 160.0

	// RepulsionStrength scales the inverse-square repulsion term
	RepulsionStrength = 2.0

	// SpringStiffness is the Hookean constant along edges
	SpringStiffness = 0.04

	// SpringLength is the ideal edge length on large viewports
	SpringLength = 260.0

	// SpringLengthSmall is the ideal edge length below the small-screen breakpoint
	SpringLengthSmall = 160.0

	// CenterGravityX and CenterGravityY pull every node toward the focal point
	// Weaker X spreads the layout, stronger Y keeps the band flat
	CenterGravityX = 0.005
	CenterGravityY = 0.015

	// GroupGravity pulls grouped nodes toward their cluster center
	GroupGravity = 0.20

	// Friction multiplies velocity before position update
	Friction = 0.6

	// BoundaryMargin is added to a node radius when clamping to the viewport
	BoundaryMargin = 20.0
)

// Energy floors applied on interaction
const (
	// ReheatDrag is the alpha floor on drag start and resize
	ReheatDrag = 0.3

	// ReheatRelease is the alpha floor on drag release
	ReheatRelease = 0.1
)
