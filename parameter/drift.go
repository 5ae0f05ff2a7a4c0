package parameter

// Orbital drift solver defaults (idle-state simulation)
const (
	// DriftOrbitSpeed is the rigid rotation per tick in radians
	DriftOrbitSpeed = 0.00002

	// DriftSolverIterations is the minimum number of Gauss-Seidel projection passes
	DriftSolverIterations = 3

	// DriftSolverMaxIterations bounds extra passes spent while overlaps remain
	DriftSolverMaxIterations = 12

	// DriftDamping multiplies velocity after projection
	DriftDamping = 0.97

	// DriftCollisionGap is the minimum surface-to-surface gap in pixels
	DriftCollisionGap = 4.0

	// DriftRepulsionRange is the soft buffer zone beyond contact distance
	DriftRepulsionRange = 40.0

	// DriftRepulsionStrength is the force at contact, ramping quadratically to zero at buffer edge
	DriftRepulsionStrength = 0.12

	// DriftRestitution is the bounce coefficient for approaching pairs
	DriftRestitution = 0.1

	// DriftWallBounce is the velocity restitution against viewport bounds
	DriftWallBounce = 0.1

	// DriftMaxSpeed caps per-tick speed to keep motion calm
	DriftMaxSpeed = 0.5

	// DriftMinDistance substitutes coincident pair distance during drift
	DriftMinDistance = 0.001

	// DriftProjectionSlop absorbs rounding so exactly-resolved contacts are not corrected again
	DriftProjectionSlop = 1e-9
)
