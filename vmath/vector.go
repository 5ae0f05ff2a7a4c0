package vmath

import "math"

// ClampMagnitude limits vector to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func ClampMagnitude(x, y, maxMag float64) (cx, cy float64) {
	mag := Distance(x, y)
	if mag <= maxMag || mag == 0 {
		return x, y
	}
	scale := maxMag / mag
	return x * scale, y * scale
}

// RotateAround rotates (x, y) about (cx, cy) using precomputed cos/sin
// Rigid rotation, pairwise distances are preserved
func RotateAround(x, y, cx, cy, cos, sin float64) (rx, ry float64) {
	dx, dy := x-cx, y-cy
	return cx + dx*cos - dy*sin, cy + dx*sin + dy*cos
}

// SinCos returns sin and cos of angle in radians
func SinCos(angle float64) (sin, cos float64) {
	return math.Sincos(angle)
}

// DotProduct returns x1*x2 + y1*y2
func DotProduct(x1, y1, x2, y2 float64) float64 {
	return x1*x2 + y1*y2
}

// ReflectSoft reflects a velocity component away from a wall with restitution
// inward is the sign pointing back into the valid region (+1 or -1)
func ReflectSoft(v, inward, bounce float64) float64 {
	return inward * math.Abs(v) * bounce
}
