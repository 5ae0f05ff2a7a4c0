package vmath

import "math"

// MinDistance is the fallback separation used for coincident points
// Any division by a pair distance goes through SafeDistance first
const MinDistance = 1.0

// Distance returns Euclidean length of (dx, dy)
func Distance(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSq returns squared length without sqrt
func DistanceSq(dx, dy float64) float64 {
	return dx*dx + dy*dy
}

// SafeDistance returns Euclidean length floored at min
// Non-finite lengths collapse to min so callers never divide by zero or NaN
func SafeDistance(dx, dy, min float64) float64 {
	d := math.Sqrt(dx*dx + dy*dy)
	if d < min || math.IsNaN(d) || math.IsInf(d, 0) {
		return min
	}
	return d
}

// Clamp limits v to [lo, hi]; when lo > hi the midpoint wins
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates from a to b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EaseOutCubic maps t in [0,1] to 1-(1-t)^3, clamping t outside the range
func EaseOutCubic(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	u := 1 - t
	return 1 - u*u*u
}

// Finite reports whether v is neither NaN nor infinite
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ApproxEqual compares with absolute tolerance
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
