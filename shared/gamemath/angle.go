package gamemath

import "math"

// WrapDegrees maps an angle in degrees onto [-180, 180).
func WrapDegrees(deg float64) float64 {
	d := math.Mod(deg+180, 360)
	if d < 0 {
		d += 360
	}
	return d - 180
}

// AngleDelta returns the signed shortest rotation from a to b in degrees.
// Opposite angles resolve to -180.
func AngleDelta(a, b float64) float64 {
	return WrapDegrees(b - a)
}

// LerpAngle interpolates from a to b along the shorter arc. Intermediate
// results are wrapped into [-180, 180) so crossing the 0/360 seam never
// sweeps the long way around; the endpoints are returned untouched.
func LerpAngle(a, b, t float64) float64 {
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}
	return WrapDegrees(a + AngleDelta(a, b)*t)
}
