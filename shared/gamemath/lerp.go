package gamemath

import "github.com/go-gl/mathgl/mgl64"

// Lerp returns the linear blend of a and b at t. t is not clamped, so values
// above 1 extrapolate past b. The endpoints are exact: Lerp(a, b, 0) == a and
// Lerp(a, b, 1) == b.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LerpVec3 blends two vectors component-wise.
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return mgl64.Vec3{
		Lerp(a[0], b[0], t),
		Lerp(a[1], b[1], t),
		Lerp(a[2], b[2], t),
	}
}

// SlerpQuat spherically interpolates along the shorter of the two arcs
// between a and b. q and -q encode the same rotation, so b is flipped when
// the pair sits more than 90 degrees apart in 4D.
func SlerpQuat(a, b mgl64.Quat, t float64) mgl64.Quat {
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t)
}
