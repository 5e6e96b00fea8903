package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// MoveDirection converts forward/strafe input (-1, 0 or 1 each) into a
// top-down world direction for a viewer facing yawDeg. Yaw 0 faces +X and
// grows counter-clockwise. Diagonal input is normalized.
func MoveDirection(forward, strafe, yawDeg float64) (dirX, dirY float64) {
	if forward == 0 && strafe == 0 {
		return 0, 0
	}
	rad := yawDeg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dirX = forward*cos + strafe*sin
	dirY = -forward*sin + strafe*cos
	l := math.Hypot(dirX, dirY)
	return dirX / l, dirY / l
}
