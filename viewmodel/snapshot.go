// Package viewmodel defines the first-person view state captured at every
// simulation tick and the rules for blending two such states.
package viewmodel

import "github.com/go-gl/mathgl/mgl64"

// MaxNodes is the number of pose nodes a Snapshot can carry.
const MaxNodes = 128

// Node is one pose node of the first-person model, in model space.
type Node struct {
	Rotation mgl64.Quat
	Position mgl64.Vec3
	Scale    float64
}

// Snapshot is a fixed-size copy of the first-person view state. It holds no
// pointers, so assignment copies the whole record.
type Snapshot struct {
	Nodes     [MaxNodes]Node
	NodeCount uint16

	// CameraOffset is the eye offset applied on top of the body position.
	CameraOffset mgl64.Vec3

	// Orientation in degrees.
	Yaw, Pitch, Roll float64

	WeaponID       uint32
	AnimationID    int32
	AnimationFrame float64
}

// ActiveNodes returns the live part of the node array.
func (s *Snapshot) ActiveNodes() []Node {
	n := int(s.NodeCount)
	if n > MaxNodes {
		n = MaxNodes
	}
	return s.Nodes[:n]
}

// Continuous reports whether prev and cur describe the same weapon pose
// stream. Blending across a weapon switch, an animation change or a
// skeleton change would show a pose that never existed.
func Continuous(prev, cur *Snapshot) bool {
	return prev.WeaponID == cur.WeaponID &&
		prev.AnimationID == cur.AnimationID &&
		prev.NodeCount == cur.NodeCount
}
