package components

import "github.com/yohamta/donburi"

// ViewerData is the simulation-side state of the first-person viewer that
// the weapon pose is derived from.
type ViewerData struct {
	Yaw   float64 // Degrees, wrapped to [-180, 180)
	Pitch float64 // Degrees

	WeaponIndex int
	Animation   int32   // Current weapon animation
	AnimFrame   float64 // Ticks since the animation started

	BobPhase  float64 // Advances with distance travelled
	Breath    float64 // Advances every tick
	Sway      float64 // Smoothed lateral offset from turning
	LastYaw   float64
	Travelled float64
}

var Viewer = donburi.NewComponentType[ViewerData]()

// Weapon animations
const (
	AnimIdle int32 = iota
	AnimFire
	AnimReady
)
