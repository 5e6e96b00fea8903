package components

import "github.com/yohamta/donburi"

// PhysicsData is top-down velocity in arena units per tick.
type PhysicsData struct {
	SpeedX float64
	SpeedY float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
