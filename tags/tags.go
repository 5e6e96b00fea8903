package tags

import "github.com/yohamta/donburi"

var (
	Viewer = donburi.NewTag().SetName("Viewer")
	Wall   = donburi.NewTag().SetName("Wall")
)

// Resolv tags for arena collision
const (
	ResolvSolid  = "solid"
	ResolvViewer = "Viewer"
)
