package components

import (
	"github.com/automoto/fpinterp/interp"
	"github.com/yohamta/donburi"
)

// FPInterpData owns the tick/frame interpolation controller of one
// first-person view. The controller is bound to the entry's FirstPerson
// component.
type FPInterpData struct {
	Controller *interp.Controller
}

var FPInterp = donburi.NewComponentType[FPInterpData]()
