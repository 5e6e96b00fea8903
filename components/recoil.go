package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// RecoilData holds the active recoil kick. Offset runs from 1 back to 0 as
// Kick plays out.
type RecoilData struct {
	Kick   *gween.Tween
	Offset float64
}

var Recoil = donburi.NewComponentType[RecoilData]()
