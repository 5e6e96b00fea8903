package components

import (
	cfg "github.com/automoto/fpinterp/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous tick's pressed state for all actions.
// JustPressed is computed on-demand by comparing ticks.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

func (i *InputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a]
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

// Axis returns -1, 0 or 1 from a pair of opposing actions.
func (i *InputData) Axis(neg, pos cfg.ActionID) float64 {
	v := 0.0
	if i.Current[neg] {
		v--
	}
	if i.Current[pos] {
		v++
	}
	return v
}

var Input = donburi.NewComponentType[InputData]()
