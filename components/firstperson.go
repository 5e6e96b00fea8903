package components

import (
	"github.com/automoto/fpinterp/viewmodel"
	"github.com/yohamta/donburi"
)

// FirstPersonData is the live first-person view state. Simulation systems
// write it every tick and renderers read it every frame.
type FirstPersonData struct {
	View viewmodel.Snapshot
}

var FirstPerson = donburi.NewComponentType[FirstPersonData]()

// FirstPersonLive exposes an entry's FirstPerson component as an
// interp.LiveState.
type FirstPersonLive struct {
	Entry *donburi.Entry
}

func (l FirstPersonLive) Load(dst *viewmodel.Snapshot) {
	*dst = FirstPerson.Get(l.Entry).View
}

func (l FirstPersonLive) Store(src *viewmodel.Snapshot) {
	FirstPerson.Get(l.Entry).View = *src
}
