package interp

import "github.com/automoto/fpinterp/viewmodel"

// LiveState is the engine-owned location the renderer reads the
// first-person view from. Implementations copy whole snapshots.
type LiveState interface {
	Load(dst *viewmodel.Snapshot)
	Store(src *viewmodel.Snapshot)
}

// Cell is a LiveState backed by a plain in-memory snapshot.
type Cell struct {
	v viewmodel.Snapshot
}

func (c *Cell) Load(dst *viewmodel.Snapshot) {
	*dst = c.v
}

func (c *Cell) Store(src *viewmodel.Snapshot) {
	c.v = *src
}

// Value returns a copy of the stored snapshot.
func (c *Cell) Value() viewmodel.Snapshot {
	return c.v
}

// Set replaces the stored snapshot, as the simulation does between ticks.
func (c *Cell) Set(s viewmodel.Snapshot) {
	c.v = s
}
