package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultController(t *testing.T) {
	saved := Default
	t.Cleanup(func() { Default = saved })
	Default = New(&Cell{}, DefaultOptions())

	cell := &Cell{}
	require.NoError(t, Bind(cell))

	cell.Set(at(0, 0))
	require.NoError(t, OnTick())
	cell.Set(at(10, 0))
	require.NoError(t, OnTick())

	require.NoError(t, Before(0.5))
	assert.InDelta(t, 5, cell.Value().CameraOffset.X(), 1e-9)
	require.NoError(t, After())
	assert.Equal(t, at(10, 0), cell.Value())

	Reset()
	assert.Zero(t, Default.Ticks())
	assert.ErrorIs(t, After(), ErrUnmatchedAfter)
}
