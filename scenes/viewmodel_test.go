package scenes

import (
	"os"
	"path/filepath"
	"testing"

	cfg "github.com/automoto/fpinterp/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseStopsWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fpinterp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interp:\n  tick_rate: 20\n"), 0o644))

	w, err := cfg.NewWatcher(path)
	require.NoError(t, err)

	vs := &ViewmodelScene{watcher: w}
	require.NoError(t, vs.Close())
	assert.Nil(t, vs.watcher)
	assert.NoError(t, vs.Close(), "closing twice is harmless")
	assert.NoError(t, NewViewmodelScene().Close(), "nothing to close before configure")
}
