package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/fpinterp/viewmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFileOverlay(t *testing.T) {
	base := Current()
	data := []byte(`
interp:
  max_alpha: 1.5
  angle_mode: linear
viewer:
  node_count: 4
`)
	fc, err := ParseFile(data, base)
	require.NoError(t, err)

	assert.Equal(t, 1.5, fc.Interp.MaxAlpha)
	assert.Equal(t, "linear", fc.Interp.AngleMode)
	assert.Equal(t, 4, fc.Viewer.NodeCount)
	// Untouched keys keep their base values.
	assert.Equal(t, base.Interp.TickRate, fc.Interp.TickRate)
	assert.Equal(t, base.Viewer.MaxSpeed, fc.Viewer.MaxSpeed)

	opts := fc.Interp.Options()
	assert.Equal(t, viewmodel.AngleLinear, opts.AngleMode)
	assert.Equal(t, 1.5, opts.MaxAlpha)
	assert.True(t, fc.Interp.Extrapolating())
}

func TestParseFileRejectsInvalid(t *testing.T) {
	base := Current()
	cases := map[string]string{
		"angle mode":          "interp:\n  angle_mode: spline\n",
		"tick rate":           "interp:\n  tick_rate: 0\n",
		"max alpha":           "interp:\n  max_alpha: -1\n",
		"max alpha below one": "interp:\n  max_alpha: 0.5\n",
		"extrapolate alpha":   "interp:\n  extrapolate_alpha: 0.9\n",
		"node count":          "viewer:\n  node_count: 500\n",
		"weapons":             "viewer:\n  weapon_count: 0\n",
		"syntax":              "interp: [",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			fc, err := ParseFile([]byte(data), base)
			assert.Error(t, err)
			assert.Equal(t, base, fc, "base is returned untouched")
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadFileAndApply(t *testing.T) {
	saved := Current()
	t.Cleanup(func() { Apply(saved) })

	path := filepath.Join(t.TempDir(), "fpinterp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interp:\n  tick_rate: 30\n"), 0o644))

	fc, err := LoadFile(path)
	require.NoError(t, err)
	Apply(fc)
	assert.Equal(t, 30, Interp.TickRate)
}

func TestClampTickRate(t *testing.T) {
	c := InterpConfig{MinTickRate: 5, MaxTickRate: 120}
	assert.Equal(t, 5, c.ClampTickRate(1))
	assert.Equal(t, 60, c.ClampTickRate(60))
	assert.Equal(t, 120, c.ClampTickRate(500))
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fpinterp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interp: {}\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	// Writes to other files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("interp:\n  tick_rate: 40\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, filepath.Base(path), filepath.Base(name))
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for config write")
	}
}
