package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/fpinterp/viewmodel"
	"gopkg.in/yaml.v3"
)

// FileConfig is the layout of the YAML overlay file.
type FileConfig struct {
	Interp InterpConfig `yaml:"interp"`
	Viewer ViewerConfig `yaml:"viewer"`
}

// Current returns the active settings in file layout.
func Current() FileConfig {
	return FileConfig{Interp: Interp, Viewer: Viewer}
}

// ParseFile overlays YAML data on base. Keys absent from data keep the
// value from base.
func ParseFile(data []byte, base FileConfig) (FileConfig, error) {
	fc := base
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return base, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := fc.Validate(); err != nil {
		return base, err
	}
	return fc, nil
}

// LoadFile reads path and overlays it on the active settings. A missing
// file is reported with an error wrapping fs.ErrNotExist.
func LoadFile(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Current(), fmt.Errorf("config: read %s: %w", path, err)
	}
	fc, err := ParseFile(data, Current())
	if err != nil {
		return fc, fmt.Errorf("config: %s: %w", path, err)
	}
	return fc, nil
}

// Apply makes fc the active settings.
func Apply(fc FileConfig) {
	Interp = fc.Interp
	Viewer = fc.Viewer
}

// Validate checks values the controller and the viewer cannot work with.
func (fc FileConfig) Validate() error {
	var errs []error
	if _, err := viewmodel.ParseAngleMode(fc.Interp.AngleMode); err != nil {
		errs = append(errs, err)
	}
	if !(fc.Interp.MaxAlpha >= 1) {
		errs = append(errs, fmt.Errorf("max_alpha %v below 1", fc.Interp.MaxAlpha))
	}
	if !(fc.Interp.ExtrapolateAlpha >= 1) {
		errs = append(errs, fmt.Errorf("extrapolate_alpha %v below 1", fc.Interp.ExtrapolateAlpha))
	}
	if fc.Interp.TickRate < 1 {
		errs = append(errs, fmt.Errorf("tick_rate %d must be positive", fc.Interp.TickRate))
	}
	if fc.Interp.MaxTickRate > 0 && fc.Interp.MinTickRate > fc.Interp.MaxTickRate {
		errs = append(errs, fmt.Errorf("min_tick_rate %d above max_tick_rate %d", fc.Interp.MinTickRate, fc.Interp.MaxTickRate))
	}
	if fc.Viewer.NodeCount < 1 || fc.Viewer.NodeCount > viewmodel.MaxNodes {
		errs = append(errs, fmt.Errorf("node_count %d outside [1, %d]", fc.Viewer.NodeCount, viewmodel.MaxNodes))
	}
	if fc.Viewer.WeaponCount < 1 {
		errs = append(errs, fmt.Errorf("weapon_count %d must be positive", fc.Viewer.WeaponCount))
	}
	return errors.Join(errs...)
}
