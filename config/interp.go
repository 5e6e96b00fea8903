package config

import (
	"github.com/automoto/fpinterp/interp"
	"github.com/automoto/fpinterp/viewmodel"
)

// Options converts the settings into controller options. An unknown angle
// mode falls back to shortest-arc; Validate reports it.
func (c InterpConfig) Options() interp.Options {
	mode, _ := viewmodel.ParseAngleMode(c.AngleMode)
	return interp.Options{
		Enabled:           c.Enabled,
		MaxAlpha:          c.MaxAlpha,
		AngleMode:         mode,
		SkipDiscontinuous: c.SkipDiscontinuous,
		Strict:            c.Strict,
	}
}

// Extrapolating reports whether frames may run past the latest tick.
func (c InterpConfig) Extrapolating() bool {
	return c.MaxAlpha > 1
}

// ClampTickRate limits tps to [MinTickRate, MaxTickRate].
func (c InterpConfig) ClampTickRate(tps int) int {
	if tps < c.MinTickRate {
		return c.MinTickRate
	}
	if c.MaxTickRate > 0 && tps > c.MaxTickRate {
		return c.MaxTickRate
	}
	return tps
}
