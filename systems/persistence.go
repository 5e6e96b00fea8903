package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/fpinterp/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the interpolation settings stored on disk
type SavedSettings struct {
	Enabled     bool   `json:"enabled"`
	Extrapolate bool   `json:"extrapolate"`
	AngleMode   string `json:"angleMode"`
	TickRate    int    `json:"tickRate"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "fpinterp",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings captures the active interpolation settings
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		Enabled:     cfg.Interp.Enabled,
		Extrapolate: cfg.Interp.Extrapolating(),
		AngleMode:   cfg.Interp.AngleMode,
		TickRate:    cfg.Interp.TickRate,
	}
}

// SaveCurrentSettings saves the active interpolation settings
func SaveCurrentSettings() {
	_ = SaveSettings(CurrentSettings())
}

// ApplySavedSettings copies loaded settings into the global config.
// Used during startup before the scene creates any controller.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}

	cfg.Interp.Enabled = saved.Enabled
	if saved.Extrapolate {
		cfg.Interp.MaxAlpha = cfg.Interp.ExtrapolateAlpha
	} else {
		cfg.Interp.MaxAlpha = 1
	}
	if saved.AngleMode != "" {
		cfg.Interp.AngleMode = saved.AngleMode
	}
	if saved.TickRate > 0 {
		cfg.Interp.TickRate = cfg.Interp.ClampTickRate(saved.TickRate)
	}
}
