package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	HUD
)

// InterpConfig contains first-person interpolation settings
type InterpConfig struct {
	Enabled           bool    `yaml:"enabled"`            // Blend between ticks at all
	MaxAlpha          float64 `yaml:"max_alpha"`          // 1 = interpolate only, >1 allows extrapolation
	ExtrapolateAlpha  float64 `yaml:"extrapolate_alpha"`  // MaxAlpha used when extrapolation is toggled on
	AngleMode         string  `yaml:"angle_mode"`         // "shortest" or "linear"
	SkipDiscontinuous bool    `yaml:"skip_discontinuous"` // Hold true state across weapon/animation switches
	Strict            bool    `yaml:"strict"`             // Panic on hook ordering violations
	TickRate          int     `yaml:"tick_rate"`          // Simulation ticks per second
	MinTickRate       int     `yaml:"min_tick_rate"`
	MaxTickRate       int     `yaml:"max_tick_rate"`
}

// ViewerConfig contains movement and weapon pose tuning for the viewer.
// Per-tick values assume one call per simulation tick.
type ViewerConfig struct {
	// Movement
	Acceleration float64 `yaml:"acceleration"`
	MaxSpeed     float64 `yaml:"max_speed"`
	Friction     float64 `yaml:"friction"`
	TurnSpeed    float64 `yaml:"turn_speed"` // Degrees per tick
	LookSpeed    float64 `yaml:"look_speed"` // Degrees per tick
	MaxPitch     float64 `yaml:"max_pitch"`

	// Dimensions
	CollisionSize float64 `yaml:"collision_size"`

	// Weapon pose
	NodeCount      int     `yaml:"node_count"`       // Pose nodes per weapon model
	WeaponCount    int     `yaml:"weapon_count"`     // Weapons cycled by ActionSwitchWeapon
	BobAmplitude   float64 `yaml:"bob_amplitude"`    // Model units at full speed
	BobFrequency   float64 `yaml:"bob_frequency"`    // Radians per unit travelled
	SwayPerDegree  float64 `yaml:"sway_per_degree"`  // Lateral offset per degree of turn
	IdleBreathRate float64 `yaml:"idle_breath_rate"` // Radians per tick
	EyeHeight      float64 `yaml:"eye_height"`

	// Recoil
	RecoilKick     float64 `yaml:"recoil_kick"`     // Backward offset at the start of the kick
	RecoilPitch    float64 `yaml:"recoil_pitch"`    // Degrees of muzzle climb
	RecoilDuration float64 `yaml:"recoil_duration"` // Seconds
}

// ArenaConfig describes the walled room the viewer moves in
type ArenaConfig struct {
	Width         int
	Height        int
	CellSize      int
	WallThickness float64
	SpawnX        float64
	SpawnY        float64
}

// Config holds general demo configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHUD    bool
	ConfigFile string // YAML overlay, watched for changes
	WatchFile  bool
}

// Global configuration instances
var C *Config
var Interp InterpConfig
var Viewer ViewerConfig
var Arena ArenaConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// WeaponColors tints each weapon model by WeaponID
var WeaponColors = []color.RGBA{
	LightBlue,
	Orange,
	LightGreen,
}

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Interp = InterpConfig{
		Enabled:           true,
		MaxAlpha:          1.0,
		ExtrapolateAlpha:  2.0,
		AngleMode:         "shortest",
		SkipDiscontinuous: true,
		Strict:            false,
		TickRate:          20, // Low on purpose so the gap between ticks is visible
		MinTickRate:       5,
		MaxTickRate:       120,
	}

	Viewer = ViewerConfig{
		// Movement
		Acceleration: 1.2,
		MaxSpeed:     9.0,
		Friction:     0.6,
		TurnSpeed:    9.0,
		LookSpeed:    4.0,
		MaxPitch:     60.0,

		// Dimensions
		CollisionSize: 16,

		// Weapon pose
		NodeCount:      6,
		WeaponCount:    3,
		BobAmplitude:   6.0,
		BobFrequency:   0.12,
		SwayPerDegree:  1.5,
		IdleBreathRate: 0.08,
		EyeHeight:      48,

		// Recoil
		RecoilKick:     18,
		RecoilPitch:    6,
		RecoilDuration: 0.25,
	}

	Arena = ArenaConfig{
		Width:         960,
		Height:        960,
		CellSize:      16,
		WallThickness: 32,
		SpawnX:        480,
		SpawnY:        480,
	}

	Debug = DebugConfig{
		ShowHUD:    true,
		ConfigFile: "fpinterp.yaml",
		WatchFile:  true,
	}
}
