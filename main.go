package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/automoto/fpinterp/config"
	"github.com/automoto/fpinterp/fonts"
	"github.com/automoto/fpinterp/scenes"
	"github.com/automoto/fpinterp/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	scene *scenes.ViewmodelScene
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	return &Game{scene: scenes.NewViewmodelScene()}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	flag.StringVar(&config.Debug.ConfigFile, "config", config.Debug.ConfigFile, "YAML settings overlay")
	flag.BoolVar(&config.Debug.WatchFile, "watch", config.Debug.WatchFile, "reload the settings file on change")
	flag.BoolVar(&config.Debug.ShowHUD, "hud", config.Debug.ShowHUD, "show the interpolation HUD")
	flag.Parse()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	// The settings file wins over saved toggles.
	if config.Debug.ConfigFile != "" {
		fc, err := config.LoadFile(config.Debug.ConfigFile)
		switch {
		case err == nil:
			config.Apply(fc)
		case errors.Is(err, fs.ErrNotExist):
		default:
			log.Fatalf("Failed to load settings: %v", err)
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("fpinterp")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	game := NewGame()
	err := ebiten.RunGame(game)
	if closeErr := game.scene.Close(); closeErr != nil {
		log.Printf("Warning: Could not stop config watcher: %v", closeErr)
	}
	if err != nil {
		log.Fatal(err)
	}
}
