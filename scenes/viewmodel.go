package scenes

import (
	"errors"
	"image/color"
	"io/fs"
	"log"
	"sync"
	"time"

	cfg "github.com/automoto/fpinterp/config"
	"github.com/automoto/fpinterp/systems"
	"github.com/automoto/fpinterp/systems/factory"
	"github.com/automoto/fpinterp/timing"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ViewmodelScene runs the first-person viewer at a fixed tick rate and
// blends its view between ticks on every frame.
type ViewmodelScene struct {
	ecs     *ecs.ECS
	clock   *timing.FrameClock
	watcher *cfg.Watcher
	tps     int
	once    sync.Once
}

func NewViewmodelScene() *ViewmodelScene {
	return &ViewmodelScene{}
}

func (vs *ViewmodelScene) Update() {
	vs.once.Do(vs.configure)

	vs.reloadConfig()
	vs.ecs.Update()
	vs.clock.Tick(time.Now())
	vs.syncTickRate()
}

func (vs *ViewmodelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if vs.ecs == nil {
		return
	}
	alpha := vs.clock.Fraction(time.Now())
	err := systems.DrawInterpolated(vs.ecs.World, alpha, func() {
		vs.ecs.Draw(screen)
	})
	if err != nil {
		log.Printf("[interp] frame: %v", err)
	}
}

// Close stops watching the config file.
func (vs *ViewmodelScene) Close() error {
	if vs.watcher == nil {
		return nil
	}
	err := vs.watcher.Close()
	vs.watcher = nil
	return err
}

func (vs *ViewmodelScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateInterpSettings)
	e.AddSystem(systems.UpdateViewer)
	e.AddSystem(systems.UpdateRecoil)
	e.AddSystem(systems.UpdatePose)
	// Must be last: captures the finished tick.
	e.AddSystem(systems.UpdateFPTick)

	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawViewmodel)
	e.AddRenderer(cfg.HUD, systems.DrawMinimap)
	e.AddRenderer(cfg.HUD, systems.DrawHUD)

	vs.ecs = e

	factory.CreateArena(vs.ecs)
	factory.CreateViewer(vs.ecs, cfg.Arena.SpawnX, cfg.Arena.SpawnY)

	vs.tps = cfg.Interp.TickRate
	vs.clock = timing.NewFrameClock(vs.tps)
	ebiten.SetTPS(vs.tps)

	if cfg.Debug.WatchFile && cfg.Debug.ConfigFile != "" {
		w, err := cfg.NewWatcher(cfg.Debug.ConfigFile)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", cfg.Debug.ConfigFile, err)
		} else {
			vs.watcher = w
		}
	}
}

// syncTickRate follows tick rate changes made by input or a reload.
func (vs *ViewmodelScene) syncTickRate() {
	if cfg.Interp.TickRate == vs.tps {
		return
	}
	vs.tps = cfg.Interp.TickRate
	ebiten.SetTPS(vs.tps)
	vs.clock.SetTPS(vs.tps)
}

func (vs *ViewmodelScene) reloadConfig() {
	if vs.watcher == nil {
		return
	}
	for {
		select {
		case path := <-vs.watcher.Events:
			fc, err := cfg.LoadFile(path)
			if err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					log.Printf("Warning: Could not reload %s: %v", path, err)
				}
				continue
			}
			cfg.Apply(fc)
			systems.ApplyInterpOptions(vs.ecs.World, cfg.Interp.Options())
			log.Printf("Reloaded %s", path)
		case err := <-vs.watcher.Errors:
			log.Printf("Warning: config watcher: %v", err)
		default:
			return
		}
	}
}
