package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/kaipoche/assets"
	cfg "github.com/automoto/kaipoche/config"
	"github.com/automoto/kaipoche/systems"
	"github.com/automoto/kaipoche/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// SkyScene is the single play scene: menus, tutorial and unrestricted play
// all share one world and switch on the session state.
type SkyScene struct {
	ecs     *ecs.ECS
	overlay *ui.OverlayUI
	store   systems.Store
	opts    systems.SimulationOptions
	once    sync.Once
}

// NewSkyScene creates the scene. The world is built on the first update.
func NewSkyScene(store systems.Store, opts systems.SimulationOptions) *SkyScene {
	return &SkyScene{store: store, opts: opts}
}

func (s *SkyScene) Update() {
	s.once.Do(s.configure)
	s.overlay.Update()
	s.ecs.Update()
}

func (s *SkyScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
	s.overlay.Draw(screen)
}

func (s *SkyScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()
	if err := assets.LoadShaders(); err != nil {
		log.Printf("[scene] shaders unavailable, using flat sky: %v", err)
	}

	e := systems.NewWorld(s.opts)

	// Host input and shortcuts run before the simulation
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateMenu)

	systems.AddSimulationSystems(e)

	// Output runs after the simulation has raised its requests
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.NewUpdatePersistence(s.store))

	e.AddRenderer(cfg.Default, systems.DrawSky)
	e.AddRenderer(cfg.Default, systems.DrawClouds)
	e.AddRenderer(cfg.Default, systems.DrawWindZones)
	e.AddRenderer(cfg.Default, systems.DrawSkyline)
	e.AddRenderer(cfg.Default, systems.DrawKites)
	e.AddRenderer(cfg.Default, systems.DrawLanterns)
	e.AddRenderer(cfg.Default, systems.DrawFloatingTexts)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	s.ecs = e
	s.overlay = ui.NewOverlayUI(e)

	if cfg.Debug.SkipMenu {
		if cfg.Debug.Tutorial {
			systems.StartTutorial(e)
		} else {
			systems.StartPlaying(e)
		}
	}
}
