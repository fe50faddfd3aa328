package main

import (
	"context"
	"flag"
	"image"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/automoto/kaipoche/config"
	"github.com/automoto/kaipoche/fonts"
	"github.com/automoto/kaipoche/scenes"
	"github.com/automoto/kaipoche/shared/ids"
	"github.com/automoto/kaipoche/systems"
	"github.com/automoto/kaipoche/telemetry"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return n
		}
		log.Printf("[main] ignoring %s=%q: %v", key, v, err)
	}
	return fallback
}

func main() {
	// Not fatal - env vars might be set directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[main] .env not loaded: %v", err)
	}

	tuning := flag.String("tuning", os.Getenv("KAIPOCHE_TUNING"), "YAML file overriding gameplay tuning")
	seed := flag.Int64("seed", envInt64("KAIPOCHE_SEED", time.Now().UnixNano()), "Random seed for scenery and spawns")
	skipMenu := flag.Bool("skipmenu", false, "Start a session immediately")
	tutorial := flag.Bool("tutorial", false, "With -skipmenu, start the tutorial instead of play")
	muted := flag.Bool("muted", false, "Start with sound off")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("[main] %v", err)
		}
		log.Printf("[main] tuning loaded from %s", *tuning)
	}
	config.Debug.SkipMenu = *skipMenu
	config.Debug.Tutorial = *tutorial
	config.Debug.Seed = *seed

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("[main] telemetry disabled: %v", err)
	}
	defer func() {
		if shutdown != nil {
			_ = shutdown(ctx)
		}
	}()

	// Initialize persistence and load saved settings
	store, err := systems.OpenStore()
	if err != nil {
		log.Printf("[main] no save directory, progress will not persist: %v", err)
		store = systems.NewMemoryStore()
	}
	opts := systems.SimulationOptions{
		Seed:      *seed,
		IDs:       ids.UUID{},
		HighScore: systems.LoadHighScore(store),
	}
	if saved, err := systems.LoadSettings(store); err == nil && saved != nil {
		opts.Muted = saved.Muted
		opts.ColorIndex = saved.ColorIndex
	}
	if *muted {
		opts.Muted = true
	}

	fonts.LoadDefaults()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.UI.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(scenes.NewSkyScene(store, opts))); err != nil {
		log.Printf("[main] %v", err)
	}
}
