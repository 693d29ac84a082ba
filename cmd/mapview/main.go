//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"mapgen/internal/app"
	"mapgen/internal/core"
	"mapgen/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := terrain.DefaultConfig()
	cfg.MapSize = 120
	cfg.Walkers = 200
	cfg.Bind(flag.CommandLine)
	tps := flag.Int("tps", 2, "stage playback steps per second")
	flag.Parse()

	if cfg.Seed == "" {
		cfg.Seed = core.RandomSeed(32)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	game := app.New(cfg, *tps, log.Default())
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("mapview: " + cfg.Seed)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
