//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"lifegame/internal/app"
	"lifegame/internal/core"
	_ "lifegame/internal/sims/totalistic"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q, available: %s", cfg.Sim, strings.Join(core.Names(), ", "))
	}

	sim := factory(cfg.SimConfig())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.HUD, cfg.TPS, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("lifegame — " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUD, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
