//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"liquid-sim/internal/app"
	_ "liquid-sim/internal/sims/liquid"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := app.Build(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.New(sim, cfg)
	if err != nil {
		log.Fatal(err)
	}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Liquid Sim - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
