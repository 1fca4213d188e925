package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"liquid-sim/internal/app"
	_ "liquid-sim/internal/sims/liquid"
	"liquid-sim/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 30
	cfg.Width, cfg.Height = 160, 100
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	mode, err := cfg.RenderMode()
	if err != nil {
		log.Fatal(err)
	}
	sim, err := app.Build(cfg)
	if err != nil {
		log.Fatal(err)
	}
	fs, ok := sim.(term.FieldSim)
	if !ok {
		log.Fatalf("sim %q has no fields to render", sim.Name())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	view := term.NewView(screen, fs, mode, cfg.Seed)
	err = view.Run(ctx, cfg.TPS)
	stop()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
