package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"liquid-sim/internal/app"
	"liquid-sim/internal/core"
	"liquid-sim/internal/diag"
	"liquid-sim/internal/render"
	_ "liquid-sim/internal/sims/liquid"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	ticks := flag.Int("ticks", 200, "ticks to simulate")
	logEvery := flag.Int("log-every", 1, "log the pressure total every N ticks (0 disables)")
	chartPath := flag.String("chart", "", "write the pressure total series as a PNG chart")
	csvPath := flag.String("csv", "", "write the pressure total series as CSV")
	framePath := flag.String("frame", "", "write the final frame as PNG")
	flag.Parse()

	mode, err := cfg.RenderMode()
	if err != nil {
		log.Fatal(err)
	}
	sim, err := app.Build(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	size := sim.Size()
	logger.Printf("running %s %dx%d for %d ticks", sim.Name(), size.W, size.H, *ticks)
	rec := app.Run(ctx, sim, app.RunOptions{Ticks: *ticks, LogEvery: *logEvery}, logger)

	lo, hi := rec.Bounds()
	fmt.Printf("ticks=%d drift=%.4f min=%.4f max=%.4f\n", sim.Tick(), rec.Drift(), lo, hi)

	if *csvPath != "" {
		if err := writeFile(*csvPath, rec.WriteCSV); err != nil {
			log.Fatalf("write csv: %v", err)
		}
	}
	if *chartPath != "" {
		title := fmt.Sprintf("%s total pressure (%dx%d)", sim.Name(), size.W, size.H)
		err := writeFile(*chartPath, func(w io.Writer) error { return rec.RenderChart(w, title) })
		switch {
		case errors.Is(err, diag.ErrTooFewSamples):
			logger.Printf("skipping chart: %v", err)
		case err != nil:
			log.Fatalf("write chart: %v", err)
		}
	}
	if *framePath != "" {
		if err := writeFrame(*framePath, sim, mode); err != nil {
			log.Fatalf("write frame: %v", err)
		}
	}
}

func writeFrame(path string, sim core.Sim, mode render.Mode) error {
	src, ok := sim.(core.FieldSource)
	if !ok {
		return fmt.Errorf("sim %q has no fields to render", sim.Name())
	}
	img := render.Image(src, sim.Size(), mode)
	return writeFile(path, func(w io.Writer) error { return png.Encode(w, img) })
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
