package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"liquid-sim/internal/app"
	"liquid-sim/internal/sims/liquid"
)

type paramSet struct {
	gain     float64
	diagonal float64
	friction float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("gain=%.3f diagonal=%.2f friction=%.5f", p.gain, p.diagonal, p.friction)
}

type scenarioResult struct {
	params  paramSet
	drift   float64
	minimum float64
	maximum float64
	err     error
}

func main() {
	ticks := flag.Int("ticks", 120, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 64, "grid width")
	height := flag.Int("h", 64, "grid height")
	gains := flag.String("gains", "0.1,0.2,0.4", "comma-separated gain values")
	diagonals := flag.String("diagonals", "0,0.5,1", "comma-separated diagonal factors")
	frictions := flag.String("frictions", "0.0001,0.001", "comma-separated friction values")
	flag.Parse()

	baseCfg := liquid.DefaultConfig()
	baseCfg.Width = *width
	baseCfg.Height = *height

	var sets []paramSet
	for _, gain := range mustFloats(*gains) {
		for _, diag := range mustFloats(*diagonals) {
			for _, friction := range mustFloats(*frictions) {
				sets = append(sets, paramSet{gain: gain, diagonal: diag, friction: friction})
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d ticks, %dx%d)\n", len(sets), *workers, *ticks, *width, *height)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < max(*workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(baseCfg, params, *ticks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		if res.err != nil {
			log.Printf("%s: %v", res.params, res.err)
			continue
		}
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool { return math.Abs(all[i].drift) < math.Abs(all[j].drift) })
	elapsed := time.Since(start)

	fmt.Printf("\nResults by absolute drift (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i, res := range all {
		fmt.Printf("%2d) drift=%+.4f range=[%.4f, %.4f] %s\n", i+1, res.drift, res.minimum, res.maximum, res.params)
	}
}

func runScenario(base liquid.Config, params paramSet, ticks int) scenarioResult {
	cfg := base
	cfg.Params.Gain = params.gain
	cfg.Params.DiagonalFactor = params.diagonal
	cfg.Params.Friction = params.friction

	sim, err := liquid.NewWithConfig(cfg)
	if err != nil {
		return scenarioResult{params: params, err: err}
	}
	rec := app.Run(context.Background(), sim, app.RunOptions{Ticks: ticks}, nil)
	lo, hi := rec.Bounds()
	return scenarioResult{params: params, drift: rec.Drift(), minimum: lo, maximum: hi}
}

func mustFloats(list string) []float64 {
	var out []float64
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			log.Fatalf("parse %q: %v", part, err)
		}
		out = append(out, v)
	}
	return out
}
