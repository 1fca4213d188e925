package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"liquid-sim/internal/core"
	"liquid-sim/internal/diag"
)

// Build looks up the configured sim in the registry and constructs it.
func Build(cfg *Config) (core.Sim, error) {
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return nil, &UnknownSimError{Name: cfg.Sim, Known: core.SimNames()}
	}
	return factory(cfg.SimConfig())
}

// UnknownSimError reports a -sim name missing from the registry.
type UnknownSimError struct {
	Name  string
	Known []string
}

func (e *UnknownSimError) Error() string {
	return fmt.Sprintf("unknown sim %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}

// RunOptions controls a headless run.
type RunOptions struct {
	Ticks    int
	LogEvery int
}

// Run advances sim for opts.Ticks ticks, recording the diagnostic total after
// the initial state and after every tick. It stops early without error when
// ctx is cancelled. A nil logger disables logging.
func Run(ctx context.Context, sim core.Sim, opts RunOptions, logger *log.Logger) *diag.Recorder {
	rec := diag.NewRecorder(opts.Ticks + 1)
	d, hasTotal := sim.(core.Diagnostics)
	record := func() {
		if !hasTotal {
			return
		}
		rec.Record(sim.Tick(), d.Total())
		if logger != nil && opts.LogEvery > 0 && sim.Tick()%opts.LogEvery == 0 {
			logger.Printf("tick %d total pressure: %v", sim.Tick(), float32(d.Total()))
		}
	}

	record()
	for i := 0; i < opts.Ticks; i++ {
		if ctx.Err() != nil {
			if logger != nil {
				logger.Printf("stopped after %d ticks: %v", sim.Tick(), ctx.Err())
			}
			break
		}
		sim.Step()
		record()
	}
	return rec
}
