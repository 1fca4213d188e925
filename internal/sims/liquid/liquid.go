package liquid

import (
	"fmt"

	"liquid-sim/internal/core"
)

// Liquid runs the pressure/flow lattice as a core.Sim.
type Liquid struct {
	cfg    Config
	kernel Kernel
	lat    *Lattice

	tick  int
	total float32
}

// New returns a liquid simulation with the provided dimensions using defaults.
func New(w, h int) (*Liquid, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig validates cfg, allocates the lattice and seeds it.
func NewWithConfig(cfg Config) (*Liquid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("liquid config: %w", err)
	}
	lat, err := NewLattice(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	l := &Liquid{cfg: cfg, kernel: NewKernel(cfg.Params), lat: lat}
	l.Reset(0)
	return l, nil
}

// Name returns the simulation identifier.
func (l *Liquid) Name() string { return "liquid" }

// Size reports the grid dimensions.
func (l *Liquid) Size() core.Size { return l.lat.Size() }

// Config returns the active configuration.
func (l *Liquid) Config() Config { return l.cfg }

// Kernel returns the active kernel constants.
func (l *Liquid) Kernel() Kernel { return l.kernel }

// Lattice exposes the live grids. Callers must not hold on to the flow grid
// across ticks; the buffers swap roles every Step.
func (l *Liquid) Lattice() *Lattice { return l.lat }

// Tick returns the number of ticks since the last reset.
func (l *Liquid) Tick() int { return l.tick }

// Scalars exposes the live pressure cells.
func (l *Liquid) Scalars() []float32 { return l.lat.Pressure().Cells() }

// Vectors exposes the live flow cells.
func (l *Liquid) Vectors() []core.Vec2 { return l.lat.Flow().Cells() }

// TotalPressure returns the pressure sum recorded after the last tick or reset.
func (l *Liquid) TotalPressure() float32 { return l.total }

// Total implements core.Diagnostics.
func (l *Liquid) Total() float64 { return float64(l.total) }

// Reset reseeds the lattice. A zero seed uses the configured one; the seed only
// matters when SeedNoise is non-zero.
func (l *Liquid) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = l.cfg.Seed
	}
	l.lat.Seed(l.cfg.Params, core.NewRNG(effective))
	l.tick = 0
	l.total = l.lat.TotalPressure()
}

// Step advances the simulation by one tick.
func (l *Liquid) Step() {
	l.lat.Step(&l.kernel)
	l.tick++
	l.total = l.lat.TotalPressure()
}

func init() {
	core.Register("liquid", func(cfg map[string]string) (core.Sim, error) {
		l, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return l, nil
	})
	core.Register("liquid-diagonal", func(cfg map[string]string) (core.Sim, error) {
		base := DefaultConfig()
		base.Params.DiagonalFactor = 1
		l, err := NewWithConfig(ApplyMap(base, cfg))
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
