package liquid

import (
	"errors"
	"fmt"
	"math"

	"liquid-sim/internal/core"
)

var (
	// ErrInvalidSize reports a zero or negative lattice dimension.
	ErrInvalidSize = core.ErrInvalidSize
	// ErrSizeMismatch reports pressure and flow grids of different shapes.
	ErrSizeMismatch = errors.New("pressure and flow grid sizes differ")
)

// Lattice owns the pressure grid and the two flow buffers. Flow is the live
// buffer; scratch receives the diffusion pass and swaps with it after a tick.
type Lattice struct {
	pressure *core.Grid[float32]
	flow     *core.Grid[core.Vec2]
	scratch  *core.Grid[core.Vec2]
}

// NewLattice allocates a zeroed lattice.
func NewLattice(w, h int) (*Lattice, error) {
	pressure, err := core.NewGrid[float32](w, h)
	if err != nil {
		return nil, err
	}
	flow, _ := core.NewGrid[core.Vec2](w, h)
	scratch, _ := core.NewGrid[core.Vec2](w, h)
	return &Lattice{pressure: pressure, flow: flow, scratch: scratch}, nil
}

// NewLatticeFrom wraps existing grids. All three must share dimensions.
func NewLatticeFrom(pressure *core.Grid[float32], flow, scratch *core.Grid[core.Vec2]) (*Lattice, error) {
	if err := checkSizes(pressure, flow, scratch); err != nil {
		return nil, err
	}
	return &Lattice{pressure: pressure, flow: flow, scratch: scratch}, nil
}

func checkSizes(pressure *core.Grid[float32], flow, scratch *core.Grid[core.Vec2]) error {
	if pressure == nil || flow == nil || scratch == nil {
		return fmt.Errorf("%w: nil grid", ErrSizeMismatch)
	}
	if !flow.SameSize(pressure.Size()) || !scratch.SameSize(pressure.Size()) {
		return fmt.Errorf("%w: pressure %dx%d, flow %dx%d, scratch %dx%d", ErrSizeMismatch,
			pressure.W, pressure.H, flow.W, flow.H, scratch.W, scratch.H)
	}
	return nil
}

// Size reports the lattice dimensions.
func (l *Lattice) Size() core.Size { return l.pressure.Size() }

// Pressure returns the live pressure grid.
func (l *Lattice) Pressure() *core.Grid[float32] { return l.pressure }

// Flow returns the live flow grid.
func (l *Lattice) Flow() *core.Grid[core.Vec2] { return l.flow }

// Step advances the lattice by one tick and swaps the flow buffers.
func (l *Lattice) Step(k *Kernel) {
	k.step(l.pressure, l.flow, l.scratch)
	l.flow, l.scratch = l.scratch, l.flow
}

// TotalPressure sums every pressure cell in row-major order. The scheme does
// not conserve it.
func (l *Lattice) TotalPressure() float32 {
	var sum float32
	for _, p := range l.pressure.Cells() {
		sum += p
	}
	return sum
}

// Seed fills pressure with the radial profile, forces the center cell to the
// hotspot value and zeroes both flow buffers.
func (l *Lattice) Seed(p Params, rng *core.RNG) {
	w, h := l.pressure.W, l.pressure.H
	center := core.Vec2{X: float32(w) / 2, Y: float32(h) / 2}
	base := float32(p.SeedBase)
	radius := float32(p.SeedRadius)
	noise := float32(p.SeedNoise)
	cells := l.pressure.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dist := center.Sub(core.Vec2{X: float32(x), Y: float32(y)}).Length()
			value := max(0, float32(math.Abs(float64(radius-dist))))
			v := base + value
			if noise > 0 && rng != nil {
				v += float32(noise * rng.Signed())
			}
			cells[l.pressure.Index(x, y)] = v
		}
	}
	l.pressure.Set(w/2, h/2, float32(p.Hotspot))
	l.flow.Clear()
	l.scratch.Clear()
}
