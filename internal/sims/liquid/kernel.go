package liquid

import "liquid-sim/internal/core"

// Kernel holds the per-cell update constants in simulation precision.
type Kernel struct {
	Dirs     [8]core.Vec2
	Gain     float32
	Friction float32
	Diagonal float32
	Gravity  core.Vec2
}

// NewKernel converts params into a Kernel.
func NewKernel(p Params) Kernel {
	diag := float32(p.DiagonalFactor)
	return Kernel{
		Dirs:     Directions(diag),
		Gain:     float32(p.Gain),
		Friction: float32(p.Friction),
		Diagonal: diag,
		Gravity:  core.Vec2{X: float32(p.GravityX), Y: float32(p.GravityY)},
	}
}

// Flow returns the updated flow at (x, y): old plus the summed pressure
// differences towards each neighbor, projected on its direction and scaled by
// the gain.
func (k *Kernel) Flow(pressure *core.Grid[float32], x, y int, old core.Vec2) core.Vec2 {
	center := SamplePressure(pressure, x, y, Center)
	force := k.Gravity
	for i, off := range Offsets {
		diff := SamplePressure(pressure, x, y, off) - center
		force = force.Add(k.Dirs[i].Scale(diff))
	}
	return old.Add(force.Scale(k.Gain))
}

// PressureDelta returns the change of pressure at (x, y) from the flow of its
// neighbors projected on each direction.
func (k *Kernel) PressureDelta(flow *core.Grid[core.Vec2], x, y int) float32 {
	scale := 1 + k.Diagonal
	var delta float32
	for i, off := range Offsets {
		f := SampleFlow(flow, x, y, off)
		delta += float32(f.Dot(k.Dirs[i]) * scale)
	}
	return delta
}

// Diffuse returns the smoothed flow at (x, y) read from the frozen src grid.
func (k *Kernel) Diffuse(src *core.Grid[core.Vec2], x, y int) core.Vec2 {
	center := SampleFlow(src, x, y, Center)
	var sum core.Vec2
	for _, off := range Offsets {
		sum = sum.Add(SampleFlow(src, x, y, off).Sub(center))
	}
	return center.Add(sum.Scale(k.Friction))
}

// UpdateFlow applies the flow kernel to every cell in row-major order.
func (k *Kernel) UpdateFlow(pressure *core.Grid[float32], flow *core.Grid[core.Vec2]) {
	cells := flow.Cells()
	for y := 0; y < flow.H; y++ {
		for x := 0; x < flow.W; x++ {
			idx := flow.Index(x, y)
			cells[idx] = k.Flow(pressure, x, y, cells[idx])
		}
	}
}

// UpdatePressure integrates the flow field into pressure in row-major order.
func (k *Kernel) UpdatePressure(pressure *core.Grid[float32], flow *core.Grid[core.Vec2]) {
	cells := pressure.Cells()
	for y := 0; y < pressure.H; y++ {
		for x := 0; x < pressure.W; x++ {
			cells[pressure.Index(x, y)] += k.PressureDelta(flow, x, y)
		}
	}
}

// UpdateDiffusion writes the diffused src field into dst.
func (k *Kernel) UpdateDiffusion(src, dst *core.Grid[core.Vec2]) {
	cells := dst.Cells()
	for y := 0; y < dst.H; y++ {
		for x := 0; x < dst.W; x++ {
			cells[dst.Index(x, y)] = k.Diffuse(src, x, y)
		}
	}
}

// StepGrids runs one tick over caller-owned grids: flow, then pressure, then
// diffusion of flow into scratch. The caller swaps flow and scratch afterwards.
// Grids of mismatched size are rejected before any cell is touched.
func StepGrids(k *Kernel, pressure *core.Grid[float32], flow, scratch *core.Grid[core.Vec2]) error {
	if err := checkSizes(pressure, flow, scratch); err != nil {
		return err
	}
	k.step(pressure, flow, scratch)
	return nil
}

func (k *Kernel) step(pressure *core.Grid[float32], flow, scratch *core.Grid[core.Vec2]) {
	k.UpdateFlow(pressure, flow)
	k.UpdatePressure(pressure, flow)
	k.UpdateDiffusion(flow, scratch)
}
