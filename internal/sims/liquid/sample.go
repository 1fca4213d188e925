package liquid

import "liquid-sim/internal/core"

// SamplePressure returns the pressure at (x, y) + off. Out-of-range neighbors
// read as the center cell, so edges see no gradient. (x, y) must be in bounds.
func SamplePressure(g *core.Grid[float32], x, y int, off Offset) float32 {
	nx, ny := x+off.DX, y+off.DY
	if !g.InBounds(nx, ny) {
		return g.At(x, y)
	}
	return g.At(nx, ny)
}

// SampleFlow returns the flow at (x, y) + off. Out-of-range neighbors read as
// the zero vector.
func SampleFlow(g *core.Grid[core.Vec2], x, y int, off Offset) core.Vec2 {
	nx, ny := x+off.DX, y+off.DY
	if !g.InBounds(nx, ny) {
		return core.Vec2{}
	}
	return g.At(nx, ny)
}
