package liquid

import "liquid-sim/internal/core"

// Offset is a relative cell position.
type Offset struct {
	DX, DY int
}

// Center is the zero offset.
var Center = Offset{}

// Offsets lists the 8-connected neighborhood: the four axis-aligned
// neighbors followed by the four diagonals. Directions pairs with it by index.
var Offsets = [8]Offset{
	{0, 1},
	{1, 0},
	{0, -1},
	{-1, 0},

	{-1, 1},
	{1, 1},
	{1, -1},
	{-1, -1},
}

const frac1Sqrt2 float32 = 0.70710678118654752440084436210484903928483593768847

// Directions returns the direction vector paired with each entry of Offsets.
// Diagonal vectors are scaled by diagonal.
func Directions(diagonal float32) [8]core.Vec2 {
	d := frac1Sqrt2 * diagonal
	return [8]core.Vec2{
		{X: 0, Y: 1},
		{X: 1, Y: 0},
		{X: 0, Y: -1},
		{X: -1, Y: 0},

		{X: -d, Y: d},
		{X: d, Y: d},
		{X: d, Y: -d},
		{X: -d, Y: -d},
	}
}
