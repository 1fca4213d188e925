package core

import (
	"errors"
	"fmt"
)

// ErrInvalidSize reports a grid constructed with a non-positive dimension.
var ErrInvalidSize = errors.New("grid dimensions must be positive")

// Grid stores a 2D lattice of cell values in row-major order.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a zero-valued grid with the given dimensions.
func NewGrid[T any](w, h int) (*Grid[T], error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Size returns the grid dimensions.
func (g *Grid[T]) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the value at (x, y). The coordinates must be in bounds.
func (g *Grid[T]) At(x, y int) T { return g.data[y*g.W+x] }

// Set stores v at (x, y). The coordinates must be in bounds.
func (g *Grid[T]) Set(x, y int, v T) { g.data[y*g.W+x] = v }

// SameSize reports whether both grids share dimensions.
func (g *Grid[T]) SameSize(s Size) bool { return g.W == s.W && g.H == s.H }

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear fills the grid with zero values.
func (g *Grid[T]) Clear() {
	var zero T
	g.Fill(zero)
}

// CopyFrom overwrites g with the contents of src. Both grids must match in size.
func (g *Grid[T]) CopyFrom(src *Grid[T]) error {
	if !g.SameSize(src.Size()) {
		return fmt.Errorf("copy %dx%d into %dx%d: size mismatch", src.W, src.H, g.W, g.H)
	}
	copy(g.data, src.data)
	return nil
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	out := &Grid[T]{W: g.W, H: g.H, data: make([]T, len(g.data))}
	copy(out.data, g.data)
	return out
}
