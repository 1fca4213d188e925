//go:build ebiten

package render

import (
	"liquid-sim/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from pressure/flow cell data.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the fields into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, src core.FieldSource, mode Mode, scale int) {
	pressure := src.Scalars()
	if len(pressure) != gp.w*gp.h {
		return
	}
	FillRGBA(gp.buf, pressure, src.Vectors(), mode)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
