//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"cartogen/internal/worldgen"
)

// WorldPainter updates a single RGBA image from a generated world.
type WorldPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewWorldPainter allocates a painter for a w*h world grid.
func NewWorldPainter(w, h int) *WorldPainter {
	wp := &WorldPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	wp.img = ebiten.NewImage(w, h)
	return wp
}

// Blit renders the world into the painter image and draws it scaled.
func (wp *WorldPainter) Blit(dst *ebiten.Image, world *worldgen.WorldMap, mode Mode, scale int) {
	if world.Width != wp.w || world.Height != wp.h {
		return
	}
	FillRGBA(wp.buf, world, mode)
	wp.img.ReplacePixels(wp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(wp.img, op)
}

// Size returns the dimensions of the underlying image.
func (wp *WorldPainter) Size() (int, int) { return wp.w, wp.h }
