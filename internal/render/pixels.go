// Package render rasterizes generated worlds into RGBA pixel buffers and
// PNG images. The terrain layer is drawn from the biome palette, then
// rivers, roads, bridges and city markers are stamped over it.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"cartogen/internal/worldgen"
)

// Mode selects the base terrain layer.
type Mode int

const (
	// ModeBiome colors each cell by its classified biome.
	ModeBiome Mode = iota
	// ModeElevation shades each cell on the hypsometric ramp instead.
	ModeElevation
)

// FillRGBA writes the world into buf as row-major RGBA, 4 bytes per cell.
// buf must hold at least Width*Height*4 bytes.
func FillRGBA(buf []byte, world *worldgen.WorldMap, mode Mode) {
	for i, p := range world.Terrain {
		var col color.RGBA
		if mode == ModeElevation {
			col = ElevationColor(p.Elevation)
		} else {
			col = BiomeColor(p.Biome)
		}
		putPixel(buf, i, col)
	}

	w := world.Width
	stamp := func(x, y int, col color.RGBA) {
		if x >= 0 && x < w && y >= 0 && y < world.Height {
			putPixel(buf, y*w+x, col)
		}
	}

	// Overlays, back to front: rivers, roads, bridges, cities.
	for _, river := range world.Rivers {
		for _, p := range river {
			stamp(p.X, p.Y, riverOverColor)
		}
	}
	for _, road := range world.Roads {
		col := roadTypeColor(road.Type)
		for _, p := range road.Path {
			stamp(p.X, p.Y, col)
		}
	}
	for _, b := range world.Bridges {
		stamp(b.X, b.Y, bridgeColor)
	}
	for _, c := range world.Cities {
		stamp(c.X, c.Y, cityColor)
		// Major settlements get a wider marker.
		if c.Population >= 100000 {
			stamp(c.X-1, c.Y, cityColor)
			stamp(c.X+1, c.Y, cityColor)
			stamp(c.X, c.Y-1, cityColor)
			stamp(c.X, c.Y+1, cityColor)
		}
	}
}

// Image renders the world into a new RGBA image.
func Image(world *worldgen.WorldMap, mode Mode) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, world.Width, world.Height))
	if world.Width > 0 && world.Height > 0 {
		FillRGBA(img.Pix, world, mode)
	}
	return img
}

// WritePNG renders the world and encodes it as PNG to w.
func WritePNG(w io.Writer, world *worldgen.WorldMap, mode Mode) error {
	return png.Encode(w, Image(world, mode))
}

func putPixel(buf []byte, i int, col color.RGBA) {
	base := i * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}
