package render

import (
	"image/color"

	"cartogen/internal/worldgen"
)

// biomePalette maps each biome to its map color.
var biomePalette = [worldgen.BiomeCount]color.RGBA{
	worldgen.BiomeDeepOcean: {R: 0, G: 20, B: 80, A: 255},
	worldgen.BiomeOcean:     {R: 5, G: 40, B: 120, A: 255},
	worldgen.BiomeShore:     {R: 20, G: 70, B: 160, A: 255},
	worldgen.BiomeBeach:     {R: 220, G: 200, B: 160, A: 255},
	worldgen.BiomePlains:    {R: 120, G: 180, B: 90, A: 255},
	worldgen.BiomeForest:    {R: 50, G: 120, B: 50, A: 255},
	worldgen.BiomeHills:     {R: 140, G: 160, B: 100, A: 255},
	worldgen.BiomeMountains: {R: 140, G: 130, B: 120, A: 255},
	worldgen.BiomeSnowPeaks: {R: 245, G: 245, B: 250, A: 255},
	worldgen.BiomeRiver:     {R: 20, G: 60, B: 120, A: 255},
	worldgen.BiomeLake:      {R: 15, G: 55, B: 100, A: 255},
	worldgen.BiomeSwamp:     {R: 60, G: 80, B: 60, A: 255},
	worldgen.BiomeDesert:    {R: 230, G: 210, B: 170, A: 255},
}

// BiomeColor returns the map color for a biome. Unknown values render as
// magenta so they stand out.
func BiomeColor(b worldgen.Biome) color.RGBA {
	if b >= worldgen.BiomeCount {
		return color.RGBA{R: 255, G: 0, B: 255, A: 255}
	}
	return biomePalette[b]
}

// ElevationColor shades an elevation in [-1, 1] on a hypsometric ramp:
// deep blue water through green lowlands up to white peaks.
func ElevationColor(elevation float64) color.RGBA {
	e := (elevation + 1.0) / 2.0
	switch {
	case e < 0.2:
		t := e / 0.2
		return lerpRGB(0, 20, 80, 20, 70, 160, t)
	case e < 0.45:
		t := (e - 0.2) / 0.25
		return lerpRGB(20, 70, 160, 120, 180, 90, t)
	case e < 0.6:
		t := (e - 0.45) / 0.15
		return lerpRGB(120, 180, 90, 140, 160, 100, t)
	case e < 0.85:
		t := (e - 0.6) / 0.25
		return lerpRGB(140, 160, 100, 140, 130, 120, t)
	default:
		t := (e - 0.85) / 0.15
		if t > 1 {
			t = 1
		}
		return lerpRGB(140, 130, 120, 245, 245, 250, t)
	}
}

// Overlay colors for the non-terrain features.
var (
	cityColor      = color.RGBA{R: 230, G: 60, B: 60, A: 255}
	highwayColor   = color.RGBA{R: 90, G: 60, B: 30, A: 255}
	roadColor      = color.RGBA{R: 120, G: 90, B: 50, A: 255}
	trailColor     = color.RGBA{R: 150, G: 120, B: 80, A: 255}
	bridgeColor    = color.RGBA{R: 80, G: 80, B: 90, A: 255}
	riverOverColor = color.RGBA{R: 20, G: 60, B: 120, A: 255}
)

func roadTypeColor(roadType string) color.RGBA {
	switch roadType {
	case worldgen.RoadTypeHighway:
		return highwayColor
	case worldgen.RoadTypeRoad:
		return roadColor
	default:
		return trailColor
	}
}

func lerpRGB(r0, g0, b0, r1, g1, b1 float64, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(r0 + (r1-r0)*t),
		G: uint8(g0 + (g1-g0)*t),
		B: uint8(b0 + (b1-b0)*t),
		A: 255,
	}
}
