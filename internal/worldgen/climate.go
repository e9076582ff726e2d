package worldgen

import "cartogen/internal/noise"

// moistureAt derives the moisture field value for cell (x, y) in [0, 1].
func (g *Generator) moistureAt(x, y int) float64 {
	scale := 1.0 / float64(mini(g.size.W, g.size.H))
	nx := float64(x) * scale
	ny := float64(y) * scale

	m := g.field.Sample(noise.Moisture, nx*3.0, ny*3.0)*0.5 + 0.5
	return clamp01(m)
}

// temperatureAt derives the temperature field value for cell (x, y) in
// [0, 1]. Temperature drops with latitude distance from the map's vertical
// center and with elevation.
func (g *Generator) temperatureAt(x, y int, elevation float64) float64 {
	scale := 1.0 / float64(mini(g.size.W, g.size.H))
	nx := float64(x) * scale
	ny := float64(y) * scale

	baseTemp := g.field.Sample(noise.Temperature, nx*2.0, ny*2.0)*0.5 + 0.5
	latitudeFactor := abs(float64(y)/float64(g.size.H)-0.5) * 2.0
	elevationFactor := (elevation + 1.0) / 2.0

	t := baseTemp * (1.0 - latitudeFactor*0.3) * (1.0 - elevationFactor*0.4)
	return clamp01(t)
}

// classifyBiome maps the scalar fields to a biome. The table is ordered on
// elevation first; moisture and temperature split the habitable bands.
func classifyBiome(elevation, moisture, temperature float64) Biome {
	switch {
	case elevation < -0.4:
		return BiomeDeepOcean
	case elevation < -0.15:
		return BiomeOcean
	case elevation < -0.05:
		return BiomeShore
	case elevation < 0.05:
		return BiomeBeach
	case elevation < 0.15:
		// Coastal lowlands.
		switch {
		case moisture > 0.85:
			return BiomeSwamp
		case moisture > 0.55:
			return BiomeForest
		case moisture < 0.25 && temperature > 0.7:
			return BiomeDesert
		default:
			return BiomePlains
		}
	case elevation < 0.25:
		// Inland plains and forests.
		switch {
		case moisture > 0.8 && temperature < 0.5:
			return BiomeSwamp
		case moisture > 0.5:
			return BiomeForest
		case moisture < 0.3 && temperature > 0.6:
			return BiomeDesert
		default:
			return BiomePlains
		}
	case elevation < 0.5:
		return BiomeHills
	case elevation < 0.75:
		return BiomeMountains
	default:
		return BiomeSnowPeaks
	}
}

func mini(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
