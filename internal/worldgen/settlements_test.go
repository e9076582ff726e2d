package worldgen

import (
	"math"
	"testing"
)

func settlementWorld(t *testing.T, seed uint32) *WorldMap {
	t.Helper()
	settings := Settings{RiverDensity: 0.3, CityDensity: 0.8, LandPercentage: 0.7}
	return Generate(seed, settings, 96, 72)
}

func TestCitiesOnHabitableLand(t *testing.T) {
	world := settlementWorld(t, 17)
	for _, c := range world.Cities {
		if c.X < 2 || c.X >= world.Width-2 || c.Y < 2 || c.Y >= world.Height-2 {
			t.Errorf("%q sits at the map edge (%d, %d)", c.Name, c.X, c.Y)
		}
		switch world.At(c.X, c.Y).Biome {
		case BiomePlains, BiomeHills, BiomeForest, BiomeDesert, BiomeBeach:
		default:
			t.Errorf("%q placed on %v", c.Name, world.At(c.X, c.Y).Biome)
		}
	}
}

func TestCitySpacingFloor(t *testing.T) {
	world := settlementWorld(t, 17)
	for i := 0; i < len(world.Cities); i++ {
		for j := i + 1; j < len(world.Cities); j++ {
			a, b := world.Cities[i], world.Cities[j]
			dist := math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
			if dist < suburbHardFloor {
				t.Errorf("%q and %q only %f apart", a.Name, b.Name, dist)
			}
		}
	}
}

func TestCityPopulations(t *testing.T) {
	world := settlementWorld(t, 23)
	for _, c := range world.Cities {
		if c.Population < 5000 || c.Population > majorBasePopulation {
			t.Errorf("%q population %d out of range", c.Name, c.Population)
		}
		if c.Name == "" {
			t.Errorf("city at (%d, %d) has no name", c.X, c.Y)
		}
	}
}

func TestCityNamesUnambiguousCoords(t *testing.T) {
	world := settlementWorld(t, 23)
	seen := map[Point]bool{}
	for _, c := range world.Cities {
		p := Point{X: c.X, Y: c.Y}
		if seen[p] {
			t.Errorf("two cities share cell (%d, %d)", c.X, c.Y)
		}
		seen[p] = true
	}
}

func TestCityDensityScaling(t *testing.T) {
	low := Settings{RiverDensity: 0, CityDensity: 0.2, LandPercentage: 0.7}
	high := Settings{RiverDensity: 0, CityDensity: 1.0, LandPercentage: 0.7}
	nLow := len(Generate(9, low, 96, 72).Cities)
	nHigh := len(Generate(9, high, 96, 72).Cities)
	if nHigh < nLow {
		t.Errorf("density 1.0 gave %d cities, density 0.2 gave %d", nHigh, nLow)
	}
}
