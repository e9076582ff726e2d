package worldgen

import "testing"

func TestRiversShapeAndBounds(t *testing.T) {
	world := Generate(21, DefaultSettings(), 96, 72)
	for i, river := range world.Rivers {
		if len(river) <= riverMinPoolLength {
			t.Errorf("river %d has only %d cells", i, len(river))
		}
		for _, p := range river {
			if p.X < 0 || p.X >= world.Width || p.Y < 0 || p.Y >= world.Height {
				t.Fatalf("river %d leaves the map at (%d, %d)", i, p.X, p.Y)
			}
		}
	}
}

func TestRiversCarveBiome(t *testing.T) {
	world := Generate(21, DefaultSettings(), 96, 72)
	for i, river := range world.Rivers {
		for _, p := range river {
			if got := world.At(p.X, p.Y).Biome; got != BiomeRiver {
				t.Fatalf("river %d cell (%d, %d) is %v, want river", i, p.X, p.Y, got)
			}
		}
	}
}

func TestRiversFlowDownhill(t *testing.T) {
	world := Generate(33, DefaultSettings(), 96, 72)
	for i, river := range world.Rivers {
		if len(river) == 0 {
			continue
		}
		// Carving erodes the bed, but the mouth still sits low: either it
		// reached the sea or pooled below the lowland threshold.
		last := river[len(river)-1]
		if elev := world.At(last.X, last.Y).Elevation; elev >= riverPoolElevation {
			t.Errorf("river %d ends at elevation %f", i, elev)
		}
	}
}

func TestRiversDensityScaling(t *testing.T) {
	low := Settings{RiverDensity: 0.1, CityDensity: 0, LandPercentage: 0.6}
	high := Settings{RiverDensity: 1.0, CityDensity: 0, LandPercentage: 0.6}
	nLow := len(Generate(5, low, 96, 72).Rivers)
	nHigh := len(Generate(5, high, 96, 72).Rivers)
	if nHigh < nLow {
		t.Errorf("density 1.0 gave %d rivers, density 0.1 gave %d", nHigh, nLow)
	}
}
