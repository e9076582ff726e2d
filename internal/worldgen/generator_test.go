package worldgen

import (
	"reflect"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	a := New(1234).Generate(80, 60)
	b := New(1234).Generate(80, 60)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two generators with the same seed produced different worlds")
	}
}

func TestGenerateRepeatable(t *testing.T) {
	g := New(99)
	a := g.Generate(64, 48)
	b := g.Generate(64, 48)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("repeated Generate calls on one generator diverged")
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a := New(1).Generate(64, 48)
	b := New(2).Generate(64, 48)
	if reflect.DeepEqual(a.Terrain, b.Terrain) {
		t.Fatal("different seeds produced identical terrain")
	}
}

func TestGenerateDimensions(t *testing.T) {
	cases := []struct {
		w, h int
	}{
		{0, 0},
		{0, 10},
		{10, 0},
		{-5, 20},
		{2, 2},
		{40, 30},
	}
	for _, tc := range cases {
		world := New(7).Generate(tc.w, tc.h)
		wantW, wantH := tc.w, tc.h
		if wantW < 0 {
			wantW = 0
		}
		if wantH < 0 {
			wantH = 0
		}
		if world.Width != wantW || world.Height != wantH {
			t.Errorf("Generate(%d, %d): got %dx%d", tc.w, tc.h, world.Width, world.Height)
		}
		if len(world.Terrain) != wantW*wantH {
			t.Errorf("Generate(%d, %d): %d terrain cells, want %d",
				tc.w, tc.h, len(world.Terrain), wantW*wantH)
		}
		if world.Rivers == nil || world.Cities == nil || world.Roads == nil ||
			world.Bridges == nil || world.Labels == nil {
			t.Errorf("Generate(%d, %d): nil aggregate slice", tc.w, tc.h)
		}
	}
}

func TestGenerateZeroDensities(t *testing.T) {
	settings := Settings{RiverDensity: 0, CityDensity: 0, LandPercentage: 0.4}
	world := Generate(5, settings, 80, 60)
	if len(world.Rivers) != 0 {
		t.Errorf("river density 0 produced %d rivers", len(world.Rivers))
	}
	if len(world.Cities) != 0 {
		t.Errorf("city density 0 produced %d cities", len(world.Cities))
	}
	if len(world.Roads) != 0 {
		t.Errorf("no cities but %d roads", len(world.Roads))
	}
}

func TestGenerateAllWater(t *testing.T) {
	settings := Settings{RiverDensity: 0.5, CityDensity: 0.5, LandPercentage: 0}
	world := Generate(11, settings, 64, 48)
	for i, p := range world.Terrain {
		if p.Biome.IsLand() {
			t.Fatalf("cell %d is %v despite zero land percentage", i, p.Biome)
		}
	}
	if len(world.Cities) != 0 {
		t.Errorf("all-water world has %d cities", len(world.Cities))
	}
}

func TestGenerateBiomeVariety(t *testing.T) {
	for _, dims := range [][2]int{{20, 20}, {64, 48}} {
		world := Generate(42, DefaultSettings(), dims[0], dims[1])
		seen := map[Biome]bool{}
		for _, p := range world.Terrain {
			seen[p.Biome] = true
		}
		if len(seen) < 2 {
			t.Fatalf("%dx%d: expected multiple biomes, got %d", dims[0], dims[1], len(seen))
		}
	}
}

func TestGenerateFieldRanges(t *testing.T) {
	world := Generate(3, DefaultSettings(), 64, 48)
	for i, p := range world.Terrain {
		if p.Elevation < -1.0 || p.Elevation > 1.0 {
			t.Fatalf("cell %d elevation %f out of [-1, 1]", i, p.Elevation)
		}
		if p.Moisture < 0.0 || p.Moisture > 1.0 {
			t.Fatalf("cell %d moisture %f out of [0, 1]", i, p.Moisture)
		}
	}
}

func TestWorldMapAt(t *testing.T) {
	world := Generate(8, DefaultSettings(), 16, 12)
	if got := world.At(-1, 0); got != (TerrainPoint{}) {
		t.Errorf("out-of-bounds At returned %+v", got)
	}
	if got := world.At(0, 0); got != world.Terrain[0] {
		t.Errorf("At(0,0) = %+v, want %+v", got, world.Terrain[0])
	}
}

func TestSettingsFromMap(t *testing.T) {
	s := FromMap(map[string]string{
		"rivers": "0.9",
		"cities": "-3",
		"land":   "2.5",
	})
	if s.RiverDensity != 0.9 {
		t.Errorf("rivers = %f, want 0.9", s.RiverDensity)
	}
	if s.CityDensity != 0 {
		t.Errorf("cities = %f, want clamped 0", s.CityDensity)
	}
	if s.LandPercentage != 1 {
		t.Errorf("land = %f, want clamped 1", s.LandPercentage)
	}
}
