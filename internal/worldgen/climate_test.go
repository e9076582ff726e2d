package worldgen

import "testing"

func TestClassifyBiome(t *testing.T) {
	cases := []struct {
		name                             string
		elevation, moisture, temperature float64
		want                             Biome
	}{
		{"abyss", -0.9, 0.5, 0.5, BiomeDeepOcean},
		{"open water", -0.2, 0.5, 0.5, BiomeOcean},
		{"shallows", -0.1, 0.5, 0.5, BiomeShore},
		{"coast", 0.0, 0.5, 0.5, BiomeBeach},
		{"coastal swamp", 0.1, 0.9, 0.5, BiomeSwamp},
		{"coastal forest", 0.1, 0.6, 0.5, BiomeForest},
		{"coastal desert", 0.1, 0.1, 0.8, BiomeDesert},
		{"coastal plains", 0.1, 0.4, 0.5, BiomePlains},
		{"cold bog", 0.2, 0.85, 0.3, BiomeSwamp},
		{"inland forest", 0.2, 0.6, 0.5, BiomeForest},
		{"hot desert", 0.2, 0.2, 0.7, BiomeDesert},
		{"inland plains", 0.2, 0.4, 0.5, BiomePlains},
		{"foothills", 0.4, 0.5, 0.5, BiomeHills},
		{"high range", 0.6, 0.5, 0.5, BiomeMountains},
		{"summit", 0.9, 0.5, 0.5, BiomeSnowPeaks},
	}
	for _, tc := range cases {
		if got := classifyBiome(tc.elevation, tc.moisture, tc.temperature); got != tc.want {
			t.Errorf("%s: classifyBiome(%v, %v, %v) = %v, want %v",
				tc.name, tc.elevation, tc.moisture, tc.temperature, got, tc.want)
		}
	}
}

func TestBiomeString(t *testing.T) {
	if got := BiomePlains.String(); got != "plains" {
		t.Errorf("BiomePlains.String() = %q", got)
	}
	if got := Biome(200).String(); got != "unknown" {
		t.Errorf("Biome(200).String() = %q", got)
	}
}

func TestTemperatureDropsWithElevation(t *testing.T) {
	g := syntheticGenerator(64, 64, BiomePlains)
	// Same cell, same noise draw: only the elevation factor differs.
	lowland := g.temperatureAt(32, 32, -0.5)
	highland := g.temperatureAt(32, 32, 0.9)
	if highland > lowland {
		t.Errorf("highland temperature %f exceeds lowland %f", highland, lowland)
	}
}
