package worldgen

import "testing"

func roadWorld(t *testing.T, seed uint32) *WorldMap {
	t.Helper()
	settings := Settings{RiverDensity: 0.4, CityDensity: 0.8, LandPercentage: 0.7}
	return Generate(seed, settings, 96, 72)
}

func TestRoadsStayOutOfWater(t *testing.T) {
	world := roadWorld(t, 31)
	for _, road := range world.Roads {
		for _, p := range road.Path {
			if p.X < 0 || p.X >= world.Width || p.Y < 0 || p.Y >= world.Height {
				t.Fatalf("%q leaves the map at (%d, %d)", road.Name, p.X, p.Y)
			}
			if b := world.At(p.X, p.Y).Biome; b.IsWaterBody() {
				t.Errorf("%q crosses %v at (%d, %d)", road.Name, b, p.X, p.Y)
			}
		}
	}
}

func TestRoadTypesAndNames(t *testing.T) {
	world := roadWorld(t, 31)
	for _, road := range world.Roads {
		switch road.Type {
		case RoadTypeHighway, RoadTypeRoad, RoadTypeTrail:
		default:
			t.Errorf("%q has unknown type %q", road.Name, road.Type)
		}
		if road.Name == "" {
			t.Error("road with empty name")
		}
		if len(road.Path) < 2 {
			t.Errorf("%q has a degenerate path of %d points", road.Name, len(road.Path))
		}
	}
}

func TestBridgesSitOnRivers(t *testing.T) {
	world := roadWorld(t, 31)
	for _, b := range world.Bridges {
		if b.X < 0 || b.X >= world.Width || b.Y < 0 || b.Y >= world.Height {
			t.Fatalf("%q out of bounds at (%d, %d)", b.Name, b.X, b.Y)
		}
		if got := world.At(b.X, b.Y).Biome; got != BiomeRiver {
			t.Errorf("%q stands on %v, want river", b.Name, got)
		}
		if b.Name == "" {
			t.Error("bridge with empty name")
		}
	}
}

func TestBridgeAggregateMatchesRoads(t *testing.T) {
	world := roadWorld(t, 47)
	total := 0
	for _, road := range world.Roads {
		total += len(road.Bridges)
	}
	if total != len(world.Bridges) {
		t.Errorf("roads carry %d bridges, aggregate lists %d", total, len(world.Bridges))
	}
}

func TestNoRoadsWithoutCities(t *testing.T) {
	settings := Settings{RiverDensity: 0.4, CityDensity: 0, LandPercentage: 0.7}
	world := Generate(31, settings, 96, 72)
	if len(world.Roads) != 0 || len(world.Bridges) != 0 {
		t.Errorf("got %d roads and %d bridges with no cities",
			len(world.Roads), len(world.Bridges))
	}
}

func TestBackboneEdgesSpanning(t *testing.T) {
	g := New(1)
	cities := []City{
		{X: 10, Y: 10}, {X: 20, Y: 12}, {X: 30, Y: 20}, {X: 15, Y: 30},
	}
	edges := g.backboneEdges(cities)
	if len(edges) != len(cities)-1 {
		t.Fatalf("MST over %d close cities has %d edges", len(cities), len(edges))
	}
}

func TestBackboneEdgesCutoff(t *testing.T) {
	g := New(1)
	cities := []City{{X: 0, Y: 0}, {X: 500, Y: 500}}
	if edges := g.backboneEdges(cities); len(edges) != 0 {
		t.Fatalf("distant pair produced %d edges, want none", len(edges))
	}
}
