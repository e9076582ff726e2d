package worldgen

import (
	"strings"
	"testing"

	pkgcore "cartogen/pkg/core"
)

func namingGenerator(seed int64) *Generator {
	g := New(1)
	g.rng = pkgcore.NewRNG(seed)
	return g
}

func TestNamesDeterministic(t *testing.T) {
	a := namingGenerator(7)
	b := namingGenerator(7)
	for i := 0; i < 20; i++ {
		if got, want := a.cityName(i), b.cityName(i); got != want {
			t.Fatalf("city name %d diverged: %q vs %q", i, got, want)
		}
	}
}

func TestNamesNonEmpty(t *testing.T) {
	g := namingGenerator(3)
	namers := map[string]func(int) string{
		"city":     g.cityName,
		"ocean":    g.oceanName,
		"mountain": g.mountainName,
		"forest":   g.forestName,
		"swamp":    g.swampName,
		"road":     g.roadName,
		"river":    g.riverName,
		"bridge":   g.bridgeName,
	}
	for kind, namer := range namers {
		for i := 0; i < 10; i++ {
			if namer(i) == "" {
				t.Errorf("%s name %d is empty", kind, i)
			}
		}
	}
}

func TestRiverNameSuffix(t *testing.T) {
	g := namingGenerator(5)
	for i := 0; i < 20; i++ {
		if name := g.riverName(i); !strings.HasSuffix(name, " River") {
			t.Errorf("river name %q lacks the River suffix", name)
		}
	}
}

func TestBridgeNameSuffix(t *testing.T) {
	g := namingGenerator(5)
	for i := 0; i < 20; i++ {
		if name := g.bridgeName(i); !strings.HasSuffix(name, " Bridge") {
			t.Errorf("bridge name %q lacks the Bridge suffix", name)
		}
	}
}

func TestMountainNameForms(t *testing.T) {
	g := namingGenerator(9)
	for i := 0; i < 30; i++ {
		name := g.mountainName(i)
		ok := strings.HasPrefix(name, "The ") ||
			strings.HasPrefix(name, "Mount ") ||
			strings.HasPrefix(name, "Mt. ") ||
			strings.HasPrefix(name, "Peak ")
		if !ok {
			t.Errorf("mountain name %q matches no expected form", name)
		}
	}
}

func TestNameVariety(t *testing.T) {
	g := namingGenerator(11)
	seen := map[string]bool{}
	for i := 0; i < 30; i++ {
		seen[g.cityName(i)] = true
	}
	if len(seen) < 10 {
		t.Errorf("30 city names collapsed to %d distinct values", len(seen))
	}
}
