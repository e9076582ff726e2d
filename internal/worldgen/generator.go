// Package worldgen builds a complete fictional world — terrain, climate,
// rivers, settlements, roads and place names — as a deterministic function
// of a seed and a few density settings. The pipeline runs strictly
// downstream: noise → elevation → biomes → rivers → cities → roads →
// labels, with a single seeded RNG threaded through every stage so a given
// (seed, settings, width, height) always reproduces the same map.
package worldgen

import (
	"cartogen/internal/core"
	"cartogen/internal/noise"
	pkgcore "cartogen/pkg/core"
)

// Generator produces WorldMap snapshots for one seed.
type Generator struct {
	seed     uint32
	field    *noise.Field
	rng      *pkgcore.RNG
	settings Settings

	// Working state for the in-progress map. Valid only inside Generate.
	size      core.Size
	freqScale float64
	plan      formationPlan
	terrain   []TerrainPoint
}

// New returns a Generator with default settings.
func New(seed uint32) *Generator {
	return NewWithSettings(seed, DefaultSettings())
}

// NewWithSettings returns a Generator using the provided settings.
// Settings are expected to be clamped to [0,1] by the caller.
func NewWithSettings(seed uint32, settings Settings) *Generator {
	return &Generator{
		seed:     seed,
		field:    noise.NewField(int64(seed)),
		settings: settings,
	}
}

// Settings returns the generator's settings.
func (g *Generator) Settings() Settings { return g.settings }

// Generate builds a width×height world. It can be called repeatedly; each
// call restarts the seeded RNG so results depend only on the arguments and
// the construction parameters. Zero or negative dimensions yield an empty
// WorldMap rather than an error.
func (g *Generator) Generate(width, height int) *WorldMap {
	g.rng = pkgcore.NewRNG(int64(g.seed))

	if width <= 0 || height <= 0 {
		if width < 0 {
			width = 0
		}
		if height < 0 {
			height = 0
		}
		return emptyWorld(width, height)
	}

	g.size = core.Size{W: width, H: height}
	g.freqScale = minf(float64(width)/160.0, float64(height)/120.0)
	g.plan = g.buildFormationPlan()
	g.terrain = make([]TerrainPoint, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			elevation := g.elevationAt(x, y)
			moisture := g.moistureAt(x, y)
			temperature := g.temperatureAt(x, y, elevation)
			g.terrain[g.size.Index(x, y)] = TerrainPoint{
				Elevation:   elevation,
				Moisture:    moisture,
				Temperature: temperature,
				Biome:       classifyBiome(elevation, moisture, temperature),
			}
		}
	}

	rivers := g.generateRivers()
	g.carveRivers(rivers)

	cities := g.generateCities()
	roads, bridges := g.generateRoads(cities, rivers)
	labels := g.generateLabels(rivers)

	world := &WorldMap{
		Width:   width,
		Height:  height,
		Terrain: g.terrain,
		Rivers:  rivers,
		Cities:  cities,
		Roads:   roads,
		Bridges: bridges,
		Labels:  labels,
	}
	g.terrain = nil
	return world
}

// Generate is the package-level entry point: one fresh world per call.
func Generate(seed uint32, settings Settings, width, height int) *WorldMap {
	return NewWithSettings(seed, settings).Generate(width, height)
}

func emptyWorld(width, height int) *WorldMap {
	return &WorldMap{
		Width:   width,
		Height:  height,
		Terrain: []TerrainPoint{},
		Rivers:  [][]Point{},
		Cities:  []City{},
		Roads:   []Road{},
		Bridges: []Bridge{},
		Labels:  []PlaceLabel{},
	}
}

func (g *Generator) at(x, y int) *TerrainPoint {
	return &g.terrain[g.size.Index(x, y)]
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
