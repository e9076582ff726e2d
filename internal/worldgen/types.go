package worldgen

import "cartogen/internal/core"

// Biome classifies a single terrain cell.
type Biome uint8

const (
	BiomeDeepOcean Biome = iota
	BiomeOcean
	BiomeShore
	BiomeBeach
	BiomePlains
	BiomeForest
	BiomeHills
	BiomeMountains
	BiomeSnowPeaks
	BiomeRiver
	BiomeLake
	BiomeSwamp
	BiomeDesert

	// BiomeCount is the number of biome values; handy for palette sizing.
	BiomeCount
)

var biomeNames = [BiomeCount]string{
	"deep_ocean", "ocean", "shore", "beach", "plains", "forest", "hills",
	"mountains", "snow_peaks", "river", "lake", "swamp", "desert",
}

// String returns the lowercase identifier used in serialized output.
func (b Biome) String() string {
	if b >= BiomeCount {
		return "unknown"
	}
	return biomeNames[b]
}

// IsWaterBody reports whether the biome is an impassable body of water.
// Rivers are deliberately excluded: roads may cross them on bridges.
func (b Biome) IsWaterBody() bool {
	switch b {
	case BiomeDeepOcean, BiomeOcean, BiomeShore, BiomeLake:
		return true
	}
	return false
}

// IsLand reports whether the biome counts toward the land fraction.
func (b Biome) IsLand() bool {
	switch b {
	case BiomeBeach, BiomePlains, BiomeForest, BiomeHills, BiomeMountains,
		BiomeSnowPeaks, BiomeSwamp, BiomeDesert:
		return true
	}
	return false
}

// TerrainPoint holds the per-cell scalar fields and the derived biome.
type TerrainPoint struct {
	Elevation   float64 `json:"elevation"`
	Moisture    float64 `json:"moisture"`
	Temperature float64 `json:"temperature"`
	Biome       Biome   `json:"biome"`
}

// Point is a cell coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// City is a placed settlement. Populations follow a rank-size law for the
// major tier and uniform ranges below it.
type City struct {
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Name       string `json:"name"`
	Population uint32 `json:"population"`
}

// Road types, in decreasing order of importance.
const (
	RoadTypeHighway = "highway"
	RoadTypeRoad    = "road"
	RoadTypeTrail   = "trail"
)

// Road is a built route between settlements (or into the wilderness).
type Road struct {
	Path    []Point  `json:"path"`
	Name    string   `json:"name"`
	Type    string   `json:"road_type"`
	Bridges []Bridge `json:"bridges"`
}

// Bridge marks a road cell that crosses a river.
type Bridge struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Name string `json:"name"`
}

// PlaceLabel is a named map annotation with sub-cell anchor precision.
type PlaceLabel struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Name        string  `json:"name"`
	FeatureType string  `json:"feature_type"`
}

// WorldMap is the generated world snapshot. The grid is stored row-major,
// Height rows of Width cells. Consumers treat the whole aggregate as
// read-only once Generate returns.
type WorldMap struct {
	Width   int            `json:"width"`
	Height  int            `json:"height"`
	Terrain []TerrainPoint `json:"terrain"`
	Rivers  [][]Point      `json:"rivers"`
	Cities  []City         `json:"cities"`
	Roads   []Road         `json:"roads"`
	Bridges []Bridge       `json:"bridges"`
	Labels  []PlaceLabel   `json:"labels"`
}

// Size returns the grid dimensions.
func (m *WorldMap) Size() core.Size { return core.Size{W: m.Width, H: m.Height} }

// At returns the terrain cell at (x, y). Out-of-bounds lookups return a
// zero TerrainPoint (deep ocean).
func (m *WorldMap) At(x, y int) TerrainPoint {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return TerrainPoint{}
	}
	return m.Terrain[y*m.Width+x]
}
