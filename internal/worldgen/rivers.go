package worldgen

// River commitment rules. A candidate walk is kept only when it reaches
// water (and is long enough to read as a river) or pools in a low
// depression; anything else is discarded without being carved.
const (
	riverMaxCandidateFactorMin = 20.0
	riverMaxCandidateFactorMax = 50.0
	riverStartAttempts         = 200
	riverMaxSteps              = 200
	riverSeaLevel              = -0.05
	riverMinSeaLength          = 10
	riverMinPoolLength         = 8
	riverPoolElevation         = 0.2
)

// generateRivers walks up to density-many candidate rivers downhill from
// elevated starts. Each walk greedily steps to its lowest unvisited
// 8-neighbor until it reaches the sea, pools, or gives up.
func (g *Generator) generateRivers() [][]Point {
	rivers := [][]Point{}

	if g.settings.RiverDensity < 0.01 {
		return rivers
	}

	minRivers := int(g.settings.RiverDensity * riverMaxCandidateFactorMin)
	maxRivers := int(g.settings.RiverDensity * riverMaxCandidateFactorMax)
	numRivers := minRivers
	if maxRivers > minRivers {
		numRivers = g.rng.IntRange(minRivers, maxRivers+1)
	}

	for r := 0; r < numRivers; r++ {
		startX, startY, found := g.findRiverSource()
		if !found {
			continue
		}

		river := make([]Point, 0, 32)
		visited := make(map[Point]bool)
		x, y := startX, startY

		for step := 0; step < riverMaxSteps; step++ {
			river = append(river, Point{X: x, Y: y})
			visited[Point{X: x, Y: y}] = true

			current := g.at(x, y).Elevation

			if current < riverSeaLevel {
				if len(river) > riverMinSeaLength {
					rivers = append(rivers, river)
				}
				break
			}

			// Steepest descent among unvisited neighbors; the fixed scan
			// order keeps tie-breaks stable for a given seed.
			lowest := current
			nextX, nextY := x, y
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := x + dx
					ny := y + dy
					if !g.size.Contains(nx, ny) {
						continue
					}
					if visited[Point{X: nx, Y: ny}] {
						continue
					}
					if e := g.at(nx, ny).Elevation; e < lowest {
						lowest = e
						nextX, nextY = nx, ny
					}
				}
			}

			if nextX == x && nextY == y {
				// Stuck in a depression: keep it only as a pooled river.
				if len(river) > riverMinPoolLength && current < riverPoolElevation {
					rivers = append(rivers, river)
				}
				break
			}
			x, y = nextX, nextY
		}
	}

	return rivers
}

// findRiverSource picks a random mid-elevation land cell, giving up after a
// bounded number of attempts (expected on water-heavy maps).
func (g *Generator) findRiverSource() (int, int, bool) {
	for attempt := 0; attempt < riverStartAttempts; attempt++ {
		x := g.rng.IntN(g.size.W)
		y := g.rng.IntN(g.size.H)
		e := g.at(x, y).Elevation
		if e > 0.15 && e < 0.85 {
			return x, y, true
		}
	}
	return 0, 0, false
}

// carveRivers stamps committed rivers into the terrain: river biome on the
// path and multiplicative erosion widening the valley around it.
func (g *Generator) carveRivers(rivers [][]Point) {
	for _, river := range rivers {
		for _, p := range river {
			if !g.size.Contains(p.X, p.Y) {
				continue
			}
			cell := g.at(p.X, p.Y)
			cell.Biome = BiomeRiver
			cell.Elevation *= 0.9

			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx != 0 && dy != 0 {
						continue // only orthogonal neighbors widen the valley
					}
					nx := p.X + dx
					ny := p.Y + dy
					if !g.size.Contains(nx, ny) {
						continue
					}
					if n := g.at(nx, ny); n.Elevation > -0.1 {
						n.Elevation *= 0.95
					}
				}
			}
		}
	}
}
