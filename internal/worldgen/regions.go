package worldgen

import (
	"math"
	"sort"
)

// Labeling limits: only the biggest few regions per category get a name,
// and labels keep a map-scaled minimum distance from each other.
const (
	regionMinCells     = 10
	labelBaseDistance  = 80.0
	maxRiverLabels     = 3
	riverLabelMinCells = 30
)

type labelAnchor struct {
	x, y float64
}

// generateLabels discovers the major geographic regions and produces named
// map annotations for them, plus labels for the longest rivers.
func (g *Generator) generateLabels(rivers [][]Point) []PlaceLabel {
	labels := []PlaceLabel{}
	placed := []labelAnchor{}

	mapScale := math.Max(float64(g.size.W)/160.0, float64(g.size.H)/120.0)
	minDistance := labelBaseDistance * mapScale
	tooClose := func(x, y float64) bool {
		for _, a := range placed {
			if math.Hypot(x-a.x, y-a.y) < minDistance {
				return true
			}
		}
		return false
	}

	categories := []struct {
		predicate func(Biome) bool
		take      int
		minSize   int
		feature   string
		namer     func(int) string
	}{
		{
			predicate: func(b Biome) bool { return b == BiomeOcean || b == BiomeDeepOcean },
			take:      3, minSize: 200, feature: "ocean", namer: g.oceanName,
		},
		{
			predicate: func(b Biome) bool { return b == BiomeMountains || b == BiomeSnowPeaks },
			take:      4, minSize: 40, feature: "mountains", namer: g.mountainName,
		},
		{
			predicate: func(b Biome) bool { return b == BiomeForest },
			take:      3, minSize: 100, feature: "forest", namer: g.forestName,
		},
		{
			predicate: func(b Biome) bool { return b == BiomeSwamp },
			take:      2, minSize: 60, feature: "swamp", namer: g.swampName,
		},
	}

	for _, cat := range categories {
		regions := g.findRegions(cat.predicate)

		type ranked struct {
			idx   int
			cells []Point
		}
		sorted := make([]ranked, 0, len(regions))
		for i, r := range regions {
			sorted = append(sorted, ranked{idx: i, cells: r})
		}
		sort.SliceStable(sorted, func(a, b int) bool {
			return len(sorted[a].cells) > len(sorted[b].cells)
		})

		top := sorted[:mini(cat.take, len(sorted))]
		for _, r := range top {
			if len(r.cells) <= cat.minSize {
				continue
			}
			cx, cy := g.regionCenter(r.cells)
			fx := float64(cx)
			fy := float64(cy)
			if tooClose(fx, fy) {
				continue
			}
			labels = append(labels, PlaceLabel{
				X:           fx,
				Y:           fy,
				Name:        cat.namer(r.idx),
				FeatureType: cat.feature,
			})
			placed = append(placed, labelAnchor{x: fx, y: fy})
		}
	}

	// Major rivers: label at a point along the course that is not already
	// crowded, at most a few per map.
	riverLabels := 0
	for i, river := range rivers {
		if len(river) <= riverLabelMinCells || riverLabels >= maxRiverLabels {
			continue
		}
		positions := []int{len(river) / 3, len(river) / 2, len(river) * 2 / 3}
		for _, pos := range positions {
			if pos >= len(river) {
				continue
			}
			fx := float64(river[pos].X)
			fy := float64(river[pos].Y)
			if tooClose(fx, fy) {
				continue
			}
			labels = append(labels, PlaceLabel{
				X:           fx,
				Y:           fy,
				Name:        g.riverName(i),
				FeatureType: "river",
			})
			placed = append(placed, labelAnchor{x: fx, y: fy})
			riverLabels++
			break
		}
	}

	return labels
}

// findRegions flood-fills contiguous cells matching the predicate using an
// explicit stack (8-connectivity), discarding undersized regions.
func (g *Generator) findRegions(predicate func(Biome) bool) [][]Point {
	regions := [][]Point{}
	visited := make([]bool, g.size.Cells())

	for y := 0; y < g.size.H; y++ {
		for x := 0; x < g.size.W; x++ {
			if visited[g.size.Index(x, y)] || !predicate(g.at(x, y).Biome) {
				continue
			}

			region := []Point{}
			stack := []Point{{X: x, Y: y}}
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				idx := g.size.Index(p.X, p.Y)
				if visited[idx] {
					continue
				}
				visited[idx] = true
				region = append(region, p)

				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx := p.X + dx
						ny := p.Y + dy
						if !g.size.Contains(nx, ny) {
							continue
						}
						if !visited[g.size.Index(nx, ny)] && predicate(g.at(nx, ny).Biome) {
							stack = append(stack, Point{X: nx, Y: ny})
						}
					}
				}
			}

			if len(region) > regionMinCells {
				regions = append(regions, region)
			}
		}
	}

	return regions
}

// regionCenter approximates the visually central point of a region: the
// sampled cell farthest (Manhattan) from the region boundary, falling back
// to the arithmetic centroid when no boundary data was sampled.
func (g *Generator) regionCenter(region []Point) (int, int) {
	member := make(map[Point]bool, len(region))
	for _, p := range region {
		member[p] = true
	}

	sampleRate := maxi(len(region)/100, 1)
	bestX, bestY := 0, 0
	maxDistToEdge := 0

	for i, p := range region {
		if i%sampleRate != 0 {
			continue
		}

		minDist := math.MaxInt
		for j := 0; j < len(region); j += sampleRate * 5 {
			o := region[j]
			isEdge := !member[Point{X: o.X + 1, Y: o.Y}] ||
				!member[Point{X: o.X, Y: o.Y + 1}] ||
				(o.X > 0 && !member[Point{X: o.X - 1, Y: o.Y}]) ||
				(o.Y > 0 && !member[Point{X: o.X, Y: o.Y - 1}])
			if !isEdge {
				continue
			}
			if dist := absi(p.X-o.X) + absi(p.Y-o.Y); dist < minDist {
				minDist = dist
			}
		}

		if minDist != math.MaxInt && minDist > maxDistToEdge {
			maxDistToEdge = minDist
			bestX, bestY = p.X, p.Y
		}
	}

	if maxDistToEdge == 0 {
		sumX, sumY := 0, 0
		for _, p := range region {
			sumX += p.X
			sumY += p.Y
		}
		return sumX / len(region), sumY / len(region)
	}
	return bestX, bestY
}

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}
