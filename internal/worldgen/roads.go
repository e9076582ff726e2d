package worldgen

import (
	"math"
	"sort"
)

// Road network construction limits.
const (
	mstCityLimit      = 8
	mstEdgeCutoff     = 80.0
	junctionCutoff    = 30.0
	trailChance       = 0.3
	trailMinLength    = 5
	roadTypePopFloor  = 100000
)

// generateRoads connects the settlements. Phase 1 strings highways along a
// minimum-spanning-tree backbone over the most important cities; phase 2
// attaches every remaining settlement to the nearest network point,
// connected city, or — failing both — its nearest neighbor. A few
// exploratory trails head into the wilderness afterwards.
func (g *Generator) generateRoads(cities []City, rivers [][]Point) ([]Road, []Bridge) {
	roads := []Road{}
	allBridges := []Bridge{}

	if len(cities) == 0 {
		return roads, allBridges
	}

	riverPoints := make(map[Point]bool)
	for _, river := range rivers {
		for _, p := range river {
			riverPoints[p] = true
		}
	}

	connected := make([]bool, len(cities))

	// Membership set plus insertion-ordered list, so nearest-point scans
	// stay deterministic.
	roadNetwork := make(map[Point]bool)
	roadPoints := []Point{}
	addToNetwork := func(path []Point) {
		for _, p := range path {
			if !roadNetwork[p] {
				roadNetwork[p] = true
				roadPoints = append(roadPoints, p)
			}
		}
	}

	// Phase 1: MST backbone over the most important settlements.
	for _, e := range g.backboneEdges(cities) {
		path := g.findPath(cityPoint(cities[e[0]]), cityPoint(cities[e[1]]))
		if len(path) == 0 {
			continue
		}
		connected[e[0]] = true
		connected[e[1]] = true
		addToNetwork(path)

		bridges := g.detectBridges(path, riverPoints, &allBridges)
		roads = append(roads, Road{
			Path:    path,
			Name:    g.roadName(len(roads)) + " Highway",
			Type:    RoadTypeHighway,
			Bridges: bridges,
		})
	}

	// Phase 2: attach every unconnected settlement.
	for i := range cities {
		if connected[i] {
			continue
		}

		target, isJunction, ok := g.connectionTarget(cities, connected, i, roadPoints)
		if !ok {
			continue
		}

		path := g.findPath(cityPoint(cities[i]), target)
		if len(path) == 0 {
			continue
		}
		connected[i] = true
		addToNetwork(path)

		bridges := g.detectBridges(path, riverPoints, &allBridges)

		roadType := RoadTypeTrail
		if cities[i].Population > roadTypePopFloor {
			roadType = RoadTypeRoad
		}

		name := g.roadName(len(roads))
		switch {
		case isJunction:
			name += " Branch"
		case roadType == RoadTypeTrail:
			name += " Trail"
		default:
			name += " Road"
		}

		roads = append(roads, Road{
			Path:    path,
			Name:    name,
			Type:    roadType,
			Bridges: bridges,
		})
	}

	// Exploratory trails into the wilderness.
	for i := range cities {
		if !g.rng.Chance(trailChance) {
			continue
		}

		angle := g.rng.Float64Range(0, 2*math.Pi)
		distance := g.rng.Float64Range(15.0, 30.0)

		tx := int(float64(cities[i].X) + math.Cos(angle)*distance)
		ty := int(float64(cities[i].Y) + math.Sin(angle)*distance)
		if !g.size.Contains(tx, ty) {
			continue
		}

		path := g.findPartialPath(cityPoint(cities[i]), Point{X: tx, Y: ty})
		if len(path) <= trailMinLength {
			continue
		}

		bridges := g.detectBridges(path, riverPoints, &allBridges)
		roads = append(roads, Road{
			Path:    path,
			Name:    "Old " + g.roadName(len(roads)) + " Trail",
			Type:    RoadTypeTrail,
			Bridges: bridges,
		})
	}

	return roads, allBridges
}

// backboneEdges computes the Kruskal MST over the first (most important)
// settlements, discarding edges longer than the cutoff.
func (g *Generator) backboneEdges(cities []City) [][2]int {
	majorCount := mini(len(cities), mstCityLimit)
	if majorCount < 2 {
		return nil
	}

	type edge struct {
		dist float64
		i, j int
	}
	edges := []edge{}
	for i := 0; i < majorCount; i++ {
		for j := i + 1; j < majorCount; j++ {
			dx := float64(cities[i].X - cities[j].X)
			dy := float64(cities[i].Y - cities[j].Y)
			edges = append(edges, edge{dist: math.Hypot(dx, dy), i: i, j: j})
		}
	}
	sort.SliceStable(edges, func(a, b int) bool { return edges[a].dist < edges[b].dist })

	parent := make([]int, majorCount)
	for i := range parent {
		parent[i] = i
	}
	find := func(x int) int {
		for parent[x] != x {
			x = parent[x]
		}
		return x
	}

	mst := [][2]int{}
	for _, e := range edges {
		if e.dist > mstEdgeCutoff {
			break
		}
		ri := find(e.i)
		rj := find(e.j)
		if ri != rj {
			parent[ri] = rj
			mst = append(mst, [2]int{e.i, e.j})
		}
	}
	return mst
}

// connectionTarget picks where an unconnected settlement should attach:
// the nearest existing road point within the junction cutoff, else the
// nearest connected city, else the globally nearest city.
func (g *Generator) connectionTarget(cities []City, connected []bool, i int, roadPoints []Point) (Point, bool, bool) {
	cx := float64(cities[i].X)
	cy := float64(cities[i].Y)

	minCost := math.MaxFloat64
	var target Point
	found := false

	for _, rp := range roadPoints {
		dist := math.Hypot(cx-float64(rp.X), cy-float64(rp.Y))
		if dist < junctionCutoff && dist < minCost {
			minCost = dist
			target = rp
			found = true
		}
	}
	if found {
		return target, true, true
	}

	for j := range cities {
		if j == i || !connected[j] {
			continue
		}
		dist := math.Hypot(cx-float64(cities[j].X), cy-float64(cities[j].Y))
		if dist < minCost {
			minCost = dist
			target = cityPoint(cities[j])
			found = true
		}
	}
	if found {
		return target, false, true
	}

	nearest := -1
	minDist := math.MaxFloat64
	for j := range cities {
		if j == i {
			continue
		}
		dist := math.Hypot(cx-float64(cities[j].X), cy-float64(cities[j].Y))
		if dist < minDist {
			minDist = dist
			nearest = j
		}
	}
	if nearest < 0 {
		return Point{}, false, false
	}
	return cityPoint(cities[nearest]), false, true
}

// detectBridges records a bridge wherever a road cell crosses a river.
func (g *Generator) detectBridges(path []Point, riverPoints map[Point]bool, all *[]Bridge) []Bridge {
	bridges := []Bridge{}
	for _, p := range path {
		if riverPoints[p] || g.at(p.X, p.Y).Biome == BiomeRiver {
			b := Bridge{X: p.X, Y: p.Y, Name: g.bridgeName(len(*all))}
			bridges = append(bridges, b)
			*all = append(*all, b)
		}
	}
	return bridges
}

func cityPoint(c City) Point { return Point{X: c.X, Y: c.Y} }
