package worldgen

import (
	"container/heap"
	"math"
)

// Pathfinding cost model. Roads prefer flat, diagonal, gently curving
// routes: axis-aligned motion and 90° turns carry heavy penalties so the
// network never reads as a grid.
const (
	stepCostOrthogonal = 10
	stepCostDiagonal   = 14

	rightAnglePenalty    = 1000
	straightRunPenalty   = 50
	axisMovePenalty      = 200
	axisContinuePenalty  = 300
	axisFirstMovePenalty = 150

	partialPathMaxSteps = 50
)

type pathNode struct {
	cost int
	pos  Point
}

// nodeHeap is a min-heap over path cost, the A* frontier.
type nodeHeap []pathNode

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(pathNode)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// findPath runs best-first search from start to goal over 8-connected
// cells, then smooths the result. Water bodies are impassable; rivers are
// passable (bridge sites). An unreachable goal yields an empty path.
func (g *Generator) findPath(start, goal Point) []Point {
	dist := map[Point]int{start: 0}
	cameFrom := map[Point]Point{}
	frontier := &nodeHeap{{cost: 0, pos: start}}

	for frontier.Len() > 0 {
		current := heap.Pop(frontier).(pathNode)
		pos := current.pos

		if pos == goal {
			return g.smoothPath(reconstructPath(cameFrom, goal))
		}

		if d, ok := dist[pos]; ok && current.cost > d {
			continue
		}

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx := pos.X + dx
				ny := pos.Y + dy
				if !g.size.Contains(nx, ny) {
					continue
				}

				next := g.at(nx, ny)
				if next.Biome.IsWaterBody() {
					continue
				}

				moveCost := g.moveCost(pos, dx, dy, next, cameFrom)

				// Euclidean heuristic keeps routes diagonal-friendly.
				gdx := float64(nx - goal.X)
				gdy := float64(ny - goal.Y)
				heuristic := int(math.Hypot(gdx, gdy) * 12.0)

				candidate := pathNode{
					cost: current.cost + moveCost + heuristic/4,
					pos:  Point{X: nx, Y: ny},
				}
				if best, ok := dist[candidate.pos]; !ok || candidate.cost < best {
					dist[candidate.pos] = candidate.cost
					cameFrom[candidate.pos] = pos
					heap.Push(frontier, candidate)
				}
			}
		}
	}

	return []Point{}
}

// moveCost prices a single step from pos by (dx, dy) into next.
func (g *Generator) moveCost(pos Point, dx, dy int, next *TerrainPoint, cameFrom map[Point]Point) int {
	isDiagonal := dx != 0 && dy != 0

	moveCost := stepCostOrthogonal
	if isDiagonal {
		moveCost = stepCostDiagonal
	}

	current := g.at(pos.X, pos.Y)
	elevationChange := abs(next.Elevation - current.Elevation)
	moveCost += int(elevationChange * 100.0)

	switch next.Biome {
	case BiomeRiver:
		moveCost *= 5
	case BiomeMountains:
		moveCost *= 8
	case BiomeSnowPeaks:
		moveCost *= 10
	case BiomeHills:
		moveCost *= 2
	case BiomeSwamp:
		moveCost *= 3
	case BiomeForest:
		moveCost = int(float64(moveCost) * 1.5)
	}

	// Jitter breaks up unnaturally straight solutions.
	moveCost += g.rng.IntRange(5, 35)

	prev, hasPrev := cameFrom[pos]
	prevDx := pos.X - prev.X
	prevDy := pos.Y - prev.Y

	if !isDiagonal {
		if hasPrev {
			isRightAngle := (prevDx != 0 && prevDy != 0 && (dx == 0 || dy == 0)) ||
				(prevDx != 0 && prevDy == 0 && dx == 0 && dy != 0) ||
				(prevDx == 0 && prevDy != 0 && dx != 0 && dy == 0)

			if isRightAngle {
				moveCost += rightAnglePenalty
			} else {
				// Quadratic penalty on consecutive same-direction moves.
				straightCount := 0
				checkPos := pos
				for {
					p, ok := cameFrom[checkPos]
					if !ok {
						break
					}
					if checkPos.X-p.X != dx || checkPos.Y-p.Y != dy {
						break
					}
					straightCount++
					checkPos = p
				}
				if straightCount > 0 {
					moveCost += straightCount * straightCount * straightRunPenalty
				}

				if dx == 0 || dy == 0 {
					moveCost += axisMovePenalty + g.rng.IntRange(50, 100)
					if (dx == 0 && prevDx == 0) || (dy == 0 && prevDy == 0) {
						moveCost += axisContinuePenalty
					}
				}
			}
		} else if dx == 0 || dy == 0 {
			moveCost += axisFirstMovePenalty
		}
	} else {
		// Diagonal motion is the preferred texture for roads.
		moveCost = int(float64(moveCost) * 0.3)
		if hasPrev && prevDx != 0 && prevDy != 0 {
			angleChange := absi(dx-prevDx) + absi(dy-prevDy)
			if angleChange <= 1 {
				moveCost = int(float64(moveCost) * 0.5)
			}
		}
	}

	// Contour following: near-level steps get a discount.
	if elevationChange < 0.05 {
		moveCost = int(float64(moveCost) * 0.85)
	}

	return moveCost
}

// findPartialPath is a bounded best-effort pathfinder used for wilderness
// trails. It stops after a step budget or on hostile terrain and returns
// whatever route it reached so far.
func (g *Generator) findPartialPath(start, goal Point) []Point {
	dist := map[Point]int{start: 0}
	cameFrom := map[Point]Point{}
	frontier := &nodeHeap{{cost: 0, pos: start}}
	steps := 0

	for frontier.Len() > 0 {
		current := heap.Pop(frontier).(pathNode)
		pos := current.pos
		steps++

		hostile := false
		switch g.at(pos.X, pos.Y).Biome {
		case BiomeMountains, BiomeSnowPeaks, BiomeOcean, BiomeDeepOcean:
			hostile = true
		}
		if steps > partialPathMaxSteps || hostile {
			return g.smoothPath(reconstructPath(cameFrom, pos))
		}

		if pos == goal {
			return g.smoothPath(reconstructPath(cameFrom, goal))
		}

		if d, ok := dist[pos]; ok && current.cost > d {
			continue
		}

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx := pos.X + dx
				ny := pos.Y + dy
				if !g.size.Contains(nx, ny) {
					continue
				}

				next := g.at(nx, ny)
				if next.Biome.IsWaterBody() {
					continue
				}

				moveCost := stepCostOrthogonal
				if dx != 0 && dy != 0 {
					moveCost = stepCostDiagonal
				}
				moveCost += int(abs(next.Elevation-g.at(pos.X, pos.Y).Elevation) * 50.0)

				candidate := pathNode{cost: current.cost + moveCost, pos: Point{X: nx, Y: ny}}
				if best, ok := dist[candidate.pos]; !ok || candidate.cost < best {
					dist[candidate.pos] = candidate.cost
					cameFrom[candidate.pos] = pos
					heap.Push(frontier, candidate)
				}
			}
		}
	}

	return []Point{}
}

// reconstructPath walks the predecessor chain back from end.
func reconstructPath(cameFrom map[Point]Point, end Point) []Point {
	path := []Point{end}
	current := end
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func absi(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
