package worldgen

import "math"

// smoothPath post-processes a pathfound route in two passes: sharp corners
// are replaced with short Bézier curves, then long straight segments get a
// subtle sinusoidal wiggle. Samples that land on water are dropped, and
// consecutive duplicates are collapsed.
func (g *Generator) smoothPath(path []Point) []Point {
	if len(path) < 3 {
		return path
	}

	splined := g.splineCorners(path)
	smoothed := g.wiggleSegments(splined)

	deduped := make([]Point, 0, len(smoothed))
	last := Point{X: math.MinInt32, Y: math.MinInt32}
	for _, p := range smoothed {
		if p != last {
			deduped = append(deduped, p)
			last = p
		}
	}
	return deduped
}

// splineCorners rounds off sharp direction changes with cubic Bézier arcs
// whose control points sit along the incoming and outgoing segments.
func (g *Generator) splineCorners(path []Point) []Point {
	splined := make([]Point, 0, len(path)*2)
	splined = append(splined, path[0])

	for i := 1; i < len(path)-1; i++ {
		prev := path[i-1]
		curr := path[i]
		next := path[i+1]

		v1x := float64(curr.X - prev.X)
		v1y := float64(curr.Y - prev.Y)
		v2x := float64(next.X - curr.X)
		v2y := float64(next.Y - curr.Y)

		dot := v1x*v2x + v1y*v2y
		v1len := math.Hypot(v1x, v1y)
		v2len := math.Hypot(v2x, v2y)

		cosAngle := 1.0
		if v1len > 0 && v2len > 0 {
			cosAngle = dot / (v1len * v2len)
		}

		isRightAngle := math.Abs(cosAngle) < 0.1
		isSharpTurn := cosAngle < 0.5

		if !isRightAngle && !isSharpTurn && dot > 0.5 {
			splined = append(splined, curr)
			continue
		}

		curveRadius := math.Min(v1len, v2len) * 0.4
		t1 := curveRadius / v1len
		t2 := curveRadius / v2len

		p1x := float64(curr.X) - v1x*t1
		p1y := float64(curr.Y) - v1y*t1
		p2x := float64(curr.X) + v2x*t2
		p2y := float64(curr.Y) + v2y*t2

		for j := 0; j <= 8; j++ {
			t := float64(j) / 8.0
			tt := t * t
			ttt := tt * t
			mt := 1.0 - t
			mt2 := mt * mt
			mt3 := mt2 * mt

			px := mt3*p1x + 3.0*mt2*t*float64(curr.X) + 3.0*mt*tt*float64(curr.X) + ttt*p2x
			py := mt3*p1y + 3.0*mt2*t*float64(curr.Y) + 3.0*mt*tt*float64(curr.Y) + ttt*p2y

			cx := int(math.Round(px))
			cy := int(math.Round(py))
			if g.size.Contains(cx, cy) && !g.at(cx, cy).Biome.IsWaterBody() {
				splined = append(splined, Point{X: cx, Y: cy})
			}
		}
	}

	splined = append(splined, path[len(path)-1])
	return splined
}

// wiggleSegments adds a small perpendicular sine-wave offset along straight
// segments longer than 1.5 cells, with a deterministic random phase,
// frequency and amplitude per segment.
func (g *Generator) wiggleSegments(path []Point) []Point {
	smoothed := make([]Point, 0, len(path)*2)
	smoothed = append(smoothed, path[0])

	for i := 0; i < len(path)-1; i++ {
		current := path[i]
		next := path[i+1]

		dx := float64(next.X - current.X)
		dy := float64(next.Y - current.Y)
		distance := math.Hypot(dx, dy)

		if distance > 1.5 {
			numPoints := int(distance * 0.8)

			phase := g.rng.Float64Range(0, 2*math.Pi)
			frequency := g.rng.Float64Range(0.3, 0.7)
			amplitude := g.rng.Float64Range(0.5, 1.2)

			perpX := -dy / distance
			perpY := dx / distance

			for j := 1; j <= numPoints; j++ {
				t := float64(j) / float64(numPoints+1)

				baseX := float64(current.X) + dx*t
				baseY := float64(current.Y) + dy*t

				// Two superposed sine waves read more organically than one.
				wiggle := math.Sin(t*math.Pi*frequency+phase)*amplitude +
					math.Sin(t*math.Pi*frequency*2.3+phase*0.7)*amplitude*0.3

				finalX := int(math.Round(baseX + perpX*wiggle + g.rng.Float64Range(-0.1, 0.1)))
				finalY := int(math.Round(baseY + perpY*wiggle + g.rng.Float64Range(-0.1, 0.1)))

				if g.size.Contains(finalX, finalY) && !g.at(finalX, finalY).Biome.IsWaterBody() {
					smoothed = append(smoothed, Point{X: finalX, Y: finalY})
					continue
				}

				// The wiggle strayed into water; keep the straight-line point
				// instead when it is itself passable.
				bx := int(math.Round(baseX))
				by := int(math.Round(baseY))
				if g.size.Contains(bx, by) && !g.at(bx, by).Biome.IsWaterBody() {
					smoothed = append(smoothed, Point{X: bx, Y: by})
				}
			}
		}

		smoothed = append(smoothed, next)
	}

	return smoothed
}
