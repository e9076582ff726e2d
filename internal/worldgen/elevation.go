package worldgen

import (
	"math"

	"cartogen/internal/noise"
)

// Land targets below this are treated as "all water": no continent
// primitives are placed, so the map is guaranteed free of land cells.
const minLandTarget = 0.01

// formationKind selects the continent formation strategy for a map.
type formationKind int

const (
	formationVolcanicChain formationKind = iota
	formationTectonicRidge
	formationCrescentArc
	formationMultiPlate
	formationArchipelago
)

// continentShaper computes the raw continent value for a normalized map
// coordinate. Contributions are unioned (max), never subtracted, starting
// from the -1 ocean baseline.
type continentShaper interface {
	shape(g *Generator, nx, ny float64) float64
}

// formationPlan fixes the per-map formation choice and its parameters.
// It is derived once per generation from seed-keyed noise lookups, so the
// same seed always forms continents the same way.
type formationPlan struct {
	kind             formationKind
	hasEdgeContinent bool
	shaper           continentShaper
}

// edgeFalloff reports whether the map border should fade to ocean. Only
// island-style formations do; ridge and arc continents may touch edges.
func (p formationPlan) edgeFalloff() bool {
	return p.kind == formationVolcanicChain ||
		(p.kind == formationMultiPlate && !p.hasEdgeContinent)
}

func (g *Generator) buildFormationPlan() formationPlan {
	formationSeed := g.field.Sample(noise.Continent, 0.777, 0.333) * 100.0
	kind := formationKind(int(math.Abs(formationSeed)) % 5)

	// 25% of seeds grow continents that are allowed to reach the map edge.
	seedHash := int(g.field.Sample(noise.Continent, 0.123, 0.456) * 1000.0)
	if seedHash < 0 {
		seedHash = -seedHash
	}
	hasEdgeContinent := seedHash%100 < 25

	plan := formationPlan{kind: kind, hasEdgeContinent: hasEdgeContinent}
	land := g.settings.LandPercentage
	switch kind {
	case formationVolcanicChain:
		plan.shaper = g.buildVolcanicChain(land)
	case formationTectonicRidge:
		plan.shaper = g.buildTectonicRidge(land)
	case formationCrescentArc:
		plan.shaper = g.buildCrescentArc(land)
	case formationMultiPlate:
		plan.shaper = g.buildMultiPlate(land)
	default:
		plan.shaper = g.buildArchipelago(land)
	}
	return plan
}

// elevationAt synthesizes the elevation for cell (x, y) in [-1, 1].
func (g *Generator) elevationAt(x, y int) float64 {
	nx := float64(x) / float64(g.size.W)
	ny := float64(y) / float64(g.size.H)
	fs := g.freqScale
	land := g.settings.LandPercentage

	continentValue := -1.0
	if land >= minLandTarget {
		continentValue = g.plan.shaper.shape(g, nx, ny)

		// Secondary multi-scale layer: clusters of smaller islands, with a
		// log-style size distribution (many small, few large).
		if land > 0.2 {
			large := g.field.Sample(noise.Continent, nx*3.0*fs, ny*3.0*fs)
			medium := g.field.Sample(noise.Elevation, nx*8.0*fs, ny*8.0*fs)
			small := g.field.Sample(noise.Detail, nx*25.0*fs, ny*25.0*fs)

			clusterFactor := math.Pow(large*0.5+0.5, 2.0)
			islandNoise := large*0.4 + medium*0.4*clusterFactor + small*0.2

			switch {
			case islandNoise > 0.6:
				continentValue = math.Max(continentValue, islandNoise*0.8)
			case islandNoise > 0.45 && clusterFactor > 0.3:
				continentValue = math.Max(continentValue, islandNoise*0.5)
			case islandNoise > 0.35 &&
				g.field.Sample(noise.Detail, nx*100.0, ny*100.0) > 0.5-0.3*land:
				continentValue = math.Max(continentValue, islandNoise*0.3)
			}
		}
	}

	if g.plan.edgeFalloff() {
		edgeDist := math.Min(0.5-math.Abs(nx-0.5), 0.5-math.Abs(ny-0.5))
		if edgeDist < 0.05 {
			t := edgeDist / 0.05
			continentValue = continentValue*t - (1.0 - t)
		}
	}

	// Coastline detail, sampled along a noise-rotated frame to avoid
	// horizontal/vertical banding.
	angle := g.field.Sample(noise.Continent, nx*2.0, ny*2.0) * math.Pi
	rotX := nx*math.Cos(angle) - ny*math.Sin(angle)
	rotY := nx*math.Sin(angle) + ny*math.Cos(angle)
	coastline := g.field.Sample(noise.Elevation, rotX*40.0*fs, rotY*40.0*fs)*0.1 +
		g.field.Sample(noise.Detail, nx*80.0*fs, ny*80.0*fs)*0.05

	base := continentValue + coastline

	// The sea level tracks the requested land fraction: less land, higher sea.
	seaLevel := -0.1 + (1.0-land)*0.3

	if base > seaLevel {
		e := (base - seaLevel) / (1.0 - seaLevel)
		return math.Max(math.Min(e, 1.0), 0.01)
	}
	return math.Max((base-seaLevel)/(1.0+seaLevel), -1.0)
}

// --- volcanic island chain -------------------------------------------------

type islandSite struct {
	cx, cy, size float64
}

// volcanicChain strings islands along a curved subduction line.
type volcanicChain struct {
	islands []islandSite
}

func (g *Generator) buildVolcanicChain(land float64) volcanicChain {
	cont := func(x, y float64) float64 { return g.field.Sample(noise.Continent, x, y) }

	chainAngle := cont(0.5, 0.5) * 2 * math.Pi
	chainLength := 0.6 + land*0.3
	numIslands := 4 + int(land*6.0)

	startX := 0.5 + cont(1.5, 1.5)*0.3
	startY := 0.5 + cont(2.5, 2.5)*0.3

	chain := volcanicChain{islands: make([]islandSite, 0, numIslands)}
	for i := 0; i < numIslands; i++ {
		t := float64(i) / float64(numIslands)

		curve := math.Sin(t*math.Pi) * 0.1
		ix := startX + math.Cos(chainAngle)*t*chainLength + math.Sin(chainAngle)*curve
		iy := startY + math.Sin(chainAngle)*t*chainLength - math.Cos(chainAngle)*curve

		scatterX := cont(float64(i)*3.0, float64(i)*4.0) * 0.03
		scatterY := cont(float64(i)*4.0, float64(i)*3.0) * 0.03

		// Larger islands in the middle of the chain.
		sizeFactor := 1.0 - math.Abs(t-0.5)*0.5
		size := (0.03 + sizeFactor*0.05) * (1.0 + land*0.5)

		chain.islands = append(chain.islands, islandSite{
			cx:   ix + scatterX,
			cy:   iy + scatterY,
			size: size,
		})
	}
	return chain
}

func (c volcanicChain) shape(_ *Generator, nx, ny float64) float64 {
	value := -1.0
	for _, isl := range c.islands {
		dx := nx - isl.cx
		dy := ny - isl.cy
		dist := math.Hypot(dx, dy)
		if dist < isl.size {
			// Volcanic profile: steep but not too tall.
			h := math.Pow(1.0-dist/isl.size, 1.5) * 0.8
			value = math.Max(value, h)
		}
	}
	return value
}

// --- tectonic ridge --------------------------------------------------------

// tectonicRidge is an elongated continent with a mountain spine.
type tectonicRidge struct {
	angle, length, width float64
	cx, cy               float64
}

func (g *Generator) buildTectonicRidge(land float64) tectonicRidge {
	cont := func(x, y float64) float64 { return g.field.Sample(noise.Continent, x, y) }
	return tectonicRidge{
		angle:  cont(1.0, 2.0) * 2 * math.Pi,
		length: 0.3 + land*0.2,
		width:  0.2 + land*0.15,
		cx:     0.5 + cont(3.0, 4.0)*0.2,
		cy:     0.5 + cont(4.0, 3.0)*0.2,
	}
}

func (r tectonicRidge) shape(g *Generator, nx, ny float64) float64 {
	dx := nx - r.cx
	dy := ny - r.cy
	rotX := dx*math.Cos(r.angle) - dy*math.Sin(r.angle)
	rotY := dx*math.Sin(r.angle) + dy*math.Cos(r.angle)

	if math.Abs(rotX) >= r.length || math.Abs(rotY) >= r.width {
		return -1.0
	}

	spineDistance := math.Abs(rotY) / r.width
	alongRidge := math.Abs(rotX) / r.length

	baseHeight := (1.0 - spineDistance) * 0.8
	fs := g.freqScale
	variation := g.field.Sample(noise.Elevation, nx*20.0*fs, ny*20.0*fs) * 0.3
	taper := 1.0 - alongRidge*0.5

	return math.Max(-1.0, baseHeight*taper+variation)
}

// --- crescent arc ----------------------------------------------------------

// crescentArc forms an island arc along part of a circle.
type crescentArc struct {
	cx, cy     float64
	radius     float64
	width      float64
	startAngle float64
	span       float64
}

func (g *Generator) buildCrescentArc(land float64) crescentArc {
	cont := func(x, y float64) float64 { return g.field.Sample(noise.Continent, x, y) }
	return crescentArc{
		cx:         0.5 + cont(5.0, 6.0)*0.3,
		cy:         0.5 + cont(6.0, 5.0)*0.3,
		radius:     0.3 + land*0.2,
		width:      0.08 + land*0.1,
		startAngle: cont(7.0, 8.0) * math.Pi,
		span:       math.Pi * (0.5 + land*0.5),
	}
}

func (a crescentArc) shape(g *Generator, nx, ny float64) float64 {
	dx := nx - a.cx
	dy := ny - a.cy
	dist := math.Hypot(dx, dy)
	angle := math.Atan2(dy, dx)

	angleDiff := angle - a.startAngle
	for angleDiff < 0 {
		angleDiff += 2 * math.Pi
	}
	for angleDiff > 2*math.Pi {
		angleDiff -= 2 * math.Pi
	}

	if angleDiff >= a.span || math.Abs(dist-a.radius) >= a.width {
		return -1.0
	}

	radial := 1.0 - math.Abs(dist-a.radius)/a.width
	fs := g.freqScale
	h := radial*0.7 + g.field.Sample(noise.Elevation, nx*15.0*fs, ny*15.0*fs)*0.3
	return math.Max(-1.0, h)
}

// --- multi-plate continent -------------------------------------------------

type plate struct {
	cx, cy, size float64
}

// multiPlate overlays several tectonic plates, raising mountains where they
// collide and lowering rift valleys inside them.
type multiPlate struct {
	plates     []plate
	landTarget float64
}

func (g *Generator) buildMultiPlate(land float64) multiPlate {
	cont := func(x, y float64) float64 { return g.field.Sample(noise.Continent, x, y) }

	numPlates := 2 + int(land*2.0)
	m := multiPlate{plates: make([]plate, 0, numPlates), landTarget: land}
	for p := 0; p < numPlates; p++ {
		offset := float64(p) * 50.0
		m.plates = append(m.plates, plate{
			cx:   0.5 + cont(offset*0.3, offset*0.4)*0.4,
			cy:   0.5 + cont(offset*0.4, offset*0.3)*0.4,
			size: 0.2 + math.Abs(cont(offset*0.5, offset*0.6))*0.2,
		})
	}
	return m
}

func (m multiPlate) shape(g *Generator, nx, ny float64) float64 {
	fs := g.freqScale
	value := -1.0

	boundaryNoise := g.field.Sample(noise.Elevation, nx*8.0*fs, ny*8.0*fs)*0.15 +
		g.field.Sample(noise.Detail, nx*15.0*fs, ny*15.0*fs)*0.1

	for i, pl := range m.plates {
		dx := nx - pl.cx
		dy := ny - pl.cy
		dist := math.Hypot(dx, dy)

		effectiveSize := pl.size + boundaryNoise
		if dist >= effectiveSize {
			continue
		}

		plateHeight := (1.0 - dist/effectiveSize) * 0.5
		riftNoise := g.field.Sample(noise.Continent, nx*20.0*fs, ny*20.0*fs)

		nearOtherPlate := false
		for j, other := range m.plates {
			if j == i {
				continue
			}
			odist := math.Hypot(nx-other.cx, ny-other.cy)
			if odist < other.size+0.05 {
				nearOtherPlate = true
				break
			}
		}

		h := plateHeight
		switch {
		case nearOtherPlate && riftNoise > 0.2:
			// Mountain range at the collision zone.
			h = plateHeight + 0.3
		case riftNoise < -0.3:
			// Rift valley.
			h = plateHeight * 0.5
		}
		value = math.Max(value, h)
	}

	// Thin isthmuses connect plates on land-heavy maps.
	if m.landTarget > 0.3 {
		isthmusNoise := g.field.Sample(noise.Elevation, nx*6.0*fs, ny*6.0*fs)
		if isthmusNoise > 0.4 && value > -0.5 {
			value = math.Max(value, 0.3)
		}
	}
	return value
}

// --- complex archipelago ---------------------------------------------------

type archipelagoIsland struct {
	cx, cy      float64
	size        float64
	power       float64
	heightScale float64
}

// archipelago scatters fractal island clusters with a power-law size mix.
type archipelago struct {
	islands []archipelagoIsland
}

func (g *Generator) buildArchipelago(land float64) archipelago {
	cont := func(x, y float64) float64 { return g.field.Sample(noise.Continent, x, y) }
	elev := func(x, y float64) float64 { return g.field.Sample(noise.Elevation, x, y) }

	numClusters := 1 + int(land*2.0)
	a := archipelago{}
	for c := 0; c < numClusters; c++ {
		clusterSeed := float64(c) * 47.3

		cx := 0.5 + cont(clusterSeed*0.13, clusterSeed*0.17)*0.4
		cy := 0.5 + cont(clusterSeed*0.19, clusterSeed*0.11)*0.4

		baseIslands := 3 + int(land*5.0)
		for i := 0; i < baseIslands; i++ {
			islandSeed := float64(i)*13.7 + clusterSeed

			// Exponential size decay: many small islands, few large.
			sizeFactor := math.Exp(-(float64(i) / 3.0))
			sizeVariation := math.Abs(elev(islandSeed*0.23, islandSeed*0.29))

			scatter := sizeFactor*0.2 + 0.05
			angle := islandSeed * 2.3
			radius := scatter * (1.0 + sizeVariation)

			ix := cx + math.Cos(angle)*radius + cont(islandSeed*0.31, islandSeed*0.37)*scatter
			iy := cy + math.Sin(angle)*radius + cont(islandSeed*0.41, islandSeed*0.43)*scatter

			a.islands = append(a.islands, archipelagoIsland{
				cx:          ix,
				cy:          iy,
				size:        (0.02 + sizeFactor*0.1) * (1.0 + sizeVariation*0.5) * math.Sqrt(land),
				power:       1.5 + sizeVariation,
				heightScale: 0.4 + sizeFactor*0.4,
			})
		}
	}
	return a
}

func (a archipelago) shape(g *Generator, nx, ny float64) float64 {
	fs := g.freqScale
	value := -1.0

	shapeDistortion := g.field.Sample(noise.Detail, nx*50.0*fs, ny*50.0*fs) * 0.3
	for _, isl := range a.islands {
		if isl.size <= 0 {
			continue
		}
		dx := nx - isl.cx
		dy := ny - isl.cy
		effectiveDist := math.Sqrt(dx*dx*(1.0+shapeDistortion) + dy*dy*(1.0-shapeDistortion))
		if effectiveDist < isl.size {
			h := math.Pow(1.0-effectiveDist/isl.size, isl.power) * isl.heightScale
			value = math.Max(value, h)
		}
	}

	// Underwater ridges leave shallow water between island groups.
	ridgeNoise := g.field.Sample(noise.Elevation, nx*5.0*fs, ny*5.0*fs)
	if ridgeNoise > 0.3 && value > -0.8 {
		value = math.Max(value, -0.1+ridgeNoise*0.3)
	}
	return value
}
