//go:build ebiten

package app

import (
	"time"

	"cartogen/internal/render"
	"cartogen/internal/worldgen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game is the interactive world viewer: it holds one generated world and
// regenerates it on demand.
type Game struct {
	settings worldgen.Settings
	painter  *render.WorldPainter
	world    *worldgen.WorldMap

	width, height int
	scale         int
	seed          uint32
	mode          render.Mode
}

// New constructs a Game and generates the initial world.
func New(seed uint32, settings worldgen.Settings, width, height, scale int) *Game {
	g := &Game{
		settings: settings,
		painter:  render.NewWorldPainter(width, height),
		width:    width,
		height:   height,
		scale:    scale,
		seed:     seed,
	}
	g.regenerate()
	return g
}

// Reset regenerates the world with the provided seed.
func (g *Game) Reset(seed uint32) {
	g.seed = seed
	g.regenerate()
}

func (g *Game) regenerate() {
	g.world = worldgen.Generate(g.seed, g.settings, g.width, g.height)
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(uint32(time.Now().UnixNano()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if g.mode == render.ModeBiome {
			g.mode = render.ModeElevation
		} else {
			g.mode = render.ModeBiome
		}
	}
	return nil
}

// Draw renders the current world.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world, g.mode, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width * g.scale, g.height * g.scale
}
