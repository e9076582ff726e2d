//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"cartogen/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game := app.New(uint32(cfg.Seed), cfg.Settings(), cfg.Width, cfg.Height, cfg.Scale)

	ebiten.SetWindowTitle("cartogen atlas")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
