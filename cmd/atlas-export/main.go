// Command atlas-export generates a world and writes it to disk as a PNG
// map, a JSON snapshot, or both.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"cartogen/internal/app"
	"cartogen/internal/render"
	"cartogen/internal/worldgen"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "world.png", "output PNG path (empty to skip)")
	jsonOut := flag.String("json", "", "output JSON path (empty to skip)")
	elevation := flag.Bool("elevation", false, "render the elevation ramp instead of biomes")
	flag.Parse()

	world := worldgen.Generate(uint32(cfg.Seed), cfg.Settings(), cfg.Width, cfg.Height)

	if *out != "" {
		mode := render.ModeBiome
		if *elevation {
			mode = render.ModeElevation
		}
		if err := writePNG(*out, world, mode); err != nil {
			log.Fatalf("writing %s: %v", *out, err)
		}
		log.Printf("wrote %s (%dx%d, seed %d)", *out, world.Width, world.Height, cfg.Seed)
	}

	if *jsonOut != "" {
		if err := writeJSON(*jsonOut, world); err != nil {
			log.Fatalf("writing %s: %v", *jsonOut, err)
		}
		log.Printf("wrote %s", *jsonOut)
	}
}

func writePNG(path string, world *worldgen.WorldMap, mode render.Mode) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := render.WritePNG(f, world, mode); err != nil {
		return err
	}
	return f.Close()
}

func writeJSON(path string, world *worldgen.WorldMap) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	if err := enc.Encode(world); err != nil {
		return err
	}
	return f.Close()
}
