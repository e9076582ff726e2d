package app

import (
	"flag"

	"cartogen/internal/worldgen"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Seed   uint
	Width  int
	Height int
	Scale  int
	Rivers float64
	Cities float64
	Land   float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := worldgen.DefaultSettings()
	return &Config{
		Seed:   42,
		Width:  320,
		Height: 240,
		Scale:  3,
		Rivers: d.RiverDensity,
		Cities: d.CityDensity,
		Land:   d.LandPercentage,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.UintVar(&c.Seed, "seed", c.Seed, "world seed")
	fs.IntVar(&c.Width, "width", c.Width, "map width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "map height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Float64Var(&c.Rivers, "rivers", c.Rivers, "river density in [0,1]")
	fs.Float64Var(&c.Cities, "cities", c.Cities, "city density in [0,1]")
	fs.Float64Var(&c.Land, "land", c.Land, "land percentage in [0,1]")
}

// Settings converts the density flags into clamped generator settings.
func (c *Config) Settings() worldgen.Settings {
	return worldgen.Settings{
		RiverDensity:   c.Rivers,
		CityDensity:    c.Cities,
		LandPercentage: c.Land,
	}.Clamp()
}
