package render

import (
	"bytes"
	"image/png"
	"testing"

	"cartogen/internal/worldgen"
)

func TestFillRGBAPaintsEveryCell(t *testing.T) {
	world := worldgen.Generate(7, worldgen.DefaultSettings(), 32, 24)
	buf := make([]byte, world.Width*world.Height*4)
	FillRGBA(buf, world, ModeBiome)

	for i := 0; i < len(buf); i += 4 {
		if buf[i+3] != 255 {
			t.Fatalf("pixel %d is not opaque", i/4)
		}
	}
}

func TestFillRGBADeterministic(t *testing.T) {
	world := worldgen.Generate(7, worldgen.DefaultSettings(), 32, 24)
	a := make([]byte, world.Width*world.Height*4)
	b := make([]byte, world.Width*world.Height*4)
	FillRGBA(a, world, ModeBiome)
	FillRGBA(b, world, ModeBiome)
	if !bytes.Equal(a, b) {
		t.Fatal("two renders of the same world differ")
	}
}

func TestBiomeColorUnknown(t *testing.T) {
	col := BiomeColor(worldgen.BiomeCount)
	if col.R != 255 || col.G != 0 || col.B != 255 {
		t.Errorf("unknown biome rendered as %v, want magenta", col)
	}
}

func TestElevationColorRamp(t *testing.T) {
	deep := ElevationColor(-1.0)
	peak := ElevationColor(1.0)
	if deep.B <= deep.G {
		t.Errorf("deep water %v is not blue-dominant", deep)
	}
	if peak.R < 200 || peak.G < 200 || peak.B < 200 {
		t.Errorf("peak %v is not near-white", peak)
	}
}

func TestWritePNGRoundTrip(t *testing.T) {
	world := worldgen.Generate(7, worldgen.DefaultSettings(), 32, 24)
	var buf bytes.Buffer
	if err := WritePNG(&buf, world, ModeElevation); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding rendered PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 32 || bounds.Dy() != 24 {
		t.Errorf("decoded size %dx%d, want 32x24", bounds.Dx(), bounds.Dy())
	}
}
