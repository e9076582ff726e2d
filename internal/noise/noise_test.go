package noise

import (
	"math"
	"testing"
)

func TestSampleDeterministic(t *testing.T) {
	a := NewField(42)
	b := NewField(42)

	for ch := Channel(0); ch < numChannels; ch++ {
		for i := 0; i < 50; i++ {
			x := float64(i) * 0.137
			y := float64(i) * 0.291
			if got, want := a.Sample(ch, x, y), b.Sample(ch, x, y); got != want {
				t.Fatalf("channel %d at (%f, %f): %f != %f", ch, x, y, got, want)
			}
		}
	}
}

func TestSampleRange(t *testing.T) {
	f := NewField(7)
	for ch := Channel(0); ch < numChannels; ch++ {
		for i := 0; i < 200; i++ {
			v := f.Sample(ch, float64(i)*0.173, float64(i)*0.089)
			if v < -1 || v > 1 || math.IsNaN(v) {
				t.Fatalf("channel %d sample %d out of range: %f", ch, i, v)
			}
		}
	}
}

func TestChannelsDecorrelated(t *testing.T) {
	f := NewField(1234)
	same := true
	for i := 1; i < 40 && same; i++ {
		x := float64(i) * 0.217
		y := float64(i) * 0.331
		if f.Sample(Elevation, x, y) != f.Sample(Continent, x, y) {
			same = false
		}
	}
	if same {
		t.Fatal("elevation and continent channels should differ for a shared seed")
	}
}

func TestSampleUnknownChannel(t *testing.T) {
	f := NewField(1)
	if v := f.Sample(Channel(99), 0.5, 0.5); v != 0 {
		t.Fatalf("unknown channel should sample as 0, got %f", v)
	}
}
