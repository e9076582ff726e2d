// Package noise provides the coherent-noise channels that drive world
// generation. Each channel is an independently seeded Perlin source, so a
// single world seed fans out into decorrelated elevation, climate and
// continent-shape fields.
package noise

import "github.com/aquilax/go-perlin"

// Channel identifies one of the independent noise sources.
type Channel int

const (
	Elevation Channel = iota
	Moisture
	Temperature
	Detail
	Continent

	numChannels
)

const (
	alpha   = 2
	beta    = 2
	octaves = 3
)

// Field samples coherent noise on a fixed set of channels. It is stateless
// after construction and safe for concurrent reads.
type Field struct {
	channels [numChannels]*perlin.Perlin
}

// NewField derives one Perlin source per channel from the world seed.
// Channel k is seeded with seed+k so identical seeds rebuild identical
// fields.
func NewField(seed int64) *Field {
	f := &Field{}
	for ch := range f.channels {
		f.channels[ch] = perlin.NewPerlin(alpha, beta, octaves, seed+int64(ch))
	}
	return f
}

// Sample returns the channel value at (x, y), clamped to [-1, 1].
func (f *Field) Sample(ch Channel, x, y float64) float64 {
	if ch < 0 || ch >= numChannels {
		return 0
	}
	v := f.channels[ch].Noise2D(x, y)
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
