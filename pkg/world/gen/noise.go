package gen

import "github.com/aquilax/go-perlin"

// NoiseGenerator is seeded gradient noise. A single octave is sampled per
// call; OctaveNoise2D layers octaves itself so callers can pick the count.
type NoiseGenerator struct {
	p *perlin.Perlin
}

// NewNoiseGenerator returns a generator whose output depends only on seed.
func NewNoiseGenerator(seed int64) *NoiseGenerator {
	return &NoiseGenerator{p: perlin.NewPerlin(2, 2, 1, seed)}
}

// Noise2D samples 2D noise. Values lie in [-1, 1] and are 0 on integer lattice points.
func (ng *NoiseGenerator) Noise2D(x, y float64) float64 {
	return ng.p.Noise2D(x, y)
}

// Noise3D samples 3D noise in [-1, 1].
func (ng *NoiseGenerator) Noise3D(x, y, z float64) float64 {
	return ng.p.Noise3D(x, y, z)
}

// OctaveNoise2D sums octaves at doubling frequency, each scaled by
// persistence, and normalizes the result back to [-1, 1].
func (ng *NoiseGenerator) OctaveNoise2D(x, y float64, octaves int, persistence float64) float64 {
	var total, norm float64
	freq, amp := 1.0, 1.0
	for range octaves {
		total += ng.p.Noise2D(x*freq, y*freq) * amp
		norm += amp
		amp *= persistence
		freq *= 2
	}
	if norm == 0 {
		return 0
	}
	return total / norm
}
