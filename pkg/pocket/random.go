package pocket

import (
	"math/bits"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"

	"github.com/OCharnyshevich/undergroundbiome/pkg/world/gen"
)

// Random is a seeded PCG stream. Bounded draws are reduced here rather than
// through rand.Rand so the sequence for a seed is fixed by this package alone.
type Random struct {
	src *rand.PCG
}

// NewRandom returns a stream seeded with seed.
func NewRandom(seed uint64) *Random {
	return &Random{src: rand.NewPCG(seed, seed^0xda3e39cb94b95bdb)}
}

// Uint64 returns the next raw 64-bit value.
func (r *Random) Uint64() uint64 {
	return r.src.Uint64()
}

// IntN returns a uniform int in [0, n). It returns 0 when n <= 0.
func (r *Random) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	bound := uint64(n)
	hi, lo := bits.Mul64(r.src.Uint64(), bound)
	if lo < bound {
		thresh := -bound % bound
		for lo < thresh {
			hi, lo = bits.Mul64(r.src.Uint64(), bound)
		}
	}
	return int(hi)
}

// Float64 returns a uniform float in [0, 1).
func (r *Random) Float64() float64 {
	return float64(r.src.Uint64()>>11) / (1 << 53)
}

// Chance reports true with probability p.
func (r *Random) Chance(p float64) bool {
	return r.Float64() < p
}

// TypeHash is the stable hash of a pocket type name. It is part of the world
// format: changing it moves every pocket in existing seeds.
func TypeHash(name string) uint64 {
	return xxhash.Sum64String(name)
}

// ChunkSeed derives the stream seed for one chunk of one pocket type.
func ChunkSeed(worldSeed int64, chunk gen.ChunkPos, typeHash uint64) uint64 {
	ws := uint64(worldSeed)
	xs := splitmix64(ws) | 1
	zs := splitmix64(xs) | 1
	return (xs*uint64(int64(chunk.X)) + zs*uint64(int64(chunk.Z))) ^ ws ^ typeHash
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ x>>30) * 0xbf58476d1ce4e5b9
	x = (x ^ x>>27) * 0x94d049bb133111eb
	return x ^ x>>31
}
