package world

import (
	"github.com/OCharnyshevich/undergroundbiome/pkg/pocket"
	"github.com/OCharnyshevich/undergroundbiome/pkg/world/gen"
)

var _ pocket.World = (*Region)(nil)

// Region is the view of a single chunk while it is being generated. Reads
// outside the chunk see air and writes outside it are dropped; biomes are
// answered everywhere through the generator so neighbouring sources can be
// validated.
type Region struct {
	pos    gen.ChunkPos
	chunk  *gen.ChunkData
	biomes gen.Generator
	seed   int64
	dim    string

	// tops caches the highest non-air Y per column, -1 when empty.
	tops  [gen.ChunkSize * gen.ChunkSize]int
	known [gen.ChunkSize * gen.ChunkSize]bool
}

// NewRegion wraps chunk, generated at pos, for feature placement.
func NewRegion(pos gen.ChunkPos, chunk *gen.ChunkData, biomes gen.Generator, seed int64, dim string) *Region {
	return &Region{pos: pos, chunk: chunk, biomes: biomes, seed: seed, dim: dim}
}

func (r *Region) local(pos gen.BlockPos) (x, z int, ok bool) {
	if !r.pos.Contains(pos) || pos.Y < 0 || pos.Y >= gen.BuildHeight {
		return 0, 0, false
	}
	return pos.X & 0xF, pos.Z & 0xF, true
}

func (r *Region) Block(pos gen.BlockPos) uint16 {
	x, z, ok := r.local(pos)
	if !ok {
		return 0
	}
	return r.chunk.GetBlock(x, pos.Y, z)
}

func (r *Region) SetBlock(pos gen.BlockPos, state uint16) {
	x, z, ok := r.local(pos)
	if !ok {
		return
	}
	r.chunk.SetBlock(x, pos.Y, z, state)

	i := z*gen.ChunkSize + x
	if !r.known[i] {
		return
	}
	switch {
	case state != 0 && pos.Y > r.tops[i]:
		r.tops[i] = pos.Y
	case state == 0 && pos.Y == r.tops[i]:
		r.known[i] = false
	}
}

func (r *Region) Biome(pos gen.BlockPos) gen.Biome {
	if x, z, ok := r.local(gen.BlockPos{X: pos.X, Z: pos.Z}); ok {
		return r.chunk.Biome(x, z)
	}
	return r.biomes.BiomeAt(pos.X, pos.Z)
}

// CanSeeSky reports whether nothing but air lies above pos.
func (r *Region) CanSeeSky(pos gen.BlockPos) bool {
	x, z, ok := r.local(gen.BlockPos{X: pos.X, Z: pos.Z})
	if !ok {
		return false
	}
	return pos.Y >= r.top(x, z)
}

func (r *Region) top(x, z int) int {
	i := z*gen.ChunkSize + x
	if !r.known[i] {
		r.tops[i] = -1
		for y := gen.BuildHeight - 1; y >= 0; y-- {
			if r.chunk.GetBlock(x, y, z) != 0 {
				r.tops[i] = y
				break
			}
		}
		r.known[i] = true
	}
	return r.tops[i]
}

func (r *Region) Seed() int64       { return r.seed }
func (r *Region) Dimension() string { return r.dim }
