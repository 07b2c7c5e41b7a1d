package world

import (
	"sync"

	"github.com/OCharnyshevich/undergroundbiome/pkg/world/gen"
)

// World caches generated chunks. Chunks are generated lazily and at most
// once stored; concurrent first requests may generate twice, the first
// stored result wins.
type World struct {
	mu        sync.RWMutex
	generator gen.Generator
	chunks    map[gen.ChunkPos]*gen.ChunkData
}

// NewWorld creates a new World with the given generator.
func NewWorld(generator gen.Generator) *World {
	return &World{
		generator: generator,
		chunks:    make(map[gen.ChunkPos]*gen.ChunkData),
	}
}

// GetOrGenerateChunk returns the ChunkData for the given chunk coordinates,
// generating and caching it if needed.
func (w *World) GetOrGenerateChunk(cx, cz int) *gen.ChunkData {
	pos := gen.ChunkPos{X: cx, Z: cz}

	w.mu.RLock()
	if c, ok := w.chunks[pos]; ok {
		w.mu.RUnlock()
		return c
	}
	w.mu.RUnlock()

	c := w.generator.Generate(cx, cz)

	w.mu.Lock()
	defer w.mu.Unlock()
	if existing, ok := w.chunks[pos]; ok {
		return existing
	}
	w.chunks[pos] = c
	return c
}

// GetBlock returns the block state at the given position, generating its chunk if needed.
func (w *World) GetBlock(x, y, z int) uint16 {
	if y < 0 || y >= gen.BuildHeight {
		return 0
	}
	c := w.GetOrGenerateChunk(x>>4, z>>4)
	return c.GetBlock(x&0xF, y, z&0xF)
}

// PreGenerateRadius generates every chunk within radius of the origin,
// row by row, and returns how many chunks the world now holds.
func (w *World) PreGenerateRadius(radius int) int {
	for cx := -radius; cx <= radius; cx++ {
		for cz := -radius; cz <= radius; cz++ {
			w.GetOrGenerateChunk(cx, cz)
		}
	}
	return w.ChunkCount()
}

// ChunkCount returns the number of cached chunks.
func (w *World) ChunkCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.chunks)
}

// Chunks returns a snapshot of the cached chunks keyed by position.
func (w *World) Chunks() map[gen.ChunkPos]*gen.ChunkData {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make(map[gen.ChunkPos]*gen.ChunkData, len(w.chunks))
	for p, c := range w.chunks {
		out[p] = c
	}
	return out
}
