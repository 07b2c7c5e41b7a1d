package pocket

import "github.com/OCharnyshevich/undergroundbiome/pkg/world/gen"

// Populate applies every instance of this pocket type that reaches into the
// chunk at pos. Sources are re-derived for each neighbour chunk within
// FeatureRadius, so an instance spanning several chunks is carved once per
// chunk with identical radii.
func (g *Generator) Populate(w World, pos gen.ChunkPos) []Instance {
	if !g.enabled() || !g.cfg.InDimension(w.Dimension()) {
		return nil
	}

	radius := g.FeatureRadius()
	chunkRadius := (radius + gen.ChunkSize - 1) / gen.ChunkSize
	corner := pos.Corner()

	var out []Instance
	for i := pos.X - chunkRadius; i <= pos.X+chunkRadius; i++ {
		for j := pos.Z - chunkRadius; j <= pos.Z+chunkRadius; j++ {
			sourceChunk := gen.ChunkPos{X: i, Z: j}
			r := NewRandom(ChunkSeed(w.Seed(), sourceChunk, g.typeHash))
			for _, src := range g.SourcesInChunk(r, sourceChunk.Corner()) {
				if !withinRadius(src, corner, radius) || !g.IsSourceValid(w, src) {
					continue
				}
				out = append(out, g.GenerateChunkPart(src, r, corner, w))
			}
		}
	}
	return out
}

// withinRadius reports whether the horizontal distance from src to the
// chunk's 16×16 footprint is at most radius.
func withinRadius(src, chunkCorner gen.BlockPos, radius int) bool {
	dx := max(chunkCorner.X-src.X, 0, src.X-(chunkCorner.X+gen.ChunkSize-1))
	dz := max(chunkCorner.Z-src.Z, 0, src.Z-(chunkCorner.Z+gen.ChunkSize-1))
	return dx*dx+dz*dz <= radius*radius
}
