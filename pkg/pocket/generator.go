package pocket

import (
	"fmt"

	"github.com/OCharnyshevich/undergroundbiome/pkg/world/gen"
)

// Generator places one pocket type. It holds no per-chunk state; every
// method is safe to repeat and yields the same result for the same inputs.
type Generator struct {
	cfg      *Config
	enabled  func() bool
	typeHash uint64
}

// NewGenerator binds cfg to a generator. enabled is polled on every source
// lookup; nil means always enabled.
func NewGenerator(cfg *Config, enabled func() bool) *Generator {
	if enabled == nil {
		enabled = func() bool { return true }
	}
	return &Generator{cfg: cfg, enabled: enabled, typeHash: TypeHash(cfg.Name)}
}

// Config returns the pocket type this generator places.
func (g *Generator) Config() *Config { return g.cfg }

// FeatureRadius is the largest horizontal radius an instance can realise.
func (g *Generator) FeatureRadius() int {
	return g.cfg.HorizontalSize + g.cfg.HorizontalVariation
}

// SourcesInChunk returns the zero or one source originating in the chunk at
// chunkCorner. r must be freshly seeded for that chunk.
func (g *Generator) SourcesInChunk(r *Random, chunkCorner gen.BlockPos) []gen.BlockPos {
	if g.cfg.Rarity <= 0 || !g.enabled() {
		return nil
	}
	if r.IntN(g.cfg.Rarity) != 0 {
		return nil
	}
	x := r.IntN(gen.ChunkSize)
	y := g.cfg.MinY + r.IntN(g.cfg.MaxY-g.cfg.MinY)
	z := r.IntN(gen.ChunkSize)
	return []gen.BlockPos{{X: chunkCorner.X + x, Y: y, Z: chunkCorner.Z + z}}
}

// IsSourceValid reports whether a pocket may originate at pos.
func (g *Generator) IsSourceValid(w World, pos gen.BlockPos) bool {
	b := w.Biome(pos)
	return g.cfg.Biomes.Contains(b) && g.cfg.Style.CanSpawn(b)
}

// GenerateChunkPart realises the instance at src and applies the part of it
// that falls inside the chunk at chunkCorner. r must be the stream of the
// source chunk, positioned right after SourcesInChunk.
func (g *Generator) GenerateChunkPart(src gen.BlockPos, r *Random, chunkCorner gen.BlockPos, w World) Instance {
	rx := g.cfg.HorizontalSize + r.IntN(g.cfg.HorizontalVariation)
	ry := g.cfg.VerticalSize + r.IntN(g.cfg.VerticalVariation)
	rz := g.cfg.HorizontalSize + r.IntN(g.cfg.HorizontalVariation)

	ctx := NewContext(w, g.cfg, src, r, rx, ry, rz)
	filled := g.Apply(ctx, chunkCorner)

	return Instance{
		Type:        g.cfg.Name,
		Source:      src,
		SourceChunk: gen.ChunkPosOf(src),
		Chunk:       gen.ChunkPosOf(chunkCorner),
		RadiusX:     rx,
		RadiusY:     ry,
		RadiusZ:     rz,
		Filled:      filled,
		Floor:       len(ctx.Floor),
		Ceiling:     len(ctx.Ceiling),
		Walls:       len(ctx.wallOrder),
		Inside:      len(ctx.Inside),
	}
}

func (g *Generator) String() string {
	return fmt.Sprintf("UndergroundBiomeGenerator[%s:%v]", g.cfg.Name, g.cfg.Style)
}

// Instance records one pocket applied to one chunk.
type Instance struct {
	Type        string       `json:"type"`
	Source      gen.BlockPos `json:"source"`
	SourceChunk gen.ChunkPos `json:"source_chunk"`
	Chunk       gen.ChunkPos `json:"chunk"`

	RadiusX int `json:"radius_x"`
	RadiusY int `json:"radius_y"`
	RadiusZ int `json:"radius_z"`

	Filled  int `json:"filled"`
	Floor   int `json:"floor"`
	Ceiling int `json:"ceiling"`
	Walls   int `json:"walls"`
	Inside  int `json:"inside"`
}
