package pipeline

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/OCharnyshevich/undergroundbiome/internal/world"
	"github.com/OCharnyshevich/undergroundbiome/pkg/pocket"
	"github.com/OCharnyshevich/undergroundbiome/pkg/world/gen"
)

var _ gen.Generator = (*Pipeline)(nil)

// Pipeline generates base terrain and then carves every pocket type into
// each chunk. Pocket types run in the order given; each chunk is finished
// before Generate returns.
type Pipeline struct {
	base      gen.Generator
	pockets   []*pocket.Generator
	seed      int64
	dimension string
	log       *slog.Logger

	mu        sync.Mutex
	instances []pocket.Instance
}

// New creates a Pipeline over base for the given world seed.
func New(base gen.Generator, seed int64, dimension string, pockets []*pocket.Generator, log *slog.Logger) *Pipeline {
	return &Pipeline{
		base:      base,
		pockets:   pockets,
		seed:      seed,
		dimension: dimension,
		log:       log,
	}
}

func (p *Pipeline) Generate(chunkX, chunkZ int) *gen.ChunkData {
	pos := gen.ChunkPos{X: chunkX, Z: chunkZ}
	c := p.base.Generate(chunkX, chunkZ)
	region := world.NewRegion(pos, c, p.base, p.seed, p.dimension)

	var placed []pocket.Instance
	for _, g := range p.pockets {
		placed = append(placed, g.Populate(region, pos)...)
	}
	if len(placed) == 0 {
		return c
	}

	p.log.Debug("pockets placed", "chunk_x", chunkX, "chunk_z", chunkZ, "count", len(placed))
	p.mu.Lock()
	p.instances = append(p.instances, placed...)
	p.mu.Unlock()
	return c
}

func (p *Pipeline) HeightAt(blockX, blockZ int) int {
	return p.base.HeightAt(blockX, blockZ)
}

func (p *Pipeline) BiomeAt(blockX, blockZ int) gen.Biome {
	return p.base.BiomeAt(blockX, blockZ)
}

// Instances returns every chunk part placed so far, ordered by chunk and then
// by pocket source.
func (p *Pipeline) Instances() []pocket.Instance {
	p.mu.Lock()
	out := make([]pocket.Instance, len(p.instances))
	copy(out, p.instances)
	p.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Chunk != b.Chunk {
			if a.Chunk.X != b.Chunk.X {
				return a.Chunk.X < b.Chunk.X
			}
			return a.Chunk.Z < b.Chunk.Z
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		if a.Source.X != b.Source.X {
			return a.Source.X < b.Source.X
		}
		return a.Source.Z < b.Source.Z
	})
	return out
}

// Summary counts distinct pockets and chunk parts per pocket type.
type Summary struct {
	Type    string
	Pockets int
	Parts   int
	Filled  int
}

// Summarize aggregates instances per pocket type, sorted by type name.
func Summarize(instances []pocket.Instance) []Summary {
	type key struct {
		typ string
		src gen.BlockPos
	}
	byType := make(map[string]*Summary)
	seen := make(map[key]bool)
	for _, inst := range instances {
		s, ok := byType[inst.Type]
		if !ok {
			s = &Summary{Type: inst.Type}
			byType[inst.Type] = s
		}
		s.Parts++
		s.Filled += inst.Filled
		if k := (key{inst.Type, inst.Source}); !seen[k] {
			seen[k] = true
			s.Pockets++
		}
	}

	out := make([]Summary, 0, len(byType))
	for _, s := range byType {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}
