package style

import (
	"sync"

	"github.com/OCharnyshevich/undergroundbiome/pkg/pocket"
	"github.com/OCharnyshevich/undergroundbiome/pkg/world/gen"
)

// Lava floods the bottom of the pocket and crusts the walls with a noisy
// obsidian shell. The lava surface sits Depth of the way up from the bottom.
type Lava struct {
	Shell     uint16
	Crust     uint16
	Depth     float64
	Threshold float64

	mu    sync.Mutex
	noise map[int64]*gen.NoiseGenerator
}

func newLava(p Params) (pocket.Style, error) {
	l := &Lava{noise: make(map[int64]*gen.NoiseGenerator)}
	var err error
	if l.Shell, err = p.Block("shell", gen.State(gen.BlockStone, 0)); err != nil {
		return nil, err
	}
	if l.Crust, err = p.Block("crust", gen.State(gen.BlockObsidian, 0)); err != nil {
		return nil, err
	}
	if l.Depth, err = p.Float("depth", 0.35); err != nil {
		return nil, err
	}
	if l.Threshold, err = p.Float("threshold", 0.1); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Lava) Fill(ctx *pocket.Context, pos gen.BlockPos) {
	if !carvable(ctx, pos) {
		return
	}
	if pos.Y < l.surface(ctx) {
		ctx.World.SetBlock(pos, gen.State(gen.BlockLava, 0))
		return
	}
	ctx.World.SetBlock(pos, gen.State(gen.BlockAir, 0))
}

// FinalFloorPass seals the pool so it cannot drain into caves below.
func (l *Lava) FinalFloorPass(ctx *pocket.Context, pos gen.BlockPos) {
	if carvable(ctx, pos) {
		ctx.World.SetBlock(pos, l.Crust)
	}
}

func (l *Lava) FinalCeilingPass(*pocket.Context, gen.BlockPos) {}

func (l *Lava) FinalWallPass(ctx *pocket.Context, pos gen.BlockPos) {
	if !carvable(ctx, pos) {
		return
	}
	n := l.noiseFor(ctx.World.Seed()).Noise3D(float64(pos.X)/4, float64(pos.Y)/4, float64(pos.Z)/4)
	switch {
	case pos.Y < l.surface(ctx) || n > l.Threshold:
		ctx.World.SetBlock(pos, l.Crust)
	default:
		ctx.World.SetBlock(pos, l.Shell)
	}
}

func (l *Lava) FinalInsidePass(*pocket.Context, gen.BlockPos) {}

func (l *Lava) CanSpawn(b gen.Biome) bool {
	return b != gen.BiomeOcean && b != gen.BiomeTundra && b != gen.BiomeSnowyTaiga
}

func (l *Lava) String() string { return "lava" }

func (l *Lava) surface(ctx *pocket.Context) int {
	bottom := ctx.Source.Y - ctx.RadiusY
	return bottom + int(l.Depth*float64(2*ctx.RadiusY+1))
}

func (l *Lava) noiseFor(seed int64) *gen.NoiseGenerator {
	l.mu.Lock()
	defer l.mu.Unlock()
	n, ok := l.noise[seed]
	if !ok {
		n = gen.NewNoiseGenerator(seed + 700)
		l.noise[seed] = n
	}
	return n
}
