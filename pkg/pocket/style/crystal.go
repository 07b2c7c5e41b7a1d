package style

import (
	"github.com/OCharnyshevich/undergroundbiome/pkg/pocket"
	"github.com/OCharnyshevich/undergroundbiome/pkg/world/gen"
)

// Crystal is a hollow cave whose ceiling grows glass spikes down into the
// carved space and whose floor carries scattered crystal clusters.
type Crystal struct {
	Shell  uint16
	Light  uint16
	Colors []uint16 // stained glass metadata values

	SpikeChance   float64
	ClusterChance float64
	LightChance   float64
	MaxSpike      int
}

func newCrystal(p Params) (pocket.Style, error) {
	c := &Crystal{Colors: []uint16{3, 5, 10, 11}}
	var err error
	if c.Shell, err = p.Block("shell", gen.State(gen.BlockStone, 0)); err != nil {
		return nil, err
	}
	if c.Light, err = p.Block("light", gen.State(gen.BlockGlowstone, 0)); err != nil {
		return nil, err
	}
	if c.SpikeChance, err = p.Float("spike_chance", 0.12); err != nil {
		return nil, err
	}
	if c.ClusterChance, err = p.Float("cluster_chance", 0.08); err != nil {
		return nil, err
	}
	if c.LightChance, err = p.Float("light_chance", 0.02); err != nil {
		return nil, err
	}
	if c.MaxSpike, err = p.Int("max_spike", 4); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Crystal) Fill(ctx *pocket.Context, pos gen.BlockPos) {
	if carvable(ctx, pos) {
		ctx.World.SetBlock(pos, gen.State(gen.BlockAir, 0))
	}
}

func (c *Crystal) FinalFloorPass(ctx *pocket.Context, pos gen.BlockPos) {
	if !carvable(ctx, pos) {
		return
	}
	ctx.World.SetBlock(pos, c.Shell)
	up := pos.Up()
	if ctx.Random.Chance(c.ClusterChance) && ctx.Contains(up) && isAir(ctx, up) {
		ctx.World.SetBlock(up, c.crystal(ctx))
	}
}

// FinalCeilingPass hangs a spike from pos while the space below stays open.
func (c *Crystal) FinalCeilingPass(ctx *pocket.Context, pos gen.BlockPos) {
	if !carvable(ctx, pos) {
		return
	}
	ctx.World.SetBlock(pos, c.Shell)
	if !ctx.Random.Chance(c.SpikeChance) {
		return
	}
	state := c.crystal(ctx)
	length := 1 + ctx.Random.IntN(c.MaxSpike)
	for i := 1; i <= length; i++ {
		p := pos.Add(0, -i, 0)
		if !ctx.Contains(p) || !isAir(ctx, p) {
			break
		}
		ctx.World.SetBlock(p, state)
	}
}

func (c *Crystal) FinalWallPass(ctx *pocket.Context, pos gen.BlockPos) {
	if !carvable(ctx, pos) {
		return
	}
	if ctx.Random.Chance(c.LightChance) {
		ctx.World.SetBlock(pos, c.Light)
		return
	}
	ctx.World.SetBlock(pos, c.Shell)
}

func (c *Crystal) FinalInsidePass(*pocket.Context, gen.BlockPos) {}

func (c *Crystal) CanSpawn(b gen.Biome) bool {
	return b != gen.BiomeOcean
}

func (c *Crystal) crystal(ctx *pocket.Context) uint16 {
	return gen.State(gen.BlockStainedGlass, c.Colors[ctx.Random.IntN(len(c.Colors))])
}

func (c *Crystal) String() string { return "crystal" }

func isAir(ctx *pocket.Context, pos gen.BlockPos) bool {
	return gen.StateID(ctx.World.Block(pos)) == gen.BlockAir
}
