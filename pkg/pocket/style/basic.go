package style

import (
	"fmt"

	"github.com/OCharnyshevich/undergroundbiome/pkg/pocket"
	"github.com/OCharnyshevich/undergroundbiome/pkg/world/gen"
)

// Basic hollows the pocket out with a fill block and lines the floor,
// ceiling and walls with fixed blocks. Walls are painted last, so a voxel
// that is both floor and wall ends up as wall.
type Basic struct {
	FillState    uint16
	FloorState   uint16
	CeilingState uint16
	WallState    uint16
}

func newBasic(p Params) (pocket.Style, error) {
	var (
		b   Basic
		err error
	)
	if b.FillState, err = p.Block("fill", gen.State(gen.BlockAir, 0)); err != nil {
		return nil, err
	}
	if b.FloorState, err = p.Block("floor", gen.State(gen.BlockStone, 0)); err != nil {
		return nil, err
	}
	if b.CeilingState, err = p.Block("ceiling", gen.State(gen.BlockStone, 0)); err != nil {
		return nil, err
	}
	if b.WallState, err = p.Block("wall", gen.State(gen.BlockStone, 0)); err != nil {
		return nil, err
	}
	return &b, nil
}

func (b *Basic) Fill(ctx *pocket.Context, pos gen.BlockPos) {
	if carvable(ctx, pos) {
		ctx.World.SetBlock(pos, b.FillState)
	}
}

func (b *Basic) FinalFloorPass(ctx *pocket.Context, pos gen.BlockPos) {
	b.paint(ctx, pos, b.FloorState)
}

func (b *Basic) FinalCeilingPass(ctx *pocket.Context, pos gen.BlockPos) {
	b.paint(ctx, pos, b.CeilingState)
}

func (b *Basic) FinalWallPass(ctx *pocket.Context, pos gen.BlockPos) {
	b.paint(ctx, pos, b.WallState)
}

func (b *Basic) FinalInsidePass(*pocket.Context, gen.BlockPos) {}

func (b *Basic) CanSpawn(gen.Biome) bool { return true }

func (b *Basic) paint(ctx *pocket.Context, pos gen.BlockPos, state uint16) {
	if carvable(ctx, pos) {
		ctx.World.SetBlock(pos, state)
	}
}

func (b *Basic) String() string {
	return fmt.Sprintf("basic(fill=%d floor=%d ceiling=%d wall=%d)",
		gen.StateID(b.FillState), gen.StateID(b.FloorState), gen.StateID(b.CeilingState), gen.StateID(b.WallState))
}
