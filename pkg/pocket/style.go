package pocket

import "github.com/OCharnyshevich/undergroundbiome/pkg/world/gen"

// World is the voxel accessor a pocket is carved through. Implementations
// are not required to be safe for concurrent use.
type World interface {
	Block(pos gen.BlockPos) uint16
	SetBlock(pos gen.BlockPos, state uint16)
	Biome(pos gen.BlockPos) gen.Biome
	CanSeeSky(pos gen.BlockPos) bool
	Seed() int64
	Dimension() string
}

// Style decides what a pocket looks like once carved.
//
// Fill runs for every voxel inside the ellipsoid during the scan. The final
// passes run after the scan, in the order floor, ceiling, wall, inside, so they
// can react to everything Fill placed for the same instance.
type Style interface {
	Fill(ctx *Context, pos gen.BlockPos)
	FinalFloorPass(ctx *Context, pos gen.BlockPos)
	FinalCeilingPass(ctx *Context, pos gen.BlockPos)
	FinalWallPass(ctx *Context, pos gen.BlockPos)
	FinalInsidePass(ctx *Context, pos gen.BlockPos)
	CanSpawn(biome gen.Biome) bool
}
