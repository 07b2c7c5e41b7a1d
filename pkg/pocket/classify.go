package pocket

import "github.com/OCharnyshevich/undergroundbiome/pkg/world/gen"

// Apply carves ctx's ellipsoid into the chunk column at chunkCorner and
// returns the number of voxels filled.
//
// Scan order is x (outer), y (middle), z (inner) over the chunk footprint and
// the Y band centerY±radiusY clipped to the build height. Fill runs eagerly
// per inside voxel; roles are accumulated in the same order and the final
// passes run afterwards: floor, ceiling, wall, inside.
func (g *Generator) Apply(ctx *Context, chunkCorner gen.BlockPos) int {
	style := g.cfg.Style
	src := ctx.Source

	minY := max(src.Y-ctx.RadiusY, 0)
	maxY := min(src.Y+ctx.RadiusY, gen.BuildHeight-1)

	filled := 0
	for x := chunkCorner.X; x < chunkCorner.X+gen.ChunkSize; x++ {
		for y := minY; y <= maxY; y++ {
			for z := chunkCorner.Z; z < chunkCorner.Z+gen.ChunkSize; z++ {
				pos := gen.BlockPos{X: x, Y: y, Z: z}
				if !ctx.Contains(pos) {
					continue
				}
				style.Fill(ctx, pos)
				filled++
				classify(ctx, pos)
			}
		}
	}

	for _, pos := range ctx.Floor {
		style.FinalFloorPass(ctx, pos)
	}
	for _, pos := range ctx.Ceiling {
		style.FinalCeilingPass(ctx, pos)
	}
	for _, pos := range ctx.wallOrder {
		style.FinalWallPass(ctx, pos)
	}
	for _, pos := range ctx.Inside {
		style.FinalInsidePass(ctx, pos)
	}
	return filled
}

// classify records the roles of an inside voxel. Checks are independent.
func classify(ctx *Context, pos gen.BlockPos) {
	boundary := false
	if !ctx.Contains(pos.Down()) {
		ctx.Floor = append(ctx.Floor, pos)
		boundary = true
	}
	if !ctx.Contains(pos.Up()) {
		ctx.Ceiling = append(ctx.Ceiling, pos)
		boundary = true
	}
	for _, d := range gen.Horizontals {
		if !ctx.Contains(pos.Side(d)) {
			ctx.addWall(pos, d)
			boundary = true
			break
		}
	}
	if !boundary {
		ctx.Inside = append(ctx.Inside, pos)
	}
}
