package pocket

import "github.com/OCharnyshevich/undergroundbiome/pkg/world/gen"

// Context is the state of one pocket instance being applied to one chunk.
// It is built per call and must not be retained by styles.
type Context struct {
	World  World
	Source gen.BlockPos
	Random *Random
	Config *Config

	RadiusX, RadiusY, RadiusZ int

	// Role accumulators, in scan order. A voxel may carry several roles.
	Floor   []gen.BlockPos
	Ceiling []gen.BlockPos
	Inside  []gen.BlockPos
	// Walls maps a wall voxel to the horizontal direction of its outside neighbour.
	Walls map[gen.BlockPos]gen.Direction

	wallOrder []gen.BlockPos
}

// NewContext returns an empty context for one instance.
func NewContext(w World, cfg *Config, src gen.BlockPos, r *Random, rx, ry, rz int) *Context {
	return &Context{
		World:   w,
		Source:  src,
		Random:  r,
		Config:  cfg,
		RadiusX: rx,
		RadiusY: ry,
		RadiusZ: rz,
		Walls:   make(map[gen.BlockPos]gen.Direction),
	}
}

// Contains reports whether pos lies inside the instance's ellipsoid, boundary included.
func (c *Context) Contains(pos gen.BlockPos) bool {
	return normalizedDistance(pos, c.Source, c.RadiusX, c.RadiusY, c.RadiusZ) <= 1
}

// WallPositions returns the wall voxels in the order they were found.
func (c *Context) WallPositions() []gen.BlockPos {
	return c.wallOrder
}

func (c *Context) addWall(pos gen.BlockPos, d gen.Direction) {
	if _, ok := c.Walls[pos]; !ok {
		c.wallOrder = append(c.wallOrder, pos)
	}
	c.Walls[pos] = d
}

// normalizedDistance is Σ (p_i-c_i)²/r_i². Radii below 1 count as 1.
func normalizedDistance(p, c gen.BlockPos, rx, ry, rz int) float64 {
	dx := float64(p.X - c.X)
	dy := float64(p.Y - c.Y)
	dz := float64(p.Z - c.Z)
	rx2 := float64(max(rx, 1) * max(rx, 1))
	ry2 := float64(max(ry, 1) * max(ry, 1))
	rz2 := float64(max(rz, 1) * max(rz, 1))
	return dx*dx/rx2 + dy*dy/ry2 + dz*dz/rz2
}
