package gen

// FlatGenerator generates a solid world of a single biome: bedrock at y=0,
// stone up to Height-3, three layers of dirt and grass on top.
// It gives underground features a uniform host to carve into.
type FlatGenerator struct {
	Height int
	Biome  Biome
}

// NewFlatGenerator creates a FlatGenerator whose top grass block is at height.
func NewFlatGenerator(height int, biome Biome) *FlatGenerator {
	return &FlatGenerator{Height: min(max(height, 4), BuildHeight-1), Biome: biome}
}

func (g *FlatGenerator) Generate(_, _ int) *ChunkData {
	c := &ChunkData{}
	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			c.SetBlock(x, 0, z, State(BlockBedrock, 0))
			for y := 1; y < g.Height-3; y++ {
				c.SetBlock(x, y, z, State(BlockStone, 0))
			}
			for y := g.Height - 3; y < g.Height; y++ {
				c.SetBlock(x, y, z, State(BlockDirt, 0))
			}
			c.SetBlock(x, g.Height, z, State(BlockGrass, 0))
			c.SetBiome(x, z, g.Biome)
		}
	}
	return c
}

func (g *FlatGenerator) HeightAt(_, _ int) int {
	return g.Height
}

func (g *FlatGenerator) BiomeAt(_, _ int) Biome {
	return g.Biome
}
