package gen

// SeaLevel is the water surface height of generated terrain.
const SeaLevel = 62

// TerrainGenerator produces vanilla-like stone terrain with biome surfaces.
// Underground features are layered on top by the caller.
type TerrainGenerator struct {
	terrain  *NoiseGenerator
	detail   *NoiseGenerator
	biomeGen *BiomeGenerator
}

// NewTerrainGenerator creates a TerrainGenerator from a seed.
func NewTerrainGenerator(seed int64) *TerrainGenerator {
	return &TerrainGenerator{
		terrain:  NewNoiseGenerator(seed),
		detail:   NewNoiseGenerator(seed + 1),
		biomeGen: NewBiomeGenerator(seed),
	}
}

func (g *TerrainGenerator) Generate(chunkX, chunkZ int) *ChunkData {
	c := &ChunkData{}
	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			bx := chunkX*ChunkSize + x
			bz := chunkZ*ChunkSize + z

			biome := g.biomeGen.BiomeAt(bx, bz)
			c.SetBiome(x, z, biome)
			g.fillColumn(c, x, z, g.terrainHeight(bx, bz, biome), biome)
		}
	}
	return c
}

func (g *TerrainGenerator) HeightAt(blockX, blockZ int) int {
	return g.terrainHeight(blockX, blockZ, g.biomeGen.BiomeAt(blockX, blockZ))
}

func (g *TerrainGenerator) BiomeAt(blockX, blockZ int) Biome {
	return g.biomeGen.BiomeAt(blockX, blockZ)
}

// terrainHeight computes the terrain height at a world block coordinate.
// Different biomes scale noise amplitude differently.
func (g *TerrainGenerator) terrainHeight(bx, bz int, biome Biome) int {
	base := g.terrain.OctaveNoise2D(float64(bx)/128.0, float64(bz)/128.0, 6, 0.5)
	detail := g.detail.OctaveNoise2D(float64(bx)/32.0, float64(bz)/32.0, 3, 0.5)

	amplitude, baseHeight := biomeTerrainParams(biome)
	h := int(baseHeight + base*amplitude + detail*4.0)
	return min(max(h, 1), 250)
}

// biomeTerrainParams returns (amplitude, baseHeight) for terrain noise scaling.
func biomeTerrainParams(biome Biome) (amplitude, baseHeight float64) {
	switch biome {
	case BiomeOcean:
		return 8.0, 40.0
	case BiomePlains, BiomeSavanna:
		return 12.0, SeaLevel
	case BiomeForest, BiomeDarkForest, BiomeDesert:
		return 16.0, SeaLevel + 2
	case BiomeTaiga, BiomeSnowyTaiga, BiomeJungle:
		return 18.0, SeaLevel + 4
	case BiomeMountains:
		return 40.0, SeaLevel + 10
	case BiomeBeach:
		return 3.0, SeaLevel
	default:
		return 12.0, SeaLevel
	}
}

// fillColumn fills one block column: bedrock floor, stone body, biome surface, water.
func (g *TerrainGenerator) fillColumn(c *ChunkData, x, z, height int, biome Biome) {
	c.SetBlock(x, 0, z, State(BlockBedrock, 0))
	for y := 1; y <= 3; y++ {
		if g.terrain.Noise2D(float64(x+y*7)*0.5, float64(z)*0.5) > 0.0 {
			c.SetBlock(x, y, z, State(BlockBedrock, 0))
		} else {
			c.SetBlock(x, y, z, State(BlockStone, 0))
		}
	}

	for y := 4; y <= height; y++ {
		c.SetBlock(x, y, z, State(BlockStone, 0))
	}
	applySurface(c, x, z, height, biome)

	for y := height + 1; y <= SeaLevel; y++ {
		c.SetBlock(x, y, z, State(BlockWater, 0))
	}
}

// applySurface replaces the top of the stone column with the biome's surface layers.
func applySurface(c *ChunkData, x, z, height int, biome Biome) {
	layer := func(depth int, state uint16) {
		for y := height; y > height-depth && y > 3; y-- {
			c.SetBlock(x, y, z, state)
		}
	}
	switch {
	case biome == BiomeDesert || biome == BiomeBeach:
		if height-4 > 3 {
			c.SetBlock(x, height-4, z, State(BlockSandstone, 0))
		}
		layer(4, State(BlockSand, 0))
	case biome == BiomeOcean:
		layer(5, State(BlockDirt, 0))
		layer(3, State(BlockGravel, 0))
	case biome == BiomeMountains && height > 100:
		// bare stone peaks
	default:
		layer(4, State(BlockDirt, 0))
		if height > SeaLevel && height > 3 {
			c.SetBlock(x, height, z, State(BlockGrass, 0))
		}
	}
}
