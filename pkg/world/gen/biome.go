package gen

import (
	"fmt"
	"sort"
)

// Biome is a biome ID matching the Minecraft 1.8 protocol.
type Biome byte

const (
	BiomeOcean      Biome = 0
	BiomePlains     Biome = 1
	BiomeDesert     Biome = 2
	BiomeMountains  Biome = 3 // extreme hills
	BiomeForest     Biome = 4
	BiomeTaiga      Biome = 5
	BiomeTundra     Biome = 12
	BiomeBeach      Biome = 16
	BiomeJungle     Biome = 21
	BiomeDarkForest Biome = 29
	BiomeSnowyTaiga Biome = 30
	BiomeSavanna    Biome = 35
)

var biomeNames = map[Biome]string{
	BiomeOcean:      "ocean",
	BiomePlains:     "plains",
	BiomeDesert:     "desert",
	BiomeMountains:  "mountains",
	BiomeForest:     "forest",
	BiomeTaiga:      "taiga",
	BiomeTundra:     "tundra",
	BiomeBeach:      "beach",
	BiomeJungle:     "jungle",
	BiomeDarkForest: "dark_forest",
	BiomeSnowyTaiga: "snowy_taiga",
	BiomeSavanna:    "savanna",
}

func (b Biome) String() string {
	if n, ok := biomeNames[b]; ok {
		return n
	}
	return fmt.Sprintf("biome(%d)", byte(b))
}

// BiomeByName resolves a biome name as used in configuration files.
func BiomeByName(name string) (Biome, bool) {
	for b, n := range biomeNames {
		if n == name {
			return b, true
		}
	}
	return 0, false
}

// Biomes returns every known biome ordered by ID.
func Biomes() []Biome {
	out := make([]Biome, 0, len(biomeNames))
	for b := range biomeNames {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// BiomeGenerator selects biomes using temperature/rainfall noise fields.
type BiomeGenerator struct {
	tempNoise *NoiseGenerator
	rainNoise *NoiseGenerator
	terrain   *NoiseGenerator
}

// NewBiomeGenerator creates a BiomeGenerator from a seed.
func NewBiomeGenerator(seed int64) *BiomeGenerator {
	return &BiomeGenerator{
		tempNoise: NewNoiseGenerator(seed + 100),
		rainNoise: NewNoiseGenerator(seed + 200),
		terrain:   NewNoiseGenerator(seed),
	}
}

// BiomeAt returns the biome at the given world block coordinates.
func (bg *BiomeGenerator) BiomeAt(bx, bz int) Biome {
	tx := float64(bx) / 512.0
	tz := float64(bz) / 512.0
	temp := bg.tempNoise.OctaveNoise2D(tx, tz, 4, 0.5)*0.8 + 0.75
	rain := bg.rainNoise.OctaveNoise2D(tx+100, tz+100, 4, 0.5)*0.5 + 0.5

	// Low base terrain reads as ocean, a thin band above it as beach.
	terrainHeight := 62.0 + bg.terrain.OctaveNoise2D(float64(bx)/128.0, float64(bz)/128.0, 6, 0.5)*8.0
	switch {
	case terrainHeight < float64(SeaLevel)-8:
		return BiomeOcean
	case terrainHeight < float64(SeaLevel)-2:
		return BiomeBeach
	}
	return selectBiome(temp, rain)
}

// selectBiome maps temperature and rainfall to a biome.
//
//	Temp\Rain     | Dry (<0.3)    | Medium (0.3-0.6) | Wet (>0.6)
//	Cold <0.3     | Tundra        | Snowy Taiga      | Taiga
//	Mild 0.3-0.7  | Plains        | Forest           | Dark Forest
//	Warm 0.7-1.2  | Savanna       | Plains           | Jungle
//	Hot >1.2      | Desert        | Desert           | Jungle
func selectBiome(temp, rain float64) Biome {
	row := [3]Biome{BiomeDesert, BiomeDesert, BiomeJungle}
	switch {
	case temp < 0.3:
		row = [3]Biome{BiomeTundra, BiomeSnowyTaiga, BiomeTaiga}
	case temp < 0.7:
		row = [3]Biome{BiomePlains, BiomeForest, BiomeDarkForest}
	case temp < 1.2:
		row = [3]Biome{BiomeSavanna, BiomePlains, BiomeJungle}
	}
	switch {
	case rain < 0.3:
		return row[0]
	case rain < 0.6:
		return row[1]
	default:
		return row[2]
	}
}
