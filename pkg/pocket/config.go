package pocket

import (
	"errors"
	"fmt"

	"github.com/OCharnyshevich/undergroundbiome/pkg/world/gen"
)

// Overworld is the dimension a pocket type generates in when none are configured.
const Overworld = "overworld"

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid pocket config")

// Config describes one pocket type. It is immutable once handed to NewGenerator.
type Config struct {
	Name string

	HorizontalSize      int
	HorizontalVariation int
	VerticalSize        int
	VerticalVariation   int

	// Sources are placed with MinY <= y < MaxY.
	MinY int
	MaxY int

	// Rarity is the 1-in-N chance per chunk; <= 0 disables placement.
	Rarity int

	Biomes     BiomeSet
	Style      Style
	Dimensions []string
}

// Validate checks the structural constraints placement relies on.
func (c *Config) Validate() error {
	switch {
	case c.Name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidConfig)
	case c.Style == nil:
		return fmt.Errorf("%w: %s: no style", ErrInvalidConfig, c.Name)
	case c.HorizontalSize < 0 || c.HorizontalVariation < 0 || c.VerticalSize < 0 || c.VerticalVariation < 0:
		return fmt.Errorf("%w: %s: negative size", ErrInvalidConfig, c.Name)
	case c.MinY < 0 || c.MaxY > gen.BuildHeight || c.MaxY < c.MinY:
		return fmt.Errorf("%w: %s: y range [%d,%d)", ErrInvalidConfig, c.Name, c.MinY, c.MaxY)
	}
	return nil
}

// InDimension reports whether the pocket type may generate in dim.
func (c *Config) InDimension(dim string) bool {
	if len(c.Dimensions) == 0 {
		return dim == Overworld
	}
	for _, d := range c.Dimensions {
		if d == dim {
			return true
		}
	}
	return false
}

// BiomeSet is an allow list, or a deny list when Exclude is set.
// The zero value admits no biome.
type BiomeSet struct {
	Exclude bool
	biomes  map[gen.Biome]struct{}
}

// NewBiomeSet builds an allow list of biomes.
func NewBiomeSet(biomes ...gen.Biome) BiomeSet {
	s := BiomeSet{biomes: make(map[gen.Biome]struct{}, len(biomes))}
	for _, b := range biomes {
		s.biomes[b] = struct{}{}
	}
	return s
}

// ExcludeBiomes builds a deny list: every biome except the given ones.
func ExcludeBiomes(biomes ...gen.Biome) BiomeSet {
	s := NewBiomeSet(biomes...)
	s.Exclude = true
	return s
}

func (s BiomeSet) Contains(b gen.Biome) bool {
	_, ok := s.biomes[b]
	return ok != s.Exclude
}
