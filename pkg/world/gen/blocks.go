package gen

import (
	"fmt"
	"sort"
)

// Block IDs matching Minecraft 1.8 protocol.
const (
	BlockAir           = 0
	BlockStone         = 1
	BlockGrass         = 2
	BlockDirt          = 3
	BlockCobblestone   = 4
	BlockBedrock       = 7
	BlockWater         = 9 // stationary water
	BlockLava          = 11
	BlockSand          = 12
	BlockGravel        = 13
	BlockSandstone     = 24
	BlockCobweb        = 30
	BlockBrownMushroom = 39
	BlockRedMushroom   = 40
	BlockMossyCobble   = 48
	BlockObsidian      = 49
	BlockIce           = 79
	BlockClay          = 82
	BlockGlowstone     = 89
	BlockStainedGlass  = 95
	BlockMycelium      = 110
	BlockQuartz        = 155
	BlockPrismarine    = 168
	BlockSeaLantern    = 169
	BlockPackedIce     = 174
	BlockCoalOre       = 16
	BlockIronOre       = 15
	BlockGoldOre       = 14
	BlockDiamondOre    = 56
	BlockRedstoneOre   = 73
	BlockLapisOre      = 21
	BlockEmeraldOre    = 129
	BlockQuartzOre     = 153
)

// State packs a block ID and metadata into a chunk block state.
func State(id, meta uint16) uint16 {
	return id<<4 | meta&0xF
}

// StateID returns the block ID part of a block state.
func StateID(state uint16) uint16 {
	return state >> 4
}

var blockNames = map[string]uint16{
	"air":               BlockAir,
	"stone":             BlockStone,
	"grass":             BlockGrass,
	"dirt":              BlockDirt,
	"cobblestone":       BlockCobblestone,
	"bedrock":           BlockBedrock,
	"water":             BlockWater,
	"lava":              BlockLava,
	"sand":              BlockSand,
	"gravel":            BlockGravel,
	"sandstone":         BlockSandstone,
	"cobweb":            BlockCobweb,
	"brown_mushroom":    BlockBrownMushroom,
	"red_mushroom":      BlockRedMushroom,
	"mossy_cobblestone": BlockMossyCobble,
	"obsidian":          BlockObsidian,
	"ice":               BlockIce,
	"clay":              BlockClay,
	"glowstone":         BlockGlowstone,
	"stained_glass":     BlockStainedGlass,
	"mycelium":          BlockMycelium,
	"quartz_block":      BlockQuartz,
	"prismarine":        BlockPrismarine,
	"sea_lantern":       BlockSeaLantern,
	"packed_ice":        BlockPackedIce,
	"coal_ore":          BlockCoalOre,
	"iron_ore":          BlockIronOre,
	"gold_ore":          BlockGoldOre,
	"diamond_ore":       BlockDiamondOre,
	"redstone_ore":      BlockRedstoneOre,
	"lapis_ore":         BlockLapisOre,
	"emerald_ore":       BlockEmeraldOre,
	"quartz_ore":        BlockQuartzOre,
}

// BlockByName resolves a block name, optionally suffixed with ":meta", to a block state.
func BlockByName(name string) (uint16, error) {
	var meta uint16
	base := name
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == ':' {
			base = name[:i]
			if _, err := fmt.Sscanf(name[i+1:], "%d", &meta); err != nil || meta > 15 {
				return 0, fmt.Errorf("block %q: bad metadata", name)
			}
			break
		}
	}
	id, ok := blockNames[base]
	if !ok {
		return 0, fmt.Errorf("unknown block %q", base)
	}
	return State(id, meta), nil
}

// BlockNames returns every known block name in sorted order.
func BlockNames() []string {
	names := make([]string, 0, len(blockNames))
	for n := range blockNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// IsUnbreakable reports whether world generation must leave the block untouched.
func IsUnbreakable(state uint16) bool {
	return StateID(state) == BlockBedrock
}

// IsSolid reports whether the block is neither air nor a fluid.
func IsSolid(state uint16) bool {
	switch StateID(state) {
	case BlockAir, BlockWater, BlockLava, 8, 10:
		return false
	}
	return true
}
