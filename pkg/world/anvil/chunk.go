// Package anvil saves generated chunk columns as Minecraft 1.8 Anvil region
// files, so a carved area can be opened and inspected in a game client.
package anvil

import (
	"bytes"

	"github.com/OCharnyshevich/undergroundbiome/pkg/world/gen"
	"github.com/OCharnyshevich/undergroundbiome/pkg/world/nbt"
)

const (
	sectionVolume = 4096
	nibbleLen     = sectionVolume / 2
)

// EncodeChunk returns the uncompressed NBT for one chunk column. Empty
// sections are omitted; light is written fully bright so carved pockets are
// visible without a relight.
func EncodeChunk(pos gen.ChunkPos, c *gen.ChunkData) ([]byte, error) {
	var buf bytes.Buffer
	w := nbt.NewWriter(&buf)

	w.BeginCompound("")
	w.BeginCompound("Level")
	w.WriteInt("xPos", int32(pos.X))
	w.WriteInt("zPos", int32(pos.Z))
	w.WriteTagByte("TerrainPopulated", 1)
	w.WriteLong("LastUpdate", 0)

	var present int32
	for _, s := range c.Sections {
		if s != nil {
			present++
		}
	}

	bright := bytes.Repeat([]byte{0xFF}, nibbleLen)
	w.BeginList("Sections", nbt.TagCompound, present)
	for y, s := range c.Sections {
		if s == nil {
			continue
		}
		blocks, data, add := splitSection(s)

		w.BeginCompound("")
		w.WriteTagByte("Y", byte(y))
		w.WriteByteArray("Blocks", blocks)
		if add != nil {
			w.WriteByteArray("Add", add)
		}
		w.WriteByteArray("Data", data)
		w.WriteByteArray("BlockLight", bright)
		w.WriteByteArray("SkyLight", bright)
		w.EndCompound()
	}

	w.WriteByteArray("Biomes", c.Biomes[:])
	w.WriteIntArray("HeightMap", heightMap(c))

	w.EndCompound() // Level
	w.EndCompound()

	if err := w.Err(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// splitSection separates packed states into the low block ID byte, the
// metadata nibble and, only when some ID exceeds 255, the high ID nibble.
func splitSection(s *gen.Section) (blocks, data, add []byte) {
	blocks = make([]byte, sectionVolume)
	data = make([]byte, nibbleLen)
	for i, state := range s.Blocks {
		id := gen.StateID(state)
		blocks[i] = byte(id)
		setNibble(data, i, byte(state&0xF))
		if id > 0xFF {
			if add == nil {
				add = make([]byte, nibbleLen)
			}
			setNibble(add, i, byte(id>>8))
		}
	}
	return blocks, data, add
}

func setNibble(arr []byte, index int, v byte) {
	b := &arr[index/2]
	if index%2 == 0 {
		*b = *b&0xF0 | v&0x0F
	} else {
		*b = *b&0x0F | v<<4
	}
}

// heightMap holds, per column, one above the highest non-air block.
func heightMap(c *gen.ChunkData) []int32 {
	hm := make([]int32, gen.ChunkSize*gen.ChunkSize)
	for z := 0; z < gen.ChunkSize; z++ {
		for x := 0; x < gen.ChunkSize; x++ {
			for y := gen.BuildHeight - 1; y >= 0; y-- {
				if c.GetBlock(x, y, z) != 0 {
					hm[z*gen.ChunkSize+x] = int32(y + 1)
					break
				}
			}
		}
	}
	return hm
}
