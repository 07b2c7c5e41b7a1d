package anvil

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klauspost/compress/zlib"

	"github.com/OCharnyshevich/undergroundbiome/pkg/world/gen"
)

func TestSetNibble(t *testing.T) {
	arr := make([]byte, 3)
	setNibble(arr, 0, 0x0A)
	setNibble(arr, 1, 0x0B)
	setNibble(arr, 4, 0x03)
	setNibble(arr, 5, 0x07)
	setNibble(arr, 0, 0x01)

	want := []byte{0xB1, 0x00, 0x73}
	if !bytes.Equal(arr, want) {
		t.Errorf("nibbles = % x, want % x", arr, want)
	}
}

func TestHeightMap(t *testing.T) {
	c := &gen.ChunkData{}
	c.SetBlock(0, 64, 0, gen.State(gen.BlockStone, 0))
	c.SetBlock(5, 100, 5, gen.State(gen.BlockGrass, 0))
	c.SetBlock(5, 40, 5, gen.State(gen.BlockStone, 0))

	hm := heightMap(c)
	tests := []struct {
		x, z int
		want int32
	}{
		{0, 0, 65},
		{5, 5, 101},
		{1, 0, 0},
	}
	for _, tt := range tests {
		if got := hm[tt.z*16+tt.x]; got != tt.want {
			t.Errorf("heightMap[%d,%d] = %d, want %d", tt.x, tt.z, got, tt.want)
		}
	}
}

func TestEncodeChunk(t *testing.T) {
	c := gen.NewFlatGenerator(10, gen.BiomeDesert).Generate(0, 0)
	data, err := EncodeChunk(gen.ChunkPos{X: 3, Z: -2}, c)
	if err != nil {
		t.Fatalf("EncodeChunk: %v", err)
	}
	if data[0] != 10 {
		t.Fatalf("root tag = %d, want compound", data[0])
	}
	if data[len(data)-1] != 0 || data[len(data)-2] != 0 {
		t.Error("expected Level and root to be closed")
	}
	if bytes.Contains(data, []byte("Add")) {
		t.Error("Add array written for block IDs below 256")
	}
	// one section holds y 0..15
	if n := bytes.Count(data, []byte("Blocks")); n != 1 {
		t.Errorf("wrote %d sections, want 1", n)
	}
}

func TestEncodeChunkHighBlockID(t *testing.T) {
	c := &gen.ChunkData{}
	c.SetBlock(0, 0, 0, gen.State(300, 5))
	data, err := EncodeChunk(gen.ChunkPos{}, c)
	if err != nil {
		t.Fatalf("EncodeChunk: %v", err)
	}
	if !bytes.Contains(data, []byte("Add")) {
		t.Fatal("expected Add array for block ID > 255")
	}
}

func TestRegionOf(t *testing.T) {
	tests := []struct {
		chunk gen.ChunkPos
		want  RegionPos
	}{
		{gen.ChunkPos{X: 0, Z: 0}, RegionPos{0, 0}},
		{gen.ChunkPos{X: 31, Z: 31}, RegionPos{0, 0}},
		{gen.ChunkPos{X: 32, Z: 0}, RegionPos{1, 0}},
		{gen.ChunkPos{X: -1, Z: -33}, RegionPos{-1, -2}},
	}
	for _, tt := range tests {
		if got := RegionOf(tt.chunk); got != tt.want {
			t.Errorf("RegionOf(%v) = %v, want %v", tt.chunk, got, tt.want)
		}
	}
}

// readChunk returns the decompressed NBT stored for chunk in a region file.
func readChunk(t *testing.T, path string, chunk gen.ChunkPos) []byte {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read region: %v", err)
	}
	idx := (chunk.X & 31) + (chunk.Z&31)*32
	loc := binary.BigEndian.Uint32(raw[idx*4:])
	if loc == 0 {
		t.Fatalf("chunk %v missing from %s", chunk, filepath.Base(path))
	}
	off := int(loc>>8) * sectorSize
	length := binary.BigEndian.Uint32(raw[off:])
	if raw[off+4] != compressionZlib {
		t.Fatalf("compression = %d, want zlib", raw[off+4])
	}
	zr, err := zlib.NewReader(bytes.NewReader(raw[off+5 : off+4+int(length)]))
	if err != nil {
		t.Fatalf("zlib: %v", err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	return out
}

func TestSaveChunks(t *testing.T) {
	dir := t.TempDir()
	flat := gen.NewFlatGenerator(20, gen.BiomePlains)
	chunks := map[gen.ChunkPos]*gen.ChunkData{}
	for _, p := range []gen.ChunkPos{{X: 0, Z: 0}, {X: 1, Z: 0}, {X: -1, Z: 0}, {X: 32, Z: 5}} {
		chunks[p] = flat.Generate(p.X, p.Z)
	}

	n, err := SaveChunks(dir, chunks, time.Unix(1700000000, 0))
	if err != nil {
		t.Fatalf("SaveChunks: %v", err)
	}
	if n != 3 {
		t.Fatalf("SaveChunks wrote %d regions, want 3", n)
	}

	for p, c := range chunks {
		path := filepath.Join(dir, RegionOf(p).FileName())
		want, err := EncodeChunk(p, c)
		if err != nil {
			t.Fatal(err)
		}
		if got := readChunk(t, path, p); !bytes.Equal(got, want) {
			t.Errorf("chunk %v round trip differs", p)
		}
	}

	raw, err := os.ReadFile(filepath.Join(dir, "r.0.0.mca"))
	if err != nil {
		t.Fatal(err)
	}
	if len(raw)%sectorSize != 0 {
		t.Errorf("region size %d not sector aligned", len(raw))
	}
	if ts := binary.BigEndian.Uint32(raw[sectorSize:]); ts != 1700000000 {
		t.Errorf("timestamp = %d, want 1700000000", ts)
	}
	// chunk (0,0) sorts first and starts right after the header
	if loc := binary.BigEndian.Uint32(raw[0:]); loc>>8 != headerSectors {
		t.Errorf("first chunk at sector %d, want %d", loc>>8, headerSectors)
	}
}

func TestWriteRegionRejectsForeignChunk(t *testing.T) {
	chunks := map[gen.ChunkPos][]byte{{X: 40, Z: 0}: {10, 0, 0, 0}}
	if err := WriteRegion(t.TempDir(), RegionPos{}, chunks, time.Now()); err == nil {
		t.Fatal("expected error for chunk outside region")
	}
}
