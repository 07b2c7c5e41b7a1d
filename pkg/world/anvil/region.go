package anvil

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/klauspost/compress/zlib"

	"github.com/OCharnyshevich/undergroundbiome/pkg/world/gen"
)

const (
	sectorSize      = 4096
	headerSectors   = 2 // location table, timestamp table
	compressionZlib = 2
	regionChunks    = 32
)

// RegionPos identifies a 32×32 chunk region file.
type RegionPos struct{ X, Z int }

// RegionOf returns the region holding chunk.
func RegionOf(chunk gen.ChunkPos) RegionPos {
	return RegionPos{X: chunk.X >> 5, Z: chunk.Z >> 5}
}

// FileName is the on-disk name of the region, e.g. r.-1.0.mca.
func (r RegionPos) FileName() string {
	return fmt.Sprintf("r.%d.%d.mca", r.X, r.Z)
}

// SaveChunks encodes every chunk and writes them grouped by region into dir.
// It returns the number of region files written.
func SaveChunks(dir string, chunks map[gen.ChunkPos]*gen.ChunkData, modified time.Time) (int, error) {
	byRegion := make(map[RegionPos]map[gen.ChunkPos][]byte)
	for pos, c := range chunks {
		data, err := EncodeChunk(pos, c)
		if err != nil {
			return 0, fmt.Errorf("encode chunk (%d,%d): %w", pos.X, pos.Z, err)
		}
		r := RegionOf(pos)
		if byRegion[r] == nil {
			byRegion[r] = make(map[gen.ChunkPos][]byte)
		}
		byRegion[r][pos] = data
	}
	for r, encoded := range byRegion {
		if err := WriteRegion(dir, r, encoded, modified); err != nil {
			return 0, err
		}
	}
	return len(byRegion), nil
}

// WriteRegion writes NBT-encoded chunks of one region to dir, replacing any
// existing file atomically. Chunks outside the region are rejected.
func WriteRegion(dir string, r RegionPos, chunks map[gen.ChunkPos][]byte, modified time.Time) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create region dir: %w", err)
	}

	type entry struct {
		index      int
		compressed []byte
	}
	entries := make([]entry, 0, len(chunks))
	for pos, raw := range chunks {
		if RegionOf(pos) != r {
			return fmt.Errorf("chunk (%d,%d) is not in region %s", pos.X, pos.Z, r.FileName())
		}
		var cbuf bytes.Buffer
		zw, err := zlib.NewWriterLevel(&cbuf, zlib.DefaultCompression)
		if err != nil {
			return fmt.Errorf("create zlib writer: %w", err)
		}
		if _, err := zw.Write(raw); err != nil {
			return fmt.Errorf("compress chunk (%d,%d): %w", pos.X, pos.Z, err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("close zlib writer: %w", err)
		}
		idx := (pos.X & (regionChunks - 1)) + (pos.Z&(regionChunks-1))*regionChunks
		entries = append(entries, entry{index: idx, compressed: cbuf.Bytes()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].index < entries[j].index })

	header := make([]byte, headerSectors*sectorSize)
	locations, timestamps := header[:sectorSize], header[sectorSize:]
	stamp := uint32(modified.Unix())

	var body bytes.Buffer
	sector := uint32(headerSectors)
	for _, e := range entries {
		// length field counts the compression byte and the payload
		length := uint32(len(e.compressed)) + 1
		sectors := (4 + length + sectorSize - 1) / sectorSize
		if sectors > 0xFF {
			return fmt.Errorf("chunk %d of %s spans %d sectors", e.index, r.FileName(), sectors)
		}

		off := e.index * 4
		binary.BigEndian.PutUint32(locations[off:], sector<<8|sectors)
		binary.BigEndian.PutUint32(timestamps[off:], stamp)

		var prefix [5]byte
		binary.BigEndian.PutUint32(prefix[:4], length)
		prefix[4] = compressionZlib
		body.Write(prefix[:])
		body.Write(e.compressed)
		body.Write(make([]byte, int(sectors)*sectorSize-int(4+length)))

		sector += sectors
	}

	path := filepath.Join(dir, r.FileName())
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(header, body.Bytes()...), 0o644); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write region file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename region file: %w", err)
	}
	return nil
}
