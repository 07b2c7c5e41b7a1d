package pocketindex

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/OCharnyshevich/undergroundbiome/pkg/pocket"
	"github.com/OCharnyshevich/undergroundbiome/pkg/world/gen"
)

func openTemp(t *testing.T) *Index {
	t.Helper()
	idx, err := Open(filepath.Join(t.TempDir(), "db", "pockets.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = idx.Close() })
	return idx
}

func part(typ string, src gen.BlockPos, chunk gen.ChunkPos, filled int) pocket.Instance {
	return pocket.Instance{
		Type: typ, Source: src, SourceChunk: gen.ChunkPosOf(src), Chunk: chunk,
		RadiusX: 6, RadiusY: 3, RadiusZ: 7, Filled: filled, Floor: 1, Ceiling: 2, Walls: 3, Inside: 4,
	}
}

func TestRecordAndCount(t *testing.T) {
	ctx := context.Background()
	idx := openTemp(t)

	a := gen.BlockPos{X: 4, Y: 30, Z: 4}
	b := gen.BlockPos{X: 40, Y: 22, Z: 9}
	insts := []pocket.Instance{
		part("crystal", a, gen.ChunkPos{X: 0, Z: 0}, 100),
		part("crystal", a, gen.ChunkPos{X: -1, Z: 0}, 12),
		part("crystal", b, gen.ChunkPos{X: 2, Z: 0}, 80),
		part("lava", a, gen.ChunkPos{X: 0, Z: 0}, 50),
	}
	if err := idx.Record(ctx, 7, insts); err != nil {
		t.Fatalf("Record: %v", err)
	}
	// same parts again must not duplicate
	if err := idx.Record(ctx, 7, insts); err != nil {
		t.Fatalf("Record again: %v", err)
	}

	counts, err := idx.CountByType(ctx, 7)
	if err != nil {
		t.Fatalf("CountByType: %v", err)
	}
	if counts["crystal"] != 2 || counts["lava"] != 1 {
		t.Errorf("CountByType = %v, want crystal:2 lava:1", counts)
	}

	other, err := idx.CountByType(ctx, 8)
	if err != nil {
		t.Fatalf("CountByType: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("CountByType(other seed) = %v, want empty", other)
	}
}

func TestPartsInChunk(t *testing.T) {
	ctx := context.Background()
	idx := openTemp(t)

	src := gen.BlockPos{X: 4, Y: 30, Z: 4}
	origin := gen.ChunkPos{}
	want := []pocket.Instance{
		part("crystal", src, origin, 100),
		part("lava", src, origin, 50),
	}
	insts := append([]pocket.Instance{part("crystal", src, gen.ChunkPos{X: 1}, 9)}, want...)
	if err := idx.Record(ctx, 1, insts); err != nil {
		t.Fatalf("Record: %v", err)
	}

	got, err := idx.PartsInChunk(ctx, 1, origin)
	if err != nil {
		t.Fatalf("PartsInChunk: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("PartsInChunk returned %d parts, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("part %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestOpenEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
