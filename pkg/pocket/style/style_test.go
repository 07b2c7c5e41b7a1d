package style

import (
	"errors"
	"testing"

	"github.com/OCharnyshevich/undergroundbiome/pkg/pocket"
	"github.com/OCharnyshevich/undergroundbiome/pkg/world/gen"
)

// stoneWorld is solid stone with open sky from skyY upward.
type stoneWorld struct {
	blocks map[gen.BlockPos]uint16
	biome  gen.Biome
	skyY   int
}

func newStoneWorld() *stoneWorld {
	return &stoneWorld{blocks: make(map[gen.BlockPos]uint16), biome: gen.BiomePlains, skyY: gen.BuildHeight}
}

func (w *stoneWorld) Block(pos gen.BlockPos) uint16 {
	if s, ok := w.blocks[pos]; ok {
		return s
	}
	return gen.State(gen.BlockStone, 0)
}

func (w *stoneWorld) SetBlock(pos gen.BlockPos, state uint16) { w.blocks[pos] = state }
func (w *stoneWorld) Biome(gen.BlockPos) gen.Biome            { return w.biome }
func (w *stoneWorld) CanSeeSky(pos gen.BlockPos) bool         { return pos.Y >= w.skyY }
func (w *stoneWorld) Seed() int64                             { return 5 }
func (w *stoneWorld) Dimension() string                       { return pocket.Overworld }

// carve applies a fixed (4,3,4) pocket centred at (8,40,8) in chunk 0,0.
// With these radii (9,38,8) is floor only, (9,42,8) is ceiling only and
// (12,40,8) is floor, ceiling and wall at once.
func carve(t *testing.T, w pocket.World, s pocket.Style) {
	t.Helper()
	g := pocket.NewGenerator(&pocket.Config{Name: "styled", Style: s, MaxY: gen.BuildHeight}, nil)
	ctx := pocket.NewContext(w, g.Config(), gen.BlockPos{X: 8, Y: 40, Z: 8}, pocket.NewRandom(1), 4, 3, 4)
	if n := g.Apply(ctx, gen.BlockPos{}); n == 0 {
		t.Fatal("Apply filled nothing")
	}
}

func mustStyle(t *testing.T, name string, p Params) pocket.Style {
	t.Helper()
	s, err := New(name, p)
	if err != nil {
		t.Fatalf("New(%q): %v", name, err)
	}
	return s
}

func TestNewUnknownStyle(t *testing.T) {
	_, err := New("sparkly", nil)
	if !errors.Is(err, ErrUnknownStyle) {
		t.Fatalf("New error = %v, want ErrUnknownStyle", err)
	}
}

func TestNamesSorted(t *testing.T) {
	want := []string{"basic", "crystal", "lava"}
	got := Names()
	if len(got) < len(want) {
		t.Fatalf("Names() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParams(t *testing.T) {
	p := Params{
		"block":  "glowstone",
		"meta":   "stained_glass:5",
		"bad":    12,
		"whole":  3,
		"ratio":  0.5,
		"word":   "many",
		"nope":   "unobtainium",
		"wide64": int64(7),
	}

	if b, err := p.Block("block", 0); err != nil || b != gen.State(gen.BlockGlowstone, 0) {
		t.Errorf("Block(block) = %d, %v", b, err)
	}
	if b, err := p.Block("meta", 0); err != nil || b != gen.State(gen.BlockStainedGlass, 5) {
		t.Errorf("Block(meta) = %d, %v", b, err)
	}
	if b, err := p.Block("missing", 42); err != nil || b != 42 {
		t.Errorf("Block(missing) = %d, %v, want default 42", b, err)
	}
	if _, err := p.Block("bad", 0); err == nil {
		t.Error("Block(bad) should reject a number")
	}
	if _, err := p.Block("nope", 0); err == nil {
		t.Error("Block(nope) should reject an unknown block")
	}

	if f, err := p.Float("ratio", 0); err != nil || f != 0.5 {
		t.Errorf("Float(ratio) = %v, %v", f, err)
	}
	if f, err := p.Float("wide64", 0); err != nil || f != 7 {
		t.Errorf("Float(wide64) = %v, %v", f, err)
	}
	if _, err := p.Float("word", 0); err == nil {
		t.Error("Float(word) should reject a string")
	}

	if n, err := p.Int("whole", 0); err != nil || n != 3 {
		t.Errorf("Int(whole) = %d, %v", n, err)
	}
	if _, err := p.Int("ratio", 0); err == nil {
		t.Error("Int(ratio) should reject a fraction")
	}
	if n, err := p.Int("missing", 9); err != nil || n != 9 {
		t.Errorf("Int(missing) = %d, %v, want default 9", n, err)
	}
}

func TestBasicPaintsRoles(t *testing.T) {
	w := newStoneWorld()
	s := mustStyle(t, "basic", Params{"floor": "grass", "ceiling": "glowstone", "wall": "cobblestone"})
	carve(t, w, s)

	tests := []struct {
		name string
		pos  gen.BlockPos
		want uint16
	}{
		{"centre", gen.BlockPos{X: 8, Y: 40, Z: 8}, gen.State(gen.BlockAir, 0)},
		{"floor", gen.BlockPos{X: 9, Y: 38, Z: 8}, gen.State(gen.BlockGrass, 0)},
		{"ceiling", gen.BlockPos{X: 9, Y: 42, Z: 8}, gen.State(gen.BlockGlowstone, 0)},
		{"wall wins", gen.BlockPos{X: 12, Y: 40, Z: 8}, gen.State(gen.BlockCobblestone, 0)},
		{"outside", gen.BlockPos{X: 13, Y: 40, Z: 8}, gen.State(gen.BlockStone, 0)},
	}
	for _, tt := range tests {
		if got := w.Block(tt.pos); got != tt.want {
			t.Errorf("%s %v = %d, want %d", tt.name, tt.pos, got, tt.want)
		}
	}
}

func TestBasicKeepsBedrockAndSky(t *testing.T) {
	w := newStoneWorld()
	w.skyY = 42
	bedrock := gen.State(gen.BlockBedrock, 0)
	w.SetBlock(gen.BlockPos{X: 8, Y: 40, Z: 8}, bedrock)
	carve(t, w, mustStyle(t, "basic", nil))

	if got := w.Block(gen.BlockPos{X: 8, Y: 40, Z: 8}); got != bedrock {
		t.Errorf("bedrock replaced with %d", got)
	}
	if got := w.Block(gen.BlockPos{X: 9, Y: 42, Z: 8}); got != gen.State(gen.BlockStone, 0) {
		t.Errorf("sky-exposed voxel changed to %d", got)
	}
	if got := w.Block(gen.BlockPos{X: 8, Y: 41, Z: 8}); got != gen.State(gen.BlockAir, 0) {
		t.Errorf("covered voxel = %d, want air", got)
	}
}

func TestCrystalGrowsSpikes(t *testing.T) {
	w := newStoneWorld()
	s := mustStyle(t, "crystal", Params{
		"spike_chance":   1.0,
		"cluster_chance": 0,
		"light_chance":   0,
		"max_spike":      3,
	})
	carve(t, w, s)

	if got := gen.StateID(w.Block(gen.BlockPos{X: 9, Y: 42, Z: 8})); got != gen.BlockStone {
		t.Errorf("ceiling shell = block %d, want stone", got)
	}
	if got := gen.StateID(w.Block(gen.BlockPos{X: 9, Y: 41, Z: 8})); got != gen.BlockStainedGlass {
		t.Errorf("below ceiling = block %d, want stained glass spike", got)
	}
	for pos, state := range w.blocks {
		if gen.StateID(state) == gen.BlockGlowstone {
			t.Errorf("light at %v with light_chance 0", pos)
		}
	}
	if s.CanSpawn(gen.BiomeOcean) || !s.CanSpawn(gen.BiomeForest) {
		t.Error("crystal biome filter wrong")
	}
}

func TestLavaPool(t *testing.T) {
	w := newStoneWorld()
	s := mustStyle(t, "lava", Params{"depth": 0.35})
	carve(t, w, s)

	// bottom 37, seven layers tall: lava below y=39
	tests := []struct {
		name string
		pos  gen.BlockPos
		want uint16
	}{
		{"pool", gen.BlockPos{X: 8, Y: 38, Z: 8}, gen.BlockLava},
		{"surface", gen.BlockPos{X: 8, Y: 39, Z: 8}, gen.BlockAir},
		{"air", gen.BlockPos{X: 8, Y: 41, Z: 8}, gen.BlockAir},
		{"crust", gen.BlockPos{X: 9, Y: 38, Z: 8}, gen.BlockObsidian},
	}
	for _, tt := range tests {
		if got := gen.StateID(w.Block(tt.pos)); got != tt.want {
			t.Errorf("%s %v = block %d, want %d", tt.name, tt.pos, got, tt.want)
		}
	}
	for _, b := range []gen.Biome{gen.BiomeOcean, gen.BiomeTundra, gen.BiomeSnowyTaiga} {
		if s.CanSpawn(b) {
			t.Errorf("lava CanSpawn(%s) = true", b)
		}
	}
	if !s.CanSpawn(gen.BiomeDesert) {
		t.Error("lava CanSpawn(desert) = false")
	}
}

func TestLavaWallsDeterministic(t *testing.T) {
	a, b := newStoneWorld(), newStoneWorld()
	carve(t, a, mustStyle(t, "lava", nil))
	carve(t, b, mustStyle(t, "lava", nil))
	if len(a.blocks) != len(b.blocks) {
		t.Fatalf("touched %d then %d blocks", len(a.blocks), len(b.blocks))
	}
	for pos, s := range a.blocks {
		if b.blocks[pos] != s {
			t.Errorf("%v = %d then %d", pos, s, b.blocks[pos])
		}
	}
}
