package overworld

import (
	"path/filepath"
	"testing"

	"github.com/cubeworks/genesis/server/block"
	"github.com/cubeworks/genesis/server/block/cube"
	"github.com/cubeworks/genesis/server/world"
	"github.com/cubeworks/genesis/server/world/chunk"
	"github.com/cubeworks/genesis/server/world/gen/biome"
)

func generate(t *testing.T, seed int64, pos world.ChunkPos) *chunk.Chunk {
	t.Helper()
	g, err := New(seed, DefaultSettings())
	if err != nil {
		t.Fatalf("create generator: %v", err)
	}
	c := chunk.New(pos[0], pos[1], cube.Range{0, 127})
	g.GenerateChunk(pos, c)
	return c
}

func TestGeneratorDeterminism(t *testing.T) {
	t.Parallel()

	pos := world.ChunkPos{3, -2}
	a := generate(t, 42, pos)
	b := generate(t, 42, pos)

	for p := range a.Coordinates() {
		av, err := a.At(p)
		if err != nil {
			t.Fatalf("read %v: %v", p, err)
		}
		bv, err := b.At(p)
		if err != nil {
			t.Fatalf("read %v: %v", p, err)
		}
		if av != bv {
			t.Fatalf("block at %v differs between runs: %v != %v", p, av, bv)
		}
	}
}

func TestGeneratorTerrainShape(t *testing.T) {
	t.Parallel()

	c := generate(t, 7, world.ChunkPos{0, 0})
	b := c.Bounds()

	for x := b.Min[0]; x <= b.Max[0]; x++ {
		for z := b.Min[2]; z <= b.Max[2]; z++ {
			rid, err := c.At(cube.Pos{x, b.Min[1], z})
			if err != nil {
				t.Fatalf("read bottom of column %v,%v: %v", x, z, err)
			}
			if rid != block.Bedrock {
				t.Fatalf("column %v,%v: bottom block is %v, not bedrock", x, z, rid)
			}
			if _, ok := c.HighestBlock(x, z, func(rid uint32) bool { return rid != block.Air }); !ok {
				t.Fatalf("column %v,%v is entirely air", x, z)
			}
		}
	}
}

func TestGeneratorBiomesValid(t *testing.T) {
	t.Parallel()

	c := generate(t, 19, world.ChunkPos{-4, 9})
	b := c.Bounds()

	for x := b.Min[0]; x <= b.Max[0]; x++ {
		for z := b.Min[2]; z <= b.Max[2]; z++ {
			id, err := c.Biome(x, z)
			if err != nil {
				t.Fatalf("read biome %v,%v: %v", x, z, err)
			}
			if _, ok := biome.ByID(id); !ok {
				t.Fatalf("column %v,%v carries unregistered biome %v", x, z, id)
			}
		}
	}
}

func TestGeneratorPopulatorsStartWithOres(t *testing.T) {
	t.Parallel()

	g, err := New(1, DefaultSettings())
	if err != nil {
		t.Fatalf("create generator: %v", err)
	}
	c := chunk.New(0, 0, cube.Range{0, 127})
	g.GenerateChunk(world.ChunkPos{0, 0}, c)

	staged := g.Populators(c)
	if len(staged) == 0 {
		t.Fatalf("no populators staged")
	}
	if err := staged[0].Config.Validate(); err != nil {
		t.Fatalf("ore config invalid: %v", err)
	}
}

func TestSettingsUnknownOre(t *testing.T) {
	t.Parallel()

	s := DefaultSettings()
	s.Ores[0].Block = "genesis:unobtainium"
	if _, err := New(1, s); err == nil {
		t.Fatalf("expected error for unknown ore block")
	}
}

func TestLoadSettingsCreatesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "overworld.toml")
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if s.WaterHeight != 62 || len(s.Ores) == 0 {
		t.Fatalf("defaults not applied: %+v", s)
	}

	again, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("reload settings: %v", err)
	}
	if again.WaterHeight != s.WaterHeight || len(again.Ores) != len(s.Ores) {
		t.Fatalf("settings changed across reload: %+v != %+v", again, s)
	}
}

func TestGeneratorOddHeightRange(t *testing.T) {
	t.Parallel()

	g, err := New(11, DefaultSettings())
	if err != nil {
		t.Fatalf("create generator: %v", err)
	}
	// Height 100 is not a multiple of the vertical sampling step.
	pos := world.ChunkPos{2, 5}
	c := chunk.New(pos[0], pos[1], cube.Range{0, 99})
	g.GenerateChunk(pos, c)

	b := c.Bounds()
	for x := b.Min[0]; x <= b.Max[0]; x++ {
		for z := b.Min[2]; z <= b.Max[2]; z++ {
			rid, err := c.At(cube.Pos{x, b.Min[1], z})
			if err != nil {
				t.Fatalf("read bottom of column %v,%v: %v", x, z, err)
			}
			if rid != block.Bedrock {
				t.Fatalf("column %v,%v: bottom block is %v, not bedrock", x, z, rid)
			}
		}
	}

	again := chunk.New(pos[0], pos[1], cube.Range{0, 99})
	g.GenerateChunk(pos, again)
	for p := range c.Coordinates() {
		av, _ := c.At(p)
		bv, _ := again.At(p)
		if av != bv {
			t.Fatalf("block at %v differs between runs: %v != %v", p, av, bv)
		}
	}
}
