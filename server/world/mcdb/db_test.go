package mcdb

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/cubeworks/genesis/server/block/cube"
	"github.com/cubeworks/genesis/server/world"
	"github.com/cubeworks/genesis/server/world/chunk"
)

func TestColumnRoundTrip(t *testing.T) {
	t.Parallel()

	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	pos := world.ChunkPos{5, -11}
	c := chunk.New(pos[0], pos[1], cube.Range{0, 63})
	b := c.Bounds()
	if err := c.Set(cube.Pos{b.Min[0] + 3, 17, b.Min[2] + 9}, 42); err != nil {
		t.Fatalf("set block: %v", err)
	}
	if err := c.SetBiome(b.Min[0]+3, b.Min[2]+9, 7); err != nil {
		t.Fatalf("set biome: %v", err)
	}

	if err := db.StoreColumn(pos, c); err != nil {
		t.Fatalf("store column: %v", err)
	}
	loaded, err := db.LoadColumn(pos)
	if err != nil {
		t.Fatalf("load column: %v", err)
	}

	if loaded.Bounds() != b {
		t.Fatalf("loaded bounds %v, stored %v", loaded.Bounds(), b)
	}
	for p := range c.Coordinates() {
		want, _ := c.At(p)
		got, err := loaded.At(p)
		if err != nil {
			t.Fatalf("read %v: %v", p, err)
		}
		if got != want {
			t.Fatalf("block at %v: got %v, want %v", p, got, want)
		}
	}
	id, err := loaded.Biome(b.Min[0]+3, b.Min[2]+9)
	if err != nil {
		t.Fatalf("read biome: %v", err)
	}
	if id != 7 {
		t.Fatalf("biome: got %v, want 7", id)
	}
}

func TestLoadColumnNotFound(t *testing.T) {
	t.Parallel()

	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if _, err := db.LoadColumn(world.ChunkPos{1, 1}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreOverwrites(t *testing.T) {
	t.Parallel()

	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	pos := world.ChunkPos{0, 0}
	c := chunk.New(pos[0], pos[1], cube.Range{0, 15})
	if err := db.StoreColumn(pos, c); err != nil {
		t.Fatalf("store column: %v", err)
	}
	b := c.Bounds()
	if err := c.Set(b.Min, 9); err != nil {
		t.Fatalf("set block: %v", err)
	}
	if err := db.StoreColumn(pos, c); err != nil {
		t.Fatalf("store column again: %v", err)
	}

	loaded, err := db.LoadColumn(pos)
	if err != nil {
		t.Fatalf("load column: %v", err)
	}
	if rid, _ := loaded.At(b.Min); rid != 9 {
		t.Fatalf("block at min: got %v, want 9", rid)
	}
}

func TestDecodeColumnRejectsCorruptRange(t *testing.T) {
	t.Parallel()

	// Version byte followed by an inverted range: min 1, max 0.
	inverted := make([]byte, 9)
	inverted[0] = chunkVersion
	binary.LittleEndian.PutUint32(inverted[1:], 1)
	binary.LittleEndian.PutUint32(inverted[5:], 0)
	if _, err := decodeColumn(world.ChunkPos{0, 0}, inverted); err == nil {
		t.Fatalf("expected error for inverted column range")
	}

	// A well-formed but absurdly tall range must not be allocated.
	huge := make([]byte, 9)
	huge[0] = chunkVersion
	binary.LittleEndian.PutUint32(huge[1:], 0)
	binary.LittleEndian.PutUint32(huge[5:], 1<<30)
	if _, err := decodeColumn(world.ChunkPos{0, 0}, huge); err == nil {
		t.Fatalf("expected error for oversized column range")
	}
}
