// Package chunk implements the in-progress chunk column passed to world
// generation. A chunk is addressed in world coordinates so that sub-volumes
// taken from neighbouring chunks align naturally when handed to a volume
// worker.
package chunk

import (
	"iter"

	"github.com/cubeworks/genesis/server/block/cube"
	"github.com/cubeworks/genesis/server/world/volume"
)

// Width is the horizontal extent of a chunk column on both the X and Z axis.
const Width = 16

// Chunk is a single 16x16 chunk column under construction during world
// generation. Block cells hold block runtime IDs; the biome of each column is
// held in a separate two-dimensional volume. A Chunk is exclusively owned by
// the generation task working on it and is not safe for concurrent use.
type Chunk struct {
	blocks *volume.Grid[uint32]
	biomes *volume.Grid[uint8]
}

// New creates an empty chunk column at the chunk coordinates passed, spanning
// the vertical range r. All blocks are initialised to runtime ID 0 (air).
func New(cx, cz int32, r cube.Range) *Chunk {
	min := cube.Pos{int(cx) * Width, r.Min(), int(cz) * Width}
	max := cube.Pos{int(cx)*Width + Width - 1, r.Max(), int(cz)*Width + Width - 1}

	blocks, err := volume.NewGrid[uint32](cube.Box{Min: min, Max: max})
	if err != nil {
		// The box above is well-formed for any valid cube.Range.
		panic(err)
	}
	biomes, err := volume.NewGrid[uint8](cube.Box{
		Min: cube.Pos{min[0], 0, min[2]},
		Max: cube.Pos{max[0], 0, max[2]},
	})
	if err != nil {
		panic(err)
	}
	return &Chunk{blocks: blocks, biomes: biomes}
}

// Bounds returns the world-space bounding box of the chunk's blocks.
func (c *Chunk) Bounds() cube.Box {
	return c.blocks.Bounds()
}

// At returns the block runtime ID at the world position passed.
func (c *Chunk) At(pos cube.Pos) (uint32, error) {
	return c.blocks.At(pos)
}

// Set sets the block runtime ID at the world position passed. Positions
// outside of the chunk fail with volume.ErrOutOfBounds.
func (c *Chunk) Set(pos cube.Pos, rid uint32) error {
	return c.blocks.Set(pos, rid)
}

// Coordinates enumerates the chunk's block coordinates, satisfying the
// workable volume capability.
func (c *Chunk) Coordinates() iter.Seq[cube.Pos] {
	return c.blocks.Coordinates()
}

// Blocks returns the chunk's block volume.
func (c *Chunk) Blocks() *volume.Grid[uint32] {
	return c.blocks
}

// Biomes returns the chunk's biome volume: a flat volume spanning the chunk's
// horizontal footprint at Y 0, one biome ID per block column.
func (c *Chunk) Biomes() *volume.Grid[uint8] {
	return c.biomes
}

// Biome returns the biome ID of the column at the world X and Z passed.
func (c *Chunk) Biome(x, z int) (uint8, error) {
	return c.biomes.At(cube.Pos{x, 0, z})
}

// SetBiome sets the biome ID of the column at the world X and Z passed.
func (c *Chunk) SetBiome(x, z int, biome uint8) error {
	return c.biomes.Set(cube.Pos{x, 0, z}, biome)
}

// Sub returns a mutable block sub-volume of the chunk spanning the box
// passed, for use as a worker primary or target.
func (c *Chunk) Sub(box cube.Box) (*volume.SubGrid[uint32], error) {
	return c.blocks.Sub(box)
}

// HighestBlock scans the column at the world X and Z passed from the top down
// and returns the Y of the first block for which matches returns true. The
// second return value is false if no block matches.
func (c *Chunk) HighestBlock(x, z int, matches func(rid uint32) bool) (int, bool) {
	b := c.blocks.Bounds()
	for y := b.Max[1]; y >= b.Min[1]; y-- {
		rid, err := c.blocks.At(cube.Pos{x, y, z})
		if err != nil {
			return 0, false
		}
		if matches(rid) {
			return y, true
		}
	}
	return 0, false
}
