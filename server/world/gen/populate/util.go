// Package populate holds the built-in populators: ores, tall grass, trees and
// snow cover. All of them confine their edits to the chunk they are invoked
// for; features that would cross the chunk border are clipped at it.
package populate

import (
	"errors"

	"github.com/cubeworks/genesis/server/block/cube"
	"github.com/cubeworks/genesis/server/world/chunk"
	"github.com/cubeworks/genesis/server/world/volume"
)

// setClipped sets a block, treating positions outside of the chunk as a
// no-op. Populators clip features at the chunk border rather than reaching
// into neighbours.
func setClipped(c *chunk.Chunk, pos cube.Pos, rid uint32) error {
	err := c.Set(pos, rid)
	if errors.Is(err, volume.ErrOutOfBounds) {
		return nil
	}
	return err
}

// blockAt reads a block, reporting false for positions outside of the chunk.
func blockAt(c *chunk.Chunk, pos cube.Pos) (uint32, bool) {
	rid, err := c.At(pos)
	return rid, err == nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
