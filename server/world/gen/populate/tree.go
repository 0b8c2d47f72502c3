package populate

import (
	"fmt"

	"github.com/cubeworks/genesis/server/block"
	"github.com/cubeworks/genesis/server/block/cube"
	"github.com/cubeworks/genesis/server/world/chunk"
	"github.com/cubeworks/genesis/server/world/gen"
	"github.com/cubeworks/genesis/server/world/gen/rand"
)

// TypeTree groups populators that grow trees.
var TypeTree = gen.MustRegisterType("genesis:tree")

// Tree kinds accepted by TreeConfig.
const (
	KindOak    = "oak"
	KindBirch  = "birch"
	KindSpruce = "spruce"
)

// TreeConfig configures the Tree populator.
type TreeConfig struct {
	// BaseAmount is the base amount of trees attempted per chunk. Up to one
	// extra tree is attempted at random.
	BaseAmount int
	// Kind selects the tree shape grown: KindOak, KindBirch or KindSpruce.
	Kind string
}

// Validate checks the amount and tree kind.
func (c TreeConfig) Validate() error {
	if c.BaseAmount < 0 {
		return fmt.Errorf("base amount must not be negative, got %d", c.BaseAmount)
	}
	switch c.Kind {
	case KindOak, KindBirch, KindSpruce:
		return nil
	}
	return fmt.Errorf("unknown tree kind %q", c.Kind)
}

// Tree grows trees on grass and dirt. Canopies crossing the chunk border are
// clipped at it.
type Tree struct{}

// Type returns TypeTree.
func (Tree) Type() *gen.Type {
	return TypeTree
}

// Populate grows the configured amount of trees at random columns.
func (Tree) Populate(_ gen.ProtoWorld, c *chunk.Chunk, r *rand.Random, conf gen.Config) error {
	cfg, err := gen.Conf[TreeConfig](conf)
	if err != nil {
		return err
	}
	b := c.Bounds()
	amount := int(r.Int31n(2)) + cfg.BaseAmount
	for i := 0; i < amount; i++ {
		x := int(r.Range(int32(b.Min[0]), int32(b.Max[0])))
		z := int(r.Range(int32(b.Min[2]), int32(b.Max[2])))
		y, ok := ground(c, x, z)
		if !ok {
			continue
		}
		var err error
		switch cfg.Kind {
		case KindSpruce:
			err = growSpruce(c, cube.Pos{x, y, z}, r)
		case KindBirch:
			err = growBroadleaf(c, cube.Pos{x, y, z}, r, block.BirchLog, block.BirchLeaves, 5)
		default:
			err = growBroadleaf(c, cube.Pos{x, y, z}, r, block.OakLog, block.OakLeaves, 4)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ground returns the Y directly above the topmost grass or dirt block of the
// column, stopping at the first non-air block from the top.
func ground(c *chunk.Chunk, x, z int) (int, bool) {
	b := c.Bounds()
	for y := b.Max[1]; y >= b.Min[1]; y-- {
		rid, ok := blockAt(c, cube.Pos{x, y - 1, z})
		if !ok {
			return 0, false
		}
		if rid == block.Grass || rid == block.Dirt {
			return y, true
		}
		if rid != block.Air {
			return 0, false
		}
	}
	return 0, false
}

// growBroadleaf grows an oak or birch shaped tree: a straight trunk with a
// two-layer leaf blob around the top.
func growBroadleaf(c *chunk.Chunk, pos cube.Pos, r *rand.Random, logRID, leavesRID uint32, baseHeight int) error {
	height := baseHeight + int(r.Int31n(3))

	for yy := pos[1] + height - 2; yy <= pos[1]+height+1; yy++ {
		radius := 2
		if yy >= pos[1]+height {
			radius = 1
		}
		for xx := pos[0] - radius; xx <= pos[0]+radius; xx++ {
			for zz := pos[2] - radius; zz <= pos[2]+radius; zz++ {
				xOff, zOff := abs(xx-pos[0]), abs(zz-pos[2])
				if xOff == radius && zOff == radius && r.Int31n(2) == 0 {
					continue
				}
				if err := placeLeaves(c, cube.Pos{xx, yy, zz}, leavesRID); err != nil {
					return err
				}
			}
		}
	}
	return trunk(c, pos, logRID, height)
}

// growSpruce grows a spruce shaped tree: a tall trunk with conical leaf
// rings.
func growSpruce(c *chunk.Chunk, pos cube.Pos, r *rand.Random) error {
	height := int(r.Int31n(4)) + 6
	topSize := height - int(1+r.Int31n(2))
	radius := int(r.Int31n(2))
	minR, maxR := 0, 1+int(r.Int31n(2))

	for y := 0; y <= topSize; y++ {
		yy := pos[1] + height - y
		for xx := pos[0] - radius; xx <= pos[0]+radius; xx++ {
			for zz := pos[2] - radius; zz <= pos[2]+radius; zz++ {
				xOff, zOff := abs(xx-pos[0]), abs(zz-pos[2])
				if xOff == radius && zOff == radius && radius > 0 {
					continue
				}
				if err := placeLeaves(c, cube.Pos{xx, yy, zz}, block.SpruceLeaves); err != nil {
					return err
				}
			}
		}
		if radius >= maxR {
			radius = minR
			minR = 1
			if maxR < topSize-y {
				maxR++
			}
		} else {
			radius++
		}
	}
	return trunk(c, pos, block.SpruceLog, height-int(r.Int31n(3)))
}

// trunk places a straight trunk of logs, overwriting only air and leaves.
func trunk(c *chunk.Chunk, pos cube.Pos, logRID uint32, height int) error {
	for y := 0; y < height; y++ {
		p := cube.Pos{pos[0], pos[1] + y, pos[2]}
		if rid, ok := blockAt(c, p); !ok || overridable(rid) {
			if err := setClipped(c, p, logRID); err != nil {
				return err
			}
		}
	}
	return nil
}

// placeLeaves places a leaves block if the position currently holds air.
func placeLeaves(c *chunk.Chunk, pos cube.Pos, leavesRID uint32) error {
	if rid, ok := blockAt(c, pos); ok && rid == block.Air {
		return c.Set(pos, leavesRID)
	}
	return nil
}

// overridable reports if a tree trunk may replace the runtime ID passed.
func overridable(rid uint32) bool {
	switch rid {
	case block.Air, block.OakLeaves, block.BirchLeaves, block.SpruceLeaves, block.TallGrass:
		return true
	}
	return false
}
