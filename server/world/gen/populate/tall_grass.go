package populate

import (
	"fmt"

	"github.com/cubeworks/genesis/server/block"
	"github.com/cubeworks/genesis/server/block/cube"
	"github.com/cubeworks/genesis/server/world/chunk"
	"github.com/cubeworks/genesis/server/world/gen"
	"github.com/cubeworks/genesis/server/world/gen/rand"
)

// TypeTallGrass groups populators that scatter vegetation cover on grass
// blocks.
var TypeTallGrass = gen.MustRegisterType("genesis:tall_grass")

// TallGrassConfig configures the TallGrass populator.
type TallGrassConfig struct {
	// Amount is the base amount of placements attempted per chunk. Up to one
	// extra placement is attempted at random.
	Amount int
}

// Validate checks that the placement amount is not negative.
func (c TallGrassConfig) Validate() error {
	if c.Amount < 0 {
		return fmt.Errorf("amount must not be negative, got %d", c.Amount)
	}
	return nil
}

// TallGrass scatters tall grass on top of grass blocks exposed to air.
type TallGrass struct{}

// Type returns TypeTallGrass.
func (TallGrass) Type() *gen.Type {
	return TypeTallGrass
}

// Populate places tall grass at random columns of the chunk.
func (TallGrass) Populate(_ gen.ProtoWorld, c *chunk.Chunk, r *rand.Random, conf gen.Config) error {
	cfg, err := gen.Conf[TallGrassConfig](conf)
	if err != nil {
		return err
	}
	b := c.Bounds()
	amount := int(r.Int31n(2)) + cfg.Amount
	for i := 0; i < amount; i++ {
		x := int(r.Range(int32(b.Min[0]), int32(b.Max[0])))
		z := int(r.Range(int32(b.Min[2]), int32(b.Max[2])))
		y, ok := highestGrass(c, x, z)
		if !ok {
			continue
		}
		if err := setClipped(c, cube.Pos{x, y + 1, z}, block.TallGrass); err != nil {
			return err
		}
	}
	return nil
}

// highestGrass returns the Y of the topmost grass block in the column that
// has air directly above it.
func highestGrass(c *chunk.Chunk, x, z int) (int, bool) {
	b := c.Bounds()
	for y := b.Max[1] - 1; y >= b.Min[1]; y-- {
		rid, ok := blockAt(c, cube.Pos{x, y, z})
		if !ok {
			return 0, false
		}
		if rid != block.Grass {
			continue
		}
		if above, ok := blockAt(c, cube.Pos{x, y + 1, z}); ok && above == block.Air {
			return y, true
		}
		return 0, false
	}
	return 0, false
}
