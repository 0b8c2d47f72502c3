package populate

import (
	"fmt"
	"slices"

	"github.com/cubeworks/genesis/server/block"
	"github.com/cubeworks/genesis/server/block/cube"
	datablock "github.com/cubeworks/genesis/server/data/block"
	"github.com/cubeworks/genesis/server/world/chunk"
	"github.com/cubeworks/genesis/server/world/gen"
	"github.com/cubeworks/genesis/server/world/gen/rand"
)

// TypeSnowCover groups populators that place snow on cold terrain.
var TypeSnowCover = gen.MustRegisterType("genesis:snow_cover")

// SnowConfig configures the SnowCover populator.
type SnowConfig struct {
	// Biomes lists the biome IDs whose columns receive snow cover. An empty
	// list covers every column of the chunk.
	Biomes []uint8
	// MaxLayers caps the randomised layer count of placed snow, within
	// [1, datablock.MaxLayers].
	MaxLayers int
}

// Validate checks the layer cap against the layered data range.
func (c SnowConfig) Validate() error {
	if c.MaxLayers < 1 || c.MaxLayers > datablock.MaxLayers {
		return fmt.Errorf("max layers must be in [1, %d], got %d", datablock.MaxLayers, c.MaxLayers)
	}
	return nil
}

// SnowCover tops the surface of cold biomes with snow layer blocks of a
// randomised layer count.
type SnowCover struct{}

// Type returns TypeSnowCover.
func (SnowCover) Type() *gen.Type {
	return TypeSnowCover
}

// Populate walks every column of the chunk's biome volume and places snow
// layers on exposed solid surfaces of the configured biomes.
func (SnowCover) Populate(_ gen.ProtoWorld, c *chunk.Chunk, r *rand.Random, conf gen.Config) error {
	cfg, err := gen.Conf[SnowConfig](conf)
	if err != nil {
		return err
	}
	for pos := range c.Biomes().Coordinates() {
		x, z := pos[0], pos[2]
		biome, err := c.Biome(x, z)
		if err != nil {
			return err
		}
		if len(cfg.Biomes) > 0 && !slices.Contains(cfg.Biomes, biome) {
			continue
		}
		y, ok := c.HighestBlock(x, z, block.Solid)
		if !ok {
			continue
		}
		top := cube.Pos{x, y + 1, z}
		rid, ok := blockAt(c, top)
		if !ok || rid != block.Air {
			continue
		}
		layers, err := datablock.NewLayeredData(int(r.Range(1, int32(cfg.MaxLayers))))
		if err != nil {
			return err
		}
		snow, err := block.SnowLayer(layers.Layer().Value())
		if err != nil {
			return err
		}
		if err := c.Set(top, snow); err != nil {
			return err
		}
	}
	return nil
}
