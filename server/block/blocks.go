// Package block registers the built-in block states used by the stock
// terrain generator and populators, and exposes their runtime IDs. Plugins
// register additional states on Registry before Finalise is called.
package block

import (
	"strconv"

	datablock "github.com/cubeworks/genesis/server/data/block"
	"github.com/cubeworks/genesis/server/world"
)

// Registry is the process-wide block state registry. It is populated during
// startup and plugin load and finalised before world generation begins.
var Registry = world.NewBlockRegistry()

// Runtime IDs of the built-in block states. These are stable for a given
// registration order but must not be persisted raw; persisted formats store
// state names.
var (
	Air     = world.Air
	Bedrock = Registry.MustRegister("genesis:bedrock")
	Stone   = Registry.MustRegister("genesis:stone")
	Dirt    = Registry.MustRegister("genesis:dirt")
	Grass   = Registry.MustRegister("genesis:grass")
	Sand    = Registry.MustRegister("genesis:sand")
	Gravel  = Registry.MustRegister("genesis:gravel")
	Water   = Registry.MustRegister("genesis:water")

	TallGrass = Registry.MustRegister("genesis:tall_grass")

	OakLog       = Registry.MustRegister("genesis:oak_log")
	OakLeaves    = Registry.MustRegister("genesis:oak_leaves")
	BirchLog     = Registry.MustRegister("genesis:birch_log")
	BirchLeaves  = Registry.MustRegister("genesis:birch_leaves")
	SpruceLog    = Registry.MustRegister("genesis:spruce_log")
	SpruceLeaves = Registry.MustRegister("genesis:spruce_leaves")

	CoalOre    = Registry.MustRegister("genesis:coal_ore")
	IronOre    = Registry.MustRegister("genesis:iron_ore")
	GoldOre    = Registry.MustRegister("genesis:gold_ore")
	LapisOre   = Registry.MustRegister("genesis:lapis_ore")
	DiamondOre = Registry.MustRegister("genesis:diamond_ore")
)

// snowLayers holds the runtime IDs of the snow layer states, one per layer
// count in [1, datablock.MaxLayers].
var snowLayers [datablock.MaxLayers]uint32

func init() {
	for i := range snowLayers {
		snowLayers[i] = Registry.MustRegister(
			"genesis:snow_layer[layer=" + strconv.Itoa(i+1) + "]")
	}
}

// SnowLayer returns the runtime ID of a snow layer block with the layer count
// passed. The count is validated through the layered attribute data, so
// counts outside of [1, datablock.MaxLayers] fail with an error wrapping
// value.ErrOutOfRange.
func SnowLayer(layers int) (uint32, error) {
	if _, err := datablock.NewLayeredData(layers); err != nil {
		return 0, err
	}
	return snowLayers[layers-1], nil
}

// SnowLayerCount returns the layer attribute data of the snow layer state
// with the runtime ID passed, and reports whether the ID is a snow layer at
// all.
func SnowLayerCount(rid uint32) (datablock.ImmutableLayeredData, bool) {
	for i, layer := range snowLayers {
		if layer == rid {
			d, err := datablock.NewLayeredData(i + 1)
			if err != nil {
				panic(err)
			}
			return d.Immutable(), true
		}
	}
	return datablock.ImmutableLayeredData{}, false
}

// Solid reports if the runtime ID passed is a full solid block for the
// purposes of surface scans during generation.
func Solid(rid uint32) bool {
	switch rid {
	case Air, Water, TallGrass:
		return false
	}
	if _, ok := SnowLayerCount(rid); ok {
		return false
	}
	return true
}
