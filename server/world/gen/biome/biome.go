// Package biome defines the biomes the stock overworld generator selects
// from, with their climate parameters, ground cover and populator sequences.
package biome

import (
	"github.com/cubeworks/genesis/server/block"
	"github.com/cubeworks/genesis/server/world/gen"
)

// Biome IDs of the built-in biomes.
const (
	IDOcean          uint8 = 0
	IDPlains         uint8 = 1
	IDDesert         uint8 = 2
	IDMountains      uint8 = 3
	IDForest         uint8 = 4
	IDTaiga          uint8 = 5
	IDRiver          uint8 = 7
	IDIcePlains      uint8 = 12
	IDSmallMountains uint8 = 20
	IDBirchForest    uint8 = 27
)

// Biome describes a biome selected during terrain generation. Elevation
// bounds the terrain height, Temperature and Rainfall drive biome selection,
// GroundCover is applied on top of the stone surface and Populators is the
// population sequence run for chunks whose centre falls in the biome.
type Biome interface {
	ID() uint8
	Elevation() (min, max int)
	Temperature() float64
	Rainfall() float64
	GroundCover() []uint32
	Populators() []gen.Staged
}

// grassy is embedded by biomes covered with a grass block over dirt.
type grassy struct{}

func (grassy) GroundCover() []uint32 {
	return []uint32{block.Grass, block.Dirt, block.Dirt, block.Dirt}
}

// sandy is embedded by biomes covered with sand.
type sandy struct{}

func (sandy) GroundCover() []uint32 {
	return []uint32{block.Sand, block.Sand, block.Sand, block.Gravel}
}

// ByID returns the built-in biome registered under the ID passed.
func ByID(id uint8) (Biome, bool) {
	b, ok := byID[id]
	return b, ok
}

var byID = map[uint8]Biome{}

func register(b Biome) {
	if _, ok := byID[b.ID()]; ok {
		panic("duplicate biome ID")
	}
	byID[b.ID()] = b
}

func init() {
	for _, b := range []Biome{
		Ocean{}, Plains{}, Desert{}, Mountains{}, Forest{}, Taiga{},
		River{}, IcePlains{}, SmallMountains{}, BirchForest{},
	} {
		register(b)
	}
}
