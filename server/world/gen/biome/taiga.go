package biome

import (
	"github.com/cubeworks/genesis/server/world/gen"
	"github.com/cubeworks/genesis/server/world/gen/populate"
)

type Taiga struct {
	grassy
}

func (Taiga) Populators() []gen.Staged {
	return []gen.Staged{
		{Populator: populate.Tree{}, Config: populate.TreeConfig{Kind: populate.KindSpruce, BaseAmount: 10}},
		{Populator: populate.TallGrass{}, Config: populate.TallGrassConfig{Amount: 1}},
		{Populator: populate.SnowCover{}, Config: populate.SnowConfig{Biomes: []uint8{IDTaiga}, MaxLayers: 2}},
	}
}

func (Taiga) ID() uint8 {
	return IDTaiga
}

func (Taiga) Elevation() (min, max int) {
	return 63, 81
}

func (Taiga) Temperature() float64 {
	return 0.05
}

func (Taiga) Rainfall() float64 {
	return 0.8
}
