package biome

import (
	"github.com/cubeworks/genesis/server/world/gen"
	"github.com/cubeworks/genesis/server/world/gen/populate"
)

type Forest struct {
	grassy
}

func (Forest) Populators() []gen.Staged {
	return []gen.Staged{
		{Populator: populate.Tree{}, Config: populate.TreeConfig{Kind: populate.KindOak, BaseAmount: 5}},
		{Populator: populate.TallGrass{}, Config: populate.TallGrassConfig{Amount: 3}},
	}
}

func (Forest) ID() uint8 {
	return IDForest
}

func (Forest) Elevation() (min, max int) {
	return 63, 81
}

func (Forest) Temperature() float64 {
	return 0.7
}

func (Forest) Rainfall() float64 {
	return 0.8
}
