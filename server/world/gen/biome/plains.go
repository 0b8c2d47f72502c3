package biome

import (
	"github.com/cubeworks/genesis/server/world/gen"
	"github.com/cubeworks/genesis/server/world/gen/populate"
)

type Plains struct {
	grassy
}

func (Plains) Populators() []gen.Staged {
	return []gen.Staged{
		{Populator: populate.TallGrass{}, Config: populate.TallGrassConfig{Amount: 12}},
	}
}

func (Plains) ID() uint8 {
	return IDPlains
}

func (Plains) Elevation() (min, max int) {
	return 63, 68
}

func (Plains) Temperature() float64 {
	return 0.8
}

func (Plains) Rainfall() float64 {
	return 0.4
}
