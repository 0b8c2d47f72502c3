package biome

import (
	"github.com/cubeworks/genesis/server/world/gen"
	"github.com/cubeworks/genesis/server/world/gen/populate"
)

type IcePlains struct {
	grassy
}

func (IcePlains) Populators() []gen.Staged {
	return []gen.Staged{
		{Populator: populate.SnowCover{}, Config: populate.SnowConfig{Biomes: []uint8{IDIcePlains}, MaxLayers: 4}},
	}
}

func (IcePlains) ID() uint8 {
	return IDIcePlains
}

func (IcePlains) Elevation() (min, max int) {
	return 63, 74
}

func (IcePlains) Temperature() float64 {
	return 0.05
}

func (IcePlains) Rainfall() float64 {
	return 0.8
}
