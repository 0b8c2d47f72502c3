package biome

import (
	"github.com/cubeworks/genesis/server/world/gen"
	"github.com/cubeworks/genesis/server/world/gen/populate"
)

type BirchForest struct {
	grassy
}

func (BirchForest) Populators() []gen.Staged {
	return []gen.Staged{
		{Populator: populate.Tree{}, Config: populate.TreeConfig{Kind: populate.KindBirch, BaseAmount: 10}},
	}
}

func (BirchForest) ID() uint8 {
	return IDBirchForest
}

func (BirchForest) Elevation() (min, max int) {
	return 60, 70
}

func (BirchForest) Temperature() float64 {
	return 0.6
}

func (BirchForest) Rainfall() float64 {
	return 0.6
}
