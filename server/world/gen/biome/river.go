package biome

import (
	"github.com/cubeworks/genesis/server/block"
	"github.com/cubeworks/genesis/server/world/gen"
)

type River struct{}

func (River) Populators() []gen.Staged {
	return nil
}

func (River) ID() uint8 {
	return IDRiver
}

func (River) Elevation() (min, max int) {
	return 58, 62
}

func (River) GroundCover() []uint32 {
	return []uint32{block.Dirt, block.Dirt, block.Dirt, block.Dirt, block.Dirt}
}

func (River) Temperature() float64 {
	return 0.5
}

func (River) Rainfall() float64 {
	return 0.7
}
