package biome

import (
	"github.com/cubeworks/genesis/server/block"
	"github.com/cubeworks/genesis/server/world/gen"
)

type Ocean struct{}

func (Ocean) Populators() []gen.Staged {
	return nil
}

func (Ocean) ID() uint8 {
	return IDOcean
}

func (Ocean) Elevation() (min, max int) {
	return 46, 58
}

func (Ocean) GroundCover() []uint32 {
	return []uint32{block.Gravel, block.Gravel, block.Gravel, block.Gravel, block.Gravel}
}

func (Ocean) Temperature() float64 {
	return 0.5
}

func (Ocean) Rainfall() float64 {
	return 0.5
}
