package biome

import "github.com/cubeworks/genesis/server/world/gen"

type Mountains struct {
	grassy
}

func (Mountains) Populators() []gen.Staged {
	return nil
}

func (Mountains) ID() uint8 {
	return IDMountains
}

func (Mountains) Elevation() (min, max int) {
	return 63, 127
}

func (Mountains) Temperature() float64 {
	return 0.4
}

func (Mountains) Rainfall() float64 {
	return 0.5
}
