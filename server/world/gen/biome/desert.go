package biome

import "github.com/cubeworks/genesis/server/world/gen"

type Desert struct {
	sandy
}

func (Desert) Populators() []gen.Staged {
	return nil
}

func (Desert) ID() uint8 {
	return IDDesert
}

func (Desert) Elevation() (min, max int) {
	return 63, 74
}

func (Desert) Temperature() float64 {
	return 2.0
}

func (Desert) Rainfall() float64 {
	return 0.0
}
