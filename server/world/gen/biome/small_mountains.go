package biome

import "github.com/cubeworks/genesis/server/world/gen"

type SmallMountains struct {
	grassy
}

func (SmallMountains) Populators() []gen.Staged {
	return nil
}

func (SmallMountains) ID() uint8 {
	return IDSmallMountains
}

func (SmallMountains) Elevation() (min, max int) {
	return 63, 97
}

func (SmallMountains) Temperature() float64 {
	return 0.4
}

func (SmallMountains) Rainfall() float64 {
	return 0.5
}
