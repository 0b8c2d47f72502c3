package overworld

import (
	"github.com/cubeworks/genesis/server/world/gen/biome"
	"github.com/cubeworks/genesis/server/world/gen/noise"
	"github.com/cubeworks/genesis/server/world/gen/rand"
)

// biomeSelector maps a temperature and rainfall noise pair to a biome. The
// mapping is precomputed into a 64x64 lookup table so column selection costs
// two noise samples and an index.
type biomeSelector struct {
	temperature *noise.Simplex
	rainfall    *noise.Simplex
	table       [64][64]biome.Biome
}

func newBiomeSelector(r *rand.Random) *biomeSelector {
	s := &biomeSelector{
		temperature: noise.NewSimplex(r, 2, 1.0/8, 1.0/512),
		rainfall:    noise.NewSimplex(r, 2, 1.0/8, 1.0/512),
	}
	for t := 0; t < 64; t++ {
		for rn := 0; rn < 64; rn++ {
			s.table[t][rn] = lookup(float64(t)/63, float64(rn)/63)
		}
	}
	return s
}

// pick returns the biome at the column passed, in world column coordinates.
func (s *biomeSelector) pick(x, z int64) biome.Biome {
	fx, fz := float64(x), float64(z)
	temp := (s.temperature.Noise2D(fx, fz) + 1) / 2
	rain := (s.rainfall.Noise2D(fx, fz) + 1) / 2
	return s.table[clamp63(temp)][clamp63(rain)]
}

func clamp63(v float64) int {
	i := int(v * 63)
	if i < 0 {
		return 0
	}
	if i > 63 {
		return 63
	}
	return i
}

func lookup(temperature, rainfall float64) biome.Biome {
	var id uint8
	switch {
	case rainfall < 0.25:
		switch {
		case temperature < 0.7:
			id = biome.IDOcean
		default:
			id = biome.IDRiver
		}
	case rainfall < 0.60:
		switch {
		case temperature < 0.25:
			id = biome.IDIcePlains
		case temperature < 0.75:
			id = biome.IDPlains
		default:
			id = biome.IDDesert
		}
	case rainfall < 0.80:
		switch {
		case temperature < 0.25:
			id = biome.IDTaiga
		case temperature < 0.75:
			id = biome.IDForest
		default:
			id = biome.IDBirchForest
		}
	default:
		switch {
		case temperature < 0.20:
			id = biome.IDMountains
		case temperature < 0.40:
			id = biome.IDSmallMountains
		default:
			id = biome.IDRiver
		}
	}
	b, ok := biome.ByID(id)
	if !ok {
		b, _ = biome.ByID(biome.IDPlains)
	}
	return b
}
