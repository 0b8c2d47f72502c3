// Package overworld implements the stock overworld terrain generator: octave
// simplex terrain with biome driven elevation smoothing, ground cover and the
// standard population sequence of ores and biome features.
package overworld

import (
	"github.com/cubeworks/genesis/server/block"
	"github.com/cubeworks/genesis/server/block/cube"
	"github.com/cubeworks/genesis/server/world"
	"github.com/cubeworks/genesis/server/world/chunk"
	"github.com/cubeworks/genesis/server/world/gen"
	"github.com/cubeworks/genesis/server/world/gen/biome"
	"github.com/cubeworks/genesis/server/world/gen/noise"
	"github.com/cubeworks/genesis/server/world/gen/populate"
	"github.com/cubeworks/genesis/server/world/gen/rand"
	"github.com/cubeworks/genesis/server/world/volume"
)

// SmoothSize is the radius, in columns, over which biome elevation is
// smoothed with a gaussian kernel.
const SmoothSize = 2

// yStep is the vertical noise sampling interval of the terrain stage.
const yStep = 8

var gaussianKernel = [5][5]float64{
	{1.4715177646858, 2.141045714076, 2.4261226388505, 2.141045714076, 1.4715177646858},
	{2.141045714076, 3.1152031322856, 3.5299876103384, 3.1152031322856, 2.141045714076},
	{2.4261226388505, 3.5299876103384, 4, 3.5299876103384, 2.4261226388505},
	{2.141045714076, 3.1152031322856, 3.5299876103384, 3.1152031322856, 2.141045714076},
	{1.4715177646858, 2.141045714076, 2.4261226388505, 2.141045714076, 1.4715177646858},
}

// Generator generates overworld terrain. It satisfies world.Generator. A
// Generator is safe for concurrent use by multiple chunk tasks: generation
// state is either immutable after construction or local to a single call.
type Generator struct {
	seed     int64
	settings Settings

	noise    *noise.Simplex
	selector *biomeSelector

	ores populate.OreConfig
}

// New creates an overworld Generator from the seed and settings passed. The
// block registry must hold all blocks referenced by the settings' ore table.
func New(seed int64, settings Settings) (*Generator, error) {
	settings = settings.withDefaults()
	ores, err := settings.oreConfig()
	if err != nil {
		return nil, err
	}

	r := rand.NewRandom(seed)
	n := noise.NewSimplex(r, 4, 1.0/4, 1.0/32)
	r.SetSeed(seed)

	return &Generator{
		seed:     seed,
		settings: settings,
		noise:    n,
		selector: newBiomeSelector(r),
		ores:     ores,
	}, nil
}

// GenerateChunk generates the terrain and biome map of the chunk passed.
func (g *Generator) GenerateChunk(pos world.ChunkPos, c *chunk.Chunk) {
	b := c.Bounds()
	height := b.Span()[1] + 1

	// FastNoise3D requires sizes that are multiples of their step. The chunk
	// height is whatever vertical range the pipeline was configured with, so
	// round the sampled height up and slice columns back down below.
	sampleHeight := (height + yStep - 1) / yStep * yStep
	fast := g.noise.FastNoise3D(chunk.Width, sampleHeight, chunk.Width, 4, yStep, 4,
		int64(pos[0])*chunk.Width, int64(b.Min[1]), int64(pos[1])*chunk.Width)

	// Biomes are selected in chunk-local column space first and aligned into
	// the chunk's world-space biome volume afterwards through a worker.
	scratch, err := volume.NewGrid[uint8](cube.Box{Max: cube.Pos{chunk.Width - 1, 0, chunk.Width - 1}})
	if err != nil {
		panic(err)
	}

	var biomeCols [chunk.Width][chunk.Width]biome.Biome
	biomeCache := make(map[[2]int64]biome.Biome)

	for x := 0; x < chunk.Width; x++ {
		for z := 0; z < chunk.Width; z++ {
			wx, wz := int64(b.Min[0]+x), int64(b.Min[2]+z)

			bio := g.pickBiome(wx, wz)
			biomeCols[x][z] = bio
			if err := scratch.Set(cube.Pos{x, 0, z}, bio.ID()); err != nil {
				panic(err)
			}

			var minSum, maxSum, weightSum float64
			for sx := int64(-SmoothSize); sx <= SmoothSize; sx++ {
				for sz := int64(-SmoothSize); sz <= SmoothSize; sz++ {
					weight := gaussianKernel[sx+SmoothSize][sz+SmoothSize]

					adjacent := bio
					if sx != 0 || sz != 0 {
						key := [2]int64{wx + sx, wz + sz}
						if cached, ok := biomeCache[key]; ok {
							adjacent = cached
						} else {
							adjacent = g.pickBiome(key[0], key[1])
							biomeCache[key] = adjacent
						}
					}

					min, max := adjacent.Elevation()
					minSum += float64(min-1) * weight
					maxSum += float64(max) * weight
					weightSum += weight
				}
			}
			minSum /= weightSum
			maxSum /= weightSum
			smoothHeight := (maxSum - minSum) / 2

			g.fillColumn(c, cube.Pos{b.Min[0] + x, b.Min[1], b.Min[2] + z}, fast[x][z][:height], smoothHeight, minSum)
		}
	}

	if err := volume.NewWorker[uint8](scratch, volume.View[uint8](scratch), c.Biomes()).ForEach(
		func(id, _ uint8, tgt volume.Target[uint8]) error {
			return tgt.Set(id)
		}); err != nil {
		panic(err)
	}

	g.cover(c, &biomeCols)
}

// fillColumn fills a single terrain column with bedrock, stone and water
// based on the noise values and the smoothed biome elevation.
func (g *Generator) fillColumn(c *chunk.Chunk, base cube.Pos, column []float64, smoothHeight, minSum float64) {
	for i, v := range column {
		pos := cube.Pos{base[0], base[1] + i, base[2]}
		if i == 0 {
			if err := c.Set(pos, block.Bedrock); err != nil {
				panic(err)
			}
			continue
		}
		y := float64(pos[1])
		noiseValue := v - 1.0/smoothHeight*(y-smoothHeight-minSum)
		switch {
		case noiseValue > 0:
			if err := c.Set(pos, block.Stone); err != nil {
				panic(err)
			}
		case pos[1] <= g.settings.WaterHeight:
			if err := c.Set(pos, block.Water); err != nil {
				panic(err)
			}
		}
	}
}

// cover replaces the top stone blocks of each column with the column biome's
// ground cover.
func (g *Generator) cover(c *chunk.Chunk, biomeCols *[chunk.Width][chunk.Width]biome.Biome) {
	b := c.Bounds()
	for x := 0; x < chunk.Width; x++ {
		for z := 0; z < chunk.Width; z++ {
			cov := biomeCols[x][z].GroundCover()
			if len(cov) == 0 {
				continue
			}
			wx, wz := b.Min[0]+x, b.Min[2]+z
			top, ok := c.HighestBlock(wx, wz, func(rid uint32) bool { return rid == block.Stone })
			if !ok {
				continue
			}
			for i, rid := range cov {
				pos := cube.Pos{wx, top - i, wz}
				if pos[1] < b.Min[1] {
					break
				}
				if err := c.Set(pos, rid); err != nil {
					panic(err)
				}
			}
		}
	}
}

// Populators returns the population sequence for the chunk: the standard ore
// pass followed by the populators of the biome at the chunk's centre column.
func (g *Generator) Populators(c *chunk.Chunk) []gen.Staged {
	staged := []gen.Staged{{Populator: populate.Ore{}, Config: g.ores}}

	b := c.Bounds()
	id, err := c.Biome(b.Min[0]+chunk.Width/2, b.Min[2]+chunk.Width/2)
	if err != nil {
		return staged
	}
	if bio, ok := biome.ByID(id); ok {
		staged = append(staged, bio.Populators()...)
	}
	return staged
}

// pickBiome selects the biome of a column, jittering the lookup position
// with a position derived hash so biome borders are not perfectly smooth.
func (g *Generator) pickBiome(x, z int64) biome.Biome {
	hash := x*2345803 ^ z*9236449 ^ g.seed
	hash *= hash + 223
	xNoise := hash >> 20 & 3
	zNoise := hash >> 22 & 3
	if xNoise == 3 {
		xNoise = 1
	}
	if zNoise == 3 {
		zNoise = 1
	}
	return g.selector.pick(x+xNoise-1, z+zNoise-1)
}
