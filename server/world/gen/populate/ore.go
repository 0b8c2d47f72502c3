package populate

import (
	"fmt"
	"math"

	"github.com/cubeworks/genesis/server/block/cube"
	"github.com/cubeworks/genesis/server/world/chunk"
	"github.com/cubeworks/genesis/server/world/gen"
	"github.com/cubeworks/genesis/server/world/gen/rand"
	"github.com/go-gl/mathgl/mgl64"
)

// TypeOre groups all populators that place ore clusters, so that plugins can
// recognise ore placement regardless of which populator performed it.
var TypeOre = gen.MustRegisterType("genesis:ore")

// OreType describes a single kind of ore cluster to scatter through a chunk.
type OreType struct {
	// Material is the runtime ID placed; Replaces is the only runtime ID it
	// replaces, usually stone.
	Material, Replaces uint32
	// ClusterCount is the amount of clusters attempted per chunk,
	// ClusterSize the rough amount of blocks per cluster.
	ClusterCount, ClusterSize int
	// MinHeight and MaxHeight bound the altitude at which clusters spawn.
	MinHeight, MaxHeight int
}

// OreConfig configures the Ore populator.
type OreConfig struct {
	Types []OreType
}

// Validate checks every ore type for usable cluster and height values.
func (c OreConfig) Validate() error {
	for i, ore := range c.Types {
		if ore.ClusterCount <= 0 || ore.ClusterSize <= 0 {
			return fmt.Errorf("ore type %d: cluster count and size must be positive", i)
		}
		if ore.MinHeight > ore.MaxHeight {
			return fmt.Errorf("ore type %d: min height %d exceeds max height %d", i, ore.MinHeight, ore.MaxHeight)
		}
	}
	return nil
}

// Ore scatters ore clusters through the stone of a chunk. Clusters are
// ellipsoids walked along a random diagonal, clipped at the chunk border.
type Ore struct{}

// Type returns TypeOre.
func (Ore) Type() *gen.Type {
	return TypeOre
}

// Populate places the configured ore clusters in the chunk.
func (Ore) Populate(_ gen.ProtoWorld, c *chunk.Chunk, r *rand.Random, conf gen.Config) error {
	cfg, err := gen.Conf[OreConfig](conf)
	if err != nil {
		return err
	}
	b := c.Bounds()
	for _, ore := range cfg.Types {
		for i := 0; i < ore.ClusterCount; i++ {
			pos := cube.Pos{
				int(r.Range(int32(b.Min[0]), int32(b.Max[0]))),
				int(r.Range(int32(ore.MinHeight), int32(ore.MaxHeight))),
				int(r.Range(int32(b.Min[2]), int32(b.Max[2]))),
			}
			if rid, ok := blockAt(c, pos); !ok || rid != ore.Replaces {
				continue
			}
			if err := placeCluster(c, pos, ore, r); err != nil {
				return err
			}
		}
	}
	return nil
}

// placeCluster walks an ellipsoid cluster along a random diagonal through
// pos, replacing matching blocks.
func placeCluster(c *chunk.Chunk, pos cube.Pos, ore OreType, r *rand.Random) error {
	clusterSize := float64(ore.ClusterSize)
	vec := pos.Vec3()
	angle := r.Float64() * math.Pi
	offset := mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(clusterSize / 8)
	x1, x2 := vec[0]+8+offset[0], vec[0]+8-offset[0]
	z1, z2 := vec[2]+8+offset[1], vec[2]+8-offset[1]
	y1, y2 := vec[1]+float64(r.Int31n(3))+2, vec[1]+float64(r.Int31n(3))+2

	for i := float64(0); i <= clusterSize; i++ {
		seedX := x1 + (x2-x1)*i/clusterSize
		seedY := y1 + (y2-y1)*i/clusterSize
		seedZ := z1 + (z2-z1)*i/clusterSize
		size := ((math.Sin(i*(math.Pi/clusterSize))+1)*r.Float64()*clusterSize/16 + 1) / 2

		startX := float64(int(seedX - size))
		startY := float64(int(seedY - size))
		startZ := float64(int(seedZ - size))
		endX := float64(int(seedX + size))
		endY := float64(int(seedY + size))
		endZ := float64(int(seedZ + size))

		for xx := startX; xx <= endX; xx++ {
			sizeX := (xx + 0.5 - seedX) / size
			sizeX *= sizeX
			if sizeX >= 1 {
				continue
			}
			for yy := startY; yy <= endY; yy++ {
				sizeY := (yy + 0.5 - seedY) / size
				sizeY *= sizeY
				if yy <= 0 || (sizeX+sizeY) >= 1 {
					continue
				}
				for zz := startZ; zz <= endZ; zz++ {
					sizeZ := (zz + 0.5 - seedZ) / size
					sizeZ *= sizeZ

					target := cube.Pos{int(xx), int(yy), int(zz)}
					if (sizeX + sizeY + sizeZ) >= 1 {
						continue
					}
					if rid, ok := blockAt(c, target); ok && rid == ore.Replaces {
						if err := c.Set(target, ore.Material); err != nil {
							return err
						}
					}
				}
			}
		}
	}
	return nil
}
