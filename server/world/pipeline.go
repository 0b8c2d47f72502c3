package world

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/cubeworks/genesis/server/block/cube"
	"github.com/cubeworks/genesis/server/world/chunk"
	"github.com/cubeworks/genesis/server/world/gen"
	"github.com/cubeworks/genesis/server/world/gen/rand"
	"github.com/segmentio/fasthash/fnv1a"
	"golang.org/x/sync/errgroup"
)

// Generator produces the terrain of newly created chunks and decides which
// populators run on them afterwards.
type Generator interface {
	// GenerateChunk generates the terrain of the chunk passed, including its
	// biome map. The chunk is exclusively owned by the calling task.
	GenerateChunk(pos ChunkPos, c *chunk.Chunk)
	// Populators returns the population sequence for the chunk passed,
	// typically selected from the chunk's biomes. The sequence runs serially
	// in the order returned.
	Populators(c *chunk.Chunk) []gen.Staged
}

// PipelineConfig configures a generation Pipeline. The zero value is not
// usable: a Generator is required. Remaining fields receive defaults through
// withDefaults.
type PipelineConfig struct {
	// Seed is the world seed. Per-chunk random sources are derived from it so
	// that generation is reproducible for a given seed.
	Seed int64
	// Generator generates terrain and selects populators.
	Generator Generator
	// Range is the vertical block range of generated chunks.
	Range cube.Range
	// Workers caps the amount of chunks generated concurrently. Defaults to
	// the amount of CPUs.
	Workers int
	// ContinueOnError makes the pipeline log populator errors and keep the
	// partially populated chunk instead of aborting generation. Which of the
	// two happens is driver policy; populators themselves always fail loudly.
	ContinueOnError bool
	// Log is the logger used for progress and failure reporting. Defaults to
	// slog.Default().
	Log *slog.Logger
}

func (conf PipelineConfig) withDefaults() PipelineConfig {
	if conf.Range == (cube.Range{}) {
		conf.Range = cube.Range{0, 127}
	}
	if conf.Workers <= 0 {
		conf.Workers = runtime.NumCPU()
	}
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	return conf
}

// New creates a Pipeline from the config. It panics if no Generator is set.
func (conf PipelineConfig) New() *Pipeline {
	if conf.Generator == nil {
		panic("pipeline: no generator configured")
	}
	return &Pipeline{conf: conf.withDefaults()}
}

// Pipeline drives chunk generation: a terrain stage that generates all
// requested chunks plus a one-chunk border, followed by a population stage
// that runs each chunk's populator sequence. Chunks are processed in
// parallel; a single chunk's populator sequence runs serially on one
// goroutine. By the time a chunk is populated, all of its neighbours are
// terrain-complete, so populators may read them through the region.
type Pipeline struct {
	conf PipelineConfig
}

// Generate generates and populates the chunks at the positions passed,
// returning the region holding them together with the border chunks that
// were terrain-generated for neighbour context. The context cancels
// outstanding chunk tasks between, never during, per-chunk stages.
func (p *Pipeline) Generate(ctx context.Context, positions []ChunkPos) (*Region, error) {
	region := NewRegion()

	terrain := append([]ChunkPos(nil), positions...)
	for _, pos := range positions {
		for dx := int32(-1); dx <= 1; dx++ {
			for dz := int32(-1); dz <= 1; dz++ {
				terrain = append(terrain, ChunkPos{pos[0] + dx, pos[1] + dz})
			}
		}
	}
	terrain = dedupe(terrain)

	p.conf.Log.Debug("generating terrain", "chunks", len(terrain), "workers", p.conf.Workers)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.conf.Workers)
	for _, pos := range terrain {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c := chunk.New(pos[0], pos[1], p.conf.Range)
			p.conf.Generator.GenerateChunk(pos, c)
			region.Put(pos, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("terrain stage: %w", err)
	}

	p.conf.Log.Debug("populating chunks", "chunks", len(positions))
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(p.conf.Workers)
	for _, pos := range positions {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, _ := region.Chunk(pos)
			return p.populate(region, pos, c)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("population stage: %w", err)
	}
	return region, nil
}

// populate runs the chunk's populator sequence serially. Each populator call
// completes fully before the next one starts.
func (p *Pipeline) populate(region *Region, pos ChunkPos, c *chunk.Chunk) error {
	r := rand.NewRandom(chunkSeed(p.conf.Seed, pos))
	for _, staged := range p.conf.Generator.Populators(c) {
		if err := staged.Populator.Populate(region, c, r, staged.Config); err != nil {
			if p.conf.ContinueOnError {
				p.conf.Log.Error("populator failed, continuing with partially populated chunk",
					"populator", staged.Populator.Type().Name(), "chunk", pos, "err", err)
				continue
			}
			return fmt.Errorf("populate chunk %v with %v: %w", pos, staged.Populator.Type(), err)
		}
	}
	return nil
}

// chunkSeed derives the deterministic per-chunk random seed from the world
// seed and the chunk position.
func chunkSeed(seed int64, pos ChunkPos) int64 {
	h := fnv1a.Init64
	h = fnv1a.AddUint64(h, uint64(seed))
	h = fnv1a.AddUint64(h, uint64(uint32(pos[0])))
	h = fnv1a.AddUint64(h, uint64(uint32(pos[1])))
	return int64(h)
}

func dedupe(positions []ChunkPos) []ChunkPos {
	seen := make(map[ChunkPos]struct{}, len(positions))
	out := positions[:0]
	for _, pos := range positions {
		if _, ok := seen[pos]; ok {
			continue
		}
		seen[pos] = struct{}{}
		out = append(out, pos)
	}
	return out
}
