// Command genesis-inspect generates a square region of chunks from a seed
// and a generator settings file, prints a histogram of the blocks placed and
// optionally persists the region to a LevelDB chunk store.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/cubeworks/genesis/server/block"
	"github.com/cubeworks/genesis/server/world"
	"github.com/cubeworks/genesis/server/world/gen/overworld"
	"github.com/cubeworks/genesis/server/world/mcdb"
)

func main() {
	conf := flag.String("config", "overworld.toml", "path to the generator settings file; created with defaults if missing")
	seed := flag.Int64("seed", 0, "world seed")
	radius := flag.Int("radius", 2, "generate chunks with coordinates in [-radius, radius] on both axes")
	workers := flag.Int("workers", runtime.NumCPU(), "number of parallel generation workers")
	out := flag.String("out", "", "if set, store the generated region in a LevelDB database at this directory")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(log, *conf, *seed, *radius, *workers, *out); err != nil {
		log.Error("genesis-inspect failed", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, confPath string, seed int64, radius, workers int, out string) error {
	if radius < 0 {
		return fmt.Errorf("radius %v must not be negative", radius)
	}
	block.Registry.Finalise()

	settings, err := overworld.LoadSettings(confPath)
	if err != nil {
		return err
	}
	g, err := overworld.New(seed, settings)
	if err != nil {
		return err
	}

	positions := make([]world.ChunkPos, 0, (2*radius+1)*(2*radius+1))
	for x := -radius; x <= radius; x++ {
		for z := -radius; z <= radius; z++ {
			positions = append(positions, world.ChunkPos{int32(x), int32(z)})
		}
	}

	pipeline := world.PipelineConfig{
		Seed:      seed,
		Generator: g,
		Workers:   workers,
		Log:       log,
	}.New()

	log.Info("generating region", "seed", seed, "chunks", len(positions), "workers", workers)
	start := time.Now()
	region, err := pipeline.Generate(context.Background(), positions)
	if err != nil {
		return err
	}
	log.Info("region generated", "duration", time.Since(start).Round(time.Millisecond))

	printHistogram(region)

	if out != "" {
		if err := store(log, region, positions, out); err != nil {
			return err
		}
	}
	return nil
}

// printHistogram counts every block in the region and prints the counts per
// block state, most common first.
func printHistogram(region *world.Region) {
	counts := map[uint32]int{}
	total := 0
	for _, cp := range region.Chunks() {
		c, ok := region.Chunk(cp)
		if !ok {
			continue
		}
		for pos := range c.Coordinates() {
			rid, err := c.At(pos)
			if err != nil {
				continue
			}
			counts[rid]++
			total++
		}
	}

	rids := make([]uint32, 0, len(counts))
	for rid := range counts {
		rids = append(rids, rid)
	}
	sort.Slice(rids, func(i, j int) bool { return counts[rids[i]] > counts[rids[j]] })

	fmt.Printf("%-32s %12s %8s\n", "block", "count", "share")
	for _, rid := range rids {
		name, ok := block.Registry.Name(rid)
		if !ok {
			name = fmt.Sprintf("unknown(%v)", rid)
		}
		fmt.Printf("%-32s %12d %7.2f%%\n", name, counts[rid], 100*float64(counts[rid])/float64(total))
	}
}

func store(log *slog.Logger, region *world.Region, positions []world.ChunkPos, dir string) error {
	db, err := mcdb.Config{Log: log}.Open(dir)
	if err != nil {
		return err
	}
	defer db.Close()

	start := time.Now()
	for _, pos := range positions {
		c, ok := region.Chunk(pos)
		if !ok {
			continue
		}
		if err := db.StoreColumn(pos, c); err != nil {
			return err
		}
	}
	log.Info("region stored", "dir", dir, "duration", time.Since(start).Round(time.Millisecond))
	return nil
}
