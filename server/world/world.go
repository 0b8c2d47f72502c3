// Package world ties the generation subsystem together: it holds the block
// runtime ID registry, the region of chunks being generated and the pipeline
// that drives terrain generation and population across chunks.
package world

import (
	"fmt"
	"sync"

	"github.com/cubeworks/genesis/server/block/cube"
	"github.com/cubeworks/genesis/server/world/chunk"
	"github.com/cubeworks/genesis/server/world/volume"
)

// ChunkPos holds the position of a chunk. The first value is the X
// coordinate, the second the Z coordinate. Chunk positions differ from block
// positions by a factor of 16 horizontally.
type ChunkPos [2]int32

// X returns the X coordinate of the chunk position.
func (p ChunkPos) X() int32 {
	return p[0]
}

// Z returns the Z coordinate of the chunk position.
func (p ChunkPos) Z() int32 {
	return p[1]
}

// String converts the ChunkPos to a readable string.
func (p ChunkPos) String() string {
	return fmt.Sprintf("(%v, %v)", p[0], p[1])
}

// PosFromBlock returns the position of the chunk that contains the block
// position passed.
func PosFromBlock(pos cube.Pos) ChunkPos {
	return ChunkPos{int32(pos[0] >> 4), int32(pos[2] >> 4)}
}

// Region is a set of chunks under generation, indexed by chunk position. It
// satisfies gen.ProtoWorld, giving populators read access to neighbouring
// terrain. Reads are safe for concurrent use with other reads and with
// population of other chunks; a chunk's own cells are only ever written by
// the single task that owns the chunk.
type Region struct {
	mu     sync.RWMutex
	chunks map[ChunkPos]*chunk.Chunk
}

// NewRegion creates an empty Region.
func NewRegion() *Region {
	return &Region{chunks: make(map[ChunkPos]*chunk.Chunk)}
}

// Put adds a chunk to the region.
func (r *Region) Put(pos ChunkPos, c *chunk.Chunk) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chunks[pos] = c
}

// Chunk returns the chunk at the chunk position passed, if present.
func (r *Region) Chunk(pos ChunkPos) (*chunk.Chunk, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.chunks[pos]
	return c, ok
}

// Chunks returns the positions of all chunks in the region.
func (r *Region) Chunks() []ChunkPos {
	r.mu.RLock()
	defer r.mu.RUnlock()
	positions := make([]ChunkPos, 0, len(r.chunks))
	for pos := range r.chunks {
		positions = append(positions, pos)
	}
	return positions
}

// Block returns the block runtime ID at the world position passed. Positions
// in chunks not part of the region fail with an error wrapping
// volume.ErrOutOfBounds, the same contract as a direct volume read.
func (r *Region) Block(pos cube.Pos) (uint32, error) {
	c, ok := r.Chunk(PosFromBlock(pos))
	if !ok {
		return 0, fmt.Errorf("%w: %v not in generated region", volume.ErrOutOfBounds, pos)
	}
	return c.At(pos)
}

// Biome returns the biome ID of the column at the world X and Z passed.
func (r *Region) Biome(x, z int) (uint8, error) {
	c, ok := r.Chunk(PosFromBlock(cube.Pos{x, 0, z}))
	if !ok {
		return 0, fmt.Errorf("%w: column (%v, %v) not in generated region", volume.ErrOutOfBounds, x, z)
	}
	return c.Biome(x, z)
}
