// Package gen defines the world generation contracts: populators that add
// features to freshly generated terrain, the configuration they consume and
// the process-wide registry of populator types.
package gen

import (
	"errors"
	"fmt"

	"github.com/cubeworks/genesis/server/block/cube"
	"github.com/cubeworks/genesis/server/world/chunk"
	"github.com/cubeworks/genesis/server/world/gen/rand"
)

// ErrInvalidConfig is returned by a populator handed a config it cannot
// interpret, either because its dynamic type does not match or because its
// values fail validation. Populators fail loudly on bad configs instead of
// silently skipping; whether chunk generation continues is the driver's call.
var ErrInvalidConfig = errors.New("invalid populator config")

// Config is the parameter bag consumed by a populator. Configs are plain
// data constructed before each Populate call; they carry no behaviour beyond
// validation.
type Config interface {
	// Validate checks the config's values and returns an error describing the
	// first problem found, or nil.
	Validate() error
}

// ProtoWorld provides a populator read access to terrain surrounding the
// chunk being populated. Neighbouring chunks reachable through it are
// terrain-complete but not necessarily populated yet; the generation driver
// guarantees this ordering. Reads outside of the generated region fail with
// an error wrapping volume.ErrOutOfBounds.
type ProtoWorld interface {
	// Block returns the block runtime ID at a world position.
	Block(pos cube.Pos) (uint32, error)
	// Biome returns the biome ID of the column at a world X and Z.
	Biome(x, z int) (uint8, error)
}

// Populator adds features such as trees, grass and ores to a chunk after its
// terrain has been generated. Implementations are stateless: all per-call
// state arrives through the arguments, and none of them may be retained past
// the call. Block changes made by a populator are not observed by any event
// system; population runs before gameplay state tracking begins.
type Populator interface {
	// Type returns the registered type of the populator. Multiple populators
	// may share a type for the purposes of cross-plugin grouping.
	Type() *Type
	// Populate edits the chunk passed in place, reading neighbouring terrain
	// through w and drawing randomness exclusively from r. Population with
	// the same seed, config and starting terrain produces identical results.
	Populate(w ProtoWorld, c *chunk.Chunk, r *rand.Random, conf Config) error
}

// Conf asserts that the config passed has dynamic type C, returning an error
// wrapping ErrInvalidConfig when it does not or when validation fails.
// Populator implementations use it as their first step in Populate.
func Conf[C Config](conf Config) (C, error) {
	c, ok := conf.(C)
	if !ok {
		var zero C
		return zero, fmt.Errorf("%w: got %T, expected %T", ErrInvalidConfig, conf, zero)
	}
	if err := c.Validate(); err != nil {
		var zero C
		return zero, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return c, nil
}

// Staged pairs a populator with the config it runs with, forming one step of
// a chunk's population sequence.
type Staged struct {
	Populator Populator
	Config    Config
}
