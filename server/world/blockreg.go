package world

import (
	"errors"
	"fmt"
	"sync"

	"github.com/brentp/intintmap"
	"github.com/cespare/xxhash/v2"
)

var (
	// ErrBlockRegistered is returned when a block state name is registered a
	// second time.
	ErrBlockRegistered = errors.New("block state already registered")
	// ErrRegistryFinalised is returned when a block state is registered after
	// the registry has been finalised.
	ErrRegistryFinalised = errors.New("block registry finalised")
)

// Air is the runtime ID of the air block, always 0.
const Air uint32 = 0

// BlockRegistry maps block state names to dense runtime IDs used in chunk
// storage. Names are hashed with xxhash and the hashes kept in an int-to-int
// map so that runtime ID lookups during generation avoid string map overhead.
// The registry is append-only: states are registered during startup and the
// registry is finalised before generation begins.
type BlockRegistry struct {
	mu       sync.RWMutex
	hashes   *intintmap.Map
	names    []string
	finished bool
}

// NewBlockRegistry creates a BlockRegistry with the air block registered as
// runtime ID 0.
func NewBlockRegistry() *BlockRegistry {
	r := &BlockRegistry{hashes: intintmap.New(1024, 0.6)}
	// Runtime ID 0 is reserved for air so that zeroed chunk storage is valid.
	if _, err := r.Register("genesis:air"); err != nil {
		panic(err)
	}
	return r
}

// Register registers a block state name and returns the runtime ID assigned
// to it. Registering the same name twice fails with an error wrapping
// ErrBlockRegistered; registering after Finalise fails with an error wrapping
// ErrRegistryFinalised.
func (r *BlockRegistry) Register(state string) (uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finished {
		return 0, fmt.Errorf("%w: cannot register %q", ErrRegistryFinalised, state)
	}
	h := int64(xxhash.Sum64String(state))
	if _, ok := r.hashes.Get(h); ok {
		return 0, fmt.Errorf("%w: %q", ErrBlockRegistered, state)
	}
	rid := uint32(len(r.names))
	r.hashes.Put(h, int64(rid))
	r.names = append(r.names, state)
	return rid, nil
}

// MustRegister registers a block state and panics on error. It is intended
// for startup registration of built-in states.
func (r *BlockRegistry) MustRegister(state string) uint32 {
	rid, err := r.Register(state)
	if err != nil {
		panic(err)
	}
	return rid
}

// Finalise freezes the registry. Lookups remain valid; further registration
// fails.
func (r *BlockRegistry) Finalise() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished = true
}

// RuntimeID returns the runtime ID of the block state name passed.
func (r *BlockRegistry) RuntimeID(state string) (uint32, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.hashes.Get(int64(xxhash.Sum64String(state)))
	if !ok {
		return 0, false
	}
	return uint32(v), true
}

// Name returns the block state name registered under the runtime ID passed.
func (r *BlockRegistry) Name(rid uint32) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if int(rid) >= len(r.names) {
		return "", false
	}
	return r.names[rid], true
}

// Len returns the amount of registered block states.
func (r *BlockRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.names)
}
