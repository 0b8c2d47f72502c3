// Package volume provides the capability model for addressable block and biome
// grids used during world generation, along with a generic worker that applies
// per-cell operations across multiple volumes aligned on their minimum corners.
package volume

import (
	"errors"
	"fmt"
	"iter"

	"github.com/cubeworks/genesis/server/block/cube"
)

var (
	// ErrOutOfBounds is returned when a coordinate outside a volume's bounds is
	// read or written. Writes outside bounds fail rather than silently clip.
	ErrOutOfBounds = errors.New("coordinate outside volume bounds")
	// ErrSizeMismatch is returned when a worker's secondary or target volume is
	// smaller than its primary volume on at least one axis.
	ErrSizeMismatch = errors.New("volume smaller than primary volume")
)

// Volume is an addressable grid of cell values with fixed integer bounds.
// Two-dimensional volumes, such as biome maps, are volumes with a zero span on
// the Y axis. A volume's bounds never change over its lifetime.
type Volume interface {
	// Bounds returns the bounding box of the volume in its own coordinate
	// space. Both corners are inclusive.
	Bounds() cube.Box
}

// Reader is a Volume whose cells may be read. At returns an error wrapping
// ErrOutOfBounds for coordinates outside Bounds.
type Reader[C any] interface {
	Volume
	At(pos cube.Pos) (C, error)
}

// Workable is a Reader that can additionally enumerate its own coordinates for
// batch work. The enumeration is finite, covers every in-bounds coordinate
// exactly once and may be restarted at any time.
type Workable[C any] interface {
	Reader[C]
	// Coordinates yields every coordinate within Bounds in ascending X, then
	// Z, then Y order. The order is fixed for a given volume so that repeated
	// enumeration, and therefore any work built on it, is deterministic.
	Coordinates() iter.Seq[cube.Pos]
}

// Mutable is a Reader whose cells may be written in place. A successful Set is
// immediately visible to subsequent At calls on the same volume.
type Mutable[C any] interface {
	Reader[C]
	Set(pos cube.Pos, c C) error
}

// Unmodifiable is a read-only view over a backing volume. The backing data
// cannot be mutated through the view, but the view is not a snapshot: if the
// backing volume is mutated directly, reads through the view observe it.
type Unmodifiable[C any] struct {
	src Reader[C]
}

// View wraps a volume in an Unmodifiable read-only view.
func View[C any](src Reader[C]) Unmodifiable[C] {
	return Unmodifiable[C]{src: src}
}

// Bounds returns the bounds of the backing volume.
func (u Unmodifiable[C]) Bounds() cube.Box {
	return u.src.Bounds()
}

// At reads a cell from the backing volume.
func (u Unmodifiable[C]) At(pos cube.Pos) (C, error) {
	return u.src.At(pos)
}

// outOfBounds wraps ErrOutOfBounds with the offending coordinate and the
// bounds it fell outside of.
func outOfBounds(pos cube.Pos, b cube.Box) error {
	return fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, pos, b)
}
