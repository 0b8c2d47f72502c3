package volume

import (
	"fmt"
	"iter"

	"github.com/cubeworks/genesis/server/block/cube"
)

// Grid is a dense in-memory volume over an arbitrary bounding box. It
// implements the Workable and Mutable capabilities and is the backing store
// for chunk block data and biome maps. The zero value is not usable; create
// grids through NewGrid.
type Grid[C any] struct {
	box   cube.Box
	cells []C

	// sy and sz are the Y and Z extents cached for index arithmetic.
	sy, sz int
}

// NewGrid creates a Grid spanning the box passed, with every cell set to the
// zero value of C. An error is returned if the box's minimum corner exceeds
// its maximum corner on any axis.
func NewGrid[C any](box cube.Box) (*Grid[C], error) {
	for i := 0; i < 3; i++ {
		if box.Min[i] > box.Max[i] {
			return nil, fmt.Errorf("grid bounds: min %v exceeds max %v", box.Min, box.Max)
		}
	}
	s := box.Span()
	return &Grid[C]{
		box:   box,
		cells: make([]C, box.Volume()),
		sy:    s[1] + 1,
		sz:    s[2] + 1,
	}, nil
}

// Bounds returns the bounding box the grid was created with.
func (g *Grid[C]) Bounds() cube.Box {
	return g.box
}

// At returns the cell value at the position passed.
func (g *Grid[C]) At(pos cube.Pos) (C, error) {
	if !g.box.Inside(pos) {
		var zero C
		return zero, outOfBounds(pos, g.box)
	}
	return g.cells[g.index(pos)], nil
}

// Set writes the cell value at the position passed. Writes outside of the
// grid's bounds fail with ErrOutOfBounds and leave the grid untouched.
func (g *Grid[C]) Set(pos cube.Pos, c C) error {
	if !g.box.Inside(pos) {
		return outOfBounds(pos, g.box)
	}
	g.cells[g.index(pos)] = c
	return nil
}

// Coordinates yields every coordinate of the grid in ascending X, then Z,
// then Y order.
func (g *Grid[C]) Coordinates() iter.Seq[cube.Pos] {
	return coordinates(g.box)
}

// Sub returns a mutable view over the part of the grid within the box passed.
// The view shares the grid's storage: writes through it are visible to the
// parent and vice versa. An error wrapping ErrOutOfBounds is returned if the
// box does not lie fully within the grid's bounds.
func (g *Grid[C]) Sub(box cube.Box) (*SubGrid[C], error) {
	if !g.box.Contains(box) {
		return nil, fmt.Errorf("%w: sub box %v not in %v", ErrOutOfBounds, box, g.box)
	}
	return &SubGrid[C]{parent: g, box: box}, nil
}

func (g *Grid[C]) index(pos cube.Pos) int {
	rel := pos.Sub(g.box.Min)
	return (rel[0]*g.sz+rel[2])*g.sy + rel[1]
}

// SubGrid is a Workable and Mutable view over a rectangular part of a parent
// Grid, with its own bounds. It is used by populators to hand workers a
// sub-range of a chunk.
type SubGrid[C any] struct {
	parent *Grid[C]
	box    cube.Box
}

// Bounds returns the sub box the view was created with.
func (s *SubGrid[C]) Bounds() cube.Box {
	return s.box
}

// At reads a cell from the parent grid, failing for positions outside the
// view's own bounds even when they are inside the parent's.
func (s *SubGrid[C]) At(pos cube.Pos) (C, error) {
	if !s.box.Inside(pos) {
		var zero C
		return zero, outOfBounds(pos, s.box)
	}
	return s.parent.At(pos)
}

// Set writes a cell through to the parent grid, restricted to the view's own
// bounds.
func (s *SubGrid[C]) Set(pos cube.Pos, c C) error {
	if !s.box.Inside(pos) {
		return outOfBounds(pos, s.box)
	}
	return s.parent.Set(pos, c)
}

// Coordinates yields every coordinate of the view in ascending X, then Z,
// then Y order.
func (s *SubGrid[C]) Coordinates() iter.Seq[cube.Pos] {
	return coordinates(s.box)
}

// coordinates enumerates a box in ascending X, then Z, then Y order. All
// Workable implementations in this package share it so that their enumeration
// order is identical.
func coordinates(box cube.Box) iter.Seq[cube.Pos] {
	return func(yield func(cube.Pos) bool) {
		for x := box.Min[0]; x <= box.Max[0]; x++ {
			for z := box.Min[2]; z <= box.Max[2]; z++ {
				for y := box.Min[1]; y <= box.Max[1]; y++ {
					if !yield(cube.Pos{x, y, z}) {
						return
					}
				}
			}
		}
	}
}
