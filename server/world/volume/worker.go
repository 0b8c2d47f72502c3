package volume

import (
	"fmt"

	"github.com/cubeworks/genesis/server/block/cube"
)

// Target is the write handle passed to an Op for a single visited cell. It is
// bound to the coordinate in the target volume that aligns with the primary
// coordinate currently visited.
type Target[C any] struct {
	vol Mutable[C]
	pos cube.Pos
}

// Pos returns the target volume coordinate the handle is bound to.
func (t Target[C]) Pos() cube.Pos {
	return t.pos
}

// At reads the current value of the bound target cell.
func (t Target[C]) At() (C, error) {
	return t.vol.At(t.pos)
}

// Set writes the bound target cell.
func (t Target[C]) Set(c C) error {
	return t.vol.Set(t.pos, c)
}

// Op is a per-cell operation applied by a Worker. It receives the primary and
// secondary cell values at the aligned coordinates and a Target bound to the
// aligned coordinate of the target volume. Returning an error stops the
// worker; cells written before the error keep their values.
type Op[C any] func(primary, secondary C, target Target[C]) error

// Worker applies operations uniformly over the cells of a primary volume,
// reading from a secondary volume and writing to a target volume. The three
// volumes describe the same physical region, each in its own coordinate
// space: coordinates are aligned by subtracting the primary's minimum corner
// and adding the other volume's minimum corner. The secondary and target must
// be at least as big as the primary on every axis. Workers are ephemeral and
// created per operation; they hold no state beyond the three volumes.
type Worker[C any] struct {
	primary   Workable[C]
	secondary Reader[C]
	target    Mutable[C]
}

// NewWorker creates a Worker over the primary, secondary and target volumes
// passed. The size precondition is checked by ForEach, not here, so that a
// worker can be constructed before its volumes are fully populated.
func NewWorker[C any](primary Workable[C], secondary Reader[C], target Mutable[C]) *Worker[C] {
	return &Worker[C]{primary: primary, secondary: secondary, target: target}
}

// ForEach applies op to every cell of the primary volume, in the primary's
// enumeration order. If the secondary or target volume is smaller than the
// primary on any axis, ForEach fails with an error wrapping ErrSizeMismatch
// before visiting any cell, so no partial mutation occurs. An error returned
// by op stops iteration and is returned as is; already-applied writes to the
// target are not rolled back.
func (w *Worker[C]) ForEach(op Op[C]) error {
	pb := w.primary.Bounds()
	if err := checkSpan("secondary", w.secondary.Bounds(), pb); err != nil {
		return err
	}
	if err := checkSpan("target", w.target.Bounds(), pb); err != nil {
		return err
	}

	sb, tb := w.secondary.Bounds(), w.target.Bounds()
	for pos := range w.primary.Coordinates() {
		offset := pos.Sub(pb.Min)

		p, err := w.primary.At(pos)
		if err != nil {
			return err
		}
		s, err := w.secondary.At(sb.Min.Add(offset))
		if err != nil {
			return err
		}
		t := Target[C]{vol: w.target, pos: tb.Min.Add(offset)}
		if err := op(p, s, t); err != nil {
			return err
		}
	}
	return nil
}

// checkSpan verifies that the box passed spans at least the primary box on
// every axis.
func checkSpan(name string, b, primary cube.Box) error {
	bs, ps := b.Span(), primary.Span()
	for i := 0; i < 3; i++ {
		if bs[i] < ps[i] {
			return fmt.Errorf("%w: %s volume %v spans less than primary %v", ErrSizeMismatch, name, b, primary)
		}
	}
	return nil
}
