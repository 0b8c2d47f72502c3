// Package value holds the bounded value types that back block attribute data
// such as snow layer counts, where a value must stay within an inclusive
// numeric range.
package value

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrOutOfRange is returned when a bounded value is assigned a value outside
// of its inclusive [min, max] range. Failed assignments never partially
// update: the previous value is kept.
var ErrOutOfRange = errors.New("value outside of bounded range")

// Bounded is a mutable value constrained to an inclusive [min, max] range.
// Assignments outside the range are rejected rather than clamped.
type Bounded[T constraints.Integer] struct {
	v, min, max T
}

// NewBounded creates a Bounded value with the range and initial value passed.
// An error is returned if min exceeds max or if the initial value lies
// outside the range.
func NewBounded[T constraints.Integer](v, min, max T) (*Bounded[T], error) {
	if min > max {
		return nil, fmt.Errorf("bounded value: min %v exceeds max %v", min, max)
	}
	b := &Bounded[T]{v: min, min: min, max: max}
	if err := b.Set(v); err != nil {
		return nil, err
	}
	return b, nil
}

// Value returns the current value.
func (b *Bounded[T]) Value() T {
	return b.v
}

// Min returns the inclusive lower limit of the range.
func (b *Bounded[T]) Min() T {
	return b.min
}

// Max returns the inclusive upper limit of the range.
func (b *Bounded[T]) Max() T {
	return b.max
}

// Set assigns a new value. Values outside of [Min, Max] fail with an error
// wrapping ErrOutOfRange and leave the current value unchanged.
func (b *Bounded[T]) Set(v T) error {
	if v < b.min || v > b.max {
		return fmt.Errorf("%w: %v not in [%v, %v]", ErrOutOfRange, v, b.min, b.max)
	}
	b.v = v
	return nil
}

// Immutable returns an immutable snapshot of the value. The snapshot does not
// change when the Bounded value is mutated afterwards.
func (b *Bounded[T]) Immutable() ImmutableBounded[T] {
	return ImmutableBounded[T]{v: b.v, min: b.min, max: b.max}
}

// ImmutableBounded is an immutable snapshot of a Bounded value. It exposes
// only read access; converting back to a mutable value copies.
type ImmutableBounded[T constraints.Integer] struct {
	v, min, max T
}

// Value returns the snapshot value.
func (b ImmutableBounded[T]) Value() T {
	return b.v
}

// Min returns the inclusive lower limit of the range.
func (b ImmutableBounded[T]) Min() T {
	return b.min
}

// Max returns the inclusive upper limit of the range.
func (b ImmutableBounded[T]) Max() T {
	return b.max
}

// Mutable returns a mutable copy of the snapshot. The conversion is total:
// a snapshot always satisfies its own range invariant.
func (b ImmutableBounded[T]) Mutable() *Bounded[T] {
	return &Bounded[T]{v: b.v, min: b.min, max: b.max}
}
