package value

import (
	"errors"
	"testing"
)

func TestBoundedSetWithinRange(t *testing.T) {
	b, err := NewBounded(0, 0, 3)
	if err != nil {
		t.Fatalf("new bounded: %v", err)
	}
	if err := b.Set(2); err != nil {
		t.Fatalf("set in range: %v", err)
	}
	if b.Value() != 2 {
		t.Fatalf("expected value 2, got %d", b.Value())
	}
}

func TestBoundedSetOutOfRangeKeepsValue(t *testing.T) {
	b, err := NewBounded(2, 0, 3)
	if err != nil {
		t.Fatalf("new bounded: %v", err)
	}
	if err := b.Set(5); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if b.Value() != 2 {
		t.Fatalf("expected value untouched after failed set, got %d", b.Value())
	}
	if err := b.Set(-1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for value below min, got %v", err)
	}
}

func TestBoundedInvalidConstruction(t *testing.T) {
	if _, err := NewBounded(0, 3, 0); err == nil {
		t.Fatal("expected error for min exceeding max")
	}
	if _, err := NewBounded(4, 0, 3); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for initial value outside range, got %v", err)
	}
}

func TestBoundedImmutableSnapshot(t *testing.T) {
	b, err := NewBounded(uint8(1), 0, 7)
	if err != nil {
		t.Fatalf("new bounded: %v", err)
	}
	snap := b.Immutable()
	if err := b.Set(6); err != nil {
		t.Fatalf("set after snapshot: %v", err)
	}
	if snap.Value() != 1 {
		t.Fatalf("snapshot changed with the mutable value: got %d", snap.Value())
	}

	m := snap.Mutable()
	if m.Value() != 1 || m.Min() != 0 || m.Max() != 7 {
		t.Fatalf("mutable copy lost state: %d in [%d, %d]", m.Value(), m.Min(), m.Max())
	}
	// The copy is independent of both the snapshot and the original.
	if err := m.Set(3); err != nil {
		t.Fatalf("set on copy: %v", err)
	}
	if b.Value() != 6 {
		t.Fatalf("original changed with the copy: got %d", b.Value())
	}
}
