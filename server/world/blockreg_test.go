package world

import (
	"errors"
	"testing"
)

func TestBlockRegistryAssignsDenseIDs(t *testing.T) {
	reg := NewBlockRegistry()
	stone, err := reg.Register("genesis:stone")
	if err != nil {
		t.Fatalf("register stone: %v", err)
	}
	dirt, err := reg.Register("genesis:dirt")
	if err != nil {
		t.Fatalf("register dirt: %v", err)
	}
	if stone != 1 || dirt != 2 {
		t.Fatalf("expected dense runtime IDs 1 and 2, got %d and %d", stone, dirt)
	}

	rid, ok := reg.RuntimeID("genesis:stone")
	if !ok || rid != stone {
		t.Fatalf("runtime ID lookup: got %d (ok=%v), expected %d", rid, ok, stone)
	}
	name, ok := reg.Name(dirt)
	if !ok || name != "genesis:dirt" {
		t.Fatalf("name lookup: got %q (ok=%v)", name, ok)
	}
}

func TestBlockRegistryAirIsZero(t *testing.T) {
	reg := NewBlockRegistry()
	rid, ok := reg.RuntimeID("genesis:air")
	if !ok || rid != Air {
		t.Fatalf("expected air at runtime ID 0, got %d (ok=%v)", rid, ok)
	}
}

func TestBlockRegistryDuplicate(t *testing.T) {
	reg := NewBlockRegistry()
	if _, err := reg.Register("genesis:stone"); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := reg.Register("genesis:stone"); !errors.Is(err, ErrBlockRegistered) {
		t.Fatalf("expected ErrBlockRegistered, got %v", err)
	}
}

func TestBlockRegistryFinalise(t *testing.T) {
	reg := NewBlockRegistry()
	stone := reg.MustRegister("genesis:stone")
	reg.Finalise()

	if _, err := reg.Register("genesis:late"); !errors.Is(err, ErrRegistryFinalised) {
		t.Fatalf("expected ErrRegistryFinalised, got %v", err)
	}
	// Lookups stay valid after finalising.
	if rid, ok := reg.RuntimeID("genesis:stone"); !ok || rid != stone {
		t.Fatalf("lookup after finalise: got %d (ok=%v)", rid, ok)
	}
}
