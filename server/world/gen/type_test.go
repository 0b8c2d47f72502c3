package gen

import (
	"errors"
	"testing"
)

func TestRegisterTypeConflict(t *testing.T) {
	first, err := RegisterType("test:conflict")
	if err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := RegisterType("test:conflict"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on duplicate registration, got %v", err)
	}

	// The first registration must be unaffected by the failed second one.
	got, ok := TypeByName("test:conflict")
	if !ok {
		t.Fatal("type lookup failed after conflicting registration")
	}
	if got != first {
		t.Fatalf("lookup returned a different *Type: %p vs %p", got, first)
	}
}

func TestTypeIdentityByName(t *testing.T) {
	reg, err := RegisterType("test:identity")
	if err != nil {
		t.Fatalf("registration: %v", err)
	}
	a, _ := TypeByName("test:identity")
	b, _ := TypeByName("test:identity")
	if a != reg || a != b {
		t.Fatal("repeated lookups must return the identical *Type")
	}
	if a.Name() != "test:identity" {
		t.Fatalf("unexpected type name %q", a.Name())
	}
}

func TestTypeByNameUnregistered(t *testing.T) {
	if _, ok := TypeByName("test:never-registered"); ok {
		t.Fatal("lookup of an unregistered name must report absence")
	}
}
