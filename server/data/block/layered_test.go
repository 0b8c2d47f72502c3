package block

import (
	"errors"
	"testing"

	"github.com/cubeworks/genesis/server/data/value"
)

func TestLayeredDataRoundTrip(t *testing.T) {
	d, err := NewLayeredData(3)
	if err != nil {
		t.Fatalf("new layered data: %v", err)
	}
	snap := d.Immutable()

	if err := d.Layer().Set(MaxLayers); err != nil {
		t.Fatalf("set layer: %v", err)
	}
	if snap.Layer().Value() != 3 {
		t.Fatalf("snapshot layer changed, got %d", snap.Layer().Value())
	}

	m := snap.Mutable()
	if m.Layer().Value() != 3 {
		t.Fatalf("mutable copy layer: expected 3, got %d", m.Layer().Value())
	}
}

func TestLayeredDataRange(t *testing.T) {
	if _, err := NewLayeredData(0); !errors.Is(err, value.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for layer 0, got %v", err)
	}
	if _, err := NewLayeredData(MaxLayers + 1); !errors.Is(err, value.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange above MaxLayers, got %v", err)
	}
	d, err := NewLayeredData(1)
	if err != nil {
		t.Fatalf("new layered data: %v", err)
	}
	if err := d.Layer().Set(MaxLayers + 1); !errors.Is(err, value.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange setting above MaxLayers, got %v", err)
	}
	if d.Layer().Value() != 1 {
		t.Fatalf("layer changed after failed set, got %d", d.Layer().Value())
	}
}
