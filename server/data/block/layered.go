// Package block holds attribute data attached to block states that does not
// fit in the state itself. Every mutable attribute type has a corresponding
// immutable snapshot type; conversion between the two is explicit and always
// succeeds by copying.
package block

import "github.com/cubeworks/genesis/server/data/value"

// MaxLayers is the highest layer count a layered block may carry. Snow cover
// and similar stacking blocks use layer 1 through MaxLayers.
const MaxLayers = 8

// LayeredData is the mutable "layer" attribute of a block, used by blocks
// that stack in visible layers such as snow cover. The layer count is a
// bounded value in [1, MaxLayers].
type LayeredData struct {
	layer *value.Bounded[int]
}

// NewLayeredData creates LayeredData with the initial layer count passed. An
// error wrapping value.ErrOutOfRange is returned for counts outside of
// [1, MaxLayers].
func NewLayeredData(layer int) (*LayeredData, error) {
	b, err := value.NewBounded(layer, 1, MaxLayers)
	if err != nil {
		return nil, err
	}
	return &LayeredData{layer: b}, nil
}

// Layer returns the bounded layer count for in-place mutation.
func (d *LayeredData) Layer() *value.Bounded[int] {
	return d.layer
}

// Immutable returns an immutable snapshot of the data.
func (d *LayeredData) Immutable() ImmutableLayeredData {
	return ImmutableLayeredData{layer: d.layer.Immutable()}
}

// ImmutableLayeredData is the immutable snapshot of LayeredData. It exposes
// read access only.
type ImmutableLayeredData struct {
	layer value.ImmutableBounded[int]
}

// Layer returns the immutable bounded layer count.
func (d ImmutableLayeredData) Layer() value.ImmutableBounded[int] {
	return d.layer
}

// Mutable returns a mutable copy of the snapshot.
func (d ImmutableLayeredData) Mutable() *LayeredData {
	return &LayeredData{layer: d.layer.Mutable()}
}
