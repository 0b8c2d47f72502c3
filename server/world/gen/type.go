package gen

import (
	"errors"
	"fmt"
	"sync"
)

// ErrConflict is returned when a populator type name is registered twice. The
// first registration stays in place.
var ErrConflict = errors.New("populator type name already registered")

// Type is an immutable, globally registered tag identifying a class of
// populators across plugins. Identity is by name: two lookups of the same
// name yield the same *Type. Types are registered during startup and plugin
// load and never removed afterwards.
type Type struct {
	name string
}

// Name returns the name the type was registered under.
func (t *Type) Name() string {
	return t.name
}

// String converts the Type to a readable string.
func (t *Type) String() string {
	return t.name
}

var (
	typesMu sync.RWMutex
	types   = map[string]*Type{}
)

// RegisterType registers a populator type under the name passed and returns
// it. Registering a name twice fails with an error wrapping ErrConflict,
// leaving the existing registration untouched.
func RegisterType(name string) (*Type, error) {
	typesMu.Lock()
	defer typesMu.Unlock()
	if _, ok := types[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrConflict, name)
	}
	t := &Type{name: name}
	types[name] = t
	return t, nil
}

// MustRegisterType registers a populator type and panics on conflict. It is
// intended for package init registration of built-in types, where a conflict
// is a programming error.
func MustRegisterType(name string) *Type {
	t, err := RegisterType(name)
	if err != nil {
		panic(err)
	}
	return t
}

// TypeByName looks up a registered populator type. Lookups never fail after
// the registration phase completes; the second return value is false only
// for names never registered.
func TypeByName(name string) (*Type, bool) {
	typesMu.RLock()
	defer typesMu.RUnlock()
	t, ok := types[name]
	return t, ok
}
