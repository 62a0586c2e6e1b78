// Package binding implements the enum model binder and its provider.
//
// An "enum" here is a named string-backed Go type with a closed set of
// defined values. Types are registered once at startup; the provider then
// hands out a binder for any registered type, and binding rejects raw
// values outside the defined set instead of silently coercing them.
package binding

import (
	"reflect"
	"sync"

	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/zerr"
)

// Registry maps enum types to their defined value sets.
type Registry struct {
	// mu guards write-side consistency.
	mu sync.Mutex
	// m maps reflect.Type to map[string]reflect.Value.
	m sync.Map
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterValues registers the defined values of an enum type. The type is
// inferred from the first value; all values must share it and it must have
// string kind. Re-registration of the same type replaces nothing: the
// first registration wins.
func RegisterValues[E ~string](r *Registry, values ...E) error {
	if len(values) == 0 {
		return zerr.New("enum registration requires at least one value")
	}

	t := reflect.TypeOf(values[0])
	defined := make(map[string]reflect.Value, len(values))
	for _, v := range values {
		defined[string(v)] = reflect.ValueOf(v)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.m.LoadOrStore(t, defined)
	return nil
}

// lookup returns the defined value set for t, or false when t was never
// registered.
func (r *Registry) lookup(t reflect.Type) (map[string]reflect.Value, bool) {
	v, ok := r.m.Load(t)
	if !ok {
		return nil, false
	}
	return v.(map[string]reflect.Value), true
}

// BinderFor returns a binder for the given type, or ErrNotAnEnum when the
// type was never registered. This is the provider entry point: callers ask
// for a binder per target type, not per request.
func (r *Registry) BinderFor(t reflect.Type) (*EnumBinder, error) {
	defined, ok := r.lookup(t)
	if !ok {
		return nil, zerr.With(domain.ErrNotAnEnum, "type", t.String())
	}
	return &EnumBinder{typ: t, defined: defined}, nil
}
