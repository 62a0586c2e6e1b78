package binding

import (
	"reflect"

	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnumBinder converts raw string values into one enum type's values.
// A binder is safe for concurrent use; the defined set is never mutated
// after construction.
type EnumBinder struct {
	typ     reflect.Type
	defined map[string]reflect.Value
}

// Type returns the enum type this binder targets.
func (b *EnumBinder) Type() reflect.Type {
	return b.typ
}

// Bind converts raw into the target enum type. Undefined values return
// ErrUndefinedEnumValue; the raw value is never coerced through.
func (b *EnumBinder) Bind(raw string) (any, error) {
	v, ok := b.defined[raw]
	if !ok {
		return nil, zerr.With(zerr.With(domain.ErrUndefinedEnumValue, "value", raw), "type", b.typ.String())
	}
	return v.Interface(), nil
}

// BindTo binds raw into dst, which must be a non-nil pointer to the
// binder's enum type.
func (b *EnumBinder) BindTo(raw string, dst any) error {
	v, err := b.Bind(raw)
	if err != nil {
		return err
	}

	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Type() != b.typ {
		return zerr.With(zerr.New("destination is not a pointer to the enum type"), "type", b.typ.String())
	}
	rv.Elem().Set(reflect.ValueOf(v))
	return nil
}
