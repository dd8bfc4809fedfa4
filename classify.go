package docfmt

import (
	"fmt"
	"reflect"

	"github.com/keboola/go-utils/pkg/orderedmap"
)

// Kind is the classification of a source value. It decides how the
// normalizer walks the value.
type Kind int

const (
	// KindPrimitive covers nil, booleans, numbers, strings, and []byte.
	KindPrimitive Kind = iota
	// KindEnum covers values that expose a single discrete underlying
	// value, either via [Enumer] or as a defined string/integer type.
	KindEnum
	// KindMapping covers Go maps and *orderedmap.OrderedMap.
	KindMapping
	// KindSequence covers slices and arrays, except []byte.
	KindSequence
	// KindStruct covers values with named fields but no native
	// mapping or sequence interface, the usual shape of store-SDK
	// response objects.
	KindStruct
	// KindUnrepresentable covers everything else: funcs, channels,
	// live handles. Such values always normalize to a fallback marker.
	KindUnrepresentable
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindEnum:
		return "enum"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindStruct:
		return "struct"
	default:
		return "unrepresentable"
	}
}

// Enumer exposes the discrete underlying value of an enum-like type.
// Response types can implement it to control how their enums unwrap;
// defined string and integer types are detected without it.
type Enumer interface {
	EnumValue() any
}

// Field is a single named field of a source value.
type Field struct {
	Name  string
	Value any
}

// Fielder lets a response type enumerate its fields itself instead of
// being inspected through reflection. It is the seam for object
// families whose reflected shape is misleading (lazy handles, wrappers
// around foreign state).
type Fielder interface {
	NamedFields() []Field
}

// Classify tags a source value with the [Kind] that drives
// normalization. When a value satisfies more than one tag the
// precedence is fixed: Mapping > Sequence > Enum > Struct. Pointers
// and interfaces are dereferenced first; nil at any level classifies
// as primitive.
func Classify(v any) Kind {
	if v == nil {
		return KindPrimitive
	}
	if _, ok := v.(*orderedmap.OrderedMap); ok {
		return KindMapping
	}

	rv := deref(reflect.ValueOf(v))
	if !rv.IsValid() {
		return KindPrimitive
	}

	switch rv.Kind() {
	case reflect.Map:
		return KindMapping
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return KindPrimitive
		}
		return KindSequence
	case reflect.Bool:
		return KindPrimitive
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if _, ok := v.(Enumer); ok {
			return KindEnum
		}
		if rv.Type().PkgPath() != "" {
			// Defined type over a discrete kind: enum-like.
			return KindEnum
		}
		return KindPrimitive
	case reflect.Float32, reflect.Float64:
		return KindPrimitive
	case reflect.Struct:
		if _, ok := v.(Enumer); ok {
			return KindEnum
		}
		return KindStruct
	default:
		if _, ok := v.(Enumer); ok {
			return KindEnum
		}
		if _, ok := v.(Fielder); ok {
			return KindStruct
		}
		return KindUnrepresentable
	}
}

// deref follows pointers and interfaces down to the concrete value.
// Returns an invalid value for nil at any level.
func deref(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

// enumValue unwraps an enum-like value to its underlying primitive.
// Reports false if the accessor panicked.
func enumValue(v any) (out any, ok bool) {
	defer func() {
		if recover() != nil {
			out, ok = nil, false
		}
	}()
	if e, isEnumer := v.(Enumer); isEnumer {
		return e.EnumValue(), true
	}
	rv := deref(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if s, isStringer := v.(fmt.Stringer); isStringer {
			return s.String(), true
		}
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if s, isStringer := v.(fmt.Stringer); isStringer {
			return s.String(), true
		}
		return rv.Uint(), true
	default:
		return nil, false
	}
}
