package docfmt

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
)

// DefaultMaxDepth bounds recursion during normalization. Graphs nested
// deeper than this collapse to a string leaf at the bound.
const DefaultMaxDepth = 10

// markerUnrepresentable stands in for a value whose type name and
// string form are both unrecoverable.
const markerUnrepresentable = "<Unrepresentable Object>"

// Mode selects how the normalizer treats mapping entries whose value
// normalizes to null. Listing-oriented callers keep them; detail-oriented
// callers drop them. Downstream consumers depend on both shapes, so the
// asymmetry is part of the contract.
type Mode int

const (
	// KeepNulls retains mapping entries with null values.
	KeepNulls Mode = iota
	// OmitNulls drops mapping entries whose value normalizes to null.
	OmitNulls
)

// Structs embedding test-double bookkeeping carry these fields; they
// track calls, not response data, and are never normalized.
var skippedFields = map[string]struct{}{
	"Mock":          {},
	"Calls":         {},
	"ExpectedCalls": {},
}

// Normalizer converts arbitrary source values into canonical values:
// nil, bool, int64, uint64, float64, string, *orderedmap.OrderedMap,
// or []any. The result is always directly JSON-serializable and holds
// no references to the source.
//
// Normalize is total. Panics raised by foreign code during field
// access, enum unwrapping, or String() are recovered locally and the
// offending sub-value is replaced by a fallback marker; one bad field
// never aborts its siblings.
type Normalizer struct {
	// MaxDepth bounds recursion. Zero means DefaultMaxDepth.
	MaxDepth int
	// Mode controls null handling in mappings.
	Mode Mode
	// Logger receives non-fatal diagnostics. Defaults to a no-op.
	Logger zerolog.Logger
}

// NewNormalizer returns a listing-mode normalizer with the default
// depth bound and a no-op diagnostics sink.
func NewNormalizer() *Normalizer {
	return &Normalizer{MaxDepth: DefaultMaxDepth, Logger: zerolog.Nop()}
}

// Normalize converts v into a canonical value. It never fails: values
// that cannot be faithfully represented degrade to string fallbacks.
// Normalizing an already-canonical value returns an equal value.
func (n *Normalizer) Normalize(v any) any {
	r := &run{n: n}
	return r.normalize(v, 0)
}

// run holds per-call state so concurrent Normalize calls on one
// Normalizer stay independent.
type run struct {
	n         *Normalizer
	depthHits int
}

func (r *run) maxDepth() int {
	if r.n.MaxDepth > 0 {
		return r.n.MaxDepth
	}
	return DefaultMaxDepth
}

func (r *run) normalize(v any, depth int) any {
	if depth > r.maxDepth() {
		r.depthHits++
		if r.depthHits == 1 {
			r.n.Logger.Warn().
				Int("max_depth", r.maxDepth()).
				Str("type", typeName(v)).
				Msg("max recursion depth reached, using string form")
		}
		return stringify(v)
	}

	switch Classify(v) {
	case KindPrimitive:
		return primitive(v)
	case KindEnum:
		u, ok := enumValue(v)
		if !ok {
			return fallbackMarker(v)
		}
		// Unwrapping counts against the depth bound: an accessor that
		// returns another enum (or itself) must still terminate.
		return r.normalize(u, depth+1)
	case KindMapping:
		return r.normalizeMapping(v, depth)
	case KindSequence:
		return r.normalizeSequence(v, depth)
	case KindStruct:
		return r.normalizeStruct(v, depth)
	default:
		return fallbackMarker(v)
	}
}

func (r *run) normalizeMapping(v any, depth int) any {
	out := orderedmap.New()
	if m, ok := v.(*orderedmap.OrderedMap); ok {
		for _, key := range m.Keys() {
			value, _ := m.Get(key)
			r.putEntry(out, key, value, depth)
		}
		return out
	}

	rv := deref(reflect.ValueOf(v))
	keys := make([]string, 0, rv.Len())
	values := make(map[string]reflect.Value, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		key := stringify(iter.Key().Interface())
		keys = append(keys, key)
		values[key] = iter.Value()
	}
	// Go map order is random; sort for a stable canonical shape.
	sort.Strings(keys)
	for _, key := range keys {
		r.putEntry(out, key, values[key].Interface(), depth)
	}
	return out
}

// putEntry normalizes one mapping entry. Func-valued entries are
// deferred computations and are skipped entirely, never invoked.
func (r *run) putEntry(out *orderedmap.OrderedMap, key string, value any, depth int) {
	if isComputed(value) {
		r.n.Logger.Debug().Str("key", key).Msg("skipping computed entry")
		return
	}
	normalized := r.normalize(value, depth+1)
	if normalized == nil && r.n.Mode == OmitNulls {
		return
	}
	out.Set(key, normalized)
}

func (r *run) normalizeSequence(v any, depth int) any {
	rv := deref(reflect.ValueOf(v))
	out := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out = append(out, r.normalize(rv.Index(i).Interface(), depth+1))
	}
	return out
}

func (r *run) normalizeStruct(v any, depth int) any {
	if f, ok := v.(Fielder); ok {
		fields, ok := namedFields(f)
		if !ok {
			return fallbackMarker(v)
		}
		out := orderedmap.New()
		for _, field := range fields {
			r.putEntry(out, field.Name, field.Value, depth)
		}
		return out
	}

	rv := deref(reflect.ValueOf(v))
	rt := rv.Type()
	out := orderedmap.New()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		if _, skip := skippedFields[sf.Name]; skip {
			continue
		}
		name, ok := fieldName(sf)
		if !ok {
			continue
		}
		value, ok := fieldValue(rv, i)
		if !ok {
			// Reading this field panicked; record a marker and move on.
			out.Set(name, markerUnrepresentable)
			continue
		}
		r.putEntry(out, name, value, depth)
	}
	return out
}

// fieldName resolves the serialized name of a struct field, honoring
// json tags the way the store SDKs declare their wire names. Reports
// false for fields tagged "-".
func fieldName(sf reflect.StructField) (string, bool) {
	tag := sf.Tag.Get("json")
	if tag == "" {
		return sf.Name, true
	}
	name := tag
	for i, c := range tag {
		if c == ',' {
			name = tag[:i]
			break
		}
	}
	if name == "-" {
		return "", false
	}
	if name == "" {
		return sf.Name, true
	}
	return name, true
}

func fieldValue(rv reflect.Value, i int) (out any, ok bool) {
	defer func() {
		if recover() != nil {
			out, ok = nil, false
		}
	}()
	return rv.Field(i).Interface(), true
}

func namedFields(f Fielder) (out []Field, ok bool) {
	defer func() {
		if recover() != nil {
			out, ok = nil, false
		}
	}()
	return f.NamedFields(), true
}

// isComputed reports whether a value is a deferred computation that
// must not be evaluated during normalization.
func isComputed(v any) bool {
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.Func
}

// primitive reduces a primitive-classified value to its canonical
// form: nil, bool, int64, uint64, float64, or string.
func primitive(v any) any {
	if v == nil {
		return nil
	}
	rv := deref(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nil
	}
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Slice:
		// []byte reads as text.
		return string(rv.Bytes())
	case reflect.Array:
		b := make([]byte, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			b[i] = byte(rv.Index(i).Uint())
		}
		return string(b)
	default:
		return stringify(v)
	}
}

// stringify renders any value as a string without ever panicking or
// walking the value's interior. Composites get a shallow summary:
// printing them in full would send fmt into unbounded recursion on a
// cyclic graph, and fmt has no cycle guard. Stringers and errors speak
// for themselves.
func stringify(v any) string {
	switch v.(type) {
	case fmt.Stringer, error:
		s, ok := safeString(v)
		if !ok {
			return markerUnrepresentable
		}
		return s
	}
	if rv := deref(reflect.ValueOf(v)); rv.IsValid() {
		switch rv.Kind() {
		case reflect.Slice:
			if rv.Type().Elem().Kind() == reflect.Uint8 {
				return string(rv.Bytes())
			}
			return fmt.Sprintf("<%s len=%d>", rv.Type(), rv.Len())
		case reflect.Array, reflect.Map:
			return fmt.Sprintf("<%s len=%d>", rv.Type(), rv.Len())
		case reflect.Struct:
			// A struct field may hold a cyclic composite.
			return "<" + rv.Type().String() + ">"
		}
	}
	s, ok := safeString(v)
	if !ok {
		return markerUnrepresentable
	}
	return s
}

func safeString(v any) (s string, ok bool) {
	defer func() {
		if recover() != nil {
			s, ok = "", false
		}
	}()
	if out, err := cast.ToStringE(v); err == nil {
		return out, true
	}
	return fmt.Sprint(v), true
}

// fallbackMarker builds the canonical stand-in for a value that could
// not be normalized, annotated with the type name when recoverable.
func fallbackMarker(v any) string {
	name, ok := safeTypeName(v)
	if !ok || name == "" {
		return markerUnrepresentable
	}
	return "<" + name + ">"
}

func typeName(v any) string {
	name, ok := safeTypeName(v)
	if !ok {
		return "unknown"
	}
	return name
}

func safeTypeName(v any) (name string, ok bool) {
	defer func() {
		if recover() != nil {
			name, ok = "", false
		}
	}()
	if v == nil {
		return "nil", true
	}
	return reflect.TypeOf(v).String(), true
}
