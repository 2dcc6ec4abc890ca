// Package bridge implements the reflection-based conversion between the
// value tree (internal/tval) and arbitrary user Go types (spec §4.6),
// mirroring the teacher's normalize/assignResult glue but generalized from
// map[string]interface{}/[]interface{} to any struct, slice, map, and
// pointer shape reachable by reflection.
package bridge

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/bnomei/toon-go/internal/tval"
)

// ToValue converts an arbitrary Go value into the value tree. Numbers
// follow the bridge contract: negative and representable as int64 become
// int64; non-negative and representable as uint64 become uint64;
// otherwise float64 (finite only — NaN/±Inf become nil, matching the
// encoder's "non-finite floats emit as null" rule, spec §4.5.6).
func ToValue(v interface{}) (tval.Value, error) {
	if v == nil {
		return nil, nil
	}
	if val, ok := v.(tval.Value); ok {
		switch val.(type) {
		case *tval.Object, *tval.Array, nil, bool, int64, uint64, float64, string:
			return val, nil
		}
	}
	return toValue(reflect.ValueOf(v))
}

func toValue(rv reflect.Value) (tval.Value, error) {
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Invalid:
		return nil, nil
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < 0 {
			return n, nil
		}
		return uint64(n), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, nil
		}
		// Integer-valued floats within float64's exact-integer range
		// (±2^53) round-trip through int64/uint64 cleanly; beyond that,
		// keep the float so no precision is silently lost.
		if f == math.Trunc(f) && f >= -9.007199254740992e15 && f <= 9.007199254740992e15 {
			if f < 0 {
				return int64(f), nil
			}
			return uint64(f), nil
		}
		return f, nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return byteSliceToArray(rv.Bytes()), nil
		}
		return sliceToArray(rv)
	case reflect.Map:
		return mapToObject(rv)
	case reflect.Struct:
		return structToObject(rv)
	default:
		return nil, fmt.Errorf("bridge: unsupported type %s", rv.Type())
	}
}

// byteSliceToArray renders a byte string as an array of small unsigned
// integers, per the bridge contract.
func byteSliceToArray(b []byte) *tval.Array {
	out := make(tval.Array, len(b))
	for i, c := range b {
		out[i] = uint64(c)
	}
	return &out
}

func sliceToArray(rv reflect.Value) (tval.Value, error) {
	n := rv.Len()
	out := make(tval.Array, n)
	for i := 0; i < n; i++ {
		v, err := toValue(rv.Index(i))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return &out, nil
}

func mapToObject(rv reflect.Value) (tval.Value, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("bridge: map key type %s is not string", rv.Type().Key())
	}
	keys := rv.MapKeys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	// Deterministic key order for maps, which Go otherwise iterates
	// unordered; objects built from structs instead follow field order.
	sort.Strings(names)
	out := tval.NewObject()
	for _, name := range names {
		v, err := toValue(rv.MapIndex(reflect.ValueOf(name)))
		if err != nil {
			return nil, err
		}
		out.Set(name, v)
	}
	return out, nil
}

func structToObject(rv reflect.Value) (tval.Value, error) {
	t := rv.Type()
	out := tval.NewObject()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue // unexported
		}
		name, omitempty, skip := fieldTag(field)
		if skip {
			continue
		}
		fv := rv.Field(i)
		if omitempty && isEmptyValue(fv) {
			continue
		}
		v, err := toValue(fv)
		if err != nil {
			return nil, err
		}
		out.Set(name, v)
	}
	return out, nil
}

// fieldTag reads the `toon:"name,omitempty"` tag, falling back to the
// field's own name (unchanged) when absent.
func fieldTag(f reflect.StructField) (name string, omitempty bool, skip bool) {
	tag := f.Tag.Get("toon")
	if tag == "" {
		return f.Name, false, false
	}
	if tag == "-" {
		return "", false, true
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		name = f.Name
	}
	for _, p := range parts[1:] {
		if p == "omitempty" {
			omitempty = true
		}
	}
	return name, omitempty, false
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	default:
		return false
	}
}
