package bridge

import (
	"fmt"
	"reflect"

	"github.com/bnomei/toon-go/internal/tval"
)

// FromValue populates target, which must be a non-nil pointer, from val.
// All other behavior (deserializing into fixed-width integer types)
// clamps with range checks and errors on overflow, per the bridge
// contract (spec §4.6).
func FromValue(val tval.Value, target interface{}) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("bridge: target must be a non-nil pointer, got %T", target)
	}
	return assign(val, rv.Elem())
}

func assign(val tval.Value, dst reflect.Value) error {
	if dst.Kind() == reflect.Ptr {
		if val == nil {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return assign(val, dst.Elem())
	}

	if dst.Kind() == reflect.Interface && dst.NumMethod() == 0 {
		dst.Set(reflect.ValueOf(toNative(val)))
		return nil
	}

	switch v := val.(type) {
	case nil:
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	case bool:
		if dst.Kind() != reflect.Bool {
			return fmt.Errorf("bridge: cannot assign bool into %s", dst.Type())
		}
		dst.SetBool(v)
		return nil
	case int64:
		return assignInt(v, dst)
	case uint64:
		return assignUint(v, dst)
	case float64:
		return assignFloat(v, dst)
	case string:
		if dst.Kind() != reflect.String {
			return fmt.Errorf("bridge: cannot assign string into %s", dst.Type())
		}
		dst.SetString(v)
		return nil
	case *tval.Array:
		return assignArray(*v, dst)
	case *tval.Object:
		return assignObject(v, dst)
	default:
		return fmt.Errorf("bridge: unrecognized value kind %T", val)
	}
}

// toNative converts val into the nearest plain Go type (map/[]interface{}
// /scalars), used when the destination is a bare interface{}.
func toNative(val tval.Value) interface{} {
	switch v := val.(type) {
	case *tval.Array:
		out := make([]interface{}, len(*v))
		for i, item := range *v {
			out[i] = toNative(item)
		}
		return out
	case *tval.Object:
		out := make(map[string]interface{}, v.Len())
		for _, p := range v.Pairs() {
			out[p.Key] = toNative(p.Value)
		}
		return out
	default:
		return v
	}
}

func assignInt(n int64, dst reflect.Value) error {
	switch dst.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if dst.OverflowInt(n) {
			return fmt.Errorf("bridge: value %d overflows %s", n, dst.Type())
		}
		dst.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if n < 0 {
			return fmt.Errorf("bridge: negative value %d cannot assign into %s", n, dst.Type())
		}
		if dst.OverflowUint(uint64(n)) {
			return fmt.Errorf("bridge: value %d overflows %s", n, dst.Type())
		}
		dst.SetUint(uint64(n))
	case reflect.Float32, reflect.Float64:
		dst.SetFloat(float64(n))
	default:
		return fmt.Errorf("bridge: cannot assign integer into %s", dst.Type())
	}
	return nil
}

func assignUint(n uint64, dst reflect.Value) error {
	switch dst.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if dst.OverflowUint(n) {
			return fmt.Errorf("bridge: value %d overflows %s", n, dst.Type())
		}
		dst.SetUint(n)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n > (1<<63)-1 || dst.OverflowInt(int64(n)) {
			return fmt.Errorf("bridge: value %d overflows %s", n, dst.Type())
		}
		dst.SetInt(int64(n))
	case reflect.Float32, reflect.Float64:
		dst.SetFloat(float64(n))
	default:
		return fmt.Errorf("bridge: cannot assign unsigned integer into %s", dst.Type())
	}
	return nil
}

func assignFloat(f float64, dst reflect.Value) error {
	switch dst.Kind() {
	case reflect.Float32, reflect.Float64:
		if dst.OverflowFloat(f) {
			return fmt.Errorf("bridge: value %g overflows %s", f, dst.Type())
		}
		dst.SetFloat(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if f != float64(int64(f)) {
			return fmt.Errorf("bridge: non-integral value %g cannot assign into %s", f, dst.Type())
		}
		return assignInt(int64(f), dst)
	default:
		return fmt.Errorf("bridge: cannot assign float into %s", dst.Type())
	}
	return nil
}

func assignArray(arr tval.Array, dst reflect.Value) error {
	switch dst.Kind() {
	case reflect.Slice:
		out := reflect.MakeSlice(dst.Type(), len(arr), len(arr))
		for i, item := range arr {
			if err := assign(item, out.Index(i)); err != nil {
				return err
			}
		}
		dst.Set(out)
		return nil
	case reflect.Array:
		if dst.Len() != len(arr) {
			return fmt.Errorf("bridge: array length mismatch: have %d, want %d", len(arr), dst.Len())
		}
		for i, item := range arr {
			if err := assign(item, dst.Index(i)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("bridge: cannot assign array into %s", dst.Type())
	}
}

func assignObject(obj *tval.Object, dst reflect.Value) error {
	switch dst.Kind() {
	case reflect.Map:
		if dst.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("bridge: map key type %s is not string", dst.Type().Key())
		}
		out := reflect.MakeMapWithSize(dst.Type(), obj.Len())
		elemType := dst.Type().Elem()
		for _, p := range obj.Pairs() {
			ev := reflect.New(elemType).Elem()
			if err := assign(p.Value, ev); err != nil {
				return err
			}
			out.SetMapIndex(reflect.ValueOf(p.Key).Convert(dst.Type().Key()), ev)
		}
		dst.Set(out)
		return nil
	case reflect.Struct:
		return assignStruct(obj, dst)
	default:
		return fmt.Errorf("bridge: cannot assign object into %s", dst.Type())
	}
}

func assignStruct(obj *tval.Object, dst reflect.Value) error {
	t := dst.Type()
	byName := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		name, _, skip := fieldTag(f)
		if skip {
			continue
		}
		byName[name] = i
	}
	for _, p := range obj.Pairs() {
		idx, ok := byName[p.Key]
		if !ok {
			continue // unknown field: ignored, not an error
		}
		if err := assign(p.Value, dst.Field(idx)); err != nil {
			return fmt.Errorf("field %q: %w", p.Key, err)
		}
	}
	return nil
}
