// Package tval defines the value tree shared by the TOON encoder, decoder,
// and bridge. A Value is the dynamic type of one of: nil, bool, int64,
// uint64, float64 (always finite), string, *Array, or *Object.
package tval

import "fmt"

// Value is any TOON-encodable datum. Its dynamic type is always one of the
// eight variants named above; no other concrete type ever occupies it.
type Value = interface{}

// Array is an ordered list of values.
type Array []Value

// Pair is one entry of an Object, in insertion order.
type Pair struct {
	Key   string
	Value Value
}

// Object is an insertion-ordered string-keyed map. The zero value is an
// empty, usable object.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject returns an empty Object ready for use.
func NewObject() *Object {
	return &Object{values: map[string]Value{}}
}

// Len returns the number of entries.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in insertion order. Callers must not mutate it.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return o.keys
}

// Get returns the value for key and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Set inserts or updates key. New keys are appended at the end; existing
// keys keep their original position (matches the decoder's "last write
// wins, position unchanged" rule for repeated tabular fields).
func (o *Object) Set(key string, v Value) {
	if o.values == nil {
		o.values = map[string]Value{}
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Delete removes key if present.
func (o *Object) Delete(key string) {
	if o == nil {
		return
	}
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Pairs returns the entries as a slice of Pair, in order.
func (o *Object) Pairs() []Pair {
	if o == nil {
		return nil
	}
	out := make([]Pair, len(o.keys))
	for i, k := range o.keys {
		out[i] = Pair{Key: k, Value: o.values[k]}
	}
	return out
}

// IsPrimitive reports whether v is null, bool, a number, or a string.
func IsPrimitive(v Value) bool {
	if v == nil {
		return true
	}
	switch v.(type) {
	case bool, int64, uint64, float64, string:
		return true
	default:
		return false
	}
}

// IsArray reports whether v is a *Array.
func IsArray(v Value) bool {
	_, ok := v.(*Array)
	return ok
}

// IsObject reports whether v is a *Object.
func IsObject(v Value) bool {
	_, ok := v.(*Object)
	return ok
}

// KindName returns a short, stable name for v's variant, used in error
// messages.
func KindName(v Value) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case int64:
		return "int64"
	case uint64:
		return "uint64"
	case float64:
		return "float64"
	case string:
		return "string"
	case *Array:
		return "array"
	case *Object:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Equal reports deep structural equality between two values, including
// object key order. Intended for round-trip tests.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case *Array:
		bv, ok := b.(*Array)
		if !ok || len(*av) != len(*bv) {
			return false
		}
		for i := range *av {
			if !Equal((*av)[i], (*bv)[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv, ok := b.(*Object)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		ak, bk := av.Keys(), bv.Keys()
		for i := range ak {
			if ak[i] != bk[i] {
				return false
			}
			va, _ := av.Get(ak[i])
			vb, _ := bv.Get(bk[i])
			if !Equal(va, vb) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
