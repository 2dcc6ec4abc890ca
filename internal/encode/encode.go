// Package encode implements the TOON encoder core (spec §4.5): array form
// selection, object-entry emission with optional key folding, and scalar
// emission. One delimiter, taken from the options, is used for the whole
// call; no delimiter stack is kept.
package encode

import (
	"fmt"

	"github.com/bnomei/toon-go/internal/lex"
	"github.com/bnomei/toon-go/internal/opt"
	"github.com/bnomei/toon-go/internal/tval"
)

type encoder struct {
	w      *writer
	opts   opt.Encode
	delim  lex.Delimiter
	quotes *quoteCache
}

// Encode renders v to canonical-shaped TOON text per o (caller decides
// whether o itself is the canonical profile).
func Encode(v tval.Value, o opt.Encode) (string, error) {
	e := &encoder{
		w:      newWriter(o.Indent),
		opts:   o,
		delim:  o.Delimiter,
		quotes: newQuoteCache(),
	}
	if err := e.emitRoot(v); err != nil {
		return "", err
	}
	return e.w.String(), nil
}

// emitRoot dispatches on the root value's kind (spec §4.5.2).
func (e *encoder) emitRoot(v tval.Value) error {
	switch val := v.(type) {
	case *tval.Object:
		return e.emitObjectEntries(val, 0)
	case *tval.Array:
		return e.emitArray("", *val, 0)
	default:
		s, err := e.encodeScalar(v)
		if err != nil {
			return err
		}
		e.w.pushRaw(s)
		return nil
	}
}

// emitObjectEntries emits each entry of obj in insertion order at depth.
func (e *encoder) emitObjectEntries(obj *tval.Object, depth int) error {
	for _, pair := range obj.Pairs() {
		key, val := pair.Key, pair.Value

		if e.opts.KeyFolding == opt.KeyFoldingSafe {
			foldedKey, foldedVal, ok := e.foldChain(obj, key, val)
			if ok {
				key, val = foldedKey, foldedVal
			}
		}

		switch vv := val.(type) {
		case *tval.Object:
			if vv.Len() == 0 {
				e.w.push(e.encodeKey(key)+":", depth)
				continue
			}
			e.w.push(e.encodeKey(key)+":", depth)
			if err := e.emitObjectEntries(vv, depth+1); err != nil {
				return err
			}
		case *tval.Array:
			if err := e.emitArray(key, *vv, depth); err != nil {
				return err
			}
		default:
			s, err := e.encodeScalar(val)
			if err != nil {
				return err
			}
			e.w.push(e.encodeKey(key)+": "+s, depth)
		}
	}
	return nil
}

// foldChain implements key folding (spec §4.5.3): collapse a chain of
// single-entry objects into a dotted key, up to FlattenDepth segments,
// skipping the fold if the dotted key would collide with an existing
// sibling.
func (e *encoder) foldChain(parent *tval.Object, key string, val tval.Value) (string, tval.Value, bool) {
	if !lex.IsCanonicalIdentSegment(key) {
		return key, val, false
	}
	limit := e.opts.FlattenDepth
	if limit == 0 {
		limit = 1<<31 - 1
	}
	segments := []string{key}
	cur := val
	for len(segments) < limit {
		obj, ok := cur.(*tval.Object)
		if !ok || obj.Len() != 1 {
			break
		}
		pairs := obj.Pairs()
		seg := pairs[0].Key
		if !lex.IsCanonicalIdentSegment(seg) {
			break
		}
		segments = append(segments, seg)
		cur = pairs[0].Value
	}
	if len(segments) < 2 {
		return key, val, false
	}
	dotted := segments[0]
	for _, s := range segments[1:] {
		dotted += "." + s
	}
	for _, k := range parent.Keys() {
		if k != key && k == dotted {
			return key, val, false
		}
	}
	return dotted, cur, true
}

// emitArray selects and emits one of the three array forms (spec §4.5.4).
func (e *encoder) emitArray(key string, arr tval.Array, depth int) error {
	return e.emitArrayHeaderAndPayload("", key, arr, depth)
}

func (e *encoder) emitListItems(arr tval.Array, depth int) error {
	for _, item := range arr {
		if err := e.emitListItem(item, depth); err != nil {
			return err
		}
	}
	return nil
}

// emitListItem emits one list item per spec §4.5.5.
func (e *encoder) emitListItem(item tval.Value, depth int) error {
	switch v := item.(type) {
	case *tval.Array:
		return e.emitArrayAsListItem(*v, depth)
	case *tval.Object:
		return e.emitObjectAsListItem(v, depth)
	default:
		s, err := e.encodeScalar(item)
		if err != nil {
			return err
		}
		e.w.push("- "+s, depth)
		return nil
	}
}

// headerText renders an array header line (no trailing payload) for key
// (possibly empty, for anonymous array-valued list items) and arr.
func (e *encoder) headerText(key string, arr tval.Array, marker, fieldsPart string) string {
	k := ""
	if key != "" {
		k = e.encodeKey(key)
	}
	return fmt.Sprintf("%s[%d%s]%s:", k, len(arr), marker, fieldsPart)
}

// emitArrayHeaderAndPayload writes an array's header line with prefix
// (either "" at normal array position or "- " as a list item) and its
// payload, selecting inline/tabular/list form the same way emitArray does.
func (e *encoder) emitArrayHeaderAndPayload(prefix, key string, arr tval.Array, depth int) error {
	if len(arr) == 0 {
		e.w.push(prefix+e.headerText(key, arr, "", ""), depth)
		return nil
	}
	if allScalars(arr) {
		cells := make([]string, len(arr))
		for i, v := range arr {
			s, err := e.encodeScalar(v)
			if err != nil {
				return err
			}
			cells[i] = s
		}
		payload := joinWithDelim(cells, e.delim)
		e.w.push(prefix+e.headerText(key, arr, e.delim.Marker(), "")+" "+payload, depth)
		return nil
	}
	if fields, ok := tabularFields(arr); ok {
		encodedFields := make([]string, len(fields))
		for i, f := range fields {
			encodedFields[i] = e.encodeKey(f)
		}
		fieldsPart := "{" + joinWithDelim(encodedFields, e.delim) + "}"
		e.w.push(prefix+e.headerText(key, arr, e.delim.Marker(), fieldsPart), depth)
		for _, item := range arr {
			obj := item.(*tval.Object)
			cells := make([]string, len(fields))
			for i, f := range fields {
				v, _ := obj.Get(f)
				s, err := e.encodeScalar(v)
				if err != nil {
					return err
				}
				cells[i] = s
			}
			e.w.push(joinWithDelim(cells, e.delim), depth+1)
		}
		return nil
	}
	e.w.push(prefix+e.headerText(key, arr, "", ""), depth)
	return e.emitListItems(arr, depth+1)
}

func (e *encoder) emitArrayAsListItem(arr tval.Array, depth int) error {
	return e.emitArrayHeaderAndPayload("- ", "", arr, depth)
}

func (e *encoder) emitObjectAsListItem(obj *tval.Object, depth int) error {
	if obj.Len() == 0 {
		e.w.push("-", depth)
		return nil
	}
	pairs := obj.Pairs()
	first := pairs[0]
	switch v := first.Value.(type) {
	case *tval.Array:
		if err := e.emitArrayHeaderAndPayload("- ", first.Key, *v, depth); err != nil {
			return err
		}
	case *tval.Object:
		e.w.push("- "+e.encodeKey(first.Key)+":", depth)
		if err := e.emitObjectEntries(v, depth+1); err != nil {
			return err
		}
	default:
		s, err := e.encodeScalar(first.Value)
		if err != nil {
			return err
		}
		e.w.push("- "+e.encodeKey(first.Key)+": "+s, depth)
	}

	rest := tval.NewObject()
	for _, p := range pairs[1:] {
		rest.Set(p.Key, p.Value)
	}
	if rest.Len() > 0 {
		return e.emitObjectEntries(rest, depth+1)
	}
	return nil
}

func allScalars(arr tval.Array) bool {
	for _, v := range arr {
		if !tval.IsPrimitive(v) {
			return false
		}
	}
	return true
}

// tabularFields reports the shared field order if every element is a
// non-empty object sharing the same key set (order and identity) with
// every cell scalar (spec §4.5.4 rule 3).
func tabularFields(arr tval.Array) ([]string, bool) {
	first, ok := arr[0].(*tval.Object)
	if !ok || first.Len() == 0 {
		return nil, false
	}
	fields := first.Keys()
	for _, v := range first.Pairs() {
		if !tval.IsPrimitive(v.Value) {
			return nil, false
		}
	}
	for _, item := range arr[1:] {
		obj, ok := item.(*tval.Object)
		if !ok || obj.Len() != len(fields) {
			return nil, false
		}
		keys := obj.Keys()
		for i, f := range fields {
			if keys[i] != f {
				return nil, false
			}
		}
		for _, p := range obj.Pairs() {
			if !tval.IsPrimitive(p.Value) {
				return nil, false
			}
		}
	}
	out := make([]string, len(fields))
	copy(out, fields)
	return out, true
}

func joinWithDelim(cells []string, delim lex.Delimiter) string {
	if len(cells) == 0 {
		return ""
	}
	out := cells[0]
	for _, c := range cells[1:] {
		out += string(rune(delim)) + c
	}
	return out
}
