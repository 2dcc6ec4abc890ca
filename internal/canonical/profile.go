// Package canonical implements the stricter canonical profile layered on
// top of the encoder/decoder (spec §4.7): the unique TOON rendering of a
// value tree, and a validator that checks text is already in that form.
package canonical

import (
	"sort"

	"github.com/bnomei/toon-go/internal/lex"
	"github.com/bnomei/toon-go/internal/opt"
	"github.com/bnomei/toon-go/internal/tval"
)

// EncodeOptions returns the fixed options canonical output is always
// rendered with: two-space indent, comma delimiter, no key folding. These
// are not configurable — canonical form is by definition the one rendering
// a value tree has, independent of any caller preference.
func EncodeOptions() opt.Encode {
	return opt.Encode{Indent: 2, Delimiter: lex.Comma, KeyFolding: opt.KeyFoldingOff}
}

// DecodeOptions returns the fixed options canonical input is parsed with.
func DecodeOptions() opt.Decode {
	return opt.Decode{Indent: 2, Strict: true, ExpandPaths: opt.PathExpansionOff}
}

// SortKeys returns a copy of obj with every object's entries reordered into
// byte-lexicographic key order, recursively. The encoder itself preserves
// insertion order (spec §4.5.1 default); canonical form instead demands
// sorted keys (spec §4.7), so sorting is a separate, explicit step applied
// only on the canonicalization path.
func SortKeys(v tval.Value) tval.Value {
	switch val := v.(type) {
	case *tval.Object:
		keys := append([]string(nil), val.Keys()...)
		sort.Strings(keys)
		out := tval.NewObject()
		for _, k := range keys {
			child, _ := val.Get(k)
			out.Set(k, SortKeys(child))
		}
		return out
	case *tval.Array:
		out := make(tval.Array, len(*val))
		for i, item := range *val {
			out[i] = SortKeys(item)
		}
		return &out
	default:
		return v
	}
}
