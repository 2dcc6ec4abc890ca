package decode

import (
	"fmt"

	"github.com/bnomei/toon-go/internal/tval"
)

// mergePath expands a dotted key's segments into nested objects rooted at
// obj, per spec §4.4.6. Object/Object conflicts merge recursively;
// Object/Scalar conflicts error in strict mode and replace (last write
// wins) otherwise.
func mergePath(obj *tval.Object, segments []string, val tval.Value, strict bool) error {
	cur := obj
	for _, seg := range segments[:len(segments)-1] {
		existing, ok := cur.Get(seg)
		if !ok {
			child := tval.NewObject()
			cur.Set(seg, child)
			cur = child
			continue
		}
		childObj, isObj := existing.(*tval.Object)
		if !isObj {
			if strict {
				return fmt.Errorf("path expansion conflict at %q: existing scalar value", seg)
			}
			child := tval.NewObject()
			cur.Set(seg, child)
			cur = child
			continue
		}
		cur = childObj
	}

	last := segments[len(segments)-1]
	existing, ok := cur.Get(last)
	if ok {
		existingObj, existingIsObj := existing.(*tval.Object)
		valObj, valIsObj := val.(*tval.Object)
		if existingIsObj && valIsObj {
			mergeObjects(existingObj, valObj)
			return nil
		}
		if strict {
			return fmt.Errorf("path expansion conflict at %q", last)
		}
	}
	cur.Set(last, val)
	return nil
}

// mergeObjects merges src into dst in place, recursing into matching
// nested objects and otherwise overwriting (last write wins).
func mergeObjects(dst, src *tval.Object) {
	for _, k := range src.Keys() {
		v, _ := src.Get(k)
		if existing, ok := dst.Get(k); ok {
			if eo, isObj := existing.(*tval.Object); isObj {
				if vo, vIsObj := v.(*tval.Object); vIsObj {
					mergeObjects(eo, vo)
					continue
				}
			}
		}
		dst.Set(k, v)
	}
}
