package evaluator

import (
	"github.com/eladbash/jdx/pkg/predicate"
	"github.com/eladbash/jdx/pkg/types"
	"github.com/eladbash/jdx/pkg/value"
)

// applySegment applies one PathSegment to cur.
func applySegment(cur *value.Value, seg types.PathSegment) (*value.Value, *types.EvalError) {
	switch seg.Kind {
	case types.SegField:
		return applyField(cur, seg.Field)
	case types.SegIndex:
		return applyIndex(cur, seg.Index)
	case types.SegSlice:
		return applySlice(cur, seg.SliceLo, seg.SliceHi)
	case types.SegWildcard:
		return applyWildcard(cur)
	case types.SegPredicate:
		return applyPredicate(cur, seg)
	case types.SegRecurse:
		return applyRecurse(cur, seg.Field), nil
	default:
		return nil, types.NewEvalError(types.ErrTypeMismatch, "", "unknown path segment")
	}
}

func applyField(cur *value.Value, name string) (*value.Value, *types.EvalError) {
	switch cur.Kind() {
	case value.KindObject:
		obj, _ := cur.Object()
		if v, ok := obj.Get(name); ok {
			return v, nil
		}
		return value.Null, nil
	case value.KindArray:
		return nil, types.TypeMismatch("field("+name+")", "array")
	default:
		return nil, types.TypeMismatch("field("+name+")", cur.Kind().String())
	}
}

// normalizeIndex maps a signed index onto [0,len), or reports out-of-range.
// Negative indices count from the end.
func normalizeIndex(idx, length int) (int, bool) {
	if idx < 0 {
		idx += length
	}
	if idx < 0 || idx >= length {
		return 0, false
	}
	return idx, true
}

func applyIndex(cur *value.Value, idx int) (*value.Value, *types.EvalError) {
	if cur.Kind() != value.KindArray {
		return nil, types.TypeMismatch("index", cur.Kind().String())
	}
	arr, _ := cur.Array()
	i, ok := normalizeIndex(idx, len(arr))
	if !ok {
		return value.Null, nil // out-of-range degrades to Null, not an error
	}
	return arr[i], nil
}

func applySlice(cur *value.Value, lo, hi *int) (*value.Value, *types.EvalError) {
	if cur.Kind() != value.KindArray {
		return nil, types.TypeMismatch("slice", cur.Kind().String())
	}
	arr, _ := cur.Array()
	n := len(arr)

	loV, hiV := 0, n
	if lo != nil {
		loV = clampSliceBound(*lo, n)
	}
	if hi != nil {
		hiV = clampSliceBound(*hi, n)
	}
	if loV > hiV {
		loV = hiV
	}
	return value.NewArray(arr[loV:hiV]), nil
}

func clampSliceBound(b, n int) int {
	if b < 0 {
		b += n
	}
	if b < 0 {
		return 0
	}
	if b > n {
		return n
	}
	return b
}

func applyWildcard(cur *value.Value) (*value.Value, *types.EvalError) {
	switch cur.Kind() {
	case value.KindObject:
		obj, _ := cur.Object()
		return value.NewArray(obj.Values()), nil
	case value.KindArray:
		return cur, nil // already "all elements"
	default:
		return nil, types.TypeMismatch("wildcard", cur.Kind().String())
	}
}

func applyPredicate(cur *value.Value, seg types.PathSegment) (*value.Value, *types.EvalError) {
	if cur.Kind() != value.KindArray {
		return nil, types.TypeMismatch("predicate", cur.Kind().String())
	}
	arr, _ := cur.Array()
	var out []*value.Value
	for _, elem := range arr {
		if matchPredicate(elem, seg) {
			out = append(out, elem)
		}
	}
	return value.NewArray(out), nil
}

// matchPredicate implements the "element.f op lit" / "element op lit"
// comparison, shared with :filter via pkg/predicate.
func matchPredicate(elem *value.Value, seg types.PathSegment) bool {
	return predicate.Match(elem, seg.Field, seg.Op, seg.Literal)
}

// applyRecurse descends at all depths collecting matches. With a field
// name it gathers every value found under that key at any depth, in
// document order; with no field name it gathers every node encountered
// below the root.
func applyRecurse(cur *value.Value, field string) *value.Value {
	var out []*value.Value
	collectRecurse(cur, field, &out)
	return value.NewArray(out)
}

func collectRecurse(v *value.Value, field string, out *[]*value.Value) {
	switch v.Kind() {
	case value.KindObject:
		obj, _ := v.Object()
		obj.Range(func(key string, child *value.Value) bool {
			if field == "" {
				*out = append(*out, child)
			} else if key == field {
				*out = append(*out, child)
			}
			collectRecurse(child, field, out)
			return true
		})
	case value.KindArray:
		arr, _ := v.Array()
		for _, child := range arr {
			if field == "" {
				*out = append(*out, child)
			}
			collectRecurse(child, field, out)
		}
	}
}
