package transforms

import (
	"sort"
	"unicode/utf8"

	"github.com/eladbash/jdx/pkg/predicate"
	"github.com/eladbash/jdx/pkg/types"
	"github.com/eladbash/jdx/pkg/value"
)

func keysTransform(_ types.TransformStep, cur *value.Value) (*value.Value, *types.EvalError) {
	obj, ok := cur.Object()
	if !ok {
		return nil, types.TypeMismatch("keys", cur.Kind().String())
	}
	keys := obj.Keys()
	out := make([]*value.Value, len(keys))
	for i, k := range keys {
		out[i] = value.NewString(k)
	}
	return value.NewArray(out), nil
}

func valuesTransform(_ types.TransformStep, cur *value.Value) (*value.Value, *types.EvalError) {
	obj, ok := cur.Object()
	if !ok {
		return nil, types.TypeMismatch("values", cur.Kind().String())
	}
	return value.NewArray(obj.Values()), nil
}

func countTransform(_ types.TransformStep, cur *value.Value) (*value.Value, *types.EvalError) {
	switch cur.Kind() {
	case value.KindArray:
		arr, _ := cur.Array()
		return value.NewNumber(float64(len(arr))), nil
	case value.KindObject:
		obj, _ := cur.Object()
		return value.NewNumber(float64(obj.Len())), nil
	case value.KindString:
		s, _ := cur.Str()
		return value.NewNumber(float64(utf8.RuneCountInString(s))), nil
	default:
		return value.NewNumber(1), nil
	}
}

// flattenTransform concatenates one level of nested arrays.
func flattenTransform(_ types.TransformStep, cur *value.Value) (*value.Value, *types.EvalError) {
	if cur.Kind() != value.KindArray {
		return nil, types.TypeMismatch("flatten", cur.Kind().String())
	}
	arr, _ := cur.Array()
	var out []*value.Value
	for _, e := range arr {
		if sub, ok := e.Array(); ok {
			out = append(out, sub...)
		} else {
			out = append(out, e)
		}
	}
	return value.NewArray(out), nil
}

func pickTransform(step types.TransformStep, cur *value.Value) (*value.Value, *types.EvalError) {
	return mapObjects(cur, "pick", func(obj *value.Object) *value.Value {
		out := value.NewOrderedObject()
		for _, f := range step.Args {
			if v, ok := obj.Get(f); ok {
				out.Set(f, v)
			}
		}
		return value.NewObject(out)
	})
}

func omitTransform(step types.TransformStep, cur *value.Value) (*value.Value, *types.EvalError) {
	skip := make(map[string]bool, len(step.Args))
	for _, f := range step.Args {
		skip[f] = true
	}
	return mapObjects(cur, "omit", func(obj *value.Object) *value.Value {
		out := value.NewOrderedObject()
		obj.Range(func(k string, v *value.Value) bool {
			if !skip[k] {
				out.Set(k, v)
			}
			return true
		})
		return value.NewObject(out)
	})
}

// mapObjects applies fn to cur (a single Object) or to every element of cur
// (an Array of Objects), matching :pick/:omit's "Array of Objects -> Array
// ...; single Object -> single projected Object" contract.
func mapObjects(cur *value.Value, name string, fn func(*value.Object) *value.Value) (*value.Value, *types.EvalError) {
	switch cur.Kind() {
	case value.KindObject:
		obj, _ := cur.Object()
		return fn(obj), nil
	case value.KindArray:
		arr, _ := cur.Array()
		out := make([]*value.Value, 0, len(arr))
		for _, e := range arr {
			obj, ok := e.Object()
			if !ok {
				return nil, types.TypeMismatch(name, e.Kind().String())
			}
			out = append(out, fn(obj))
		}
		return value.NewArray(out), nil
	default:
		return nil, types.TypeMismatch(name, cur.Kind().String())
	}
}

// sortTransform sorts a copy of the array, stably, by an optional field.
// Missing or incomparable sort keys (those whose kind differs from the
// first present key's kind) sort last.
func sortTransform(step types.TransformStep, cur *value.Value) (*value.Value, *types.EvalError) {
	if cur.Kind() != value.KindArray {
		return nil, types.TypeMismatch("sort", cur.Kind().String())
	}
	arr, _ := cur.Array()
	var field string
	if len(step.Args) > 0 {
		field = step.Args[0]
	}

	keys := make([]*value.Value, len(arr))
	present := make([]bool, len(arr))
	var dominant value.Kind
	dominantSet := false

	for i, e := range arr {
		var k *value.Value
		if field != "" {
			if obj, ok := e.Object(); ok {
				if v, ok2 := obj.Get(field); ok2 {
					k = v
				}
			}
		} else {
			k = e
		}
		if k != nil && !k.IsNull() {
			keys[i] = k
			present[i] = true
			if !dominantSet {
				dominant = k.Kind()
				dominantSet = true
			}
		}
	}

	sortsLast := make([]bool, len(arr))
	for i := range arr {
		sortsLast[i] = !present[i] || keys[i].Kind() != dominant
	}

	idx := make([]int, len(arr))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		i, j := idx[a], idx[b]
		if sortsLast[i] || sortsLast[j] {
			return !sortsLast[i] && sortsLast[j]
		}
		cmp, _ := keys[i].Compare(keys[j])
		return cmp < 0
	})

	out := make([]*value.Value, len(arr))
	for i, j := range idx {
		out[i] = arr[j]
	}
	return value.NewArray(out), nil
}

// uniqTransform dedups by structural equality, first occurrence wins.
func uniqTransform(_ types.TransformStep, cur *value.Value) (*value.Value, *types.EvalError) {
	if cur.Kind() != value.KindArray {
		return nil, types.TypeMismatch("uniq", cur.Kind().String())
	}
	arr, _ := cur.Array()
	var out []*value.Value
	for _, e := range arr {
		dup := false
		for _, o := range out {
			if o.Equal(e) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, e)
		}
	}
	return value.NewArray(out), nil
}

// groupByTransform groups an Array of Objects by the stringified value of
// field; group key order is first-appearance order, via Object's
// overwrite-preserves-position Set.
func groupByTransform(step types.TransformStep, cur *value.Value) (*value.Value, *types.EvalError) {
	if cur.Kind() != value.KindArray {
		return nil, types.TypeMismatch("group_by", cur.Kind().String())
	}
	if len(step.Args) == 0 {
		return nil, types.BadTransformArgs("group_by", "requires a field name argument")
	}
	field := step.Args[0]
	arr, _ := cur.Array()

	groups := value.NewOrderedObject()
	for _, e := range arr {
		obj, ok := e.Object()
		if !ok {
			return nil, types.TypeMismatch("group_by", e.Kind().String())
		}
		var keyVal *value.Value
		if v, ok2 := obj.Get(field); ok2 {
			keyVal = v
		} else {
			keyVal = value.Null
		}
		key := value.Stringify(keyVal)
		if existing, ok := groups.Get(key); ok {
			members, _ := existing.Array()
			groups.Set(key, value.NewArray(append(append([]*value.Value{}, members...), e)))
		} else {
			groups.Set(key, value.NewArray([]*value.Value{e}))
		}
	}
	return value.NewObject(groups), nil
}

// filterTransform applies the shared predicate grammar's comparison via
// pkg/predicate — the same Match that bracket predicates use, so
// `.arr[p]` and `.arr :filter p` are provably equivalent.
func filterTransform(step types.TransformStep, cur *value.Value) (*value.Value, *types.EvalError) {
	if cur.Kind() != value.KindArray {
		return nil, types.TypeMismatch("filter", cur.Kind().String())
	}
	if step.Predicate == nil {
		return nil, types.BadTransformArgs("filter", "missing predicate")
	}
	arr, _ := cur.Array()
	var out []*value.Value
	for _, e := range arr {
		if predicate.Match(e, step.Predicate.Field, step.Predicate.Op, step.Predicate.Literal) {
			out = append(out, e)
		}
	}
	return value.NewArray(out), nil
}

// aggregate implements :sum/:avg/:min/:max, each over an Array of Numbers
// or an Array of Objects with a numeric field; non-numeric entries are
// skipped; empty input yields Null for min/max/avg and 0 for sum.
func aggregate(name string, step types.TransformStep, cur *value.Value) (*value.Value, *types.EvalError) {
	if cur.Kind() != value.KindArray {
		return nil, types.TypeMismatch(name, cur.Kind().String())
	}
	arr, _ := cur.Array()
	var field string
	if len(step.Args) > 0 {
		field = step.Args[0]
	}

	var nums []float64
	for _, e := range arr {
		v := e
		if field != "" {
			obj, ok := e.Object()
			if !ok {
				continue
			}
			fv, ok2 := obj.Get(field)
			if !ok2 {
				continue
			}
			v = fv
		}
		if n, ok := v.Number(); ok {
			nums = append(nums, n)
		}
	}

	switch name {
	case "sum":
		var s float64
		for _, n := range nums {
			s += n
		}
		return value.NewNumber(s), nil
	case "avg":
		if len(nums) == 0 {
			return value.Null, nil
		}
		var s float64
		for _, n := range nums {
			s += n
		}
		return value.NewNumber(s / float64(len(nums))), nil
	case "min":
		if len(nums) == 0 {
			return value.Null, nil
		}
		m := nums[0]
		for _, n := range nums[1:] {
			if n < m {
				m = n
			}
		}
		return value.NewNumber(m), nil
	case "max":
		if len(nums) == 0 {
			return value.Null, nil
		}
		m := nums[0]
		for _, n := range nums[1:] {
			if n > m {
				m = n
			}
		}
		return value.NewNumber(m), nil
	default:
		return nil, types.UnknownTransform(name)
	}
}
