package transforms

import (
	"testing"

	"github.com/eladbash/jdx/pkg/types"
	"github.com/eladbash/jdx/pkg/value"
)

func step(name string, args ...string) types.TransformStep {
	return types.TransformStep{Name: name, Args: args}
}

func decode(t *testing.T, src string) *value.Value {
	t.Helper()
	v, err := value.DecodeJSON([]byte(src))
	if err != nil {
		t.Fatalf("decode %q: %v", src, err)
	}
	return v
}

func TestKeysTransform(t *testing.T) {
	got, err := Apply(step("keys"), decode(t, `{"b":1,"a":2}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr, _ := got.Array()
	if len(arr) != 2 {
		t.Fatalf("expected 2 keys, got %v", got)
	}
	k0, _ := arr[0].Str()
	k1, _ := arr[1].Str()
	if k0 != "b" || k1 != "a" {
		t.Fatalf("expected source key order [b a], got [%s %s]", k0, k1)
	}
}

func TestKeysTransformTypeMismatch(t *testing.T) {
	_, err := Apply(step("keys"), decode(t, `[1,2]`))
	if err == nil || err.Code != types.ErrTypeMismatch {
		t.Fatalf("expected TypeMismatch for :keys on a non-object, got %v", err)
	}
}

func TestValuesTransform(t *testing.T) {
	got, err := Apply(step("values"), decode(t, `{"a":1,"b":2}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr, _ := got.Array()
	if len(arr) != 2 {
		t.Fatalf("expected 2 values, got %v", got)
	}
}

func TestCountTransform(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{`[1,2,3]`, 3},
		{`{"a":1,"b":2}`, 2},
		{`"hello"`, 5},
		{`42`, 1},
	}
	for _, c := range cases {
		got, err := Apply(step("count"), decode(t, c.src))
		if err != nil {
			t.Fatalf("count(%s): unexpected error: %v", c.src, err)
		}
		n, ok := got.Number()
		if !ok || n != c.want {
			t.Fatalf("count(%s): expected %v, got %v", c.src, c.want, got)
		}
	}
}

func TestFlattenTransformSingleLevel(t *testing.T) {
	got, err := Apply(step("flatten"), decode(t, `[[1,2],[3,[4,5]]]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != `[1,2,3,[4,5]]` {
		t.Fatalf("expected single-level flatten, got %v", got.String())
	}
}

func TestPickTransformOnObject(t *testing.T) {
	got, err := Apply(step("pick", "a", "c"), decode(t, `{"a":1,"b":2,"c":3}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj, _ := got.Object()
	if keys := obj.Keys(); len(keys) != 2 || keys[0] != "a" || keys[1] != "c" {
		t.Fatalf("expected [a c], got %v", keys)
	}
}

func TestPickTransformOnArrayOfObjects(t *testing.T) {
	got, err := Apply(step("pick", "name"), decode(t, `[{"name":"A","age":1},{"name":"B","age":2}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr, _ := got.Array()
	if len(arr) != 2 {
		t.Fatalf("expected 2 elements, got %v", got)
	}
	obj, _ := arr[0].Object()
	if obj.Len() != 1 {
		t.Fatalf("expected each element restricted to one field, got %+v", obj.Keys())
	}
}

func TestOmitTransform(t *testing.T) {
	got, err := Apply(step("omit", "b"), decode(t, `{"a":1,"b":2,"c":3}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj, _ := got.Object()
	if keys := obj.Keys(); len(keys) != 2 || keys[0] != "a" || keys[1] != "c" {
		t.Fatalf("expected [a c], got %v", keys)
	}
}

func TestSortTransformByField(t *testing.T) {
	got, err := Apply(step("sort", "age"), decode(t, `[{"age":30},{"age":10},{"age":20}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr, _ := got.Array()
	var ages []float64
	for _, e := range arr {
		obj, _ := e.Object()
		ageVal, _ := obj.Get("age")
		n, _ := ageVal.Number()
		ages = append(ages, n)
	}
	if ages[0] != 10 || ages[1] != 20 || ages[2] != 30 {
		t.Fatalf("expected ascending ages, got %v", ages)
	}
}

func TestSortTransformMissingKeySortsLast(t *testing.T) {
	got, err := Apply(step("sort", "k"), decode(t, `[{"k":2},{},{"k":1}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr, _ := got.Array()
	last, _ := arr[2].Object()
	if _, ok := last.Get("k"); ok {
		t.Fatalf("expected the element missing 'k' to sort last, got %v", got.String())
	}
}

func TestSortTransformIdempotent(t *testing.T) {
	once, _ := Apply(step("sort", "age"), decode(t, `[{"age":3},{"age":1},{"age":2}]`))
	twice, err := Apply(step("sort", "age"), once)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !once.Equal(twice) {
		t.Fatalf(":sort applied twice should be a fixed point")
	}
}

func TestUniqTransform(t *testing.T) {
	got, err := Apply(step("uniq"), decode(t, `[1,2,1,3,2]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != `[1,2,3]` {
		t.Fatalf("expected first-occurrence dedup, got %v", got.String())
	}
}

func TestUniqTransformIdempotent(t *testing.T) {
	once, _ := Apply(step("uniq"), decode(t, `[1,2,1,3,2]`))
	twice, err := Apply(step("uniq"), once)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !once.Equal(twice) {
		t.Fatalf(":uniq applied twice should be a fixed point")
	}
}

func TestGroupByTransform(t *testing.T) {
	got, err := Apply(step("group_by", "role"), decode(t, `[{"role":"admin","n":1},{"role":"user","n":2},{"role":"admin","n":3}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj, _ := got.Object()
	if keys := obj.Keys(); len(keys) != 2 || keys[0] != "admin" || keys[1] != "user" {
		t.Fatalf("expected first-appearance group order [admin user], got %v", keys)
	}
	admins, _ := obj.Get("admin")
	arr, _ := admins.Array()
	if len(arr) != 2 {
		t.Fatalf("expected 2 admins, got %d", len(arr))
	}
}

func TestGroupByMissingArgIsError(t *testing.T) {
	_, err := Apply(step("group_by"), decode(t, `[{"a":1}]`))
	if err == nil {
		t.Fatalf("expected an error for :group_by with no field argument")
	}
}

func TestFilterTransform(t *testing.T) {
	s := types.TransformStep{
		Name:      "filter",
		Predicate: &types.PathSegment{Field: "n", Op: types.OpLt, Literal: types.NewNumberLiteral(3)},
	}
	got, err := Apply(s, decode(t, `[{"n":1},{"n":3},{"n":2}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr, _ := got.Array()
	if len(arr) != 2 {
		t.Fatalf("expected 2 matches, got %v", got)
	}
}

func TestSumAggregate(t *testing.T) {
	got, err := Apply(step("sum", "n"), decode(t, `[{"n":1},{"n":2},{"n":3}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, _ := got.Number()
	if n != 6 {
		t.Fatalf("expected 6, got %v", n)
	}
}

func TestSumAggregateOnBareNumbers(t *testing.T) {
	got, err := Apply(step("sum"), decode(t, `[1,2,3]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, _ := got.Number()
	if n != 6 {
		t.Fatalf("expected 6, got %v", n)
	}
}

func TestAvgAggregateEmptyIsNull(t *testing.T) {
	got, err := Apply(step("avg", "n"), decode(t, `[]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsNull() {
		t.Fatalf("expected Null for an empty :avg, got %v", got)
	}
}

func TestSumAggregateEmptyIsZero(t *testing.T) {
	got, err := Apply(step("sum", "n"), decode(t, `[]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, _ := got.Number()
	if n != 0 {
		t.Fatalf("expected 0 for an empty :sum, got %v", got)
	}
}

func TestMinMaxAggregate(t *testing.T) {
	min, err := Apply(step("min", "n"), decode(t, `[{"n":5},{"n":1},{"n":3}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	max, err := Apply(step("max", "n"), decode(t, `[{"n":5},{"n":1},{"n":3}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	minN, _ := min.Number()
	maxN, _ := max.Number()
	if minN != 1 || maxN != 5 {
		t.Fatalf("expected min=1 max=5, got min=%v max=%v", minN, maxN)
	}
}

func TestUnknownTransformNamesTheToken(t *testing.T) {
	_, err := Apply(step("nope"), decode(t, `[1]`))
	if err == nil {
		t.Fatalf("expected an UnknownTransform error")
	}
	if err.Code != types.ErrUnknownTransform || err.Subject != "nope" {
		t.Fatalf("expected an UnknownTransform error naming %q, got %v", "nope", err)
	}
}

func TestNamesIncludesAllRegisteredTransforms(t *testing.T) {
	names := Names()
	want := []string{"keys", "values", "count", "flatten", "pick", "omit", "sort", "uniq", "group_by", "filter", "sum", "avg", "min", "max"}
	if len(names) != len(want) {
		t.Fatalf("expected %d registered transforms, got %d: %v", len(want), len(names), names)
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	for _, w := range want {
		if !set[w] {
			t.Fatalf("expected %q among registered transform names, got %v", w, names)
		}
	}
}
