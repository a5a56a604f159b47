// Package schema infers a structural type sketch of a value.Value with
// sampling, using the single-struct-with-discriminator shape this module
// uses throughout rather than one Go type per variant.
package schema

import "github.com/eladbash/jdx/pkg/value"

// Kind discriminates the Schema variants: Prim, Array, Object, Union, Any.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
	KindUnion
	KindAny
)

// Field pairs a key's merged Schema with whether the key was present in
// every sampled object.
type Field struct {
	Schema   *Schema
	Required bool
}

// Schema is a structural type sketch: `Prim(kind)`,
// `Array(element_schema, length_info)`, `Object(key -> (schema,
// required))`, `Union(set of schemas)`, or `Any`.
type Schema struct {
	Kind Kind

	// Number: the observed range, collapsed to a single value when every
	// sample agreed.
	NumMin, NumMax float64

	// String: the sampled value, truncated, kept only while every sample
	// has agreed on it (StrConstant); empty once two samples differ.
	StrSample   string
	StrConstant bool

	// Array
	Element        *Schema
	LenMin, LenMax int

	// Object
	Fields map[string]*Field
	Order  []string // first-appearance key order, for stable rendering

	// Union
	Options []*Schema
}

func prim(k Kind) *Schema { return &Schema{Kind: k} }

const maxSampleRunes = 30

// truncateSample clips s to maxSampleRunes runes for display in a
// schema's annotation.
func truncateSample(s string) string {
	r := []rune(s)
	if len(r) <= maxSampleRunes {
		return s
	}
	return string(r[:maxSampleRunes])
}

// Infer derives a Schema for v, sampling up to maxSamples elements of any
// array encountered (the first N elements, not random, so inference stays
// deterministic for a fixed sampling strategy). maxSamples <= 0 means
// "no limit".
func Infer(v *value.Value, maxSamples int) *Schema {
	switch v.Kind() {
	case value.KindNull:
		return prim(KindNull)
	case value.KindBool:
		return prim(KindBool)
	case value.KindNumber:
		n, _ := v.Number()
		return &Schema{Kind: KindNumber, NumMin: n, NumMax: n}
	case value.KindString:
		s, _ := v.Str()
		return &Schema{Kind: KindString, StrSample: truncateSample(s), StrConstant: true}
	case value.KindArray:
		return inferArray(v, maxSamples)
	case value.KindObject:
		return inferObject(v, maxSamples)
	default:
		return &Schema{Kind: KindAny}
	}
}

func inferArray(v *value.Value, maxSamples int) *Schema {
	arr, _ := v.Array()
	n := len(arr)
	sampleN := n
	if maxSamples > 0 && sampleN > maxSamples {
		sampleN = maxSamples
	}

	var elem *Schema
	for i := 0; i < sampleN; i++ {
		s := Infer(arr[i], maxSamples)
		if elem == nil {
			elem = s
		} else {
			elem = Merge(elem, s)
		}
	}
	if elem == nil {
		elem = &Schema{Kind: KindAny}
	}
	return &Schema{Kind: KindArray, Element: elem, LenMin: n, LenMax: n}
}

func inferObject(v *value.Value, maxSamples int) *Schema {
	obj, _ := v.Object()
	fields := make(map[string]*Field, obj.Len())
	var order []string
	obj.Range(func(k string, fv *value.Value) bool {
		fields[k] = &Field{Schema: Infer(fv, maxSamples), Required: true}
		order = append(order, k)
		return true
	})
	return &Schema{Kind: KindObject, Fields: fields, Order: order}
}

// Merge combines two Schemas observed for the same logical position:
// identical schemas collapse, differing primitive
// kinds form a Union, Object merges take the union of keys (required = AND
// of requireds, schema = recursive merge), and Array merges are elementwise.
func Merge(a, b *Schema) *Schema {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.Kind == KindAny {
		return b
	}
	if b.Kind == KindAny {
		return a
	}
	if a.Kind == b.Kind {
		switch a.Kind {
		case KindNumber:
			return &Schema{
				Kind:   KindNumber,
				NumMin: minFloat(a.NumMin, b.NumMin),
				NumMax: maxFloat(a.NumMax, b.NumMax),
			}
		case KindString:
			if a.StrConstant && b.StrConstant && a.StrSample == b.StrSample {
				return &Schema{Kind: KindString, StrSample: a.StrSample, StrConstant: true}
			}
			return &Schema{Kind: KindString}
		case KindArray:
			return &Schema{
				Kind:    KindArray,
				Element: Merge(a.Element, b.Element),
				LenMin:  minInt(a.LenMin, b.LenMin),
				LenMax:  maxInt(a.LenMax, b.LenMax),
			}
		case KindObject:
			return mergeObjects(a, b)
		case KindUnion:
			return unionOf(a, b)
		default:
			return a // Null/Bool schemas carry no extra state, so they collapse as-is
		}
	}
	return unionOf(a, b)
}

func mergeObjects(a, b *Schema) *Schema {
	seen := make(map[string]bool, len(a.Order)+len(b.Order))
	var order []string
	addKey := func(k string) {
		if !seen[k] {
			seen[k] = true
			order = append(order, k)
		}
	}
	for _, k := range a.Order {
		addKey(k)
	}
	for _, k := range b.Order {
		addKey(k)
	}

	fields := make(map[string]*Field, len(order))
	for _, k := range order {
		af, aok := a.Fields[k]
		bf, bok := b.Fields[k]
		switch {
		case aok && bok:
			fields[k] = &Field{Schema: Merge(af.Schema, bf.Schema), Required: af.Required && bf.Required}
		case aok:
			fields[k] = &Field{Schema: af.Schema, Required: false}
		default:
			fields[k] = &Field{Schema: bf.Schema, Required: false}
		}
	}
	return &Schema{Kind: KindObject, Fields: fields, Order: order}
}

// unionOf flattens any Union operands and merges same-kind members together,
// so a Union never holds two primitive members of the same kind.
func unionOf(a, b *Schema) *Schema {
	var opts []*Schema
	add := func(s *Schema) {
		if s.Kind == KindUnion {
			opts = append(opts, s.Options...)
			return
		}
		opts = append(opts, s)
	}
	add(a)
	add(b)

	var out []*Schema
	for _, o := range opts {
		merged := false
		for i, e := range out {
			if e.Kind == o.Kind {
				out[i] = Merge(e, o)
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, o)
		}
	}
	if len(out) == 1 {
		return out[0]
	}
	return &Schema{Kind: KindUnion, Options: out}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
