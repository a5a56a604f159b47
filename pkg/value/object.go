package value

import (
	"bytes"
	"encoding/json"
)

// Object is an insertion-ordered string-keyed map of Values. A plain Go map
// cannot serve as the data model's Object because Go does not preserve map
// iteration order; Object instead pairs a key slice (insertion order) with
// an index for O(1) lookup, per the "Insertion-order objects" design note.
type Object struct {
	keys   []string
	index  map[string]int
	values []*Value
}

// NewOrderedObject returns an empty Object.
func NewOrderedObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Set inserts key with value v, or overwrites v in place if key already
// exists — per the duplicate-key invariant ("last-wins"), overwriting
// preserves the key's original position rather than moving it to the end.
func (o *Object) Set(key string, v *Value) {
	if i, ok := o.index[key]; ok {
		o.values[i] = v
		return
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.values = append(o.values, v)
}

// Get looks up key, returning (nil, false) if absent.
func (o *Object) Get(key string) (*Value, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.values[i], true
}

// Keys returns the object's keys in insertion order. The returned slice
// must not be mutated.
func (o *Object) Keys() []string {
	return o.keys
}

// Values returns the object's values in the same order as Keys.
func (o *Object) Values() []*Value {
	return o.values
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// Range calls fn for each (key, value) pair in insertion order, stopping
// early if fn returns false.
func (o *Object) Range(fn func(key string, v *Value) bool) {
	for i, k := range o.keys {
		if !fn(k, o.values[i]) {
			return
		}
	}
}

// equal implements Value.Equal's object case: same key set (order-
// independent) with equal values for every key.
func (o *Object) equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	for i, k := range o.keys {
		ov, ok := other.Get(k)
		if !ok || !o.values[i].Equal(ov) {
			return false
		}
	}
	return true
}

// MarshalJSON preserves key order during marshaling.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
