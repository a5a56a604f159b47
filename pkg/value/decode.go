package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

func newBytesReader(b []byte) io.Reader {
	return bytes.NewReader(b)
}

// decodeJSONValue reads exactly one JSON value from dec and normalizes it
// into a *Value tree, preserving object key order — the reason this exists
// instead of json.Unmarshal into map[string]interface{}.
func decodeJSONValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := NewOrderedObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("value: expected object key, got %v", keyTok)
				}
				valTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				v, err := decodeJSONToken(dec, valTok)
				if err != nil {
					return nil, err
				}
				obj.Set(key, v)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return NewObject(obj), nil
		case '[':
			var items []*Value
			for dec.More() {
				elemTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				v, err := decodeJSONToken(dec, elemTok)
				if err != nil {
					return nil, err
				}
				items = append(items, v)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return NewArray(items), nil
		default:
			return nil, fmt.Errorf("value: unexpected delimiter %v", t)
		}
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return nil, err
		}
		return NewNumber(f), nil
	case string:
		return NewString(t), nil
	case bool:
		return NewBool(t), nil
	case nil:
		return Null, nil
	default:
		return nil, fmt.Errorf("value: unsupported token %T", tok)
	}
}

// DecodeJSON parses raw JSON bytes into a *Value, preserving object key
// order and treating all numbers as float64 (matching spec's IEEE-754
// double model).
func DecodeJSON(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	// Reject trailing garbage after the single top-level value.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("value: unexpected trailing data after JSON value")
	}
	return v, nil
}

// FromGo converts an already-decoded Go value (as produced by
// json.Unmarshal into interface{}, or by a YAML/TOML decoder) into a
// *Value. Object key order for map[string]interface{} inputs is not
// preserved (Go maps have none); callers that need order-preserving decode
// of a textual format should decode through a *Value-aware path instead
// (see pkg/codec).
func FromGo(in interface{}) *Value {
	switch t := in.(type) {
	case nil:
		return Null
	case *Value:
		return t
	case bool:
		return NewBool(t)
	case string:
		return NewString(t)
	case float64:
		return NewNumber(t)
	case float32:
		return NewNumber(float64(t))
	case int:
		return NewNumber(float64(t))
	case int64:
		return NewNumber(float64(t))
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return NewString(t.String())
		}
		return NewNumber(f)
	case []interface{}:
		items := make([]*Value, len(t))
		for i, e := range t {
			items[i] = FromGo(e)
		}
		return NewArray(items)
	case map[string]interface{}:
		obj := NewOrderedObject()
		for k, e := range t {
			obj.Set(k, FromGo(e))
		}
		return NewObject(obj)
	case map[interface{}]interface{}: // gopkg.in/yaml.v3 legacy shape
		obj := NewOrderedObject()
		for k, e := range t {
			obj.Set(fmt.Sprintf("%v", k), FromGo(e))
		}
		return NewObject(obj)
	default:
		return NewString(fmt.Sprintf("%v", t))
	}
}
