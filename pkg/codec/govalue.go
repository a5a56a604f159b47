package codec

import "github.com/eladbash/jdx/pkg/value"

// toGoValue converts v into plain Go values (map[string]interface{},
// []interface{}, string, float64, bool, nil) for encoders whose libraries
// only accept native Go types rather than a custom Marshaler (TOML, CSV).
// Object key order is not preserved by this path — encoders that need
// order-preserving output build their own tree (see yaml.go).
func toGoValue(v *value.Value) interface{} {
	switch v.Kind() {
	case value.KindNull:
		return nil
	case value.KindBool:
		b, _ := v.Bool()
		return b
	case value.KindNumber:
		n, _ := v.Number()
		return n
	case value.KindString:
		s, _ := v.Str()
		return s
	case value.KindArray:
		arr, _ := v.Array()
		out := make([]interface{}, len(arr))
		for i, e := range arr {
			out[i] = toGoValue(e)
		}
		return out
	case value.KindObject:
		obj, _ := v.Object()
		out := make(map[string]interface{}, obj.Len())
		obj.Range(func(k string, fv *value.Value) bool {
			out[k] = toGoValue(fv)
			return true
		})
		return out
	default:
		return nil
	}
}
