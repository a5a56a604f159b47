package codec

import (
	"fmt"
	"sort"
	"time"

	gotoml "github.com/pelletier/go-toml"
	"github.com/pelletier/go-toml/v2"

	"github.com/eladbash/jdx/pkg/value"
)

// decodeTOML parses through go-toml v1's *Tree rather than v2's
// Unmarshal into map[string]interface{}: v2 dropped the ordered Tree
// type in favor of struct/map targets, so a generic decode through it
// hands every table's keys to Go's unordered map and loses the order
// they were written in, the same problem YAML's decode has through
// interface{}. v1's Tree records the source position of every key, so
// tomlTreeToValue orders each table's keys by position (Tree.Keys()
// itself comes from a map and has no order); decode goes through v1 while
// encode (below) stays on v2's Marshal.
func decodeTOML(data []byte) (*value.Value, error) {
	tree, err := gotoml.LoadBytes(data)
	if err != nil {
		return nil, err
	}
	return tomlTreeToValue(tree), nil
}

func tomlTreeToValue(tree *gotoml.Tree) *value.Value {
	keys := tree.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		pi := tree.GetPositionPath([]string{keys[i]})
		pj := tree.GetPositionPath([]string{keys[j]})
		if pi.Line != pj.Line {
			return pi.Line < pj.Line
		}
		return pi.Col < pj.Col
	})
	obj := value.NewOrderedObject()
	for _, k := range keys {
		obj.Set(k, tomlItemToValue(tree.GetPath([]string{k})))
	}
	return value.NewObject(obj)
}

func tomlItemToValue(item interface{}) *value.Value {
	switch t := item.(type) {
	case nil:
		return value.Null
	case *gotoml.Tree:
		return tomlTreeToValue(t)
	case []*gotoml.Tree:
		items := make([]*value.Value, len(t))
		for i, sub := range t {
			items[i] = tomlTreeToValue(sub)
		}
		return value.NewArray(items)
	case []interface{}:
		items := make([]*value.Value, len(t))
		for i, e := range t {
			items[i] = tomlItemToValue(e)
		}
		return value.NewArray(items)
	case string:
		return value.NewString(t)
	case bool:
		return value.NewBool(t)
	case int64:
		return value.NewNumber(float64(t))
	case float64:
		return value.NewNumber(t)
	case time.Time:
		return value.NewString(t.Format(time.RFC3339))
	default:
		return value.NewString(fmt.Sprintf("%v", t))
	}
}

// encodeTOML requires v to be an Object: TOML documents are tables, so a
// bare scalar or array has no TOML representation at the document root.
func encodeTOML(v *value.Value) ([]byte, error) {
	if v.Kind() != value.KindObject {
		return nil, fmt.Errorf("codec: TOML output requires an object at the document root, got %s", v.Kind())
	}
	return toml.Marshal(toGoValue(v))
}
