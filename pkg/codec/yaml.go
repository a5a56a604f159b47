package codec

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/eladbash/jdx/pkg/value"
)

// decodeYAML unmarshals into a yaml.Node tree and walks it directly,
// the mirror image of valueToYAMLNode below: decoding through
// map[string]interface{} instead would hand the mapping's keys to Go's
// unordered map and lose the order they were written in.
func decodeYAML(data []byte) (*value.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return value.Null, nil
	}
	return yamlNodeToValue(&doc), nil
}

func yamlNodeToValue(n *yaml.Node) *value.Value {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return value.Null
		}
		return yamlNodeToValue(n.Content[0])
	case yaml.AliasNode:
		return yamlNodeToValue(n.Alias)
	case yaml.ScalarNode:
		return yamlScalarToValue(n)
	case yaml.SequenceNode:
		items := make([]*value.Value, len(n.Content))
		for i, c := range n.Content {
			items[i] = yamlNodeToValue(c)
		}
		return value.NewArray(items)
	case yaml.MappingNode:
		obj := value.NewOrderedObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			obj.Set(n.Content[i].Value, yamlNodeToValue(n.Content[i+1]))
		}
		return value.NewObject(obj)
	default:
		return value.Null
	}
}

// yamlScalarToValue converts a resolved scalar node using the tag
// yaml.v3's decoder already assigned it (!!null, !!bool, !!int, !!float,
// !!str, ...); Value is always the original source text.
func yamlScalarToValue(n *yaml.Node) *value.Value {
	switch n.Tag {
	case "!!null":
		return value.Null
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return value.NewString(n.Value)
		}
		return value.NewBool(b)
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return value.NewString(n.Value)
		}
		return value.NewNumber(f)
	default:
		return value.NewString(n.Value)
	}
}

func encodeYAML(v *value.Value) ([]byte, error) {
	return yaml.Marshal(valueToYAMLNode(v))
}

// valueToYAMLNode builds a yaml.Node tree directly instead of marshaling
// through a map[string]interface{} intermediate, which would lose
// value.Object's insertion order (Go maps have none, but yaml.v3 nodes
// preserve whatever order Content is appended in).
func valueToYAMLNode(v *value.Value) *yaml.Node {
	switch v.Kind() {
	case value.KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case value.KindBool:
		b, _ := v.Bool()
		val := "false"
		if b {
			val = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: val}
	case value.KindNumber:
		n, _ := v.Number()
		return &yaml.Node{Kind: yaml.ScalarNode, Value: value.CanonicalNumberString(n)}
	case value.KindString:
		s, _ := v.Str()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	case value.KindArray:
		arr, _ := v.Array()
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for _, e := range arr {
			node.Content = append(node.Content, valueToYAMLNode(e))
		}
		return node
	case value.KindObject:
		obj, _ := v.Object()
		node := &yaml.Node{Kind: yaml.MappingNode}
		obj.Range(func(k string, fv *value.Value) bool {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				valueToYAMLNode(fv))
			return true
		})
		return node
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
