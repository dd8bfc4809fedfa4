package docfmt

import (
	"io"
	"strconv"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"gopkg.in/yaml.v3"
)

func renderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNode(v)); err != nil {
		return err
	}
	return enc.Close()
}

// yamlNode builds an order-preserving node tree from a canonical
// value. Mapping keys stay in canonical order; a plain map would lose
// it to the encoder's own sorting.
func yamlNode(v any) *yaml.Node {
	switch val := v.(type) {
	case nil:
		return scalarNode("!!null", "null")
	case bool:
		return scalarNode("!!bool", strconv.FormatBool(val))
	case int64:
		return scalarNode("!!int", strconv.FormatInt(val, 10))
	case uint64:
		return scalarNode("!!int", strconv.FormatUint(val, 10))
	case float64:
		return scalarNode("!!float", strconv.FormatFloat(val, 'g', -1, 64))
	case string:
		return scalarNode("!!str", val)
	case *orderedmap.OrderedMap:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range val.Keys() {
			value, _ := val.Get(key)
			node.Content = append(node.Content, scalarNode("!!str", key), yamlNode(value))
		}
		return node
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range val {
			node.Content = append(node.Content, yamlNode(item))
		}
		return node
	default:
		// Hand-assembled non-canonical leaf: coerce, as JSON does.
		return scalarNode("!!str", stringify(v))
	}
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
