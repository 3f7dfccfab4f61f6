package std

import (
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/akaoio/zen/values"
)

var yamlMethods = []*Builtin{
	{Name: "yaml_parse", Callback: yamlParse},
	{Name: "yaml_stringify", Callback: yamlStringify},
}

func init() {
	Builtins = append(Builtins, yamlMethods...)
}

// yamlParse decodes a YAML document into ZEN values. Decoding goes through
// yaml.Node rather than Go maps so mapping keys keep their document order.
func yamlParse(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
	if len(args) != 1 {
		return createError("yaml_parse expects 1 argument, got %d", len(args))
	}
	s, ok := args[0].(*values.String)
	if !ok {
		return createError("yaml_parse: argument must be a string, got %s", args[0].GetType())
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(s.Value), &doc); err != nil {
		return values.NewError(values.BadArgument, "invalid YAML: %v", err)
	}
	if len(doc.Content) == 0 {
		return &values.Null{}
	}
	v, err := yamlNodeToValue(doc.Content[0])
	if err != nil {
		return values.NewError(values.BadArgument, "invalid YAML: %v", err)
	}
	return v
}

// yamlNodeToValue converts one yaml.Node into a ZEN value.
func yamlNodeToValue(node *yaml.Node) (values.Value, error) {
	switch node.Kind {
	case yaml.MappingNode:
		obj := values.NewObject()
		for i := 0; i+1 < len(node.Content); i += 2 {
			v, err := yamlNodeToValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(node.Content[i].Value, v)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := &values.Array{Elements: make([]values.Value, 0, len(node.Content))}
		for _, child := range node.Content {
			v, err := yamlNodeToValue(child)
			if err != nil {
				return nil, err
			}
			arr.Elements = append(arr.Elements, v)
		}
		return arr, nil
	case yaml.AliasNode:
		return yamlNodeToValue(node.Alias)
	default: // scalar
		switch node.Tag {
		case "!!null":
			return &values.Null{}, nil
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return nil, err
			}
			return &values.Boolean{Value: b}, nil
		case "!!int", "!!float":
			f, err := strconv.ParseFloat(node.Value, 64)
			if err != nil {
				var f2 float64
				if derr := node.Decode(&f2); derr != nil {
					return nil, derr
				}
				f = f2
			}
			return &values.Number{Value: f}, nil
		default:
			return &values.String{Value: node.Value}, nil
		}
	}
}

// yamlStringify encodes a ZEN value as a YAML document, preserving object
// key order via an explicit node tree. Values with no YAML analogue encode
// as null.
func yamlStringify(rt Runtime, writer io.Writer, args ...values.Value) values.Value {
	if len(args) != 1 {
		return createError("yaml_stringify expects 1 argument, got %d", len(args))
	}
	out, err := yaml.Marshal(valueToYAMLNode(args[0]))
	if err != nil {
		return values.NewError(values.BadArgument, "cannot encode YAML: %v", err)
	}
	return &values.String{Value: string(out)}
}

// valueToYAMLNode converts a ZEN value into a yaml.Node tree.
func valueToYAMLNode(v values.Value) *yaml.Node {
	switch v := v.(type) {
	case *values.Boolean:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.Value)}
	case *values.Number:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: v.ToString()}
	case *values.String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Value}
	case *values.Array:
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for _, elem := range v.Elements {
			node.Content = append(node.Content, valueToYAMLNode(elem))
		}
		return node
	case *values.Object:
		node := &yaml.Node{Kind: yaml.MappingNode}
		for _, key := range v.Keys {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				valueToYAMLNode(v.Pairs[key]))
		}
		return node
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
