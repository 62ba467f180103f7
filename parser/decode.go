package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/erraggy/apidoc2ts/internal/pathutil"
	"github.com/erraggy/apidoc2ts/tserrors"
	"go.yaml.in/yaml/v4"
)

// decoder turns yaml.Node trees into schemas. Going through nodes instead
// of map[string]any keeps mapping keys in source order.
type decoder struct {
	source string
}

// unwrap follows document and alias nodes down to the value node.
func unwrap(node *yaml.Node) *yaml.Node {
	for node != nil {
		switch node.Kind {
		case yaml.DocumentNode:
			if len(node.Content) == 0 {
				return nil
			}
			node = node.Content[0]
		case yaml.AliasNode:
			node = node.Alias
		default:
			return node
		}
	}
	return nil
}

// isNull reports whether node is absent or an explicit null.
func isNull(node *yaml.Node) bool {
	return node == nil || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null")
}

// mappingPairs iterates over the key/value pairs of a mapping node.
func mappingPairs(node *yaml.Node, fn func(key string, value *yaml.Node) error) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if err := fn(node.Content[i].Value, unwrap(node.Content[i+1])); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) errorAt(node *yaml.Node, path, format string, args ...any) error {
	err := &tserrors.InputError{
		Path:    d.source,
		Message: fmt.Sprintf("%s: %s", path, fmt.Sprintf(format, args...)),
	}
	if node != nil {
		err.Line = node.Line
		err.Column = node.Column
	}
	return err
}

// decodeSchema decodes the schema rooted at node. A null or missing node
// decodes to an empty schema.
func (d *decoder) decodeSchema(node *yaml.Node, path string) (*Schema, error) {
	node = unwrap(node)
	if isNull(node) {
		return &Schema{}, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, d.errorAt(node, path, "schema must be an object, got %s", describeNode(node))
	}

	s := &Schema{Line: node.Line, Column: node.Column}
	err := mappingPairs(node, func(key string, value *yaml.Node) error {
		switch key {
		case "type":
			return d.decodeType(s, value, path)
		case "title":
			return d.decodeString(&s.Title, value, path+".title")
		case "description":
			return d.decodeString(&s.Description, value, path+".description")
		case "$ref":
			return d.decodeString(&s.Ref, value, path+".$ref")
		case "required":
			return d.decodeRequired(s, value, path+".required")
		case "enum":
			return d.decodeEnum(s, value, path+".enum")
		case "properties":
			props, err := d.decodeSchemaMap(value, path+".properties")
			if err != nil {
				return err
			}
			s.Properties = props
		case "definitions", "$defs":
			defs, err := d.decodeSchemaMap(value, path+"."+key)
			if err != nil {
				return err
			}
			s.Definitions = mergeProperties(s.Definitions, defs)
		case "items":
			items, err := d.decodeItems(value, path+".items")
			if err != nil {
				return err
			}
			s.Items = items
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// decodeType accepts a single type name or a JSON Schema type list. In a
// list, "null" sets Nullable and the first other entry becomes Type.
func (d *decoder) decodeType(s *Schema, node *yaml.Node, path string) error {
	switch {
	case isNull(node):
		return nil
	case node.Kind == yaml.ScalarNode:
		s.Type = node.Value
		return nil
	case node.Kind == yaml.SequenceNode:
		for _, item := range node.Content {
			item = unwrap(item)
			if item == nil || item.Kind != yaml.ScalarNode {
				return d.errorAt(item, path+".type", "type list entries must be strings")
			}
			if item.Value == TypeNull {
				s.Nullable = true
				continue
			}
			if s.Type == "" {
				s.Type = item.Value
			}
		}
		if s.Type == "" && s.Nullable {
			s.Type = TypeNull
			s.Nullable = false
		}
		return nil
	default:
		return d.errorAt(node, path+".type", "type must be a string or list of strings, got %s", describeNode(node))
	}
}

func (d *decoder) decodeString(dst *string, node *yaml.Node, path string) error {
	if isNull(node) {
		return nil
	}
	if node.Kind != yaml.ScalarNode {
		return d.errorAt(node, path, "expected a string, got %s", describeNode(node))
	}
	*dst = node.Value
	return nil
}

// decodeRequired accepts the ApiDoc boolean form and the JSON Schema list form.
func (d *decoder) decodeRequired(s *Schema, node *yaml.Node, path string) error {
	switch {
	case isNull(node):
		return nil
	case node.Kind == yaml.ScalarNode:
		var b bool
		if err := node.Decode(&b); err != nil {
			return d.errorAt(node, path, "expected a boolean, got %q", node.Value)
		}
		s.Required = b
		return nil
	case node.Kind == yaml.SequenceNode:
		for _, item := range node.Content {
			item = unwrap(item)
			if item == nil || item.Kind != yaml.ScalarNode {
				return d.errorAt(item, path, "required list entries must be strings")
			}
			s.RequiredList = append(s.RequiredList, item.Value)
		}
		return nil
	default:
		return d.errorAt(node, path, "expected a boolean or list of names, got %s", describeNode(node))
	}
}

func (d *decoder) decodeEnum(s *Schema, node *yaml.Node, path string) error {
	if isNull(node) {
		return nil
	}
	if node.Kind != yaml.SequenceNode {
		return d.errorAt(node, path, "enum must be a list, got %s", describeNode(node))
	}
	s.Enum = make([]Literal, 0, len(node.Content))
	for i, item := range node.Content {
		lit, err := d.decodeLiteral(unwrap(item), pathutil.Index(path, i))
		if err != nil {
			return err
		}
		s.Enum = append(s.Enum, lit)
	}
	return nil
}

func (d *decoder) decodeLiteral(node *yaml.Node, path string) (Literal, error) {
	if node == nil {
		return Literal{Kind: LiteralNull, Raw: "null"}, nil
	}
	if node.Kind == yaml.ScalarNode {
		switch node.ShortTag() {
		case "!!null":
			return Literal{Kind: LiteralNull, Raw: "null"}, nil
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return Literal{}, d.errorAt(node, path, "invalid boolean %q", node.Value)
			}
			return Literal{Kind: LiteralBool, Raw: fmt.Sprint(b)}, nil
		case "!!int", "!!float":
			return Literal{Kind: LiteralNumber, Raw: node.Value}, nil
		default:
			return StringLiteral(node.Value), nil
		}
	}

	var buf strings.Builder
	if err := d.writeCompactJSON(&buf, node, path); err != nil {
		return Literal{}, err
	}
	return Literal{Kind: LiteralComposite, Raw: buf.String()}, nil
}

// writeCompactJSON writes a composite literal as compact JSON, keeping
// object keys in source order.
func (d *decoder) writeCompactJSON(buf *strings.Builder, node *yaml.Node, path string) error {
	node = unwrap(node)
	if node == nil {
		buf.WriteString("null")
		return nil
	}
	switch node.Kind {
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(node.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			key := unwrap(node.Content[i])
			if key == nil {
				return d.errorAt(node, path, "object key must be a scalar")
			}
			writeJSONString(buf, key.Value)
			buf.WriteByte(':')
			if err := d.writeCompactJSON(buf, node.Content[i+1], pathutil.Child(path, key.Value)); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := d.writeCompactJSON(buf, item, pathutil.Index(path, i)); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		lit, err := d.decodeLiteral(node, path)
		if err != nil {
			return err
		}
		if lit.Kind == LiteralString {
			writeJSONString(buf, lit.Raw)
		} else {
			buf.WriteString(lit.Raw)
		}
	}
	return nil
}

func writeJSONString(buf *strings.Builder, s string) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	buf.Write(bytes.TrimSuffix(b.Bytes(), []byte("\n")))
}

func (d *decoder) decodeSchemaMap(node *yaml.Node, path string) (*Properties, error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, d.errorAt(node, path, "expected an object, got %s", describeNode(node))
	}
	props := NewProperties(len(node.Content) / 2)
	err := mappingPairs(node, func(key string, value *yaml.Node) error {
		child, err := d.decodeSchema(value, pathutil.Child(path, key))
		if err != nil {
			return err
		}
		props.Set(key, child)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return props, nil
}

// decodeItems accepts a single schema or a tuple list; for tuples the first
// entry is used as the element schema.
func (d *decoder) decodeItems(node *yaml.Node, path string) (*Schema, error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind == yaml.SequenceNode {
		if len(node.Content) == 0 {
			return nil, nil
		}
		return d.decodeSchema(node.Content[0], path+"[0]")
	}
	return d.decodeSchema(node, path)
}

func mergeProperties(dst, src *Properties) *Properties {
	if dst == nil {
		return src
	}
	for name, s := range src.All() {
		dst.Set(name, s)
	}
	return dst
}

func describeNode(node *yaml.Node) string {
	if node == nil {
		return "nothing"
	}
	switch node.Kind {
	case yaml.MappingNode:
		return "an object"
	case yaml.SequenceNode:
		return "a list"
	case yaml.ScalarNode:
		return fmt.Sprintf("scalar %q", node.Value)
	default:
		return "an unsupported node"
	}
}
