package parser

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.yaml.in/yaml/v4"
)

//go:embed envelope.schema.json
var envelopeSchemaSource string

const envelopeSchemaURL = "https://github.com/erraggy/apidoc2ts/envelope.schema.json"

// envelopeSchema compiles the embedded envelope schema once per process.
var envelopeSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(envelopeSchemaURL, strings.NewReader(envelopeSchemaSource)); err != nil {
		return nil, fmt.Errorf("parser: loading envelope schema: %w", err)
	}
	return compiler.Compile(envelopeSchemaURL)
})

// validateEnvelope checks that the document has the shape of an ApiDoc
// endpoint list. Only the envelope is checked: request, response and error
// must be objects, their contents are not validated as JSON Schema.
func (d *decoder) validateEnvelope(root *yaml.Node) error {
	sch, err := envelopeSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(nodeValue(unwrap(root))); err != nil {
		return d.errorAt(unwrap(root), "$", "invalid endpoint envelope: %v", err)
	}
	return nil
}

// nodeValue converts a node tree into the plain values produced by
// encoding/json, which is what the schema validator expects.
func nodeValue(node *yaml.Node) any {
	node = unwrap(node)
	if node == nil {
		return nil
	}
	switch node.Kind {
	case yaml.MappingNode:
		m := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			m[node.Content[i].Value] = nodeValue(node.Content[i+1])
		}
		return m
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			items = append(items, nodeValue(item))
		}
		return items
	default:
		switch node.ShortTag() {
		case "!!null":
			return nil
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err == nil {
				return b
			}
			return node.Value
		case "!!int", "!!float":
			return json.Number(node.Value)
		default:
			return node.Value
		}
	}
}
