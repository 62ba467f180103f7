package mcpserver

import (
	"context"

	"github.com/erraggy/apidoc2ts/generator"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type schemaToInterfaceInput struct {
	Schema      docInput `json:"schema"                 jsonschema:"The JSON Schema fragment to convert"`
	Name        string   `json:"name,omitempty"         jsonschema:"Primary declaration name (default: derived from title, else APIDOC2TS_DEFAULT_NAME)"`
	CustomTypes []string `json:"custom_types,omitempty" jsonschema:"Names of externally defined types, referenced verbatim and never declared"`
}

type schemaToInterfaceOutput struct {
	Name         string   `json:"name,omitempty"`
	Declarations []string `json:"declarations,omitempty"`
	Text         string   `json:"text"`
}

func handleSchemaToInterface(_ context.Context, _ *mcp.CallToolRequest, input schemaToInterfaceInput) (*mcp.CallToolResult, schemaToInterfaceOutput, error) {
	schema, err := input.Schema.schema()
	if err != nil {
		return errResult(err), schemaToInterfaceOutput{}, nil
	}

	gen, err := generator.New(cfg.GeneratorOptions(input.CustomTypes...)...)
	if err != nil {
		return errResult(err), schemaToInterfaceOutput{}, nil
	}

	result, err := gen.Generate(schema, input.Name)
	if err != nil {
		return errResult(err), schemaToInterfaceOutput{}, nil
	}

	output := schemaToInterfaceOutput{
		Name:         result.Name,
		Declarations: makeSlice[string](len(result.Declarations)),
		Text:         result.Text,
	}
	output.Declarations = append(output.Declarations, result.Names()...)
	return nil, output, nil
}
