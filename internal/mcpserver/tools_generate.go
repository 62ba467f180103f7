package mcpserver

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/erraggy/apidoc2ts/converter"
	"github.com/erraggy/apidoc2ts/generator"
	"github.com/erraggy/apidoc2ts/internal/fileutil"
	"github.com/erraggy/apidoc2ts/internal/options"
	"github.com/erraggy/apidoc2ts/internal/pathutil"
	"github.com/erraggy/apidoc2ts/tserrors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type generateInterfacesInput struct {
	Doc         docInput `json:"doc"                    jsonschema:"The ApiDoc endpoint document"`
	CustomTypes []string `json:"custom_types,omitempty" jsonschema:"Names of externally defined types, referenced verbatim and never declared"`
	OutputDir   string   `json:"output_dir,omitempty"   jsonschema:"Directory to write the declaration file to (requires filename)"`
	Filename    string   `json:"filename,omitempty"     jsonschema:"Declaration file name, e.g. api.d.ts (requires output_dir)"`
	NoValidate  bool     `json:"no_validate,omitempty"  jsonschema:"Skip the endpoint document shape check"`
}

type endpointSummary struct {
	Endpoint   string   `json:"endpoint"`
	Name       string   `json:"name"`
	Interfaces []string `json:"interfaces,omitempty"`
}

type generateInterfacesOutput struct {
	EndpointCount int               `json:"endpoint_count"`
	Endpoints     []endpointSummary `json:"endpoints,omitempty"`
	Text          string            `json:"text"`
	WrittenTo     string            `json:"written_to,omitempty"`
}

func handleGenerateInterfaces(ctx context.Context, _ *mcp.CallToolRequest, input generateInterfacesInput) (*mcp.CallToolResult, generateInterfacesOutput, error) {
	if err := options.Together("output", options.Field{Name: "output_dir", Set: input.OutputDir != ""}, options.Field{Name: "filename", Set: input.Filename != ""}); err != nil {
		return errResult(err), generateInterfacesOutput{}, nil
	}
	if input.Filename != "" && input.Filename != filepath.Base(input.Filename) {
		return errResult(fmt.Errorf("filename must be a file name, not a path")), generateInterfacesOutput{}, nil
	}

	endpoints, err := input.Doc.endpoints(cfg.Validate && !input.NoValidate)
	if err != nil {
		return errResult(err), generateInterfacesOutput{}, nil
	}

	gen, err := generator.New(cfg.GeneratorOptions(input.CustomTypes...)...)
	if err != nil {
		return errResult(err), generateInterfacesOutput{}, nil
	}
	conv, err := converter.New(gen, converter.WithWorkers(cfg.Workers))
	if err != nil {
		return errResult(err), generateInterfacesOutput{}, nil
	}

	results, err := conv.Convert(ctx, endpoints)
	if err != nil {
		return errResult(err), generateInterfacesOutput{}, nil
	}

	output := generateInterfacesOutput{
		EndpointCount: len(results),
		Endpoints:     makeSlice[endpointSummary](len(results)),
		Text:          converter.Join(results),
	}
	for _, r := range results {
		output.Endpoints = append(output.Endpoints, summarize(r))
	}

	if input.OutputDir != "" {
		path, err := pathutil.SanitizeOutputPath(filepath.Join(input.OutputDir, input.Filename))
		if err != nil {
			return errResult(&tserrors.OutputError{Path: input.OutputDir, Message: "invalid output path", Cause: err}), generateInterfacesOutput{}, nil
		}
		if err := fileutil.WriteAtomic(path, []byte(output.Text), fileutil.ReadableByAll); err != nil {
			return errResult(&tserrors.OutputError{Path: path, Message: "failed to write declarations", Cause: err}), generateInterfacesOutput{}, nil
		}
		output.WrittenTo = path
	}

	return nil, output, nil
}

// summarize lists the primary declarations an endpoint produced.
func summarize(r converter.Result) endpointSummary {
	s := endpointSummary{Endpoint: r.Endpoint.Identity(), Name: r.Name}
	for _, part := range []struct{ text, suffix string }{
		{r.RequestInterface, converter.RequestSuffix},
		{r.ResponseInterface, converter.ResponseSuffix},
		{r.ErrorInterface, converter.ErrorSuffix},
	} {
		if part.text != "" {
			s.Interfaces = append(s.Interfaces, r.Name+part.suffix)
		}
	}
	return s
}
