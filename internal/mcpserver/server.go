// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes apidoc2ts generation as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/apidoc2ts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `apidoc2ts MCP server: generates TypeScript declarations from ApiDoc endpoint documents and JSON Schema fragments.

Configuration: defaults are configurable via APIDOC2TS_* environment variables set in your MCP client config.

Key settings:
- APIDOC2TS_CUSTOM_TYPES: comma separated names of types defined elsewhere; never declared, referenced verbatim
- APIDOC2TS_DEFAULT_NAME (default: Interface): root declaration name when none is given and the schema has no title
- APIDOC2TS_WORKERS (default: GOMAXPROCS): endpoints converted concurrently
- APIDOC2TS_VALIDATE (default: true): check the endpoint document shape before converting
- APIDOC2TS_MAX_INLINE_SIZE (default: 10MiB): maximum size of inline content`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "apidoc2ts", Version: apidoc2ts.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_interfaces",
		Description: "Generate TypeScript declarations for every endpoint of an ApiDoc document. Provide exactly one of file or content. Each endpoint yields <Base>Request, <Base>Response and <Base>Error declarations. Names listed in custom_types are referenced verbatim and never declared. Set output_dir and filename to also write the declarations to disk.",
	}, handleGenerateInterfaces)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "schema_to_interface",
		Description: "Convert one JSON Schema fragment (JSON or YAML) into TypeScript declarations: the primary interface plus every nested interface and enum it needs. Supports local $ref into definitions or $defs.",
	}, handleSchemaToInterface)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
