package main

import (
	"fmt"
	"os"

	"github.com/erraggy/apidoc2ts"
	"github.com/erraggy/apidoc2ts/cmd/apidoc2ts/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("apidoc2ts %s\n", apidoc2ts.Version())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "generate":
		err = commands.HandleGenerate(os.Args[2:])
	case "schema":
		err = commands.HandleSchema(os.Args[2:])
	case "mcp":
		err = commands.HandleMCP(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`apidoc2ts - TypeScript declarations from ApiDoc documentation

Usage:
  apidoc2ts <command> [options]

Commands:
  generate    Generate declarations for every endpoint of an ApiDoc document
  schema      Convert one JSON Schema fragment and print the declarations
  mcp         Serve generation tools over MCP stdio
  version     Show version information
  help        Show this help message

Examples:
  apidoc2ts generate -s doc/api_data.json -o src/types -n api.d.ts
  apidoc2ts schema --name User user.schema.json

Environment:
  APIDOC2TS_CUSTOM_TYPES, APIDOC2TS_WORKERS, APIDOC2TS_DEFAULT_NAME,
  APIDOC2TS_VALIDATE, APIDOC2TS_MAX_INPUT_BYTES, APIDOC2TS_MAX_INLINE_SIZE

Run 'apidoc2ts <command> --help' for more information on a command.`)
}
