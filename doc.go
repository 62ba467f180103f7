// Package apidoc2ts generates TypeScript declarations from ApiDoc endpoint
// documentation.
//
// ApiDoc describes every endpoint with JSON Schema fragments for the
// request body, the success response and the error response. apidoc2ts turns
// each fragment into an exported interface (plus the enums and nested
// interfaces it needs) so client code can type its calls.
//
// # Packages
//
//   - parser: decode endpoint documents and standalone schemas (JSON or YAML)
//   - generator: convert one schema into TypeScript declarations
//   - converter: convert every endpoint of a document, concurrently
//   - runner: the read, convert and write pipeline behind the CLI
//   - tserrors: typed errors shared by all packages
//
// # Quick Start
//
// Convert a single schema:
//
//	schema, err := parser.ParseSchema(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	gen, err := generator.New(generator.WithCustomTypes("User"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	text, err := gen.CreateInterface(schema, "CreateUserRequest")
//
// Generate a declaration file from an ApiDoc export:
//
//	result := runner.Run(ctx, runner.Parameters{
//		Source: "apidoc/api_data.json",
//		Output: "src/types",
//		Name:   "api.d.ts",
//	})
//	fmt.Println(result.Message)
//
// # Command Line
//
//	apidoc2ts generate -s api_data.json -o src/types -n api.d.ts
//	apidoc2ts schema --name User user.schema.json
//	apidoc2ts mcp
package apidoc2ts
