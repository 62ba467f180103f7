// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"
)

// SimpleEndpointsJSON is a minimal ApiDoc document with one endpoint.
// Its response refers to the external type User.
const SimpleEndpointsJSON = `[
  {
    "type": "get",
    "url": "/users/:id",
    "request": {"type": "object", "properties": {"id": {"type": "string", "required": true}}},
    "response": {"type": "object", "properties": {"owner": {"type": "User"}}}
  }
]`

// DetailedEndpointsYAML is an ApiDoc document keyed by endpoint name.
// It covers nested objects, enums, arrays, nullable types, local
// definitions and error schemas.
const DetailedEndpointsYAML = `CreateOrder:
  type: post
  url: /orders
  request:
    type: object
    required: [items]
    properties:
      items:
        type: array
        items:
          $ref: "#/definitions/LineItem"
      note:
        type: [string, "null"]
    definitions:
      LineItem:
        type: object
        properties:
          sku: {type: string, required: true}
          quantity: {type: integer}
  response:
    type: object
    properties:
      status:
        type: string
        enum: [pending, paid]
      shipping:
        type: object
        properties:
          city: {type: string}
  error:
    type: object
    properties:
      code: {type: number}
`

// UserSchemaJSON is a standalone schema with a title, a description and a
// nested enum.
const UserSchemaJSON = `{
  "title": "user",
  "description": "A registered user.",
  "type": "object",
  "properties": {
    "id": {"type": "integer", "required": true},
    "role": {"type": "string", "enum": ["admin", "member"]}
  }
}`

// WriteTempFile writes content to name inside a fresh temporary directory.
// Returns the path to the file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}

	return tmpFile
}

// WriteTempYAML marshals a document to YAML and writes it to a temporary file.
// Map keys are sorted by the encoder, so property order follows key order.
// Returns the path to the temporary file.
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}
	return WriteTempFile(t, "test.yaml", string(data))
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Map keys are sorted by the encoder, so property order follows key order.
// Returns the path to the temporary file.
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}
	return WriteTempFile(t, "test.json", string(data))
}
