package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/apidoc2ts/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

// TestSimpleEndpointsJSON verifies the minimal fixture parses to one endpoint.
func TestSimpleEndpointsJSON(t *testing.T) {
	endpoints, err := parser.ParseEndpoints([]byte(SimpleEndpointsJSON))
	require.NoError(t, err)
	require.Len(t, endpoints, 1)

	ep := endpoints[0]
	assert.Equal(t, "get", ep.Method)
	assert.Equal(t, "/users/:id", ep.Path)
	require.NotNil(t, ep.Request, "Request schema should be set")
	require.NotNil(t, ep.Response, "Response schema should be set")
	assert.Nil(t, ep.Error, "Error schema should be absent")
	assert.True(t, ep.Request.IsPropertyRequired("id"), "id should be required")
}

// TestDetailedEndpointsYAML verifies the keyed fixture covers every schema shape it promises.
func TestDetailedEndpointsYAML(t *testing.T) {
	endpoints, err := parser.ParseEndpoints([]byte(DetailedEndpointsYAML))
	require.NoError(t, err)
	require.Len(t, endpoints, 1)

	ep := endpoints[0]
	assert.Equal(t, "CreateOrder", ep.Name, "Name should come from the map key")
	require.NotNil(t, ep.Error, "Error schema should be set")

	req := ep.Request
	assert.Equal(t, parser.KindObject, req.Kind())
	assert.True(t, req.IsPropertyRequired("items"), "items should be required through the list")
	assert.False(t, req.IsPropertyRequired("note"))

	note, ok := req.Properties.Get("note")
	require.True(t, ok)
	assert.True(t, note.Nullable, "note should be nullable")

	items, ok := req.Properties.Get("items")
	require.True(t, ok)
	assert.Equal(t, parser.KindArray, items.Kind())
	require.NotNil(t, items.Items)
	assert.Equal(t, parser.KindRef, items.Items.Kind())

	status, ok := ep.Response.Properties.Get("status")
	require.True(t, ok)
	assert.Equal(t, parser.KindEnum, status.Kind())
}

// TestUserSchemaJSON verifies the standalone schema fixture.
func TestUserSchemaJSON(t *testing.T) {
	s, err := parser.ParseSchema([]byte(UserSchemaJSON))
	require.NoError(t, err)
	assert.Equal(t, "user", s.Title)
	assert.Equal(t, "A registered user.", s.Description)
	assert.Equal(t, parser.KindObject, s.Kind())
}

// TestWriteTempFile verifies that content lands in a temp file with the given name.
func TestWriteTempFile(t *testing.T) {
	path := WriteTempFile(t, "api_data.json", SimpleEndpointsJSON)

	assert.Equal(t, "api_data.json", filepath.Base(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, SimpleEndpointsJSON, string(data))

	endpoints, err := parser.New().ParseEndpointsFile(path)
	require.NoError(t, err)
	assert.Len(t, endpoints, 1)
}

// TestWriteTempYAML verifies that a document is marshaled to a readable YAML file.
func TestWriteTempYAML(t *testing.T) {
	doc := map[string]any{
		"type":       "object",
		"properties": map[string]any{"id": map[string]any{"type": "integer"}},
	}
	path := WriteTempYAML(t, doc)

	assert.Equal(t, ".yaml", filepath.Ext(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "object", decoded["type"])

	s, err := parser.New().ParseSchemaFile(path)
	require.NoError(t, err)
	_, ok := s.Properties.Get("id")
	assert.True(t, ok, "id property should survive the round trip")
}

// TestWriteTempJSON verifies that a document is marshaled to a readable JSON file.
func TestWriteTempJSON(t *testing.T) {
	doc := []map[string]any{{
		"name":     "Ping",
		"request":  map[string]any{},
		"response": map[string]any{"type": "string"},
	}}
	path := WriteTempJSON(t, doc)

	assert.Equal(t, ".json", filepath.Ext(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data), "file should contain valid JSON")

	endpoints, err := parser.New().ParseEndpointsFile(path)
	require.NoError(t, err)
	require.Len(t, endpoints, 1)
	assert.Equal(t, "Ping", endpoints[0].Name)
}

// TestWriteTempCleanup verifies temp files live in a test-scoped directory.
func TestWriteTempCleanup(t *testing.T) {
	var path string
	t.Run("write", func(t *testing.T) {
		path = WriteTempFile(t, "gone.json", "{}")
		_, err := os.Stat(path)
		require.NoError(t, err)
	})
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "file should be removed after the subtest")
}
