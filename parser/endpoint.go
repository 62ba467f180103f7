package parser

import (
	"fmt"
	"strings"

	"github.com/erraggy/apidoc2ts/internal/pathutil"
	"go.yaml.in/yaml/v4"
)

// Endpoint is one documented API endpoint with the schemas of its request
// body, success response and error response.
type Endpoint struct {
	// Name is the endpoint's ApiDoc name (or the key it was listed under).
	Name string
	// Title is the human-readable endpoint title.
	Title string
	// Group is the ApiDoc group the endpoint belongs to.
	Group string
	// Method is the HTTP method ("type" in ApiDoc output).
	Method string
	// Path is the URL path ("url" in ApiDoc output).
	Path string
	// Request is the request body schema.
	Request *Schema
	// Response is the success response schema ("success" is accepted as an alias).
	Response *Schema
	// Error is the error response schema.
	Error *Schema
	// Index is the endpoint's position in the source document.
	Index int
}

// Identity returns a short description of the endpoint for messages.
func (e *Endpoint) Identity() string {
	switch {
	case e.Method != "" && e.Path != "":
		return strings.ToUpper(e.Method) + " " + e.Path
	case e.Name != "":
		return e.Name
	case e.Title != "":
		return e.Title
	default:
		return fmt.Sprintf("endpoint #%d", e.Index)
	}
}

// descriptorKeys are the keys that mark an object as a single endpoint
// descriptor rather than a map of named descriptors.
var descriptorKeys = map[string]bool{
	"name": true, "title": true, "group": true,
	"type": true, "method": true, "url": true, "path": true,
	"request": true, "response": true, "success": true, "error": true,
}

// decodeEndpoints decodes the top-level value of an ApiDoc input document.
// The value is a list of descriptors, a single descriptor, or an object
// mapping endpoint names to descriptors.
func (d *decoder) decodeEndpoints(root *yaml.Node) ([]Endpoint, error) {
	root = unwrap(root)
	if root == nil {
		return nil, d.errorAt(nil, "$", "document is empty")
	}

	switch root.Kind {
	case yaml.SequenceNode:
		endpoints := make([]Endpoint, 0, len(root.Content))
		for i, item := range root.Content {
			ep, err := d.decodeEndpoint(unwrap(item), pathutil.Index(pathutil.Root, i))
			if err != nil {
				return nil, err
			}
			ep.Index = i
			endpoints = append(endpoints, ep)
		}
		return endpoints, nil

	case yaml.MappingNode:
		if isDescriptor(root) {
			ep, err := d.decodeEndpoint(root, "$")
			if err != nil {
				return nil, err
			}
			return []Endpoint{ep}, nil
		}
		endpoints := make([]Endpoint, 0, len(root.Content)/2)
		err := mappingPairs(root, func(key string, value *yaml.Node) error {
			ep, err := d.decodeEndpoint(value, pathutil.Child(pathutil.Root, key))
			if err != nil {
				return err
			}
			if ep.Name == "" {
				ep.Name = key
			}
			ep.Index = len(endpoints)
			endpoints = append(endpoints, ep)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return endpoints, nil

	default:
		return nil, d.errorAt(root, "$", "expected a list or object of endpoints, got %s", describeNode(root))
	}
}

// isDescriptor reports whether a mapping root is one endpoint descriptor
// rather than a map of named descriptors. Endpoint names may collide with
// descriptor keys ("error", "name"), so the shape of the values decides
// before the keys do.
func isDescriptor(node *yaml.Node) bool {
	if allValues(node, hasEndpointShape) {
		return false
	}
	if hasEndpointShape(node) {
		return true
	}
	if allValues(node, func(n *yaml.Node) bool { return n != nil && n.Kind == yaml.MappingNode }) {
		return false
	}
	for i := 0; i < len(node.Content); i += 2 {
		if descriptorKeys[node.Content[i].Value] {
			return true
		}
	}
	return false
}

// hasEndpointShape reports whether node is a mapping with a request schema
// and a response (or success) schema.
func hasEndpointShape(node *yaml.Node) bool {
	if node == nil || node.Kind != yaml.MappingNode {
		return false
	}
	var request, response bool
	for i := 0; i+1 < len(node.Content); i += 2 {
		switch node.Content[i].Value {
		case "request":
			request = true
		case "response", "success":
			response = true
		}
	}
	return request && response
}

func allValues(node *yaml.Node, fn func(*yaml.Node) bool) bool {
	if len(node.Content) == 0 {
		return false
	}
	for i := 1; i < len(node.Content); i += 2 {
		if !fn(unwrap(node.Content[i])) {
			return false
		}
	}
	return true
}

func (d *decoder) decodeEndpoint(node *yaml.Node, path string) (Endpoint, error) {
	var ep Endpoint
	if node == nil || node.Kind != yaml.MappingNode {
		return ep, d.errorAt(node, path, "endpoint must be an object, got %s", describeNode(node))
	}

	err := mappingPairs(node, func(key string, value *yaml.Node) error {
		var err error
		switch key {
		case "name":
			err = d.decodeString(&ep.Name, value, path+".name")
		case "title":
			err = d.decodeString(&ep.Title, value, path+".title")
		case "group":
			err = d.decodeString(&ep.Group, value, path+".group")
		case "type", "method":
			err = d.decodeString(&ep.Method, value, path+"."+key)
		case "url", "path":
			err = d.decodeString(&ep.Path, value, path+"."+key)
		case "request":
			ep.Request, err = d.decodeSchema(value, path+".request")
		case "response", "success":
			ep.Response, err = d.decodeSchema(value, path+"."+key)
		case "error":
			ep.Error, err = d.decodeSchema(value, path+".error")
		}
		return err
	})
	return ep, err
}
