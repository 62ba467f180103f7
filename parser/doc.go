// Package parser decodes ApiDoc endpoint documents and JSON Schema fragments
// into the schema model used by the generator.
//
// Input may be JSON or YAML. Documents are decoded through yaml.Node trees
// so that object keys keep their source order: property order in the
// generated declarations follows the order of the source document.
//
// # Endpoint documents
//
// An endpoint document is a list of endpoint descriptors, a single
// descriptor, or an object mapping endpoint names to descriptors:
//
//	[
//	  {
//	    "name": "getUser",
//	    "type": "get",
//	    "url": "/users/:id",
//	    "request": {"type": "object", "properties": {"id": {"type": "number", "required": true}}},
//	    "response": {"type": "object", "properties": {"name": {"type": "string"}}},
//	    "error": {}
//	  }
//	]
//
// The envelope is checked against an embedded JSON Schema before decoding
// (see [Parser.ValidateEnvelope]). The request, response and error schemas
// themselves are not validated.
//
// # Schemas
//
// The [Schema] model keeps the keywords the generator understands: type,
// properties, enum, required (boolean or list form), $ref, items,
// definitions/$defs, title and description. [Schema.Kind] classifies a node
// as object, primitive, enum, ref, array or empty.
package parser
