package generator

import (
	"strings"

	"github.com/erraggy/apidoc2ts/parser"
)

// anyType is emitted for schema nodes that carry no type information.
const anyType = "any"

// primitiveType maps a bare JSON Schema type name to its TypeScript type.
// Names pass through unchanged, with the exception of "integer", which has no
// TypeScript counterpart.
func primitiveType(schemaType string) string {
	if schemaType == parser.TypeInteger {
		return parser.TypeNumber
	}
	return schemaType
}

// nullable adds "| null" to a type expression.
func nullable(t string) string {
	if t == anyType || t == parser.TypeNull {
		return t
	}
	return t + " | null"
}

// arrayOf wraps an element type expression in an array type, adding
// parentheses around unions.
func arrayOf(elem string) string {
	if strings.Contains(elem, " | ") {
		return "(" + elem + ")[]"
	}
	return elem + "[]"
}
