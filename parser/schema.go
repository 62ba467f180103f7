package parser

import (
	"iter"
	"slices"
)

// JSON Schema primitive type names recognised by the generator.
const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
	TypeNull    = "null"
)

// Kind is the shape of a schema node as seen by the generator.
type Kind int

const (
	// KindEmpty is a node with no type, properties, enum, $ref or items.
	KindEmpty Kind = iota
	// KindObject is a node with type "object" or with properties.
	KindObject
	// KindPrimitive is a node with a bare type name: a JSON primitive or a
	// custom type reference.
	KindPrimitive
	// KindEnum is a node with a non-empty enum list.
	KindEnum
	// KindRef is a node with a $ref pointer.
	KindRef
	// KindArray is a node with type "array".
	KindArray
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindObject:
		return "object"
	case KindPrimitive:
		return "primitive"
	case KindEnum:
		return "enum"
	case KindRef:
		return "ref"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Schema is one JSON Schema fragment from an ApiDoc endpoint description.
// Only the keywords apidoc2ts understands are kept; everything else in the
// source document is ignored.
type Schema struct {
	// Type is the declared type: a JSON primitive, "object", "array", or a
	// custom type name.
	Type string
	// Nullable is set when the source used a type list containing "null".
	Nullable bool
	// Title is an optional human-readable name.
	Title string
	// Description is an optional documentation string.
	Description string
	// Properties holds the object's properties in source order.
	Properties *Properties
	// Enum holds the allowed literal values in source order.
	Enum []Literal
	// Required is the property-local required flag (ApiDoc style).
	Required bool
	// RequiredList holds the JSON Schema style list of required property names.
	RequiredList []string
	// Ref is the $ref pointer, e.g. "#/definitions/Admin".
	Ref string
	// Items is the element schema of an array.
	Items *Schema
	// Definitions holds the local definitions ("definitions" and "$defs").
	Definitions *Properties

	// Line and Column locate the node in the source (0 if unknown).
	Line   int
	Column int
}

// Kind classifies the node for the generator. A $ref wins over every other
// keyword, then enum, object, array and bare type names.
func (s *Schema) Kind() Kind {
	switch {
	case s == nil:
		return KindEmpty
	case s.Ref != "":
		return KindRef
	case len(s.Enum) > 0:
		return KindEnum
	case s.Type == TypeObject || s.Properties.Len() > 0:
		return KindObject
	case s.Type == TypeArray:
		return KindArray
	case s.Type != "":
		return KindPrimitive
	case s.Items != nil:
		return KindArray
	default:
		return KindEmpty
	}
}

// IsEmpty reports whether the schema has neither a type nor properties.
// Such a schema produces no declaration.
func (s *Schema) IsEmpty() bool {
	return s == nil || (s.Type == "" && s.Properties.Len() == 0)
}

// IsPropertyRequired reports whether the named property of s is required,
// either through the property's own required flag or through s's required
// list.
func (s *Schema) IsPropertyRequired(name string) bool {
	if s == nil {
		return false
	}
	if prop, ok := s.Properties.Get(name); ok && prop.Required {
		return true
	}
	return slices.Contains(s.RequiredList, name)
}

// Properties is an insertion-ordered map of names to schemas.
// The zero value and a nil *Properties are both empty.
type Properties struct {
	keys   []string
	values map[string]*Schema
}

// NewProperties returns an empty Properties with room for n entries.
func NewProperties(n int) *Properties {
	return &Properties{
		keys:   make([]string, 0, n),
		values: make(map[string]*Schema, n),
	}
}

// Len returns the number of entries.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Get returns the schema stored under name.
func (p *Properties) Get(name string) (*Schema, bool) {
	if p == nil {
		return nil, false
	}
	s, ok := p.values[name]
	return s, ok
}

// Set stores schema under name. A name that is already present keeps its
// original position.
func (p *Properties) Set(name string, schema *Schema) {
	if p.values == nil {
		p.values = make(map[string]*Schema)
	}
	if _, ok := p.values[name]; !ok {
		p.keys = append(p.keys, name)
	}
	p.values[name] = schema
}

// Keys returns the names in insertion order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.keys)
}

// All iterates over the entries in insertion order.
func (p *Properties) All() iter.Seq2[string, *Schema] {
	return func(yield func(string, *Schema) bool) {
		if p == nil {
			return
		}
		for _, k := range p.keys {
			if !yield(k, p.values[k]) {
				return
			}
		}
	}
}

// LiteralKind is the JSON type of an enum literal.
type LiteralKind int

const (
	// LiteralString is a JSON string.
	LiteralString LiteralKind = iota
	// LiteralNumber is a JSON number.
	LiteralNumber
	// LiteralBool is true or false.
	LiteralBool
	// LiteralNull is null.
	LiteralNull
	// LiteralComposite is an object or array literal.
	LiteralComposite
)

// Literal is one enum value with its exact source representation.
// For strings Raw is the unquoted value; for every other kind Raw is the
// source token (compact JSON for composites).
type Literal struct {
	Kind LiteralKind
	Raw  string
}

// StringLiteral returns a string literal.
func StringLiteral(s string) Literal {
	return Literal{Kind: LiteralString, Raw: s}
}
