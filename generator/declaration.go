package generator

import (
	"slices"

	"github.com/erraggy/apidoc2ts/parser"
)

// DeclKind is the kind of a generated declaration.
type DeclKind int

const (
	// DeclInterface is a structured declaration: `export interface Name { ... }`.
	DeclInterface DeclKind = iota
	// DeclEnum is an enumeration: `export enum Name { ... }`.
	DeclEnum
	// DeclAlias is a type alias: `export type Name = ...;`.
	DeclAlias
)

// String returns the TypeScript keyword for the kind.
func (k DeclKind) String() string {
	switch k {
	case DeclInterface:
		return "interface"
	case DeclEnum:
		return "enum"
	case DeclAlias:
		return "type"
	default:
		return "unknown"
	}
}

// Property is one member of an interface declaration.
type Property struct {
	// Name is the property name as written in the source schema.
	Name string
	// Type is the emitted TypeScript type expression.
	Type string
	// Optional is true unless the property is required.
	Optional bool
	// Description is rendered as a doc comment when comments are enabled.
	Description string
}

// EnumMember is one member of an enum declaration.
type EnumMember struct {
	// Name is the member identifier.
	Name string
	// Value is the literal assigned to the member.
	Value parser.Literal
}

// Declaration is one named type declaration produced by a generation pass.
type Declaration struct {
	Kind        DeclKind
	Name        string
	Description string

	// Properties lists interface members in source order (DeclInterface).
	Properties []Property
	// Members lists enum members in source order (DeclEnum).
	Members []EnumMember
	// Target is the aliased type expression (DeclAlias).
	Target string
}

// Equal reports whether d and other declare the same structure. Descriptions
// are metadata and do not take part in the comparison.
func (d *Declaration) Equal(other *Declaration) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.Kind != other.Kind || d.Name != other.Name || d.Target != other.Target {
		return false
	}
	propEqual := func(a, b Property) bool {
		return a.Name == b.Name && a.Type == b.Type && a.Optional == b.Optional
	}
	if !slices.EqualFunc(d.Properties, other.Properties, propEqual) {
		return false
	}
	return slices.Equal(d.Members, other.Members)
}
