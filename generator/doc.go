// Package generator converts JSON Schema fragments into TypeScript
// declarations.
//
// # Quick Start
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
// # Output
//
// One call produces the primary declaration followed by every nested
// declaration it needs. Nested declarations follow in breadth order: every
// declaration discovered while building one parent is emitted before any of
// their own children.
//
//   - object schemas become interfaces; properties are optional unless
//     marked required
//   - enum schemas become enums named after the property that holds them;
//     non-string members keep their source text, so boolean, null and
//     composite members (True = true, Null = null) are not valid TypeScript
//   - local $ref pointers into definitions (or $defs) emit the referenced
//     definition once, under its own name
//   - arrays map to T[], integers to number, and untyped nodes to any
//
// Nested names come from a NameFunc applied to the property name
// (PascalCaseNames by default); array elements append "Item".
//
// # Name Collisions
//
// Two different structures are never emitted under one name. A pass fails
// with a tserrors.CollisionError when a derived name is already taken by a
// structurally different declaration, or when it matches a custom type.
// Structurally identical declarations reached twice are emitted once.
//
// # Concurrency
//
// A Generator is immutable after New. All per-call state lives in a private
// pass, so a single Generator may serve concurrent calls.
package generator
