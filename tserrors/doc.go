// Package tserrors provides structured error types for the apidoc2ts library.
//
// Import path: github.com/erraggy/apidoc2ts/tserrors
//
// # Error Types
//
//   - [InputError]: unreadable source, invalid JSON/YAML, malformed endpoint envelope
//   - [NamingError]: no valid declaration name could be derived
//   - [CollisionError]: a name aliases a custom type or a structurally different declaration
//   - [RefResolutionError]: a $ref points outside the schema or to a missing definition
//   - [OutputError]: the output directory or file cannot be written
//   - [ConfigError]: invalid options
//
// # Sentinel Errors
//
//   - [ErrInput]: Matches any [InputError]
//   - [ErrNaming]: Matches any [NamingError]
//   - [ErrCollision]: Matches any [CollisionError]
//   - [ErrCustomTypeCollision]: Matches [CollisionError] with IsCustomType=true
//   - [ErrRefResolution]: Matches any [RefResolutionError]
//   - [ErrOutput]: Matches any [OutputError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// Every generator-level error aborts the whole call; no partial declaration
// text is returned alongside an error.
package tserrors
