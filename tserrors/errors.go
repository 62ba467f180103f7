package tserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrInput indicates the source could not be read or decoded.
	ErrInput = errors.New("input error")

	// ErrNaming indicates a declaration name could not be derived.
	ErrNaming = errors.New("naming error")

	// ErrCollision indicates two declarations claim the same name.
	ErrCollision = errors.New("name collision")

	// ErrCustomTypeCollision indicates a declaration would redefine a known custom type.
	ErrCustomTypeCollision = errors.New("custom type collision")

	// ErrRefResolution indicates a $ref could not be resolved.
	ErrRefResolution = errors.New("reference resolution error")

	// ErrOutput indicates the output could not be written.
	ErrOutput = errors.New("output error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// InputError represents a failure to read or decode the source document.
type InputError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *InputError) Error() string {
	msg := "input error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *InputError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *InputError) Is(target error) bool {
	return target == ErrInput
}

// NamingError represents a declaration whose name cannot be derived.
type NamingError struct {
	// Path is the schema location that needed a name (e.g., "$.properties.user")
	Path string
	// Source is the text the name was derived from, if any
	Source string
	// Message describes why no valid name could be produced
	Message string
}

// Error returns a human-readable error message.
func (e *NamingError) Error() string {
	msg := "naming error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Source != "" {
		msg += fmt.Sprintf(" (from %q)", e.Source)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as NamingError has no underlying cause.
func (e *NamingError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *NamingError) Is(target error) bool {
	return target == ErrNaming
}

// CollisionError represents two declarations competing for one name,
// or a declaration that would redefine a known custom type.
type CollisionError struct {
	// Name is the contested declaration name
	Name string
	// Path is the schema location of the second declaration
	Path string
	// IsCustomType is true if Name is a member of the known-custom-type set
	IsCustomType bool
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *CollisionError) Error() string {
	msg := "name collision"
	if e.IsCustomType {
		msg = "custom type collision"
	}
	if e.Name != "" {
		msg += ": " + e.Name
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as CollisionError has no underlying cause.
func (e *CollisionError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
// Matches ErrCollision, and also ErrCustomTypeCollision when IsCustomType is set.
func (e *CollisionError) Is(target error) bool {
	if target == ErrCollision {
		return true
	}
	return target == ErrCustomTypeCollision && e.IsCustomType
}

// RefResolutionError represents a $ref that cannot be resolved locally.
type RefResolutionError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// Path is the schema location holding the $ref
	Path string
	// Message provides additional context about the failure
	Message string
}

// Error returns a human-readable error message.
func (e *RefResolutionError) Error() string {
	msg := "reference resolution error"
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as RefResolutionError has no underlying cause.
func (e *RefResolutionError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *RefResolutionError) Is(target error) bool {
	return target == ErrRefResolution
}

// OutputError represents a failure to write generated declarations.
type OutputError struct {
	// Path is the destination file or directory
	Path string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *OutputError) Error() string {
	msg := "output error"
	if e.Path != "" {
		msg += " for " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *OutputError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *OutputError) Is(target error) bool {
	return target == ErrOutput
}

// ConfigError represents an invalid configuration or input option.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
