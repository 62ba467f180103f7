// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

// Package pathutil builds the JSON paths and references apidoc2ts reports
// in errors, and checks output paths before declarations are written.
//
// # JSON Paths
//
// Paths start at "$" and grow one key or index at a time. Keys that are not
// plain names use bracket notation so the path stays unambiguous:
//
//	pathutil.Child("$.properties", "id")      // "$.properties.id"
//	pathutil.Child("$.properties", "a.b")     // `$.properties["a.b"]`
//	pathutil.Index("$", 2)                    // "$[2]"
//
// # Definition References
//
// Only local definition references are resolvable:
//
//	ref := pathutil.DefinitionRef("Pet")            // "#/definitions/Pet"
//	name, ok := pathutil.DefinitionName("#/$defs/Pet")  // "Pet", true
//
// # Output Path Sanitization
//
// [SanitizeOutputPath] cleans an output file path and rejects symlinks:
//
//	safe, err := pathutil.SanitizeOutputPath(filepath.Join(dir, name))
//	if err != nil {
//	    return err
//	}
package pathutil
