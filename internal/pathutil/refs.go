// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import "strings"

// Local definition reference prefixes
const (
	RefPrefixDefinitions = "#/definitions/"
	RefPrefixDefs        = "#/$defs/"
)

var (
	pointerEscaper   = strings.NewReplacer("~", "~0", "/", "~1")
	pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// DefinitionRef builds "#/definitions/{name}", escaping the name as a JSON
// Pointer token.
func DefinitionRef(name string) string {
	return RefPrefixDefinitions + pointerEscaper.Replace(name)
}

// DefinitionName extracts the definition name from a local reference of the
// form "#/definitions/{name}" or "#/$defs/{name}". Any other reference,
// including one that points inside a definition, reports false.
func DefinitionName(ref string) (string, bool) {
	for _, prefix := range []string{RefPrefixDefinitions, RefPrefixDefs} {
		if rest, ok := strings.CutPrefix(ref, prefix); ok {
			if rest == "" || strings.Contains(rest, "/") {
				return "", false
			}
			return pointerUnescaper.Replace(rest), true
		}
	}
	return "", false
}
