// Package options provides shared utilities for option validation across packages.
package options

import (
	"fmt"
	"strings"

	"github.com/erraggy/apidoc2ts/tserrors"
)

// Field names an option and whether the caller set it.
type Field struct {
	Name string
	Set  bool
}

// ExactlyOne ensures exactly one of fields is set. The error names every
// field and reports how many were set.
func ExactlyOne(option string, fields ...Field) error {
	count := 0
	for _, f := range fields {
		if f.Set {
			count++
		}
	}
	if count == 1 {
		return nil
	}
	return &tserrors.ConfigError{
		Option:  option,
		Message: fmt.Sprintf("exactly one of %s must be provided (got %d)", names(fields), count),
	}
}

// Together ensures fields are either all set or all unset.
func Together(option string, fields ...Field) error {
	count := 0
	for _, f := range fields {
		if f.Set {
			count++
		}
	}
	if count == 0 || count == len(fields) {
		return nil
	}
	return &tserrors.ConfigError{
		Option:  option,
		Message: names(fields) + " must be provided together",
	}
}

func names(fields []Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Name
	}
	if len(parts) <= 2 {
		return strings.Join(parts, " or ")
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}
