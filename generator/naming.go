package generator

import (
	"fmt"

	"github.com/erraggy/apidoc2ts/internal/naming"
	"github.com/erraggy/apidoc2ts/parser"
)

// NameFunc derives a declaration name from a property name or title.
//
// It is a policy, not a guarantee: two different sources may derive the same
// name. The generator detects such collisions and fails the pass unless the
// two declarations are structurally identical.
type NameFunc func(source string) string

// PascalCaseNames is the default NameFunc: "shipping_address" -> "ShippingAddress".
func PascalCaseNames(source string) string {
	return naming.ToPascalCase(source)
}

// CapitalizedNames upper-cases the first letter and leaves the rest alone:
// "param" -> "Param". Sources containing separators usually derive invalid
// identifiers under this policy.
func CapitalizedNames(source string) string {
	return naming.ToTitleCase(source)
}

// enumMemberNames derives one member identifier per literal. Strings become
// PascalCase identifiers, booleans and null get fixed names, everything else
// (and any name that is invalid or already taken) falls back to the
// positional form Value<i>.
func enumMemberNames(values []parser.Literal) []string {
	names := make([]string, len(values))
	taken := make(map[string]bool, len(values))

	for i, v := range values {
		name := literalMemberName(v)
		if !naming.IsIdentifier(name) || taken[name] {
			name = fmt.Sprintf("Value%d", i)
		}
		for n := 2; taken[name]; n++ {
			name = fmt.Sprintf("Value%d_%d", i, n)
		}
		taken[name] = true
		names[i] = name
	}
	return names
}

func literalMemberName(v parser.Literal) string {
	switch v.Kind {
	case parser.LiteralString:
		return naming.ToPascalCase(v.Raw)
	case parser.LiteralBool:
		return naming.ToTitleCase(v.Raw)
	case parser.LiteralNull:
		return "Null"
	default:
		return ""
	}
}
