package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// isSeparator reports whether r splits words. Anything that cannot appear
// in a TypeScript identifier is a separator.
func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// ToPascalCase converts a string to PascalCase.
// Separators (underscore, hyphen, dot, slash, space, colon, ...) trigger
// capitalization of the next letter and are dropped.
// Example: "user_profile" -> "UserProfile"
// Example: "/users/:id" -> "UsersId"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	capitalizeNext := true

	for _, r := range s {
		if isSeparator(r) {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// ToCamelCase converts a string to camelCase.
// Like PascalCase but with the first letter lowercase.
// Example: "user_profile" -> "userProfile"
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// ToTitleWords title-cases every word of a human-readable phrase and joins
// the words without separators. Letters after the first one in each word
// keep their case.
// Example: "get user by id" -> "GetUserById"
// Example: "list OAuth clients" -> "ListOAuthClients"
func ToTitleWords(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	if len(words) == 0 {
		return ""
	}

	// Casers are stateful; one per call keeps this safe for concurrent use.
	caser := cases.Title(language.English, cases.NoLower)

	var result strings.Builder
	for _, w := range words {
		result.WriteString(caser.String(w))
	}
	return result.String()
}

// ToTitleCase converts the first letter to uppercase.
// Example: "hello" -> "Hello"
func ToTitleCase(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// IsIdentifierName reports whether s has identifier syntax: a letter, '_'
// or '$' followed by letters, digits, '_' or '$'. Reserved words are
// identifier names, so they may appear unquoted as property keys.
func IsIdentifierName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// IsIdentifier reports whether s is a valid TypeScript identifier: an
// identifier name that is not a reserved word.
func IsIdentifier(s string) bool {
	return IsIdentifierName(s) && !reservedWords[s]
}

// IsTypeName reports whether s can name an interface, enum or type alias:
// an identifier that is not one of the predefined type names.
func IsTypeName(s string) bool {
	return IsIdentifier(s) && !predefinedTypes[s]
}

// reservedWords holds the TypeScript reserved words, including those
// reserved only in strict mode.
var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true, "do": true,
	"else": true, "enum": true, "export": true, "extends": true, "false": true,
	"finally": true, "for": true, "function": true, "if": true, "import": true,
	"in": true, "instanceof": true, "new": true, "null": true, "return": true,
	"super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "var": true, "void": true, "while": true,
	"with": true, "implements": true, "interface": true, "let": true,
	"package": true, "private": true, "protected": true, "public": true,
	"static": true, "yield": true,
}

var predefinedTypes = map[string]bool{
	"any": true, "bigint": true, "boolean": true, "never": true, "number": true,
	"object": true, "string": true, "symbol": true, "undefined": true, "unknown": true,
}
