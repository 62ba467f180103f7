package generator

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/erraggy/apidoc2ts/internal/naming"
	"github.com/erraggy/apidoc2ts/parser"
)

// render writes declarations as TypeScript source. Each declaration ends
// with a newline and declarations are separated by one blank line.
func (g *Generator) render(decls []Declaration) string {
	var buf strings.Builder
	for i := range decls {
		if i > 0 {
			buf.WriteString("\n")
		}
		g.renderDeclaration(&buf, &decls[i])
	}
	return buf.String()
}

func (g *Generator) renderDeclaration(buf *strings.Builder, d *Declaration) {
	g.writeComment(buf, "", d.Description)
	if g.export {
		buf.WriteString("export ")
	}

	switch d.Kind {
	case DeclInterface:
		buf.WriteString("interface " + d.Name + " {\n")
		for _, p := range d.Properties {
			g.writeComment(buf, g.indent, p.Description)
			buf.WriteString(g.indent)
			buf.WriteString(propertyKey(p.Name))
			if p.Optional {
				buf.WriteString("?")
			}
			buf.WriteString(": " + p.Type + ";\n")
		}
		buf.WriteString("}\n")

	case DeclEnum:
		buf.WriteString("enum " + d.Name + " {\n")
		for _, m := range d.Members {
			buf.WriteString(g.indent + m.Name + " = " + formatLiteral(m.Value) + ",\n")
		}
		buf.WriteString("}\n")

	case DeclAlias:
		buf.WriteString("type " + d.Name + " = " + d.Target + ";\n")
	}
}

// writeComment emits a description as a doc comment: a single line for
// one-line text, a block otherwise.
func (g *Generator) writeComment(buf *strings.Builder, indent, text string) {
	text = strings.TrimSpace(text)
	if !g.comments || text == "" {
		return
	}
	text = strings.ReplaceAll(text, "*/", "*\\/")

	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		buf.WriteString(indent + "/** " + text + " */\n")
		return
	}
	buf.WriteString(indent + "/**\n")
	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			buf.WriteString(indent + " *\n")
			continue
		}
		buf.WriteString(indent + " * " + line + "\n")
	}
	buf.WriteString(indent + " */\n")
}

// propertyKey quotes property names that are not bare identifiers.
func propertyKey(name string) string {
	if naming.IsIdentifierName(name) {
		return name
	}
	return quote(name)
}

// formatLiteral renders an enum value. Strings are double-quoted, every
// other kind is written exactly as it appeared in the source. TypeScript only
// accepts string and numeric enum initializers, so boolean, null and
// composite members produce declarations the compiler rejects.
func formatLiteral(v parser.Literal) string {
	if v.Kind == parser.LiteralString {
		return quote(v.Raw)
	}
	return v.Raw
}

// quote returns s as a JSON string literal, which TypeScript accepts as is.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return `"` + s + `"`
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
