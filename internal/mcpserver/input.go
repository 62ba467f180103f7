package mcpserver

import (
	"fmt"

	"github.com/erraggy/apidoc2ts/internal/config"
	"github.com/erraggy/apidoc2ts/internal/options"
	"github.com/erraggy/apidoc2ts/parser"
)

// docInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a document on disk (JSON or YAML)"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (JSON or YAML)"`
}

func (d docInput) check() error {
	if err := options.ExactlyOne("input", options.Field{Name: "file", Set: d.File != ""}, options.Field{Name: "content", Set: d.Content != ""}); err != nil {
		return err
	}
	if int64(len(d.Content)) > cfg.MaxInlineSize {
		return fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set %sMAX_INLINE_SIZE to increase",
			len(d.Content), cfg.MaxInlineSize, config.Prefix)
	}
	return nil
}

func newParser(validate bool) *parser.Parser {
	p := parser.New()
	p.MaxInputBytes = cfg.MaxInputBytes
	p.ValidateEnvelope = validate
	return p
}

// endpoints decodes an endpoint document from whichever input was provided.
func (d docInput) endpoints(validate bool) ([]parser.Endpoint, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	p := newParser(validate)
	if d.File != "" {
		return p.ParseEndpointsFile(d.File)
	}
	return p.ParseEndpoints([]byte(d.Content))
}

// schema decodes a single schema from whichever input was provided.
func (d docInput) schema() (*parser.Schema, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	p := newParser(false)
	if d.File != "" {
		return p.ParseSchemaFile(d.File)
	}
	return p.ParseSchema([]byte(d.Content))
}
