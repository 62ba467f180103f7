package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/apidoc2ts/tserrors"
	"go.yaml.in/yaml/v4"
)

// DefaultMaxInputBytes is the default cap on the size of a source document.
const DefaultMaxInputBytes int64 = 64 << 20

// Parser decodes ApiDoc endpoint documents and standalone schemas.
// JSON and YAML input are both accepted; mapping order is preserved.
type Parser struct {
	// MaxInputBytes caps the size of a source document.
	// 0 means no limit. Default: DefaultMaxInputBytes
	MaxInputBytes int64

	// ValidateEnvelope checks the endpoint envelope shape (list or map of
	// endpoint objects with request and response schemas) before decoding.
	// Default: true
	ValidateEnvelope bool
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		MaxInputBytes:    DefaultMaxInputBytes,
		ValidateEnvelope: true,
	}
}

// ParseEndpointsFile reads and decodes the endpoint document at path.
func (p *Parser) ParseEndpointsFile(path string) ([]Endpoint, error) {
	data, err := p.readFile(path)
	if err != nil {
		return nil, err
	}
	return p.parseEndpoints(data, path)
}

// ParseEndpointsReader reads and decodes an endpoint document from r.
func (p *Parser) ParseEndpointsReader(r io.Reader) ([]Endpoint, error) {
	data, err := p.readAll(r, "")
	if err != nil {
		return nil, err
	}
	return p.parseEndpoints(data, "")
}

// ParseEndpoints decodes an endpoint document.
func (p *Parser) ParseEndpoints(data []byte) ([]Endpoint, error) {
	return p.parseEndpoints(data, "")
}

func (p *Parser) parseEndpoints(data []byte, source string) ([]Endpoint, error) {
	root, err := p.parseNode(data, source)
	if err != nil {
		return nil, err
	}
	d := &decoder{source: source}
	if p.ValidateEnvelope {
		if err := d.validateEnvelope(root); err != nil {
			return nil, err
		}
	}
	return d.decodeEndpoints(root)
}

// ParseSchemaFile reads and decodes a single schema from path.
func (p *Parser) ParseSchemaFile(path string) (*Schema, error) {
	data, err := p.readFile(path)
	if err != nil {
		return nil, err
	}
	return p.parseSchema(data, path)
}

// ParseSchemaReader reads and decodes a single schema from r.
func (p *Parser) ParseSchemaReader(r io.Reader) (*Schema, error) {
	data, err := p.readAll(r, "")
	if err != nil {
		return nil, err
	}
	return p.parseSchema(data, "")
}

// ParseSchema decodes a single schema document.
func (p *Parser) ParseSchema(data []byte) (*Schema, error) {
	return p.parseSchema(data, "")
}

func (p *Parser) parseSchema(data []byte, source string) (*Schema, error) {
	root, err := p.parseNode(data, source)
	if err != nil {
		return nil, err
	}
	d := &decoder{source: source}
	return d.decodeSchema(root, "$")
}

// ParseSchema decodes a single schema document with default settings.
func ParseSchema(data []byte) (*Schema, error) {
	return New().ParseSchema(data)
}

// ParseEndpoints decodes an endpoint document with default settings.
func ParseEndpoints(data []byte) ([]Endpoint, error) {
	return New().ParseEndpoints(data)
}

func (p *Parser) parseNode(data []byte, source string) (*yaml.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &tserrors.InputError{Path: source, Message: "document is empty"}
	}
	if p.MaxInputBytes > 0 && int64(len(data)) > p.MaxInputBytes {
		return nil, &tserrors.InputError{
			Path:    source,
			Message: fmt.Sprintf("document is %s, limit is %s", FormatBytes(int64(len(data))), FormatBytes(p.MaxInputBytes)),
		}
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &tserrors.InputError{Path: source, Message: "failed to parse JSON/YAML", Cause: err}
	}
	return &root, nil
}

func (p *Parser) readFile(path string) ([]byte, error) {
	f, err := os.Open(path) //nolint:gosec // G304: reading the caller-supplied source is the point
	if err != nil {
		return nil, &tserrors.InputError{Path: path, Message: "failed to read file", Cause: err}
	}
	defer func() { _ = f.Close() }()
	return p.readAll(f, path)
}

// readAll reads r, stopping one byte past MaxInputBytes so oversized input
// is reported instead of silently truncated.
func (p *Parser) readAll(r io.Reader, source string) ([]byte, error) {
	if p.MaxInputBytes > 0 {
		r = io.LimitReader(r, p.MaxInputBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &tserrors.InputError{Path: source, Message: "failed to read input", Cause: err}
	}
	return data, nil
}

// FormatBytes formats a byte count into a human-readable string using binary units (KiB, MiB, etc.)
func FormatBytes(size int64) string {
	if size < 0 {
		return fmt.Sprintf("%d B", size)
	}

	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
