package generator

import (
	"fmt"
	"strings"

	"github.com/erraggy/apidoc2ts/internal/naming"
	"github.com/erraggy/apidoc2ts/parser"
	"github.com/erraggy/apidoc2ts/tserrors"
)

// DefaultName is the root declaration name used when none is supplied and
// the schema has no title.
const DefaultName = "Interface"

// DefaultIndent is the indentation of declaration members.
const DefaultIndent = "    "

// Result contains the output of one generation pass.
type Result struct {
	// Name is the primary declaration name ("" for an empty schema).
	Name string
	// Declarations lists the primary declaration first, then every nested
	// declaration in order of discovery.
	Declarations []Declaration
	// Text is the rendered TypeScript source ("" for an empty schema).
	Text string
}

// Names returns the names of all declarations in output order.
func (r *Result) Names() []string {
	names := make([]string, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		names = append(names, d.Name)
	}
	return names
}

// Generator converts JSON Schema fragments into TypeScript declarations.
//
// A Generator holds only immutable configuration. Every call works on its
// own pass state, so one Generator may be used from many goroutines.
type Generator struct {
	customTypes map[string]bool
	customOrder []string
	nameFunc    NameFunc
	defaultName string
	indent      string
	export      bool
	comments    bool
	logger      parser.Logger
}

// Option is a function that configures a Generator
type Option func(*generatorConfig) error

// generatorConfig holds configuration for a Generator
type generatorConfig struct {
	customTypes []string
	nameFunc    NameFunc
	defaultName string
	indent      string
	export      bool
	comments    bool
	logger      parser.Logger
}

// New creates a Generator using functional options.
//
// Example:
//
//	gen, err := generator.New(
//	    generator.WithCustomTypes("User", "Account"),
//	    generator.WithIndent("  "),
//	)
func New(opts ...Option) (*Generator, error) {
	cfg := &generatorConfig{
		nameFunc:    PascalCaseNames,
		defaultName: DefaultName,
		indent:      DefaultIndent,
		export:      true,
		comments:    true,
		logger:      parser.NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("generator: invalid options: %w", err)
		}
	}

	g := &Generator{
		customTypes: make(map[string]bool, len(cfg.customTypes)),
		nameFunc:    cfg.nameFunc,
		defaultName: cfg.defaultName,
		indent:      cfg.indent,
		export:      cfg.export,
		comments:    cfg.comments,
		logger:      cfg.logger,
	}
	for _, name := range cfg.customTypes {
		if !g.customTypes[name] {
			g.customTypes[name] = true
			g.customOrder = append(g.customOrder, name)
		}
	}
	return g, nil
}

// WithCustomTypes adds names of externally defined types. Properties typed
// with one of these names reference it verbatim and no declaration is ever
// emitted under these names.
func WithCustomTypes(names ...string) Option {
	return func(cfg *generatorConfig) error {
		for _, name := range names {
			name = strings.TrimSpace(name)
			if !naming.IsIdentifier(name) {
				return &tserrors.ConfigError{Option: "custom types", Value: name, Message: "must be a valid identifier"}
			}
			cfg.customTypes = append(cfg.customTypes, name)
		}
		return nil
	}
}

// WithNameFunc sets the policy that derives nested declaration names from
// property names and root names from schema titles.
// Default: PascalCaseNames
func WithNameFunc(fn NameFunc) Option {
	return func(cfg *generatorConfig) error {
		if fn == nil {
			return &tserrors.ConfigError{Option: "name func", Message: "cannot be nil"}
		}
		cfg.nameFunc = fn
		return nil
	}
}

// WithDefaultName sets the root declaration name used when no name is
// supplied and the schema has no title. An empty name disables the
// fallback, so such calls fail with a NamingError.
// Default: "Interface"
func WithDefaultName(name string) Option {
	return func(cfg *generatorConfig) error {
		if name != "" && !naming.IsTypeName(name) {
			return &tserrors.ConfigError{Option: "default name", Value: name, Message: "must be a valid identifier"}
		}
		cfg.defaultName = name
		return nil
	}
}

// WithIndent sets the indentation of declaration members.
// Default: four spaces
func WithIndent(indent string) Option {
	return func(cfg *generatorConfig) error {
		if strings.TrimLeft(indent, " \t") != "" {
			return &tserrors.ConfigError{Option: "indent", Value: indent, Message: "must contain only spaces and tabs"}
		}
		cfg.indent = indent
		return nil
	}
}

// WithExport enables or disables the export keyword on declarations.
// Default: true
func WithExport(enabled bool) Option {
	return func(cfg *generatorConfig) error {
		cfg.export = enabled
		return nil
	}
}

// WithComments enables or disables doc comments rendered from schema
// descriptions.
// Default: true
func WithComments(enabled bool) Option {
	return func(cfg *generatorConfig) error {
		cfg.comments = enabled
		return nil
	}
}

// WithLogger sets the structured logger used for debug output.
// Default: parser.NopLogger
func WithLogger(logger parser.Logger) Option {
	return func(cfg *generatorConfig) error {
		if logger == nil {
			logger = parser.NopLogger{}
		}
		cfg.logger = logger
		return nil
	}
}

// CustomTypes returns the known custom type names in the order they were
// configured.
func (g *Generator) CustomTypes() []string {
	return append([]string(nil), g.customOrder...)
}

// IsCustomType reports whether name is a known custom type.
func (g *Generator) IsCustomType(name string) bool {
	return g.customTypes[name]
}

// CreateInterface returns the TypeScript declarations for schema under the
// given name. An empty name asks the generator to derive one from the
// schema title or fall back to the default name. A schema with neither a
// type nor properties yields "" and no error.
//
// On failure no declaration text is returned.
func (g *Generator) CreateInterface(schema *parser.Schema, name string) (string, error) {
	result, err := g.Generate(schema, name)
	if err != nil {
		return "", err
	}
	return result.Text, nil
}

// Generate runs one generation pass and returns the declaration units along
// with the rendered text.
func (g *Generator) Generate(schema *parser.Schema, name string) (*Result, error) {
	if schema.IsEmpty() {
		return &Result{}, nil
	}

	rootName, err := g.rootName(schema, name)
	if err != nil {
		return nil, err
	}

	p := newPass(g, schema, rootName)
	if err := p.run(schema); err != nil {
		return nil, err
	}

	decls := p.declarations()
	return &Result{
		Name:         rootName,
		Declarations: decls,
		Text:         g.render(decls),
	}, nil
}

// rootName picks the primary declaration name: the supplied name, else the
// schema title, else the configured default.
func (g *Generator) rootName(schema *parser.Schema, name string) (string, error) {
	source := name
	if name == "" && schema.Title != "" {
		source = schema.Title
		name = g.nameFunc(schema.Title)
	}
	if name == "" {
		name = g.defaultName
	}
	if name == "" {
		return "", &tserrors.NamingError{Path: "$", Message: "no declaration name supplied and none can be derived"}
	}
	if !naming.IsTypeName(name) {
		return "", &tserrors.NamingError{Path: "$", Source: source, Message: fmt.Sprintf("%q is not a valid declaration name", name)}
	}
	return name, nil
}
