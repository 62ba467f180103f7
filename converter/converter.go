package converter

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/erraggy/apidoc2ts/generator"
	"github.com/erraggy/apidoc2ts/internal/naming"
	"github.com/erraggy/apidoc2ts/internal/pathutil"
	"github.com/erraggy/apidoc2ts/parser"
	"github.com/erraggy/apidoc2ts/tserrors"
	"golang.org/x/sync/errgroup"
)

// Suffixes appended to an endpoint's base name.
const (
	RequestSuffix  = "Request"
	ResponseSuffix = "Response"
	ErrorSuffix    = "Error"
)

// Result holds the declarations generated for one endpoint. Each text is ""
// when the corresponding schema is absent or empty.
type Result struct {
	Endpoint          parser.Endpoint
	Name              string
	RequestInterface  string
	ResponseInterface string
	ErrorInterface    string
}

// Text joins the non-empty declaration texts of the endpoint, request first.
func (r *Result) Text() string {
	return joinNonEmpty(r.RequestInterface, r.ResponseInterface, r.ErrorInterface)
}

// Join concatenates the texts of all results in order, skipping endpoints
// that produced nothing.
func Join(results []Result) string {
	texts := make([]string, len(results))
	for i := range results {
		texts[i] = results[i].Text()
	}
	return joinNonEmpty(texts...)
}

func joinNonEmpty(texts ...string) string {
	parts := make([]string, 0, len(texts))
	for _, t := range texts {
		if t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n")
}

// Converter turns ApiDoc endpoints into TypeScript declarations.
type Converter struct {
	gen     *generator.Generator
	workers int
	logger  parser.Logger
}

// Option is a function that configures a Converter
type Option func(*converterConfig) error

// converterConfig holds configuration for a Converter
type converterConfig struct {
	workers int
	logger  parser.Logger
}

// New creates a Converter that generates declarations with gen. A nil gen
// uses a generator with default settings.
func New(gen *generator.Generator, opts ...Option) (*Converter, error) {
	cfg := &converterConfig{
		workers: runtime.GOMAXPROCS(0),
		logger:  parser.NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("converter: invalid options: %w", err)
		}
	}

	if gen == nil {
		var err error
		gen, err = generator.New(generator.WithLogger(cfg.logger))
		if err != nil {
			return nil, fmt.Errorf("converter: %w", err)
		}
	}

	return &Converter{gen: gen, workers: cfg.workers, logger: cfg.logger}, nil
}

// WithWorkers bounds the number of endpoints converted concurrently.
// Zero selects GOMAXPROCS.
// Default: GOMAXPROCS
func WithWorkers(n int) Option {
	return func(cfg *converterConfig) error {
		if n < 0 {
			return &tserrors.ConfigError{Option: "workers", Value: n, Message: "must not be negative"}
		}
		if n == 0 {
			n = runtime.GOMAXPROCS(0)
		}
		cfg.workers = n
		return nil
	}
}

// WithLogger sets the structured logger used for progress output.
// Default: parser.NopLogger
func WithLogger(logger parser.Logger) Option {
	return func(cfg *converterConfig) error {
		if logger == nil {
			logger = parser.NopLogger{}
		}
		cfg.logger = logger
		return nil
	}
}

// Generator returns the generator used for every endpoint.
func (c *Converter) Generator() *generator.Generator {
	return c.gen
}

// Convert converts every endpoint. Endpoints are processed concurrently;
// results are returned in input order. The first failure cancels the
// remaining work and is returned with the endpoint identity attached.
func (c *Converter) Convert(ctx context.Context, endpoints []parser.Endpoint) ([]Result, error) {
	results := make([]Result, len(endpoints))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i := range endpoints {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := c.ConvertEndpoint(endpoints[i])
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Debug("converted endpoints", "count", len(endpoints), "workers", c.workers)
	return results, nil
}

// ConvertEndpoint generates the request, response and error declarations
// of one endpoint.
func (c *Converter) ConvertEndpoint(e parser.Endpoint) (Result, error) {
	base, err := BaseName(e)
	if err != nil {
		return Result{}, fmt.Errorf("converter: %s: %w", e.Identity(), err)
	}

	r := Result{Endpoint: e, Name: base}
	parts := []struct {
		schema *parser.Schema
		suffix string
		dst    *string
	}{
		{e.Request, RequestSuffix, &r.RequestInterface},
		{e.Response, ResponseSuffix, &r.ResponseInterface},
		{e.Error, ErrorSuffix, &r.ErrorInterface},
	}
	for _, part := range parts {
		text, err := c.gen.CreateInterface(part.schema, base+part.suffix)
		if err != nil {
			return Result{}, fmt.Errorf("converter: %s: %s: %w", e.Identity(), strings.ToLower(part.suffix), err)
		}
		*part.dst = text
	}

	c.logger.Debug("converted endpoint", "endpoint", e.Identity(), "name", base)
	return r, nil
}

// BaseName derives the declaration base name of an endpoint: its name in
// PascalCase, else its group and title, else its method and path.
func BaseName(e parser.Endpoint) (string, error) {
	var base, source string
	switch {
	case e.Name != "":
		source = e.Name
		base = naming.ToPascalCase(e.Name)
	case e.Title != "":
		source = strings.TrimSpace(e.Group + " " + e.Title)
		base = naming.ToTitleWords(e.Group) + naming.ToTitleWords(e.Title)
	case e.Method != "" || e.Path != "":
		source = strings.TrimSpace(e.Method + " " + e.Path)
		base = naming.ToTitleWords(strings.ToLower(e.Method)) + naming.ToPascalCase(e.Path)
	}

	if base == "" {
		return "", &tserrors.NamingError{
			Path:    pathutil.Index(pathutil.Root, e.Index),
			Message: "endpoint has no name, title, method or path to derive a declaration name from",
		}
	}
	if !naming.IsIdentifier(base) {
		return "", &tserrors.NamingError{
			Path:    pathutil.Index(pathutil.Root, e.Index),
			Source:  source,
			Message: fmt.Sprintf("derived name %q is not a valid identifier", base),
		}
	}
	return base, nil
}
