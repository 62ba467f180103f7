package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/erraggy/apidoc2ts/converter"
	"github.com/erraggy/apidoc2ts/generator"
	"github.com/erraggy/apidoc2ts/internal/fileutil"
	"github.com/erraggy/apidoc2ts/internal/pathutil"
	"github.com/erraggy/apidoc2ts/parser"
	"github.com/erraggy/apidoc2ts/tserrors"
)

// SuccessMessage is the Result message of a successful run.
const SuccessMessage = "Successfully generated interfaces"

// ExitCode is the outcome of a run.
type ExitCode int

const (
	// Success means the output file was written.
	Success ExitCode = iota
	// Fail means the run stopped on an error; nothing was written.
	Fail
)

// String returns the name of the exit code.
func (c ExitCode) String() string {
	switch c {
	case Success:
		return "success"
	case Fail:
		return "fail"
	default:
		return fmt.Sprintf("ExitCode(%d)", int(c))
	}
}

// Parameters describe one run.
type Parameters struct {
	// Source is the path of the ApiDoc endpoint document.
	Source string
	// Output is the directory the declaration file is written to.
	// Empty means the current directory.
	Output string
	// Name is the file name of the declaration file.
	Name string
}

// Result is the outcome of a run. Code is Fail whenever Message carries an
// error text.
type Result struct {
	Message string
	Code    ExitCode
}

// Runner executes the read, parse, convert and write pipeline.
type Runner struct {
	parser    *parser.Parser
	converter *converter.Converter
	logger    parser.Logger
}

// Option is a function that configures a Runner
type Option func(*runnerConfig) error

// runnerConfig holds configuration for a Runner
type runnerConfig struct {
	gen           *generator.Generator
	workers       int
	logger        parser.Logger
	validate      bool
	maxInputBytes int64
}

// New creates a Runner using functional options.
func New(opts ...Option) (*Runner, error) {
	cfg := &runnerConfig{
		logger:        parser.NopLogger{},
		validate:      true,
		maxInputBytes: parser.DefaultMaxInputBytes,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("runner: invalid options: %w", err)
		}
	}

	p := parser.New()
	p.ValidateEnvelope = cfg.validate
	p.MaxInputBytes = cfg.maxInputBytes

	conv, err := converter.New(cfg.gen,
		converter.WithWorkers(cfg.workers),
		converter.WithLogger(cfg.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}

	return &Runner{parser: p, converter: conv, logger: cfg.logger}, nil
}

// WithGenerator sets the generator used for every endpoint.
// Default: a generator with default settings
func WithGenerator(gen *generator.Generator) Option {
	return func(cfg *runnerConfig) error {
		cfg.gen = gen
		return nil
	}
}

// WithWorkers bounds the number of endpoints converted concurrently.
// Default: GOMAXPROCS
func WithWorkers(n int) Option {
	return func(cfg *runnerConfig) error {
		if n < 0 {
			return &tserrors.ConfigError{Option: "workers", Value: n, Message: "must not be negative"}
		}
		cfg.workers = n
		return nil
	}
}

// WithLogger sets the structured logger.
// Default: parser.NopLogger
func WithLogger(logger parser.Logger) Option {
	return func(cfg *runnerConfig) error {
		if logger == nil {
			logger = parser.NopLogger{}
		}
		cfg.logger = logger
		return nil
	}
}

// WithValidation enables or disables the endpoint envelope check.
// Default: true
func WithValidation(enabled bool) Option {
	return func(cfg *runnerConfig) error {
		cfg.validate = enabled
		return nil
	}
}

// WithMaxInputBytes caps the size of the source document. Zero disables
// the limit.
// Default: parser.DefaultMaxInputBytes
func WithMaxInputBytes(n int64) Option {
	return func(cfg *runnerConfig) error {
		if n < 0 {
			return &tserrors.ConfigError{Option: "max input bytes", Value: n, Message: "must not be negative"}
		}
		cfg.maxInputBytes = n
		return nil
	}
}

// Run reads the source document, converts every endpoint and writes the
// concatenated declarations to Output/Name. It never returns an error:
// failures are reported through Result with Code Fail, and in that case no
// output file is created or modified.
func (r *Runner) Run(ctx context.Context, params Parameters) Result {
	start := time.Now()
	if err := r.run(ctx, params); err != nil {
		r.logger.Error("generation failed", "source", params.Source, "error", err)
		return Result{Message: err.Error(), Code: Fail}
	}
	r.logger.Info("generated interfaces",
		"source", params.Source,
		"output", filepath.Join(params.Output, params.Name),
		"elapsed", time.Since(start),
	)
	return Result{Message: SuccessMessage, Code: Success}
}

// RunAsync starts Run in a goroutine. The returned channel delivers exactly
// one Result and is then closed.
func (r *Runner) RunAsync(ctx context.Context, params Parameters) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		ch <- r.Run(ctx, params)
	}()
	return ch
}

func (r *Runner) run(ctx context.Context, params Parameters) error {
	if params.Name == "" {
		return &tserrors.ConfigError{Option: "name", Message: "output file name is required"}
	}
	if params.Name != filepath.Base(params.Name) {
		return &tserrors.ConfigError{Option: "name", Value: params.Name, Message: "must be a file name, not a path"}
	}

	endpoints, err := r.parser.ParseEndpointsFile(params.Source)
	if err != nil {
		return err
	}
	r.logger.Debug("parsed endpoints", "source", params.Source, "count", len(endpoints))

	results, err := r.converter.Convert(ctx, endpoints)
	if err != nil {
		return err
	}

	path, err := pathutil.SanitizeOutputPath(filepath.Join(params.Output, params.Name))
	if err != nil {
		return &tserrors.OutputError{Path: params.Output, Message: "invalid output path", Cause: err}
	}
	if err := fileutil.WriteAtomic(path, []byte(converter.Join(results)), fileutil.ReadableByAll); err != nil {
		return &tserrors.OutputError{Path: path, Message: "failed to write declarations", Cause: err}
	}
	return nil
}

// Run executes one run with a Runner built from opts.
func Run(ctx context.Context, params Parameters, opts ...Option) Result {
	r, err := New(opts...)
	if err != nil {
		return Result{Message: err.Error(), Code: Fail}
	}
	return r.Run(ctx, params)
}
