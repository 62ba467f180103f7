package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/apidoc2ts/generator"
	"github.com/erraggy/apidoc2ts/internal/cliutil"
	"github.com/erraggy/apidoc2ts/internal/config"
	"github.com/erraggy/apidoc2ts/runner"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Source      string
	Output      string
	Name        string
	CustomTypes string
	Workers     int
	NoValidate  bool
	Verbose     bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Source, "s", "", "ApiDoc endpoint document (api_data.json) (required)")
	fs.StringVar(&flags.Source, "source", "", "ApiDoc endpoint document (api_data.json) (required)")
	fs.StringVar(&flags.Output, "o", "", "output directory (required)")
	fs.StringVar(&flags.Output, "output", "", "output directory (required)")
	fs.StringVar(&flags.Name, "n", "", "output file name, e.g. api.d.ts (required)")
	fs.StringVar(&flags.Name, "name", "", "output file name, e.g. api.d.ts (required)")
	fs.StringVar(&flags.CustomTypes, "custom-types", "", "comma separated names of externally defined types")
	fs.IntVar(&flags.Workers, "workers", -1, "endpoints converted concurrently (default: APIDOC2TS_WORKERS, else GOMAXPROCS)")
	fs.BoolVar(&flags.NoValidate, "no-validate", false, "skip the endpoint document shape check")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log progress to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: apidoc2ts generate -s <source> -o <dir> -n <file> [flags]\n\n")
		cliutil.Writef(fs.Output(), "Generate TypeScript declarations for every endpoint of an ApiDoc document.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  apidoc2ts generate -s doc/api_data.json -o src/types -n api.d.ts\n")
		cliutil.Writef(fs.Output(), "  apidoc2ts generate -s api_data.json -o . -n api.d.ts --custom-types User,Account\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Each endpoint yields <Base>Request, <Base>Response and <Base>Error declarations\n")
		cliutil.Writef(fs.Output(), "  - Custom types are referenced verbatim and never declared\n")
		cliutil.Writef(fs.Output(), "  - The output file is only written when every endpoint converts\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("generate command takes no positional arguments")
	}
	if flags.Source == "" || flags.Output == "" || flags.Name == "" {
		fs.Usage()
		return fmt.Errorf("source (-s), output (-o) and name (-n) are required")
	}

	cfg, err := loadDefaults()
	if err != nil {
		return err
	}

	logger := cliutil.NewLogger(os.Stderr, flags.Verbose)
	gen, err := generator.New(append(cfg.GeneratorOptions(config.SplitList(flags.CustomTypes)...), generator.WithLogger(logger))...)
	if err != nil {
		return err
	}

	opts := append(cfg.RunnerOptions(), runner.WithGenerator(gen), runner.WithLogger(logger))
	if flags.Workers >= 0 {
		opts = append(opts, runner.WithWorkers(flags.Workers))
	}
	if flags.NoValidate {
		opts = append(opts, runner.WithValidation(false))
	}

	result := runner.Run(context.Background(), runner.Parameters{
		Source: flags.Source,
		Output: flags.Output,
		Name:   flags.Name,
	}, opts...)
	if result.Code != runner.Success {
		return errors.New(result.Message)
	}

	cliutil.Writef(os.Stdout, "%s\n", result.Message)
	return nil
}
