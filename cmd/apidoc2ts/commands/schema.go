package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/apidoc2ts/generator"
	"github.com/erraggy/apidoc2ts/internal/cliutil"
	"github.com/erraggy/apidoc2ts/internal/config"
	"github.com/erraggy/apidoc2ts/parser"
)

// SchemaFlags contains flags for the schema command
type SchemaFlags struct {
	Name        string
	CustomTypes string
	NoComments  bool
	Verbose     bool
}

// SetupSchemaFlags creates and configures a FlagSet for the schema command.
func SetupSchemaFlags() (*flag.FlagSet, *SchemaFlags) {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	flags := &SchemaFlags{}

	fs.StringVar(&flags.Name, "name", "", "primary declaration name (default: schema title, else APIDOC2TS_DEFAULT_NAME)")
	fs.StringVar(&flags.CustomTypes, "custom-types", "", "comma separated names of externally defined types")
	fs.BoolVar(&flags.NoComments, "no-comments", false, "omit doc comments rendered from descriptions")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log progress to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: apidoc2ts schema [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Convert one JSON Schema fragment into TypeScript declarations on stdout.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  apidoc2ts schema --name User user.schema.json\n")
		cliutil.Writef(fs.Output(), "  cat request.yaml | apidoc2ts schema --custom-types Money -\n")
	}

	return fs, flags
}

// HandleSchema executes the schema command
func HandleSchema(args []string) error {
	return runSchema(args, os.Stdin, os.Stdout)
}

func runSchema(args []string, stdin io.Reader, stdout io.Writer) error {
	fs, flags := SetupSchemaFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("schema command requires exactly one file path or '-' for stdin")
	}

	cfg, err := loadDefaults()
	if err != nil {
		return err
	}

	p := parser.New()
	p.MaxInputBytes = cfg.MaxInputBytes

	var schema *parser.Schema
	if path := fs.Arg(0); path == StdinFilePath {
		schema, err = p.ParseSchemaReader(stdin)
	} else {
		schema, err = p.ParseSchemaFile(path)
	}
	if err != nil {
		return err
	}

	opts := cfg.GeneratorOptions(config.SplitList(flags.CustomTypes)...)
	opts = append(opts,
		generator.WithComments(!flags.NoComments),
		generator.WithLogger(cliutil.NewLogger(os.Stderr, flags.Verbose)),
	)
	gen, err := generator.New(opts...)
	if err != nil {
		return err
	}

	text, err := gen.CreateInterface(schema, flags.Name)
	if err != nil {
		return err
	}
	cliutil.Writef(stdout, "%s", text)
	return nil
}
