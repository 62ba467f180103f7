package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/apidoc2ts/internal/cliutil"
	"github.com/erraggy/apidoc2ts/internal/mcpserver"
)

// HandleMCP starts the MCP server on stdio and blocks until the client
// disconnects or the process is interrupted.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: apidoc2ts mcp\n\n")
		cliutil.Writef(fs.Output(), "Serve the generate_interfaces and schema_to_interface tools over MCP stdio.\n")
		cliutil.Writef(fs.Output(), "Defaults are read from APIDOC2TS_* environment variables.\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
