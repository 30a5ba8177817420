package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/docfrag/cmd/docfrag/commands"
	derrors "git.home.luguber.info/inful/docfrag/internal/errors"
	"git.home.luguber.info/inful/docfrag/internal/logfields"
	"git.home.luguber.info/inful/docfrag/internal/version"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// run parses args, executes the selected command and returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cli := &commands.CLI{}
	parser, err := kong.New(cli,
		kong.Name("docfrag"),
		kong.Description("Render HTML and Markdown fragments from structured documents and templates."),
		kong.Vars{"version": version.String()},
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		_, _ = io.WriteString(stderr, err.Error()+"\n")
		return 10
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		_, _ = io.WriteString(stderr, "docfrag: "+err.Error()+"\n")
		return 2
	}

	runID := uuid.NewString()
	global := &commands.Global{
		Logger: slog.Default().With(logfields.RunID(runID)),
		RunID:  runID,
		Ctx:    ctx,
		Out:    stdout,
		Err:    stderr,
	}

	if err := kctx.Run(global, cli); err != nil {
		return derrors.NewCLIErrorAdapter(cli.Verbose, global.Logger).WithWriter(stderr).Handle(err)
	}
	return 0
}
