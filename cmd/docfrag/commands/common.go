package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docfrag/internal/config"
	"git.home.luguber.info/inful/docfrag/internal/document"
	derrors "git.home.luguber.info/inful/docfrag/internal/errors"
	"git.home.luguber.info/inful/docfrag/internal/logfields"
)

// Global carries per-invocation state shared by all subcommands.
type Global struct {
	Logger *slog.Logger
	RunID  string
	Ctx    context.Context
	Out    io.Writer
	Err    io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docfrag.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Render   RenderCmd   `cmd:"" help:"Render document files to Markdown or HTML"`
	Template TemplateCmd `cmd:"" help:"Execute a text/template file with the fragment functions"`
	Funcs    FuncsCmd    `cmd:"" help:"List the functions available to templates"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; sets up a bootstrap logger until the
// configuration has been read.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// loadConfig reads the configuration (falling back to defaults) and replaces
// the bootstrap logger with the configured one.
func (g *Global) loadConfig(root *CLI) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(root.Config)
	if err != nil {
		return nil, err
	}
	g.Logger = cfg.Logging.NewLogger(g.stderr(), root.Verbose).With(logfields.RunID(g.RunID))
	g.Logger.Debug("Configuration loaded", logfields.Path(root.Config))
	return cfg, nil
}

func (g *Global) context() context.Context {
	if g.Ctx == nil {
		return context.Background()
	}
	return g.Ctx
}

func (g *Global) stdout() io.Writer {
	if g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

func (g *Global) stderr() io.Writer {
	if g.Err == nil {
		return os.Stderr
	}
	return g.Err
}

// resolveFormat applies flag > env > config precedence and parses the result.
func resolveFormat(flag string, cfg *config.Config) (document.Format, error) {
	raw := config.ResolveFormat(flag, cfg)
	format, err := document.ParseFormat(raw)
	if err != nil {
		return "", derrors.ValidationFailed("format", err.Error())
	}
	return format, nil
}

// parseSetFlags turns repeated key=value flags into a map.
func parseSetFlags(values []string) (map[string]any, error) {
	result := make(map[string]any, len(values))
	for _, entry := range values {
		key, value, ok := strings.Cut(entry, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, derrors.ValidationFailed("set", fmt.Sprintf("invalid --set value: %s", entry))
		}
		result[key] = strings.TrimSpace(value)
	}
	return result, nil
}
