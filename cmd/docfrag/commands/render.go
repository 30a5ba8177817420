package commands

import (
	"context"
	"fmt"
	"log/slog"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docfrag/internal/config"
	"git.home.luguber.info/inful/docfrag/internal/document"
	"git.home.luguber.info/inful/docfrag/internal/generator"
	"git.home.luguber.info/inful/docfrag/internal/logfields"
	"git.home.luguber.info/inful/docfrag/internal/metrics"
	"git.home.luguber.info/inful/docfrag/internal/watch"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Inputs    []string `arg:"" name:"input" help:"Document files (YAML)"`
	Format    string   `short:"f" help:"Output format (markdown, html). Overrides DOCFRAG_FORMAT and output.format"`
	OutputDir string   `short:"o" name:"output-dir" help:"Output directory. Overrides output.directory" type:"path"`
	Stdout    bool     `help:"Print rendered output instead of writing files"`
	Watch     bool     `short:"w" help:"Re-render when inputs change"`
}

func (r *RenderCmd) Run(g *Global, root *CLI) error {
	cfg, err := g.loadConfig(root)
	if err != nil {
		return err
	}
	if r.OutputDir != "" {
		cfg.Output.Directory = r.OutputDir
	}
	format, err := resolveFormat(r.Format, cfg)
	if err != nil {
		return err
	}

	recorder, registry := newRecorder(cfg)
	gen := generator.New(cfg, generator.WithLogger(g.Logger), generator.WithRecorder(recorder))
	ctx := g.context()

	runErr := r.process(ctx, g, gen, r.Inputs, format)
	if runErr == nil {
		g.Logger.Info("Render complete",
			logfields.Format(string(format)),
			slog.Int("documents", len(r.Inputs)),
			logfields.Output(cfg.Output.Directory))
		if r.Watch {
			runErr = r.watch(ctx, g, gen, format)
		}
	}

	if registry != nil {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile, registry); err != nil {
			if runErr == nil {
				return err
			}
			g.Logger.Warn("Failed to write metrics", logfields.Path(cfg.Metrics.Textfile), logfields.Error(err))
		}
	}
	return runErr
}

// newRecorder returns a Prometheus recorder and its registry when a metrics
// textfile is configured.
func newRecorder(cfg *config.Config) (metrics.Recorder, *prom.Registry) {
	if cfg.Metrics.Textfile == "" {
		return metrics.NoopRecorder{}, nil
	}
	registry := prom.NewRegistry()
	return metrics.NewPrometheusRecorder(registry), registry
}

func (r *RenderCmd) process(ctx context.Context, g *Global, gen *generator.Generator, inputs []string, format document.Format) error {
	if !r.Stdout {
		_, err := gen.GenerateAll(ctx, inputs, format)
		return err
	}

	for _, input := range inputs {
		res, err := gen.Render(ctx, input, format)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprint(g.stdout(), res.Content); err != nil {
			return err
		}
	}
	return nil
}

func (r *RenderCmd) watch(ctx context.Context, g *Global, gen *generator.Generator, format document.Format) error {
	w, err := watch.New(r.Inputs, watch.DefaultDebounce, g.Logger)
	if err != nil {
		return err
	}
	return w.Run(ctx, func(ctx context.Context, changed []string) {
		// Failures are logged by the generator; watching continues.
		if err := r.process(ctx, g, gen, changed, format); err != nil {
			g.Logger.Warn("Re-render failed", slog.Any("changed", changed), logfields.Error(err))
		}
	})
}
