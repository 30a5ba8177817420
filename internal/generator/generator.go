// Package generator turns document files into rendered output files.
package generator

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"time"

	"git.home.luguber.info/inful/docfrag/internal/config"
	"git.home.luguber.info/inful/docfrag/internal/document"
	derrors "git.home.luguber.info/inful/docfrag/internal/errors"
	"git.home.luguber.info/inful/docfrag/internal/frontmatter"
	"git.home.luguber.info/inful/docfrag/internal/logfields"
	"git.home.luguber.info/inful/docfrag/internal/metrics"
	"git.home.luguber.info/inful/docfrag/internal/templates"

	"github.com/inful/mdfp"
)

// Result describes one rendered document.
type Result struct {
	Input   string
	Output  string // full output path
	Content string
	Bytes   int
	Stats   document.Stats
}

// Generator renders documents according to a configuration.
type Generator struct {
	cfg      *config.Config
	recorder metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithClock overrides the time used for lastmod.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// New creates a Generator. A nil cfg uses config.Default.
func New(cfg *config.Config, opts ...Option) *Generator {
	if cfg == nil {
		cfg = config.Default()
	}
	g := &Generator{
		cfg:      cfg,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// OutputPath returns where input is written for format.
func (g *Generator) OutputPath(input string, format document.Format) string {
	return filepath.Join(g.cfg.Output.Directory, outputName(input, format))
}

func outputName(input string, format document.Format) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + format.Extension()
}

// Render loads, validates and renders input without writing it. The
// frontmatter of an existing output file is consulted so the uid and lastmod
// of unchanged documents stay stable.
func (g *Generator) Render(ctx context.Context, input string, format document.Format) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := document.Load(input)
	if err != nil {
		return nil, err
	}
	if err := document.Validate(doc); err != nil {
		return nil, err
	}

	body, stats, err := document.Render(doc, format)
	if err != nil {
		return nil, derrors.RenderFailed(input, err)
	}

	res := &Result{Input: input, Output: g.OutputPath(input, format), Content: body, Stats: stats}
	if format == document.FormatMarkdown && g.cfg.Frontmatter.Enabled {
		content, err := g.withFrontmatter(doc, body, res.Output)
		if err != nil {
			return nil, derrors.RenderFailed(input, err)
		}
		res.Content = content
	}
	res.Bytes = len(res.Content)
	return res, nil
}

func (g *Generator) withFrontmatter(doc *document.Document, body, outputPath string) (string, error) {
	fields := map[string]any{}
	if doc.Title != "" {
		fields["title"] = doc.Title
	}
	maps.Copy(fields, g.cfg.Frontmatter.Fields)
	maps.Copy(fields, doc.Frontmatter)

	previous := g.previousFields(outputPath)
	if g.cfg.Frontmatter.UID {
		if uid, ok := previous[frontmatter.UIDField]; ok {
			fields[frontmatter.UIDField] = uid
		}
		if _, _, err := frontmatter.EnsureUID(fields); err != nil {
			return "", err
		}
	}
	if g.cfg.Frontmatter.Fingerprint {
		for _, k := range []string{mdfp.FingerprintField, frontmatter.LastmodField} {
			if v, ok := previous[k]; ok {
				fields[k] = v
			}
		}
		if _, _, err := frontmatter.UpsertFingerprint(fields, []byte(body), g.now()); err != nil {
			return "", err
		}
	}

	page := &frontmatter.Page{Fields: fields, Body: []byte(body), Newline: "\n"}
	out, err := page.Bytes()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// previousFields reads the frontmatter of an earlier run. Missing or
// unreadable output is treated as having no fields.
func (g *Generator) previousFields(path string) map[string]any {
	// #nosec G304 -- path is derived from the configured output directory.
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			g.logger.Warn("Cannot read previous output", logfields.Output(path), logfields.Error(err))
		}
		return nil
	}
	page, err := frontmatter.Read(data)
	if err != nil {
		g.logger.Warn("Ignoring malformed frontmatter in previous output", logfields.Output(path), logfields.Error(err))
		return nil
	}
	return page.Fields
}

// Generate renders input and writes it below the output directory.
func (g *Generator) Generate(ctx context.Context, input string, format document.Format) (*Result, error) {
	start := time.Now()
	res, err := g.generate(ctx, input, format)
	elapsed := time.Since(start)

	if err != nil {
		result := metrics.ResultFailed
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			result = metrics.ResultCanceled
		}
		g.recorder.IncDocument(string(format), result)
		g.logger.Error("Document failed", logfields.Document(input), logfields.Format(string(format)), logfields.Error(err))
		return nil, err
	}

	g.recorder.IncDocument(string(format), metrics.ResultSuccess)
	g.recorder.ObserveRenderDuration(string(format), elapsed)
	for blockType, n := range res.Stats.ByType {
		g.recorder.AddBlocks(string(blockType), n)
	}
	g.logger.Info("Rendered document",
		logfields.Document(input),
		logfields.Output(res.Output),
		logfields.Format(string(format)),
		logfields.Blocks(res.Stats.Rendered),
		logfields.Bytes(res.Bytes),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))
	if res.Stats.Skipped > 0 {
		g.logger.Debug("Skipped disabled blocks", logfields.Document(input), slog.Int("skipped", res.Stats.Skipped))
	}
	return res, nil
}

func (g *Generator) generate(ctx context.Context, input string, format document.Format) (*Result, error) {
	res, err := g.Render(ctx, input, format)
	if err != nil {
		return nil, err
	}
	if _, err := templates.WriteGeneratedFile(g.cfg.Output.Directory, outputName(input, format), res.Content, g.cfg.Output.Overwrite); err != nil {
		return nil, err
	}
	return res, nil
}

// GenerateAll generates inputs in order and stops at the first failure or
// when ctx is cancelled. Results of completed documents are returned either way.
func (g *Generator) GenerateAll(ctx context.Context, inputs []string, format document.Format) ([]*Result, error) {
	results := make([]*Result, 0, len(inputs))
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := g.Generate(ctx, input, format)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
