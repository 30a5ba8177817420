package commands

import (
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docfrag/internal/errors"
	"git.home.luguber.info/inful/docfrag/internal/logfields"
	"git.home.luguber.info/inful/docfrag/internal/templates"
)

// TemplateCmd implements the 'template' command.
type TemplateCmd struct {
	File   string   `arg:"" help:"Template file (text/template, optional YAML frontmatter with defaults)" type:"existingfile"`
	Data   string   `short:"d" help:"YAML file with template data" type:"existingfile"`
	Set    []string `name:"set" help:"Override template data (key=value)"`
	Output string   `short:"o" help:"Output path relative to output.directory"`
	Stdout bool     `help:"Print the result instead of writing a file"`
}

func (t *TemplateCmd) Run(g *Global, root *CLI) error {
	cfg, err := g.loadConfig(root)
	if err != nil {
		return err
	}

	data, err := t.data()
	if err != nil {
		return err
	}

	// #nosec G304 -- template path is supplied by the CLI user.
	content, err := os.ReadFile(t.File)
	if err != nil {
		return derrors.InputError(t.File, err)
	}

	rendered, err := templates.RenderTemplateFile(content, data)
	if err != nil {
		return err
	}

	if t.Stdout || t.Output == "" {
		_, err := fmt.Fprint(g.stdout(), rendered)
		return err
	}

	path, err := templates.WriteGeneratedFile(cfg.Output.Directory, t.Output, rendered, cfg.Output.Overwrite)
	if err != nil {
		return err
	}
	g.Logger.Info("Template rendered", logfields.Template(t.File), logfields.Output(path), logfields.Bytes(len(rendered)))
	return nil
}

func (t *TemplateCmd) data() (map[string]any, error) {
	data := map[string]any{}
	if t.Data != "" {
		// #nosec G304 -- data path is supplied by the CLI user.
		raw, err := os.ReadFile(t.Data)
		if err != nil {
			return nil, derrors.InputError(t.Data, err)
		}
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, derrors.Wrap(err, derrors.CategoryValidation, derrors.SeverityError, "invalid template data").
				WithContext("path", t.Data)
		}
		if data == nil {
			data = map[string]any{}
		}
	}

	overrides, err := parseSetFlags(t.Set)
	if err != nil {
		return nil, err
	}
	maps.Copy(data, overrides)
	return data, nil
}
