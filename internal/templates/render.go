// Package templates renders text/template sources with the fragment toolkit
// available as template functions, and writes the results to disk.
package templates

import (
	"bytes"
	"maps"
	"text/template"

	derrors "git.home.luguber.info/inful/docfrag/internal/errors"
	"git.home.luguber.info/inful/docfrag/internal/frontmatter"
)

// RenderTemplateBody renders bodyTemplate with data. Referencing a key that
// data does not define is an error.
func RenderTemplateBody(bodyTemplate string, data map[string]any) (string, error) {
	tpl, err := template.New("body").Funcs(FuncMap()).Option("missingkey=error").Parse(bodyTemplate)
	if err != nil {
		return "", derrors.TemplateFailed("parse", err)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, withBuiltinTemplateData(data)); err != nil {
		return "", derrors.TemplateFailed("execute", err)
	}
	return buf.String(), nil
}

// RenderTemplateFile renders a template whose optional YAML frontmatter holds
// default values. Entries in data override those defaults. The frontmatter
// itself is not part of the output.
func RenderTemplateFile(content []byte, data map[string]any) (string, error) {
	raw, body, _, err := frontmatter.Split(content)
	if err != nil {
		return "", derrors.TemplateFailed("frontmatter", err)
	}
	defaults, err := frontmatter.ParseYAML(raw)
	if err != nil {
		return "", derrors.TemplateFailed("frontmatter", err)
	}

	merged := make(map[string]any, len(defaults)+len(data))
	maps.Copy(merged, defaults)
	maps.Copy(merged, data)

	return RenderTemplateBody(string(body), merged)
}
