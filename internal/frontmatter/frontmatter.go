// Package frontmatter reads and writes the YAML header of rendered Markdown
// files and maintains the identity fields docfrag stamps into it.
package frontmatter

import (
	"bytes"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// ErrMissingClosingDelimiter indicates the content opens a frontmatter block
// that is never closed.
var ErrMissingClosingDelimiter = errors.New("frontmatter opened with --- but never closed")

// Page is a Markdown file split into its frontmatter fields and body.
type Page struct {
	Fields  map[string]any
	Body    []byte
	Had     bool   // content started with a frontmatter block
	Newline string // "\n" or "\r\n"
}

// Split separates raw frontmatter (without delimiters) from the body. had is
// false when content does not start with a delimiter line.
func Split(content []byte) (raw, body []byte, had bool, err error) {
	nl := detectNewline(content)
	rest, ok := bytes.CutPrefix(content, []byte(delimiter+nl))
	if !ok {
		return nil, content, false, nil
	}

	if after, empty := bytes.CutPrefix(rest, []byte(delimiter+nl)); empty {
		return []byte{}, after, true, nil
	}

	closing := []byte(nl + delimiter + nl)
	idx := bytes.Index(rest, closing)
	if idx < 0 {
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	return rest[:idx+len(nl)], rest[idx+len(closing):], true, nil
}

// Join emits a frontmatter block followed by body.
func Join(raw, body []byte, newline string) []byte {
	if newline == "" {
		newline = "\n"
	}
	var buf bytes.Buffer
	buf.Grow(len(raw) + len(body) + 2*(len(delimiter)+len(newline)))
	buf.WriteString(delimiter + newline)
	buf.Write(raw)
	buf.WriteString(delimiter + newline)
	buf.Write(body)
	return buf.Bytes()
}

// ParseYAML decodes raw frontmatter into a map. Empty input yields an empty map.
func ParseYAML(raw []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return fields, nil
	}
	if err := yaml.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// SerializeYAML encodes fields with sorted keys and a two space indent.
// Empty fields serialize to nothing.
func SerializeYAML(fields map[string]any, newline string) ([]byte, error) {
	if len(fields) == 0 {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fields); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	out := buf.Bytes()
	if newline != "" && newline != "\n" {
		out = bytes.ReplaceAll(out, []byte("\n"), []byte(newline))
	}
	return out, nil
}

// Read parses content into a Page.
func Read(content []byte) (*Page, error) {
	raw, body, had, err := Split(content)
	if err != nil {
		return nil, err
	}
	fields, err := ParseYAML(raw)
	if err != nil {
		return nil, err
	}
	return &Page{Fields: fields, Body: body, Had: had, Newline: detectNewline(content)}, nil
}

// Bytes serializes the page. A page without fields and without an original
// frontmatter block is emitted as its body alone.
func (p *Page) Bytes() ([]byte, error) {
	if !p.Had && len(p.Fields) == 0 {
		return p.Body, nil
	}
	raw, err := SerializeYAML(p.Fields, p.Newline)
	if err != nil {
		return nil, err
	}
	return Join(raw, p.Body, p.Newline), nil
}

func detectNewline(content []byte) string {
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}

func trimTrailingNewline(s string) string {
	if before, ok := strings.CutSuffix(s, "\r\n"); ok {
		return before
	}
	return strings.TrimSuffix(s, "\n")
}
