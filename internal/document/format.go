package document

import (
	"git.home.luguber.info/inful/docfrag/internal/normalize"
)

// Format selects the markup a document is rendered to.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

var formatNormalizer = normalize.New(map[string]Format{
	"markdown": FormatMarkdown,
	"md":       FormatMarkdown,
	"html":     FormatHTML,
	"htm":      FormatHTML,
}, FormatMarkdown)

// ParseFormat parses a user supplied format name. An empty name selects Markdown.
func ParseFormat(raw string) (Format, error) {
	return formatNormalizer.Parse(raw)
}

// FormatNames lists the accepted spellings of all formats.
func FormatNames() []string {
	return formatNormalizer.Keys()
}

// Extension returns the file extension used for rendered output.
func (f Format) Extension() string {
	if f == FormatHTML {
		return ".html"
	}
	return ".md"
}
