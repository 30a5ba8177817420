// Package document describes structured documents in YAML and renders them to
// HTML or Markdown through the fragment toolkit.
//
// A document is a title, optional frontmatter fields and an ordered list of
// blocks:
//
//	title: Release notes
//	blocks:
//	  - type: heading
//	    level: 2
//	    text: Changes
//	  - type: list
//	    items: [Faster builds, Fewer bugs]
//
// Text fields accept either a string or a list of strings.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docfrag/internal/errors"
	"git.home.luguber.info/inful/docfrag/internal/fragment"
)

// BlockType names the kind of a block.
type BlockType string

const (
	BlockHeading   BlockType = "heading"
	BlockParagraph BlockType = "paragraph"
	BlockList      BlockType = "list"
	BlockQuote     BlockType = "quote"
	BlockCode      BlockType = "code"
	BlockLink      BlockType = "link"
	BlockBreak     BlockType = "break"
	BlockRaw       BlockType = "raw"
)

var knownBlockTypes = map[BlockType]struct{}{
	BlockHeading: {}, BlockParagraph: {}, BlockList: {}, BlockQuote: {},
	BlockCode: {}, BlockLink: {}, BlockBreak: {}, BlockRaw: {},
}

// InlineStyle emphasises the text of paragraph and link blocks.
type InlineStyle string

const (
	StyleNone   InlineStyle = ""
	StyleStrong InlineStyle = "strong"
	StyleEm     InlineStyle = "em"
	StyleCode   InlineStyle = "code"
)

// Document is a parsed document description.
type Document struct {
	Title       string         `yaml:"title,omitempty"`
	Frontmatter map[string]any `yaml:"frontmatter,omitempty"`
	Blocks      []Block        `yaml:"blocks"`

	// Path is the file the document was loaded from, if any.
	Path string `yaml:"-"`
}

// Block is one element of a document. Which fields apply depends on Type.
type Block struct {
	Type    BlockType   `yaml:"type"`
	Level   int         `yaml:"level,omitempty"`
	Text    LinesValue  `yaml:"text,omitempty"`
	Items   LinesValue  `yaml:"items,omitempty"`
	Ordered bool        `yaml:"ordered,omitempty"`
	Lang    string      `yaml:"lang,omitempty"`
	URL     string      `yaml:"url,omitempty"`
	Title   string      `yaml:"title,omitempty"`
	Style   InlineStyle `yaml:"style,omitempty"`

	// When gates the block; a nil When always renders.
	When *bool `yaml:"when,omitempty"`
}

// Enabled reports whether the block takes part in rendering.
func (b Block) Enabled() bool {
	return b.When == nil || *b.When
}

// LinesValue decodes a YAML string into a fragment.Scalar and a YAML list of
// strings into a fragment.Sequence.
type LinesValue struct {
	value fragment.Lines
}

// NewLines wraps l for use in a Block.
func NewLines(l fragment.Lines) LinesValue {
	return LinesValue{value: l}
}

// Lines returns the decoded value. An absent field is an empty Sequence.
func (v LinesValue) Lines() fragment.Lines {
	if v.value == nil {
		return fragment.Sequence{}
	}
	return v.value
}

// IsEmpty reports whether the value renders as empty block content.
func (v LinesValue) IsEmpty() bool {
	return fragment.Block(v.Lines()) == ""
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *LinesValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		v.value = fragment.Scalar(s)
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		v.value = fragment.Sequence(items)
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", node.Line)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v LinesValue) MarshalYAML() (any, error) {
	switch l := v.value.(type) {
	case fragment.Scalar:
		return string(l), nil
	case fragment.Sequence:
		return []string(l), nil
	default:
		return nil, nil
	}
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	// #nosec G304 -- the path is supplied by the CLI user.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, derrors.InputError(path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, derrors.Wrap(err, derrors.CategoryValidation, derrors.SeverityError, "document cannot be parsed").
			WithContext("document", path)
	}
	doc.Path = path
	return doc, nil
}

// Parse decodes a YAML document description. Unknown fields are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("document is empty")
		}
		return nil, err
	}
	return &doc, nil
}

// Validate checks the enabled blocks of doc. All problems are reported,
// joined into one error.
func Validate(doc *Document) error {
	var errs []error
	for i, b := range doc.Blocks {
		if !b.Enabled() {
			continue
		}
		if reason := b.problem(); reason != "" {
			errs = append(errs, derrors.DocumentInvalid(doc.Path, i, reason))
		}
	}
	return errors.Join(errs...)
}

func (b Block) problem() string {
	if _, ok := knownBlockTypes[b.Type]; !ok {
		return fmt.Sprintf("unknown block type %q", b.Type)
	}
	switch b.Style {
	case StyleNone, StyleStrong, StyleEm, StyleCode:
	default:
		return fmt.Sprintf("unknown style %q", b.Style)
	}

	switch b.Type {
	case BlockHeading:
		if b.Level < 1 || b.Level > 6 {
			return fmt.Sprintf("heading level %d out of range 1-6", b.Level)
		}
	case BlockLink:
		if b.URL == "" {
			return "link requires url"
		}
		if b.Text.IsEmpty() {
			return "link requires text"
		}
	}
	return ""
}
