package document

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/docfrag/internal/fragment"
)

// Stats summarises one render.
type Stats struct {
	Rendered int
	Skipped  int
	ByType   map[BlockType]int
}

// builder renders single blocks for one output format.
type builder interface {
	heading(level int, l fragment.Lines) string
	paragraph(l fragment.Lines) string
	list(ordered bool, l fragment.Lines) string
	quote(l fragment.Lines) string
	code(lang string, l fragment.Lines) string
	link(l fragment.Link) (string, error)
	inline(style InlineStyle, l fragment.Lines) string
	lineBreak() string
	separator() string
}

func builderFor(format Format) (builder, error) {
	switch format {
	case FormatHTML:
		return htmlBuilder{}, nil
	case FormatMarkdown:
		return markdownBuilder{}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// Render renders doc in the given format. A non-empty title becomes a leading
// level one heading. Blocks whose When is false are skipped without being
// rendered. The result ends with a single newline unless it is empty.
func Render(doc *Document, format Format) (string, Stats, error) {
	stats := Stats{ByType: map[BlockType]int{}}
	b, err := builderFor(format)
	if err != nil {
		return "", stats, err
	}

	parts := make(fragment.Sequence, 0, len(doc.Blocks)+1)
	parts = append(parts, trimBlock(b.heading(1, fragment.Scalar(doc.Title))))

	for i, blk := range doc.Blocks {
		enabled := blk.Enabled()

		var blockErr error
		out := fragment.If(enabled, func() fragment.Lines {
			s, err := renderBlock(b, blk)
			if err != nil {
				blockErr = err
				return fragment.Sequence{}
			}
			return fragment.Scalar(s)
		})
		if blockErr != nil {
			return "", stats, fmt.Errorf("block %d (%s): %w", i, blk.Type, blockErr)
		}
		if !enabled {
			stats.Skipped++
			continue
		}

		stats.Rendered++
		stats.ByType[blk.Type]++
		parts = append(parts, trimBlock(out))
	}

	body := fragment.Block(parts)
	if body == "" {
		return "", stats, nil
	}
	if sep := b.separator(); sep != fragment.Newline {
		body = fragment.Join(compactParts(parts), sep)
	}
	return body + fragment.Newline, stats, nil
}

func renderBlock(b builder, blk Block) (string, error) {
	switch blk.Type {
	case BlockHeading:
		return b.heading(blk.Level, blk.Text.Lines()), nil
	case BlockParagraph:
		return b.paragraph(fragment.Scalar(b.inline(blk.Style, blk.Text.Lines()))), nil
	case BlockList:
		return b.list(blk.Ordered, blk.Items.Lines()), nil
	case BlockQuote:
		return b.quote(blk.Text.Lines()), nil
	case BlockCode:
		return b.code(blk.Lang, blk.Text.Lines()), nil
	case BlockLink:
		a, err := b.link(fragment.Link{
			URL:   blk.URL,
			Inner: b.inline(blk.Style, blk.Text.Lines()),
			Title: blk.Title,
		})
		if err != nil {
			return "", err
		}
		return b.paragraph(fragment.Scalar(a)), nil
	case BlockBreak:
		return b.lineBreak(), nil
	case BlockRaw:
		return fragment.Join(blk.Text.Lines(), fragment.Newline), nil
	default:
		return "", fmt.Errorf("unknown block type %q", blk.Type)
	}
}

// trimBlock drops the trailing newlines block builders add, so the document
// controls spacing between blocks.
func trimBlock(s string) string {
	return strings.TrimRight(s, fragment.Newline)
}

func compactParts(parts fragment.Sequence) fragment.Sequence {
	out := make(fragment.Sequence, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

type htmlBuilder struct{}

func (htmlBuilder) heading(level int, l fragment.Lines) string { return fragment.H(level, l) }
func (htmlBuilder) paragraph(l fragment.Lines) string          { return fragment.P(l) }
func (htmlBuilder) quote(l fragment.Lines) string              { return fragment.Blockquote(l) }
func (htmlBuilder) link(l fragment.Link) (string, error)       { return fragment.A(l) }
func (htmlBuilder) lineBreak() string                          { return fragment.BR() }
func (htmlBuilder) separator() string                          { return fragment.Newline }

func (htmlBuilder) list(ordered bool, l fragment.Lines) string {
	if ordered {
		return fragment.OL(l)
	}
	return fragment.UL(l)
}

func (htmlBuilder) code(lang string, l fragment.Lines) string {
	// HTML has no fence info string; the language is not rendered.
	return fragment.Pre(l)
}

func (htmlBuilder) inline(style InlineStyle, l fragment.Lines) string {
	switch style {
	case StyleStrong:
		return fragment.Strong(l)
	case StyleEm:
		return fragment.Em(l)
	case StyleCode:
		return fragment.Code(l)
	default:
		return fragment.Block(l)
	}
}

type markdownBuilder struct{}

func (markdownBuilder) heading(level int, l fragment.Lines) string { return fragment.MdH(level, l) }
func (markdownBuilder) paragraph(l fragment.Lines) string          { return fragment.MdP(l) }
func (markdownBuilder) quote(l fragment.Lines) string              { return fragment.MdBlockquote(l) }
func (markdownBuilder) link(l fragment.Link) (string, error)       { return fragment.MdA(l) }
func (markdownBuilder) lineBreak() string                          { return fragment.BR() }
func (markdownBuilder) separator() string                          { return fragment.Newline + fragment.Newline }

func (markdownBuilder) list(ordered bool, l fragment.Lines) string {
	if ordered {
		return fragment.MdOL(l)
	}
	return fragment.MdUL(l)
}

func (markdownBuilder) code(lang string, l fragment.Lines) string {
	return fragment.MdCodeBlock(lang, l)
}

func (markdownBuilder) inline(style InlineStyle, l fragment.Lines) string {
	switch style {
	case StyleStrong:
		return fragment.MdStrong(l)
	case StyleEm:
		return fragment.MdEm(l)
	case StyleCode:
		return fragment.MdCode(l)
	default:
		return fragment.Block(l)
	}
}
