package fragment

import "strings"

// Markdown list item markers, padded to a four column content indent.
const (
	bulletMarker  = "-   "
	orderedMarker = "1.  "
	quoteMarker   = "> "
	fence         = "```"
)

// MdP renders a Markdown paragraph terminated by a newline.
func MdP(l Lines) string {
	return Wrap("", Newline, Block(l))
}

// MdH renders an ATX heading with level '#' characters.
func MdH(level int, l Lines) string {
	return Wrap(strings.Repeat("#", max(level, 0))+" ", Newline, Block(l))
}

func MdH1(l Lines) string { return MdH(1, l) }
func MdH2(l Lines) string { return MdH(2, l) }
func MdH3(l Lines) string { return MdH(3, l) }
func MdH4(l Lines) string { return MdH(4, l) }
func MdH5(l Lines) string { return MdH(5, l) }
func MdH6(l Lines) string { return MdH(6, l) }

func MdStrong(l Lines) string { return Wrap("**", "**", Block(l)) }
func MdEm(l Lines) string     { return Wrap("_", "_", Block(l)) }
func MdCode(l Lines) string   { return Wrap("`", "`", Block(l)) }

// MdBlockquote prefixes every non-empty line with "> ". No trailing newline
// is added.
func MdBlockquote(l Lines) string {
	content := Block(l)
	if content == "" {
		return ""
	}
	return Block(WrapEach(quoteMarker, "", Sequence(strings.Split(content, Newline))))
}

// MdUL renders a bullet list terminated by a newline.
func MdUL(l Lines) string {
	return mdList(bulletMarker, l)
}

// MdOL renders an ordered list terminated by a newline. Every item uses the
// "1." marker and renderers number them.
func MdOL(l Lines) string {
	return mdList(orderedMarker, l)
}

func mdList(marker string, l Lines) string {
	return Wrap("", Newline, Block(WrapEach(marker, "", l)))
}

// MdCodeBlock renders a fenced code block, tagged with format when it is set.
// Content is joined verbatim, so blank entries are kept inside the fence.
func MdCodeBlock(format string, l Lines) string {
	opening := fence + Wrap(" ", "", format) + Newline
	return Wrap(opening, Newline+fence+Newline, Join(l, Newline))
}
