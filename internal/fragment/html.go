package fragment

import "strconv"

// P renders a paragraph.
func P(l Lines) string { return Tag("p", Block(l)) }

// H renders a heading of the given level. The level is not range checked.
func H(level int, l Lines) string {
	return Tag("h"+strconv.Itoa(level), Block(l))
}

func H1(l Lines) string { return H(1, l) }
func H2(l Lines) string { return H(2, l) }
func H3(l Lines) string { return H(3, l) }
func H4(l Lines) string { return H(4, l) }
func H5(l Lines) string { return H(5, l) }
func H6(l Lines) string { return H(6, l) }

func Strong(l Lines) string     { return Tag("strong", Block(l)) }
func Em(l Lines) string         { return Tag("em", Block(l)) }
func Blockquote(l Lines) string { return Tag("blockquote", Block(l)) }
func Code(l Lines) string       { return Tag("code", Block(l)) }

// LI renders one <li> per non-empty item, newline separated.
func LI(l Lines) string {
	return Block(TagEach("li", l))
}

// UL renders an unordered list, or "" when there are no items.
func UL(l Lines) string { return Tag("ul", LI(l)) }

// OL renders an ordered list, or "" when there are no items.
func OL(l Lines) string { return Tag("ol", LI(l)) }

// Pre renders preformatted text. Entries are joined verbatim so blank lines
// survive, and the content is set on its own lines inside the element.
func Pre(l Lines) string {
	return Tag("pre", Wrap(Newline, Newline, Join(l, Newline)))
}
