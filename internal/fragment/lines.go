// Package fragment renders small HTML and Markdown fragments from plain data.
//
// Every function is pure: it builds a string from its arguments and keeps no
// state between calls, so the package is safe for concurrent use. Content is
// never escaped except by EscapeAttribute; callers escape body text themselves.
//
// Most builders accept a Lines value, which is either a single Scalar string or
// an ordered Sequence of strings:
//
//	fragment.MdUL(fragment.Sequence{"a", "b"}) // "-   a\n-   b\n"
//	fragment.MdH(2, fragment.Scalar("Title"))  // "## Title\n"
//
// Builders that receive empty content return the empty string, so optional
// parts disappear from composed output instead of leaving empty markup behind.
package fragment

import "strings"

// Newline is the separator used by block-level combinators.
const Newline = "\n"

// Lines is either a Scalar or a Sequence.
type Lines interface {
	isLines()
}

// Scalar is a single string of content.
type Scalar string

// Sequence is an ordered list of content entries.
type Sequence []string

func (Scalar) isLines()   {}
func (Sequence) isLines() {}

// Seq builds a Sequence from its arguments.
func Seq(items ...string) Sequence {
	return Sequence(items)
}

// Block groups l as block-level content. A Sequence loses its empty entries
// and the rest are joined with newlines.
func Block(l Lines) string {
	switch v := l.(type) {
	case Scalar:
		return string(v)
	case Sequence:
		return strings.Join(compact(v), Newline)
	default:
		return ""
	}
}

// Join joins a Sequence verbatim, empty entries included, with sep.
func Join(l Lines, sep string) string {
	switch v := l.(type) {
	case Scalar:
		return string(v)
	case Sequence:
		return strings.Join(v, sep)
	default:
		return ""
	}
}

// Text assembles an inline phrase: empty entries are dropped and the rest are
// joined with a single space.
func Text(l Lines) string {
	switch v := l.(type) {
	case Scalar:
		return string(v)
	case Sequence:
		return strings.Join(compact(v), " ")
	default:
		return ""
	}
}

// Trim strips leading and trailing spaces, tabs and newlines.
func Trim(s string) string {
	return strings.Trim(s, " \t\n")
}

// If renders the result of thunk with Block when cond holds. The thunk is not
// called otherwise.
func If(cond bool, thunk func() Lines) string {
	if !cond || thunk == nil {
		return ""
	}
	return Block(thunk())
}

func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
