package templates

import (
	"fmt"
	"sort"
	"text/template"

	"git.home.luguber.info/inful/docfrag/internal/fragment"
)

// toLines converts a template argument into fragment.Lines. Strings become
// scalars; slices become sequences.
func toLines(v any) (fragment.Lines, error) {
	switch vv := v.(type) {
	case nil:
		return fragment.Scalar(""), nil
	case fragment.Lines:
		return vv, nil
	case string:
		return fragment.Scalar(vv), nil
	case []string:
		return fragment.Sequence(vv), nil
	case []any:
		seq := make(fragment.Sequence, 0, len(vv))
		for i, item := range vv {
			switch s := item.(type) {
			case nil:
				seq = append(seq, "")
			case string:
				seq = append(seq, s)
			default:
				return nil, fmt.Errorf("item %d: expected string, got %T", i, item)
			}
		}
		return seq, nil
	default:
		return nil, fmt.Errorf("expected string or list of strings, got %T", v)
	}
}

// lift adapts a Lines builder to accept any template argument.
func lift(fn func(fragment.Lines) string) func(any) (string, error) {
	return func(v any) (string, error) {
		l, err := toLines(v)
		if err != nil {
			return "", err
		}
		return fn(l), nil
	}
}

func leveled(fn func(int, fragment.Lines) string) func(int, any) (string, error) {
	return func(level int, v any) (string, error) {
		l, err := toLines(v)
		if err != nil {
			return "", err
		}
		return fn(level, l), nil
	}
}

func link(fn func(fragment.Link) (string, error)) func(string, string, ...string) (string, error) {
	return func(url, inner string, title ...string) (string, error) {
		if len(title) > 1 {
			return "", fmt.Errorf("expected at most one title, got %d", len(title))
		}
		l := fragment.Link{URL: url, Inner: inner}
		if len(title) == 1 {
			l.Title = title[0]
		}
		return fn(l)
	}
}

// FuncMap exposes the fragment toolkit to text/template. Functions taking a
// single content argument accept it last, so they compose in pipelines:
//
//	{{ .Items | ul }}
//	{{ .Title | mh 2 }}
func FuncMap() template.FuncMap {
	return template.FuncMap{
		// primitives
		"seq":             func(items ...string) fragment.Sequence { return fragment.Sequence(items) },
		"lines":           lift(fragment.Block),
		"t":               lift(fragment.Text),
		"trim":            fragment.Trim,
		"escapeAttribute": fragment.EscapeAttribute,
		"wrap":            fragment.Wrap,
		"tag":             fragment.Tag,
		"br":              fragment.BR,
		"join": func(sep string, v any) (string, error) {
			l, err := toLines(v)
			if err != nil {
				return "", err
			}
			return fragment.Join(l, sep), nil
		},

		// html
		"p":          lift(fragment.P),
		"h":          leveled(fragment.H),
		"h1":         lift(fragment.H1),
		"h2":         lift(fragment.H2),
		"h3":         lift(fragment.H3),
		"h4":         lift(fragment.H4),
		"h5":         lift(fragment.H5),
		"h6":         lift(fragment.H6),
		"strong":     lift(fragment.Strong),
		"em":         lift(fragment.Em),
		"blockquote": lift(fragment.Blockquote),
		"code":       lift(fragment.Code),
		"pre":        lift(fragment.Pre),
		"li":         lift(fragment.LI),
		"ul":         lift(fragment.UL),
		"ol":         lift(fragment.OL),
		"a":          link(fragment.A),

		// markdown
		"mp":          lift(fragment.MdP),
		"mh":          leveled(fragment.MdH),
		"mh1":         lift(fragment.MdH1),
		"mh2":         lift(fragment.MdH2),
		"mh3":         lift(fragment.MdH3),
		"mh4":         lift(fragment.MdH4),
		"mh5":         lift(fragment.MdH5),
		"mh6":         lift(fragment.MdH6),
		"mstrong":     lift(fragment.MdStrong),
		"mem":         lift(fragment.MdEm),
		"mcode":       lift(fragment.MdCode),
		"mblockquote": lift(fragment.MdBlockquote),
		"mul":         lift(fragment.MdUL),
		"mol":         lift(fragment.MdOL),
		"mcodeblock": func(format string, v any) (string, error) {
			l, err := toLines(v)
			if err != nil {
				return "", err
			}
			return fragment.MdCodeBlock(format, l), nil
		},
		"ma": link(fragment.MdA),
	}
}

// FuncNames returns the names registered by FuncMap in sorted order.
func FuncNames() []string {
	funcs := FuncMap()
	names := make([]string, 0, len(funcs))
	for name := range funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
