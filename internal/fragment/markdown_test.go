package fragment

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestMarkdownBuilders(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"mp", MdP(Seq("a", "", "b")), "a\nb\n"},
		{"empty mp", MdP(Scalar("")), ""},
		{"mh", MdH(2, Scalar("Title")), "## Title\n"},
		{"mh1", MdH1(Scalar("x")), "# x\n"},
		{"mh6", MdH6(Scalar("x")), "###### x\n"},
		{"empty mh", MdH3(Sequence{}), ""},
		{"mstrong", MdStrong(Scalar("b")), "**b**"},
		{"mem", MdEm(Scalar("i")), "_i_"},
		{"mcode", MdCode(Scalar("x")), "`x`"},
		{"empty inline", MdStrong(Scalar("")), ""},
		{"mblockquote", MdBlockquote(Seq("a", "", "b")), "> a\n> b"},
		{"mblockquote multi-line scalar", MdBlockquote(Scalar("a\nb")), "> a\n> b"},
		{"empty mblockquote", MdBlockquote(Sequence{}), ""},
		{"mul", MdUL(Seq("a", "b")), "-   a\n-   b\n"},
		{"mul skips empty", MdUL(Seq("a", "", "b")), "-   a\n-   b\n"},
		{"empty mul", MdUL(Sequence{}), ""},
		{"empty mul scalar", MdUL(Scalar("")), ""},
		{"mol", MdOL(Seq("a", "b")), "1.  a\n1.  b\n"},
		{"mcodeblock", MdCodeBlock("js", Seq("const x = 1;", "")), "``` js\nconst x = 1;\n\n```\n"},
		{"mcodeblock without format", MdCodeBlock("", Scalar("x")), "```\nx\n```\n"},
		{"empty mcodeblock", MdCodeBlock("go", Sequence{}), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.got)
		})
	}
}

func TestMdA(t *testing.T) {
	got, err := MdA(Link{URL: "u", Inner: "i", Title: "t"})
	require.NoError(t, err)
	require.Equal(t, `[i](u "t")`, got)

	got, err = MdA(Link{URL: "u", Inner: "i"})
	require.NoError(t, err)
	require.Equal(t, "[i](u)", got)

	got, err = MdA(Link{URL: "u", Inner: "i", Title: "(x)"})
	require.NoError(t, err)
	require.Equal(t, `[i](u "&#40;x&#41;")`, got)

	_, err = MdA(Link{URL: "", Inner: "x"})
	require.ErrorIs(t, err, ErrMissingLinkField)
	_, err = MdA(Link{URL: "u"})
	require.ErrorIs(t, err, ErrMissingLinkField)
}

func TestMarkdownBuilders_ParseAsCommonMark(t *testing.T) {
	link, err := MdA(Link{URL: "https://example.com", Inner: "site", Title: "Example"})
	require.NoError(t, err)

	src := []byte(MdH(2, Scalar("Title")) + Newline +
		MdP(Seq("Some "+MdStrong(Scalar("bold"))+" and "+MdEm(Scalar("soft")), "see "+link+" or "+MdCode(Scalar("x")))) + Newline +
		MdUL(Seq("a", "b", "c")) + Newline +
		MdOL(Seq("one", "two")) + Newline +
		MdBlockquote(Seq("quoted", "text")) + Newline + Newline +
		MdCodeBlock("js", Seq("const x = 1;", "")))

	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var (
		headings  []*ast.Heading
		lists     []*ast.List
		quotes    int
		fences    []*ast.FencedCodeBlock
		links     []*ast.Link
		emphasis  []int
		codeSpans int
	)
	err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			headings = append(headings, node)
		case *ast.List:
			lists = append(lists, node)
		case *ast.Blockquote:
			quotes++
		case *ast.FencedCodeBlock:
			fences = append(fences, node)
		case *ast.Link:
			links = append(links, node)
		case *ast.Emphasis:
			emphasis = append(emphasis, node.Level)
		case *ast.CodeSpan:
			codeSpans++
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)

	require.Len(t, headings, 1)
	require.Equal(t, 2, headings[0].Level)

	require.Len(t, lists, 2)
	require.False(t, lists[0].IsOrdered())
	require.Equal(t, 3, lists[0].ChildCount())
	require.True(t, lists[1].IsOrdered())
	require.Equal(t, 2, lists[1].ChildCount())

	require.Equal(t, 1, quotes)

	require.Len(t, fences, 1)
	require.Equal(t, "js", string(fences[0].Language(src)))
	require.Equal(t, 2, fences[0].Lines().Len(), "trailing blank line must stay inside the fence")

	require.Len(t, links, 1)
	require.Equal(t, "https://example.com", string(links[0].Destination))
	require.Equal(t, "Example", string(links[0].Title))

	require.ElementsMatch(t, []int{2, 1}, emphasis)
	require.Equal(t, 1, codeSpans)
}
