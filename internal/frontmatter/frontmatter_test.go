package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantRaw  string
		wantBody string
		wantHad  bool
	}{
		{"no frontmatter", "# Title\n", "", "# Title\n", false},
		{"frontmatter", "---\nkey: value\n---\n# Title\n", "key: value\n", "# Title\n", true},
		{"crlf", "---\r\nkey: value\r\n---\r\n# Title\r\n", "key: value\r\n", "# Title\r\n", true},
		{"empty block", "---\n---\nbody", "", "body", true},
		{"delimiter not at start", "text\n---\nkey: v\n---\n", "", "text\n---\nkey: v\n---\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, body, had, err := Split([]byte(tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.wantHad, had)
			require.Equal(t, tt.wantRaw, string(raw))
			require.Equal(t, tt.wantBody, string(body))
		})
	}
}

func TestSplit_MissingClosingDelimiter(t *testing.T) {
	_, _, had, err := Split([]byte("---\nkey: value\n# Title\n"))
	require.ErrorIs(t, err, ErrMissingClosingDelimiter)
	require.False(t, had)
}

func TestSerializeYAML_SortsKeys(t *testing.T) {
	out, err := SerializeYAML(map[string]any{
		"zeta":  1,
		"alpha": "a",
		"tags":  []string{"x", "y"},
		"nested": map[string]any{
			"b": true,
			"a": false,
		},
	}, "\n")
	require.NoError(t, err)
	require.Equal(t, "alpha: a\nnested:\n  a: false\n  b: true\ntags:\n  - x\n  - y\nzeta: 1\n", string(out))

	crlf, err := SerializeYAML(map[string]any{"a": 1, "b": 2}, "\r\n")
	require.NoError(t, err)
	require.Equal(t, "a: 1\r\nb: 2\r\n", string(crlf))

	empty, err := SerializeYAML(nil, "\n")
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestParseYAML(t *testing.T) {
	fields, err := ParseYAML([]byte("  \n"))
	require.NoError(t, err)
	require.Empty(t, fields)

	fields, err = ParseYAML([]byte("title: Notes\ncount: 3\n"))
	require.NoError(t, err)
	require.Equal(t, "Notes", fields["title"])
	require.Equal(t, 3, fields["count"])

	_, err = ParseYAML([]byte("title: [broken\n"))
	require.Error(t, err)
}

func TestPage_RoundTrip(t *testing.T) {
	input := "---\r\ntitle: Notes\r\n---\r\nbody\r\n"
	page, err := Read([]byte(input))
	require.NoError(t, err)
	require.True(t, page.Had)
	require.Equal(t, "\r\n", page.Newline)
	require.Equal(t, "Notes", page.Fields["title"])

	out, err := page.Bytes()
	require.NoError(t, err)
	require.Equal(t, input, string(out))
}

func TestPage_BytesWithoutFrontmatter(t *testing.T) {
	page := &Page{Body: []byte("# Plain\n")}
	out, err := page.Bytes()
	require.NoError(t, err)
	require.Equal(t, "# Plain\n", string(out))

	page.Fields = map[string]any{"title": "Plain"}
	out, err = page.Bytes()
	require.NoError(t, err)
	require.Equal(t, "---\ntitle: Plain\n---\n# Plain\n", string(out))
}
