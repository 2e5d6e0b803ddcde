package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfmt/lexfmt/internal/ast"
	"github.com/lexfmt/lexfmt/internal/parser"
)

const sample = "Intro:\n\n    Body line.\n"

func TestDetokenize_Lossless(t *testing.T) {
	sources := []string{
		sample,
		"\n- a\n- b\n",
		":: note k=v ::\nText\n",
		"Code:\n    x = 1\n:: python ::\n",
		"   \n\nweird   spacing\t\n",
	}
	for _, src := range sources {
		assert.Equal(t, src, Detokenize(parser.Tokenize(src)))

		// Indentation mapping adds only zero-width tokens.
		mapped, err := parser.Lex(src)
		require.NoError(t, err)
		assert.Equal(t, src, Detokenize(mapped))
	}
}

func TestTokensCore_OneTokenPerLine(t *testing.T) {
	out := TokensCore(parser.Tokenize("a b\n"))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4) // Text, Whitespace, Text, Newline
	assert.Contains(t, lines[0], "Text")
	assert.Contains(t, lines[0], `"a"`)
}

func TestRender_AllFormats(t *testing.T) {
	for _, format := range Formats() {
		out, err := Render(sample, format, false)
		require.NoError(t, err, "format %s", format)
		assert.NotEmpty(t, out, "format %s", format)
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := Render(sample, "yaml", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestRender_StructuralErrorPropagates(t *testing.T) {
	_, err := Render("    floating\n", FormatASTTag, false)
	require.Error(t, err)
}

func TestJSON_IsValidSnapshot(t *testing.T) {
	doc, err := parser.ParseDocument(sample)
	require.NoError(t, err)

	out, err := JSON(doc)
	require.NoError(t, err)

	var snap ast.AstSnapshot
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Equal(t, ast.NodeSession, snap.NodeType)
	require.Len(t, snap.Children, 1)
	assert.Equal(t, ast.NodeSession, snap.Children[0].NodeType)
	assert.Equal(t, "Intro:", snap.Children[0].Label)
}

func TestTag_Shape(t *testing.T) {
	doc, err := parser.ParseDocument(sample)
	require.NoError(t, err)

	out := Tag(doc)
	assert.Contains(t, out, `<Session label="Intro:">`)
	assert.Contains(t, out, `<Paragraph label="Body line." />`)
	assert.Contains(t, out, "</Session>")
}

func TestTreeviz_PlainStructure(t *testing.T) {
	doc, err := parser.ParseDocument(sample)
	require.NoError(t, err)

	out := Treeviz(doc, false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Session"))
	assert.Contains(t, lines[1], "└── Session")
	assert.Contains(t, lines[1], "Intro:")
	assert.Contains(t, lines[2], "└── Paragraph")
}

func TestSummary(t *testing.T) {
	doc, err := parser.ParseDocument(sample)
	require.NoError(t, err)

	out := Summary(doc)
	assert.Contains(t, out, "1 paragraph")
	assert.Contains(t, out, "session")
}
