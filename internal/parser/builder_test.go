package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfmt/lexfmt/internal/ast"
)

func TestBuild_ParagraphLineProjection(t *testing.T) {
	// Joining a paragraph's lines with newlines recovers the source
	// slice modulo the common leading indentation.
	src := "Intro:\n\n    line one\n    line two\n"
	doc := parse(t, src)

	session := doc.Root.Body.Items()[0].(*ast.Session)
	para := session.Body.Items()[0].(*ast.Paragraph)

	var lines []string
	for _, line := range para.Lines {
		lines = append(lines, line.Content.Text)
	}
	assert.Equal(t, "line one\nline two", strings.Join(lines, "\n"))
}

func TestBuild_ParagraphInlineContentParsed(t *testing.T) {
	doc := parse(t, "some *bold* text\n")

	para := doc.Root.Body.Items()[0].(*ast.Paragraph)
	inlines := para.Lines[0].Content.Inlines
	require.Len(t, inlines, 3)
	assert.Equal(t, "Strong", inlines[1].InlineType())

	// Inline parsing preserves the content text byte for byte.
	assert.Equal(
		t,
		para.Lines[0].Content.Text,
		ast.PlainProjection(inlines),
	)
}

func TestBuild_ListMarkers(t *testing.T) {
	doc := parse(t, "\n1. first\n2. second\n")

	list := doc.Root.Body.Items()[0].(*ast.List)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "1.", list.Items[0].Marker)
	assert.Equal(t, "2.", list.Items[1].Marker)
	assert.Equal(t, "first", list.Items[0].Body.Text)
}

func TestBuild_RomanAndAlphaMarkers(t *testing.T) {
	doc := parse(t, "\na. alpha\nb. beta\n")
	list := doc.Root.Body.Items()[0].(*ast.List)
	assert.Equal(t, "a.", list.Items[0].Marker)

	doc = parse(t, "\niv. four\nv. five\n")
	list = doc.Root.Body.Items()[0].(*ast.List)
	assert.Equal(t, "iv.", list.Items[0].Marker)
	assert.Equal(t, "four", list.Items[0].Body.Text)
}

func TestBuild_ListItemNestedChildren(t *testing.T) {
	doc := parse(t, "\n- outer\n    inner text\n- plain\n")

	list := doc.Root.Body.Items()[0].(*ast.List)
	require.Len(t, list.Items, 2)

	nested := list.Items[0].Nested.Items()
	require.Len(t, nested, 1)
	para := nested[0].(*ast.Paragraph)
	assert.Equal(t, "inner text", para.Lines[0].Content.Text)
	assert.Empty(t, list.Items[1].Nested.Items())
}

func TestBuild_VerbatimRestoresExactly(t *testing.T) {
	// Re-applying the stripped wall to the content lines recovers the
	// original source between subject and closing line.
	src := "Code:\n    def f(x):\n\n        return x\n:: python ::\n"
	doc := parse(t, src)

	verb := doc.Root.Body.Items()[0].(*ast.Verbatim)
	require.Len(t, verb.Content, 3)
	assert.Equal(t, "def f(x):", verb.Content[0].Text)
	assert.Equal(t, "", verb.Content[1].Text)
	assert.Equal(t, "    return x", verb.Content[2].Text)

	var restored strings.Builder
	for _, line := range verb.Content {
		if line.Text != "" {
			restored.WriteString("    ")
			restored.WriteString(line.Text)
		}
		restored.WriteString("\n")
	}
	want := "    def f(x):\n\n        return x\n"
	assert.Equal(t, want, restored.String())
}

func TestBuild_VerbatimClosingParameters(t *testing.T) {
	doc := parse(t, "Chart:\n    1 2 3\n:: plot width=80 ::\n")

	verb := doc.Root.Body.Items()[0].(*ast.Verbatim)
	assert.Equal(t, "plot", verb.ClosingData.Label.Value)
	require.Len(t, verb.ClosingData.Parameters, 1)
	assert.Equal(t, "width", verb.ClosingData.Parameters[0].Key)
	assert.Equal(t, "80", verb.ClosingData.Parameters[0].Value)
}

func TestBuild_SessionTitleKeepsColon(t *testing.T) {
	doc := parse(t, "1. Intro:\n\n    Body\n")
	session := doc.Root.Body.Items()[0].(*ast.Session)
	assert.Equal(t, "1. Intro:", session.Title.Text)
}

func TestBuild_DefinitionSubjectDropsColon(t *testing.T) {
	doc := parse(t, "Term:\n    Body\n")
	def := doc.Root.Body.Items()[0].(*ast.Definition)
	assert.Equal(t, "Term", def.Subject.Text)
}

func TestBuild_AnnotationBody(t *testing.T) {
	doc := parse(t, ":: aside ::\n    quoted thought\n")

	ann := doc.Root.Body.Items()[0].(*ast.Annotation)
	body := ann.Body.Items()
	require.Len(t, body, 1)
	para := body[0].(*ast.Paragraph)
	assert.Equal(t, "quoted thought", para.Lines[0].Content.Text)
}
