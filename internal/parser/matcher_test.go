package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfmt/lexfmt/internal/lexerrs"
)

func parseIR(t *testing.T, src string) *ParseNode {
	t.Helper()
	ir, err := ParseToIR(Normalize(src))
	require.NoError(t, err)

	return ir
}

func irTypes(nodes []*ParseNode) []IRType {
	out := make([]IRType, len(nodes))
	for i, n := range nodes {
		out[i] = n.Type
	}

	return out
}

func TestMatch_Paragraph(t *testing.T) {
	ir := parseIR(t, "Hello\nWorld\n")
	assert.Equal(t, []IRType{IRParagraph}, irTypes(ir.Children))
}

func TestMatch_ParagraphAbsorbsSubjectLines(t *testing.T) {
	// A subject line not followed by an indent is paragraph content.
	ir := parseIR(t, "Term:\nmore text\n")
	assert.Equal(t, []IRType{IRParagraph}, irTypes(ir.Children))
}

func TestMatch_Definition(t *testing.T) {
	ir := parseIR(t, "Term:\n    Body\n")
	require.Equal(t, []IRType{IRDefinition}, irTypes(ir.Children))
	assert.Equal(t, []IRType{IRParagraph}, irTypes(ir.Children[0].Children))
}

func TestMatch_SessionRequiresBlank(t *testing.T) {
	ir := parseIR(t, "Title\n\n    Body\n")
	require.Equal(t, []IRType{IRSession}, irTypes(ir.Children))
}

func TestMatch_AnnotationForms(t *testing.T) {
	// Single line.
	ir := parseIR(t, ":: note ::\n")
	require.Equal(t, []IRType{IRAnnotation}, irTypes(ir.Children))
	assert.Empty(t, ir.Children[0].Children)

	// Block without end marker.
	ir = parseIR(t, ":: note ::\n    body text\n")
	require.Equal(t, []IRType{IRAnnotation}, irTypes(ir.Children))
	assert.Equal(t, []IRType{IRParagraph}, irTypes(ir.Children[0].Children))

	// Block with end marker.
	ir = parseIR(t, ":: note ::\n    body text\n::\n")
	require.Equal(t, []IRType{IRAnnotation}, irTypes(ir.Children))
	assert.Equal(t, []IRType{IRParagraph}, irTypes(ir.Children[0].Children))
}

func TestMatch_NestedListWithoutBlank(t *testing.T) {
	// Items at a container start need no real preceding blank.
	ir := parseIR(t, "Topic:\n    - a\n    - b\n")
	require.Equal(t, []IRType{IRDefinition}, irTypes(ir.Children))
	require.Equal(t, []IRType{IRList}, irTypes(ir.Children[0].Children))

	list := ir.Children[0].Children[0]
	assert.Equal(t, []IRType{IRListItem, IRListItem}, irTypes(list.Children))
}

func TestMatch_ListItemWithNestedBlock(t *testing.T) {
	ir := parseIR(t, "\n- a\n    nested\n- b\n")
	require.Equal(t, []IRType{IRList}, irTypes(ir.Children))

	list := ir.Children[0]
	require.Len(t, list.Children, 2)
	assert.Equal(t, []IRType{IRParagraph}, irTypes(list.Children[0].Children))
	assert.Empty(t, list.Children[1].Children)
}

func TestMatch_SingleListLineIsParagraph(t *testing.T) {
	// One marker line does not form a list; the {2,} quantifier demands
	// two items.
	ir := parseIR(t, "- only one\n")
	assert.Equal(t, []IRType{IRParagraph}, irTypes(ir.Children))
}

func TestMatch_VerbatimBeforeAnnotationRules(t *testing.T) {
	ir := parseIR(t, "Code:\n    body\n:: python ::\n")
	require.Equal(t, []IRType{IRVerbatimBlock}, irTypes(ir.Children))

	payload := ir.Children[0].Payload
	require.NotNil(t, payload)
	require.Len(t, payload.ContentLines, 1)
	assert.NotEmpty(t, payload.ClosingTokens)
}

func TestMatch_VerbatimBareClosing(t *testing.T) {
	ir := parseIR(t, "Code:\n    body\n::\n")
	require.Equal(t, []IRType{IRVerbatimBlock}, irTypes(ir.Children))
}

func TestMatch_VerbatimMultipleGroups(t *testing.T) {
	ir := parseIR(t, "One:\n    a\nTwo:\n    b\n:: text ::\n")
	require.Equal(
		t,
		[]IRType{IRVerbatimBlock, IRVerbatimBlock},
		irTypes(ir.Children),
	)
	assert.Equal(t, "a", payloadFirstLineText(t, ir.Children[0]))
	assert.Equal(t, "b", payloadFirstLineText(t, ir.Children[1]))
}

func payloadFirstLineText(t *testing.T, node *ParseNode) string {
	t.Helper()
	require.NotNil(t, node.Payload)
	require.NotEmpty(t, node.Payload.ContentLines)

	line := node.Payload.ContentLines[0]
	content := line.Content()
	require.NotEmpty(t, content)

	return content[0].Text
}

func TestMatch_BlankGroupAtRoot(t *testing.T) {
	ir := parseIR(t, "one\n\ntwo\n")
	assert.Equal(
		t,
		[]IRType{IRParagraph, IRBlankLineGroup, IRParagraph},
		irTypes(ir.Children),
	)
}

func TestMatch_SyntheticBlankProducesNoGroup(t *testing.T) {
	ir := parseIR(t, "just text\n")
	assert.Equal(t, []IRType{IRParagraph}, irTypes(ir.Children))
}

func TestMatch_OrphanContainerFails(t *testing.T) {
	// Source starting at an indented line has no header for the block.
	_, err := ParseToIR("    floating\n")
	require.Error(t, err)

	var serr *lexerrs.StructuralError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "document", serr.Parent)
	assert.Contains(t, serr.SourceContext, "floating")
}

func TestMatch_FirstMatchWins(t *testing.T) {
	// Subject + container + annotation line: verbatim wins over
	// definition because it is declared first.
	ir := parseIR(t, "Subject:\n    content\n:: lang ::\n")
	assert.Equal(t, []IRType{IRVerbatimBlock}, irTypes(ir.Children))

	// With blank separation the verbatim pattern cannot span, so the
	// definition row takes it and the annotation stands alone.
	ir = parseIR(t, "Subject:\n    content\n\n:: lang ::\n")
	assert.Equal(
		t,
		[]IRType{IRDefinition, IRBlankLineGroup, IRAnnotation},
		irTypes(ir.Children),
	)
}
