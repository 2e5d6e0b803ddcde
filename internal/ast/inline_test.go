package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainProjection_RestoresMarkers(t *testing.T) {
	nodes := []InlineNode{
		&Plain{Text: "see "},
		&Strong{Nodes: []InlineNode{
			&Plain{Text: "bold "},
			&Emphasis{Nodes: []InlineNode{&Plain{Text: "both"}}},
		}},
		&Plain{Text: " and "},
		&Code{Text: "x == 1"},
		&Plain{Text: " or "},
		&Math{Text: "a+b"},
		&Plain{Text: " in "},
		&Reference{Raw: "@smith2001", Kind: &Citation{Keys: []string{"smith2001"}}},
	}

	got := PlainProjection(nodes)
	assert.Equal(t, "see *bold _both_* and `x == 1` or #a+b# in [@smith2001]", got)
}

func TestInlineTypes(t *testing.T) {
	cases := []struct {
		node InlineNode
		want string
	}{
		{&Plain{}, "Plain"},
		{&Strong{}, "Strong"},
		{&Emphasis{}, "Emphasis"},
		{&Code{}, "Code"},
		{&Math{}, "Math"},
		{&Reference{Kind: &NotSure{}}, "Reference"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.node.InlineType())
	}
}

func TestReferenceKinds(t *testing.T) {
	cases := []struct {
		kind ReferenceKind
		want string
	}{
		{&ToCome{}, "ToCome"},
		{&Citation{}, "Citation"},
		{&FootnoteLabeled{Label: "note"}, "FootnoteLabeled"},
		{&FootnoteNumber{Number: 12}, "FootnoteNumber"},
		{&SessionRef{Target: "intro"}, "Session"},
		{&URLRef{Target: "https://example.com"}, "Url"},
		{&FileRef{Target: "./notes.txt"}, "File"},
		{&GeneralRef{Target: "Introduction"}, "General"},
		{&NotSure{}, "NotSure"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.kind.RefType())
	}
}
