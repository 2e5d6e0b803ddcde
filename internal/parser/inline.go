package parser

import "github.com/lexfmt/lexfmt/internal/ast"

// The inline grammar is data: each inline kind is a marker pair plus a
// literal flag. Literal kinds do not parse nested inlines; the reference
// kind additionally runs a post-processing classifier over its raw
// content.
type inlineSpec struct {
	kind    string
	start   byte
	end     byte
	literal bool
}

var inlineSpecs = []inlineSpec{
	{kind: "Strong", start: '*', end: '*', literal: false},
	{kind: "Emphasis", start: '_', end: '_', literal: false},
	{kind: "Code", start: '`', end: '`', literal: true},
	{kind: "Math", start: '#', end: '#', literal: true},
	{kind: "Reference", start: '[', end: ']', literal: true},
}

// ParseInlines scans a text content's bytes into inline nodes. The parser
// never fails: an unclosed or misplaced marker is left in the plain text.
// Concatenating the plain-text projections of the result recovers the
// input exactly.
func ParseInlines(text string) []ast.InlineNode {
	var nodes []ast.InlineNode
	plainStart := 0

	flush := func(upto int) {
		if upto > plainStart {
			nodes = append(nodes, &ast.Plain{Text: text[plainStart:upto]})
		}
	}

	i := 0
	for i < len(text) {
		spec := specFor(text[i])
		if spec == nil || !startsSpan(text, i) {
			i++

			continue
		}

		j := findClose(text, i+1, spec.end)
		if j < 0 {
			i++

			continue
		}

		flush(i)
		inner := text[i+1 : j]
		nodes = append(nodes, makeInline(spec, inner))
		i = j + 1
		plainStart = i
	}
	flush(len(text))

	return nodes
}

func specFor(b byte) *inlineSpec {
	for i := range inlineSpecs {
		if inlineSpecs[i].start == b {
			return &inlineSpecs[i]
		}
	}

	return nil
}

// startsSpan checks the opening conditions: a word boundary before the
// marker and no whitespace after it.
func startsSpan(text string, i int) bool {
	if i > 0 && isAlnum(text[i-1]) {
		return false
	}
	if i+1 >= len(text) {
		return false
	}

	return !isInlineSpace(text[i+1])
}

// findClose locates the matching end marker: not preceded by whitespace
// and followed by a word boundary. Returns -1 when the span never closes.
func findClose(text string, from int, end byte) int {
	for j := from; j < len(text); j++ {
		if text[j] != end {
			continue
		}
		if j > 0 && isInlineSpace(text[j-1]) {
			continue
		}
		if j+1 < len(text) && isAlnum(text[j+1]) {
			continue
		}

		return j
	}

	return -1
}

func makeInline(spec *inlineSpec, inner string) ast.InlineNode {
	switch spec.kind {
	case "Strong":
		return &ast.Strong{Nodes: ParseInlines(inner)}
	case "Emphasis":
		return &ast.Emphasis{Nodes: ParseInlines(inner)}
	case "Code":
		return &ast.Code{Text: inner}
	case "Math":
		return &ast.Math{Text: inner}
	default:
		return &ast.Reference{
			Raw:  inner,
			Kind: ClassifyReference(inner),
		}
	}
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

func isInlineSpace(b byte) bool {
	return b == ' ' || b == '\t'
}
