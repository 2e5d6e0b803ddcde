package ast

import "strings"

// InlineNode is one element of a parsed text content: plain text, a
// formatting span, a literal span, or a reference.
type InlineNode interface {
	// InlineType returns the variant name ("Plain", "Strong", ...).
	InlineType() string

	// PlainText returns the node's text projection with its markers
	// restored, so that concatenating a sequence of inline nodes
	// recovers the exact source text they were parsed from.
	PlainText() string
}

// Plain is an unformatted text segment.
type Plain struct {
	Text string
}

// InlineType identifies the variant.
func (n *Plain) InlineType() string { return "Plain" }

// PlainText returns the segment text.
func (n *Plain) PlainText() string { return n.Text }

// Strong is emphasis delimited by '*'; it may nest other inlines.
type Strong struct {
	Nodes []InlineNode
}

// InlineType identifies the variant.
func (n *Strong) InlineType() string { return "Strong" }

// PlainText restores the '*' delimiters around the nested projection.
func (n *Strong) PlainText() string {
	return "*" + joinPlain(n.Nodes) + "*"
}

// Emphasis is emphasis delimited by '_'; it may nest other inlines.
type Emphasis struct {
	Nodes []InlineNode
}

// InlineType identifies the variant.
func (n *Emphasis) InlineType() string { return "Emphasis" }

// PlainText restores the '_' delimiters around the nested projection.
func (n *Emphasis) PlainText() string {
	return "_" + joinPlain(n.Nodes) + "_"
}

// Code is a literal span delimited by backticks; no nesting.
type Code struct {
	Text string
}

// InlineType identifies the variant.
func (n *Code) InlineType() string { return "Code" }

// PlainText restores the backtick delimiters.
func (n *Code) PlainText() string { return "`" + n.Text + "`" }

// Math is a literal span delimited by '#'; no nesting.
type Math struct {
	Text string
}

// InlineType identifies the variant.
func (n *Math) InlineType() string { return "Math" }

// PlainText restores the '#' delimiters.
func (n *Math) PlainText() string { return "#" + n.Text + "#" }

// Reference is a bracketed reference with its classified kind.
type Reference struct {
	// Raw is the reference content between the brackets, unmodified.
	Raw string
	// Kind is the classification derived from Raw.
	Kind ReferenceKind
}

// InlineType identifies the variant.
func (n *Reference) InlineType() string { return "Reference" }

// PlainText restores the bracket delimiters around the raw content.
func (n *Reference) PlainText() string { return "[" + n.Raw + "]" }

func joinPlain(nodes []InlineNode) string {
	var b strings.Builder
	for _, node := range nodes {
		b.WriteString(node.PlainText())
	}

	return b.String()
}

// PlainProjection concatenates the plain-text projections of a sequence of
// inline nodes. For any parsed text content this recovers the original
// content bytes.
func PlainProjection(nodes []InlineNode) string {
	return joinPlain(nodes)
}
