// Package parser turns the scoped line tree into the typed AST. It hosts
// the declarative grammar matcher and its intermediate parse tree, the AST
// builder with position recovery, the inline parser, and the assembling
// passes (annotation attachment, root attach).
package parser

import "github.com/lexfmt/lexfmt/internal/lex"

// IRType is the type of a node in the intermediate parse tree.
type IRType uint8

const (
	// IRDocument is the root parse node.
	IRDocument IRType = iota
	// IRParagraph is a run of content lines.
	IRParagraph
	// IRSession is a title followed by blank-separated descendants.
	IRSession
	// IRList is a run of list items.
	IRList
	// IRListItem is one list item line with an optional nested block.
	IRListItem
	// IRDefinition is a subject line with an immediate indented body.
	IRDefinition
	// IRAnnotation is a '::' annotation in any of its three forms.
	IRAnnotation
	// IRVerbatimBlock is a verbatim group with its closing line payload.
	IRVerbatimBlock
	// IRBlankLineGroup is a run of blank lines.
	IRBlankLineGroup
)

// String returns the lower-case name used in diagnostics.
func (t IRType) String() string {
	switch t {
	case IRDocument:
		return "document"
	case IRParagraph:
		return "paragraph"
	case IRSession:
		return "session"
	case IRList:
		return "list"
	case IRListItem:
		return "list-item"
	case IRDefinition:
		return "definition"
	case IRAnnotation:
		return "annotation"
	case IRVerbatimBlock:
		return "verbatim-block"
	case IRBlankLineGroup:
		return "blank-line-group"
	default:
		return "unknown"
	}
}

// VerbatimPayload carries the raw lines a verbatim block was matched from,
// so the AST builder can reproduce its bytes exactly.
type VerbatimPayload struct {
	// Subject is the subject line opening the group.
	Subject *lex.LineToken
	// ContentLines are the raw lines of the group's indented content, in
	// source order, blank lines included.
	ContentLines []*lex.LineToken
	// ClosingTokens are the tokens of the closing annotation line.
	ClosingTokens []lex.Token
}

// ParseNode is a node of the intermediate parse tree. Tokens holds the
// primitive tokens that participated in the match; Children the nested
// parse nodes produced by matching sub-containers.
type ParseNode struct {
	Type     IRType
	Tokens   []lex.Token
	Children []*ParseNode
	Payload  *VerbatimPayload
}
