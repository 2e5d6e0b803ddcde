package ast

import (
	"fmt"
	"strings"

	"github.com/lexfmt/lexfmt/internal/source"
)

// TextContent is a source substring together with its parsed inline nodes.
// Text is an owned copy of the source bytes, not a view into the source
// string.
type TextContent struct {
	Text    string
	Loc     source.Range
	Inlines []InlineNode
}

// TextLine is one source line of a paragraph.
type TextLine struct {
	Content TextContent
}

// Document is the parse result: a root Session with an empty title owning
// the top-level children.
type Document struct {
	Root *Session
}

// NodeType identifies the node.
func (d *Document) NodeType() string { return NodeDocument }

// Label returns the display label.
func (d *Document) Label() string { return "" }

// Range returns the root session's range.
func (d *Document) Range() source.Range { return d.Root.Range() }

// Children returns the root session.
func (d *Document) Children() []ContentItem {
	return []ContentItem{d.Root}
}

// Session is a titled container; sessions form the document hierarchy.
type Session struct {
	Title TextContent
	Body  *SessionContainer
	Loc   source.Range
}

// NewSession creates a session with an empty body.
func NewSession(title TextContent, loc source.Range) *Session {
	return &Session{Title: title, Body: &SessionContainer{}, Loc: loc}
}

// NodeType identifies the node.
func (s *Session) NodeType() string { return NodeSession }

// Label returns the session title.
func (s *Session) Label() string { return s.Title.Text }

// Range returns the node's source range.
func (s *Session) Range() source.Range { return s.Loc }

// Children returns the session body items.
func (s *Session) Children() []ContentItem { return s.Body.Items() }

// Paragraph is a run of adjacent text lines.
type Paragraph struct {
	Lines []TextLine
	Loc   source.Range
}

// NodeType identifies the node.
func (p *Paragraph) NodeType() string { return NodeParagraph }

// Label returns the first line of the paragraph.
func (p *Paragraph) Label() string {
	if len(p.Lines) == 0 {
		return ""
	}

	return p.Lines[0].Content.Text
}

// Range returns the node's source range.
func (p *Paragraph) Range() source.Range { return p.Loc }

// Children returns nil; paragraphs are leaves.
func (p *Paragraph) Children() []ContentItem { return nil }

// List is a sequence of list items.
type List struct {
	Items []*ListItem
	Loc   source.Range
}

// NodeType identifies the node.
func (l *List) NodeType() string { return NodeList }

// Label returns the item count.
func (l *List) Label() string {
	return fmt.Sprintf("%d items", len(l.Items))
}

// Range returns the node's source range.
func (l *List) Range() source.Range { return l.Loc }

// Children returns the list items.
func (l *List) Children() []ContentItem {
	items := make([]ContentItem, len(l.Items))
	for i, item := range l.Items {
		items[i] = item
	}

	return items
}

// ListItem is a marker, a body text, and an optional nested block.
type ListItem struct {
	Marker string
	Body   TextContent
	Nested *GeneralContainer
	Loc    source.Range
}

// NodeType identifies the node.
func (li *ListItem) NodeType() string { return NodeListItem }

// Label returns the marker and body.
func (li *ListItem) Label() string {
	return strings.TrimSpace(li.Marker + " " + li.Body.Text)
}

// Range returns the node's source range.
func (li *ListItem) Range() source.Range { return li.Loc }

// Children returns the nested block items.
func (li *ListItem) Children() []ContentItem {
	if li.Nested == nil {
		return nil
	}

	return li.Nested.Items()
}

// Definition is a subject line with an indented body. Annotations adjacent
// to the definition are attached by the assembling pass.
type Definition struct {
	Subject     TextContent
	Body        *GeneralContainer
	Annotations []*Annotation
	Loc         source.Range
}

// NodeType identifies the node.
func (d *Definition) NodeType() string { return NodeDefinition }

// Label returns the definition subject.
func (d *Definition) Label() string { return d.Subject.Text }

// Range returns the node's source range.
func (d *Definition) Range() source.Range { return d.Loc }

// Children returns the body items followed by the attached annotations.
func (d *Definition) Children() []ContentItem {
	items := d.Body.Items()
	out := make([]ContentItem, 0, len(items)+len(d.Annotations))
	out = append(out, items...)
	for _, ann := range d.Annotations {
		out = append(out, ann)
	}

	return out
}

// Label is an annotation's leading identifier.
type Label struct {
	Value string
}

// Parameter is one key=value pair of an annotation.
type Parameter struct {
	Key   string
	Value string
}

// Data is an annotation header: label plus parameters.
type Data struct {
	Label      Label
	Parameters []Parameter
	Loc        source.Range
}

// Annotation is a '::'-delimited metadata block.
type Annotation struct {
	Data Data
	Body *GeneralContainer
	Loc  source.Range
}

// NodeType identifies the node.
func (a *Annotation) NodeType() string { return NodeAnnotation }

// Label returns the annotation label.
func (a *Annotation) Label() string { return a.Data.Label.Value }

// Range returns the node's source range.
func (a *Annotation) Range() source.Range { return a.Loc }

// Children returns the annotation body items.
func (a *Annotation) Children() []ContentItem { return a.Body.Items() }

// VerbatimLine is one content line of a verbatim block after the
// indentation wall was stripped.
type VerbatimLine struct {
	Text string
	Loc  source.Range
}

// Verbatim is a subject line introducing foreign content, terminated by a
// closing annotation line.
type Verbatim struct {
	Subject     TextContent
	Content     []VerbatimLine
	ClosingData Data
	Loc         source.Range
}

// NodeType identifies the node.
func (v *Verbatim) NodeType() string { return NodeVerbatim }

// Label returns the verbatim subject.
func (v *Verbatim) Label() string { return v.Subject.Text }

// Range returns the node's source range.
func (v *Verbatim) Range() source.Range { return v.Loc }

// Children returns nil; verbatim content is not a node tree.
func (v *Verbatim) Children() []ContentItem { return nil }

// BlankLineGroup records a run of blank lines between blocks. It survives
// into the AST so serializers can reproduce separation faithfully; any
// non-zero count is semantically equivalent.
type BlankLineGroup struct {
	Count int
	Loc   source.Range
}

// NodeType identifies the node.
func (b *BlankLineGroup) NodeType() string { return NodeBlankLineGroup }

// Label returns the blank line count.
func (b *BlankLineGroup) Label() string {
	return fmt.Sprintf("%d blank", b.Count)
}

// Range returns the node's source range.
func (b *BlankLineGroup) Range() source.Range { return b.Loc }

// Children returns nil; blank groups are leaves.
func (b *BlankLineGroup) Children() []ContentItem { return nil }
