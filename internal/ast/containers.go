package ast

import "github.com/lexfmt/lexfmt/internal/lexerrs"

// The three nesting policies of the format. The grammar matcher only
// produces valid trees, so a policy violation is a programmer error; the
// containers enforce it as an assertion (panic with a typed error) rather
// than silently accepting the child.

// SessionContainer holds the children of a Session. Any content item is
// accepted, nested Sessions included.
type SessionContainer struct {
	items []ContentItem
}

// Push appends a child.
func (c *SessionContainer) Push(item ContentItem) {
	c.items = append(c.items, item)
}

// Items returns the children in source order.
func (c *SessionContainer) Items() []ContentItem {
	return c.items
}

// Len returns the number of children.
func (c *SessionContainer) Len() int {
	return len(c.items)
}

// Replace swaps the container's items. Used by the assembling passes.
func (c *SessionContainer) Replace(items []ContentItem) {
	c.items = items
}

// GeneralContainer holds the children of Annotation, Definition, and
// ListItem nodes. Sessions are rejected: the document hierarchy is formed
// by sessions alone.
type GeneralContainer struct {
	items []ContentItem
}

// Push appends a child, panicking with a ContainerPolicyError when the
// child is a Session.
func (c *GeneralContainer) Push(item ContentItem) {
	if item.NodeType() == NodeSession {
		panic(&lexerrs.ContainerPolicyError{
			Container: "general",
			Child:     NodeSession,
		})
	}
	c.items = append(c.items, item)
}

// Items returns the children in source order.
func (c *GeneralContainer) Items() []ContentItem {
	return c.items
}

// Len returns the number of children.
func (c *GeneralContainer) Len() int {
	return len(c.items)
}

// Replace swaps the container's items. Used by the assembling passes.
func (c *GeneralContainer) Replace(items []ContentItem) {
	c.items = items
}

// VerbatimContainer holds the content lines of a Verbatim node. Only
// VerbatimLine values are accepted, which the type system already
// guarantees; the container exists so the three policies stay parallel.
type VerbatimContainer struct {
	lines []VerbatimLine
}

// Push appends a content line.
func (c *VerbatimContainer) Push(line VerbatimLine) {
	c.lines = append(c.lines, line)
}

// Lines returns the content lines in source order.
func (c *VerbatimContainer) Lines() []VerbatimLine {
	return c.lines
}
