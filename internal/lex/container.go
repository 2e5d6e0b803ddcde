package lex

import "github.com/lexfmt/lexfmt/internal/source"

// LineContainer is one element of the scoped line tree: either a single
// classified line or a nested container of elements collected between an
// Indent and its matching Dedent.
type LineContainer struct {
	// Line is the wrapped line token; nil for containers.
	Line *LineToken
	// Header is the non-blank line immediately preceding the container's
	// Indent, when one exists. The header stays in the parent's child
	// list; this reference only aids diagnostics.
	Header *LineToken
	// Children holds the container's elements; nil for line elements.
	Children []*LineContainer
}

// IsContainer reports whether the element is a nested container.
func (c *LineContainer) IsContainer() bool {
	return c.Line == nil
}

// Span returns the byte range covered by the element and its descendants.
func (c *LineContainer) Span() source.ByteRange {
	if c.Line != nil {
		return c.Line.Span()
	}
	var span source.ByteRange
	for _, child := range c.Children {
		span = span.Union(child.Span())
	}

	return span
}

// BuildContainers converts the classified line stream into a container
// tree. Each Indent opens a child container scoped to its matching Dedent.
// Every container, the root included, gets a synthetic blank line prepended
// so grammar rules requiring a preceding blank match at the boundary.
//
// Blank lines are buffered and settle at the level of the next content
// line: a blank run before a dedent hoists out of the closing container
// and lands beside the block, not inside it. This is what lets the block
// grammar see "subject, block, blank, next element" at one level.
// The returned element is the root container.
func BuildContainers(lines []*LineToken) *LineContainer {
	root := &LineContainer{Children: []*LineContainer{synthBlank()}}
	stack := []*LineContainer{root}
	var lastContent *LineToken
	var pendingBlanks []*LineToken

	flushBlanks := func() {
		top := stack[len(stack)-1]
		for _, blank := range pendingBlanks {
			top.Children = append(top.Children, &LineContainer{Line: blank})
		}
		pendingBlanks = nil
	}

	for _, line := range lines {
		switch line.Type {
		case LineBlank:
			pendingBlanks = append(pendingBlanks, line)

		case LineIndent:
			flushBlanks()
			top := stack[len(stack)-1]
			child := &LineContainer{
				Header:   lastContent,
				Children: []*LineContainer{synthBlank()},
			}
			top.Children = append(top.Children, child)
			stack = append(stack, child)

		case LineDedent:
			// Buffered blanks ride past the pop and settle beside
			// the closed container.
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}

		default:
			flushBlanks()
			top := stack[len(stack)-1]
			top.Children = append(top.Children, &LineContainer{Line: line})
			lastContent = line
		}
	}
	flushBlanks()

	return root
}

func synthBlank() *LineContainer {
	return &LineContainer{Line: &LineToken{Type: LineSynthBlank}}
}
