package parser

import (
	"github.com/lexfmt/lexfmt/internal/ast"
	"github.com/lexfmt/lexfmt/internal/source"
)

// AttachAnnotations binds free-standing annotations to the nearest
// adjacent definition. An annotation on the line directly before or after
// a definition moves onto that definition's annotation list; when both
// neighbors qualify the smaller line distance wins, ties preferring the
// following node. Annotations with no adjacent target stay where they are
// ("detached"). The pass is idempotent: attached annotations leave the
// container, so a second run finds nothing to move.
func AttachAnnotations(doc *ast.Document) *ast.Document {
	attachInSession(doc.Root)

	return doc
}

func attachInSession(s *ast.Session) {
	s.Body.Replace(attachInItems(s.Body.Items()))
	for _, item := range s.Body.Items() {
		attachInItem(item)
	}
}

func attachInGeneral(c *ast.GeneralContainer) {
	c.Replace(attachInItems(c.Items()))
	for _, item := range c.Items() {
		attachInItem(item)
	}
}

func attachInItem(item ast.ContentItem) {
	switch node := item.(type) {
	case *ast.Session:
		attachInSession(node)
	case *ast.Definition:
		attachInGeneral(node.Body)
	case *ast.Annotation:
		attachInGeneral(node.Body)
	case *ast.List:
		for _, li := range node.Items {
			attachInGeneral(li.Nested)
		}
	}
}

// attachInItems processes one container's direct children and returns the
// children left after attachment.
func attachInItems(items []ast.ContentItem) []ast.ContentItem {
	attached := make([]bool, len(items))

	for i, item := range items {
		ann, ok := item.(*ast.Annotation)
		if !ok {
			continue
		}

		target := bestTarget(items, i)
		if target == nil {
			continue
		}
		target.Annotations = append(target.Annotations, ann)
		attached[i] = true
	}

	var out []ast.ContentItem
	for i, item := range items {
		if !attached[i] {
			out = append(out, item)
		}
	}

	return out
}

// bestTarget finds the definition the annotation at index i attaches to.
func bestTarget(items []ast.ContentItem, i int) *ast.Definition {
	annStart := startLine(items[i])
	annEnd := endLine(items[i])

	var prev *ast.Definition
	prevDist := 0
	if i > 0 {
		if def, ok := items[i-1].(*ast.Definition); ok {
			prevDist = annStart - endLine(items[i-1])
			if prevDist == 1 {
				prev = def
			}
		}
	}

	var next *ast.Definition
	nextDist := 0
	if i+1 < len(items) {
		if def, ok := items[i+1].(*ast.Definition); ok {
			nextDist = startLine(items[i+1]) - annEnd
			if nextDist == 1 {
				next = def
			}
		}
	}

	switch {
	case prev != nil && next != nil:
		// Equal distances tie-break toward the following node.
		if prevDist < nextDist {
			return prev
		}

		return next
	case prev != nil:
		return prev
	default:
		return next
	}
}

func startLine(item ast.ContentItem) int {
	return item.Range().Start.Line
}

// endLine returns the inclusive last line of the item's range.
func endLine(item ast.ContentItem) int {
	r := item.Range()
	if r.End.Column == 0 && r.End.Line > r.Start.Line {
		return r.End.Line - 1
	}

	return r.End.Line
}

// rangeOfItems is the bounding range of a slice of items.
func rangeOfItems(items []ast.ContentItem) source.Range {
	var loc source.Range
	for _, item := range items {
		loc = loc.Union(item.Range())
	}

	return loc
}
