// Package ast defines the typed document tree produced by the parsing
// pipeline: content nodes, the typed child containers that enforce nesting
// policy, inline nodes, and the snapshot / query surfaces consumed by
// serializers and the language-server layer.
package ast

import "github.com/lexfmt/lexfmt/internal/source"

// Node type names. These are the stable strings surfaced through
// AstSnapshot; serializers key off them.
const (
	NodeDocument       = "Document"
	NodeSession        = "Session"
	NodeParagraph      = "Paragraph"
	NodeList           = "List"
	NodeListItem       = "ListItem"
	NodeDefinition     = "Definition"
	NodeAnnotation     = "Annotation"
	NodeVerbatim       = "Verbatim"
	NodeBlankLineGroup = "BlankLineGroup"
)

// ContentItem is implemented by every node that can appear in a container.
type ContentItem interface {
	// NodeType returns the stable node type name.
	NodeType() string

	// Label returns a short display string for the node.
	Label() string

	// Range returns the node's source range.
	Range() source.Range

	// Children returns the node's direct children in source order.
	// Leaf nodes return nil.
	Children() []ContentItem
}

// Walk traverses the node and its descendants in pre-order, calling fn for
// each. Returning false from fn prunes the node's subtree.
func Walk(item ContentItem, fn func(ContentItem) bool) {
	if item == nil || !fn(item) {
		return
	}
	for _, child := range item.Children() {
		Walk(child, fn)
	}
}
