package ast

import "github.com/lexfmt/lexfmt/internal/source"

// NodesAt returns every node whose range contains the position, ordered
// deepest-first. This is the inverse map a language server needs to answer
// "what is under the cursor".
func NodesAt(doc *Document, pos source.Position) []ContentItem {
	var out []ContentItem
	collectAt(doc.Root, pos, &out)

	return out
}

// collectAt appends children-first so the result comes out deepest-first.
func collectAt(item ContentItem, pos source.Position, out *[]ContentItem) {
	if item == nil || !item.Range().ContainsPosition(pos) {
		return
	}
	for _, child := range item.Children() {
		collectAt(child, pos, out)
	}
	*out = append(*out, item)
}

// Find returns all nodes in the tree for which pred returns true, in
// pre-order.
func Find(root ContentItem, pred func(ContentItem) bool) []ContentItem {
	var out []ContentItem
	Walk(root, func(item ContentItem) bool {
		if pred(item) {
			out = append(out, item)
		}

		return true
	})

	return out
}

// FindByType returns all nodes with the given node type name, in pre-order.
func FindByType(root ContentItem, nodeType string) []ContentItem {
	return Find(root, func(item ContentItem) bool {
		return item.NodeType() == nodeType
	})
}
