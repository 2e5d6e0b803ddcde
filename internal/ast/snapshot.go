package ast

import (
	"strconv"
	"strings"
)

// AstSnapshot is the normalized, serialization-agnostic projection of an
// AST node. Every output format (tag, treeviz, JSON, externally
// contributed serializers) walks this shape instead of the typed tree.
type AstSnapshot struct {
	NodeType   string            `json:"node_type"`
	Label      string            `json:"label"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Children   []AstSnapshot     `json:"children,omitempty"`
}

// SnapshotDocument builds the snapshot tree for a whole document.
func SnapshotDocument(doc *Document) AstSnapshot {
	return Snapshot(doc.Root)
}

// Snapshot builds the snapshot for one node and its descendants.
func Snapshot(item ContentItem) AstSnapshot {
	snap := AstSnapshot{
		NodeType:   item.NodeType(),
		Label:      item.Label(),
		Attributes: snapshotAttributes(item),
	}

	switch node := item.(type) {
	case *Verbatim:
		// Verbatim content is not a node tree; surface the lines as
		// pseudo-children so serializers need no special casing.
		for _, line := range node.Content {
			snap.Children = append(snap.Children, AstSnapshot{
				NodeType: "VerbatimLine",
				Label:    line.Text,
			})
		}
	default:
		for _, child := range item.Children() {
			snap.Children = append(snap.Children, Snapshot(child))
		}
	}

	return snap
}

func snapshotAttributes(item ContentItem) map[string]string {
	attrs := map[string]string{
		"range": item.Range().String(),
	}

	switch node := item.(type) {
	case *ListItem:
		attrs["marker"] = node.Marker
	case *Annotation:
		addDataAttributes(attrs, node.Data)
	case *Verbatim:
		attrs["closing-label"] = node.ClosingData.Label.Value
		for _, p := range node.ClosingData.Parameters {
			attrs["closing-param-"+p.Key] = p.Value
		}
	case *BlankLineGroup:
		attrs["count"] = strconv.Itoa(node.Count)
	case *Definition:
		if len(node.Annotations) > 0 {
			labels := make([]string, len(node.Annotations))
			for i, ann := range node.Annotations {
				labels[i] = ann.Data.Label.Value
			}
			attrs["annotations"] = strings.Join(labels, ",")
		}
	}

	return attrs
}

func addDataAttributes(attrs map[string]string, data Data) {
	attrs["label"] = data.Label.Value
	for _, p := range data.Parameters {
		attrs["param-"+p.Key] = p.Value
	}
}
