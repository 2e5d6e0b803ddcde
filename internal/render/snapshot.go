package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/lexfmt/lexfmt/internal/ast"
)

// JSON renders the snapshot tree as indented JSON.
func JSON(doc *ast.Document) (string, error) {
	out, err := json.MarshalIndent(ast.SnapshotDocument(doc), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	return string(out) + "\n", nil
}

// Tag renders the snapshot tree in a nested tag form:
//
//	<Session label="Intro">
//	  <Paragraph label="Body" />
//	</Session>
func Tag(doc *ast.Document) string {
	var b strings.Builder
	writeTag(&b, ast.SnapshotDocument(doc), 0)

	return b.String()
}

func writeTag(b *strings.Builder, snap ast.AstSnapshot, depth int) {
	indent := strings.Repeat("  ", depth)

	b.WriteString(indent)
	b.WriteString("<")
	b.WriteString(snap.NodeType)
	if snap.Label != "" {
		fmt.Fprintf(b, " label=%q", snap.Label)
	}
	for _, key := range sortedAttrKeys(snap.Attributes) {
		if key == "range" {
			continue
		}
		fmt.Fprintf(b, " %s=%q", key, snap.Attributes[key])
	}

	if len(snap.Children) == 0 {
		b.WriteString(" />\n")

		return
	}

	b.WriteString(">\n")
	for _, child := range snap.Children {
		writeTag(b, child, depth+1)
	}
	fmt.Fprintf(b, "%s</%s>\n", indent, snap.NodeType)
}

func sortedAttrKeys(attrs map[string]string) []string {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}
