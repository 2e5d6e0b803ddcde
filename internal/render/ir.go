package render

import (
	"fmt"
	"strings"

	"github.com/alecthomas/repr"

	"github.com/lexfmt/lexfmt/internal/parser"
)

// IR renders the intermediate parse tree as an indented outline, with each
// node's tokens dumped through repr for debugging.
func IR(node *parser.ParseNode) string {
	var b strings.Builder
	writeIR(&b, node, 0)

	return b.String()
}

func writeIR(b *strings.Builder, node *parser.ParseNode, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%s", indent, node.Type)
	if len(node.Tokens) > 0 {
		fmt.Fprintf(b, " %s", repr.String(tokenTexts(node)))
	}
	b.WriteString("\n")

	if node.Payload != nil {
		fmt.Fprintf(
			b,
			"%s  payload: %d content lines\n",
			indent,
			len(node.Payload.ContentLines),
		)
	}
	for _, child := range node.Children {
		writeIR(b, child, depth+1)
	}
}

func tokenTexts(node *parser.ParseNode) []string {
	texts := make([]string, 0, len(node.Tokens))
	for _, tok := range node.Tokens {
		if tok.IsSemantic() {
			continue
		}
		texts = append(texts, tok.Text)
	}

	return texts
}
