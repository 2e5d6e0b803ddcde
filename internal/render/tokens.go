// Package render serializes pipeline artifacts for the CLI: token streams,
// the intermediate parse tree, and the AST snapshot in its tag, JSON, and
// tree-diagram forms. The AST serializers walk the stable AstSnapshot
// shape; the token and IR serializers render the lexer's tokens and the
// parser's ParseNode tree directly.
package render

import (
	"fmt"
	"strings"

	"github.com/lexfmt/lexfmt/internal/lex"
)

// TokensCore renders the character-level token stream, one token per line
// with its byte span and text.
func TokensCore(tokens []lex.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		if tok.IsSemantic() {
			fmt.Fprintf(
				&b,
				"%-12s %4d..%-4d depth=%d\n",
				tok.Type, tok.Start, tok.End, tok.Depth,
			)

			continue
		}
		fmt.Fprintf(
			&b,
			"%-12s %4d..%-4d %q\n",
			tok.Type, tok.Start, tok.End, tok.Text,
		)
	}

	return b.String()
}

// TokensLine renders the classified line tokens, one line per source line.
func TokensLine(src string, lines []*lex.LineToken) string {
	var b strings.Builder
	for _, line := range lines {
		span := line.Span()
		fmt.Fprintf(
			&b,
			"%-28s %4d..%-4d %q\n",
			line.Type.Name(), span.Start, span.End, line.Text(src),
		)
	}

	return b.String()
}

// Detokenize reconstructs source text from a token stream. The tokenizer
// is lossless, so detokenizing its output returns the input exactly.
func Detokenize(tokens []lex.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		if tok.IsSemantic() {
			continue
		}
		b.WriteString(tok.Text)
	}

	return b.String()
}
