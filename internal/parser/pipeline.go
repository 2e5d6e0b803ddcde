package parser

import (
	"strings"

	"github.com/lexfmt/lexfmt/internal/ast"
	"github.com/lexfmt/lexfmt/internal/lex"
)

// ParseDocument runs the whole pipeline over a source string and returns
// the assembled document. The source is normalized to end with exactly one
// newline before tokenization. The pipeline short-circuits on the first
// structural error; there is no partial document on failure.
func ParseDocument(src string) (*ast.Document, error) {
	src = Normalize(src)

	ir, err := ParseToIR(src)
	if err != nil {
		return nil, err
	}

	return AttachAnnotations(BuildDocument(ir, src)), nil
}

// Normalize rewrites the source to end with exactly one newline. A source
// with no content at all stays empty and parses to an empty document.
func Normalize(src string) string {
	trimmed := strings.TrimRight(src, "\n")
	if trimmed == "" {
		return ""
	}

	return trimmed + "\n"
}

// Tokenize exposes the character tokenizer stage for tooling.
func Tokenize(src string) []lex.Token {
	return lex.Tokenize(src)
}

// Lex exposes the lexing stages for tooling: tokenization followed by
// indentation mapping. Blank lines pass through as one BlankLine token
// per source line; the grammar groups runs of them later.
func Lex(src string) ([]lex.Token, error) {
	return lex.MapIndentation(src, lex.Tokenize(src))
}

// ParseToIR runs the pipeline through the grammar matcher and returns the
// intermediate parse tree.
func ParseToIR(src string) (*ParseNode, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}

	root := lex.BuildContainers(lex.GroupLines(tokens))

	return MatchDocument(root, src)
}
