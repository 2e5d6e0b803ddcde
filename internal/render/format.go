package render

import (
	"fmt"

	"github.com/lexfmt/lexfmt/internal/lex"
	"github.com/lexfmt/lexfmt/internal/parser"
)

// Format names accepted by the CLI's --format flag.
const (
	FormatTokensCore = "tokens-core"
	FormatTokensLine = "tokens-line"
	FormatIR         = "ir"
	FormatASTJSON    = "ast-json"
	FormatASTTag     = "ast-tag"
	FormatASTTreeviz = "ast-treeviz"
)

// Formats lists the accepted format names in display order.
func Formats() []string {
	return []string{
		FormatTokensCore,
		FormatTokensLine,
		FormatIR,
		FormatASTJSON,
		FormatASTTag,
		FormatASTTreeviz,
	}
}

// Render runs the pipeline far enough for the requested format and
// serializes the artifact. Color only affects the treeviz format.
func Render(src, format string, color bool) (string, error) {
	src = parser.Normalize(src)

	switch format {
	case FormatTokensCore:
		return TokensCore(parser.Tokenize(src)), nil

	case FormatTokensLine:
		tokens, err := parser.Lex(src)
		if err != nil {
			return "", err
		}

		return TokensLine(src, lex.GroupLines(tokens)), nil

	case FormatIR:
		ir, err := parser.ParseToIR(src)
		if err != nil {
			return "", err
		}

		return IR(ir), nil

	case FormatASTJSON:
		doc, err := parser.ParseDocument(src)
		if err != nil {
			return "", err
		}

		return JSON(doc)

	case FormatASTTag:
		doc, err := parser.ParseDocument(src)
		if err != nil {
			return "", err
		}

		return Tag(doc), nil

	case FormatASTTreeviz:
		doc, err := parser.ParseDocument(src)
		if err != nil {
			return "", err
		}

		return Treeviz(doc, color), nil

	default:
		return "", fmt.Errorf("unknown format: %s", format)
	}
}
