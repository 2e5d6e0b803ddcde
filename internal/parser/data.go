package parser

import (
	"strings"

	"github.com/lexfmt/lexfmt/internal/ast"
	"github.com/lexfmt/lexfmt/internal/lex"
)

// extractData parses an annotation header into its label and parameters.
// The tokens are the content of one annotation line: an opening LexMarker,
// the label and parameter material, and usually a closing LexMarker.
//
// The label is every leading run of label components (text, numbers,
// dashes, periods), joined with single spaces, up to the first run that a
// '=' follows: that run is the first parameter key. Runs are separated by
// whitespace or commas; other tokens are skipped.
// Parameters are key=value pairs separated by whitespace or commas; values
// may be double-quoted.
func (b *builder) extractData(tokens []lex.Token) ast.Data {
	data := ast.Data{Loc: b.idx.RangeOf(tokenSpan(tokens))}

	inner := annotationInner(tokens)
	runs := splitRuns(inner)

	// The label is every leading run not followed by '='.
	var labelParts []string
	i := 0
	for ; i < len(runs); i++ {
		if runs[i].hasEquals {
			break
		}
		labelParts = append(labelParts, runs[i].text)
	}
	data.Label = ast.Label{Value: strings.Join(labelParts, " ")}

	for ; i < len(runs); i++ {
		data.Parameters = append(data.Parameters, ast.Parameter{
			Key:   runs[i].text,
			Value: runs[i].value,
		})
	}

	return data
}

// annotationInner strips the opening LexMarker and a closing LexMarker.
func annotationInner(tokens []lex.Token) []lex.Token {
	if len(tokens) > 0 && tokens[0].Type == lex.TokenLexMarker {
		tokens = tokens[1:]
	}
	if len(tokens) > 0 && tokens[len(tokens)-1].Type == lex.TokenLexMarker {
		tokens = tokens[:len(tokens)-1]
	}
	for len(tokens) > 0 && tokens[0].Type == lex.TokenWhitespace {
		tokens = tokens[1:]
	}
	for len(tokens) > 0 && tokens[len(tokens)-1].Type == lex.TokenWhitespace {
		tokens = tokens[:len(tokens)-1]
	}

	return tokens
}

// run is one whitespace/comma-separated component run of an annotation
// header, with its '=' value when the run is a parameter key.
type run struct {
	text      string
	hasEquals bool
	value     string
}

// splitRuns walks the inner tokens and groups label components into runs,
// attaching '='-values to the run they follow.
func splitRuns(tokens []lex.Token) []run {
	var runs []run
	i := 0
	for i < len(tokens) {
		tok := tokens[i]

		switch tok.Type {
		case lex.TokenWhitespace, lex.TokenComma:
			i++

		case lex.TokenText, lex.TokenNumber, lex.TokenDash, lex.TokenPeriod:
			var parts []string
			for i < len(tokens) && isLabelComponent(tokens[i].Type) {
				parts = append(parts, tokens[i].Text)
				i++
			}
			r := run{text: strings.Join(parts, "")}

			// A '=' after the run (whitespace allowed) makes it a key.
			j := i
			for j < len(tokens) && tokens[j].Type == lex.TokenWhitespace {
				j++
			}
			if j < len(tokens) && tokens[j].Type == lex.TokenEquals {
				r.hasEquals = true
				i = j + 1
				for i < len(tokens) && tokens[i].Type == lex.TokenWhitespace {
					i++
				}
				r.value, i = parseValue(tokens, i)
			}
			runs = append(runs, r)

		default:
			// Stray tokens end no run; skip them.
			i++
		}
	}

	return runs
}

func isLabelComponent(t lex.TokenType) bool {
	switch t {
	case lex.TokenText, lex.TokenNumber, lex.TokenDash, lex.TokenPeriod:
		return true
	default:
		return false
	}
}

// parseValue reads a parameter value at position i: either a quoted string
// or a run of tokens up to whitespace or comma.
func parseValue(tokens []lex.Token, i int) (string, int) {
	if i < len(tokens) && tokens[i].Type == lex.TokenQuote {
		i++
		var parts []string
		for i < len(tokens) && tokens[i].Type != lex.TokenQuote {
			parts = append(parts, tokens[i].Text)
			i++
		}
		if i < len(tokens) {
			i++ // closing quote
		}

		return strings.Join(parts, ""), i
	}

	var parts []string
	for i < len(tokens) {
		switch tokens[i].Type {
		case lex.TokenWhitespace, lex.TokenComma:
			return strings.Join(parts, ""), i
		default:
			parts = append(parts, tokens[i].Text)
			i++
		}
	}

	return strings.Join(parts, ""), i
}
