package parser

import (
	"github.com/lexfmt/lexfmt/internal/lex"
	"github.com/lexfmt/lexfmt/internal/source"
)

// Token-slice helpers shared by the build steps.

// tokenSpan returns the byte range covered by the tokens, skipping the
// zero-width semantic markers.
func tokenSpan(tokens []lex.Token) source.ByteRange {
	var span source.ByteRange
	for _, tok := range tokens {
		if tok.IsSemantic() {
			continue
		}
		span = span.Union(tok.Span())
	}

	return span
}

// tokensText reconstructs the source text covered by the tokens.
func tokensText(src string, tokens []lex.Token) string {
	span := tokenSpan(tokens)
	if span.Len() == 0 {
		return ""
	}

	return src[span.Start:span.End]
}

// contentTokens strips leading indentation, trailing whitespace, and line
// terminators from a token run.
func contentTokens(tokens []lex.Token) []lex.Token {
	for len(tokens) > 0 {
		first := tokens[0]
		if first.Type == lex.TokenIndentation || first.IsSemantic() {
			tokens = tokens[1:]

			continue
		}

		break
	}
	for len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		if last.IsLineTerminator() || last.Type == lex.TokenWhitespace {
			tokens = tokens[:len(tokens)-1]

			continue
		}

		break
	}

	return tokens
}

// trimTrailingColon drops a trailing colon (and any whitespace before it).
func trimTrailingColon(tokens []lex.Token) []lex.Token {
	if len(tokens) > 0 && tokens[len(tokens)-1].Type == lex.TokenColon {
		tokens = tokens[:len(tokens)-1]
	}
	for len(tokens) > 0 && tokens[len(tokens)-1].Type == lex.TokenWhitespace {
		tokens = tokens[:len(tokens)-1]
	}

	return tokens
}

// splitLines cuts a flat token run at its line terminators. Each returned
// group includes its terminator when one is present.
func splitLines(tokens []lex.Token) [][]lex.Token {
	var lines [][]lex.Token
	var current []lex.Token
	for _, tok := range tokens {
		current = append(current, tok)
		if tok.IsLineTerminator() {
			lines = append(lines, current)
			current = nil
		}
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}

	return lines
}

// splitFirstLine separates a token run into its first line and the rest.
func splitFirstLine(tokens []lex.Token) (first, rest []lex.Token) {
	for i, tok := range tokens {
		if tok.IsLineTerminator() {
			return tokens[:i+1], tokens[i+1:]
		}
	}

	return tokens, nil
}

// splitListMarker cuts a list item's content tokens into the marker run
// and the body after the separating whitespace.
func splitListMarker(content []lex.Token) (marker, body []lex.Token) {
	n := markerLen(content)
	if n == 0 {
		return nil, content
	}

	body = content[n:]
	if len(body) > 0 && body[0].Type == lex.TokenWhitespace {
		body = body[1:]
	}

	return content[:n], body
}

// markerLen mirrors the classifier's list-marker recognition: unordered
// '-', '*', '+' markers and ordered arabic, alphabetic, and roman markers
// followed by a period.
func markerLen(content []lex.Token) int {
	if len(content) < 2 {
		return 0
	}

	first := content[0]
	if first.Type == lex.TokenDash ||
		first.Type == lex.TokenAsterisk ||
		(first.Type == lex.TokenText && first.Text == "+") {
		if content[1].Type == lex.TokenWhitespace {
			return 1
		}

		return 0
	}

	if len(content) >= 3 &&
		content[1].Type == lex.TokenPeriod &&
		content[2].Type == lex.TokenWhitespace &&
		(first.Type == lex.TokenNumber || first.Type == lex.TokenText) {
		return 2
	}

	return 0
}
