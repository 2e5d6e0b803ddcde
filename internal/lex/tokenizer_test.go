package lex

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func types(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Type
	}

	return out
}

func TestTokenize_Words(t *testing.T) {
	tokens := Tokenize("hello world")
	assert.Equal(t, []TokenType{TokenText, TokenWhitespace, TokenText}, types(tokens))
	assert.Equal(t, "hello", tokens[0].Text)
	assert.Equal(t, "world", tokens[2].Text)
}

func TestTokenize_OrderedTitleAndItems(t *testing.T) {
	tokens := Tokenize("1. Session Title\n    - Item 1\n")

	assert.Equal(t, []TokenType{
		TokenNumber, TokenPeriod, TokenWhitespace, TokenText,
		TokenWhitespace, TokenText, TokenNewline,
		TokenIndentation, TokenDash, TokenWhitespace, TokenText,
		TokenWhitespace, TokenNumber, TokenNewline,
	}, types(tokens))
	assert.Equal(t, "1", tokens[0].Text)
	assert.Equal(t, "    ", tokens[7].Text)
}

func TestTokenize_LexMarker(t *testing.T) {
	tokens := Tokenize(":: note ::\n")
	assert.Equal(t, []TokenType{
		TokenLexMarker, TokenWhitespace, TokenText,
		TokenWhitespace, TokenLexMarker, TokenNewline,
	}, types(tokens))

	// A single colon stays a colon.
	tokens = Tokenize("a: b\n")
	assert.Equal(t, []TokenType{
		TokenText, TokenColon, TokenWhitespace, TokenText, TokenNewline,
	}, types(tokens))
}

func TestTokenize_BlankLines(t *testing.T) {
	tokens := Tokenize("a\n\n   \nb\n")
	assert.Equal(t, []TokenType{
		TokenText, TokenNewline,
		TokenBlankLine,
		TokenBlankLine,
		TokenText, TokenNewline,
	}, types(tokens))
	// The whitespace-only blank line carries its whitespace and newline.
	assert.Equal(t, "   \n", tokens[3].Text)
}

func TestTokenize_ByteSpans(t *testing.T) {
	src := "ab cd\n  ef\n"
	tokens := Tokenize(src)

	pos := 0
	for _, tok := range tokens {
		assert.Equal(t, pos, tok.Start)
		assert.Equal(t, src[tok.Start:tok.End], tok.Text)
		pos = tok.End
	}
	assert.Equal(t, len(src), pos)
}

func TestTokenize_Total(t *testing.T) {
	// Arbitrary punctuation soup still tokenizes.
	src := "x%&@|{}~^\\ [a](b) *c* _d_ `e` #f# \"g\", h=i.\n"
	tokens := Tokenize(src)
	assert.NotEqual(t, 0, len(tokens))
	assert.Equal(t, len(src), tokens[len(tokens)-1].End)
}

func TestTokenize_Empty(t *testing.T) {
	assert.Equal(t, 0, len(Tokenize("")))
}
