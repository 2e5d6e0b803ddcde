// Package lex turns raw source text into the classified line stream the
// grammar operates on. It covers four stages: character tokenization,
// semantic indentation mapping (Indent/Dedent events), line grouping and
// classification, and the container tree that scopes indented blocks.
package lex

import "github.com/lexfmt/lexfmt/internal/source"

// TokenType identifies the lexical category of a primitive token.
type TokenType uint8

const (
	// TokenText is a run of plain text characters.
	TokenText TokenType = iota
	// TokenNumber is a run of ASCII digits.
	TokenNumber
	// TokenWhitespace is a run of spaces or tabs inside a line.
	TokenWhitespace
	// TokenIndentation is a run of leading spaces or tabs at line start.
	TokenIndentation
	// TokenNewline is a line terminator.
	TokenNewline
	// TokenBlankLine covers a whitespace-only line including its newline.
	TokenBlankLine
	// TokenDash is a single '-'.
	TokenDash
	// TokenPeriod is a single '.'.
	TokenPeriod
	// TokenColon is a single ':'.
	TokenColon
	// TokenEquals is a single '='.
	TokenEquals
	// TokenLexMarker is the doubled punctuation '::'.
	TokenLexMarker
	// TokenBracketOpen is a single '['.
	TokenBracketOpen
	// TokenBracketClose is a single ']'.
	TokenBracketClose
	// TokenAsterisk is a single '*'.
	TokenAsterisk
	// TokenUnderscore is a single '_'.
	TokenUnderscore
	// TokenBacktick is a single '`'.
	TokenBacktick
	// TokenHash is a single '#'.
	TokenHash
	// TokenParenOpen is a single '('.
	TokenParenOpen
	// TokenParenClose is a single ')'.
	TokenParenClose
	// TokenComma is a single ','.
	TokenComma
	// TokenQuote is a single '"'.
	TokenQuote

	// Semantic tokens produced by the indentation mapper. Both are
	// zero-width: Start == End at the line they precede.

	// TokenIndent marks an indentation level opening.
	TokenIndent
	// TokenDedent marks an indentation level closing.
	TokenDedent
)

// String returns a human-readable name for the token type.
func (t TokenType) String() string {
	switch t {
	case TokenText:
		return "Text"
	case TokenNumber:
		return "Number"
	case TokenWhitespace:
		return "Whitespace"
	case TokenIndentation:
		return "Indentation"
	case TokenNewline:
		return "Newline"
	case TokenBlankLine:
		return "BlankLine"
	case TokenDash:
		return "Dash"
	case TokenPeriod:
		return "Period"
	case TokenColon:
		return "Colon"
	case TokenEquals:
		return "Equals"
	case TokenLexMarker:
		return "LexMarker"
	case TokenBracketOpen:
		return "BracketOpen"
	case TokenBracketClose:
		return "BracketClose"
	case TokenAsterisk:
		return "Asterisk"
	case TokenUnderscore:
		return "Underscore"
	case TokenBacktick:
		return "Backtick"
	case TokenHash:
		return "Hash"
	case TokenParenOpen:
		return "ParenOpen"
	case TokenParenClose:
		return "ParenClose"
	case TokenComma:
		return "Comma"
	case TokenQuote:
		return "Quote"
	case TokenIndent:
		return "Indent"
	case TokenDedent:
		return "Dedent"
	default:
		return "Unknown"
	}
}

// Token is a primitive token with its half-open byte span in the source.
// Text is a zero-copy view into the source string; it is empty for the
// zero-width Indent/Dedent tokens, whose Depth carries the indentation
// width in space-equivalents.
type Token struct {
	Type  TokenType
	Start int
	End   int
	Text  string
	Depth int
}

// Span returns the token's byte range.
func (t Token) Span() source.ByteRange {
	return source.ByteRange{Start: t.Start, End: t.End}
}

// IsSemantic reports whether the token is a zero-width Indent/Dedent event.
func (t Token) IsSemantic() bool {
	return t.Type == TokenIndent || t.Type == TokenDedent
}

// IsLineTerminator reports whether the token ends a source line.
func (t Token) IsLineTerminator() bool {
	return t.Type == TokenNewline || t.Type == TokenBlankLine
}
