package lex

import (
	"strings"

	"github.com/lexfmt/lexfmt/internal/source"
)

// LineType classifies a grouped source line. The set is closed; the grammar
// matcher treats it as its alphabet.
type LineType uint8

const (
	// LineBlank is a whitespace-only line.
	LineBlank LineType = iota
	// LineAnnotationStart opens an annotation: '::' followed by label and
	// parameter tokens.
	LineAnnotationStart
	// LineAnnotationEnd is a line holding exactly '::'.
	LineAnnotationEnd
	// LineSubject ends with ':' before trailing whitespace.
	LineSubject
	// LineList starts with a list marker followed by whitespace.
	LineList
	// LineSubjectOrListItem starts with a list marker and ends with ':'.
	LineSubjectOrListItem
	// LineParagraph is any other content line.
	LineParagraph
	// LineDialog starts with a dialog marker; treated as paragraph-
	// equivalent downstream.
	LineDialog
	// LineIndent wraps a semantic TokenIndent event.
	LineIndent
	// LineDedent wraps a semantic TokenDedent event.
	LineDedent
	// LineSynthBlank is a synthetic blank injected at the start of each
	// container scope. It carries no source tokens and never reaches the
	// AST; it only lets child grammar rules that require a preceding
	// blank line match at a container boundary.
	LineSynthBlank
)

// String returns the grammar symbol for the line type, angle brackets
// included. The matcher concatenates these to form the string its pattern
// regexes run over.
func (t LineType) String() string {
	switch t {
	case LineBlank, LineSynthBlank:
		return "<blank-line>"
	case LineAnnotationStart:
		return "<annotation-start-line>"
	case LineAnnotationEnd:
		return "<annotation-end-line>"
	case LineSubject:
		return "<subject-line>"
	case LineList:
		return "<list-line>"
	case LineSubjectOrListItem:
		return "<subject-or-list-item-line>"
	case LineParagraph:
		return "<paragraph-line>"
	case LineDialog:
		return "<dialog-line>"
	case LineIndent:
		return "<indent>"
	case LineDedent:
		return "<dedent>"
	default:
		return "<unknown>"
	}
}

// Name returns the bare classification name for diagnostics.
func (t LineType) Name() string {
	s := t.String()

	return strings.TrimSuffix(strings.TrimPrefix(s, "<"), ">")
}

// LineToken is one classified source line: its primitive tokens (including
// leading indentation and the terminating newline) plus the LineType.
type LineToken struct {
	Type   LineType
	Tokens []Token
}

// Span returns the byte range covered by the line's tokens. Synthetic and
// structural lines without source tokens return the zero range.
func (lt *LineToken) Span() source.ByteRange {
	var span source.ByteRange
	for _, tok := range lt.Tokens {
		if tok.IsSemantic() {
			continue
		}
		span = span.Union(tok.Span())
	}

	return span
}

// Text returns the line's original text without its terminating newline.
func (lt *LineToken) Text(src string) string {
	span := lt.Span()
	if span.Len() == 0 {
		return ""
	}

	return strings.TrimRight(src[span.Start:span.End], "\n")
}

// Content returns the line's tokens with leading indentation, trailing
// whitespace, and the line terminator stripped. This is the token sequence
// the classifier and extraction helpers reason over.
func (lt *LineToken) Content() []Token {
	toks := lt.Tokens
	for len(toks) > 0 {
		first := toks[0]
		if first.Type == TokenIndentation || first.IsSemantic() {
			toks = toks[1:]

			continue
		}

		break
	}
	for len(toks) > 0 {
		last := toks[len(toks)-1]
		if last.IsLineTerminator() || last.Type == TokenWhitespace {
			toks = toks[:len(toks)-1]

			continue
		}

		break
	}

	return toks
}

// GroupLines splits a mapped token stream into classified line tokens.
// Indent/Dedent events and blank lines become standalone structural lines;
// everything else groups by its terminating newline.
func GroupLines(tokens []Token) []*LineToken {
	var lines []*LineToken
	var current []Token

	flush := func() {
		if len(current) == 0 {
			return
		}
		lt := &LineToken{Tokens: current}
		lt.Type = classify(lt)
		lines = append(lines, lt)
		current = nil
	}

	for _, tok := range tokens {
		switch tok.Type {
		case TokenIndent:
			flush()
			lines = append(lines, &LineToken{
				Type:   LineIndent,
				Tokens: []Token{tok},
			})
		case TokenDedent:
			flush()
			lines = append(lines, &LineToken{
				Type:   LineDedent,
				Tokens: []Token{tok},
			})
		case TokenBlankLine:
			flush()
			lines = append(lines, &LineToken{
				Type:   LineBlank,
				Tokens: []Token{tok},
			})
		case TokenNewline:
			current = append(current, tok)
			flush()
		default:
			current = append(current, tok)
		}
	}
	flush()

	return lines
}

// classify applies the ordered classification rules of the line grammar.
func classify(lt *LineToken) LineType {
	content := lt.Content()
	if len(content) == 0 {
		return LineBlank
	}

	if content[0].Type == TokenLexMarker {
		if len(content) == 1 {
			return LineAnnotationEnd
		}
		if annotationBody(content[1:]) {
			return LineAnnotationStart
		}
	}

	marker := listMarkerLen(content)
	endsColon := content[len(content)-1].Type == TokenColon

	switch {
	case marker > 0 && endsColon:
		return LineSubjectOrListItem
	case marker > 0:
		return LineList
	case endsColon:
		return LineSubject
	case dialogMarker(content):
		return LineDialog
	default:
		return LineParagraph
	}
}

// annotationBody reports whether the tokens after an opening '::' hold only
// label and parameter material: label components, '=', separators, quoted
// values, and an optional closing '::'.
func annotationBody(toks []Token) bool {
	for _, tok := range toks {
		switch tok.Type {
		case TokenText, TokenNumber, TokenDash, TokenPeriod,
			TokenEquals, TokenComma, TokenQuote,
			TokenWhitespace, TokenLexMarker:
		default:
			return false
		}
	}

	return true
}

// listMarkerLen returns how many content tokens form a leading list marker
// (marker tokens only, not the following whitespace), or 0 when the line
// carries no marker. Ordered markers are arabic numbers, single letters,
// and roman numerals, each followed by a period; unordered markers are
// '-', '*', and '+'.
func listMarkerLen(content []Token) int {
	if len(content) < 2 {
		return 0
	}

	first := content[0]

	// Unordered: '-', '*', or a bare '+' text run, then whitespace.
	unordered := first.Type == TokenDash ||
		first.Type == TokenAsterisk ||
		(first.Type == TokenText && first.Text == "+")
	if unordered {
		if content[1].Type == TokenWhitespace {
			return 1
		}

		return 0
	}

	// Ordered: number or letter(s) followed by '.', then whitespace.
	if len(content) < 3 ||
		content[1].Type != TokenPeriod ||
		content[2].Type != TokenWhitespace {
		return 0
	}
	switch first.Type {
	case TokenNumber:
		return 2
	case TokenText:
		if len(first.Text) == 1 && isASCIILetter(first.Text[0]) {
			return 2
		}
		if isRoman(first.Text) {
			return 2
		}
	}

	return 0
}

// dialogMarker recognizes a leading '--' followed by whitespace.
func dialogMarker(content []Token) bool {
	return len(content) >= 3 &&
		content[0].Type == TokenDash &&
		content[1].Type == TokenDash &&
		content[2].Type == TokenWhitespace
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isRoman reports whether the text is a roman numeral, case-insensitive.
func isRoman(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case 'i', 'v', 'x', 'l', 'c', 'd', 'm',
			'I', 'V', 'X', 'L', 'C', 'D', 'M':
		default:
			return false
		}
	}

	return true
}
