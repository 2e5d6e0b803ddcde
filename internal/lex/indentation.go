package lex

import (
	"github.com/lexfmt/lexfmt/internal/lexerrs"
	"github.com/lexfmt/lexfmt/internal/source"
)

// tabWidth is the space-equivalent width of one tab in indentation runs.
const tabWidth = 4

// MapIndentation rewrites a flat token stream into one carrying explicit
// TokenIndent/TokenDedent events. It tracks a stack of observed widths;
// widening pushes and emits an Indent, narrowing pops and emits one Dedent
// per popped level, and a width matching no open level is a structural
// indentation error. Blank lines never move the stack. Every level still
// open at end of source is closed by a trailing virtual dedent.
func MapIndentation(src string, tokens []Token) ([]Token, error) {
	m := indentMapper{
		src:   src,
		stack: []int{0},
	}

	return m.run(tokens)
}

type indentMapper struct {
	src   string
	stack []int
	out   []Token
}

func (m *indentMapper) run(tokens []Token) ([]Token, error) {
	atLineStart := true
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if tok.Type == TokenBlankLine {
			m.out = append(m.out, tok)
			atLineStart = true

			continue
		}

		if atLineStart {
			width := 0
			if tok.Type == TokenIndentation {
				width = indentWidth(tok.Text)
			}
			if err := m.adjust(width, tok); err != nil {
				return nil, err
			}
			atLineStart = false
		}

		m.out = append(m.out, tok)
		if tok.Type == TokenNewline {
			atLineStart = true
		}
	}

	// Close every level still open at end of source.
	end := len(m.src)
	for len(m.stack) > 1 {
		depth := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		m.out = append(m.out, Token{
			Type:  TokenDedent,
			Start: end,
			End:   end,
			Depth: depth,
		})
	}

	return m.out, nil
}

// adjust compares the new line's width against the stack and emits the
// Indent/Dedent events just before the line's first token.
func (m *indentMapper) adjust(width int, lineStart Token) error {
	top := m.stack[len(m.stack)-1]

	switch {
	case width > top:
		m.stack = append(m.stack, width)
		m.out = append(m.out, Token{
			Type:  TokenIndent,
			Start: lineStart.Start,
			End:   lineStart.Start,
			Depth: width,
		})

	case width < top:
		for len(m.stack) > 1 && m.stack[len(m.stack)-1] > width {
			depth := m.stack[len(m.stack)-1]
			m.stack = m.stack[:len(m.stack)-1]
			m.out = append(m.out, Token{
				Type:  TokenDedent,
				Start: lineStart.Start,
				End:   lineStart.Start,
				Depth: depth,
			})
		}
		if m.stack[len(m.stack)-1] != width {
			idx := source.NewLineIndex(m.src)

			return lexerrs.NewIndentation(
				m.src,
				width,
				m.stack,
				idx.RangeOf(lineStart.Span()),
			)
		}
	}

	return nil
}

// indentWidth measures an indentation run in space-equivalents.
func indentWidth(text string) int {
	width := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\t' {
			width += tabWidth
		} else {
			width++
		}
	}

	return width
}
