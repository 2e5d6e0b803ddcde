package source

import (
	"fmt"
	"strings"
)

const (
	contextLinesBefore = 2
	contextLinesAfter  = 2
)

// Snippet renders the lines around a range for error messages: two lines of
// context before, the offending lines marked with ">", two lines after.
// Line numbers in the gutter are one-based for human consumption.
func Snippet(src string, rng Range) string {
	idx := NewLineIndex(src)

	first := rng.Start.Line - contextLinesBefore
	if first < 0 {
		first = 0
	}
	last := rng.End.Line + contextLinesAfter
	if max := idx.LineCount() - 1; last > max {
		last = max
	}

	var b strings.Builder
	for line := first; line <= last; line++ {
		marker := "  "
		if line >= rng.Start.Line && line <= rng.End.Line {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%4d | %s\n", marker, line+1, idx.Line(line))
	}

	return b.String()
}
