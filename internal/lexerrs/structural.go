package lexerrs

import (
	"fmt"

	"github.com/lexfmt/lexfmt/internal/source"
)

// StructuralError reports a document whose shape violates the block grammar:
// a container child sequence no pattern matches. A misaligned dedent is
// reported as an IndentationError instead.
type StructuralError struct {
	// Parent names the enclosing context ("document", "session", ...).
	Parent string
	// InvalidChild describes the offending element ("paragraph-line", ...).
	InvalidChild string
	// InvalidChildText is the source text of the offending element.
	InvalidChildText string
	// Range locates the offending element in the source.
	Range source.Range
	// SourceContext is the rendered snippet around the offending lines.
	SourceContext string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf(
		"%s cannot contain %s %q at %s\n%s",
		e.Parent,
		e.InvalidChild,
		e.InvalidChildText,
		e.Range,
		e.SourceContext,
	)
}

// NewStructural builds a StructuralError, rendering the context snippet
// from the original source.
func NewStructural(
	src string,
	parent string,
	invalidChild string,
	invalidChildText string,
	rng source.Range,
) *StructuralError {
	return &StructuralError{
		Parent:           parent,
		InvalidChild:     invalidChild,
		InvalidChildText: invalidChildText,
		Range:            rng,
		SourceContext:    source.Snippet(src, rng),
	}
}

// IndentationError reports a dedent to a width that was never pushed on the
// indentation stack. It renders through the same structural shape.
type IndentationError struct {
	// Width is the offending indentation width in space-equivalents.
	Width int
	// Known holds the stack of widths open at the offending line.
	Known []int
	// Range locates the offending line.
	Range source.Range
	// SourceContext is the rendered snippet around the offending line.
	SourceContext string
}

func (e *IndentationError) Error() string {
	return fmt.Sprintf(
		"misaligned dedent to width %d (open levels %v) at %s\n%s",
		e.Width,
		e.Known,
		e.Range,
		e.SourceContext,
	)
}

// NewIndentation builds an IndentationError with its context snippet.
func NewIndentation(
	src string,
	width int,
	known []int,
	rng source.Range,
) *IndentationError {
	stack := make([]int, len(known))
	copy(stack, known)

	return &IndentationError{
		Width:         width,
		Known:         stack,
		Range:         rng,
		SourceContext: source.Snippet(src, rng),
	}
}
