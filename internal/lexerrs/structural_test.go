package lexerrs

import (
	"strings"
	"testing"

	"github.com/lexfmt/lexfmt/internal/source"
)

func TestStructuralError_Message(t *testing.T) {
	src := "one\ntwo\nthree\nfour\nfive\n"
	idx := source.NewLineIndex(src)
	rng := idx.RangeOf(source.ByteRange{Start: 8, End: 13}) // "three"

	err := NewStructural(src, "document", "paragraph-line", "three", rng)

	msg := err.Error()
	if !strings.Contains(msg, "document cannot contain paragraph-line") {
		t.Errorf("missing phrase in %q", msg)
	}
	if !strings.Contains(msg, ">    3 | three") {
		t.Errorf("missing marked line in %q", msg)
	}
	if !strings.Contains(msg, "     1 | one") {
		t.Errorf("missing leading context in %q", msg)
	}
	if !strings.Contains(msg, "     5 | five") {
		t.Errorf("missing trailing context in %q", msg)
	}
}

func TestIndentationError_Message(t *testing.T) {
	src := "a:\n    b\n  c\n"
	idx := source.NewLineIndex(src)
	rng := idx.RangeOf(source.ByteRange{Start: 9, End: 11})

	err := NewIndentation(src, 2, []int{0, 4}, rng)

	msg := err.Error()
	if !strings.Contains(msg, "misaligned dedent to width 2") {
		t.Errorf("missing width in %q", msg)
	}
	if !strings.Contains(msg, "[0 4]") {
		t.Errorf("missing open levels in %q", msg)
	}
}

func TestIndentationError_CopiesStack(t *testing.T) {
	src := "x\n"
	stack := []int{0, 4}
	err := NewIndentation(src, 2, stack, source.Range{})

	stack[1] = 99
	if err.Known[1] != 4 {
		t.Error("Known must be a copy of the stack, not a view")
	}
}

func TestContainerPolicyError_Message(t *testing.T) {
	err := &ContainerPolicyError{Container: "general", Child: "Session"}
	want := "general container cannot hold Session nodes"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
