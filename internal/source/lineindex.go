package source

import "sort"

// LineIndex provides conversion from byte offsets to zero-based line/column
// positions. The line-start table is built lazily on the first query and
// lookups are O(log n) via binary search.
type LineIndex struct {
	source     string
	lineStarts []int
	built      bool
}

// NewLineIndex creates a LineIndex for the given source.
// The source is retained by reference; the table is built on first use.
func NewLineIndex(source string) *LineIndex {
	return &LineIndex{source: source}
}

func (idx *LineIndex) build() {
	if idx.built {
		return
	}

	idx.lineStarts = []int{0}
	for i := 0; i < len(idx.source); i++ {
		if idx.source[i] == '\n' {
			idx.lineStarts = append(idx.lineStarts, i+1)
		}
	}

	idx.built = true
}

// PositionAt returns the zero-based Position for a byte offset.
// Negative offsets clamp to the document start; offsets past the end clamp
// to the end of the last line.
func (idx *LineIndex) PositionAt(offset int) Position {
	idx.build()

	if offset < 0 {
		return Position{}
	}
	if offset > len(idx.source) {
		offset = len(idx.source)
	}

	// First line whose start is > offset; the line we want is one before it.
	line := sort.Search(len(idx.lineStarts), func(i int) bool {
		return idx.lineStarts[i] > offset
	})
	if line > 0 {
		line--
	}

	return Position{
		Line:   line,
		Column: offset - idx.lineStarts[line],
	}
}

// RangeOf builds a full Range from a byte span.
func (idx *LineIndex) RangeOf(bytes ByteRange) Range {
	return Range{
		Bytes: bytes,
		Start: idx.PositionAt(bytes.Start),
		End:   idx.PositionAt(bytes.End),
	}
}

// LineCount returns the number of lines in the source.
// A trailing newline does not open a counted extra line unless the source
// continues past it.
func (idx *LineIndex) LineCount() int {
	idx.build()

	n := len(idx.lineStarts)
	if n > 1 && idx.lineStarts[n-1] == len(idx.source) {
		return n - 1
	}

	return n
}

// LineStart returns the byte offset where the zero-based line begins.
// Out-of-range lines clamp to the nearest valid line.
func (idx *LineIndex) LineStart(line int) int {
	idx.build()

	if line < 0 {
		return 0
	}
	if line >= len(idx.lineStarts) {
		line = len(idx.lineStarts) - 1
	}

	return idx.lineStarts[line]
}

// Line returns the text of the zero-based line without its newline.
// Out-of-range lines return the empty string.
func (idx *LineIndex) Line(line int) string {
	idx.build()

	if line < 0 || line >= len(idx.lineStarts) {
		return ""
	}

	start := idx.lineStarts[line]
	end := len(idx.source)
	if line+1 < len(idx.lineStarts) {
		end = idx.lineStarts[line+1]
		if end > start && idx.source[end-1] == '\n' {
			end--
		}
	}

	return idx.source[start:end]
}
