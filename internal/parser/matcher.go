package parser

import (
	"sort"
	"strings"

	"github.com/lexfmt/lexfmt/internal/lex"
	"github.com/lexfmt/lexfmt/internal/lexerrs"
	"github.com/lexfmt/lexfmt/internal/source"
)

// MatchDocument runs the grammar matcher over the root container and
// returns the intermediate parse tree. It fails with a structural error
// when a non-empty remainder of some container's children matches no
// pattern.
func MatchDocument(root *lex.LineContainer, src string) (*ParseNode, error) {
	m := &matcher{src: src, idx: source.NewLineIndex(src)}

	children, err := m.matchChildren(root.Children, "document")
	if err != nil {
		return nil, err
	}

	return &ParseNode{Type: IRDocument, Children: children}, nil
}

type matcher struct {
	src string
	idx *source.LineIndex
}

// segment is one pattern match over a container's children: the element
// index range it consumed plus the element ranges of its named groups.
type segment struct {
	elems  []*lex.LineContainer
	start  int
	end    int
	groups map[string][2]int
}

// group returns the element range of a named capture and whether the
// capture participated in the match.
func (s segment) group(name string) (from, to int, ok bool) {
	r, ok := s.groups[name]

	return r[0], r[1], ok
}

// encodeElements concatenates the grammar symbols of the elements. The
// returned offsets slice has one entry per element plus the total length,
// so any regex match boundary maps back to an element index.
func encodeElements(elems []*lex.LineContainer) (string, []int) {
	var b strings.Builder
	offsets := make([]int, 0, len(elems)+1)
	for _, el := range elems {
		offsets = append(offsets, b.Len())
		if el.IsContainer() {
			b.WriteString("<container>")
		} else {
			b.WriteString(el.Line.Type.String())
		}
	}
	offsets = append(offsets, b.Len())

	return b.String(), offsets
}

func elemIndexAt(offsets []int, byteOff int) int {
	return sort.SearchInts(offsets, byteOff)
}

// matchChildren matches a container's children against the grammar in
// declaration order, first match wins, until the children are exhausted.
func (m *matcher) matchChildren(
	elems []*lex.LineContainer,
	parent string,
) ([]*ParseNode, error) {
	encoded, offsets := encodeElements(elems)

	var nodes []*ParseNode
	pos := 0
	for pos < len(elems) {
		seg, pat, ok := m.matchAt(encoded, offsets, elems, pos)
		if !ok {
			return nil, m.structuralError(parent, elems[pos])
		}

		built, err := pat.build(m, seg)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, built...)
		pos = seg.end
	}

	return nodes, nil
}

// matchAt tries every pattern at the element position and returns the
// first match.
func (m *matcher) matchAt(
	encoded string,
	offsets []int,
	elems []*lex.LineContainer,
	pos int,
) (segment, *pattern, bool) {
	rest := encoded[offsets[pos]:]
	base := offsets[pos]

	for i := range grammar {
		pat := &grammar[i]
		locs := pat.re.FindStringSubmatchIndex(rest)
		if locs == nil {
			continue
		}

		seg := segment{
			elems:  elems,
			start:  pos,
			end:    elemIndexAt(offsets, base+locs[1]),
			groups: map[string][2]int{},
		}
		for gi, name := range pat.re.SubexpNames() {
			if name == "" || 2*gi >= len(locs) || locs[2*gi] < 0 {
				continue
			}
			seg.groups[name] = [2]int{
				elemIndexAt(offsets, base+locs[2*gi]),
				elemIndexAt(offsets, base+locs[2*gi+1]),
			}
		}

		return seg, pat, true
	}

	return segment{}, nil, false
}

// collectLines flattens a container's raw lines in source order, dropping
// synthetic blanks and structural markers. Nested containers contribute
// their lines in place, so the result reads exactly as the source does.
func collectLines(el *lex.LineContainer, out *[]*lex.LineToken) {
	if !el.IsContainer() {
		switch el.Line.Type {
		case lex.LineSynthBlank, lex.LineIndent, lex.LineDedent:
		default:
			*out = append(*out, el.Line)
		}

		return
	}
	for _, child := range el.Children {
		collectLines(child, out)
	}
}

// structuralError reports the first unmatched element.
func (m *matcher) structuralError(
	parent string,
	el *lex.LineContainer,
) error {
	desc := "indented block"
	text := ""
	span := el.Span()

	if !el.IsContainer() {
		desc = el.Line.Type.Name()
		text = el.Line.Text(m.src)
	} else {
		var lines []*lex.LineToken
		collectLines(el, &lines)
		if len(lines) > 0 {
			text = lines[0].Text(m.src)
		}
	}

	return lexerrs.NewStructural(
		m.src,
		parent,
		desc,
		text,
		m.idx.RangeOf(span),
	)
}
