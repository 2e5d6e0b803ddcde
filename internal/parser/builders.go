package parser

import "github.com/lexfmt/lexfmt/internal/lex"

// Build strategies, one per grammar row. Each receives the matched segment
// and emits the parse nodes for it, recursing into nested containers.

func (m *matcher) buildVerbatim(seg segment) ([]*ParseNode, error) {
	gFrom, gTo, _ := seg.group("groups")
	cFrom, _, _ := seg.group("closing")

	closing := seg.elems[cFrom].Line.Tokens

	region := seg.elems[gFrom:gTo]
	encoded, offsets := encodeElements(region)

	var nodes []*ParseNode
	for _, locs := range verbatimGroupRe.FindAllStringSubmatchIndex(encoded, -1) {
		subjIdx := elemIndexAt(offsets, locs[2])
		subject := region[subjIdx].Line

		var content []*lex.LineToken
		if locs[4] >= 0 && locs[4] < locs[5] {
			collectLines(region[elemIndexAt(offsets, locs[4])], &content)
		}

		nodes = append(nodes, &ParseNode{
			Type:   IRVerbatimBlock,
			Tokens: append(append([]lex.Token{}, subject.Tokens...), closing...),
			Payload: &VerbatimPayload{
				Subject:       subject,
				ContentLines:  content,
				ClosingTokens: closing,
			},
		})
	}

	return nodes, nil
}

func (m *matcher) buildAnnotation(seg segment) ([]*ParseNode, error) {
	sFrom, _, _ := seg.group("start")
	start := seg.elems[sFrom].Line

	tokens := append([]lex.Token{}, start.Tokens...)
	if eFrom, _, ok := seg.group("end"); ok {
		tokens = append(tokens, seg.elems[eFrom].Line.Tokens...)
	}

	var children []*ParseNode
	if cFrom, _, ok := seg.group("content"); ok {
		var err error
		children, err = m.matchChildren(
			seg.elems[cFrom].Children,
			"annotation",
		)
		if err != nil {
			return nil, err
		}
	}

	return []*ParseNode{{
		Type:     IRAnnotation,
		Tokens:   tokens,
		Children: children,
	}}, nil
}

func (m *matcher) buildList(seg segment) ([]*ParseNode, error) {
	iFrom, iTo, _ := seg.group("items")

	region := seg.elems[iFrom:iTo]
	encoded, offsets := encodeElements(region)

	list := &ParseNode{Type: IRList}
	for _, locs := range listItemRe.FindAllStringSubmatchIndex(encoded, -1) {
		from := elemIndexAt(offsets, locs[0])
		to := elemIndexAt(offsets, locs[1])

		item := &ParseNode{
			Type:   IRListItem,
			Tokens: region[from].Line.Tokens,
		}
		if to-from > 1 && region[to-1].IsContainer() {
			children, err := m.matchChildren(
				region[to-1].Children,
				"list-item",
			)
			if err != nil {
				return nil, err
			}
			item.Children = children
		}
		list.Children = append(list.Children, item)
	}

	return []*ParseNode{list}, nil
}

func (m *matcher) buildDefinition(seg segment) ([]*ParseNode, error) {
	sFrom, _, _ := seg.group("subject")
	cFrom, _, _ := seg.group("content")

	children, err := m.matchChildren(
		seg.elems[cFrom].Children,
		"definition",
	)
	if err != nil {
		return nil, err
	}

	return []*ParseNode{{
		Type:     IRDefinition,
		Tokens:   seg.elems[sFrom].Line.Tokens,
		Children: children,
	}}, nil
}

func (m *matcher) buildSession(seg segment) ([]*ParseNode, error) {
	sFrom, _, _ := seg.group("subject")
	cFrom, _, _ := seg.group("content")

	children, err := m.matchChildren(
		seg.elems[cFrom].Children,
		"session",
	)
	if err != nil {
		return nil, err
	}

	return []*ParseNode{{
		Type:     IRSession,
		Tokens:   seg.elems[sFrom].Line.Tokens,
		Children: children,
	}}, nil
}

func (m *matcher) buildParagraph(seg segment) ([]*ParseNode, error) {
	var tokens []lex.Token
	for _, el := range seg.elems[seg.start:seg.end] {
		tokens = append(tokens, el.Line.Tokens...)
	}

	return []*ParseNode{{
		Type:   IRParagraph,
		Tokens: tokens,
	}}, nil
}

// buildBlankGroup counts the real blank lines of the match. A group made
// of synthetic blanks alone produces nothing: the synthetic line exists
// for the benefit of other rules, not as content.
func (m *matcher) buildBlankGroup(seg segment) ([]*ParseNode, error) {
	var tokens []lex.Token
	for _, el := range seg.elems[seg.start:seg.end] {
		if el.Line.Type == lex.LineBlank {
			tokens = append(tokens, el.Line.Tokens...)
		}
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	return []*ParseNode{{
		Type:   IRBlankLineGroup,
		Tokens: tokens,
	}}, nil
}
