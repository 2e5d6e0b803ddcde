package parser

import (
	"strings"

	"github.com/lexfmt/lexfmt/internal/ast"
	"github.com/lexfmt/lexfmt/internal/lex"
	"github.com/lexfmt/lexfmt/internal/source"
)

// BuildDocument walks the intermediate parse tree and produces the typed
// AST: byte ranges recovered into line/column positions, incidental tokens
// filtered out of titles and subjects, text content inline-parsed, and
// verbatim bytes restored with their indentation wall stripped.
func BuildDocument(ir *ParseNode, src string) *ast.Document {
	b := &builder{src: src, idx: source.NewLineIndex(src)}

	items := b.buildItems(ir.Children)

	loc := rangeOfItems(items)
	root := ast.NewSession(ast.TextContent{Loc: loc}, loc)
	for _, item := range items {
		root.Body.Push(item)
	}

	return &ast.Document{Root: root}
}

type builder struct {
	src string
	idx *source.LineIndex
}

func (b *builder) buildItems(nodes []*ParseNode) []ast.ContentItem {
	var items []ast.ContentItem
	for _, node := range nodes {
		if item := b.buildItem(node); item != nil {
			items = append(items, item)
		}
	}

	return items
}

func (b *builder) buildItem(node *ParseNode) ast.ContentItem {
	switch node.Type {
	case IRParagraph:
		return b.buildParagraph(node)
	case IRSession:
		return b.buildSession(node)
	case IRList:
		return b.buildList(node)
	case IRDefinition:
		return b.buildDefinition(node)
	case IRAnnotation:
		return b.buildAnnotation(node)
	case IRVerbatimBlock:
		return b.buildVerbatim(node)
	case IRBlankLineGroup:
		return b.buildBlankGroup(node)
	default:
		return nil
	}
}

// textContent extracts the source slice spanning the tokens and runs the
// inline parser over it.
func (b *builder) textContent(tokens []lex.Token) ast.TextContent {
	span := tokenSpan(tokens)
	if span.Len() == 0 {
		return ast.TextContent{}
	}
	text := strings.Clone(b.src[span.Start:span.End])

	return ast.TextContent{
		Text:    text,
		Loc:     b.idx.RangeOf(span),
		Inlines: ParseInlines(text),
	}
}

func (b *builder) buildParagraph(node *ParseNode) ast.ContentItem {
	para := &ast.Paragraph{}
	for _, lineTokens := range splitLines(node.Tokens) {
		content := contentTokens(lineTokens)
		if len(content) == 0 {
			continue
		}
		tc := b.textContent(content)
		para.Lines = append(para.Lines, ast.TextLine{Content: tc})
		para.Loc = para.Loc.Union(tc.Loc)
	}

	return para
}

func (b *builder) buildSession(node *ParseNode) ast.ContentItem {
	// A session title keeps its trailing colon; only whitespace and
	// blank tokens are incidental.
	title := b.textContent(contentTokens(node.Tokens))

	session := ast.NewSession(title, title.Loc)
	for _, item := range b.buildItems(node.Children) {
		session.Body.Push(item)
		session.Loc = session.Loc.Union(item.Range())
	}

	return session
}

func (b *builder) buildList(node *ParseNode) ast.ContentItem {
	list := &ast.List{}
	for _, itemNode := range node.Children {
		item := b.buildListItem(itemNode)
		list.Items = append(list.Items, item)
		list.Loc = list.Loc.Union(item.Loc)
	}

	return list
}

func (b *builder) buildListItem(node *ParseNode) *ast.ListItem {
	content := contentTokens(node.Tokens)
	markerToks, bodyToks := splitListMarker(content)

	item := &ast.ListItem{
		Marker: tokensText(b.src, markerToks),
		Body:   b.textContent(bodyToks),
		Nested: &ast.GeneralContainer{},
	}
	item.Loc = b.idx.RangeOf(tokenSpan(content))
	for _, child := range b.buildItems(node.Children) {
		item.Nested.Push(child)
		item.Loc = item.Loc.Union(child.Range())
	}

	return item
}

func (b *builder) buildDefinition(node *ParseNode) ast.ContentItem {
	// The subject sheds its trailing colon along with whitespace.
	subject := b.textContent(trimTrailingColon(contentTokens(node.Tokens)))

	def := &ast.Definition{
		Subject: subject,
		Body:    &ast.GeneralContainer{},
		Loc:     b.idx.RangeOf(tokenSpan(contentTokens(node.Tokens))),
	}
	for _, item := range b.buildItems(node.Children) {
		def.Body.Push(item)
		def.Loc = def.Loc.Union(item.Range())
	}

	return def
}

func (b *builder) buildAnnotation(node *ParseNode) ast.ContentItem {
	header, trailer := splitFirstLine(node.Tokens)
	data := b.extractData(contentTokens(header))

	ann := &ast.Annotation{
		Data: data,
		Body: &ast.GeneralContainer{},
		Loc:  data.Loc,
	}
	for _, item := range b.buildItems(node.Children) {
		ann.Body.Push(item)
		ann.Loc = ann.Loc.Union(item.Range())
	}
	if trail := contentTokens(trailer); len(trail) > 0 {
		ann.Loc = ann.Loc.Union(b.idx.RangeOf(tokenSpan(trail)))
	}

	return ann
}

func (b *builder) buildVerbatim(node *ParseNode) ast.ContentItem {
	p := node.Payload

	subjectToks := trimTrailingColon(contentTokens(p.Subject.Tokens))
	subject := b.textContent(subjectToks)

	content := b.verbatimLines(p.ContentLines)
	closing := b.extractData(contentTokens(p.ClosingTokens))

	loc := b.idx.RangeOf(tokenSpan(contentTokens(p.Subject.Tokens)))
	for _, line := range content {
		loc = loc.Union(line.Loc)
	}
	loc = loc.Union(closing.Loc)

	return &ast.Verbatim{
		Subject:     subject,
		Content:     content,
		ClosingData: closing,
		Loc:         loc,
	}
}

// verbatimLines restores each raw content line and strips the common
// leading-whitespace wall. Interior whitespace is preserved exactly.
func (b *builder) verbatimLines(lines []*lex.LineToken) []ast.VerbatimLine {
	raw := make([]string, len(lines))
	spans := make([]source.ByteRange, len(lines))
	for i, line := range lines {
		span := line.Span()
		text := strings.TrimSuffix(b.src[span.Start:span.End], "\n")
		raw[i] = text
		spans[i] = source.ByteRange{Start: span.Start, End: span.Start + len(text)}
	}

	wall := commonWall(raw)

	out := make([]ast.VerbatimLine, len(lines))
	for i, text := range raw {
		strip := wall
		if strip > len(text) {
			strip = len(text)
		}
		out[i] = ast.VerbatimLine{
			Text: text[strip:],
			Loc: b.idx.RangeOf(source.ByteRange{
				Start: spans[i].Start + strip,
				End:   spans[i].End,
			}),
		}
	}

	return out
}

// commonWall returns the length of the longest whitespace prefix shared by
// every line that holds non-whitespace content.
func commonWall(lines []string) int {
	wall := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := 0
		for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
			n++
		}
		if wall < 0 || n < wall {
			wall = n
		}
	}
	if wall < 0 {
		return 0
	}

	return wall
}

func (b *builder) buildBlankGroup(node *ParseNode) ast.ContentItem {
	return &ast.BlankLineGroup{
		Count: len(node.Tokens),
		Loc:   b.idx.RangeOf(tokenSpan(node.Tokens)),
	}
}
