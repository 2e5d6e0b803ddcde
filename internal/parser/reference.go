package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lexfmt/lexfmt/internal/ast"
)

var (
	numericRe = regexp.MustCompile(`^[0-9]+$`)
	schemeRe  = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)
)

// ClassifyReference derives the reference kind from the raw content
// between the brackets. Classification never fails: content matching no
// specific kind falls back to General, and empty content to NotSure.
func ClassifyReference(raw string) ast.ReferenceKind {
	trimmed := strings.TrimSpace(raw)

	switch {
	case trimmed == "":
		return &ast.NotSure{}

	case trimmed == "TK":
		return &ast.ToCome{}

	case strings.HasPrefix(trimmed, "TK-"):
		return &ast.ToCome{Identifier: trimmed[len("TK-"):]}

	case strings.HasPrefix(trimmed, "@"):
		return classifyCitation(trimmed)

	case strings.HasPrefix(trimmed, "^"):
		return &ast.FootnoteLabeled{Label: trimmed[1:]}

	case numericRe.MatchString(trimmed):
		n, err := strconv.ParseUint(trimmed, 10, 32)
		if err != nil {
			return &ast.NotSure{}
		}

		return &ast.FootnoteNumber{Number: uint32(n)}

	case strings.HasPrefix(trimmed, "#"):
		return &ast.SessionRef{Target: trimmed[1:]}

	case schemeRe.MatchString(trimmed) ||
		strings.HasPrefix(trimmed, "mailto:"):
		return &ast.URLRef{Target: trimmed}

	case pathLike(trimmed):
		return &ast.FileRef{Target: trimmed}

	default:
		return &ast.GeneralRef{Target: trimmed}
	}
}

// pathLike recognizes filesystem-looking targets: explicit relative or
// absolute prefixes, or a slash-separated word without spaces.
func pathLike(s string) bool {
	for _, prefix := range []string{"./", "../", "/", "~/"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}

	return strings.Contains(s, "/") && !strings.ContainsAny(s, " \t")
}

// classifyCitation parses "@key" content: one or more keys separated by
// ';' or ',', with an optional trailing "p."/"pp." locator carrying page
// ranges.
func classifyCitation(raw string) ast.ReferenceKind {
	citation := &ast.Citation{}

	var locatorItems []string
	inLocator := false
	for _, item := range splitCitationItems(raw) {
		switch {
		case inLocator:
			locatorItems = append(locatorItems, item)
		case strings.HasPrefix(item, "@"):
			citation.Keys = append(citation.Keys, item[1:])
		case strings.HasPrefix(item, "pp.") || strings.HasPrefix(item, "p."):
			inLocator = true
			locatorItems = append(locatorItems, item)
		}
	}

	if len(citation.Keys) == 0 {
		return &ast.NotSure{}
	}
	if len(locatorItems) > 0 {
		citation.Locator = parseLocator(locatorItems)
	}

	return citation
}

func splitCitationItems(raw string) []string {
	items := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ';' || r == ','
	})
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}

	return items
}

// parseLocator turns the locator items ("pp.45-46", "50", ...) into a
// structured citation locator.
func parseLocator(items []string) *ast.CitationLocator {
	first := items[0]
	format := "p."
	if strings.HasPrefix(first, "pp.") {
		format = "pp."
	}

	loc := &ast.CitationLocator{
		Format: format,
		Raw:    strings.Join(items, ","),
	}

	pages := []string{strings.TrimPrefix(first, format)}
	pages = append(pages, items[1:]...)
	for _, page := range pages {
		if r, ok := parsePageRange(page); ok {
			loc.Ranges = append(loc.Ranges, r)
		}
	}

	return loc
}

func parsePageRange(s string) (ast.PageRange, bool) {
	s = strings.TrimSpace(s)
	start, rest, found := strings.Cut(s, "-")

	from, err := strconv.ParseUint(strings.TrimSpace(start), 10, 32)
	if err != nil {
		return ast.PageRange{}, false
	}
	r := ast.PageRange{Start: uint32(from)}

	if found {
		to, err := strconv.ParseUint(strings.TrimSpace(rest), 10, 32)
		if err != nil {
			return ast.PageRange{}, false
		}
		end := uint32(to)
		r.End = &end
	}

	return r, true
}
