package parser

import "regexp"

// The block grammar is data: an ordered list of named patterns over the
// line-type alphabet, each paired with a build strategy. Matching is
// first-match-wins, so declaration order is the disambiguation policy:
//
//  1. verbatim-block — tried first so its closing '::' line is not
//     absorbed by the annotation rules.
//  2. annotation-block-with-end, annotation-block, annotation-single —
//     the single-line form last so it cannot steal a block's opening.
//  3. list-no-blank, list — lists may start at a container boundary
//     (the synthetic blank satisfies the list form's leading blank; the
//     root container starts with one too, so a list at the top of the
//     document needs no real blank).
//  4. definition — subject with an immediate indented body.
//  5. session-no-blank — subject, blank separation, then the body; the
//     blank is what distinguishes a titled session from a definition.
//  6. paragraph, blank-line-group — the catch-alls.
//
// Each pattern is a regex over the concatenated line-type symbols of a
// container's children, anchored at the current element.
type pattern struct {
	name  string
	re    *regexp.Regexp
	build buildFunc
}

// buildFunc turns one pattern match into parse nodes. A match may produce
// several nodes (verbatim groups) or none (an all-synthetic blank group).
type buildFunc func(m *matcher, seg segment) ([]*ParseNode, error)

var grammar []pattern

func init() {
	grammar = []pattern{
		{
			name: "verbatim-block",
			re: regexp.MustCompile(
				`^(?P<groups><subject-line>(?:<container>)?(?:(?:<blank-line>)*<subject-line>(?:<container>)?)*)` +
					`(?P<closing><annotation-start-line>|<annotation-end-line>)`,
			),
			build: (*matcher).buildVerbatim,
		},
		{
			name: "annotation-block-with-end",
			re: regexp.MustCompile(
				`^(?P<start><annotation-start-line>)(?P<content><container>)(?P<end><annotation-end-line>)`,
			),
			build: (*matcher).buildAnnotation,
		},
		{
			name: "annotation-block",
			re: regexp.MustCompile(
				`^(?P<start><annotation-start-line>)(?P<content><container>)`,
			),
			build: (*matcher).buildAnnotation,
		},
		{
			name: "annotation-single",
			re: regexp.MustCompile(
				`^(?P<start><annotation-start-line>)`,
			),
			build: (*matcher).buildAnnotation,
		},
		{
			name: "list-no-blank",
			re: regexp.MustCompile(
				`^(?P<items>(?:(?:<list-line>|<subject-or-list-item-line>)(?:<container>)?){2,})(?:<blank-line>)?`,
			),
			build: (*matcher).buildList,
		},
		{
			name: "list",
			re: regexp.MustCompile(
				`^(?:<blank-line>)+(?P<items>(?:(?:<list-line>|<subject-or-list-item-line>)(?:<container>)?){2,})(?:<blank-line>)?`,
			),
			build: (*matcher).buildList,
		},
		{
			name: "definition",
			re: regexp.MustCompile(
				`^(?P<subject><subject-line>|<subject-or-list-item-line>|<paragraph-line>)(?P<content><container>)`,
			),
			build: (*matcher).buildDefinition,
		},
		{
			name: "session-no-blank",
			re: regexp.MustCompile(
				`^(?P<subject><paragraph-line>|<subject-line>|<list-line>|<subject-or-list-item-line>)` +
					`(?:<blank-line>)+(?P<content><container>)`,
			),
			build: (*matcher).buildSession,
		},
		{
			name: "paragraph",
			re: regexp.MustCompile(
				`^(?P<lines>(?:<paragraph-line>|<subject-line>|<list-line>|<subject-or-list-item-line>|<dialog-line>)+)`,
			),
			build: (*matcher).buildParagraph,
		},
		{
			name: "blank-line-group",
			re: regexp.MustCompile(
				`^(?:<blank-line>)+`,
			),
			build: (*matcher).buildBlankGroup,
		},
	}
}

// listItemRe enumerates the individual items inside a matched list region.
var listItemRe = regexp.MustCompile(
	`(?:<list-line>|<subject-or-list-item-line>)(?:<container>)?`,
)

// verbatimGroupRe enumerates subject(+content) groups inside a matched
// verbatim region.
var verbatimGroupRe = regexp.MustCompile(
	`(?P<subject><subject-line>)(?P<content>(?:<container>)?)`,
)
