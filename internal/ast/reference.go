package ast

// ReferenceKind classifies a bracketed reference by its content.
type ReferenceKind interface {
	// RefType returns the variant name ("Citation", "Url", ...).
	RefType() string
}

// ToCome is a placeholder reference: [TK] or [TK-identifier].
type ToCome struct {
	// Identifier is the part after "TK-", empty for a bare [TK].
	Identifier string
}

// RefType identifies the variant.
func (r *ToCome) RefType() string { return "ToCome" }

// Citation is an [@key] reference with parsed keys and optional locator.
type Citation struct {
	Keys    []string
	Locator *CitationLocator
}

// RefType identifies the variant.
func (r *Citation) RefType() string { return "Citation" }

// CitationLocator is the page segment of a citation ("p.45" or
// "pp.45-46,50").
type CitationLocator struct {
	// Format is "p." or "pp." as authored.
	Format string
	// Ranges holds the parsed page ranges.
	Ranges []PageRange
	// Raw is the locator items, trimmed and rejoined with commas.
	Raw string
}

// PageRange is a single page or page span inside a citation locator.
type PageRange struct {
	Start uint32
	// End is nil for a single page.
	End *uint32
}

// FootnoteLabeled is a [^label] reference.
type FootnoteLabeled struct {
	Label string
}

// RefType identifies the variant.
func (r *FootnoteLabeled) RefType() string { return "FootnoteLabeled" }

// FootnoteNumber is a purely numeric [12] reference.
type FootnoteNumber struct {
	Number uint32
}

// RefType identifies the variant.
func (r *FootnoteNumber) RefType() string { return "FootnoteNumber" }

// SessionRef is a [#target] reference to a session.
type SessionRef struct {
	Target string
}

// RefType identifies the variant.
func (r *SessionRef) RefType() string { return "Session" }

// URLRef is a reference holding a URL with a recognized scheme.
type URLRef struct {
	Target string
}

// RefType identifies the variant.
func (r *URLRef) RefType() string { return "Url" }

// FileRef is a path-like reference such as [./notes.txt].
type FileRef struct {
	Target string
}

// RefType identifies the variant.
func (r *FileRef) RefType() string { return "File" }

// GeneralRef is a document-level reference that is none of the specific
// kinds, such as [Introduction].
type GeneralRef struct {
	Target string
}

// RefType identifies the variant.
func (r *GeneralRef) RefType() string { return "General" }

// NotSure marks a reference whose content could not be classified.
type NotSure struct{}

// RefType identifies the variant.
func (r *NotSure) RefType() string { return "NotSure" }
