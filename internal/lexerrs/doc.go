// Package lexerrs defines the error types shared across the parsing pipeline.
//
// The pipeline has exactly two fatal error families: indentation errors from
// the semantic indentation mapper and grammar errors from the block matcher.
// Both carry a source range and a rendered context snippet so the CLI and
// language-server layers can point at the offending lines without re-reading
// the source. Container policy violations are programmer errors surfaced by
// the typed child containers; they never occur for matcher-produced trees.
package lexerrs
