// Package parser tokenizes and parses a query string into a Query AST.
// The implementation is hand-written recursive descent over a small
// path-plus-transforms grammar: no arithmetic, no user-defined functions,
// no lambdas.
//
// Parsing is total: ParseQuery never panics, and a malformed suffix is
// reported as the longest valid prefix plus a *types.ParseError carrying a
// byte offset, rather than aborting the whole query.
package parser

import "github.com/eladbash/jdx/pkg/types"

// Parse is a convenience alias for ParseQuery.
func Parse(query string) (*types.Query, *types.ParseError) {
	return ParseQuery(query)
}
