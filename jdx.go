// Package jdx implements the query engine behind an interactive terminal
// explorer for structured documents: parse a dot-path-plus-transforms
// query, evaluate it against a decoded document, infer a structural
// schema, and rank fuzzy autocomplete candidates for a partial query.
//
// # Quick Start
//
//	root, err := codec.Decode(codec.JSON, data)
//	q, parseErr := jdx.ParseQuery(".users[age > 30].name")
//	result, evalErr := jdx.Evaluate(context.Background(), q, root)
//
//	schema := jdx.InferSchema(root, 50)
//	fmt.Println(jdx.RenderSchema(schema))
//
//	candidates, ghost := jdx.Complete(".us", 3, root)
//
// # Packages
//
//   - Parser: github.com/eladbash/jdx/pkg/parser
//   - Evaluator: github.com/eladbash/jdx/pkg/evaluator
//   - Transforms: github.com/eladbash/jdx/pkg/transforms
//   - Schema: github.com/eladbash/jdx/pkg/schema
//   - Completion: github.com/eladbash/jdx/pkg/completion
//   - Codec: github.com/eladbash/jdx/pkg/codec
//   - Types: github.com/eladbash/jdx/pkg/types
package jdx

import (
	"context"

	"github.com/eladbash/jdx/pkg/completion"
	"github.com/eladbash/jdx/pkg/evaluator"
	"github.com/eladbash/jdx/pkg/parser"
	"github.com/eladbash/jdx/pkg/schema"
	"github.com/eladbash/jdx/pkg/types"
	"github.com/eladbash/jdx/pkg/value"
)

// Version returns the current version of jdx.
func Version() string {
	return "v0.1.0-dev"
}

// ParseQuery parses a query string into a Query AST.
// Parsing is total: a malformed suffix yields the longest valid prefix AST
// plus a non-nil ParseError carrying the byte offset, rather than
// returning a nil AST.
func ParseQuery(s string) (*types.Query, *types.ParseError) {
	return parser.ParseQuery(s)
}

// Evaluate runs q against root using a default Evaluator.
// For repeated evaluations, construct an evaluator.Evaluator directly with
// evaluator.New and reuse it instead.
func Evaluate(ctx context.Context, q *types.Query, root *value.Value) (*value.Value, *types.EvalError) {
	return evaluator.New().Evaluate(ctx, q, root)
}

// InferSchema derives a structural type sketch of v,
// sampling up to maxSamples elements of any array encountered.
func InferSchema(v *value.Value, maxSamples int) *schema.Schema {
	return schema.Infer(v, maxSamples)
}

// RenderSchema formats a Schema as the indented `key: type  # annotation`
// sketch.
func RenderSchema(s *schema.Schema) string {
	return schema.Render(s)
}

// Complete ranks fuzzy autocomplete candidates for query at cursor against
// root, returning the ranked candidates plus the top
// match's ghost-text suffix. For repeated calls across keystrokes,
// construct a completion.Engine directly with completion.New and reuse it
// instead of paying New's setup cost every call.
func Complete(query string, cursor int, root *value.Value, opts ...completion.Option) ([]completion.Candidate, string) {
	return completion.New(opts...).Complete(query, cursor, root)
}
