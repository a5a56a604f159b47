// Package completion implements the fuzzy autocomplete engine: parse a
// partial query, resolve what the cursor sits inside, and rank candidates
// for it by fuzzy match against the typed fragment, computing a ghost-text
// suffix for the top result. The ranking itself is a self-contained
// subsequence scorer (see fuzzy.go) rather than a wrapped fuzzy-matching
// library.
package completion

import (
	"context"
	"sort"

	"github.com/eladbash/jdx/pkg/evaluator"
	"github.com/eladbash/jdx/pkg/parser"
	"github.com/eladbash/jdx/pkg/transforms"
	"github.com/eladbash/jdx/pkg/types"
	"github.com/eladbash/jdx/pkg/value"
)

// CandidateKind distinguishes what a Candidate completes.
type CandidateKind uint8

const (
	KindKey CandidateKind = iota
	KindTransform
	KindLiteral
)

// String names a CandidateKind for debug rendering.
func (k CandidateKind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindTransform:
		return "transform"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Candidate is one ranked completion suggestion.
type Candidate struct {
	Text         string
	Kind         CandidateKind
	Score        int
	MatchIndices []int
}

const defaultMaxCandidates = 20

// Engine runs completion against a query string and a document root. It
// holds its own Evaluator so repeated Complete calls across keystrokes
// don't re-allocate one each time.
type Engine struct {
	eval          *evaluator.Evaluator
	maxCandidates int
}

// Option configures an Engine, the same functional-options shape
// pkg/evaluator.Option uses.
type Option func(*Engine)

// WithMaxCandidates caps the ranked list Complete returns. n <= 0 is ignored, leaving the default of 20.
func WithMaxCandidates(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxCandidates = n
		}
	}
}

// New builds a completion Engine.
func New(opts ...Option) *Engine {
	e := &Engine{eval: evaluator.New(), maxCandidates: defaultMaxCandidates}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Complete parses query[:cursor] allowing a trailing-incomplete suffix,
// resolves the completion context the parser derived, fuzzy-ranks the
// candidate pool against the typed fragment, and separately reports the
// top match's ghost-text suffix. Complete never errors: any input and any
// cursor position yields a (possibly empty) candidate list.
func (e *Engine) Complete(query string, cursor int, root *value.Value) ([]Candidate, string) {
	if cursor < 0 || cursor > len(query) {
		cursor = len(query)
	}
	q, _ := parser.ParseQuery(query[:cursor])

	names := e.candidateNames(q, root)
	if len(names) == 0 {
		return nil, ""
	}

	fragment := q.Cursor.Fragment
	kind := candidateKind(q.Cursor.Kind)

	var out []Candidate
	if fragment == "" {
		for _, n := range names {
			out = append(out, Candidate{Text: n, Kind: kind})
		}
	} else {
		for _, n := range names {
			score, idx, ok := fuzzyMatch(n, fragment)
			if !ok {
				continue
			}
			out = append(out, Candidate{Text: n, Kind: kind, Score: score, MatchIndices: idx})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Text < out[j].Text
	})
	if len(out) > e.maxCandidates {
		out = out[:e.maxCandidates]
	}

	return out, ghostSuffix(out, names, fragment)
}

func candidateKind(ck types.CursorContextKind) CandidateKind {
	switch ck {
	case types.CtxTransformName:
		return KindTransform
	case types.CtxPredicateRHS:
		return KindLiteral
	default:
		return KindKey
	}
}

// candidateNames resolves the raw candidate pool for q's cursor context:
// object keys, or the union of keys across an array
// of objects, for key context; the registered transform names for
// transform-name context; nothing for predicate-RHS context, an
// open-ended literal position left without a candidate source.
func (e *Engine) candidateNames(q *types.Query, root *value.Value) []string {
	switch q.Cursor.Kind {
	case types.CtxTransformName:
		names := transforms.Names()
		sort.Strings(names)
		return names
	case types.CtxKey:
		return e.keysAt(q, root)
	default:
		return nil
	}
}

func (e *Engine) keysAt(q *types.Query, root *value.Value) []string {
	prefixQuery := &types.Query{Segments: q.Cursor.PathPrefix}
	cur, evalErr := e.eval.Evaluate(context.Background(), prefixQuery, root)
	if evalErr != nil {
		return nil
	}

	switch cur.Kind() {
	case value.KindObject:
		obj, _ := cur.Object()
		return append([]string{}, obj.Keys()...)
	case value.KindArray:
		arr, _ := cur.Array()
		seen := map[string]bool{}
		var keys []string
		for _, elem := range arr {
			obj, ok := elem.Object()
			if !ok {
				continue
			}
			for _, k := range obj.Keys() {
				if !seen[k] {
					seen[k] = true
					keys = append(keys, k)
				}
			}
		}
		return keys
	default:
		return nil
	}
}

// ghostSuffix implements the ghost-text contract: an exact
// single prefix match wins outright; several prefix matches fall back to
// their longest common prefix; otherwise the top fuzzy match is used if it
// happens to extend the fragment. Empty if nothing extends it.
func ghostSuffix(ranked []Candidate, names []string, fragment string) string {
	if fragment == "" || len(ranked) == 0 {
		return ""
	}

	var prefixMatches []string
	for _, n := range names {
		if len(n) >= len(fragment) && n[:len(fragment)] == fragment {
			prefixMatches = append(prefixMatches, n)
		}
	}
	switch {
	case len(prefixMatches) == 1:
		return prefixMatches[0][len(fragment):]
	case len(prefixMatches) > 1:
		lcp := longestCommonPrefix(prefixMatches)
		if len(lcp) > len(fragment) {
			return lcp[len(fragment):]
		}
		return ""
	}

	best := ranked[0].Text
	if len(best) >= len(fragment) && best[:len(fragment)] == fragment {
		return best[len(fragment):]
	}
	return ""
}
