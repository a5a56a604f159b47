package types

// SegmentKind discriminates the PathSegment variants.
type SegmentKind uint8

const (
	SegField SegmentKind = iota
	SegIndex
	SegSlice
	SegWildcard
	SegPredicate
	SegRecurse
)

// String names a SegmentKind for error messages and debug rendering.
func (k SegmentKind) String() string {
	switch k {
	case SegField:
		return "field"
	case SegIndex:
		return "index"
	case SegSlice:
		return "slice"
	case SegWildcard:
		return "wildcard"
	case SegPredicate:
		return "predicate"
	case SegRecurse:
		return "recurse"
	default:
		return "unknown"
	}
}

// LiteralKind discriminates the Literal variants used by predicates.
type LiteralKind uint8

const (
	LitNumber LiteralKind = iota
	LitString
	LitBool
	LitNull
)

// Literal is a predicate's right-hand-side constant: Number | String | Bool | Null.
type Literal struct {
	Kind LiteralKind
	Num  float64
	Str  string
	Bool bool
}

// NewNumberLiteral builds a Number literal.
func NewNumberLiteral(n float64) Literal { return Literal{Kind: LitNumber, Num: n} }

// NewStringLiteral builds a String literal.
func NewStringLiteral(s string) Literal { return Literal{Kind: LitString, Str: s} }

// NewBoolLiteral builds a Bool literal.
func NewBoolLiteral(b bool) Literal { return Literal{Kind: LitBool, Bool: b} }

// NullLiteral is the shared Null literal value.
var NullLiteral = Literal{Kind: LitNull}

// Op is a predicate comparison operator.
type Op string

const (
	OpEq Op = "=="
	OpNe Op = "!="
	OpLt Op = "<"
	OpGt Op = ">"
	OpLe Op = "<="
	OpGe Op = ">="
)

// PathSegment is one step of a parsed path. A single struct with
// a Kind discriminator is used rather than one type per variant, the same
// shape the query/evaluator model relies on elsewhere in this package.
type PathSegment struct {
	Kind SegmentKind

	// Field holds the member name for SegField, the predicate's
	// left-hand field name for SegPredicate, and the key collected by
	// SegRecurse (empty: every node below the current one).
	Field string

	// Index holds the signed element index for SegIndex. Negative counts
	// from the end; normalized during evaluation, not during parsing.
	Index int

	// SliceLo/SliceHi bound a SegSlice; nil means an open bound (0 / len).
	SliceLo *int
	SliceHi *int

	// Op/Literal hold the comparison for SegPredicate.
	Op      Op
	Literal Literal
}

// TransformStep is one colon-command in a transform chain: a
// name plus either a flat argument list (identifiers/numbers as raw tokens,
// used by :pick, :omit, :sort, :group_by, :sum/:avg/:min/:max) or, for
// :filter, a single predicate built from the same sub-parser bracket
// predicates use.
type TransformStep struct {
	Name      string
	Args      []string
	Predicate *PathSegment // non-nil only when Name == "filter"
}

// CursorContextKind names the kind of completion context a partial parse
// leaves the cursor in.
type CursorContextKind uint8

const (
	CtxNone CursorContextKind = iota
	CtxKey
	CtxTransformName
	CtxPredicateRHS
)

// CursorContext is the well-defined completion context the parser derives
// from a trailing-incomplete parse, so completion never has to re-derive it
// from raw tokens.
type CursorContext struct {
	Kind CursorContextKind

	// Fragment is the partial text already typed at the cursor (e.g. "us"
	// in ".us", or "pi" in ":pi").
	Fragment string

	// PathPrefix is evaluated against the root to find the Value whose
	// keys/fields populate key-context candidates; it excludes the
	// incomplete trailing segment itself.
	PathPrefix []PathSegment
}

// Query is the parsed form of a query string: an ordered path
// plus an ordered transform chain. Either may be empty; an empty Query
// denotes identity (return root unchanged).
type Query struct {
	Segments   []PathSegment
	Transforms []TransformStep

	// TrailingIncomplete is true when the input ends mid-segment,
	// mid-bracket, or mid-transform-name: the Segments/Transforms built so
	// far are the longest valid prefix, and Cursor describes what kind of
	// token was being typed.
	TrailingIncomplete bool
	Cursor             CursorContext

	// Source is the original query string, kept for completion and for
	// rendering error positions against.
	Source string
}
