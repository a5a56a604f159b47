package parser

import (
	"testing"

	"github.com/eladbash/jdx/pkg/types"
)

func TestParseSimpleFieldPath(t *testing.T) {
	q, err := ParseQuery(".users.name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Segments) != 2 || q.Segments[0].Field != "users" || q.Segments[1].Field != "name" {
		t.Fatalf("unexpected segments: %+v", q.Segments)
	}
}

func TestParseLeadingDotOptional(t *testing.T) {
	q, err := ParseQuery("users.name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %+v", q.Segments)
	}
}

func TestParseIndexAndSlice(t *testing.T) {
	q, err := ParseQuery(".users[0][1:3]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %+v", q.Segments)
	}
	if q.Segments[1].Kind != types.SegIndex || q.Segments[1].Index != 0 {
		t.Fatalf("expected Index(0), got %+v", q.Segments[1])
	}
	sl := q.Segments[2]
	if sl.Kind != types.SegSlice || sl.SliceLo == nil || *sl.SliceLo != 1 || sl.SliceHi == nil || *sl.SliceHi != 3 {
		t.Fatalf("expected Slice(1,3), got %+v", sl)
	}
}

func TestParseNegativeIndex(t *testing.T) {
	q, err := ParseQuery(".arr[-1]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Segments[1].Index != -1 {
		t.Fatalf("expected Index(-1), got %+v", q.Segments[1])
	}
}

func TestParseWildcard(t *testing.T) {
	q, err := ParseQuery(".users.*")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Segments[1].Kind != types.SegWildcard {
		t.Fatalf("expected wildcard segment, got %+v", q.Segments[1])
	}
}

func TestParsePredicate(t *testing.T) {
	q, err := ParseQuery(`.users[role == "admin"]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pred := q.Segments[1]
	if pred.Kind != types.SegPredicate || pred.Field != "role" || pred.Op != types.OpEq || pred.Literal.Str != "admin" {
		t.Fatalf("unexpected predicate: %+v", pred)
	}
}

func TestParseTransformsAndArgs(t *testing.T) {
	q, err := ParseQuery(".users :pick name,age :sort age")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Transforms) != 2 {
		t.Fatalf("expected 2 transforms, got %+v", q.Transforms)
	}
	if q.Transforms[0].Name != "pick" || len(q.Transforms[0].Args) != 2 {
		t.Fatalf("unexpected pick transform: %+v", q.Transforms[0])
	}
	if q.Transforms[1].Name != "sort" || q.Transforms[1].Args[0] != "age" {
		t.Fatalf("unexpected sort transform: %+v", q.Transforms[1])
	}
}

func TestParseFilterTransform(t *testing.T) {
	q, err := ParseQuery(".store.books :filter price < 10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	step := q.Transforms[0]
	if step.Name != "filter" || step.Predicate == nil || step.Predicate.Field != "price" || step.Predicate.Op != types.OpLt {
		t.Fatalf("unexpected filter step: %+v", step)
	}
}

func TestParseEmptyQueryIsIdentity(t *testing.T) {
	q, err := ParseQuery("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Segments) != 0 || len(q.Transforms) != 0 {
		t.Fatalf("expected empty AST, got %+v", q)
	}
}

func TestParseMalformedSuffixYieldsPrefixPlusError(t *testing.T) {
	q, err := ParseQuery(".users[0")
	if err == nil {
		t.Fatalf("expected a ParseError for an unterminated bracket")
	}
	if len(q.Segments) != 1 || q.Segments[0].Field != "users" {
		t.Fatalf("expected the longest valid prefix to still be returned, got %+v", q.Segments)
	}
}

func TestTrailingIncompleteBareDot(t *testing.T) {
	q, err := ParseQuery(".a.")
	if err != nil {
		t.Fatalf("trailing incomplete should not be a parse error: %v", err)
	}
	if !q.TrailingIncomplete || q.Cursor.Kind != types.CtxKey {
		t.Fatalf("expected trailing-incomplete key context, got %+v", q)
	}
}

func TestTrailingIncompleteOpenBracket(t *testing.T) {
	q, err := ParseQuery(".a[")
	if err != nil {
		t.Fatalf("trailing incomplete should not be a parse error: %v", err)
	}
	if !q.TrailingIncomplete || q.Cursor.Kind != types.CtxKey {
		t.Fatalf("expected trailing-incomplete key context, got %+v", q)
	}
}

func TestTrailingIncompleteTransformColon(t *testing.T) {
	q, err := ParseQuery(".a :")
	if err != nil {
		t.Fatalf("trailing incomplete should not be a parse error: %v", err)
	}
	if !q.TrailingIncomplete || q.Cursor.Kind != types.CtxTransformName {
		t.Fatalf("expected trailing-incomplete transform context, got %+v", q)
	}
}

func TestTrailingIncompletePartialTransformName(t *testing.T) {
	q, err := ParseQuery(".a :pi")
	if err != nil {
		t.Fatalf("trailing incomplete should not be a parse error: %v", err)
	}
	if !q.TrailingIncomplete || q.Cursor.Kind != types.CtxTransformName || q.Cursor.Fragment != "pi" {
		t.Fatalf("expected transform context fragment 'pi', got %+v", q.Cursor)
	}
}

func TestTrailingIncompletePartialIdentifier(t *testing.T) {
	q, err := ParseQuery(".us")
	if err != nil {
		t.Fatalf("trailing incomplete should not be a parse error: %v", err)
	}
	if !q.TrailingIncomplete || q.Cursor.Kind != types.CtxKey || q.Cursor.Fragment != "us" {
		t.Fatalf("expected key context fragment 'us', got %+v", q.Cursor)
	}
	if len(q.Cursor.PathPrefix) != 0 {
		t.Fatalf("expected empty path prefix at root, got %+v", q.Cursor.PathPrefix)
	}
}

func TestParseRecurse(t *testing.T) {
	q, err := ParseQuery("..name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Segments[0].Kind != types.SegRecurse || q.Segments[0].Field != "name" {
		t.Fatalf("unexpected recurse segment: %+v", q.Segments[0])
	}
}
