// Package predicate implements the one predicate-matching rule shared by
// bracket predicates (`.arr[price < 10]`) and the `:filter` transform.
package predicate

import (
	"github.com/eladbash/jdx/pkg/types"
	"github.com/eladbash/jdx/pkg/value"
)

// literalToValue converts a predicate's parsed Literal into the Value it is
// compared against.
func literalToValue(lit types.Literal) *value.Value {
	switch lit.Kind {
	case types.LitNumber:
		return value.NewNumber(lit.Num)
	case types.LitString:
		return value.NewString(lit.Str)
	case types.LitBool:
		return value.NewBool(lit.Bool)
	default:
		return value.Null
	}
}

// EvalOp implements the predicate comparison table: `==`/`!=` are always
// defined (Null equals only Null); ordered comparisons between
// incomparable kinds are false, never an error, so predicates stay total.
func EvalOp(left *value.Value, op types.Op, lit types.Literal) bool {
	right := literalToValue(lit)
	switch op {
	case types.OpEq:
		return left.LooseEqual(right)
	case types.OpNe:
		return !left.LooseEqual(right)
	default:
		cmp, ok := left.Compare(right)
		if !ok {
			return false
		}
		switch op {
		case types.OpLt:
			return cmp < 0
		case types.OpGt:
			return cmp > 0
		case types.OpLe:
			return cmp <= 0
		case types.OpGe:
			return cmp >= 0
		default:
			return false
		}
	}
}

// Match implements "element.f op lit" / "element op lit": a missing
// field on an Object element compares as
// Null (so `[deleted == null]` matches both explicit nulls and absent
// fields); a non-Object element is compared directly against the literal,
// ignoring the field name.
func Match(elem *value.Value, field string, op types.Op, lit types.Literal) bool {
	var left *value.Value
	if obj, ok := elem.Object(); ok {
		if v, ok := obj.Get(field); ok {
			left = v
		} else {
			left = value.Null
		}
	} else {
		left = elem
	}
	return EvalOp(left, op, lit)
}
