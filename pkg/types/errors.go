// Package types defines the query AST (PathSegment, TransformStep, Query)
// and the two error taxonomies (ParseError, EvalError) shared across the
// parser, evaluator, and completion packages.
package types

import "fmt"

// ParseErrorCode enumerates the parser's error kinds.
type ParseErrorCode string

const (
	ErrUnexpectedChar      ParseErrorCode = "P0001"
	ErrUnterminatedString  ParseErrorCode = "P0002"
	ErrUnterminatedBracket ParseErrorCode = "P0003"
	ErrBadNumber           ParseErrorCode = "P0004"
	ErrBadEscape           ParseErrorCode = "P0005"
)

// ParseError carries the byte offset and a human message for a syntax
// error. Parsing a malformed query never panics: it returns the longest
// valid prefix AST plus one ParseError.
type ParseError struct {
	Code    ParseErrorCode
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %d: %s", e.Code, e.Offset, e.Message)
}

// NewParseError builds a ParseError at the given byte offset.
func NewParseError(code ParseErrorCode, offset int, message string) *ParseError {
	return &ParseError{Code: code, Offset: offset, Message: message}
}

// EvalErrorCode enumerates the evaluator's error kinds.
type EvalErrorCode string

const (
	ErrTypeMismatch     EvalErrorCode = "E0001"
	ErrUnknownTransform EvalErrorCode = "E0002"
	ErrBadTransformArgs EvalErrorCode = "E0003"
	ErrIncomparable     EvalErrorCode = "E0004"
	ErrDivideByZero     EvalErrorCode = "E0005" // documented only: :avg over empty returns Null, never surfaced
)

// EvalError is returned by Evaluate/transform application. Evaluation stops
// at the first error; partial results from earlier segments are discarded.
type EvalError struct {
	Code    EvalErrorCode
	Message string
	// Subject is the segment/transform name the error occurred at, when
	// applicable. Empty if not meaningful for this Code.
	Subject string
}

func (e *EvalError) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("%s (%s): %s", e.Code, e.Subject, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewEvalError builds an EvalError.
func NewEvalError(code EvalErrorCode, subject, message string) *EvalError {
	return &EvalError{Code: code, Subject: subject, Message: message}
}

// TypeMismatch builds the "segment applied to the wrong kind of Value"
// error.
func TypeMismatch(segment, actualKind string) *EvalError {
	return NewEvalError(ErrTypeMismatch, segment, fmt.Sprintf("cannot apply %s to a %s", segment, actualKind))
}

// UnknownTransform builds the "unrecognized :name" error, carrying the
// token text.
func UnknownTransform(name string) *EvalError {
	return NewEvalError(ErrUnknownTransform, name, fmt.Sprintf("unknown transform %q", name))
}

// BadTransformArgs builds the arity/argument-shape mismatch error.
func BadTransformArgs(name, reason string) *EvalError {
	return NewEvalError(ErrBadTransformArgs, name, reason)
}

// Incomparable builds the cross-type ordered-comparison error (only `<`,
// `>`, `<=`, `>=` can be incomparable; `==`/`!=` are always defined).
func Incomparable(leftKind, op, rightKind string) *EvalError {
	return NewEvalError(ErrIncomparable, op, fmt.Sprintf("cannot compare %s %s %s", leftKind, op, rightKind))
}

