package parser

import (
	"fmt"
	"strconv"

	"github.com/eladbash/jdx/pkg/types"
)

// lexAll tokenizes the whole input up front. Queries are short (a few dozen
// tokens at most), so buffering the full token stream keeps the recursive
// descent parser's lookahead and "did we stop exactly at EOF" checks simple.
func lexAll(input string) ([]Token, *types.ParseError) {
	lx := NewLexer(input)
	var toks []Token
	for {
		t := lx.Next()
		if t.Type == TokenError {
			toks = append(toks, Token{Type: TokenEOF, Position: t.Position})
			return toks, lx.Error()
		}
		toks = append(toks, t)
		if t.Type == TokenEOF {
			break
		}
	}
	return toks, nil
}

// Parser builds a Query AST from a pre-tokenized query string. It is
// total: ParseQuery never panics, and a malformed suffix degrades to the
// longest valid prefix plus a ParseError.
type Parser struct {
	input string
	toks  []Token
	pos   int

	// incomplete* fields record a trailing-incomplete stop point detected
	// mid-parse (e.g. ".a.", ".a[", ".a :", ".a :pi") so ParseQuery can
	// build the CursorContext without re-deriving it from raw tokens.
	incomplete         bool
	incompleteKind     types.CursorContextKind
	incompleteFragment string
	incompletePrefix   []types.PathSegment
}

func (p *Parser) peek() Token {
	return p.toks[p.pos]
}

func (p *Parser) advance() Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) markIncomplete(kind types.CursorContextKind, fragment string, prefix []types.PathSegment) {
	if p.incomplete {
		return // first stop point wins
	}
	p.incomplete = true
	p.incompleteKind = kind
	p.incompleteFragment = fragment
	p.incompletePrefix = append([]types.PathSegment(nil), prefix...)
}

// ParseQuery parses a full query string into a Query AST.
func ParseQuery(s string) (*types.Query, *types.ParseError) {
	toks, lexErr := lexAll(s)
	p := &Parser{input: s, toks: toks}

	q := &types.Query{Source: s}

	segs, perr := p.parsePath()
	q.Segments = segs

	if perr == nil && lexErr == nil && !p.incomplete {
		transforms, terr := p.parseTransforms()
		q.Transforms = transforms
		perr = terr
	}

	if perr == nil {
		perr = lexErr
	}

	if p.incomplete {
		q.TrailingIncomplete = true
		q.Cursor = types.CursorContext{
			Kind:       p.incompleteKind,
			Fragment:   p.incompleteFragment,
			PathPrefix: p.incompletePrefix,
		}
	}

	return q, perr
}

// parsePath parses ('.' segment)*, with the leading dot optional at root.
func (p *Parser) parsePath() ([]types.PathSegment, *types.ParseError) {
	var segs []types.PathSegment
	first := true

	for {
		t := p.peek()
		switch {
		case t.Type == TokenDot:
			p.advance()
		case first && (t.Type == TokenName || t.Type == TokenStar || t.Type == TokenBracketOpen):
			// leading dot omitted at root
		case t.Type == TokenRange:
			p.advance()
			seg := types.PathSegment{Kind: types.SegRecurse}
			if nt := p.peek(); nt.Type == TokenName {
				p.advance()
				seg.Field = nt.Value
			}
			segs = append(segs, seg)
			first = false
			continue
		default:
			return segs, nil
		}
		first = false

		if p.peek().Type == TokenEOF {
			// trailing "." with nothing after: key context, candidates at
			// the current path (segs as built so far).
			p.markIncomplete(types.CtxKey, "", segs)
			return segs, nil
		}

		if perr := p.parseSegmentBody(&segs); perr != nil {
			return segs, perr
		}
		if p.incomplete {
			return segs, nil
		}
	}
}

// parseSegmentBody parses one `ident (index_or_pred)*` or
// `'[' index_or_pred_inner ']' (index_or_pred)*` segment group, appending
// every PathSegment it produces to *segs.
func (p *Parser) parseSegmentBody(segs *[]types.PathSegment) *types.ParseError {
	t := p.peek()
	switch t.Type {
	case TokenName:
		p.advance()
		if p.peek().Type == TokenEOF {
			// bare trailing identifier, possibly still being typed: it stays
			// a Field segment and is also reported as incomplete key
			// context, completed against the path before it.
			p.markIncomplete(types.CtxKey, t.Value, *segs)
		}
		*segs = append(*segs, types.PathSegment{Kind: types.SegField, Field: t.Value})
	case TokenStar:
		p.advance()
		*segs = append(*segs, types.PathSegment{Kind: types.SegWildcard})
	case TokenBracketOpen:
		// handled by the loop below (the alt-2 "no leading ident" form)
	default:
		return types.NewParseError(types.ErrUnexpectedChar, t.Position,
			fmt.Sprintf("expected identifier or '[' at %d, got %s", t.Position, t.Type))
	}

	for p.peek().Type == TokenBracketOpen {
		seg, perr := p.parseBracket()
		if perr != nil {
			return perr
		}
		if p.incomplete {
			if p.incompletePrefix == nil {
				// a stop inside '[' completes against the path built so far
				p.incompletePrefix = append([]types.PathSegment(nil), (*segs)...)
			}
			return nil
		}
		*segs = append(*segs, seg)
	}
	return nil
}

// parseBracket parses one `'[' ... ']'` group: an index, a slice, a
// wildcard, a quoted field key, or a predicate. The opening bracket has not
// yet been consumed.
func (p *Parser) parseBracket() (types.PathSegment, *types.ParseError) {
	open := p.advance() // '['

	if p.peek().Type == TokenEOF {
		p.markIncomplete(types.CtxKey, "", nil)
		return types.PathSegment{}, nil
	}

	t := p.peek()
	switch t.Type {
	case TokenStar:
		p.advance()
		return p.expectBracketClose(types.PathSegment{Kind: types.SegWildcard})
	case TokenString:
		p.advance()
		return p.expectBracketClose(types.PathSegment{Kind: types.SegField, Field: t.Value})
	case TokenColon:
		p.advance()
		hi, perr := p.parseSignedInt()
		if perr != nil {
			return types.PathSegment{}, perr
		}
		if p.incomplete {
			return types.PathSegment{}, nil
		}
		v := hi
		return p.expectBracketClose(types.PathSegment{Kind: types.SegSlice, SliceHi: &v})
	case TokenNumber:
		lo, perr := p.parseSignedInt()
		if perr != nil {
			return types.PathSegment{}, perr
		}
		if p.incomplete {
			return types.PathSegment{}, nil
		}
		if p.peek().Type == TokenColon {
			p.advance()
			if p.peek().Type == TokenBracketClose {
				loV := lo
				return p.expectBracketClose(types.PathSegment{Kind: types.SegSlice, SliceLo: &loV})
			}
			hi, perr := p.parseSignedInt()
			if perr != nil {
				return types.PathSegment{}, perr
			}
			if p.incomplete {
				return types.PathSegment{}, nil
			}
			loV, hiV := lo, hi
			return p.expectBracketClose(types.PathSegment{Kind: types.SegSlice, SliceLo: &loV, SliceHi: &hiV})
		}
		return p.expectBracketClose(types.PathSegment{Kind: types.SegIndex, Index: lo})
	case TokenName:
		seg, perr := p.parsePredicate()
		if perr != nil {
			return types.PathSegment{}, perr
		}
		if p.incomplete {
			return types.PathSegment{}, nil
		}
		return p.expectBracketClose(seg)
	default:
		return types.PathSegment{}, types.NewParseError(types.ErrUnexpectedChar, open.Position,
			fmt.Sprintf("unexpected %s inside '[' at %d", t.Type, t.Position))
	}
}

func (p *Parser) expectBracketClose(seg types.PathSegment) (types.PathSegment, *types.ParseError) {
	if p.peek().Type != TokenBracketClose {
		t := p.peek()
		return types.PathSegment{}, types.NewParseError(types.ErrUnterminatedBracket, t.Position,
			fmt.Sprintf("expected ']' at %d", t.Position))
	}
	p.advance()
	return seg, nil
}

// parseSignedInt converts the current TokenNumber (the lexer already folds
// a leading '-' into the number token) into an int.
func (p *Parser) parseSignedInt() (int, *types.ParseError) {
	t := p.peek()
	if t.Type != TokenNumber {
		if t.Type == TokenEOF {
			p.markIncomplete(types.CtxKey, "", nil)
			return 0, nil
		}
		return 0, types.NewParseError(types.ErrBadNumber, t.Position, "expected integer")
	}
	p.advance()
	n, err := strconv.Atoi(t.Value)
	if err != nil {
		return 0, types.NewParseError(types.ErrBadNumber, t.Position, "expected integer, got "+t.Value)
	}
	return n, nil
}

// parsePredicate parses `ident op literal`, the grammar shared by bracket
// predicates and :filter arguments.
func (p *Parser) parsePredicate() (types.PathSegment, *types.ParseError) {
	fieldTok := p.advance() // ident, type already checked by caller
	if p.peek().Type == TokenEOF {
		p.markIncomplete(types.CtxPredicateRHS, "", nil)
		return types.PathSegment{}, nil
	}

	opTok := p.peek()
	op, ok := tokenToOp(opTok.Type)
	if !ok {
		return types.PathSegment{}, types.NewParseError(types.ErrUnexpectedChar, opTok.Position,
			fmt.Sprintf("expected comparison operator at %d, got %s", opTok.Position, opTok.Type))
	}
	p.advance()

	if p.peek().Type == TokenEOF {
		p.markIncomplete(types.CtxPredicateRHS, "", nil)
		return types.PathSegment{}, nil
	}

	lit, perr := p.parseLiteral()
	if perr != nil {
		return types.PathSegment{}, perr
	}
	if p.incomplete {
		return types.PathSegment{}, nil
	}

	return types.PathSegment{Kind: types.SegPredicate, Field: fieldTok.Value, Op: op, Literal: lit}, nil
}

func tokenToOp(tt TokenType) (types.Op, bool) {
	switch tt {
	case TokenEqual:
		return types.OpEq, true
	case TokenNotEqual:
		return types.OpNe, true
	case TokenLess:
		return types.OpLt, true
	case TokenGreater:
		return types.OpGt, true
	case TokenLessEqual:
		return types.OpLe, true
	case TokenGreaterEqual:
		return types.OpGe, true
	default:
		return "", false
	}
}

// parseLiteral parses number | '"' string '"' | 'true' | 'false' | 'null'.
func (p *Parser) parseLiteral() (types.Literal, *types.ParseError) {
	t := p.advance()
	switch t.Type {
	case TokenNumber:
		n, err := strconv.ParseFloat(t.Value, 64)
		if err != nil {
			return types.Literal{}, types.NewParseError(types.ErrBadNumber, t.Position, "malformed number "+t.Value)
		}
		return types.NewNumberLiteral(n), nil
	case TokenString:
		return types.NewStringLiteral(t.Value), nil
	case TokenBool:
		return types.NewBoolLiteral(t.Value == "true"), nil
	case TokenNull:
		return types.NullLiteral, nil
	case TokenEOF:
		p.markIncomplete(types.CtxPredicateRHS, "", nil)
		return types.Literal{}, nil
	default:
		return types.Literal{}, types.NewParseError(types.ErrUnexpectedChar, t.Position,
			fmt.Sprintf("expected literal at %d, got %s", t.Position, t.Type))
	}
}

// parseTransforms parses `( ':' ident arg_list? )*`.
func (p *Parser) parseTransforms() ([]types.TransformStep, *types.ParseError) {
	var steps []types.TransformStep
	for p.peek().Type == TokenColon {
		p.advance()
		if p.peek().Type == TokenEOF {
			p.markIncomplete(types.CtxTransformName, "", nil)
			return steps, nil
		}
		nameTok := p.peek()
		if nameTok.Type != TokenName {
			return steps, types.NewParseError(types.ErrUnexpectedChar, nameTok.Position,
				fmt.Sprintf("expected transform name at %d, got %s", nameTok.Position, nameTok.Type))
		}
		p.advance()
		if p.peek().Type == TokenEOF {
			p.markIncomplete(types.CtxTransformName, nameTok.Value, nil)
			return steps, nil
		}

		step := types.TransformStep{Name: nameTok.Value}
		if nameTok.Value == "filter" {
			if p.peek().Type != TokenName {
				t := p.peek()
				return steps, types.NewParseError(types.ErrUnexpectedChar, t.Position,
					fmt.Sprintf("expected predicate after :filter at %d", t.Position))
			}
			pred, perr := p.parsePredicate()
			if perr != nil {
				return steps, perr
			}
			if p.incomplete {
				return steps, nil
			}
			step.Predicate = &pred
		} else {
			args, perr := p.parseArgList()
			if perr != nil {
				return steps, perr
			}
			if p.incomplete {
				return steps, nil
			}
			step.Args = args
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// parseArgList parses `token ( ',' token )*` — bare identifier/number/string
// tokens, stopping at the next ':' (new transform) or end of input.
func (p *Parser) parseArgList() ([]string, *types.ParseError) {
	var args []string
	for {
		t := p.peek()
		switch t.Type {
		case TokenName, TokenNumber, TokenString:
			p.advance()
			args = append(args, t.Value)
		default:
			return args, nil
		}
		if p.peek().Type != TokenComma {
			return args, nil
		}
		p.advance()
		if p.peek().Type == TokenEOF {
			return args, nil
		}
	}
}
