// Package cache provides an optional LRU of compiled queries keyed by
// their source string, backed by github.com/hashicorp/golang-lru/v2. No
// cache is required for correctness: ASTs are cheap to rebuild, so Parse
// works identically with caching disabled.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/eladbash/jdx/pkg/parser"
	"github.com/eladbash/jdx/pkg/types"
)

// QueryCache memoizes ParseQuery by source string. The zero value and a
// nil *QueryCache both behave as a disabled cache.
type QueryCache struct {
	lru *lru.Cache[string, cached]
}

type cached struct {
	query *types.Query
	err   *types.ParseError
}

// New builds a QueryCache holding at most size entries. size <= 0 disables
// caching: Parse always calls through to parser.ParseQuery.
func New(size int) *QueryCache {
	if size <= 0 {
		return &QueryCache{}
	}
	l, err := lru.New[string, cached](size)
	if err != nil {
		// size is always > 0 here, so lru.New cannot fail; guard kept
		// defensively since the constructor returns an error at all.
		return &QueryCache{}
	}
	return &QueryCache{lru: l}
}

// Parse returns the cached parse of s if present, else parses it fresh and
// stores the result — including a non-nil ParseError, so a malformed query
// string isn't reparsed on every call either.
func (c *QueryCache) Parse(s string) (*types.Query, *types.ParseError) {
	if c == nil || c.lru == nil {
		return parser.ParseQuery(s)
	}
	if hit, ok := c.lru.Get(s); ok {
		return hit.query, hit.err
	}
	q, err := parser.ParseQuery(s)
	c.lru.Add(s, cached{query: q, err: err})
	return q, err
}

// Len reports the number of entries currently cached.
func (c *QueryCache) Len() int {
	if c == nil || c.lru == nil {
		return 0
	}
	return c.lru.Len()
}
