package cache

import "testing"

func TestParseCachesBySourceString(t *testing.T) {
	c := New(8)
	q1, err1 := c.Parse(".users.name")
	if err1 != nil {
		t.Fatalf("unexpected parse error: %v", err1)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 cached entry, got %d", c.Len())
	}
	q2, err2 := c.Parse(".users.name")
	if err2 != nil {
		t.Fatalf("unexpected parse error: %v", err2)
	}
	if c.Len() != 1 {
		t.Fatalf("expected the second Parse of the same string to hit the cache, got %d entries", c.Len())
	}
	if q1 != q2 {
		t.Fatalf("expected the identical cached *types.Query pointer on a cache hit")
	}
}

func TestParseCachesParseErrorsToo(t *testing.T) {
	c := New(8)
	_, err1 := c.Parse(".users[0")
	if err1 == nil {
		t.Fatalf("expected a ParseError for an unterminated bracket")
	}
	_, err2 := c.Parse(".users[0")
	if err2 == nil || err1.Message != err2.Message {
		t.Fatalf("expected the cached ParseError to be returned on a repeat lookup")
	}
}

func TestDisabledCacheFallsThroughToParser(t *testing.T) {
	c := New(0)
	if c.Len() != 0 {
		t.Fatalf("expected a disabled cache to report 0 entries")
	}
	q, err := c.Parse(".a.b")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(q.Segments) != 2 {
		t.Fatalf("expected a disabled cache to still parse correctly, got %+v", q.Segments)
	}
	if c.Len() != 0 {
		t.Fatalf("expected a disabled cache to never accumulate entries, got %d", c.Len())
	}
}

func TestNilCacheFallsThroughToParser(t *testing.T) {
	var c *QueryCache
	q, err := c.Parse(".a.b")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(q.Segments) != 2 {
		t.Fatalf("expected a nil *QueryCache to still parse correctly, got %+v", q.Segments)
	}
}

func TestCacheTransparency(t *testing.T) {
	c := New(8)
	uncached, _ := c.Parse(".users[role == \"admin\"] :pick name,age")
	cachedAgain, _ := c.Parse(".users[role == \"admin\"] :pick name,age")
	if uncached == nil || cachedAgain == nil {
		t.Fatalf("expected both parses to succeed")
	}
	if len(uncached.Segments) != len(cachedAgain.Segments) || len(uncached.Transforms) != len(cachedAgain.Transforms) {
		t.Fatalf("expected cached and uncached parses to carry identical structure")
	}
}
