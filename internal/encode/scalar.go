package encode

import (
	"fmt"
	"sync"

	"github.com/bnomei/toon-go/internal/lex"
	"github.com/bnomei/toon-go/internal/tval"
)

// quoteCacheLimit bounds the string-quote memoization cache (spec §4.5.6,
// §9): a performance aid with a simple clear-when-full eviction, not
// observable through any interface.
const quoteCacheLimit = 4096
const quoteCacheMaxKeyLen = 64

type quoteCacheKey struct {
	s     string
	delim lex.Delimiter
}

// quoteCache memoizes IsUnquotedSafe for short strings across calls within
// one encode. Built fresh per encode call (not package-global) so encoder
// calls stay free of shared mutable state across goroutines, matching the
// codec's single-threaded-per-call concurrency model (spec §5).
type quoteCache struct {
	mu sync.Mutex
	m  map[quoteCacheKey]bool
}

func newQuoteCache() *quoteCache {
	return &quoteCache{m: make(map[quoteCacheKey]bool, 256)}
}

func (c *quoteCache) isUnquotedSafe(s string, delim lex.Delimiter) bool {
	if len(s) > quoteCacheMaxKeyLen {
		return lex.IsUnquotedSafe(s, delim)
	}
	key := quoteCacheKey{s, delim}
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.m[key]; ok {
		return v
	}
	if len(c.m) >= quoteCacheLimit {
		c.m = make(map[quoteCacheKey]bool, 256)
	}
	v := lex.IsUnquotedSafe(s, delim)
	c.m[key] = v
	return v
}

// encodeString renders s as a bare or quoted token under the active
// delimiter.
func (e *encoder) encodeString(s string) string {
	if e.quotes.isUnquotedSafe(s, e.delim) {
		return s
	}
	return `"` + lex.EscapeString(s) + `"`
}

// encodeKey renders a key as bare or quoted, per canonical key rules.
func (e *encoder) encodeKey(s string) string {
	if lex.IsCanonicalKey(s) {
		return s
	}
	return `"` + lex.EscapeString(s) + `"`
}

// encodeScalar renders any non-container value.
func (e *encoder) encodeScalar(v tval.Value) (string, error) {
	switch val := v.(type) {
	case nil:
		return "null", nil
	case bool:
		if val {
			return "true", nil
		}
		return "false", nil
	case int64:
		return lex.FormatInt64(val), nil
	case uint64:
		return lex.FormatUint64(val), nil
	case float64:
		return lex.FormatFloat64(val), nil
	case string:
		return e.encodeString(val), nil
	default:
		return "", fmt.Errorf("unencodable value of type %s", tval.KindName(v))
	}
}
