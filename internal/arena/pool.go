package arena

import "sync"

// pool recycles Arena vectors across decodes. The spec's reference design
// (§4.2, §9) uses a single-threaded thread-local cache; Go has no
// first-class thread-local storage, so this uses a sync.Pool instead — the
// documented fallback ("target languages without cheap thread-local should
// fall back to plain allocation; performance drops, correctness doesn't").
// sync.Pool additionally tolerates genuine concurrent use, which a literal
// thread-local would not.
var pool = sync.Pool{New: func() interface{} { return New() }}

// Get takes an Arena from the pool, or allocates one if the pool is empty.
func Get() *Arena {
	return pool.Get().(*Arena)
}

// Put clears a and returns it to the pool for reuse.
func Put(a *Arena) {
	a.reset()
	pool.Put(a)
}
