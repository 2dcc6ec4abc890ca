// Package arena implements the flat-vector parsed-node storage described in
// spec §4.2: nodes, children, pairs, and string/number tables indexed by
// position, plus a view that resolves spans against the input buffer.
package arena

// Kind is a parsed node's variant.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Span is a half-open byte range [Start, End) into the input buffer.
type Span struct {
	Start, End int
}

func (s Span) Len() int { return s.End - s.Start }

// StringRef is a parsed string payload: either a Span into the input (no
// escapes present) or an index into the arena's owned-string table
// (escapes had to be resolved).
type StringRef struct {
	IsOwned  bool
	Span     Span
	OwnedIdx int
}

// Node is one parsed value. Bool's payload is inlined; String indexes the
// Strings table; Number indexes either the Numbers table (NumberIdx) or, as
// the decoder writes it, the Strings table (StringIdx); Array/Object
// children/pairs occupy a contiguous range of the children/pairs tables.
type Node struct {
	Kind        Kind
	Bool        bool
	StringIdx   int
	NumberIdx   int
	ChildStart  int
	ChildLen    int
	PairStart   int
	PairLen     int
}

// Pair is one object entry: a key-string index plus a value-node index.
type Pair struct {
	KeyIdx int
	ValIdx int
}

// Arena is the flat storage for one decoded document.
type Arena struct {
	Nodes    []Node
	Strings  []StringRef // indexed by Node.StringIdx
	Owned    []string    // indexed by StringRef.OwnedIdx
	Numbers  []Span      // indexed by Node.NumberIdx
	Children []int       // node indices, sliced by ChildStart/ChildLen
	Pairs    []Pair       // sliced by PairStart/PairLen
	Keys     []StringRef // indexed by Pair.KeyIdx
}

// New returns an empty Arena with small initial capacity.
func New() *Arena {
	return &Arena{
		Nodes:    make([]Node, 0, 16),
		Strings:  make([]StringRef, 0, 16),
		Owned:    make([]string, 0, 4),
		Numbers:  make([]Span, 0, 16),
		Children: make([]int, 0, 16),
		Pairs:    make([]Pair, 0, 16),
		Keys:     make([]StringRef, 0, 16),
	}
}

// reset clears all vectors while keeping their backing arrays, for reuse
// from the pool.
func (a *Arena) reset() {
	a.Nodes = a.Nodes[:0]
	a.Strings = a.Strings[:0]
	a.Owned = a.Owned[:0]
	a.Numbers = a.Numbers[:0]
	a.Children = a.Children[:0]
	a.Pairs = a.Pairs[:0]
	a.Keys = a.Keys[:0]
}

// AddNode appends a node and returns its index.
func (a *Arena) AddNode(n Node) int {
	a.Nodes = append(a.Nodes, n)
	return len(a.Nodes) - 1
}

// AddString appends a StringRef and returns its index.
func (a *Arena) AddString(ref StringRef) int {
	a.Strings = append(a.Strings, ref)
	return len(a.Strings) - 1
}

// AddKey appends a Pair key StringRef and returns its index.
func (a *Arena) AddKey(ref StringRef) int {
	a.Keys = append(a.Keys, ref)
	return len(a.Keys) - 1
}

// AddOwned appends an owned string and returns its index.
func (a *Arena) AddOwned(s string) int {
	a.Owned = append(a.Owned, s)
	return len(a.Owned) - 1
}

// AddNumber appends a number span and returns its index.
func (a *Arena) AddNumber(sp Span) int {
	a.Numbers = append(a.Numbers, sp)
	return len(a.Numbers) - 1
}

// AddChildren appends child node indices and returns (start, len).
func (a *Arena) AddChildren(idx []int) (int, int) {
	start := len(a.Children)
	a.Children = append(a.Children, idx...)
	return start, len(idx)
}

// AddPairs appends pairs and returns (start, len).
func (a *Arena) AddPairs(pairs []Pair) (int, int) {
	start := len(a.Pairs)
	a.Pairs = append(a.Pairs, pairs...)
	return start, len(pairs)
}

// ChildSlice returns the child node indices of n.
func (a *Arena) ChildSlice(n Node) []int {
	return a.Children[n.ChildStart : n.ChildStart+n.ChildLen]
}

// PairSlice returns the pairs of n.
func (a *Arena) PairSlice(n Node) []Pair {
	return a.Pairs[n.PairStart : n.PairStart+n.PairLen]
}
