package arena

// View binds an Arena to the input text it was parsed from, so Span string
// payloads can be resolved without copying.
type View struct {
	Arena *Arena
	Input string
}

// NewView returns a View over a and input.
func NewView(a *Arena, input string) View {
	return View{Arena: a, Input: input}
}

// ResolveStringRef resolves a StringRef to its text, either by slicing the
// input (Span) or returning the owned string.
func (v View) ResolveStringRef(ref StringRef) string {
	if ref.IsOwned {
		return v.Arena.Owned[ref.OwnedIdx]
	}
	return v.Input[ref.Span.Start:ref.Span.End]
}

// ResolveString resolves a node's string payload by its StringIdx.
func (v View) ResolveString(idx int) string {
	return v.ResolveStringRef(v.Arena.Strings[idx])
}

// ResolveKey resolves a Pair's key by its KeyIdx.
func (v View) ResolveKey(idx int) string {
	return v.ResolveStringRef(v.Arena.Keys[idx])
}

// ResolveNumber resolves a node's number token by its NumberIdx.
func (v View) ResolveNumber(idx int) string {
	sp := v.Arena.Numbers[idx]
	return v.Input[sp.Start:sp.End]
}
