// Package decode implements the TOON decoder core (spec §4.4): array
// headers, nested objects, list items, path expansion, and strict-mode
// validation, driven by the line scanner.
package decode

import (
	"fmt"
	"strings"

	"github.com/bnomei/toon-go/internal/arena"
	"github.com/bnomei/toon-go/internal/lex"
	"github.com/bnomei/toon-go/internal/opt"
	"github.com/bnomei/toon-go/internal/scanner"
	"github.com/bnomei/toon-go/internal/tval"
)

// Parser walks scanned lines to build a value tree. Canonical enables the
// additional checks the validator (§4.7) layers on top of strict decoding.
// Every scalar it produces is first staged into arena and read back through
// view (spec §4.2), so scalar values are materialized from the flat-vector
// tables. Keys, objects, and arrays are built directly in the value tree;
// their keys, pairs, and child ranges are recorded in arena alongside.
type Parser struct {
	input     string
	lines     []scanner.Line
	pos       int
	opts      opt.Decode
	delim     lex.Delimiter
	Canonical bool
	arena     *arena.Arena
	view      arena.View
}

// Decode parses input per o and returns the resulting value tree.
func Decode(input string, o opt.Decode) (tval.Value, error) {
	p := &Parser{opts: o}
	return p.run(input, false)
}

// DecodeCanonical is like Decode but additionally rejects non-canonical
// input, used by the validator (§4.7). o.Strict is forced true.
func DecodeCanonical(input string, o opt.Decode) (tval.Value, error) {
	o.Strict = true
	p := &Parser{opts: o}
	return p.run(input, true)
}

func (p *Parser) run(input string, canonical bool) (tval.Value, error) {
	p.input = input
	p.delim = lex.Comma
	p.Canonical = canonical

	lines, nonBlank, err := scanner.Scan(input, p.opts.Indent, p.opts.Strict)
	if err != nil {
		if se, ok := err.(*scanner.Error); ok {
			return nil, &Error{Message: se.Message, Line: se.Line}
		}
		return nil, err
	}
	p.lines = lines

	a := arena.Get()
	defer arena.Put(a)
	p.arena = a
	p.view = arena.NewView(a, input)

	if canonical {
		if strings.HasSuffix(input, "\n") {
			return nil, &Error{Message: "canonical input must not end with a trailing newline"}
		}
		for i, l := range lines {
			if l.Blank {
				continue
			}
			text := l.Text(input)
			if len(text) > 0 && (text[len(text)-1] == ' ' || text[len(text)-1] == '\t') {
				return nil, errf(i+1, "trailing whitespace on line")
			}
		}
	}

	if nonBlank == 0 {
		return tval.NewObject(), nil
	}
	for p.lines[p.pos].Blank {
		p.pos++
	}
	first := p.lines[p.pos]
	trimmed := first.Trimmed(input)

	key, tail, _, kerr := splitKeyAndTail(trimmed)

	var result tval.Value
	switch {
	case kerr == nil && key == "" && len(tail) > 0 && tail[0] == '[':
		result, _, err = p.parseArrayAfterHeaderLine(tail, 0)
	case nonBlank == 1 && kerr != nil:
		if p.opts.Strict {
			if verr := validateStrictScalarToken(trimmed); verr != nil {
				return nil, verr
			}
		}
		result, _, err = p.resolveScalarToken(trimmed)
	default:
		result, _, err = p.parseObjectBlock(0)
	}
	if err != nil {
		return nil, err
	}

	if idx, ok := p.nextNonBlankIndex(); ok {
		return nil, errf(idx+1, "trailing content after document root")
	}
	return result, nil
}

// nextNonBlankIndex returns the index of the next non-blank line at or
// after p.pos, without advancing p.pos.
func (p *Parser) nextNonBlankIndex() (int, bool) {
	i := p.pos
	for i < len(p.lines) && p.lines[i].Blank {
		i++
	}
	if i >= len(p.lines) {
		return 0, false
	}
	return i, true
}

func (p *Parser) advanceToNextNonBlank() {
	for p.pos < len(p.lines) && p.lines[p.pos].Blank {
		p.pos++
	}
}

// stageKey stages key into the arena's key table and returns its index.
func (p *Parser) stageKey(key string) int {
	return p.arena.AddKey(arena.StringRef{IsOwned: true, OwnedIdx: p.arena.AddOwned(key)})
}

// resolveScalarToken parses one delimited cell or key/value tail into a
// scalar value: null/true/false keywords, a quoted string, or a bare token
// tried as a canonical number and falling back to a string. tok is staged
// into the arena's owned-string table and the value is produced by
// resolving it back through p.view, so the returned value and arena node
// both derive from the same staged text rather than the raw tok directly.
func (p *Parser) resolveScalarToken(tok string) (tval.Value, int, error) {
	strIdx := p.arena.AddString(arena.StringRef{IsOwned: true, OwnedIdx: p.arena.AddOwned(tok)})
	text := p.view.ResolveString(strIdx)

	if text == "" {
		return "", p.arena.AddNode(arena.Node{Kind: arena.KindString, StringIdx: strIdx}), nil
	}
	if text[0] == '"' {
		if len(text) < 2 || text[len(text)-1] != '"' {
			return nil, 0, fmt.Errorf("unterminated quoted string: %s", text)
		}
		body := text[1 : len(text)-1]
		unescaped, ok := lex.UnescapeString(body)
		if !ok {
			return nil, 0, fmt.Errorf("invalid escape sequence in %s", text)
		}
		return unescaped, p.arena.AddNode(arena.Node{Kind: arena.KindString, StringIdx: strIdx}), nil
	}
	switch text {
	case "null":
		return nil, p.arena.AddNode(arena.Node{Kind: arena.KindNull}), nil
	case "true":
		return true, p.arena.AddNode(arena.Node{Kind: arena.KindBool, Bool: true}), nil
	case "false":
		return false, p.arena.AddNode(arena.Node{Kind: arena.KindBool, Bool: false}), nil
	}
	if pn, ok := lex.ParseNumberToken(text); ok {
		idx := p.arena.AddNode(arena.Node{Kind: arena.KindNumber, StringIdx: strIdx})
		switch {
		case pn.IsInt && pn.I64OK:
			return pn.I64, idx, nil
		case pn.IsInt && pn.U64OK:
			return pn.U64, idx, nil
		default:
			return pn.F64, idx, nil
		}
	}
	// Leading-zero numeric-shaped tokens (e.g. "05") fail ParseNumberToken
	// and fall through here as plain strings — the documented
	// "leading-zero strings are strings" accommodation (spec §9).
	return text, p.arena.AddNode(arena.Node{Kind: arena.KindString, StringIdx: strIdx}), nil
}

// parseObjectBlock parses an object whose entries sit at level.
func (p *Parser) parseObjectBlock(level int) (*tval.Object, int, error) {
	obj := tval.NewObject()
	var pairs []arena.Pair
	if err := p.parseEntriesInto(obj, level, &pairs); err != nil {
		return nil, 0, err
	}
	start, plen := p.arena.AddPairs(pairs)
	idx := p.arena.AddNode(arena.Node{Kind: arena.KindObject, PairStart: start, PairLen: plen})
	return obj, idx, nil
}

// parseEntriesInto consumes key/value entries at exactly level into obj,
// stopping at the first line shallower than level (or EOF). Every entry
// also appends an arena.Pair to pairs, keyed by the same staged key used to
// build obj itself.
func (p *Parser) parseEntriesInto(obj *tval.Object, level int, pairs *[]arena.Pair) error {
	for {
		idx, ok := p.nextNonBlankIndex()
		if !ok || p.lines[idx].Level < level {
			break
		}
		p.advanceToNextNonBlank()
		line := p.lines[p.pos]
		if line.Level > level {
			return errf(p.pos+1, "unexpected indentation")
		}
		trimmed := line.Trimmed(p.input)
		if isListItemLine(trimmed) {
			return errf(p.pos+1, "expected an object key, found a list item")
		}
		key, tail, quoted, kerr := splitKeyAndTail(trimmed)
		if kerr != nil {
			return errf(p.pos+1, "expected ':' or an array header after key: %v", kerr)
		}
		if key == "" {
			return errf(p.pos+1, "missing object key")
		}
		if !quoted && p.opts.Strict && !lex.IsCanonicalKey(key) {
			return errf(p.pos+1, "key %q is not a canonical identifier", key)
		}
		if p.Canonical && quoted && lex.IsCanonicalKey(key) {
			return errf(p.pos+1, "key %q does not need quoting", key)
		}

		val, valIdx, verr := p.parseEntryValue(tail, level)
		if verr != nil {
			return verr
		}

		if p.opts.ExpandPaths == opt.PathExpansionSafe && !quoted && strings.Contains(key, ".") && allDotSegmentsCanonical(key) {
			if err := mergePath(obj, strings.Split(key, "."), val, p.opts.Strict); err != nil {
				return err
			}
		} else {
			obj.Set(key, val)
		}
		*pairs = append(*pairs, arena.Pair{KeyIdx: p.stageKey(key), ValIdx: valIdx})
	}
	return nil
}

// parseEntryValue parses the value following a key, given tail (the line
// content starting at '[' or ':'). level is the key line's own level.
func (p *Parser) parseEntryValue(tail string, level int) (tval.Value, int, error) {
	if len(tail) > 0 && tail[0] == '[' {
		return p.parseArrayAfterHeaderLine(tail, level)
	}
	if len(tail) > 0 && tail[0] == ':' {
		rest := trimOneLeadingSpace(tail[1:])
		p.pos++
		if rest == "" {
			if idx, ok := p.nextNonBlankIndex(); ok && p.lines[idx].Level > level {
				return p.parseObjectBlock(level + 1)
			}
			return tval.NewObject(), p.arena.AddNode(arena.Node{Kind: arena.KindObject}), nil
		}
		if p.opts.Strict {
			if verr := validateStrictScalarToken(rest); verr != nil {
				return nil, 0, verr
			}
		}
		return p.resolveScalarToken(rest)
	}
	return nil, 0, errf(p.pos+1, "expected ':' or an array header")
}

// parseArrayAfterHeaderLine parses the array header on the current line
// (tail starts with '[') and, depending on form, the rows/items that
// follow at level+1.
func (p *Parser) parseArrayAfterHeaderLine(tail string, level int) (tval.Value, int, error) {
	h, err := parseHeaderTail(tail, p.delim)
	if err != nil {
		return nil, 0, errf(p.pos+1, "%v", err)
	}
	if p.Canonical {
		if h.ExplicitDelim && h.Delimiter == lex.Comma {
			return nil, 0, errf(p.pos+1, "canonical array header must omit the comma delimiter marker")
		}
		if !h.ExplicitDelim && p.delim != lex.Comma {
			return nil, 0, errf(p.pos+1, "canonical array header must include a non-comma delimiter marker")
		}
	}
	p.pos++
	prevDelim := p.delim
	p.delim = h.Delimiter
	defer func() { p.delim = prevDelim }()

	if h.Length == 0 {
		arr := tval.Array{}
		idx := p.arena.AddNode(arena.Node{Kind: arena.KindArray})
		return &arr, idx, nil
	}
	if len(h.Fields) > 0 {
		return p.parseTabularRows(h, level+1)
	}
	if h.HasInline {
		return p.parseInlineArray(h)
	}
	return p.parseListItems(h, level+1)
}

func (p *Parser) parseInlineArray(h header) (tval.Value, int, error) {
	toks := splitDelimited(h.InlinePayload, h.Delimiter.Byte())
	if p.opts.Strict && len(toks) != h.Length {
		return nil, 0, errf(p.pos, "array declares length %d but has %d inline values", h.Length, len(toks))
	}
	arr := make(tval.Array, 0, len(toks))
	children := make([]int, 0, len(toks))
	for _, t := range toks {
		if p.opts.Strict {
			if verr := validateStrictScalarToken(t); verr != nil {
				return nil, 0, verr
			}
		}
		v, vIdx, err := p.resolveScalarToken(t)
		if err != nil {
			return nil, 0, err
		}
		arr = append(arr, v)
		children = append(children, vIdx)
	}
	start, clen := p.arena.AddChildren(children)
	idx := p.arena.AddNode(arena.Node{Kind: arena.KindArray, ChildStart: start, ChildLen: clen})
	return &arr, idx, nil
}

func (p *Parser) parseTabularRows(h header, level int) (tval.Value, int, error) {
	var rows []tval.Value
	var rowIdxs []int
	for {
		idx, ok := p.nextNonBlankIndex()
		if !ok {
			break
		}
		if idx != p.pos {
			// There is a blank line between here and the next content.
			if p.opts.Strict && len(rows) < h.Length {
				return nil, 0, errf(p.pos+1, "blank line inside an array")
			}
			p.pos = idx
		}
		if p.lines[idx].Level < level {
			break
		}
		trimmed := p.lines[idx].Trimmed(p.input)
		if rowLooksLikeKeyValue(trimmed, h.Delimiter) {
			break
		}
		cells := splitDelimited(trimmed, h.Delimiter.Byte())
		if p.opts.Strict && len(cells) != len(h.Fields) {
			return nil, 0, errf(p.pos+1, "tabular row has %d cells, expected %d", len(cells), len(h.Fields))
		}
		obj := tval.NewObject()
		var pairs []arena.Pair
		for i, fname := range h.Fields {
			var tok string
			if i < len(cells) {
				tok = cells[i]
			}
			if p.opts.Strict {
				if verr := validateStrictScalarToken(tok); verr != nil {
					return nil, 0, verr
				}
			}
			v, vIdx, err := p.resolveScalarToken(tok)
			if err != nil {
				return nil, 0, err
			}
			obj.Set(fname, v)
			pairs = append(pairs, arena.Pair{KeyIdx: p.stageKey(fname), ValIdx: vIdx})
		}
		pstart, plen := p.arena.AddPairs(pairs)
		rows = append(rows, obj)
		rowIdxs = append(rowIdxs, p.arena.AddNode(arena.Node{Kind: arena.KindObject, PairStart: pstart, PairLen: plen}))
		p.pos++
	}
	if p.opts.Strict && len(rows) != h.Length {
		return nil, 0, errf(p.pos, "array declares length %d but has %d tabular rows", h.Length, len(rows))
	}
	arr := tval.Array(rows)
	start, clen := p.arena.AddChildren(rowIdxs)
	idx := p.arena.AddNode(arena.Node{Kind: arena.KindArray, ChildStart: start, ChildLen: clen})
	return &arr, idx, nil
}

func (p *Parser) parseListItems(h header, level int) (tval.Value, int, error) {
	var items []tval.Value
	var itemIdxs []int
	for {
		idx, ok := p.nextNonBlankIndex()
		if !ok {
			break
		}
		if idx != p.pos {
			if p.opts.Strict && len(items) < h.Length {
				return nil, 0, errf(p.pos+1, "blank line inside an array")
			}
			p.pos = idx
		}
		line := p.lines[idx]
		if line.Level < level {
			break
		}
		trimmed := line.Trimmed(p.input)
		if trimmed == "-" {
			items = append(items, tval.NewObject())
			itemIdxs = append(itemIdxs, p.arena.AddNode(arena.Node{Kind: arena.KindObject}))
			p.pos++
			continue
		}
		if len(trimmed) >= 2 && trimmed[0] == '-' && trimmed[1] == ' ' {
			v, vIdx, err := p.parseListItemContent(trimmed[2:], level)
			if err != nil {
				return nil, 0, err
			}
			items = append(items, v)
			itemIdxs = append(itemIdxs, vIdx)
			continue
		}
		break
	}
	if p.opts.Strict && len(items) != h.Length {
		return nil, 0, errf(p.pos, "array declares length %d but has %d list items", h.Length, len(items))
	}
	arr := tval.Array(items)
	start, clen := p.arena.AddChildren(itemIdxs)
	idx := p.arena.AddNode(arena.Node{Kind: arena.KindArray, ChildStart: start, ChildLen: clen})
	return &arr, idx, nil
}

// parseListItemContent parses what follows "- " on a list-item line.
func (p *Parser) parseListItemContent(content string, level int) (tval.Value, int, error) {
	key, tail, quoted, kerr := splitKeyAndTail(content)
	if kerr != nil {
		if p.opts.Strict {
			if verr := validateStrictScalarToken(content); verr != nil {
				return nil, 0, verr
			}
		}
		v, vIdx, err := p.resolveScalarToken(content)
		if err != nil {
			return nil, 0, err
		}
		p.pos++
		return v, vIdx, nil
	}
	if key == "" {
		if len(tail) == 0 || tail[0] != '[' {
			return nil, 0, errf(p.pos+1, "malformed list item")
		}
		return p.parseArrayAfterHeaderLine(tail, level)
	}
	if !quoted && p.opts.Strict && !lex.IsCanonicalKey(key) {
		return nil, 0, errf(p.pos+1, "key %q is not a canonical identifier", key)
	}
	firstVal, firstIdx, verr := p.parseEntryValue(tail, level)
	if verr != nil {
		return nil, 0, verr
	}
	obj := tval.NewObject()
	if p.opts.ExpandPaths == opt.PathExpansionSafe && strings.Contains(key, ".") && allDotSegmentsCanonical(key) {
		if err := mergePath(obj, strings.Split(key, "."), firstVal, p.opts.Strict); err != nil {
			return nil, 0, err
		}
	} else {
		obj.Set(key, firstVal)
	}
	pairs := []arena.Pair{{KeyIdx: p.stageKey(key), ValIdx: firstIdx}}
	if err := p.parseEntriesInto(obj, level+1, &pairs); err != nil {
		return nil, 0, err
	}
	pstart, plen := p.arena.AddPairs(pairs)
	idx := p.arena.AddNode(arena.Node{Kind: arena.KindObject, PairStart: pstart, PairLen: plen})
	return obj, idx, nil
}

func isListItemLine(trimmed string) bool {
	return trimmed == "-" || (len(trimmed) >= 2 && trimmed[0] == '-' && trimmed[1] == ' ')
}

// rowLooksLikeKeyValue implements the "colon before first delimiter
// terminates the table" heuristic (spec §4.4.3, §9 Open Question: checked
// before any row-width padding/truncation).
func rowLooksLikeKeyValue(trimmed string, delim lex.Delimiter) bool {
	_, colonIdx := firstUnquotedByte(trimmed, ':')
	if colonIdx < 0 {
		return false
	}
	_, delimIdx := firstUnquotedByte(trimmed, delim.Byte())
	return delimIdx < 0 || colonIdx < delimIdx
}

func firstUnquotedByte(s string, target byte) (byte, int) {
	inQuote := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' {
			inQuote = !inQuote
			continue
		}
		if c == '\\' && inQuote && i+1 < len(s) {
			i++
			continue
		}
		if inQuote {
			continue
		}
		if c == target {
			return c, i
		}
	}
	return 0, -1
}

// splitKeyAndTail splits trimmed line content into a leading key (bare or
// quoted) and the tail starting at '[' or ':'.
func splitKeyAndTail(s string) (key, tail string, quoted bool, err error) {
	if s == "" {
		return "", "", false, fmt.Errorf("empty line")
	}
	if s[0] == '"' {
		i := 1
		for i < len(s) {
			if s[i] == '\\' && i+1 < len(s) {
				i += 2
				continue
			}
			if s[i] == '"' {
				break
			}
			i++
		}
		if i >= len(s) {
			return "", "", false, fmt.Errorf("unterminated quoted key")
		}
		raw := s[1:i]
		keyStr, ok := lex.UnescapeString(raw)
		if !ok {
			return "", "", false, fmt.Errorf("invalid escape sequence in key")
		}
		return keyStr, s[i+1:], true, nil
	}
	for i := 0; i < len(s); i++ {
		if s[i] == '[' || s[i] == ':' {
			return s[:i], s[i:], false, nil
		}
	}
	return "", "", false, fmt.Errorf("no ':' or array header found")
}

func trimOneLeadingSpace(s string) string {
	if len(s) > 0 && s[0] == ' ' {
		return s[1:]
	}
	return s
}

func allDotSegmentsCanonical(key string) bool {
	segs := strings.Split(key, ".")
	if len(segs) < 2 {
		return false
	}
	for _, seg := range segs {
		if !lex.IsCanonicalIdentSegment(seg) {
			return false
		}
	}
	return true
}
