package lex

import "strings"

// structureChars are bytes that always force quoting regardless of the
// active delimiter.
const structureChars = "[]{}:\"\\\n\r\t"

// keywordStrings are the bare tokens that collide with literals.
var keywordStrings = map[string]bool{"true": true, "false": true, "null": true}

// IsUnquotedSafe reports whether s can be written without quotes under the
// given active delimiter, per spec §3's canonical string form.
func IsUnquotedSafe(s string, delim Delimiter) bool {
	if s == "" {
		return false
	}
	if keywordStrings[s] {
		return false
	}
	if looksNumericLike(s) {
		return false
	}
	first, last := s[0], s[len(s)-1]
	if first == ' ' || first == '\t' || last == ' ' || last == '\t' {
		return false
	}
	if first == '-' {
		return false
	}
	if first == '0' && len(s) > 1 && s[1] >= '0' && s[1] <= '9' {
		return false
	}
	if strings.ContainsAny(s, structureChars) {
		return false
	}
	if strings.IndexByte(s, delim.Byte()) >= 0 {
		return false
	}
	return true
}

// looksNumericLike reports whether s would be mistaken for a number token
// (so must be quoted to round-trip as a string). A token like "05" is
// numeric-shaped but is not itself a canonical number, so it is NOT
// numeric-like here; IsUnquotedSafe still quotes it through its separate
// leading-zero check.
func looksNumericLike(s string) bool {
	i := 0
	if s[i] == '-' {
		i++
		if i == len(s) {
			return false
		}
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return false
	}
	if i == len(s) {
		// Plain integer digits: numeric-like unless it has a disqualifying
		// leading zero, in which case it is a "leading-zero string" that
		// cannot parse back as a number.
		digits := s[start:i]
		if len(digits) > 1 && digits[0] == '0' {
			return false
		}
		return true
	}
	if s[i] == '.' {
		i++
		start2 := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start2 {
			return false
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start3 := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start3 {
			return false
		}
	}
	return i == len(s)
}

// EscapeString escapes \n \r \t \" \\ for a quoted payload.
func EscapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// UnescapeString reverses EscapeString. ok is false on a dangling escape or
// an unrecognized escape sequence.
func UnescapeString(s string) (string, bool) {
	if !strings.ContainsRune(s, '\\') {
		return s, true
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", false
		}
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		default:
			return "", false
		}
	}
	return b.String(), true
}

// NeedsEscaping reports whether s contains a byte that EscapeString would
// transform.
func NeedsEscaping(s string) bool {
	return strings.ContainsAny(s, "\n\r\t\"\\")
}
