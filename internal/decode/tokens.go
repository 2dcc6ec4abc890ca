package decode

import (
	"fmt"
	"strings"
)

// splitDelimited splits s on delim with quote-awareness: a '"' opens a
// quoted region terminated by an unescaped '"'; a delimiter byte inside a
// quoted region does not split. Empty tokens are preserved as "".
func splitDelimited(s string, delim byte) []string {
	if s == "" {
		return []string{""}
	}
	var toks []string
	var cur strings.Builder
	inQuote := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			inQuote = !inQuote
			cur.WriteByte(c)
		case c == '\\' && inQuote && i+1 < len(s):
			cur.WriteByte(c)
			cur.WriteByte(s[i+1])
			i++
		case c == delim && !inQuote:
			toks = append(toks, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	toks = append(toks, cur.String())
	return toks
}

// validateStrictScalarToken rejects bare (unquoted) tokens containing
// whitespace, which strict mode disallows.
func validateStrictScalarToken(tok string) error {
	if tok == "" || tok[0] == '"' {
		return nil
	}
	if strings.ContainsAny(tok, " \t") {
		return fmt.Errorf("unquoted value %q contains whitespace", tok)
	}
	return nil
}
