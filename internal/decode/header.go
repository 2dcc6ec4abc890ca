package decode

import (
	"fmt"
	"strconv"

	"github.com/bnomei/toon-go/internal/lex"
)

// header is a parsed array-header line, shape:
//
//	<opt-key>[<len><opt-delim-marker>]<opt-fields>:<opt-inline-payload>
type header struct {
	Length        int
	Delimiter     lex.Delimiter
	ExplicitDelim bool
	Fields        []string
	InlinePayload string
	HasInline     bool
}

// parseHeaderTail parses tail, which must start with '['. inherited is the
// delimiter assumed absent an explicit marker.
func parseHeaderTail(tail string, inherited lex.Delimiter) (header, error) {
	var h header
	if len(tail) == 0 || tail[0] != '[' {
		return h, fmt.Errorf("expected array header starting with '['")
	}
	i := 1
	start := i
	for i < len(tail) && isDigit(tail[i]) {
		i++
	}
	if i == start {
		return h, fmt.Errorf("array header missing length")
	}
	n, err := strconv.Atoi(tail[start:i])
	if err != nil {
		return h, fmt.Errorf("invalid array length: %w", err)
	}
	h.Length = n
	h.Delimiter = inherited

	if i < len(tail) && tail[i] != ']' {
		d, ok := lex.ParseDelimiter(tail[i])
		if !ok {
			return h, fmt.Errorf("invalid delimiter marker %q", tail[i])
		}
		h.Delimiter = d
		h.ExplicitDelim = true
		i++
	}
	if i >= len(tail) || tail[i] != ']' {
		return h, fmt.Errorf("malformed array header: expected ']'")
	}
	i++

	if i < len(tail) && tail[i] == '{' {
		i++
		fieldStart := i
		depth := 1
		inQuote := false
		for i < len(tail) {
			c := tail[i]
			if c == '"' {
				inQuote = !inQuote
			} else if !inQuote && c == '}' {
				depth--
				if depth == 0 {
					break
				}
			}
			i++
		}
		if i >= len(tail) || depth != 0 {
			return h, fmt.Errorf("malformed array header: unterminated '{'")
		}
		fieldsRaw := tail[fieldStart:i]
		i++ // consume '}'
		if fieldsRaw != "" {
			for _, ftok := range splitDelimited(fieldsRaw, h.Delimiter.Byte()) {
				name, err := decodeFieldName(ftok)
				if err != nil {
					return h, err
				}
				h.Fields = append(h.Fields, name)
			}
		}
	}

	if i >= len(tail) || tail[i] != ':' {
		return h, fmt.Errorf("malformed array header: expected ':'")
	}
	i++
	payload := tail[i:]
	if len(payload) > 0 && payload[0] == ' ' {
		payload = payload[1:]
	}
	h.InlinePayload = payload
	h.HasInline = payload != ""
	return h, nil
}

func decodeFieldName(tok string) (string, error) {
	if tok == "" {
		return "", fmt.Errorf("empty field name in array header")
	}
	if tok[0] == '"' {
		if len(tok) < 2 || tok[len(tok)-1] != '"' {
			return "", fmt.Errorf("unterminated quoted field name: %s", tok)
		}
		s, ok := lex.UnescapeString(tok[1 : len(tok)-1])
		if !ok {
			return "", fmt.Errorf("invalid escape in field name %s", tok)
		}
		return s, nil
	}
	return tok, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
