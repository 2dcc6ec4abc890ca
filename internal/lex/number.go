package lex

import (
	"math"
	"strconv"
	"strings"
)

// FormatInt64 renders i in canonical decimal form.
func FormatInt64(i int64) string {
	return strconv.FormatInt(i, 10)
}

// FormatUint64 renders u in canonical decimal form.
func FormatUint64(u uint64) string {
	return strconv.FormatUint(u, 10)
}

// FormatFloat64 renders f in canonical fixed-point form: no exponent, no
// trailing zero, integer-valued floats collapse to integer form, -0
// collapses to "0", non-finite values render as "null".
func FormatFloat64(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	if f == 0 {
		return "0"
	}
	if f == math.Trunc(f) && f >= -9.007199254740992e15 && f <= 9.007199254740992e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}

// ParsedNumber is the result of parsing a canonical number token, carrying
// the i64/u64/f64 variant the value tree expects.
type ParsedNumber struct {
	IsInt   bool // token had no '.', 'e', 'E' and fits int64 or uint64
	I64     int64
	I64OK   bool
	U64     uint64
	U64OK   bool
	F64     float64
}

// ParseNumberToken parses a bare token against the canonical number grammar:
// optional leading '-', then '0' or [1-9][0-9]*, optionally '.' and digits,
// optionally an exponent. Tokens with a disqualifying leading zero (e.g.
// "05") are rejected — callers should then treat the token as a string,
// per the "leading-zero strings are strings" rule.
func ParseNumberToken(tok string) (ParsedNumber, bool) {
	if tok == "" {
		return ParsedNumber{}, false
	}
	i := 0
	neg := false
	if tok[i] == '-' {
		neg = true
		i++
		if i == len(tok) {
			return ParsedNumber{}, false
		}
	}
	intStart := i
	if tok[i] == '0' {
		i++
	} else if tok[i] >= '1' && tok[i] <= '9' {
		i++
		for i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
			i++
		}
	} else {
		return ParsedNumber{}, false
	}
	intEnd := i
	if intEnd == intStart {
		return ParsedNumber{}, false
	}
	isFloat := false
	if i < len(tok) && tok[i] == '.' {
		isFloat = true
		i++
		fracStart := i
		for i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
			i++
		}
		if i == fracStart {
			return ParsedNumber{}, false
		}
	}
	if i < len(tok) && (tok[i] == 'e' || tok[i] == 'E') {
		isFloat = true
		i++
		if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
			i++
		}
		expStart := i
		for i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
			i++
		}
		if i == expStart {
			return ParsedNumber{}, false
		}
	}
	if i != len(tok) {
		return ParsedNumber{}, false
	}

	f, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsInf(f, 0) {
		return ParsedNumber{}, false
	}

	if !isFloat {
		if !neg {
			if u, err := strconv.ParseUint(tok, 10, 64); err == nil {
				pn := ParsedNumber{IsInt: true, F64: f, U64: u, U64OK: true}
				if i64, err := strconv.ParseInt(tok, 10, 64); err == nil {
					pn.I64, pn.I64OK = i64, true
				}
				return pn, true
			}
		} else if i64, err := strconv.ParseInt(tok, 10, 64); err == nil {
			return ParsedNumber{IsInt: true, F64: f, I64: i64, I64OK: true}, true
		}
		// Integer literal outside int64/uint64 range: fall back to float.
		return ParsedNumber{F64: f}, true
	}
	return ParsedNumber{F64: f}, true
}

// ReformatsTo reports whether re-formatting the canonical numeric value
// parsed from tok reproduces tok exactly.
func ReformatsTo(tok string, pn ParsedNumber) bool {
	var out string
	switch {
	case pn.IsInt && pn.I64OK:
		out = FormatInt64(pn.I64)
	case pn.IsInt && pn.U64OK:
		out = FormatUint64(pn.U64)
	default:
		out = FormatFloat64(pn.F64)
	}
	return out == tok
}
