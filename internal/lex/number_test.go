package lex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat64(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{-0.0, "0"},
		{1, "1"},
		{1.5, "1.5"},
		{1000000, "1000000"},
		{math.NaN(), "null"},
		{math.Inf(1), "null"},
		{math.Inf(-1), "null"},
		{-3.25, "-3.25"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatFloat64(c.in))
	}
}

func TestParseNumberTokenRejectsLeadingZero(t *testing.T) {
	_, ok := ParseNumberToken("05")
	assert.False(t, ok)
}

func TestParseNumberTokenAcceptsZero(t *testing.T) {
	pn, ok := ParseNumberToken("0")
	assert.True(t, ok)
	assert.True(t, pn.IsInt)
	assert.Equal(t, int64(0), pn.I64)
}

func TestParseNumberTokenNegative(t *testing.T) {
	pn, ok := ParseNumberToken("-42")
	assert.True(t, ok)
	assert.True(t, pn.I64OK)
	assert.Equal(t, int64(-42), pn.I64)
	assert.False(t, pn.U64OK)
}

func TestParseNumberTokenLargeUnsigned(t *testing.T) {
	pn, ok := ParseNumberToken("18446744073709551615") // math.MaxUint64
	assert.True(t, ok)
	assert.True(t, pn.U64OK)
	assert.False(t, pn.I64OK)
	assert.Equal(t, uint64(math.MaxUint64), pn.U64)
}

func TestParseNumberTokenFloat(t *testing.T) {
	pn, ok := ParseNumberToken("1.5e6")
	assert.True(t, ok)
	assert.False(t, pn.IsInt)
	assert.Equal(t, 1.5e6, pn.F64)
}

func TestParseNumberTokenRejectsGarbage(t *testing.T) {
	for _, tok := range []string{"", "-", "1.", ".5", "1e", "1-2", "01"} {
		_, ok := ParseNumberToken(tok)
		assert.False(t, ok, "token %q should not parse", tok)
	}
}

func TestReformatsTo(t *testing.T) {
	pn, ok := ParseNumberToken("1000000")
	assert.True(t, ok)
	assert.True(t, ReformatsTo("1000000", pn))

	pn2, ok := ParseNumberToken("1e6")
	assert.True(t, ok)
	assert.False(t, ReformatsTo("1e6", pn2))
}
