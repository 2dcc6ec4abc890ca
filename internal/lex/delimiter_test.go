package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelimiterMarker(t *testing.T) {
	assert.Equal(t, "", Comma.Marker())
	assert.Equal(t, "\t", Tab.Marker())
	assert.Equal(t, "|", Pipe.Marker())
}

func TestParseDelimiter(t *testing.T) {
	d, ok := ParseDelimiter('|')
	assert.True(t, ok)
	assert.Equal(t, Pipe, d)

	_, ok = ParseDelimiter('x')
	assert.False(t, ok)
}

func TestParseDelimiterName(t *testing.T) {
	cases := map[string]Delimiter{
		",":     Comma,
		"comma": Comma,
		"|":     Pipe,
		"pipe":  Pipe,
		"tab":   Tab,
		"\t":    Tab,
	}
	for name, want := range cases {
		d, ok := ParseDelimiterName(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, d, name)
	}
	_, ok := ParseDelimiterName("semicolon")
	assert.False(t, ok)
}
