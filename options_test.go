package toon

import (
	"testing"

	"github.com/bnomei/toon-go/internal/lex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEncodeOptions(t *testing.T) {
	o := DefaultEncodeOptions()
	assert.Equal(t, 2, o.Indent)
	assert.Equal(t, ",", o.Delimiter)
	assert.Equal(t, "off", o.KeyFolding)
}

func TestApplyEncodeOptionsOverrides(t *testing.T) {
	o := applyEncodeOptions([]EncodeOption{WithIndent(4), WithDelimiter("|"), WithKeyFolding("safe")})
	assert.Equal(t, 4, o.Indent)
	assert.Equal(t, "|", o.Delimiter)
	assert.Equal(t, "safe", o.KeyFolding)
}

func TestEncodeOptionsToInternalRejectsBadDelimiter(t *testing.T) {
	o := EncodeOptions{Delimiter: "oops"}
	_, err := o.toInternal()
	assert.Error(t, err)
}

func TestEncodeOptionsToInternalAcceptsDelimiterName(t *testing.T) {
	o := EncodeOptions{Delimiter: "pipe"}
	e, err := o.toInternal()
	require.NoError(t, err)
	assert.Equal(t, lex.Pipe, e.Delimiter)
}

func TestDefaultDecodeOptions(t *testing.T) {
	o := DefaultDecodeOptions()
	assert.True(t, o.Strict)
	assert.Equal(t, "off", o.ExpandPaths)
}

func TestApplyDecodeOptionsOverrides(t *testing.T) {
	o := applyDecodeOptions([]DecodeOption{WithStrict(false), WithExpandPaths("safe"), WithIndentSize(4)})
	assert.False(t, o.Strict)
	assert.Equal(t, "safe", o.ExpandPaths)
	assert.Equal(t, 4, o.Indent)
}

func TestDecodeOptionsToInternalRejectsBadExpandPaths(t *testing.T) {
	o := DecodeOptions{ExpandPaths: "loud"}
	_, err := o.toInternal()
	assert.Error(t, err)
}
