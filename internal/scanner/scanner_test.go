package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanSplitsLinesAndCountsNonBlank(t *testing.T) {
	lines, nonBlank, err := Scan("a: 1\n\nb: 2", 2, true)
	require.NoError(t, err)
	assert.Equal(t, 3, len(lines))
	assert.Equal(t, 2, nonBlank)
	assert.True(t, lines[1].Blank)
}

func TestScanIndentLevel(t *testing.T) {
	lines, _, err := Scan("a:\n  b: 1\n    c: 2", 2, true)
	require.NoError(t, err)
	assert.Equal(t, 0, lines[0].Level)
	assert.Equal(t, 1, lines[1].Level)
	assert.Equal(t, 2, lines[2].Level)
}

func TestScanStrictRejectsTab(t *testing.T) {
	_, _, err := Scan("a:\n\tb: 1", 2, true)
	assert.Error(t, err)
}

func TestScanNonStrictExpandsTab(t *testing.T) {
	lines, _, err := Scan("a:\n\tb: 1", 2, false)
	require.NoError(t, err)
	assert.Equal(t, 2, lines[1].Indent)
}

func TestScanStrictRejectsMisalignedIndent(t *testing.T) {
	_, _, err := Scan("a:\n   b: 1", 2, true)
	assert.Error(t, err)
}

func TestClassifyKinds(t *testing.T) {
	lines, _, err := Scan("a: 1\n- x\n-", 2, true)
	require.NoError(t, err)
	assert.Equal(t, KindKeyValue, lines[0].Kind)
	assert.Equal(t, KindArrayItem, lines[1].Kind)
	assert.Equal(t, KindEmptyItem, lines[2].Kind)
}

func TestLineTrimmedAndSpan(t *testing.T) {
	input := "a:\n  b: 1"
	lines, _, err := Scan(input, 2, true)
	require.NoError(t, err)
	assert.Equal(t, "b: 1", lines[1].Trimmed(input))
	start, end := lines[1].TrimmedSpan(input)
	assert.Equal(t, "b: 1", input[start:end])
}

func TestScanStripsTrailingCR(t *testing.T) {
	lines, _, err := Scan("a: 1\r\nb: 2", 2, true)
	require.NoError(t, err)
	assert.Equal(t, "a: 1", lines[0].Text("a: 1\r\nb: 2"))
}
