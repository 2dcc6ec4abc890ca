package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEncodeProducesTOON(t *testing.T) {
	cfg := &config{delimiter: ",", indent: 2, keyFolding: "off"}
	out, err := runEncode(cfg, []byte(`{"a":1,"b":2}`))
	require.NoError(t, err)
	assert.Equal(t, "a: 1\nb: 2\n", string(out))
}

func TestRunDecodeProducesJSON(t *testing.T) {
	cfg := &config{indent: 2, expandPaths: "off"}
	out, err := runDecode(cfg, []byte("a: 1\nb: 2"))
	require.NoError(t, err)
	var v map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &v))
	assert.Equal(t, float64(1), v["a"])
	assert.Equal(t, float64(2), v["b"])
}

func TestDetectJSON(t *testing.T) {
	assert.True(t, detectJSON([]byte(`{"a":1}`)))
	assert.True(t, detectJSON([]byte(`[1,2]`)))
	assert.True(t, detectJSON([]byte(`  42`)))
	assert.False(t, detectJSON([]byte("")))
	assert.False(t, detectJSON([]byte("a: 1")))
}

func TestLooksLikeTOON(t *testing.T) {
	assert.True(t, looksLikeTOON("data.toon"))
	assert.False(t, looksLikeTOON("data.json"))
}

func TestDelimiterName(t *testing.T) {
	assert.Equal(t, "tab", delimiterName("tab"))
	assert.Equal(t, "|", delimiterName("pipe"))
	assert.Equal(t, ",", delimiterName("x"))
}

func TestRunEncodeRejectsInvalidJSON(t *testing.T) {
	cfg := &config{delimiter: ",", indent: 2}
	_, err := runEncode(cfg, []byte(`not json`))
	assert.Error(t, err)
}

func TestRunDecodeRejectsMalformedTOON(t *testing.T) {
	cfg := &config{indent: 2}
	_, err := runDecode(cfg, []byte("items[2]: 1"))
	assert.Error(t, err)
}

type statsRecorder struct {
	msg  string
	args []any
}

func (s *statsRecorder) Info(msg string, args ...any) {
	s.msg = msg
	s.args = args
}

func TestPrintStatsReportsReduction(t *testing.T) {
	r := &statsRecorder{}
	printStats(r, []byte(`{"a":1}`), []byte("a: 1"), true)
	assert.Equal(t, "size comparison", r.msg)
	// 7 JSON bytes vs 4 TOON bytes: 100 * (1 - 4/7) ≈ 42.857.
	require.Len(t, r.args, 6)
	assert.Equal(t, "reductionPercent", r.args[4])
	assert.InDelta(t, 42.857, r.args[5], 0.001)
}
