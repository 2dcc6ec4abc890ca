package toon

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type address struct {
	City string `toon:"city"`
	Zip  string `toon:"zip,omitempty"`
}

func TestMarshalToStringStruct(t *testing.T) {
	out, err := MarshalToString(address{City: "Berlin"})
	require.NoError(t, err)
	assert.Equal(t, "city: Berlin", out)
}

func TestMarshalWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Marshal(map[string]interface{}{"a": 1}, &buf))
	assert.Equal(t, "a: 1", buf.String())
}

func TestMarshalToBytes(t *testing.T) {
	b, err := MarshalToBytes(map[string]interface{}{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, []byte("a: 1"), b)
}

func TestMarshalCanonicalSortsKeys(t *testing.T) {
	out, err := MarshalCanonical(map[string]interface{}{"b": 1, "a": 2})
	require.NoError(t, err)
	assert.Equal(t, "a: 2\nb: 1", out)
}

func TestMarshalToStringWithOptions(t *testing.T) {
	arr := []int{1, 2, 3}
	out, err := MarshalToString(map[string]interface{}{"items": arr}, WithDelimiter("|"))
	require.NoError(t, err)
	assert.Equal(t, "items[3|]: 1|2|3", out)
}

func TestMarshalToStringRejectsInvalidOption(t *testing.T) {
	_, err := MarshalToString(map[string]interface{}{"a": 1}, WithDelimiter("nope"))
	assert.Error(t, err)
}
