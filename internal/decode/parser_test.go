package decode

import (
	"testing"

	"github.com/bnomei/toon-go/internal/opt"
	"github.com/bnomei/toon-go/internal/tval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, input string, o opt.Decode) tval.Value {
	t.Helper()
	v, err := Decode(input, o)
	require.NoError(t, err)
	return v
}

func getObj(t *testing.T, v tval.Value) *tval.Object {
	t.Helper()
	o, ok := v.(*tval.Object)
	require.True(t, ok, "expected object, got %T", v)
	return o
}

func TestDecodePipeDelimiterKeepsCommaLiteral(t *testing.T) {
	v := mustDecode(t, "items[2|]: a,b|c", opt.DefaultDecode())
	obj := getObj(t, v)
	items, ok := obj.Get("items")
	require.True(t, ok)
	arr, ok := items.(*tval.Array)
	require.True(t, ok)
	require.Len(t, *arr, 2)
	assert.Equal(t, "a,b", (*arr)[0])
	assert.Equal(t, "c", (*arr)[1])
}

func TestDecodePathExpansionSafe(t *testing.T) {
	o := opt.DefaultDecode()
	o.ExpandPaths = opt.PathExpansionSafe
	v := mustDecode(t, "a.b: 1\na.c: 2", o)
	obj := getObj(t, v)
	a, ok := obj.Get("a")
	require.True(t, ok)
	aObj := getObj(t, a)
	b, _ := aObj.Get("b")
	c, _ := aObj.Get("c")
	assert.Equal(t, int64(1), b)
	assert.Equal(t, int64(2), c)
}

func TestDecodeInlineArray(t *testing.T) {
	v := mustDecode(t, "items[3]: 3,2,1", opt.DefaultDecode())
	obj := getObj(t, v)
	items, _ := obj.Get("items")
	arr := items.(*tval.Array)
	assert.Equal(t, tval.Array{int64(3), int64(2), int64(1)}, *arr)
}

func TestDecodeTabularArray(t *testing.T) {
	v := mustDecode(t, "items[2]{a,b}:\n  1,2\n  3,4", opt.DefaultDecode())
	obj := getObj(t, v)
	items, _ := obj.Get("items")
	arr := items.(*tval.Array)
	require.Len(t, *arr, 2)
	row0 := getObj(t, (*arr)[0])
	a, _ := row0.Get("a")
	b, _ := row0.Get("b")
	assert.Equal(t, int64(1), a)
	assert.Equal(t, int64(2), b)
}

func TestDecodeListFormMixedShapes(t *testing.T) {
	v := mustDecode(t, "items[2]:\n  - a: 1\n  - x", opt.DefaultDecode())
	obj := getObj(t, v)
	items, _ := obj.Get("items")
	arr := items.(*tval.Array)
	require.Len(t, *arr, 2)
	row0 := getObj(t, (*arr)[0])
	a, _ := row0.Get("a")
	assert.Equal(t, int64(1), a)
	assert.Equal(t, "x", (*arr)[1])
}

func TestDecodeListItemMultiEntryObjectRoundTrip(t *testing.T) {
	v := mustDecode(t, "items[2]:\n  - a: 1\n    b: 2\n  - x", opt.DefaultDecode())
	obj := getObj(t, v)
	items, _ := obj.Get("items")
	arr := items.(*tval.Array)
	require.Len(t, *arr, 2)
	row0 := getObj(t, (*arr)[0])
	a, _ := row0.Get("a")
	b, _ := row0.Get("b")
	assert.Equal(t, int64(1), a)
	assert.Equal(t, int64(2), b)
	assert.Equal(t, "x", (*arr)[1])
}

func TestDecodeLeadingZeroTokenIsString(t *testing.T) {
	v := mustDecode(t, "num: 05", opt.DefaultDecode())
	obj := getObj(t, v)
	num, _ := obj.Get("num")
	assert.Equal(t, "05", num)
}

func TestDecodeStrictRejectsArrayLengthMismatch(t *testing.T) {
	_, err := Decode("items[2]: 1", opt.DefaultDecode())
	assert.Error(t, err)
}

func TestDecodeNonStrictPadsShortTabularRow(t *testing.T) {
	o := opt.DefaultDecode()
	o.Strict = false
	v, err := Decode("items[2]{a,b}:\n  1,2\n  3", o)
	require.NoError(t, err)
	obj := getObj(t, v)
	items, _ := obj.Get("items")
	arr := items.(*tval.Array)
	row1 := getObj(t, (*arr)[1])
	a, _ := row1.Get("a")
	b, _ := row1.Get("b")
	assert.Equal(t, int64(3), a)
	assert.Equal(t, "", b)
}

func TestDecodeEmptyArray(t *testing.T) {
	v := mustDecode(t, "items[0]:", opt.DefaultDecode())
	obj := getObj(t, v)
	items, _ := obj.Get("items")
	arr := items.(*tval.Array)
	assert.Len(t, *arr, 0)
}

func TestDecodeEmptyObjectListItem(t *testing.T) {
	v := mustDecode(t, "items[1]:\n  -", opt.DefaultDecode())
	obj := getObj(t, v)
	items, _ := obj.Get("items")
	arr := items.(*tval.Array)
	require.Len(t, *arr, 1)
	item := getObj(t, (*arr)[0])
	assert.Equal(t, 0, item.Len())
}

func TestDecodeRootScalar(t *testing.T) {
	v := mustDecode(t, "42", opt.DefaultDecode())
	assert.Equal(t, int64(42), v)
}

func TestDecodeStrictRejectsTabInIndent(t *testing.T) {
	_, err := Decode("a:\n\tb: 1", opt.DefaultDecode())
	assert.Error(t, err)
}
