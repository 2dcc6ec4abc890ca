package bridge

import (
	"testing"

	"github.com/bnomei/toon-go/internal/tval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name string `toon:"name"`
	Age  int    `toon:"age,omitempty"`
	Tags []string
	skip int //nolint:unused
}

func TestToValueScalarsAndMaps(t *testing.T) {
	v, err := ToValue(map[string]interface{}{"a": 1, "b": "s", "c": true, "d": nil})
	require.NoError(t, err)
	obj := v.(*tval.Object)
	a, _ := obj.Get("a")
	assert.Equal(t, uint64(1), a)
	b, _ := obj.Get("b")
	assert.Equal(t, "s", b)
	c, _ := obj.Get("c")
	assert.Equal(t, true, c)
	d, _ := obj.Get("d")
	assert.Nil(t, d)
}

func TestToValueStruct(t *testing.T) {
	v, err := ToValue(person{Name: "Ada", Age: 30, Tags: []string{"x", "y"}})
	require.NoError(t, err)
	obj := v.(*tval.Object)
	name, _ := obj.Get("name")
	assert.Equal(t, "Ada", name)
	age, _ := obj.Get("age")
	assert.Equal(t, uint64(30), age)
	tags, _ := obj.Get("Tags")
	arr := tags.(*tval.Array)
	assert.Equal(t, tval.Array{"x", "y"}, *arr)
}

func TestToValueOmitemptyDrops(t *testing.T) {
	v, err := ToValue(person{Name: "Ada"})
	require.NoError(t, err)
	obj := v.(*tval.Object)
	_, ok := obj.Get("age")
	assert.False(t, ok)
}

func TestToValueByteSliceBecomesArrayOfUints(t *testing.T) {
	v, err := ToValue([]byte{1, 2, 3})
	require.NoError(t, err)
	arr := v.(*tval.Array)
	assert.Equal(t, tval.Array{uint64(1), uint64(2), uint64(3)}, *arr)
}

func TestFromValueIntoStruct(t *testing.T) {
	obj := tval.NewObject()
	obj.Set("name", "Ada")
	obj.Set("age", int64(30))

	var p person
	require.NoError(t, FromValue(obj, &p))
	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, 30, p.Age)
}

func TestFromValueIntoMap(t *testing.T) {
	obj := tval.NewObject()
	obj.Set("x", int64(1))
	obj.Set("y", int64(2))

	var m map[string]int
	require.NoError(t, FromValue(obj, &m))
	assert.Equal(t, map[string]int{"x": 1, "y": 2}, m)
}

func TestFromValueIntoSlice(t *testing.T) {
	arr := tval.Array{int64(1), int64(2), int64(3)}
	var out []int
	require.NoError(t, FromValue(&arr, &out))
	assert.Equal(t, []int{1, 2, 3}, out)
}

func TestFromValueOverflowErrors(t *testing.T) {
	var small int8
	err := FromValue(int64(1000), &small)
	assert.Error(t, err)
}

func TestFromValueIntoInterface(t *testing.T) {
	obj := tval.NewObject()
	obj.Set("a", int64(1))

	var v interface{}
	require.NoError(t, FromValue(obj, &v))
	m, ok := v.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, int64(1), m["a"])
}

func TestFromValueRejectsNonPointer(t *testing.T) {
	var p person
	err := FromValue(tval.NewObject(), p)
	assert.Error(t, err)
}
