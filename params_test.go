package sfv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-sfv"
)

func TestParameters(t *testing.T) {
	t.Parallel()

	ps := sfv.NewParameters()
	assert.Equal(t, 0, ps.Len())

	ps.Set("a", sfv.Integer(1))
	ps.Set("b", sfv.Integer(2))
	ps.Set("c", sfv.Integer(3))
	assert.Equal(t, 3, ps.Len())
	assert.Equal(t, []string{"a", "b", "c"}, ps.Keys())

	v, ok := ps.Get("b")
	assert.True(t, ok)
	assert.Equal(t, sfv.Integer(2), v)

	_, ok = ps.Get("z")
	assert.False(t, ok)

	// setting an existing key moves it to the end
	ps.Set("a", sfv.Integer(9))
	assert.Equal(t, []string{"b", "c", "a"}, ps.Keys())
	v, _ = ps.Get("a")
	assert.Equal(t, sfv.Integer(9), v)

	ps.Delete("c")
	assert.Equal(t, []string{"b", "a"}, ps.Keys())
	ps.Delete("nope")
	assert.Equal(t, 2, ps.Len())
}

func TestParametersNilSafety(t *testing.T) {
	t.Parallel()

	var ps *sfv.Parameters
	assert.Equal(t, 0, ps.Len())
	assert.Nil(t, ps.Keys())

	_, ok := ps.Get("a")
	assert.False(t, ok)

	assert.NotPanics(t, func() { ps.Delete("a") })
	assert.Nil(t, ps.Clone())
}

func TestParametersClone(t *testing.T) {
	t.Parallel()

	ps := sfv.NewParameters()
	ps.Set("a", sfv.Integer(1))
	ps.Set("b", sfv.Token("x"))

	dup := ps.Clone()
	assert.Equal(t, ps.Keys(), dup.Keys())

	dup.Set("c", sfv.Boolean(true))
	dup.Set("a", sfv.Integer(5))
	assert.Equal(t, 2, ps.Len())
	a, _ := ps.Get("a")
	assert.Equal(t, sfv.Integer(1), a)
}

func TestDictionaryOps(t *testing.T) {
	t.Parallel()

	d := sfv.NewDictionary()
	assert.Equal(t, 0, d.Len())

	d.Set("a", sfv.Item{Value: sfv.Integer(1)})
	d.Set("b", sfv.Item{Value: sfv.Integer(2)})
	assert.Equal(t, []string{"a", "b"}, d.Keys())

	// replacing a key moves it to the end with the new member
	d.Set("a", sfv.InnerList{Items: []sfv.Item{{Value: sfv.Integer(3)}}})
	assert.Equal(t, []string{"b", "a"}, d.Keys())

	m, ok := d.Get("a")
	assert.True(t, ok)
	assert.IsType(t, sfv.InnerList{}, m)

	d.Delete("b")
	assert.Equal(t, []string{"a"}, d.Keys())

	var nilDict *sfv.Dictionary
	assert.Equal(t, 0, nilDict.Len())
	assert.Nil(t, nilDict.Keys())
	_, ok = nilDict.Get("a")
	assert.False(t, ok)
	assert.NotPanics(t, func() { nilDict.Delete("a") })
}
