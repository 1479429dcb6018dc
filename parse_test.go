package sfv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-sfv"
)

func TestParseItemBareTypes(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		input string
		want  sfv.BareItem
	}{
		{"42", sfv.Integer(42)},
		{"-42", sfv.Integer(-42)},
		{"0", sfv.Integer(0)},
		{"999999999999999", sfv.Integer(999999999999999)},
		{"-999999999999999", sfv.Integer(-999999999999999)},
		{"4.5", sfv.NewDecimal(45, 1)},
		{"1.123", sfv.NewDecimal(1123, 3)},
		{"1.100", sfv.NewDecimal(1100, 3)},
		{"-0.5", sfv.NewDecimal(-5, 1)},
		{"0.050", sfv.NewDecimal(50, 3)},
		{`"hello world"`, sfv.String("hello world")},
		{`"say \"hi\" \\ back"`, sfv.String(`say "hi" \ back`)},
		{`""`, sfv.String("")},
		{"foo123/456", sfv.Token("foo123/456")},
		{"*a:b", sfv.Token("*a:b")},
		{"a", sfv.Token("a")},
		{":aGVsbG8=:", sfv.Bytes("hello")},
		{"::", sfv.Bytes{}},
		{"?1", sfv.Boolean(true)},
		{"?0", sfv.Boolean(false)},
		{"@1659578233", sfv.Date(1659578233)},
		{"@-1", sfv.Date(-1)},
		{`%"f%c3%bcr"`, sfv.DisplayString("für")},
		{`%""`, sfv.DisplayString("")},
		{`%"%25 done"`, sfv.DisplayString("% done")},
	} {
		item, err := sfv.ParseItem(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, item.Value, "input %q", tt.input)
		assert.Nil(t, item.Params, "input %q", tt.input)
	}
}

func TestParseItemRejects(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"",
		"1000000000000000",  // sixteen digits
		"-1000000000000000", // sixteen digits
		"1.1234",            // four fractional digits
		"1234567890123.0",   // thirteen integral digits
		"1.",                // no digit after the dot
		"-",                 // sign without digits
		"-.5",               // sign without integral digit
		`"unterminated`,
		`"bad \n escape"`,
		"\"ctrl\x07char\"",
		"\"nön-ascii\"",
		":aGVsbG8:",  // missing padding
		":aGVsbG9=:", // nonzero trailing bits
		":aGVs bG8=:",
		":aGVsbG8=",  // missing closing colon
		":_aGVsbG8:", // url-safe alphabet
		"?2",
		"?",
		"@1.5",
		"@",
		`%"uppercase %C3%BC"`,
		`%"lone %ff byte"`,
		`%"truncated %c"`,
		`%"unterminated`,
		"%x",
		"~tilde",
		"1 2",  // trailing junk
		"a, b", // a list is not an item
		"  ",
	} {
		_, err := sfv.ParseItem(input)
		assert.Error(t, err, "input %q", input)

		var perr *sfv.ParseError
		assert.ErrorAs(t, err, &perr, "input %q", input)
	}
}

func TestParseItemParameters(t *testing.T) {
	t.Parallel()

	item, err := sfv.ParseItem(`abc;a=1;b=2;cde_456`)
	require.NoError(t, err)
	assert.Equal(t, sfv.Token("abc"), item.Value)
	require.NotNil(t, item.Params)
	assert.Equal(t, []string{"a", "b", "cde_456"}, item.Params.Keys())

	a, ok := item.Param("a")
	assert.True(t, ok)
	assert.Equal(t, sfv.Integer(1), a)

	// a bare key is boolean true
	cde, ok := item.Param("cde_456")
	assert.True(t, ok)
	assert.Equal(t, sfv.Boolean(true), cde)

	_, ok = item.Param("nope")
	assert.False(t, ok)
}

func TestParseItemParameterLastWins(t *testing.T) {
	t.Parallel()

	item, err := sfv.ParseItem(`1;a=1;b=2;a=3`)
	require.NoError(t, err)
	require.NotNil(t, item.Params)

	// the earlier a=1 is discarded entirely, so a follows b
	assert.Equal(t, []string{"b", "a"}, item.Params.Keys())
	a, _ := item.Param("a")
	assert.Equal(t, sfv.Integer(3), a)
}

func TestParseList(t *testing.T) {
	t.Parallel()

	list, err := sfv.ParseList(`sugar, tea, rum`)
	require.NoError(t, err)
	assert.Equal(t, sfv.List{
		sfv.Item{Value: sfv.Token("sugar")},
		sfv.Item{Value: sfv.Token("tea")},
		sfv.Item{Value: sfv.Token("rum")},
	}, list)

	// whitespace between members is free-form on input
	list, err = sfv.ParseList("a,\tb , c")
	require.NoError(t, err)
	assert.Len(t, list, 3)

	// the empty string is how an unsent header reads
	list, err = sfv.ParseList("")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestParseListInnerLists(t *testing.T) {
	t.Parallel()

	list, err := sfv.ParseList(`("foo" "bar"), ("baz"), (), (1 2);x=3`)
	require.NoError(t, err)
	require.Len(t, list, 4)

	first, ok := list[0].(sfv.InnerList)
	require.True(t, ok)
	assert.Equal(t, []sfv.Item{
		{Value: sfv.String("foo")},
		{Value: sfv.String("bar")},
	}, first.Items)
	assert.Nil(t, first.Params)

	empty, ok := list[2].(sfv.InnerList)
	require.True(t, ok)
	assert.Empty(t, empty.Items)

	last, ok := list[3].(sfv.InnerList)
	require.True(t, ok)
	x, found := last.Param("x")
	assert.True(t, found)
	assert.Equal(t, sfv.Integer(3), x)
}

func TestParseListRejects(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"a,,b", // a double comma never drops a member
		"a,",   // nor does a trailing comma
		"a, b,",
		",a",
		"(a b", // missing closing paren
		"(a",
		"(",
		"(a,b)", // commas do not separate inner list items
		"(a;x=1 b",
		"a b", // missing comma
		"  ",  // whitespace is not an empty list
		"a, 1000000000000000",
	} {
		_, err := sfv.ParseList(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseDictionary(t *testing.T) {
	t.Parallel()

	dict, err := sfv.ParseDictionary(`en="Applepie", da=:w4ZibGV0w6ZydGUh:`)
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "da"}, dict.Keys())

	en, ok := dict.Get("en")
	require.True(t, ok)
	assert.Equal(t, sfv.Item{Value: sfv.String("Applepie")}, en)

	// empty input is an empty dictionary, the unsent header
	dict, err = sfv.ParseDictionary("")
	require.NoError(t, err)
	assert.Equal(t, 0, dict.Len())
}

func TestParseDictionaryBooleanShorthand(t *testing.T) {
	t.Parallel()

	dict, err := sfv.ParseDictionary(`a, b=?0`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, dict.Keys())

	a, _ := dict.Get("a")
	assert.Equal(t, sfv.Item{Value: sfv.Boolean(true)}, a)

	b, _ := dict.Get("b")
	assert.Equal(t, sfv.Item{Value: sfv.Boolean(false)}, b)
}

func TestParseDictionaryBareKeyParameters(t *testing.T) {
	t.Parallel()

	// parameters after a bare key attach to the implicit true item
	dict, err := sfv.ParseDictionary(`a;x=1;y, b=2`)
	require.NoError(t, err)

	a, ok := dict.Get("a")
	require.True(t, ok)
	item, ok := a.(sfv.Item)
	require.True(t, ok)
	assert.Equal(t, sfv.Boolean(true), item.Value)

	x, _ := item.Param("x")
	assert.Equal(t, sfv.Integer(1), x)
	y, _ := item.Param("y")
	assert.Equal(t, sfv.Boolean(true), y)
}

func TestParseDictionaryDuplicateKeys(t *testing.T) {
	t.Parallel()

	// the last occurrence determines both value and position
	dict, err := sfv.ParseDictionary(`a=1, b=2, a=3`)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, dict.Keys())

	a, _ := dict.Get("a")
	assert.Equal(t, sfv.Item{Value: sfv.Integer(3)}, a)
	b, _ := dict.Get("b")
	assert.Equal(t, sfv.Item{Value: sfv.Integer(2)}, b)
}

func TestParseDictionaryInnerListValues(t *testing.T) {
	t.Parallel()

	dict, err := sfv.ParseDictionary(`rating=1.5, feelings=(joy sadness)`)
	require.NoError(t, err)

	rating, _ := dict.Get("rating")
	assert.Equal(t, sfv.Item{Value: sfv.NewDecimal(15, 1)}, rating)

	feelings, ok := dict.Get("feelings")
	require.True(t, ok)
	il, ok := feelings.(sfv.InnerList)
	require.True(t, ok)
	assert.Equal(t, []sfv.Item{
		{Value: sfv.Token("joy")},
		{Value: sfv.Token("sadness")},
	}, il.Items)
}

func TestParseDictionaryRejects(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"a=1,",
		"a=1,,b=2",
		"a=",
		"=1",
		"A=1",   // keys are lowercase
		"a=1 2", // missing comma
		"a=(1",
		"  ",
	} {
		_, err := sfv.ParseDictionary(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseErrorReporting(t *testing.T) {
	t.Parallel()

	_, err := sfv.ParseList("a, b, ~c")
	require.Error(t, err)

	var perr *sfv.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 6, perr.Offset)
	assert.Contains(t, perr.Context, "~c")
	assert.Contains(t, perr.Error(), "offset 6")
}

func TestWithMaxLength(t *testing.T) {
	t.Parallel()

	_, err := sfv.ParseList("a, b, c", sfv.WithMaxLength(3))
	assert.Error(t, err)

	// conformant input below the cap is unaffected
	list, err := sfv.ParseList("a, b, c", sfv.WithMaxLength(100))
	assert.NoError(t, err)
	assert.Len(t, list, 3)

	_, err = sfv.ParseItem("12345", sfv.WithMaxLength(4))
	assert.Error(t, err)
	_, err = sfv.ParseDictionary("a=1", sfv.WithMaxLength(2))
	assert.Error(t, err)
}
