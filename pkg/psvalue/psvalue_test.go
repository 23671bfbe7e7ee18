package psvalue

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexer(t *testing.T) {
	for _, check := range []struct {
		input  string
		expect []token
	}{
		{"[]", []token{{kind: tokenArrayBegin}, {kind: tokenArrayEnd}}},
		{"@()", []token{{kind: tokenArrayOpBegin}, {kind: tokenArrayOpEnd}}},
		{"abc", []token{{kind: tokenString, text: "abc"}}},
		{"abc,123", []token{
			{kind: tokenString, text: "abc"},
			{kind: tokenComma},
			{kind: tokenNumber, text: "123"},
		}},
		{"$False,$True", []token{
			{kind: tokenBool, truth: false},
			{kind: tokenComma},
			{kind: tokenBool, truth: true},
		}},
		{"[foo,123]", []token{
			{kind: tokenArrayBegin},
			{kind: tokenString, text: "foo"},
			{kind: tokenComma},
			{kind: tokenNumber, text: "123"},
			{kind: tokenArrayEnd},
		}},
		{`@("foo",123)`, []token{
			{kind: tokenArrayOpBegin},
			{kind: tokenString, text: "foo"},
			{kind: tokenComma},
			{kind: tokenNumber, text: "123"},
			{kind: tokenArrayOpEnd},
		}},
		{`"abc,123" , 'def,456'`, []token{
			{kind: tokenString, text: "abc,123"},
			{kind: tokenComma},
			{kind: tokenString, text: "def,456"},
		}},
		{"`\"`'```[`]", []token{{kind: tokenString, text: `"'` + "`" + `[]`}}},
	} {
		tokens, err := lex(check.input)
		require.NoErrorf(t, err, "lex %s", check.input)
		assert.Equalf(t, check.expect, tokens, "lex %s", check.input)
	}
}

func TestLexerErrors(t *testing.T) {
	for _, input := range []string{`"unterminated`, `'unterminated`, `(Get-Foo`} {
		_, err := lex(input)
		assert.Errorf(t, err, "lex %s must fail", input)
	}
}

func TestNumberValue(t *testing.T) {
	for _, check := range []struct {
		literal string
		expect  string
	}{
		{"123", "123"},
		{"-123", "-123"},
		{"123.456", "123.456"},
		{"-123.456", "-123.456"},
	} {
		value, ok := NumberValue(check.literal)
		require.Truef(t, ok, "number %s", check.literal)
		enc, err := json.Marshal(value)
		require.NoError(t, err)
		assert.Equalf(t, check.expect, string(enc), "number %s", check.literal)
	}

	_, ok := NumberValue("-+1")
	assert.False(t, ok, "-+1 is not a number")
}

func TestParse(t *testing.T) {
	for _, check := range []struct {
		input  string
		expect Value
		json   string
	}{
		{`foo`, StringValue("foo"), `"foo"`},
		{`"foo"`, StringValue("foo"), `"foo"`},
		{`123`, mustNumber(t, "123"), `123`},
		{`foo,123`, ArrayValue(StringValue("foo"), mustNumber(t, "123")), `["foo",123]`},
		{`"foo,123"`, StringValue("foo,123"), `"foo,123"`},
		{`["foo",123]`, ArrayValue(StringValue("foo"), mustNumber(t, "123")), `["foo",123]`},
		{`@("foo",123)`, ArrayValue(StringValue("foo"), mustNumber(t, "123")), `["foo",123]`},
		{
			`[ foo , [ 123 , 456 ] ]`,
			ArrayValue(StringValue("foo"), ArrayValue(mustNumber(t, "123"), mustNumber(t, "456"))),
			`["foo",[123,456]]`,
		},
		{`$False,$True`, ArrayValue(BoolValue(false), BoolValue(true)), `[false,true]`},
		{`$True`, BoolValue(true), `true`},
		{`'"hello, world"'`, StringValue(`"hello, world"`), `"\"hello, world\""`},
		{"\"literal `\" doublequote\"", StringValue(`literal " doublequote`), `"literal \" doublequote"`},
		{
			`(ConvertTo-IcingaSecureString 'my string')`,
			StringValue(`(ConvertTo-IcingaSecureString 'my string')`),
			`"(ConvertTo-IcingaSecureString 'my string')"`,
		},
	} {
		value, err := Parse(check.input)
		require.NoErrorf(t, err, "parse %s", check.input)
		assert.Equalf(t, check.expect, value, "parse %s", check.input)
		enc, err := json.Marshal(value)
		require.NoErrorf(t, err, "marshal %s", check.input)
		assert.Equalf(t, check.json, string(enc), "marshal %s", check.input)
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("")
	assert.Error(t, err, "empty value")

	_, err = Parse(`'unterminated`)
	assert.Error(t, err, "unterminated quote")
}

func mustNumber(t *testing.T, literal string) Value {
	t.Helper()
	value, ok := NumberValue(literal)
	require.Truef(t, ok, "number %s", literal)

	return value
}
