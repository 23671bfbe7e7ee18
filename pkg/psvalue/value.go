// Package psvalue parses PowerShell value literals as they appear on a
// check command line into typed values which marshal to the matching
// native JSON type.
//
// Supported literals are plain scalars (strings, numbers, $True/$False),
// single and double quoted strings with backtick escapes, arrays in the
// form [a,b], @(a,b) or a bare comma sequence a,b (nesting allowed) and
// parenthesized subexpressions like (ConvertTo-IcingaSecureString 'x')
// which pass through as a single string.
package psvalue

import (
	"strconv"

	json "github.com/goccy/go-json"
)

// Kind describes which variant a Value holds.
type Kind uint8

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	}

	return "unknown"
}

// Value is a single typed argument value.
type Value struct {
	kind  Kind
	str   string // text for strings, canonical literal for numbers
	truth bool
	items []Value
}

// StringValue wraps the given text.
func StringValue(text string) Value {
	return Value{kind: KindString, str: text}
}

// BoolValue wraps the given truth value.
func BoolValue(truth bool) Value {
	return Value{kind: KindBool, truth: truth}
}

// ArrayValue wraps the given list of values.
func ArrayValue(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}

	return Value{kind: KindArray, items: items}
}

// NumberValue parses the literal as integer or float and returns the
// numeric value in canonical form. The second return value is false if
// the literal is not a number.
func NumberValue(literal string) (Value, bool) {
	if unsigned, err := strconv.ParseUint(literal, 10, 64); err == nil {
		return Value{kind: KindNumber, str: strconv.FormatUint(unsigned, 10)}, true
	}
	if signed, err := strconv.ParseInt(literal, 10, 64); err == nil {
		return Value{kind: KindNumber, str: strconv.FormatInt(signed, 10)}, true
	}
	if float, err := strconv.ParseFloat(literal, 64); err == nil {
		return Value{kind: KindNumber, str: strconv.FormatFloat(float, 'g', -1, 64)}, true
	}

	return Value{}, false
}

// Kind returns the variant of this value.
func (v Value) Kind() Kind {
	return v.kind
}

// MarshalJSON emits the value as its native JSON type.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindBool:
		return strconv.AppendBool(nil, v.truth), nil
	case KindNumber:
		return []byte(v.str), nil
	case KindArray:
		buf := []byte{'['}
		for i, item := range v.items {
			if i > 0 {
				buf = append(buf, ',')
			}
			enc, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf = append(buf, enc...)
		}

		return append(buf, ']'), nil
	default:
		return json.Marshal(v.str)
	}
}
