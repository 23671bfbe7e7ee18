package psvalue

import (
	"fmt"
)

// Parse converts one command line token into a typed value.
func Parse(input string) (Value, error) {
	tokens, err := lex(input)
	if err != nil {
		return Value{}, fmt.Errorf("lexing %q: %s", input, err.Error())
	}
	prs := &parser{tokens: tokens}
	value, ok := prs.parseArgument()
	if !ok {
		return Value{}, fmt.Errorf("cannot parse value %q", input)
	}

	return value, nil
}

type parser struct {
	tokens []token
	pos    int
}

// argument : sequence_by_comma_op
//          | array
//          | scalar
func (prs *parser) parseArgument() (Value, bool) {
	if value, ok := prs.parseSequenceByCommaOp(); ok {
		return value, true
	}
	if value, ok := prs.parseArray(); ok {
		return value, true
	}

	return prs.parseScalar()
}

// array : ARRAY_BEGIN sequence ARRAY_END
//       | ARRAY_OP_BEGIN sequence ARRAY_OP_END
//       | empty variants of both
func (prs *parser) parseArray() (Value, bool) {
	backtrack := prs.pos
	switch {
	case prs.accept(tokenArrayBegin):
		items, _ := prs.parseSequence()
		if prs.accept(tokenArrayEnd) {
			return ArrayValue(items...), true
		}
	case prs.accept(tokenArrayOpBegin):
		items, _ := prs.parseSequence()
		if prs.accept(tokenArrayOpEnd) {
			return ArrayValue(items...), true
		}
	}
	prs.pos = backtrack

	return Value{}, false
}

// sequence_by_comma_op : element COMMA [ sequence ]
//
// a bare comma sequence at the top level becomes an array
func (prs *parser) parseSequenceByCommaOp() (Value, bool) {
	backtrack := prs.pos
	first, ok := prs.parseElement()
	if !ok || !prs.accept(tokenComma) {
		prs.pos = backtrack

		return Value{}, false
	}
	items := []Value{first}
	if rest, ok := prs.parseSequence(); ok {
		items = append(items, rest...)
	}

	return ArrayValue(items...), true
}

// sequence : element { COMMA element }
func (prs *parser) parseSequence() ([]Value, bool) {
	backtrack := prs.pos
	element, ok := prs.parseElement()
	if !ok {
		prs.pos = backtrack

		return nil, false
	}
	items := []Value{element}
	for {
		if !prs.accept(tokenComma) {
			break
		}
		element, ok := prs.parseElement()
		if !ok {
			break
		}
		items = append(items, element)
	}

	return items, true
}

// element : scalar | array
func (prs *parser) parseElement() (Value, bool) {
	if value, ok := prs.parseScalar(); ok {
		return value, true
	}

	return prs.parseArray()
}

func (prs *parser) parseScalar() (Value, bool) {
	if prs.pos >= len(prs.tokens) {
		return Value{}, false
	}
	tok := prs.tokens[prs.pos]
	switch tok.kind {
	case tokenString:
		prs.pos++

		return StringValue(tok.text), true
	case tokenNumber:
		// the lexer only emits number tokens for parseable literals
		value, ok := NumberValue(tok.text)
		if !ok {
			return Value{}, false
		}
		prs.pos++

		return value, true
	case tokenBool:
		prs.pos++

		return BoolValue(tok.truth), true
	}

	return Value{}, false
}

func (prs *parser) accept(kind tokenKind) bool {
	if prs.pos < len(prs.tokens) && prs.tokens[prs.pos].kind == kind {
		prs.pos++

		return true
	}

	return false
}
