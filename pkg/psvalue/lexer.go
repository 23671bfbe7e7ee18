package psvalue

import (
	"fmt"
	"strconv"
	"strings"
)

type tokenKind uint8

const (
	tokenString tokenKind = iota
	tokenNumber
	tokenBool
	tokenComma
	tokenArrayBegin
	tokenArrayEnd
	tokenArrayOpBegin
	tokenArrayOpEnd
)

type token struct {
	kind  tokenKind
	text  string
	truth bool
}

type lexerState uint8

const (
	stateControl lexerState = iota
	stateSingleQuote
	stateDoubleQuote
	stateMaybeArrayOp
	stateParenthesesCmd
)

type lexer struct {
	tokens   []token
	state    lexerState
	escaping bool
	buf      strings.Builder
}

func lex(input string) ([]token, error) {
	lx := &lexer{}
	for _, chr := range input {
		switch lx.state {
		case stateControl:
			lx.scanControl(chr)
		case stateSingleQuote:
			lx.scanSingleQuote(chr)
		case stateDoubleQuote:
			lx.scanDoubleQuote(chr)
		case stateMaybeArrayOp:
			lx.scanMaybeArrayOp(chr)
		case stateParenthesesCmd:
			lx.scanParenthesesCmd(chr)
		}
	}
	switch lx.state {
	case stateSingleQuote, stateDoubleQuote:
		return nil, fmt.Errorf("unterminated quote")
	case stateParenthesesCmd:
		return nil, fmt.Errorf("unterminated parentheses")
	case stateMaybeArrayOp:
		return nil, fmt.Errorf("trailing @")
	case stateControl:
	}
	lx.flush()

	return lx.tokens, nil
}

func (lx *lexer) scanControl(chr rune) {
	switch {
	case lx.escaping:
		lx.buf.WriteRune(chr)
		lx.escaping = false
	case chr == '"':
		lx.state = stateDoubleQuote
	case chr == '\'':
		lx.state = stateSingleQuote
	case chr == ' ' || chr == '\t' || chr == '\r':
	case chr == '[':
		lx.tokens = append(lx.tokens, token{kind: tokenArrayBegin})
	case chr == ']':
		lx.flush()
		lx.tokens = append(lx.tokens, token{kind: tokenArrayEnd})
	case chr == '(':
		lx.buf.WriteRune(chr)
		lx.state = stateParenthesesCmd
	case chr == ')':
		lx.flush()
		lx.tokens = append(lx.tokens, token{kind: tokenArrayOpEnd})
	case chr == '`':
		lx.escaping = true
	case chr == ',':
		lx.flush()
		lx.tokens = append(lx.tokens, token{kind: tokenComma})
	case chr == '@':
		lx.state = stateMaybeArrayOp
	default:
		lx.buf.WriteRune(chr)
	}
}

func (lx *lexer) scanSingleQuote(chr rune) {
	if chr == '\'' {
		lx.flush()
		lx.state = stateControl

		return
	}
	lx.buf.WriteRune(chr)
}

func (lx *lexer) scanDoubleQuote(chr rune) {
	switch {
	case lx.escaping:
		lx.buf.WriteRune(chr)
		lx.escaping = false
	case chr == '`':
		lx.escaping = true
	case chr == '"':
		lx.flush()
		lx.state = stateControl
	default:
		lx.buf.WriteRune(chr)
	}
}

func (lx *lexer) scanMaybeArrayOp(chr rune) {
	if chr == '(' {
		lx.tokens = append(lx.tokens, token{kind: tokenArrayOpBegin})
	} else {
		lx.buf.WriteRune('@')
		lx.buf.WriteRune(chr)
	}
	lx.state = stateControl
}

func (lx *lexer) scanParenthesesCmd(chr rune) {
	lx.buf.WriteRune(chr)
	if chr == ')' {
		lx.flush()
		lx.state = stateControl
	}
}

// flush turns the pending buffer into a scalar token. Numbers and the
// PowerShell booleans $True / $False are recognized here, everything
// else becomes a string.
func (lx *lexer) flush() {
	if lx.buf.Len() == 0 {
		return
	}
	text := lx.buf.String()
	lx.buf.Reset()
	if _, err := strconv.ParseFloat(text, 64); err == nil {
		lx.tokens = append(lx.tokens, token{kind: tokenNumber, text: text})

		return
	}
	switch text {
	case "$True":
		lx.tokens = append(lx.tokens, token{kind: tokenBool, truth: true})
	case "$False":
		lx.tokens = append(lx.tokens, token{kind: tokenBool, truth: false})
	default:
		lx.tokens = append(lx.tokens, token{kind: tokenString, text: text})
	}
}
