package lispy

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Operators is the set of operator symbols understood by both the lexer and
// the evaluator.
const Operators = "+-*/"

const (
	TokenOperator lexer.TokenType = -(iota + 2)
	TokenNumber
	TokenPunct
)

var symbols = map[string]lexer.TokenType{
	"EOF":      lexer.EOF,
	"Operator": TokenOperator,
	"Number":   TokenNumber,
	"Punct":    TokenPunct,
}

func isOperator(r rune) bool {
	return strings.ContainsRune(Operators, r)
}

// isSpace matches C isspace in the default locale.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

type definition struct{}

// Lexer is the lexer.Definition used by the lispy grammar.
var Lexer lexer.Definition = definition{}

func (definition) Symbols() map[string]lexer.TokenType {
	return symbols
}

func (definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	return &tokenizer{
		buf:    bufio.NewReader(r),
		pos:    lexer.Position{Filename: filename, Line: 1, Column: 1},
		wantOp: true,
	}, nil
}

// tokenizer reads runes one at a time. wantOp is set at the start of input
// and after an opening paren, where an operator symbol is never the sign of
// a number.
type tokenizer struct {
	buf    *bufio.Reader
	pos    lexer.Position
	prev   lexer.Position
	wantOp bool
}

func (t *tokenizer) readRune() (rune, error) {
	r, n, err := t.buf.ReadRune()
	if err != nil {
		return r, err
	}
	t.prev = t.pos
	t.pos.Offset += n
	if r == '\n' {
		t.pos.Line++
		t.pos.Column = 1
	} else {
		t.pos.Column++
	}
	return r, nil
}

func (t *tokenizer) unreadRune() {
	if t.buf.UnreadRune() == nil {
		t.pos = t.prev
	}
}

func (t *tokenizer) peekDigit() bool {
	r, err := t.readRune()
	if err != nil {
		return false
	}
	t.unreadRune()
	return isDigit(r)
}

func (t *tokenizer) skipWhite() error {
	for {
		r, err := t.readRune()
		if err != nil {
			return err
		}
		if !isSpace(r) {
			t.unreadRune()
			return nil
		}
	}
}

func (t *tokenizer) Next() (lexer.Token, error) {
	if err := t.skipWhite(); err != nil {
		if err == io.EOF {
			return lexer.EOFToken(t.pos), nil
		}
		return lexer.Token{}, err
	}

	start := t.pos
	r, err := t.readRune()
	if err != nil {
		return lexer.Token{}, err
	}

	wantOp := t.wantOp
	t.wantOp = r == '('

	switch {
	case r == '(' || r == ')':
		return lexer.Token{Type: TokenPunct, Value: string(r), Pos: start}, nil
	case isOperator(r) && (wantOp || r != '-' || !t.peekDigit()):
		return lexer.Token{Type: TokenOperator, Value: string(r), Pos: start}, nil
	case r == '-' || isDigit(r):
		return t.number(r, start)
	}
	return lexer.Token{}, &lexer.Error{Pos: start, Msg: fmt.Sprintf("invalid token: '%c'", r)}
}

func (t *tokenizer) number(first rune, start lexer.Position) (lexer.Token, error) {
	var buf bytes.Buffer
	buf.WriteRune(first)
	for {
		r, err := t.readRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return lexer.Token{}, err
		}
		if !isDigit(r) {
			t.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	return lexer.Token{Type: TokenNumber, Value: buf.String(), Pos: start}, nil
}
