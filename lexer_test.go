package lispy

import (
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/require"
)

func lex(t *testing.T, input string) ([]lexer.Token, error) {
	t.Helper()
	l, err := Lexer.Lex(Filename, strings.NewReader(input))
	require.NoError(t, err)

	var tokens []lexer.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return tokens, err
		}
		if tok.EOF() {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func TestLexer(t *testing.T) {
	tests := []struct {
		input string
		types []lexer.TokenType
		want  []string
	}{
		{
			input: "",
		},
		{
			input: "+ 1 2",
			types: []lexer.TokenType{TokenOperator, TokenNumber, TokenNumber},
			want:  []string{"+", "1", "2"},
		},
		{
			input: "-5 3",
			types: []lexer.TokenType{TokenOperator, TokenNumber, TokenNumber},
			want:  []string{"-", "5", "3"},
		},
		{
			input: "(- -5 3)",
			types: []lexer.TokenType{TokenPunct, TokenOperator, TokenNumber, TokenNumber, TokenPunct},
			want:  []string{"(", "-", "-5", "3", ")"},
		},
		{
			input: "+ 1-2",
			types: []lexer.TokenType{TokenOperator, TokenNumber, TokenNumber},
			want:  []string{"+", "1", "-2"},
		},
		{
			input: "+ - 1",
			types: []lexer.TokenType{TokenOperator, TokenOperator, TokenNumber},
			want:  []string{"+", "-", "1"},
		},
		{
			input: "\t*  2\n(/ 8 4) ",
			types: []lexer.TokenType{TokenOperator, TokenNumber, TokenPunct, TokenOperator, TokenNumber, TokenNumber, TokenPunct},
			want:  []string{"*", "2", "(", "/", "8", "4", ")"},
		},
	}
	for _, test := range tests {
		tokens, err := lex(t, test.input)
		require.NoError(t, err, test.input)

		var types []lexer.TokenType
		var got []string
		for _, tok := range tokens {
			types = append(types, tok.Type)
			got = append(got, tok.Value)
		}
		require.Equal(t, test.want, got, test.input)
		require.Equal(t, test.types, types, test.input)
	}
}

func TestLexerPosition(t *testing.T) {
	tokens, err := lex(t, "+ 12\n  (* 3 4)")
	require.NoError(t, err)
	require.Len(t, tokens, 7)

	require.Equal(t, 1, tokens[1].Pos.Line)
	require.Equal(t, 3, tokens[1].Pos.Column)
	require.Equal(t, 2, tokens[2].Pos.Line)
	require.Equal(t, 3, tokens[2].Pos.Column)
	require.Equal(t, 7, tokens[2].Pos.Offset)
	require.Equal(t, Filename, tokens[2].Pos.Filename)
}

func TestLexerInvalidToken(t *testing.T) {
	_, err := lex(t, "+ 1 x")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid token: 'x'")

	_, err = lex(t, "+ 0x10")
	var lerr *lexer.Error
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, 4, lerr.Pos.Column)
}

func TestLexerASCIISpaceOnly(t *testing.T) {
	tokens, err := lex(t, "+\t1\v2\f3\r\n4")
	require.NoError(t, err)
	require.Len(t, tokens, 5)

	for _, input := range []string{"+\u00a01", "+\u00851", "+ 1\u20032"} {
		_, err := lex(t, input)
		require.Error(t, err, "%q", input)
		require.Contains(t, err.Error(), "invalid token", "%q", input)
	}
}

func TestOperatorsInLockstep(t *testing.T) {
	require.Len(t, ops, len(Operators))
	for _, r := range Operators {
		_, ok := ops[string(r)]
		require.True(t, ok, "no evaluator for %q", r)
	}
}
