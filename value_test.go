package lispy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Number(0), "0"},
		{Number(14), "14"},
		{Number(-3), "-3"},
		{Error{Kind: DivisionByZero}, "Error: division by zero"},
		{Error{Kind: InvalidOperator}, "Error: invalid operator"},
		{Error{Kind: InvalidNumber}, "Error: invalid number"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, Format(test.v))
	}
}

func TestErrorIsError(t *testing.T) {
	var err error = Error{Kind: DivisionByZero}
	assert.EqualError(t, err, "Error: division by zero")
}
