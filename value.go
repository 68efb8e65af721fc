package lispy

import (
	"strconv"
)

// Value is the result of evaluating a Node: a Number or an Error.
type Value interface {
	value()
}

// Number is a successfully evaluated integer.
type Number int64

func (Number) value() {}

// ErrorKind identifies why evaluation failed.
type ErrorKind int

const (
	DivisionByZero ErrorKind = iota
	InvalidOperator
	InvalidNumber
)

func (k ErrorKind) String() string {
	switch k {
	case DivisionByZero:
		return "division by zero"
	case InvalidOperator:
		return "invalid operator"
	case InvalidNumber:
		return "invalid number"
	}
	return "unknown error " + strconv.Itoa(int(k))
}

// Error is an evaluation failure. Once produced it is carried unchanged to
// the final result.
type Error struct {
	Kind ErrorKind
}

func (Error) value() {}

func (e Error) Error() string {
	return "Error: " + e.Kind.String()
}

// Format renders v the way the REPL prints it.
func Format(v Value) string {
	switch v := v.(type) {
	case Number:
		return strconv.FormatInt(int64(v), 10)
	case Error:
		return v.Error()
	}
	return ""
}
