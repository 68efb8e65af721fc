package lispy

import (
	"fmt"
	"strconv"
)

type fn func(x, y int64) Value

var ops map[string]fn

func init() {
	ops = make(map[string]fn)
	ops["+"] = doPlus
	ops["-"] = doMinus
	ops["*"] = doMul
	ops["/"] = doDiv
}

func doPlus(x, y int64) Value {
	return Number(x + y)
}

func doMinus(x, y int64) Value {
	return Number(x - y)
}

func doMul(x, y int64) Value {
	return Number(x * y)
}

func doDiv(x, y int64) Value {
	if y == 0 {
		return Error{Kind: DivisionByZero}
	}
	return Number(x / y)
}

// Eval reduces node to a single value. Operands are folded left to right
// through the operator; the first error stops the fold. An Apply without
// operands has nothing to apply its operator to and yields InvalidOperator.
// Eval panics if node is nil.
func Eval(node Node) Value {
	switch n := node.(type) {
	case Literal:
		return evalLiteral(n)
	case *Apply:
		if len(n.operands) == 0 {
			return Error{Kind: InvalidOperator}
		}
		x := Eval(n.operands[0])
		for _, o := range n.operands[1:] {
			if _, ok := x.(Error); ok {
				break
			}
			x = combine(x, n.op, Eval(o))
		}
		return x
	}
	panic(fmt.Sprintf("lispy: Eval of unsupported node %T", node))
}

func evalLiteral(l Literal) Value {
	i, err := strconv.ParseInt(string(l), 10, 64)
	if err != nil {
		return Error{Kind: InvalidNumber}
	}
	return Number(i)
}

func combine(x Value, op string, y Value) Value {
	xn, ok := x.(Number)
	if !ok {
		return x
	}
	yn, ok := y.(Number)
	if !ok {
		return y
	}
	fn, ok := ops[op]
	if !ok {
		return Error{Kind: InvalidOperator}
	}
	return fn(int64(xn), int64(yn))
}
