package lispy

import (
	"bytes"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// Filename is reported in the position of syntax errors.
const Filename = "<stdin>"

// The grammar, read top down:
//
//	number   : /-?[0-9]+/ ;
//	operator : '+' | '-' | '*' | '/' ;
//	expr     : <number> | '(' <operator> <expr>+ ')' ;
//	lispy    : /^/ <operator> <expr>+ /$/ ;
//
// The top level takes no parentheses while nested applications require them.

// Program is the top level rule.
type Program struct {
	Pos lexer.Position

	Operator string  `parser:"@Operator"`
	Operands []*Expr `parser:"@@+"`
}

// Application is a parenthesised operator applied to its operands.
type Application struct {
	Pos lexer.Position

	Operator string  `parser:"\"(\" @Operator"`
	Operands []*Expr `parser:"@@+ \")\""`
}

// Expr is either a number literal or a nested application.
type Expr struct {
	Pos lexer.Position

	Number      *string      `parser:"  @Number"`
	Application *Application `parser:"| @@"`
}

// SyntaxError reports input that does not match the grammar.
type SyntaxError struct {
	Pos lexer.Position
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: error: %s", e.Pos, e.Msg)
}

// Parser parses lines of lispy. A Parser holds no mutable state and may be
// shared.
type Parser struct {
	p *participle.Parser[Program]
}

// NewParser builds the grammar. The result is reused for every line.
func NewParser() (*Parser, error) {
	p, err := participle.Build[Program](participle.Lexer(Lexer))
	if err != nil {
		return nil, errors.Wrap(err, "build grammar")
	}
	return &Parser{p: p}, nil
}

// MustParser is like NewParser but panics if the grammar cannot be built.
func MustParser() *Parser {
	p, err := NewParser()
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the grammar in EBNF.
func (p *Parser) String() string {
	return p.p.String()
}

// ParseProgram returns the raw parse tree of input.
func (p *Parser) ParseProgram(input string) (*Program, error) {
	prog, err := p.p.ParseString(Filename, input)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return nil, &SyntaxError{Pos: perr.Position(), Msg: perr.Message()}
		}
		return nil, &SyntaxError{Pos: lexer.Position{Filename: Filename, Line: 1, Column: 1}, Msg: err.Error()}
	}
	return prog, nil
}

// Parse parses input into an evaluable tree.
func (p *Parser) Parse(input string) (Node, error) {
	prog, err := p.ParseProgram(input)
	if err != nil {
		return nil, err
	}
	return &Apply{
		op:       prog.Operator,
		operands: convertAll(prog.Operands),
		top:      true,
	}, nil
}

func convertAll(exprs []*Expr) []Node {
	nodes := make([]Node, 0, len(exprs))
	for _, e := range exprs {
		nodes = append(nodes, convert(e))
	}
	return nodes
}

func convert(e *Expr) Node {
	if e.Number != nil {
		return Literal(*e.Number)
	}
	return &Apply{
		op:       e.Application.Operator,
		operands: convertAll(e.Application.Operands),
	}
}

// Node is a parsed expression: a Literal or an Apply.
type Node interface {
	fmt.Stringer
	node()
}

// Literal is an integer literal exactly as written.
type Literal string

func (Literal) node() {}

func (l Literal) String() string {
	return string(l)
}

// Apply is an operator applied to one or more operands.
type Apply struct {
	op       string
	operands []Node
	top      bool
}

func (*Apply) node() {}

// NewApply builds an application of op to at least one operand.
func NewApply(op string, first Node, rest ...Node) *Apply {
	return &Apply{
		op:       op,
		operands: append([]Node{first}, rest...),
	}
}

// Operator returns the operator symbol as written.
func (a *Apply) Operator() string {
	return a.op
}

// Operands returns the operands in evaluation order.
func (a *Apply) Operands() []Node {
	return a.operands
}

func (a *Apply) String() string {
	var buf bytes.Buffer
	if !a.top {
		fmt.Fprint(&buf, "(")
	}
	fmt.Fprint(&buf, a.op)
	for _, n := range a.operands {
		fmt.Fprint(&buf, " ")
		fmt.Fprint(&buf, n)
	}
	if !a.top {
		fmt.Fprint(&buf, ")")
	}
	return buf.String()
}

// Depth returns the nesting depth of n; a number has depth zero.
func Depth(n Node) int {
	a, ok := n.(*Apply)
	if !ok {
		return 0
	}
	d := 0
	for _, o := range a.operands {
		if od := Depth(o); od > d {
			d = od
		}
	}
	return d + 1
}
