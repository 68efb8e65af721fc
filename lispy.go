// Package lispy implements a tiny prefix arithmetic language: a line such as
// "* 2 (+ 3 4)" is parsed and evaluated to a single integer or an error.
package lispy

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"
)

const Version = "0.0.2"

// Banner is printed when the interactive prompt starts.
var Banner = "Lispy Version " + Version + "\nPress Ctrl+c to exit\n"

// Evaluator turns one input line into the text printed for it.
type Evaluator interface {
	Rep(line string) string
}

// Rep reads, evaluates and prints one line. The result is either the
// syntax error or the formatted value.
func (p *Parser) Rep(line string) string {
	node, err := p.Parse(line)
	if err != nil {
		return err.Error()
	}
	return Format(Eval(node))
}

// Run evaluates every non blank line of r and writes one result per line to
// w. Syntax and evaluation errors are written as results; only I/O errors
// are returned.
func Run(e Evaluator, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, math.MaxInt)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, e.Rep(line)); err != nil {
			return errors.Wrap(err, "write result")
		}
	}
	return errors.Wrap(scanner.Err(), "read input")
}
