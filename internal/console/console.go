// Package console reads whitespace-delimited tokens from an input stream and
// writes prompts and results to an output stream.
//
// Reads behave like a formatted input stream. A numeric read consumes the
// longest numeric prefix of the next token and leaves the remainder for the
// following read ("5x" reads 5, then "x"). When no prefix parses, or the input
// is exhausted, the console is marked failed and every later read returns the
// zero value without consuming input.
package console

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
)

var (
	intPrefix   = regexp.MustCompile(`^[+-]?[0-9]+`)
	floatPrefix = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?`)
)

// Console pairs a tokenizing reader with an output writer
type Console struct {
	scanner   *bufio.Scanner
	out       io.Writer
	precision int
	failed    bool
	pending   string
}

// New creates a console over in and out. precision is the number of
// significant digits used when formatting floating-point values.
func New(in io.Reader, out io.Writer, precision int) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Console{
		scanner:   scanner,
		out:       out,
		precision: precision,
	}
}

// Failed reports whether a read has failed
func (c *Console) Failed() bool {
	return c.failed
}

func (c *Console) token() (string, bool) {
	if c.failed {
		return "", false
	}
	if c.pending != "" {
		tok := c.pending
		c.pending = ""
		return tok, true
	}
	if !c.scanner.Scan() {
		c.failed = true
		return "", false
	}
	return c.scanner.Text(), true
}

// ReadString reads the next whitespace-delimited token
func (c *Console) ReadString() string {
	tok, _ := c.token()
	return tok
}

// numeric returns the prefix of the next token matched by re and keeps the
// rest of the token pending
func (c *Console) numeric(re *regexp.Regexp) (string, bool) {
	tok, ok := c.token()
	if !ok {
		return "", false
	}
	prefix := re.FindString(tok)
	if prefix == "" {
		c.failed = true
		return "", false
	}
	c.pending = tok[len(prefix):]
	return prefix, true
}

// ReadInt reads a base-10 integer from the next token
func (c *Console) ReadInt() int {
	num, ok := c.numeric(intPrefix)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		c.failed = true
		return 0
	}
	return n
}

// ReadFloat reads a floating-point number from the next token
func (c *Console) ReadFloat() float64 {
	num, ok := c.numeric(floatPrefix)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		c.failed = true
		return 0
	}
	return f
}

// Prompt writes text without a trailing newline
func (c *Console) Prompt(text string) {
	fmt.Fprint(c.out, text)
}

// Println writes a line
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted text
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// FormatFloat renders f with the configured number of significant digits,
// dropping trailing zeros (5000 prints as "5000", 1234567 as "1.23457e+06").
func (c *Console) FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', c.precision, 64)
}
