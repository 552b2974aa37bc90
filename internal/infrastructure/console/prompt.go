package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// errInputClosed signals that the operator input reached EOF.
var errInputClosed = errors.New("input closed")

// prompter reads operator answers line by line.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{scanner: bufio.NewScanner(in), out: out}
}

// ask prints label and returns the trimmed answer.
func (p *prompter) ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// confirm asks a yes/no question; only "y"/"yes" (any case) is yes.
func (p *prompter) confirm(label string) (bool, error) {
	answer, err := p.ask(label + " [y/N]: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// askInt reads an integer. ok is false when the answer is not a number.
func (p *prompter) askInt(label string) (n int, ok bool, err error) {
	answer, err := p.ask(label)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(answer)
	if convErr != nil {
		return 0, false, nil
	}
	return n, true, nil
}

// choose prints numbered options and returns the selected index.
// ok is false on an invalid choice.
func (p *prompter) choose(label string, options []string) (idx int, ok bool, err error) {
	for i, o := range options {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, o)
	}
	n, ok, err := p.askInt(label)
	if err != nil || !ok {
		return 0, false, err
	}
	if n < 1 || n > len(options) {
		return 0, false, nil
	}
	return n - 1, true, nil
}
