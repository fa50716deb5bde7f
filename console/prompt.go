package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/message"
)

// Prompter reads answers line by line. Invalid numbers are asked again.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	p       *message.Printer
}

func NewPrompter(in io.Reader, out io.Writer, p *message.Printer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
		p:       p,
	}
}

// Line prints the prompt and returns the next trimmed line, or io.EOF.
func (pr *Prompter) Line(key string, args ...any) (string, error) {
	pr.p.Fprintf(pr.out, key, args...)
	if !pr.scanner.Scan() {
		if err := pr.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(pr.scanner.Text()), nil
}

// Int keeps asking until a whole number is typed.
func (pr *Prompter) Int(key string, args ...any) (int, error) {
	for {
		line, err := pr.Line(key, args...)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(pr.out, pr.p.Sprintf("number.invalid"))
	}
}

// Confirm accepts yes in English or Portuguese; anything else is a no.
func (pr *Prompter) Confirm(key string, args ...any) (bool, error) {
	line, err := pr.Line(key, args...)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "s", "sim", "y", "yes":
		return true, nil
	}
	return false, nil
}
