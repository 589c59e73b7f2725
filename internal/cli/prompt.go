package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/wesleyorama2/purge/internal/dataset"
)

// ErrInvalidInput is returned when a prompt receives something that is not
// an integer.
var ErrInvalidInput = errors.New("invalid input")

const (
	sizePrompt  = "Input a collection size: "
	valuePrompt = "Input value for remove: "

	sizeComplaint = "Size must be a non-negative integer"
)

var valueComplaint = fmt.Sprintf("Value must be in [%d; %d] range", dataset.MinValue, dataset.MaxValue)

// Prompter reads whitespace separated integers from an input stream.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Prompter{scanner: scanner, out: out}
}

// ReadInt prints prompt and reads one integer.
func (p *Prompter) ReadInt(prompt string) (int, error) {
	fmt.Fprint(p.out, prompt)

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}
		return 0, fmt.Errorf("no value entered: %w", io.ErrUnexpectedEOF)
	}

	token := p.scanner.Text()
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidInput, token)
	}
	return v, nil
}

// ReadAccepted prompts until accept returns true, printing complaint after
// each rejected value.
func (p *Prompter) ReadAccepted(prompt string, accept func(int) bool, complaint string) (int, error) {
	for {
		v, err := p.ReadInt(prompt)
		if err != nil {
			return 0, err
		}
		if accept(v) {
			return v, nil
		}
		fmt.Fprintln(p.out, complaint)
	}
}

// ReadSize asks for the collection size.
func (p *Prompter) ReadSize() (int, error) {
	return p.ReadAccepted(sizePrompt, func(v int) bool { return v >= 0 }, sizeComplaint)
}

// ReadValue asks for the value to remove.
func (p *Prompter) ReadValue() (int, error) {
	return p.ReadAccepted(valuePrompt, dataset.InRange, valueComplaint)
}
