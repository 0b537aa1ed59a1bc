package evaluator

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/peterh/liner"
)

// LineReader is the source of the input() built-in
type LineReader interface {
	// ReadLine writes the prompt, waits for one line of input, and returns it
	// without its line terminator and trailing white space. End of input yields an empty line.
	ReadLine(prompt string) (string, error)
}

type (
	bufferedInput struct {
		in  *bufio.Reader
		out io.Writer
	}

	// TerminalInput reads lines with line editing from an interactive terminal.
	// The terminal is not touched until the first line is read.
	TerminalInput struct {
		state *liner.State
	}
)

// NewLineReader returns a LineReader that writes prompts to out and reads lines from in
func NewLineReader(in io.Reader, out io.Writer) LineReader {
	return &bufferedInput{bufio.NewReader(in), out}
}

func (b *bufferedInput) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(b.out, prompt); err != nil {
		return ``, err
	}
	if f, ok := b.out.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return ``, err
		}
	}
	line, err := b.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return ``, err
	}
	return trimLineEnd(line), nil
}

// trimLineEnd removes the line terminator together with any other trailing white space
func trimLineEnd(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}

// NewTerminalInput returns a LineReader backed by liner
func NewTerminalInput() *TerminalInput {
	return &TerminalInput{}
}

func (t *TerminalInput) ReadLine(prompt string) (string, error) {
	if t.state == nil {
		t.state = liner.NewLiner()
		t.state.SetCtrlCAborts(true)
	}
	line, err := t.state.Prompt(prompt)
	switch err {
	case nil:
		t.state.AppendHistory(line)
		return trimLineEnd(line), nil
	case io.EOF:
		return ``, nil
	default:
		return ``, err
	}
}

// Close restores the terminal if it was used
func (t *TerminalInput) Close() error {
	if t.state == nil {
		return nil
	}
	return t.state.Close()
}

// IsTerminal returns true when both stdin and stdout are connected to a
// terminal that supports line editing.
func IsTerminal() bool {
	return liner.TerminalSupported() && isCharDevice(os.Stdin) && isCharDevice(os.Stdout)
}

func isCharDevice(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
