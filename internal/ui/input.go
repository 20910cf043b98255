package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "charm.land/bubbletea/v2"
)

// ErrInputCancelled is returned when the user leaves an interactive prompt
// with esc or ctrl+c.
var ErrInputCancelled = errors.New("input cancelled")

// Prompter asks for values one at a time. When both ends are a terminal each
// value is edited in a text field; otherwise lines are read as they come, so
// pipes and test buffers behave the same.
type Prompter struct {
	in          io.Reader
	reader      *bufio.Reader
	out         io.Writer
	interactive bool
	styled      bool
	theme       Theme
}

// NewPrompter reads answers from in and writes questions and hints to out.
// Output is styled only when out is a terminal.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		in:          in,
		reader:      bufio.NewReader(in),
		out:         out,
		interactive: isInteractive(in, out),
		styled:      IsTerminal(out),
	}
	if p.styled {
		p.theme = DefaultTheme()
	}
	return p
}

// Ask writes label, reads a value and applies normalize (if non-nil) before
// validate. Rejected values print the validation error and ask again. Input
// ending before a valid value is read returns an error wrapping
// io.ErrUnexpectedEOF.
func (p *Prompter) Ask(label string, normalize func(string) string, validate func(string) error) (string, error) {
	if p.interactive {
		return p.askField(label, normalize, validate)
	}

	for {
		p.writeLabel(label)

		line, readErr := p.reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return "", fmt.Errorf("reading %s: %w", label, readErr)
		}

		value := strings.TrimSpace(line)
		if normalize != nil {
			value = normalize(value)
		}

		err := validate(value)
		if err == nil {
			return value, nil
		}
		if readErr != nil {
			fmt.Fprintln(p.out)
			return "", fmt.Errorf("no valid %s before end of input: %w", strings.ToLower(label), io.ErrUnexpectedEOF)
		}
		p.writeHint(err)
	}
}

func (p *Prompter) askField(label string, normalize func(string) string, validate func(string) error) (string, error) {
	m := newFieldModel(label, normalize, validate, p.theme)
	final, err := tea.NewProgram(m, tea.WithInput(p.in), tea.WithOutput(p.out)).Run()
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", strings.ToLower(label), err)
	}

	fm, ok := final.(*fieldModel)
	if !ok || fm.cancelled || !fm.done {
		return "", ErrInputCancelled
	}
	return fm.value, nil
}

func (p *Prompter) writeLabel(label string) {
	if p.styled {
		fmt.Fprint(p.out, StyleLabel(p.theme).Render(label+": "))
		return
	}
	fmt.Fprint(p.out, label+": ")
}

func (p *Prompter) writeHint(err error) {
	msg := retryHint(err)
	if p.styled {
		msg = StyleError(p.theme).Render(msg)
	}
	fmt.Fprintln(p.out, msg)
}

// retryHint turns a validation error into the line shown before asking again.
func retryHint(err error) string {
	msg := err.Error()
	if msg != "" {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}
	return msg + ". Please try again."
}
