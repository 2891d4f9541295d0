package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/peterh/liner"

	"todo-list/internal/validation"
)

// lineReader is the subset of *liner.State the prompter needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// LinePrompter renders numbered menus and reads answers line by line.
type LinePrompter struct {
	ctx       context.Context
	reader    lineReader
	out       io.Writer
	validator *validation.EntryValidator
	close     func() error
}

// NewLinePrompter takes over the terminal with a liner state. Call Close
// to restore it. Once ctx is done every prompt returns ErrAborted.
func NewLinePrompter(ctx context.Context, out io.Writer) *LinePrompter {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	p := newLinePrompter(ctx, state, out)
	p.close = state.Close
	return p
}

func newLinePrompter(ctx context.Context, reader lineReader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		ctx:       ctx,
		reader:    reader,
		out:       out,
		validator: validation.NewEntryValidator(),
		close:     func() error { return nil },
	}
}

// Close restores the terminal.
func (p *LinePrompter) Close() error {
	return p.close()
}

// Select prints the options numbered from 1 and reads a choice. When
// skippable, blank input or "q" returns ErrSkipped.
func (p *LinePrompter) Select(message string, labels []string, skippable bool) (int, error) {
	if len(labels) == 0 {
		if skippable {
			return 0, ErrSkipped
		}
		return 0, fmt.Errorf("select %q: no options", message)
	}

	fmt.Fprintln(p.out, message)
	for i, label := range labels {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, label)
	}
	if skippable {
		fmt.Fprintln(p.out, "  (Enter or q to go back)")
	}

	for {
		line, err := p.read("> ")
		if err != nil {
			return 0, err
		}

		if skippable && (line == "" || strings.EqualFold(line, "q")) {
			return 0, ErrSkipped
		}

		n, err := strconv.Atoi(line)
		if err == nil && n >= 1 && n <= len(labels) {
			return n - 1, nil
		}
		fmt.Fprintf(p.out, "Please enter a number between 1 and %d.\n", len(labels))
	}
}

// Text reads a line until validate accepts it. The answer is returned trimmed.
func (p *LinePrompter) Text(message string, validate func(string) error) (string, error) {
	for {
		line, err := p.read(message + ": ")
		if err != nil {
			return "", err
		}

		if validate != nil {
			if err := validate(line); err != nil {
				fmt.Fprintln(p.out, userMessage(err))
				continue
			}
		}
		return line, nil
	}
}

// Date reads a YYYY-MM-DD date. Blank input means no date.
func (p *LinePrompter) Date(message string) (*time.Time, error) {
	for {
		line, err := p.read(message + " (YYYY-MM-DD, Enter for none): ")
		if err != nil {
			return nil, err
		}

		date, err := p.validator.ParseDueDate(line)
		if err != nil {
			fmt.Fprintln(p.out, userMessage(err))
			continue
		}
		return date, nil
	}
}

type answer struct {
	line string
	err  error
}

// read waits for one line. The terminal read cannot be interrupted, so it
// runs on its own goroutine and is abandoned when ctx is done.
func (p *LinePrompter) read(prompt string) (string, error) {
	if p.ctx.Err() != nil {
		return "", ErrAborted
	}

	answers := make(chan answer, 1)
	go func() {
		line, err := p.reader.Prompt(prompt)
		answers <- answer{line: line, err: err}
	}()

	var a answer
	select {
	case a = <-answers:
	case <-p.ctx.Done():
		return "", ErrAborted
	}

	line, err := a.line, a.err
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("reading input: %w", err)
	}

	line = strings.TrimSpace(line)
	if line != "" {
		p.reader.AppendHistory(line)
	}
	return line, nil
}

func userMessage(err error) string {
	var ve *validation.ValidationError
	if errors.As(err, &ve) {
		return ve.GetUserFriendlyMessage()
	}
	return err.Error()
}
