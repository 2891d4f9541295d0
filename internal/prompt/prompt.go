// Package prompt is the terminal input collaborator used by the controller.
package prompt

import (
	"errors"
	"time"
)

var (
	// ErrSkipped is returned by a skippable Select when the user backs out.
	ErrSkipped = errors.New("selection skipped")
	// ErrAborted is returned when the user interrupts input (Ctrl-C or EOF).
	ErrAborted = errors.New("input aborted")
)

// Prompter asks the user for input.
type Prompter interface {
	// Select shows labels and returns the index of the chosen one.
	Select(message string, labels []string, skippable bool) (int, error)
	// Text reads a line, re-asking until validate accepts it.
	Text(message string, validate func(string) error) (string, error)
	// Date reads an optional calendar date. Blank input returns nil.
	Date(message string) (*time.Time, error)
}

// Choice pairs a display label with the value it selects.
type Choice[T any] struct {
	Label string
	Value T
}

// Choose runs a Select over choices and returns the chosen value.
func Choose[T any](p Prompter, message string, choices []Choice[T], skippable bool) (T, error) {
	var zero T

	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.Label
	}

	idx, err := p.Select(message, labels, skippable)
	if err != nil {
		return zero, err
	}
	return choices[idx].Value, nil
}
