package cli

import (
	"testing"
	"time"

	"todo-list/internal/prompt"
)

// step is one scripted answer. Select steps name the label to pick.
type step struct {
	pick string
	text string
	date *time.Time
	err  error
}

// fakePrompter replays steps and reports prompt.ErrAborted once they run out.
type fakePrompter struct {
	t     *testing.T
	steps []step
	calls []string
	shown [][]string
}

func newFakePrompter(t *testing.T, steps ...step) *fakePrompter {
	return &fakePrompter{t: t, steps: steps}
}

func (f *fakePrompter) next(call string) (step, bool) {
	f.calls = append(f.calls, call)
	if len(f.steps) == 0 {
		return step{}, false
	}
	s := f.steps[0]
	f.steps = f.steps[1:]
	return s, true
}

func (f *fakePrompter) Select(message string, labels []string, skippable bool) (int, error) {
	f.shown = append(f.shown, labels)
	s, ok := f.next("select " + message)
	if !ok {
		return 0, prompt.ErrAborted
	}
	if s.err != nil {
		return 0, s.err
	}
	for i, label := range labels {
		if label == s.pick {
			return i, nil
		}
	}
	f.t.Fatalf("%q is not one of %q", s.pick, labels)
	return 0, nil
}

func (f *fakePrompter) Text(message string, validate func(string) error) (string, error) {
	s, ok := f.next("text " + message)
	if !ok {
		return "", prompt.ErrAborted
	}
	if s.err != nil {
		return "", s.err
	}
	if validate != nil {
		if err := validate(s.text); err != nil {
			f.t.Fatalf("scripted text %q rejected: %v", s.text, err)
		}
	}
	return s.text, nil
}

func (f *fakePrompter) Date(message string) (*time.Time, error) {
	s, ok := f.next("date " + message)
	if !ok {
		return nil, prompt.ErrAborted
	}
	return s.date, s.err
}

func pick(label string) step { return step{pick: label} }
func typed(text string) step { return step{text: text} }
func dated(date *time.Time) step { return step{date: date} }
func failing(err error) step { return step{err: err} }
