package ask

import (
	"os"

	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// terminalInterface abstracts the terminal so the prompt loop can run
// against a real TTY in production and a scripted terminal in tests.
//
// Implementations:
//   - realTerminal: go-tty backed, used when stdin is a terminal
//   - mockTerminal: deterministic rune script for tests
type terminalInterface interface {
	SetRaw() error                        // enter raw mode for per-keypress reads
	Restore() error                       // restore the saved terminal state
	Size() (width, height int, err error) // dimensions with a safe fallback
	ReadRune() (rune, int, error)         // one Unicode character of input
	Close() error                         // release the TTY, safe to call twice
}

// realTerminal drives an actual terminal through go-tty, with raw-mode
// state managed by golang.org/x/term so the original settings survive
// repeated enter/exit cycles.
type realTerminal struct {
	tty           *tty.TTY
	closed        bool // guards double Close, which panics on Windows
	stdinFd       int
	originalState *term.State
}

func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}
	return &realTerminal{
		tty:     t,
		stdinFd: int(os.Stdin.Fd()),
	}, nil
}

func (t *realTerminal) SetRaw() error {
	// Capture the current state fresh on every entry so Restore always has
	// a valid baseline, no matter how many prompts ran before.
	if term.IsTerminal(t.stdinFd) {
		state, err := term.GetState(t.stdinFd)
		if err != nil {
			return err
		}
		t.originalState = state
		if _, err := term.MakeRaw(t.stdinFd); err != nil {
			return err
		}
	}
	return nil
}

func (t *realTerminal) Restore() error {
	if t.originalState != nil && term.IsTerminal(t.stdinFd) {
		err := term.Restore(t.stdinFd, t.originalState)
		t.originalState = nil
		return err
	}
	return nil
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		// Fall back to a sane size rather than letting layout math divide
		// by zero on exotic terminals.
		return 80, 24, err
	}
	return w, h, nil
}

func (t *realTerminal) ReadRune() (rune, int, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	return r, 1, nil
}

func (t *realTerminal) Close() error {
	if t.closed {
		return nil
	}
	if t.tty != nil {
		err := t.tty.Close()
		t.closed = true
		return err
	}
	return nil
}
