package ask

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Common errors
var (
	// ErrEOF is returned when input ends before an answer was chosen.
	ErrEOF = errors.New("EOF")
	// ErrInterrupted is returned when the user presses Ctrl+C.
	ErrInterrupted = errors.New("interrupted")
	// ErrAborted is returned when the user chooses to abort a file-input
	// flow. It is an answer, not a failure; callers check it with errors.Is.
	ErrAborted = errors.New("aborted")
)

// Asker asks interactive questions on the terminal.
//
// At most one prompt is in flight per Asker at a time; nested flows such as
// the file-input menu run their inner prompts strictly sequentially. Each
// prompt owns its state for the duration of one Ask call only.
type Asker struct {
	output   io.Writer
	scheme   *ColorScheme
	terminal terminalInterface
	events   eventReader // fixed event source; set for piped input and tests
	renderer *renderer
	editor   func(path string) error
}

// Option configures an Asker.
type Option func(*Asker)

// WithOutput sets the writer frames are rendered to. Defaults to stdout,
// wrapped for ANSI support on Windows.
func WithOutput(w io.Writer) Option {
	return func(a *Asker) { a.output = w }
}

// WithColorScheme sets the color scheme. See also LoadColorScheme.
func WithColorScheme(scheme *ColorScheme) Option {
	return func(a *Asker) { a.scheme = scheme }
}

// WithInput forces line-based input from r instead of the terminal. Lines
// prefixed with the control sentinel are interpreted as injected commands;
// everything else is ordinary input. This is how automation drivers steer
// the prompt deterministically.
func WithInput(r io.Reader) Option {
	return func(a *Asker) { a.events = newLineReader(r) }
}

// New creates an Asker. When stdin is not a terminal, input automatically
// falls back to the line-based channel used for automation.
//
// Example:
//
//	a, err := ask.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer a.Close()
//
//	answer, err := a.Ask("Pick a branch type", ask.Choices("feature", "hotfix", "release"))
func New(options ...Option) (*Asker, error) {
	a := &Asker{scheme: ThemeDefault}
	for _, option := range options {
		option(a)
	}

	if a.output == nil {
		a.output = os.Stdout
		if runtime.GOOS == "windows" {
			a.output = colorable.NewColorableStdout()
		}
	}

	if a.events == nil {
		fd := os.Stdin.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			terminal, err := newRealTerminal()
			if err != nil {
				return nil, fmt.Errorf("failed to open terminal: %w", err)
			}
			a.terminal = terminal
		} else {
			a.events = newLineReader(os.Stdin)
		}
	}

	a.renderer = newRenderer(a.output, a.scheme)
	a.editor = openEditor
	return a, nil
}

// Close releases terminal resources. It is safe to call multiple times.
func (a *Asker) Close() error {
	if a.output != nil {
		fmt.Fprint(a.output, "\x1b[?25h") // make sure the cursor is visible
	}
	if a.terminal != nil {
		return a.terminal.Close()
	}
	return nil
}

// Ask presents a question and returns the chosen answer.
//
// With a non-empty choice list the user navigates with the arrow keys,
// narrows the list by typing a filter, and submits with enter; the selected
// Choice.Value is returned. With no choices, Ask reads a free-text line and
// returns it as a string; empty lines are never accepted and simply
// re-prompt.
func (a *Asker) Ask(question string, choices []Choice) (any, error) {
	choices = NormalizeChoices(choices)
	if len(choices) == 0 {
		return a.askFreeText(question)
	}
	return a.askSelect(question, choices)
}

// askSelect runs the select prompt loop: render a frame, wait for the next
// event, apply it, repeat until a submit event yields the selection.
func (a *Asker) askSelect(question string, choices []Choice) (any, error) {
	events, cleanup, err := a.inputEvents()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	st := newSelectState(question, choices)
	for {
		rows, cols := a.size()
		vp := newViewport(rows, cols, len(st.questionLines), len(st.choices))
		st.clampScroll(vp)
		if err := a.renderer.renderSelect(st, vp); err != nil {
			return nil, err
		}

		ev, err := events.Next()
		if err != nil {
			return nil, err
		}
		if st.apply(ev, vp) {
			return st.filtered[st.selected].Value, nil
		}
	}
}

// askFreeText runs the free-text loop: draw the question, await a line, and
// re-ask for as long as the line is empty.
func (a *Asker) askFreeText(question string) (any, error) {
	events, cleanup, err := a.inputEvents()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	questionLines := splitQuestion(question)
	input := ""
	scroll := 0
	for {
		rows, cols := a.size()
		vp := newViewport(rows, cols, len(questionLines), 0)
		if scroll > vp.maxScroll {
			scroll = vp.maxScroll
		}
		if err := a.renderer.renderFreeText(questionLines, scroll, input, vp); err != nil {
			return nil, err
		}

		ev, err := events.Next()
		if err != nil {
			return nil, err
		}
		switch ev.kind {
		case eventEdit:
			input = ev.text
		case eventLine:
			if ev.text != "" {
				return ev.text, nil
			}
			input = ""
		case eventSubmit:
			if input != "" {
				return input, nil
			}
		case eventKey:
			switch ev.key {
			case keyReturn:
				if ev.text != "" {
					return ev.text, nil
				}
				input = ""
			case keyPageUp:
				if vp.scrollbar && scroll > 0 {
					scroll--
				}
			case keyPageDown:
				if vp.scrollbar && scroll < vp.maxScroll {
					scroll++
				}
			case keyEscape:
				input = ""
			}
		}
	}
}

// inputEvents returns the event source for one prompt invocation. On a real
// terminal this enters raw mode and the returned cleanup restores it; for a
// fixed line-based source the cleanup is a no-op.
func (a *Asker) inputEvents() (eventReader, func(), error) {
	if a.events != nil {
		return a.events, func() {}, nil
	}
	if err := a.terminal.SetRaw(); err != nil {
		return nil, nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	cleanup := func() {
		if err := a.terminal.Restore(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to restore terminal: %v\n", err)
		}
	}
	return newKeyReader(a.terminal), cleanup, nil
}

func (a *Asker) size() (rows, cols int) {
	if a.terminal != nil {
		if w, h, err := a.terminal.Size(); err == nil && w > 0 && h > 0 {
			return h, w
		}
	}
	return 24, 80
}

func splitQuestion(question string) []string {
	return strings.Split(question, "\n")
}
