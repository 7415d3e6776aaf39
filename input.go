package ask

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// keyReader turns raw-mode terminal runes into logical events. It owns the
// live edit buffer: printable runes and backspaces mutate the buffer and
// surface as edit events, and a completed line is checked for the control
// sentinel before it is delivered as a return key.
type keyReader struct {
	term    terminalInterface
	buf     []rune
	pending []rune
}

func newKeyReader(term terminalInterface) *keyReader {
	return &keyReader{term: term}
}

func (k *keyReader) Next() (event, error) {
	for {
		r, err := k.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return event{}, ErrEOF
			}
			return event{}, fmt.Errorf("failed to read input: %w", err)
		}

		switch r {
		case '\r', '\n':
			line := string(k.buf)
			k.buf = k.buf[:0]
			if ev, ok := parseControl(line); ok {
				return ev, nil
			}
			return event{kind: eventKey, key: keyReturn, text: line}, nil

		case '\x03': // Ctrl+C
			return event{}, ErrInterrupted

		case '\x04': // Ctrl+D
			return event{}, ErrEOF

		case '\x1b':
			ev, ok := k.readEscape()
			if ok {
				return ev, nil
			}

		case '\x7f', '\b':
			if len(k.buf) > 0 {
				k.buf = k.buf[:len(k.buf)-1]
			}
			if isControlPrefix(string(k.buf)) {
				continue
			}
			return event{kind: eventEdit, text: string(k.buf)}, nil

		default:
			if r >= 32 && r != 127 {
				k.buf = append(k.buf, r)
				// A control line in the making must not leak into the
				// filter; it only takes effect once the line completes.
				if isControlPrefix(string(k.buf)) {
					continue
				}
				return event{kind: eventEdit, text: string(k.buf)}, nil
			}
		}
	}
}

func (k *keyReader) readRune() (rune, error) {
	if len(k.pending) > 0 {
		r := k.pending[0]
		k.pending = k.pending[1:]
		return r, nil
	}
	r, _, err := k.term.ReadRune()
	return r, err
}

// readEscape resolves what follows an ESC byte: either a CSI sequence
// mapped to a navigation key, or a bare escape press that clears the edit
// buffer. A rune that turns out not to belong to a sequence is pushed back.
func (k *keyReader) readEscape() (event, bool) {
	next, err := k.readRune()
	if err != nil {
		k.buf = k.buf[:0]
		return event{kind: eventKey, key: keyEscape}, true
	}
	if next != '[' {
		k.pending = append(k.pending, next)
		k.buf = k.buf[:0]
		return event{kind: eventKey, key: keyEscape}, true
	}

	seq := []rune{'['}
	for i := 0; i < 8; i++ { // CSI sequences are short; cap to avoid runaway reads
		r, err := k.readRune()
		if err != nil {
			return event{}, false
		}
		seq = append(seq, r)
		if isCSIFinal(r) {
			break
		}
	}

	switch string(seq) {
	case "[A":
		return event{kind: eventKey, key: keyUp}, true
	case "[B":
		return event{kind: eventKey, key: keyDown}, true
	case "[5~":
		return event{kind: eventKey, key: keyPageUp}, true
	case "[6~":
		return event{kind: eventKey, key: keyPageDown}, true
	}
	return event{}, false // unbound sequence, swallow it
}

func isCSIFinal(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || r == '~'
}

// isControlPrefix reports whether the edit buffer is part of a control
// line: either a prefix of the sentinel still being typed, or a full
// sentinel-led command.
func isControlPrefix(buf string) bool {
	if buf == "" {
		return false
	}
	return strings.HasPrefix(buf, controlSentinel) || strings.HasPrefix(controlSentinel, buf)
}

// lineReader yields events from line-based input, used when stdin is a pipe
// rather than a terminal. Control-sentinel lines become injected events;
// anything else is delivered as an ordinary input line. This is the channel
// automation drivers use.
type lineReader struct {
	scanner *bufio.Scanner
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(r)}
}

func (l *lineReader) Next() (event, error) {
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			return event{}, fmt.Errorf("failed to read input: %w", err)
		}
		return event{}, ErrEOF
	}
	line := strings.TrimRight(l.scanner.Text(), "\r")
	if ev, ok := parseControl(line); ok {
		return ev, nil
	}
	return event{kind: eventLine, text: line}, nil
}
