package ask

import "io"

// mockTerminal implements terminalInterface with a pre-scripted rune
// sequence and a fixed size. It gives tests fully deterministic keypress
// delivery without a terminal, which is what makes the prompt loop testable
// in CI.
type mockTerminal struct {
	input    []rune
	inputPos int
	rawMode  bool
	width    int
	height   int
}

func newMockTerminal(input string) *mockTerminal {
	return &mockTerminal{
		input:  []rune(input),
		width:  80,
		height: 24,
	}
}

func (m *mockTerminal) SetRaw() error {
	m.rawMode = true
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	return nil
}

func (m *mockTerminal) Size() (width, height int, err error) {
	return m.width, m.height, nil
}

func (m *mockTerminal) ReadRune() (rune, int, error) {
	if m.inputPos >= len(m.input) {
		return 0, 0, io.EOF
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, 1, nil
}

func (m *mockTerminal) Close() error {
	return nil
}
