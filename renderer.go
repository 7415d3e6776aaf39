package ask

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	clearScreen       = "\x1b[2J\x1b[H"
	scrollHint        = "[Use ▲/▼ to see more]"
	filterPlaceholder = "(start typing to filter)"
	selectedGlyph     = "❯"
	freeTextPrefix    = "> "
)

// renderer composes full frames for the prompt. Every transition produces a
// complete redraw: a clear-screen sequence followed by the visible question
// slice, hints, and the choice window. There is no partial repainting.
type renderer struct {
	output io.Writer
	scheme *ColorScheme
}

func newRenderer(output io.Writer, scheme *ColorScheme) *renderer {
	return &renderer{output: output, scheme: scheme}
}

// renderSelect draws one frame of the select prompt.
func (r *renderer) renderSelect(st *selectState, vp viewport) error {
	_, err := io.WriteString(r.output, r.selectFrame(st, vp))
	if err != nil {
		return fmt.Errorf("failed to render frame: %w", err)
	}
	return nil
}

// selectFrame builds the frame text for the current select state.
func (r *renderer) selectFrame(st *selectState, vp viewport) string {
	var b strings.Builder
	b.WriteString(clearScreen)

	for _, line := range vp.questionSlice(st.questionLines, st.scroll) {
		b.WriteString(r.paint(r.scheme.Question, r.fit(line, vp.cols)))
		b.WriteString("\r\n")
	}
	if vp.scrollbar {
		b.WriteString(r.paint(r.scheme.Hint, scrollHint))
		b.WriteString("\r\n")
	}

	if st.filter == "" {
		b.WriteString(r.paint(r.scheme.Hint, filterPlaceholder))
	} else {
		b.WriteString(r.paint(r.scheme.Filter, "Filter: "+st.filter))
	}
	b.WriteString("\r\n")

	start, end := choiceWindow(len(st.filtered), st.selected)
	for i := start; i < end; i++ {
		label := r.fit(st.filtered[i].Name, vp.cols-2)
		if i == st.selected {
			b.WriteString(r.paint(r.scheme.Selected, selectedGlyph+" "+label))
		} else {
			b.WriteString("  ")
			b.WriteString(r.paint(r.scheme.Choice, label))
		}
		b.WriteString("\r\n")
	}
	return b.String()
}

// renderFreeText draws one frame of the free-text prompt: the question
// window followed by the input line being edited.
func (r *renderer) renderFreeText(questionLines []string, scroll int, input string, vp viewport) error {
	var b strings.Builder
	b.WriteString(clearScreen)

	for _, line := range vp.questionSlice(questionLines, scroll) {
		b.WriteString(r.paint(r.scheme.Question, r.fit(line, vp.cols)))
		b.WriteString("\r\n")
	}
	if vp.scrollbar {
		b.WriteString(r.paint(r.scheme.Hint, scrollHint))
		b.WriteString("\r\n")
	}
	b.WriteString(r.paint(r.scheme.Filter, freeTextPrefix+input))

	if _, err := io.WriteString(r.output, b.String()); err != nil {
		return fmt.Errorf("failed to render frame: %w", err)
	}
	return nil
}

func (r *renderer) paint(c Color, s string) string {
	return c.ToANSI() + s + Reset()
}

// fit truncates a line to the terminal width, accounting for wide runes.
func (r *renderer) fit(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
