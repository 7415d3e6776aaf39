package ask

import "strings"

// selectState is the mutable state of one in-flight select prompt: the
// selection index into the filtered list, the typed filter, and the
// question scroll offset. A fresh state is created per Ask call and
// discarded when a value is returned; nothing persists across prompts.
type selectState struct {
	questionLines []string
	choices       []Choice
	filtered      []Choice
	filter        string
	selected      int
	scroll        int
}

func newSelectState(question string, choices []Choice) *selectState {
	return &selectState{
		questionLines: strings.Split(question, "\n"),
		choices:       choices,
		filtered:      filterChoices(choices, ""),
	}
}

// setFilter recomputes the visible list for the new filter text. The
// selection always resets to the top of the recomputed list.
func (s *selectState) setFilter(text string) {
	s.filter = text
	s.filtered = filterChoices(s.choices, text)
	s.selected = 0
}

// clampScroll keeps the question offset valid after the viewport shrinks,
// e.g. on a terminal resize between frames.
func (s *selectState) clampScroll(vp viewport) {
	if s.scroll > vp.maxScroll {
		s.scroll = vp.maxScroll
	}
	if s.scroll < 0 {
		s.scroll = 0
	}
}

// apply consumes one event and mutates the state. It reports true when the
// prompt is complete and the current selection should be yielded. Injected
// events go through the exact same transitions as real keypresses.
func (s *selectState) apply(ev event, vp viewport) (done bool) {
	switch ev.kind {
	case eventSubmit:
		return true

	case eventLine:
		// A plain piped line is typed text plus its line ending: apply it
		// as a filter edit and submit the resulting selection.
		if ev.text != "" {
			s.setFilter(ev.text)
		}
		return true

	case eventEdit:
		s.setFilter(ev.text)

	case eventKey:
		switch ev.key {
		case keyReturn:
			return true
		case keyUp:
			if s.selected == 0 {
				s.selected = len(s.filtered) - 1
			} else {
				s.selected--
			}
		case keyDown:
			if s.selected == len(s.filtered)-1 {
				s.selected = 0
			} else {
				s.selected++
			}
		case keyPageUp:
			if vp.scrollbar && s.scroll > 0 {
				s.scroll--
			}
		case keyPageDown:
			if vp.scrollbar && s.scroll < vp.maxScroll {
				s.scroll++
			}
		case keyEscape:
			// Escape clears the typed filter through the same recompute
			// path as any other filter edit.
			s.setFilter("")
		}
	}
	return false
}
