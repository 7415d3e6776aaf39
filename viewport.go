package ask

// choiceWindowRows is the fixed height of the visible choice list.
const choiceWindowRows = 8

// viewport holds the layout computed from the terminal dimensions for one
// frame: how many question lines fit, whether the question needs a
// scrollbar, and how far the question may scroll.
type viewport struct {
	rows         int
	cols         int
	questionRows int
	scrollbar    bool
	maxScroll    int
}

// newViewport computes the frame layout. Space for the choice list is
// reserved proportionally to its size, capped at 12 rows, and the question
// always keeps at least 3 rows regardless of how small the terminal is.
func newViewport(rows, cols, questionLines, choiceCount int) viewport {
	reserved := choiceCount + 4
	if reserved > 12 {
		reserved = 12
	}
	questionRows := rows - reserved
	if questionRows < 3 {
		questionRows = 3
	}

	v := viewport{
		rows:         rows,
		cols:         cols,
		questionRows: questionRows,
		scrollbar:    questionLines > questionRows,
		maxScroll:    questionLines - questionRows,
	}
	if v.maxScroll < 0 {
		v.maxScroll = 0
	}
	return v
}

// questionSlice returns the visible window of question lines for the given
// scroll offset, clamped to valid bounds.
func (v viewport) questionSlice(lines []string, scroll int) []string {
	if scroll > v.maxScroll {
		scroll = v.maxScroll
	}
	if scroll < 0 {
		scroll = 0
	}
	end := scroll + v.questionRows
	if end > len(lines) {
		end = len(lines)
	}
	if scroll > end {
		scroll = end
	}
	return lines[scroll:end]
}

// choiceWindow returns the half-open range of visible choices. The window
// anchors four rows above the selection so the selected row stays roughly
// centered once the user scrolls past the first few items.
func choiceWindow(count, selected int) (start, end int) {
	start = selected - 4
	if start < 0 {
		start = 0
	}
	end = start + choiceWindowRows
	if end > count {
		end = count
	}
	return start, end
}
