package ask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyEvent(k keyName) event {
	return event{kind: eventKey, key: k}
}

func TestSelectStateWraparound(t *testing.T) {
	t.Parallel()

	st := newSelectState("q", Choices("a", "b", "c"))
	vp := newViewport(24, 80, 1, 3)

	// n downs return to the start.
	for i := 0; i < len(st.filtered); i++ {
		st.apply(keyEvent(keyDown), vp)
	}
	assert.Equal(t, 0, st.selected)

	// A single up wraps to the bottom, n ups come back.
	st.apply(keyEvent(keyUp), vp)
	assert.Equal(t, 2, st.selected)
	for i := 0; i < len(st.filtered)-1; i++ {
		st.apply(keyEvent(keyUp), vp)
	}
	assert.Equal(t, 0, st.selected)
}

func TestSelectStateFilterResetsSelection(t *testing.T) {
	t.Parallel()

	st := newSelectState("q", Choices("alpha", "beta", "gamma"))
	vp := newViewport(24, 80, 1, 3)

	st.apply(keyEvent(keyDown), vp)
	require.Equal(t, 1, st.selected)

	st.apply(event{kind: eventEdit, text: "ga"}, vp)
	assert.Equal(t, 0, st.selected)
	require.Len(t, st.filtered, 1)
	assert.Equal(t, "gamma", st.filtered[0].Name)
}

func TestSelectStateEscapeClearsFilter(t *testing.T) {
	t.Parallel()

	st := newSelectState("q", Choices("alpha", "beta", "gamma"))
	vp := newViewport(24, 80, 1, 3)

	st.apply(event{kind: eventEdit, text: "be"}, vp)
	st.apply(keyEvent(keyEscape), vp)

	assert.Empty(t, st.filter)
	assert.Len(t, st.filtered, 3, "escape recomputes the full list")
	assert.Equal(t, 0, st.selected)
}

func TestSelectStatePageKeysGatedOnScrollbar(t *testing.T) {
	t.Parallel()

	st := newSelectState("short question", Choices("a", "b"))

	flat := newViewport(24, 80, 1, 2)
	st.apply(keyEvent(keyPageDown), flat)
	assert.Equal(t, 0, st.scroll, "pagedown is a no-op without a scrollbar")

	tall := newViewport(24, 80, 40, 2)
	require.True(t, tall.scrollbar)
	st.apply(keyEvent(keyPageDown), tall)
	assert.Equal(t, 1, st.scroll)

	st.apply(keyEvent(keyPageUp), tall)
	st.apply(keyEvent(keyPageUp), tall)
	assert.Equal(t, 0, st.scroll, "pageup floors at zero")

	for i := 0; i < tall.maxScroll+5; i++ {
		st.apply(keyEvent(keyPageDown), tall)
	}
	assert.Equal(t, tall.maxScroll, st.scroll, "pagedown ceils at the last page")
}

func TestSelectStateNoMatchKeepsFullList(t *testing.T) {
	t.Parallel()

	st := newSelectState("q", Choices("yes", "no"))
	vp := newViewport(24, 80, 1, 2)

	st.apply(event{kind: eventEdit, text: "zzz"}, vp)
	assert.Len(t, st.filtered, 2, "dead-end filter falls back to the full list")

	done := st.apply(keyEvent(keyReturn), vp)
	assert.True(t, done)
	assert.Equal(t, "yes", st.filtered[st.selected].Value)
}

func TestSelectStateSubmitEvents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ev   event
		want string
	}{
		{name: "return key submits selection", ev: keyEvent(keyReturn), want: "a"},
		{name: "injected submit submits selection", ev: event{kind: eventSubmit}, want: "a"},
		{name: "plain line filters then submits", ev: event{kind: eventLine, text: "b"}, want: "b"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			st := newSelectState("q", Choices("a", "b"))
			vp := newViewport(24, 80, 1, 2)
			done := st.apply(tt.ev, vp)
			require.True(t, done)
			assert.Equal(t, tt.want, st.filtered[st.selected].Value)
		})
	}
}
