package ask

import "strings"

// keyName is a logical key event delivered to the prompt loop. The same
// names are accepted over the control protocol, so an injected key is
// indistinguishable from a pressed one.
type keyName string

// Logical key events understood by the prompt loop.
const (
	keyReturn   keyName = "return"
	keyUp       keyName = "up"
	keyDown     keyName = "down"
	keyPageUp   keyName = "pageup"
	keyPageDown keyName = "pagedown"
	keyEscape   keyName = "escape"
)

type eventKind int

const (
	// eventKey delivers a logical key. For keyReturn from raw-mode input,
	// text carries the completed edit-buffer line.
	eventKey eventKind = iota
	// eventEdit replaces the live edit buffer (filter text or free-text line).
	eventEdit
	// eventLine is a full line of ordinary piped input.
	eventLine
	// eventSubmit forces submission of the current selection.
	eventSubmit
)

type event struct {
	kind eventKind
	key  keyName
	text string
}

// controlSentinel is the reserved prefix that marks a line as a control
// command rather than literal input. Commands are colon-delimited:
//
//	%%:key:<name>    deliver a named key event
//	%%:filter:<text> overwrite the edit buffer
//	%%:submit        submit the current selection
//
// Lines without the sentinel are ordinary input. This lets an external test
// driver steer the prompt deterministically over the same channel a user
// would type on.
const controlSentinel = "%%"

// parseControl interprets a control line. The second return is false when
// the line is not a recognized command and should be treated as input.
func parseControl(line string) (event, bool) {
	rest, ok := strings.CutPrefix(line, controlSentinel+":")
	if !ok {
		return event{}, false
	}
	cmd, arg, _ := strings.Cut(rest, ":")
	switch cmd {
	case "key":
		if k, ok := namedKey(arg); ok {
			return event{kind: eventKey, key: k}, true
		}
	case "filter":
		return event{kind: eventEdit, text: arg}, true
	case "submit":
		return event{kind: eventSubmit}, true
	}
	return event{}, false
}

func namedKey(name string) (keyName, bool) {
	switch keyName(name) {
	case keyReturn, keyUp, keyDown, keyPageUp, keyPageDown, keyEscape:
		return keyName(name), true
	}
	return "", false
}

// eventReader yields prompt events one at a time. The prompt loop suspends
// on Next and resumes synchronously when an event arrives; events are
// processed strictly in arrival order.
type eventReader interface {
	Next() (event, error)
}
