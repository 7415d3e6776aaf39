// Package ask provides interactive command-line prompts for workflow tools:
// a question plus a filterable, scrollable choice list, free-text input, and
// a file-based input mode that hands a generated template to an external
// editor.
//
// Key features:
//
//   - Keypress-driven select prompts with live substring filtering
//   - Starts-with matches rank before contains matches; a filter that
//     matches nothing falls back to the full list instead of a dead end
//   - Long questions scroll in a viewport sized to the terminal
//   - Free-text prompts that never accept an empty answer
//   - File-input flow with external-editor spawning and guaranteed
//     scratch-file cleanup, signals included
//   - A control-line protocol so test drivers can inject key events and
//     submissions deterministically, without a real terminal
//
// Quick start:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/cliask/ask"
//	)
//
//	func main() {
//		a, err := ask.New()
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer a.Close()
//
//		answer, err := a.Ask("What kind of branch?", ask.Choices("feature", "hotfix", "release"))
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println("chosen:", answer)
//	}
//
// Choices can carry values distinct from their labels:
//
//	answer, err := a.Ask("Pick an issue", []ask.Choice{
//		{Name: "#12 Fix login", Value: 12},
//		{Name: "#34 Add search", Value: 34},
//	})
//
// With no choices, Ask reads a single non-empty line:
//
//	name, err := a.Ask("Branch name?", nil)
//
// File-based input writes a template, lets the user edit it externally, and
// returns the final content:
//
//	body, err := a.AskFileInput("Describe the release", ".release-notes", template)
//	if errors.Is(err, ask.ErrAborted) {
//		// user backed out; the scratch file is already gone
//	}
//
// Automation: when stdin is not a terminal, input is read line by line and
// lines starting with the reserved sentinel are interpreted as control
// commands ("%%:key:down", "%%:filter:app", "%%:submit"). Injected commands
// produce exactly the same state transitions as real keypresses, which is
// how the prompt is driven in tests and scripted environments.
package ask
