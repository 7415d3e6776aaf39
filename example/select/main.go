// Example of a select prompt with filtering and a scrolling question.
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/cliask/ask"
)

func main() {
	a, err := ask.New()
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	question := strings.Join([]string{
		"Which issue does this branch belong to?",
		"",
		"Use the arrow keys to navigate, type to filter,",
		"and press enter to choose.",
	}, "\n")

	answer, err := a.Ask(question, []ask.Choice{
		{Name: "#101 Fix login redirect", Value: 101},
		{Name: "#104 Add fuzzy search", Value: 104},
		{Name: "#109 Upgrade CI image", Value: 109},
		{Name: "#112 Flaky websocket test", Value: 112},
		{Name: "#118 Release checklist automation", Value: 118},
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("selected issue: %v\n", answer)
}
