// Example of a free-text prompt. Empty answers are never accepted; the
// prompt simply asks again.
package main

import (
	"fmt"
	"log"

	"github.com/cliask/ask"
)

func main() {
	a, err := ask.New()
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	answer, err := a.Ask("Name for the new branch?", nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("branch name: %v\n", answer)
}
