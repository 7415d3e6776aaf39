// Example of the file-input flow: a template is written to a scratch file,
// the user may open it in $EDITOR, and the edited content is the answer.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/cliask/ask"
	"github.com/spf13/pflag"
)

var (
	path  = pflag.String("file", ".merge-request.md", "scratch file for the template")
	theme = pflag.String("theme", "", "optional YAML color scheme file")
)

const template = `# Merge request

## Summary

(describe your change here)

## Checklist

- [ ] tests added
- [ ] changelog updated
`

func main() {
	pflag.Parse()

	var options []ask.Option
	if *theme != "" {
		scheme, err := ask.LoadColorScheme(*theme)
		if err != nil {
			log.Fatal(err)
		}
		options = append(options, ask.WithColorScheme(scheme))
	}

	a, err := ask.New(options...)
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	body, err := a.AskFileInput("Write the merge request description", *path, template)
	if errors.Is(err, ask.ErrAborted) {
		fmt.Println("aborted")
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("final description:")
	fmt.Println(body)
}
