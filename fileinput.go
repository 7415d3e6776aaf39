package ask

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// File-input menu values.
const (
	fileMenuEdit     = "edit"
	fileMenuContinue = "continue"
	fileMenuAbort    = "abort"
)

// AskFileInput writes content to path as an editable template, then loops a
// menu of open-editor / continue / abort built on Ask.
//
// Continue reads the file back as the answer; if the file vanished it is
// recreated with the template and the template is the answer. When the
// answer is byte-identical to the template, the user must explicitly
// confirm before the flow terminates. Abort returns ErrAborted.
//
// The scratch file is removed on every exit path, including interrupt,
// terminate and quit signals received while the flow is active.
func (a *Asker) AskFileInput(question, path, content string) (string, error) {
	scratch, err := newScratchFile(path, content)
	if err != nil {
		return "", err
	}

	menu := []Choice{
		{Name: "Open in editor", Value: fileMenuEdit},
		{Name: "Continue", Value: fileMenuContinue},
		{Name: "Abort", Value: fileMenuAbort},
	}
	for {
		answer, err := a.Ask(question, menu)
		if err != nil {
			scratch.Release()
			return "", err
		}

		switch answer {
		case fileMenuEdit:
			if err := a.editor(path); err != nil {
				scratch.Release()
				return "", fmt.Errorf("failed to open editor: %w", err)
			}
			// Menu is redrawn by the next Ask iteration.

		case fileMenuContinue:
			result, err := readTemplate(path, content)
			if err != nil {
				scratch.Release()
				return "", err
			}
			if result == content {
				keep, err := a.confirmUnmodified()
				if err != nil {
					scratch.Release()
					return "", err
				}
				if !keep {
					continue
				}
			}
			scratch.Release()
			return result, nil

		case fileMenuAbort:
			scratch.Release()
			return "", ErrAborted
		}
	}
}

// readTemplate reads the scratch file back. A missing file is recoverable:
// it is recreated with the original template, which becomes the answer.
func readTemplate(path, template string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(path, []byte(template), 0o600); err != nil {
			return "", fmt.Errorf("failed to recreate template: %w", err)
		}
		return template, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}
	return string(data), nil
}

func (a *Asker) confirmUnmodified() (bool, error) {
	answer, err := a.Ask("You did not modify the template. Continue anyway?", []Choice{
		{Name: "Yes", Value: true},
		{Name: "No", Value: false},
	})
	if err != nil {
		return false, err
	}
	yes, _ := answer.(bool)
	return yes, nil
}

// scratchFile is a scoped resource: a template file whose removal is
// guaranteed on normal completion, abort, and termination signals. Release
// is idempotent and deregisters the signal hook after the first run so
// repeated flows do not leak handlers.
type scratchFile struct {
	path string
	once sync.Once
	sig  chan os.Signal
	done chan struct{}
}

func newScratchFile(path, content string) (*scratchFile, error) {
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write template: %w", err)
	}

	s := &scratchFile{
		path: path,
		sig:  make(chan os.Signal, 1),
		done: make(chan struct{}),
	}
	signal.Notify(s.sig, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		select {
		case received := <-s.sig:
			s.Release()
			// Default disposition is back in place after Release; re-raise
			// so the process still terminates.
			if p, err := os.FindProcess(os.Getpid()); err == nil {
				_ = p.Signal(received)
			}
		case <-s.done:
		}
	}()
	return s, nil
}

// Release removes the scratch file if it is still present and stops the
// signal hook. Safe to call any number of times.
func (s *scratchFile) Release() {
	s.once.Do(func() {
		signal.Stop(s.sig)
		close(s.done)
		if _, err := os.Stat(s.path); err == nil {
			_ = os.Remove(s.path)
		}
	})
}
