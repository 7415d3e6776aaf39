package ask

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/kelseyhightower/envconfig"
)

type editorEnv struct {
	Editor string `envconfig:"EDITOR"`
	Visual string `envconfig:"VISUAL"`
}

// editorExecutable resolves the external editor: $EDITOR, then $VISUAL,
// then a platform default.
func editorExecutable() string {
	var env editorEnv
	if err := envconfig.Process("", &env); err == nil {
		if env.Editor != "" {
			return env.Editor
		}
		if env.Visual != "" {
			return env.Visual
		}
	}

	switch runtime.GOOS {
	case "windows":
		return "notepad"
	case "linux":
		if path, err := exec.LookPath("editor"); err == nil {
			return path
		}
	}
	return "vi"
}

// openEditor spawns the external editor on path with the process stdio
// attached, blocking until the editor exits.
func openEditor(path string) error {
	cmd := exec.Command(editorExecutable(), path)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	return cmd.Run()
}
