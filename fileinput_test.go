package ask

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scratchPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "template.txt")
}

func TestAskFileInputUnmodifiedConfirmation(t *testing.T) {
	t.Parallel()

	path := scratchPath(t)
	a := newForTestingLines(t,
		"%%:key:down", "%%:key:return", // menu: Continue
		"%%:key:down", "%%:key:return", // confirm: No, back to the menu
		"%%:key:down", "%%:key:return", // menu: Continue again
		"%%:key:return", // confirm: Yes
	)

	result, err := a.AskFileInput("Edit the template", path, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", result)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "scratch file must be removed on success")
}

func TestAskFileInputAbort(t *testing.T) {
	t.Parallel()

	path := scratchPath(t)
	a := newForTestingLines(t,
		"%%:key:down", "%%:key:down", "%%:key:return", // menu: Abort
	)

	_, err := a.AskFileInput("Edit the template", path, "hello")
	assert.ErrorIs(t, err, ErrAborted)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "scratch file must be removed on abort")
}

func TestAskFileInputEditedContent(t *testing.T) {
	t.Parallel()

	path := scratchPath(t)
	a := newForTestingLines(t,
		"%%:key:return",                // menu: Open in editor
		"%%:key:down", "%%:key:return", // menu: Continue
	)
	a.editor = func(p string) error {
		return os.WriteFile(p, []byte("edited content"), 0o600)
	}

	result, err := a.AskFileInput("Edit the template", path, "hello")
	require.NoError(t, err)
	assert.Equal(t, "edited content", result, "edited content needs no confirmation")

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestAskFileInputRecreatesMissingFile(t *testing.T) {
	t.Parallel()

	path := scratchPath(t)
	a := newForTestingLines(t,
		"%%:key:return",                // menu: Open in editor (removes the file)
		"%%:key:down", "%%:key:return", // menu: Continue
		"%%:key:return", // confirm: Yes (recreated content equals template)
	)
	a.editor = func(p string) error {
		return os.Remove(p)
	}

	result, err := a.AskFileInput("Edit the template", path, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", result)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestAskFileInputWritesTemplate(t *testing.T) {
	t.Parallel()

	path := scratchPath(t)
	var seen string
	a := newForTestingLines(t,
		"%%:key:return",                // menu: Open in editor
		"%%:key:down", "%%:key:down", "%%:key:return", // menu: Abort
	)
	a.editor = func(p string) error {
		data, err := os.ReadFile(p)
		seen = string(data)
		return err
	}

	_, err := a.AskFileInput("Edit the template", path, "template body")
	require.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, "template body", seen, "editor must see the template content")
}

func TestScratchFileReleaseIdempotent(t *testing.T) {
	t.Parallel()

	path := scratchPath(t)
	s, err := newScratchFile(path, "content")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	s.Release()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// A second release must tolerate the already-removed file.
	s.Release()
}

func TestReadTemplateMissingFile(t *testing.T) {
	t.Parallel()

	path := scratchPath(t)
	got, err := readTemplate(path, "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fallback", string(data), "missing file is recreated with the template")
}
