package editor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEditorArgvPrefersVisual(t *testing.T) {
	t.Setenv("VISUAL", "code --wait")
	t.Setenv("EDITOR", "vim")

	argv, err := editorArgv("/tmp/snippet.txt")
	require.NoError(t, err)
	require.Equal(t, []string{"code", "--wait", "/tmp/snippet.txt"}, argv)
}

func TestEditorArgvFallsBackToEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "vim")

	argv, err := editorArgv("/tmp/snippet.txt")
	require.NoError(t, err)
	require.Equal(t, []string{"vim", "/tmp/snippet.txt"}, argv)
}

func TestEditorArgvQuotedArguments(t *testing.T) {
	t.Setenv("VISUAL", `emacs --init-directory "/home/user/my config"`)

	argv, err := editorArgv("/tmp/snippet.txt")
	require.NoError(t, err)
	require.Equal(t, []string{"emacs", "--init-directory", "/home/user/my config", "/tmp/snippet.txt"}, argv)
}

func TestEditorArgvMalformedSpec(t *testing.T) {
	t.Setenv("VISUAL", `vim "unterminated`)

	_, err := editorArgv("/tmp/snippet.txt")
	require.Error(t, err)
}

func TestEditorArgvPlatformFallback(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")

	argv, err := editorArgv("/tmp/snippet.txt")
	require.NoError(t, err)
	require.NotEmpty(t, argv)
	require.Equal(t, "/tmp/snippet.txt", argv[len(argv)-1])
}
