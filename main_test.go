package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitTags(t *testing.T) {
	require.Nil(t, splitTags(""))
	require.Equal(t, []string{"fs", "io"}, splitTags("fs,io"))
	require.Equal(t, []string{"fs", "io"}, splitTags(" fs , io "))
	require.Equal(t, []string{"fs"}, splitTags("fs,,"))
}

func TestResolveCodeInputPrecedence(t *testing.T) {
	file := filepath.Join(t.TempDir(), "body.txt")
	require.NoError(t, os.WriteFile(file, []byte("from file"), 0644))

	// Inline code wins over every other source
	body, err := resolveCodeInput("inline", file, true, true)
	require.NoError(t, err)
	require.Equal(t, "inline", body)

	body, err = resolveCodeInput("", file, true, true)
	require.NoError(t, err)
	require.Equal(t, "from file", body)
}

func TestResolveCodeInputMissingFile(t *testing.T) {
	_, err := resolveCodeInput("", filepath.Join(t.TempDir(), "nope.txt"), false, false)
	require.Error(t, err)
}

func TestResolveCodeInputNoSource(t *testing.T) {
	_, err := resolveCodeInput("", "", false, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no code source")
}

func TestRequiresInstallGate(t *testing.T) {
	for _, cmd := range []string{"add", "list", "remove", "interactive"} {
		require.True(t, requiresInstallGate(cmd), "%q must be gated", cmd)
	}
	for _, cmd := range []string{"install", "version", "help", "-h", "--help"} {
		require.False(t, requiresInstallGate(cmd), "%q must not be gated", cmd)
	}
}
