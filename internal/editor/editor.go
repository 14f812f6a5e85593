// Package editor composes snippet bodies in the user's text editor.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/google/shlex"
)

// Compose opens an editor on an empty temp file and returns its contents
// after the editor exits. Resolution order: $VISUAL, $EDITOR, then a
// per-platform fallback (notepad.exe, `open -W -t`, nano or vi).
func Compose() (string, error) {
	path := filepath.Join(os.TempDir(), fmt.Sprintf("snipman_%d.txt", os.Getpid()))
	if err := os.WriteFile(path, nil, 0600); err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(path)

	argv, err := editorArgv(path)
	if err != nil {
		return "", err
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor exited with error: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}
	return string(data), nil
}

// editorArgv resolves the editor command line for editing path
func editorArgv(path string) ([]string, error) {
	spec := os.Getenv("VISUAL")
	if spec == "" {
		spec = os.Getenv("EDITOR")
	}

	if spec != "" {
		parts, err := shlex.Split(spec)
		if err != nil {
			return nil, fmt.Errorf("failed to parse $VISUAL/$EDITOR: %w", err)
		}
		if len(parts) == 0 {
			return nil, fmt.Errorf("empty $VISUAL/$EDITOR")
		}
		return append(parts, path), nil
	}

	switch runtime.GOOS {
	case "windows":
		return []string{"notepad.exe", path}, nil
	case "darwin":
		return []string{"open", "-W", "-t", path}, nil
	default:
		if _, err := exec.LookPath("nano"); err == nil {
			return []string{"nano", path}, nil
		}
		return []string{"vi", path}, nil
	}
}
