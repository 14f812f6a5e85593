package install

import (
	"fmt"
	"os"
	"path/filepath"
)

// ShellTarget selects which shell(s) receive completions
type ShellTarget string

const (
	ShellAuto ShellTarget = "auto"
	ShellBash ShellTarget = "bash"
	ShellZsh  ShellTarget = "zsh"
	ShellFish ShellTarget = "fish"
)

// ParseShellTarget validates a CLI-provided shell name
func ParseShellTarget(s string) (ShellTarget, error) {
	switch ShellTarget(s) {
	case ShellAuto, ShellBash, ShellZsh, ShellFish:
		return ShellTarget(s), nil
	case "":
		return ShellAuto, nil
	default:
		return "", fmt.Errorf("unknown shell %q (want bash, zsh, fish or auto)", s)
	}
}

// Detect guesses the current shell from $SHELL
func Detect() ShellTarget {
	switch filepath.Base(os.Getenv("SHELL")) {
	case "bash":
		return ShellBash
	case "zsh":
		return ShellZsh
	case "fish":
		return ShellFish
	default:
		return ""
	}
}

// Shells expands the target into the concrete shells to install for.
// Auto installs for all of them when detection fails.
func (t ShellTarget) Shells() []ShellTarget {
	if t != ShellAuto {
		return []ShellTarget{t}
	}
	if detected := Detect(); detected != "" {
		return []ShellTarget{detected}
	}
	return []ShellTarget{ShellBash, ShellZsh, ShellFish}
}
