// Package install performs the one-time user-scoped setup: man page, shell
// completions, and the install stamp that gates the other commands.
package install

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"snipman/internal/store"
	"snipman/internal/version"
)

// UserDirs holds the per-user directories used during installation
type UserDirs struct {
	Home     string
	Man1     string
	Bash     string
	Zsh      string
	Fish     string
	DataRoot string
}

// userDirs derives the per-user install locations
func userDirs() (UserDirs, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return UserDirs{}, fmt.Errorf("failed to resolve home directory: %w", err)
	}

	return UserDirs{
		Home:     home,
		Man1:     filepath.Join(home, ".local", "share", "man", "man1"),
		Bash:     filepath.Join(home, ".local", "share", "bash-completion", "completions"),
		Zsh:      filepath.Join(home, ".local", "share", "zsh", "site-functions"),
		Fish:     filepath.Join(home, ".config", "fish", "completions"),
		DataRoot: store.DataRoot(),
	}, nil
}

// InstallState is the stamp written once installation has completed
type InstallState struct {
	Version         string `json:"version"`
	InstalledAtUnix int64  `json:"installed_at_unix"`
}

// StampPath returns the location of the install stamp
func StampPath() string {
	return filepath.Join(store.DataRoot(), "install_state.json")
}

// WriteStamp records that installation has completed, creating the data root
func WriteStamp() error {
	if err := os.MkdirAll(store.DataRoot(), 0755); err != nil {
		return fmt.Errorf("failed to create data root: %w", err)
	}

	state := InstallState{
		Version:         version.Version,
		InstalledAtUnix: time.Now().Unix(),
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal install stamp: %w", err)
	}
	return os.WriteFile(StampPath(), data, 0644)
}

// IsInstalled reports whether the one-time installation has completed.
// Used by main to gate functional commands until `snipman install` runs.
// Checking must not touch the filesystem beyond a stat.
func IsInstalled() bool {
	_, err := os.Stat(StampPath())
	return err == nil
}

// Install writes the man page, shell completions and install stamp. With
// noModifyRC false and zsh among the targets, it also appends an idempotent
// fpath block to .zshrc.
func Install(target ShellTarget, noModifyRC bool) error {
	dirs, err := userDirs()
	if err != nil {
		return err
	}

	for _, dir := range []string{dirs.Man1, dirs.Bash, dirs.Zsh, dirs.Fish, dirs.DataRoot} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	manPath := filepath.Join(dirs.Man1, "snipman.1")
	if err := os.WriteFile(manPath, []byte(manPage()), 0644); err != nil {
		return fmt.Errorf("failed to write man page: %w", err)
	}
	fmt.Printf("Installed man page: %s\n", manPath)

	// Refresh man DB quietly (best-effort)
	_ = exec.Command("mandb", "-q", filepath.Join(dirs.Home, ".local", "share", "man")).Run()

	installedZsh := false
	for _, shell := range target.Shells() {
		var path, content string
		switch shell {
		case ShellBash:
			path = filepath.Join(dirs.Bash, "snipman")
			content = bashCompletion()
		case ShellZsh:
			path = filepath.Join(dirs.Zsh, "_snipman")
			content = zshCompletion()
			installedZsh = true
		case ShellFish:
			path = filepath.Join(dirs.Fish, "snipman.fish")
			content = fishCompletion()
		default:
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s completion: %w", shell, err)
		}
		fmt.Printf("Installed %s completion: %s\n", shell, path)
	}

	if installedZsh && !noModifyRC {
		zshrc := os.Getenv("ZDOTDIR")
		if zshrc == "" {
			zshrc = dirs.Home
		}
		zshrc = filepath.Join(zshrc, ".zshrc")
		block := fmt.Sprintf("fpath+=(%s)\nautoload -Uz compinit\ncompinit -u", dirs.Zsh)
		if err := ensureBlockInFile(zshrc, "SNIPMAN_ZSH_FPATH", block); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not update %s: %v\n", zshrc, err)
		}
	}

	if err := WriteStamp(); err != nil {
		return err
	}

	fmt.Printf("Install stamp written to %s\n", StampPath())
	return nil
}

// ensureBlockInFile appends a marker-delimited block to a text file unless
// one is already present, so repeated installs stay idempotent.
func ensureBlockInFile(file, marker, body string) error {
	start := fmt.Sprintf("# BEGIN %s (snipman)", marker)
	end := fmt.Sprintf("# END %s (snipman)", marker)

	data, err := os.ReadFile(file)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	contents := string(data)
	if strings.Contains(contents, start) {
		return nil
	}

	if contents != "" && !strings.HasSuffix(contents, "\n") {
		contents += "\n"
	}
	contents += fmt.Sprintf("\n%s\n%s\n%s\n", start, body, end)
	return os.WriteFile(file, []byte(contents), 0644)
}
