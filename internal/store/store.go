// Package store persists snippets as one prettified JSON file per snippet,
// named <id>.json, under a per-user data directory:
//   - Linux:   $XDG_DATA_HOME (or ~/.local/share)/.snipman/snippets
//   - macOS:   ~/Library/Application Support/.snipman/snippets
//   - Windows: %APPDATA%/.snipman/snippets
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"snipman/internal/domain"
	"snipman/internal/eventbus"
)

// Store reads and writes snippets in a single directory
type Store struct {
	dir string
	bus eventbus.EventBus
}

// New creates a store rooted at dir. An empty dir selects the platform default.
func New(dir string) *Store {
	if dir == "" {
		dir = DefaultDir()
	}
	return &Store{dir: dir}
}

// NewWithBus creates a store that publishes save/delete events
func NewWithBus(dir string, bus eventbus.EventBus) *Store {
	s := New(dir)
	s.bus = bus
	return s
}

// Dir returns the snippets directory
func (s *Store) Dir() string {
	return s.dir
}

// DefaultDir returns the platform-specific snippets directory
func DefaultDir() string {
	var root string
	switch runtime.GOOS {
	case "windows":
		root = os.Getenv("APPDATA")
		if root == "" {
			if profile := os.Getenv("USERPROFILE"); profile != "" {
				root = filepath.Join(profile, "AppData", "Roaming")
			}
		}
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil {
			root = filepath.Join(home, "Library", "Application Support")
		}
	default:
		root = os.Getenv("XDG_DATA_HOME")
		if root == "" {
			if home, err := os.UserHomeDir(); err == nil {
				root = filepath.Join(home, ".local", "share")
			}
		}
	}
	if root == "" {
		root = "."
	}
	return filepath.Join(root, ".snipman", "snippets")
}

// DataRoot returns the .snipman data root that also holds the install stamp
func DataRoot() string {
	return filepath.Dir(DefaultDir())
}

// Save writes a snippet to disk, creating the directory if needed
func (s *Store) Save(snippet domain.Snippet) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create snippets directory: %w", err)
	}

	data, err := json.MarshalIndent(snippet, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snippet: %w", err)
	}

	path := filepath.Join(s.dir, snippet.ID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snippet file: %w", err)
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.SnippetSavedEvent{Snippet: snippet})
	}

	return nil
}

// Load reads all snippets from disk. Malformed entries are skipped with a
// logged warning so they never reach the UI.
func (s *Store) Load() ([]domain.Snippet, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create snippets directory: %w", err)
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read snippets directory: %w", err)
	}

	snippets := make([]domain.Snippet, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Failed to read %s: %v", path, err)
			continue
		}

		var snippet domain.Snippet
		if err := json.Unmarshal(data, &snippet); err != nil {
			log.Printf("Failed to parse %s: %v", path, err)
			continue
		}
		if snippet.ID == "" {
			log.Printf("Skipping %s: missing id", path)
			continue
		}
		snippets = append(snippets, snippet)
	}

	// ReadDir order is already lexical; keep the load order deterministic
	// across platforms anyway.
	sort.SliceStable(snippets, func(i, j int) bool {
		return snippets[i].ID < snippets[j].ID
	})

	return snippets, nil
}

// Delete removes a snippet file by id
func (s *Store) Delete(id string) error {
	path := filepath.Join(s.dir, id+".json")

	// Read the description before removing so the event can carry it
	var description string
	if data, err := os.ReadFile(path); err == nil {
		var snippet domain.Snippet
		if json.Unmarshal(data, &snippet) == nil {
			description = snippet.Description
		}
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete snippet %s: %w", id, err)
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.SnippetDeletedEvent{ID: id, Description: description})
	}

	return nil
}
