package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"snipman/internal/domain"
	"snipman/internal/eventbus"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	saved := domain.NewSnippet("read file", []string{"fs", "io"}, "fs.readFile(path)")
	require.NoError(t, s.Save(saved))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, saved, loaded[0])
}

func TestLoadEmptyDir(t *testing.T) {
	s := New(t.TempDir())

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, loaded)
}

func TestLoadCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "snippets")
	s := New(dir)

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, loaded)
	require.DirExists(t, dir)
}

func TestLoadSkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	require.NoError(t, s.Save(domain.NewSnippet("good", nil, "ok")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "noid.json"), []byte(`{"description":"x"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, "good", loaded[0].Description)
}

func TestLoadSortedByID(t *testing.T) {
	s := New(t.TempDir())

	require.NoError(t, s.Save(domain.Snippet{ID: "b", Description: "second"}))
	require.NoError(t, s.Save(domain.Snippet{ID: "a", Description: "first"}))
	require.NoError(t, s.Save(domain.Snippet{ID: "c", Description: "third"}))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, []string{loaded[0].ID, loaded[1].ID, loaded[2].ID})
}

func TestDeleteRemovesFile(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	snippet := domain.NewSnippet("gone soon", nil, "rm -rf")
	require.NoError(t, s.Save(snippet))
	require.NoError(t, s.Delete(snippet.ID))

	require.NoFileExists(t, filepath.Join(dir, snippet.ID+".json"))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, loaded)
}

func TestDeleteMissingIsError(t *testing.T) {
	s := New(t.TempDir())

	err := s.Delete("does-not-exist")
	require.Error(t, err)
	require.Contains(t, err.Error(), "does-not-exist")
}

func TestEventsPublished(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	s := NewWithBus(t.TempDir(), bus)

	var savedID string
	var deleted eventbus.SnippetDeletedEvent
	bus.Subscribe(eventbus.EventSnippetSaved, func(e eventbus.DomainEvent) {
		savedID = e.(eventbus.SnippetSavedEvent).Snippet.ID
	})
	bus.Subscribe(eventbus.EventSnippetDeleted, func(e eventbus.DomainEvent) {
		deleted = e.(eventbus.SnippetDeletedEvent)
	})

	snippet := domain.NewSnippet("observed", nil, "x")
	require.NoError(t, s.Save(snippet))
	require.Equal(t, snippet.ID, savedID)

	require.NoError(t, s.Delete(snippet.ID))
	require.Equal(t, snippet.ID, deleted.ID)
	require.Equal(t, "observed", deleted.Description)
}
