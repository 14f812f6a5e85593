package state

import (
	"fmt"
	"strings"

	"snipman/internal/domain"
	"snipman/internal/ui/logic"
)

// Direction is a selection movement
type Direction int

const (
	DirectionNext Direction = iota
	DirectionPrevious
)

// Deleter removes a snippet from persistent storage
type Deleter interface {
	Delete(id string) error
}

// AppState owns the snippet corpus and everything derived from it: the
// current query, the filtered and ranked visible order, the selection,
// the preview window, and the transient status message.
type AppState struct {
	Corpus       []domain.Snippet
	Query        string
	VisibleOrder []int // indices into Corpus; identity order when Query is empty
	Selected     int   // index into VisibleOrder, -1 when nothing is visible

	PreviewScroll   int
	PreviewExpanded bool
	PreviewLines    int // compact preview height

	StatusMessage string

	pendingDelete bool
}

// NewAppState creates state for a loaded corpus, showing everything unranked
func NewAppState(corpus []domain.Snippet, previewLines int) *AppState {
	if previewLines <= 0 {
		previewLines = 10
	}
	s := &AppState{
		Corpus:       corpus,
		PreviewLines: previewLines,
	}
	s.rebuildVisibleOrder()
	return s
}

// rebuildVisibleOrder recomputes VisibleOrder from Query, resets the
// selection to the top entry (or none), and rewinds the preview.
func (s *AppState) rebuildVisibleOrder() {
	if s.Query == "" {
		s.VisibleOrder = logic.IdentityOrder(len(s.Corpus))
	} else {
		s.VisibleOrder = logic.Rank(s.Query, s.Corpus)
	}

	if len(s.VisibleOrder) > 0 {
		s.Selected = 0
	} else {
		s.Selected = -1
	}
	s.PreviewScroll = 0
}

// SetQuery replaces the query and recomputes the derived state
func (s *AppState) SetQuery(query string) {
	s.Query = query
	s.rebuildVisibleOrder()
}

// AppendChar appends one character to the query
func (s *AppState) AppendChar(r rune) {
	s.SetQuery(s.Query + string(r))
}

// Backspace removes the last character from the query. No-op when empty.
func (s *AppState) Backspace() {
	if s.Query == "" {
		return
	}
	runes := []rune(s.Query)
	s.SetQuery(string(runes[:len(runes)-1]))
}

// MoveSelection moves the selection with circular wrap. No-op when nothing
// is visible. The preview rewinds only on an actual move.
func (s *AppState) MoveSelection(dir Direction) {
	if len(s.VisibleOrder) == 0 {
		return
	}

	next := s.Selected
	switch dir {
	case DirectionNext:
		next++
		if next >= len(s.VisibleOrder) {
			next = 0
		}
	case DirectionPrevious:
		next--
		if next < 0 {
			next = len(s.VisibleOrder) - 1
		}
	}

	if next != s.Selected {
		s.Selected = next
		s.PreviewScroll = 0
	}
}

// ScrollPreview moves the preview window by delta lines, clamped to the
// selected snippet's line range. No-op when nothing is selected.
func (s *AppState) ScrollPreview(delta int) {
	snippet, ok := s.SelectedSnippet()
	if !ok {
		return
	}

	maxScroll := len(strings.Split(snippet.Code, "\n")) - 1
	if maxScroll < 0 {
		maxScroll = 0
	}

	s.PreviewScroll += delta
	if s.PreviewScroll < 0 {
		s.PreviewScroll = 0
	}
	if s.PreviewScroll > maxScroll {
		s.PreviewScroll = maxScroll
	}
}

// TogglePreviewExpanded switches between the compact and full preview
func (s *AppState) TogglePreviewExpanded() {
	s.PreviewExpanded = !s.PreviewExpanded
}

// SelectedSnippet returns the currently selected snippet, if any
func (s *AppState) SelectedSnippet() (domain.Snippet, bool) {
	if s.Selected < 0 || s.Selected >= len(s.VisibleOrder) {
		return domain.Snippet{}, false
	}
	return s.Corpus[s.VisibleOrder[s.Selected]], true
}

// HasPendingDelete reports whether a delete confirmation is in progress
func (s *AppState) HasPendingDelete() bool {
	return s.pendingDelete
}

// RequestDelete marks the selected snippet for deletion. The corpus is not
// touched until ConfirmDelete.
func (s *AppState) RequestDelete() {
	if _, ok := s.SelectedSnippet(); !ok {
		return
	}
	s.pendingDelete = true
}

// ConfirmDelete resolves a pending delete: asks the store to remove the
// selected snippet and, on success, drops it from the corpus and recomputes
// the visible order with the query unchanged. The selection stays at the same
// visible position, clamped to the new last entry. A failed delete leaves the
// corpus untouched and is surfaced through the status message.
func (s *AppState) ConfirmDelete(store Deleter) error {
	defer func() { s.pendingDelete = false }()

	snippet, ok := s.SelectedSnippet()
	if !s.pendingDelete || !ok {
		return nil
	}

	if err := store.Delete(snippet.ID); err != nil {
		s.StatusMessage = fmt.Sprintf("Delete failed: %v", err)
		return err
	}

	corpusIndex := s.VisibleOrder[s.Selected]
	s.Corpus = append(s.Corpus[:corpusIndex], s.Corpus[corpusIndex+1:]...)

	position := s.Selected
	s.rebuildVisibleOrder()
	if len(s.VisibleOrder) > 0 {
		if position >= len(s.VisibleOrder) {
			position = len(s.VisibleOrder) - 1
		}
		s.Selected = position
	}

	s.StatusMessage = fmt.Sprintf("Deleted snippet %q", snippet.Description)
	return nil
}

// CancelDelete abandons a pending delete without touching the corpus
func (s *AppState) CancelDelete() {
	s.pendingDelete = false
	s.StatusMessage = "Delete canceled"
}

// ClearStatus drops the transient status message. Called before each new
// user action so messages describe only the latest outcome.
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
}
