package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"snipman/internal/domain"
	"snipman/internal/ui/state"
)

func buildState(t *testing.T) *state.AppState {
	t.Helper()
	return state.NewAppState([]domain.Snippet{
		{ID: "a", Description: "read file", Tags: []string{"fs", "io"}, Code: "line1\nline2\nline3\nline4"},
		{ID: "b", Description: "copy io stream", Tags: []string{"io"}, Code: "io.Copy(dst, src)"},
	}, 2)
}

func TestBuildProjectsVisibleOrder(t *testing.T) {
	st := buildState(t)

	vs := Build(st, "normal", "", 80, 24, true)

	require.Len(t, vs.Items, 2)
	require.Equal(t, "read file", vs.Items[0].Description)
	require.Equal(t, []string{"fs", "io"}, vs.Items[0].Tags)
	require.Equal(t, 0, vs.SelectedIndex)
	require.Equal(t, 2, vs.TotalCount)
	require.True(t, vs.ShowTags)
}

func TestBuildNoMatches(t *testing.T) {
	st := buildState(t)
	st.SetQuery("zzz")

	vs := Build(st, "normal", "", 80, 24, false)

	require.Empty(t, vs.Items)
	require.Equal(t, -1, vs.SelectedIndex)
	require.Equal(t, "no snippet selected", vs.Preview.Placeholder)
}

func TestBuildDoesNotMutateState(t *testing.T) {
	st := buildState(t)
	st.SetQuery("io")
	order := append([]int(nil), st.VisibleOrder...)

	Build(st, "normal", "", 80, 24, false)
	Build(st, "delete-confirm", "read file", 80, 24, false)

	require.Equal(t, order, st.VisibleOrder)
	require.Equal(t, "io", st.Query)
}

func TestBuildPreviewTruncatesCompact(t *testing.T) {
	st := buildState(t) // 4 code lines, compact height 2

	vs := Build(st, "normal", "", 80, 24, false)

	require.Equal(t, []string{"line1", "line2"}, vs.Preview.Lines)
	require.True(t, vs.Preview.MoreBelow)
	require.False(t, vs.Preview.Expanded)
}

func TestBuildPreviewScrollWindow(t *testing.T) {
	st := buildState(t)
	st.ScrollPreview(2)

	vs := Build(st, "normal", "", 80, 24, false)

	require.Equal(t, []string{"line3", "line4"}, vs.Preview.Lines)
	require.False(t, vs.Preview.MoreBelow)
}

func TestBuildPreviewExpanded(t *testing.T) {
	st := buildState(t)
	st.TogglePreviewExpanded()

	vs := Build(st, "normal", "", 80, 24, false)

	require.Len(t, vs.Preview.Lines, 4)
	require.False(t, vs.Preview.MoreBelow)
	require.True(t, vs.Preview.Expanded)
}

func TestBuildStatusErrorFlag(t *testing.T) {
	st := buildState(t)

	st.StatusMessage = "Deleted snippet \"read file\""
	vs := Build(st, "normal", "", 80, 24, false)
	require.False(t, vs.StatusIsError)

	st.StatusMessage = "Delete failed: permission denied"
	vs = Build(st, "normal", "", 80, 24, false)
	require.True(t, vs.StatusIsError)
}

func TestRenderSearchBarModes(t *testing.T) {
	r := NewRenderer()
	st := buildState(t)
	st.AppendChar('i')
	st.AppendChar('o')

	out := r.Render(Build(st, "normal", "", 80, 24, false))
	require.Contains(t, out, "Search: io")

	out = r.Render(Build(st, "delete-confirm", "read file", 80, 24, false))
	require.Contains(t, out, `Delete snippet "read file"? (y/n)`)
	require.NotContains(t, out, "Search:")
}

func TestRenderList(t *testing.T) {
	r := NewRenderer()
	st := buildState(t)

	out := r.Render(Build(st, "normal", "", 80, 24, true))
	require.Contains(t, out, "read file")
	require.Contains(t, out, "copy io stream")
	require.Contains(t, out, ">>")
	require.Contains(t, out, "2/2 snippets")
	require.Contains(t, out, "fs,io")
}

func TestRenderNoMatches(t *testing.T) {
	r := NewRenderer()
	st := buildState(t)
	st.SetQuery("zzz")

	out := r.Render(Build(st, "normal", "", 80, 24, false))
	require.Contains(t, out, "no matches")
	require.Contains(t, out, "no snippet selected")
	require.NotContains(t, out, ">>")
}

func TestRenderPreviewMoreMarker(t *testing.T) {
	r := NewRenderer()
	st := buildState(t)

	out := r.Render(Build(st, "normal", "", 80, 24, false))
	require.Contains(t, out, "line1")
	require.True(t, strings.Contains(out, "…"), "truncated preview shows a continuation marker")
}
