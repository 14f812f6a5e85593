package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"snipman/internal/ui/state"
)

// ListItem is one visible snippet row
type ListItem struct {
	Description string
	Tags        []string
}

// Preview is the windowed code block for the selected snippet
type Preview struct {
	Lines       []string
	MoreBelow   bool   // the window cuts off before the last code line
	Expanded    bool
	Placeholder string // shown instead of code when nothing is selected
}

// ViewState is a passive description of what should currently be displayed.
// Building it never mutates the application state.
type ViewState struct {
	Width         int
	Height        int
	Query         string
	Mode          string
	ConfirmTarget string // description pending deletion; "" outside confirmation
	Status        string
	StatusIsError bool
	Items         []ListItem
	SelectedIndex int // index into Items, -1 for none
	Preview       Preview
	ShowTags      bool
	TotalCount    int
}

// Build projects the search state and current mode into a ViewState
func Build(st *state.AppState, mode string, confirmTarget string, width, height int, showTags bool) ViewState {
	vs := ViewState{
		Width:         width,
		Height:        height,
		Query:         st.Query,
		Mode:          mode,
		ConfirmTarget: confirmTarget,
		Status:        st.StatusMessage,
		StatusIsError: strings.HasPrefix(st.StatusMessage, "Delete failed"),
		SelectedIndex: st.Selected,
		ShowTags:      showTags,
		TotalCount:    len(st.Corpus),
	}

	vs.Items = make([]ListItem, 0, len(st.VisibleOrder))
	for _, corpusIndex := range st.VisibleOrder {
		snippet := st.Corpus[corpusIndex]
		vs.Items = append(vs.Items, ListItem{
			Description: snippet.Description,
			Tags:        snippet.Tags,
		})
	}

	vs.Preview = buildPreview(st)
	return vs
}

// buildPreview windows the selected snippet's code by the preview scroll,
// truncating to the compact height unless the preview is expanded.
func buildPreview(st *state.AppState) Preview {
	snippet, ok := st.SelectedSnippet()
	if !ok {
		return Preview{Placeholder: "no snippet selected"}
	}

	lines := strings.Split(snippet.Code, "\n")
	start := st.PreviewScroll
	if start > len(lines)-1 {
		start = len(lines) - 1
	}
	if start < 0 {
		start = 0
	}

	end := len(lines)
	if !st.PreviewExpanded && start+st.PreviewLines < end {
		end = start + st.PreviewLines
	}

	return Preview{
		Lines:     lines[start:end],
		MoreBelow: end < len(lines),
		Expanded:  st.PreviewExpanded,
	}
}

// keyMap describes the key bindings shown in the help footer
type keyMap struct {
	Navigate key.Binding
	Select   key.Binding
	Preview  key.Binding
	Scroll   key.Binding
	Pager    key.Binding
	Delete   key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.Select, k.Preview, k.Scroll, k.Pager, k.Delete, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigate, k.Select, k.Preview},
		{k.Scroll, k.Pager, k.Delete, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Navigate: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "navigate"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "copy & exit"),
		),
		Preview: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "expand preview"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("pgup", "pgdown"),
			key.WithHelp("pgup/pgdn", "scroll preview"),
		),
		Pager: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open in pager"),
		),
		Delete: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// Renderer turns a ViewState into the final terminal string
type Renderer struct {
	styles *Styles
	keys   keyMap
	help   help.Model
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{
		styles: NewStyles(),
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("snipman"))
	content.WriteString("\n")

	content.WriteString(r.renderSearchBar(vs))
	content.WriteString("\n")

	content.WriteString(r.renderList(vs))
	content.WriteString("\n")

	content.WriteString(r.renderPreview(vs))
	content.WriteString("\n")

	if vs.Status != "" {
		style := r.styles.Status
		if vs.StatusIsError {
			style = r.styles.StatusError
		}
		content.WriteString(style.Render(vs.Status))
		content.WriteString("\n")
	}

	content.WriteString(r.styles.Help.Render(r.help.View(r.keys)))

	return content.String()
}

func (r *Renderer) renderSearchBar(vs ViewState) string {
	if vs.ConfirmTarget != "" {
		return r.styles.Confirm.Render(fmt.Sprintf("Delete snippet %q? (y/n): ", vs.ConfirmTarget))
	}
	return r.styles.SearchBar.Render(fmt.Sprintf("Search: %s█", vs.Query))
}

func (r *Renderer) renderList(vs ViewState) string {
	if len(vs.Items) == 0 {
		return r.styles.Dim.Render("no matches")
	}

	lines := make([]string, 0, len(vs.Items))
	for i, item := range vs.Items {
		line := item.Description
		if vs.ShowTags && len(item.Tags) > 0 {
			line += " " + r.styles.Tags.Render("["+strings.Join(item.Tags, ",")+"]")
		}
		if i == vs.SelectedIndex {
			line = r.styles.HighlightBg.Render(r.styles.Highlight.Render(">> ") + line)
		} else {
			line = "   " + line
		}
		lines = append(lines, line)
	}

	footer := r.styles.Dim.Render(fmt.Sprintf("%d/%d snippets", len(vs.Items), vs.TotalCount))
	return strings.Join(lines, "\n") + "\n" + footer
}

func (r *Renderer) renderPreview(vs ViewState) string {
	if vs.Preview.Placeholder != "" {
		return r.styles.PreviewBox.Render(r.styles.Dim.Render(vs.Preview.Placeholder))
	}

	body := strings.Join(vs.Preview.Lines, "\n")
	if vs.Preview.MoreBelow {
		body += "\n" + r.styles.Dim.Render("…")
	}
	return r.styles.PreviewBox.Render(body)
}
