package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"snipman/internal/config"
	"snipman/internal/domain"
	"snipman/internal/ui/input"
	inputtypes "snipman/internal/ui/input/types"
	"snipman/internal/ui/state"
	"snipman/internal/ui/views"
)

// Result is the outcome of an interactive session
type Result struct {
	Selected bool
	Aborted  bool // Ctrl+C; the caller skips its exit summary
	Code     string
}

// Model represents the UI state
type Model struct {
	state        *state.AppState
	store        state.Deleter
	inputHandler *input.Handler
	renderer     *views.Renderer
	pager        *Pager

	showTags bool
	width    int
	height   int

	result Result
}

// NewModel creates a new UI model over an already-loaded corpus
func NewModel(corpus []domain.Snippet, store state.Deleter, cfg *config.Config) *Model {
	return &Model{
		state:        state.NewAppState(corpus, cfg.UI.PreviewLines),
		store:        store,
		inputHandler: input.New(),
		renderer:     views.NewRenderer(),
		pager:        NewPager(),
		showTags:     cfg.UI.ShowTags,
	}
}

// SetProgram wires the Bubble Tea program, needed for terminal handover
// when an external pager runs
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Result returns the session outcome; valid after the program has exited
func (m *Model) Result() Result {
	return m.result
}

// modelContext gives mode handlers read-only access to the state
type modelContext struct {
	state *state.AppState
}

func (c modelContext) HasSelection() bool {
	_, ok := c.state.SelectedSnippet()
	return ok
}

func (c modelContext) SelectedDescription() string {
	snippet, _ := c.state.SelectedSnippet()
	return snippet.Description
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case pagerDoneMsg:
		if msg.err != nil {
			m.state.StatusMessage = "Pager failed: " + msg.err.Error()
		}

	case tea.KeyMsg:
		// The status message describes only the latest action
		m.state.ClearStatus()

		actions := m.inputHandler.HandleKey(msg, modelContext{state: m.state})

		var cmds []tea.Cmd
		for _, action := range actions {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// processAction applies one action to the search state
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.TypeCharAction:
		m.state.AppendChar(a.Rune)

	case inputtypes.BackspaceAction:
		m.state.Backspace()

	case inputtypes.MoveSelectionAction:
		if a.Direction == "prev" {
			m.state.MoveSelection(state.DirectionPrevious)
		} else {
			m.state.MoveSelection(state.DirectionNext)
		}

	case inputtypes.ScrollPreviewAction:
		m.state.ScrollPreview(a.Delta)

	case inputtypes.TogglePreviewAction:
		m.state.TogglePreviewExpanded()

	case inputtypes.RequestDeleteAction:
		m.state.RequestDelete()

	case inputtypes.ConfirmDeleteAction:
		if err := m.state.ConfirmDelete(m.store); err != nil {
			// Recoverable; already surfaced via the status message
			log.Printf("Delete failed: %v", err)
		}

	case inputtypes.CancelDeleteAction:
		m.state.CancelDelete()

	case inputtypes.SelectAction:
		if snippet, ok := m.state.SelectedSnippet(); ok {
			m.result = Result{Selected: true, Code: snippet.Code}
			return tea.Quit
		}

	case inputtypes.QuitAction:
		m.result.Aborted = a.Force
		return tea.Quit

	case inputtypes.OpenPagerAction:
		if snippet, ok := m.state.SelectedSnippet(); ok {
			return m.openPagerCmd(snippet.Code)
		}
	}

	return nil
}

func (m *Model) openPagerCmd(code string) tea.Cmd {
	return func() tea.Msg {
		return pagerDoneMsg{err: m.pager.Show(code)}
	}
}

func (m *Model) View() string {
	vs := views.Build(
		m.state,
		m.inputHandler.CurrentModeName(),
		m.inputHandler.ConfirmTarget(),
		m.width,
		m.height,
		m.showTags,
	)
	return m.renderer.Render(vs)
}
