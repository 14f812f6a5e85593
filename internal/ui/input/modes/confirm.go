package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"snipman/internal/ui/input/types"
)

// ConfirmMode gates the delete confirmation. Everything except
// confirm/cancel is swallowed so the query and corpus cannot change
// mid-confirmation.
type ConfirmMode struct {
	description string
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "delete-confirm"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	m.description = ctx.SelectedDescription()
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	m.description = ""
	return nil
}

// Description returns the description of the snippet pending deletion
func (m *ConfirmMode) Description() string {
	return m.description
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "y", "Y":
		return []types.Action{
			types.ConfirmDeleteAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "n", "N", "esc":
		return []types.Action{
			types.CancelDeleteAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	// Swallow everything else while confirming
	return nil, true
}
