package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"snipman/internal/ui/input/types"
)

// previewPageSize is how many lines page up/down scrolls the preview
const previewPageSize = 5

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return []types.Action{types.QuitAction{Force: msg.Type == tea.KeyCtrlC}}, true

	case tea.KeyEnter:
		if ctx.HasSelection() {
			return []types.Action{types.SelectAction{}}, true
		}
		return nil, true

	case tea.KeyUp:
		return []types.Action{types.MoveSelectionAction{Direction: "prev"}}, true

	case tea.KeyDown:
		return []types.Action{types.MoveSelectionAction{Direction: "next"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.ScrollPreviewAction{Delta: -previewPageSize}}, true

	case tea.KeyPgDown:
		return []types.Action{types.ScrollPreviewAction{Delta: previewPageSize}}, true

	case tea.KeyTab:
		return []types.Action{types.TogglePreviewAction{}}, true

	case tea.KeyCtrlD:
		// Ask for confirmation before deleting the selected snippet
		if ctx.HasSelection() {
			return []types.Action{
				types.RequestDeleteAction{},
				types.ChangeModeAction{Mode: types.ModeConfirmDelete},
			}, true
		}
		return nil, true

	case tea.KeyCtrlO:
		if ctx.HasSelection() {
			return []types.Action{types.OpenPagerAction{}}, true
		}
		return nil, true

	case tea.KeyBackspace:
		return []types.Action{types.BackspaceAction{}}, true

	case tea.KeySpace:
		return []types.Action{types.TypeCharAction{Rune: ' '}}, true

	case tea.KeyRunes:
		actions := make([]types.Action, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			actions = append(actions, types.TypeCharAction{Rune: r})
		}
		return actions, true
	}

	return nil, false
}
