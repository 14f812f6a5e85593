package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"snipman/internal/ui/input/modes"
	"snipman/internal/ui/input/types"
)

// Handler routes key events to the handler for the current mode and applies
// mode transitions. Mode handlers are pure event-to-action mappings; all
// state mutation happens in the model when it executes the returned actions.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
}

func New() *Handler {
	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeConfirmDelete] = modes.NewConfirmMode()

	return h
}

// HandleKey dispatches a key to the current mode handler. ChangeModeActions
// are applied here (with Enter/Exit hooks); everything else is returned for
// the model to execute.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil
	}

	var out []types.Action
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			out = append(out, action)
			continue
		}

		if current := h.modes[h.currentMode]; current != nil {
			out = append(out, current.Exit(ctx)...)
		}
		h.currentMode = changeMode.Mode
		if next := h.modes[h.currentMode]; next != nil {
			out = append(out, next.Enter(ctx)...)
		}
	}

	return out
}

// CurrentMode returns the current input mode
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// CurrentModeName returns the display name of the current mode
func (h *Handler) CurrentModeName() string {
	if handler := h.modes[h.currentMode]; handler != nil {
		return handler.Name()
	}
	return ""
}

// ConfirmTarget returns the description of the snippet pending deletion,
// or "" outside of delete confirmation.
func (h *Handler) ConfirmTarget() string {
	if h.currentMode != types.ModeConfirmDelete {
		return ""
	}
	if confirm, ok := h.modes[types.ModeConfirmDelete].(*modes.ConfirmMode); ok {
		return confirm.Description()
	}
	return ""
}

// Reset returns the handler to normal mode
func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
}
