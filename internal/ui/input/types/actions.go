package types

// Query editing actions
type TypeCharAction struct {
	Rune rune
}

func (a TypeCharAction) Type() string { return "type_char" }

type BackspaceAction struct{}

func (a BackspaceAction) Type() string { return "backspace" }

// Navigation actions
type MoveSelectionAction struct {
	Direction string // "next" or "prev"
}

func (a MoveSelectionAction) Type() string { return "move_selection" }

type ScrollPreviewAction struct {
	Delta int
}

func (a ScrollPreviewAction) Type() string { return "scroll_preview" }

type TogglePreviewAction struct{}

func (a TogglePreviewAction) Type() string { return "toggle_preview" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Delete sub-mode actions
type RequestDeleteAction struct{}

func (a RequestDeleteAction) Type() string { return "request_delete" }

type ConfirmDeleteAction struct{}

func (a ConfirmDeleteAction) Type() string { return "confirm_delete" }

type CancelDeleteAction struct{}

func (a CancelDeleteAction) Type() string { return "cancel_delete" }

// Terminal actions
type SelectAction struct{}

func (a SelectAction) Type() string { return "select" }

type QuitAction struct {
	Force bool // true for Ctrl+C
}

func (a QuitAction) Type() string { return "quit" }

// OpenPagerAction views the selected snippet's code in an external pager
type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }
