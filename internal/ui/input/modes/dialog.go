package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"codesearch/internal/ui/input/types"
)

// DialogMode drives the project dialog. Printable keys go to the filter.
type DialogMode struct {
	TextInputMode
}

func NewDialogMode(ti *textinput.Model) *DialogMode {
	return &DialogMode{TextInputMode: NewTextInputMode(types.ModeDialog, "projects", ti)}
}

func (m *DialogMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "up", "ctrl+p", "ctrl+k":
		return []types.Action{types.DialogMoveAction{Direction: "up"}}, true
	case "down", "ctrl+n", "ctrl+j":
		return []types.Action{types.DialogMoveAction{Direction: "down"}}, true
	case "home":
		return []types.Action{types.DialogMoveAction{Direction: "home"}}, true
	case "end":
		return []types.Action{types.DialogMoveAction{Direction: "end"}}, true
	case "enter":
		return []types.Action{
			types.ConfirmDialogAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "esc":
		return []types.Action{
			types.CancelDialogAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "ctrl+d", "delete":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeDeleteConfirm}}, true
	}
	return nil, false
}
