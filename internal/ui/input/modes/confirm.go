package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"codesearch/internal/domain"
	"codesearch/internal/ui/input/types"
)

// ConfirmMode asks before deleting the project highlighted in the dialog
type ConfirmMode struct {
	project string
	filter  string
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "delete-confirm"
}

// Project returns the project awaiting confirmation
func (m *ConfirmMode) Project() string {
	return m.project
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	// Store the project when entering the mode
	m.project = ctx.DialogChoice()
	m.filter = ctx.DialogFilter()
	if !domain.IsProject(m.project) {
		// nothing to delete, go straight back
		return []types.Action{types.ChangeModeAction{Mode: types.ModeDialog, Data: m.filter}}
	}
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	back := types.ChangeModeAction{Mode: types.ModeDialog, Data: m.filter}

	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y":
		return []types.Action{
			types.DeleteProjectAction{Project: m.project},
			back,
		}, true
	case "n", "N", "esc":
		return []types.Action{back}, true
	}

	return nil, true
}
