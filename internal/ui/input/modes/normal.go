package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"codesearch/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter, tea.KeySpace:
		// Enter and space expand the selected match
		if ctx.HasRows() {
			return []types.Action{types.ToggleDetailAction{}}, true
		}
		return nil, true
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "/", "s":
		// Edit the query
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery, Data: ctx.Query()}}, true

	case "t":
		// Edit the project target
		return []types.Action{types.ChangeModeAction{Mode: types.ModeTarget, Data: ctx.Target()}}, true

	case "p":
		// Open the project dialog
		return []types.Action{
			types.OpenDialogAction{},
			types.ChangeModeAction{Mode: types.ModeDialog},
		}, true

	case "S":
		// Re-run the search with the current fields
		return []types.Action{types.SearchAction{}}, true

	case "i":
		// Index the project target; disabled while indexing
		if ctx.Loading() {
			return nil, true
		}
		return []types.Action{types.IndexAction{}}, true

	case "r":
		return []types.Action{types.RefreshProjectsAction{}}, true

	case "y":
		if ctx.HasRows() {
			return []types.Action{types.CopyLocationAction{}}, true
		}
		return nil, true

	case "v":
		if ctx.HasRows() {
			return []types.Action{types.ViewResultsAction{}}, true
		}
		return nil, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "esc", "x":
		if ctx.AlertVisible() {
			return []types.Action{types.DismissAlertAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		// First g, wait for next key
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		m.lastKeyWasG = false
	}

	return nil, false
}
