package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"codesearch/internal/ui/input/modes"
	"codesearch/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes
}

func New() *Handler {
	ti := textinput.New()
	ti.CharLimit = 512

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeQuery] = modes.NewQueryMode(h.textInput)
	h.modes[types.ModeTarget] = modes.NewTargetMode(h.textInput)
	h.modes[types.ModeDialog] = modes.NewDialogMode(h.textInput)
	h.modes[types.ModeDeleteConfirm] = modes.NewConfirmMode()

	return h
}

// HandleKey routes msg to the current mode and returns the resulting actions.
// Mode changes are applied here and never returned.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	// If not consumed and we're not in a text mode, nothing to do
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	allActions, cmd := h.apply(actions, ctx)

	// If we're in a text mode and didn't handle the key, pass it to text input
	if h.isTextMode(h.currentMode) && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = tea.Batch(cmd, textCmd)
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value(), Mode: h.currentMode})
	}

	return allActions, cmd
}

// apply performs mode changes in order, including those requested by a
// mode's Enter or Exit, and returns the remaining actions.
func (h *Handler) apply(actions []types.Action, ctx types.Context) ([]types.Action, tea.Cmd) {
	var out []types.Action
	var cmd tea.Cmd

	queue := append([]types.Action(nil), actions...)
	for len(queue) > 0 {
		action := queue[0]
		queue = queue[1:]

		change, ok := action.(types.ChangeModeAction)
		if !ok {
			out = append(out, action)
			continue
		}

		// Exit current mode
		if current := h.modes[h.currentMode]; current != nil {
			queue = append(queue, current.Exit(ctx)...)
		}

		h.currentMode = change.Mode
		if h.isTextMode(h.currentMode) {
			h.textInput.Reset()
			h.textInput.SetValue(change.Data)
			h.textInput.CursorEnd()
			cmd = textinput.Blink
		}

		// Enter new mode
		if next := h.modes[h.currentMode]; next != nil {
			queue = append(queue, next.Enter(ctx)...)
		}
	}
	return out, cmd
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// ModeName returns the display name of the current mode
func (h *Handler) ModeName() string {
	if m := h.modes[h.currentMode]; m != nil {
		return m.Name()
	}
	return ""
}

// PendingDelete returns the project awaiting delete confirmation
func (h *Handler) PendingDelete() string {
	if c, ok := h.modes[types.ModeDeleteConfirm].(*modes.ConfirmMode); ok && h.currentMode == types.ModeDeleteConfirm {
		return c.Project()
	}
	return ""
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	switch mode {
	case types.ModeQuery, types.ModeTarget, types.ModeDialog:
		return true
	default:
		return false
	}
}

// IsTextMode reports whether keys currently go to the text input
func (h *Handler) IsTextMode() bool {
	return h.isTextMode(h.currentMode)
}

// Reset returns to normal mode
func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
	h.textInput.Reset()
	h.textInput.Blur()
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

// ChangeMode switches mode outside of key handling, seeding text modes with data
func (h *Handler) ChangeMode(mode types.Mode, data string, ctx types.Context) []types.Action {
	actions, _ := h.apply([]types.Action{types.ChangeModeAction{Mode: mode, Data: data}}, ctx)
	return actions
}

// GetTextInput returns the text input model
func (h *Handler) GetTextInput() *textinput.Model {
	if h == nil {
		return nil
	}
	return h.textInput
}
