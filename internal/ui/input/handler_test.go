package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codesearch/internal/ui/input/types"
)

type fakeContext struct {
	rows    bool
	loading bool
	alert   bool
	query   string
	target  string
	choice  string
	filter  string
}

func (c fakeContext) HasRows() bool        { return c.rows }
func (c fakeContext) Loading() bool        { return c.loading }
func (c fakeContext) AlertVisible() bool   { return c.alert }
func (c fakeContext) Query() string        { return c.query }
func (c fakeContext) Target() string       { return c.target }
func (c fakeContext) DialogChoice() string { return c.choice }
func (c fakeContext) DialogFilter() string { return c.filter }

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestQueryModeTypingAndSubmit(t *testing.T) {
	h := New()
	ctx := fakeContext{query: "par"}

	actions, _ := h.HandleKey(keyRunes("/"), ctx)
	assert.Empty(t, actions)
	require.Equal(t, types.ModeQuery, h.CurrentMode())
	assert.Equal(t, "par", h.GetTextInput().Value())

	actions, _ = h.HandleKey(keyRunes("s"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "pars", Mode: types.ModeQuery}, actions[0])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.SubmitTextAction{Text: "pars", Mode: types.ModeQuery}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestIndexKeyDisabledWhileLoading(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(keyRunes("i"), fakeContext{})
	assert.Equal(t, []types.Action{types.IndexAction{}}, actions)

	actions, _ = h.HandleKey(keyRunes("i"), fakeContext{loading: true})
	assert.Empty(t, actions)
}

func TestDialogFlow(t *testing.T) {
	h := New()
	ctx := fakeContext{choice: "repoA"}

	actions, _ := h.HandleKey(keyRunes("p"), ctx)
	assert.Equal(t, []types.Action{types.OpenDialogAction{}}, actions)
	require.Equal(t, types.ModeDialog, h.CurrentMode())

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, ctx)
	assert.Equal(t, []types.Action{types.DialogMoveAction{Direction: "down"}}, actions)

	// j is filter text in the dialog, not navigation
	actions, _ = h.HandleKey(keyRunes("j"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "j", Mode: types.ModeDialog}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.CancelDialogAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestDeleteConfirmation(t *testing.T) {
	h := New()
	ctx := fakeContext{choice: "repoA", filter: "rep"}
	h.ChangeMode(types.ModeDialog, "rep", ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlD}, ctx)
	assert.Empty(t, actions)
	require.Equal(t, types.ModeDeleteConfirm, h.CurrentMode())
	assert.Equal(t, "repoA", h.PendingDelete())

	actions, _ = h.HandleKey(keyRunes("y"), ctx)
	assert.Equal(t, []types.Action{types.DeleteProjectAction{Project: "repoA"}}, actions)
	assert.Equal(t, types.ModeDialog, h.CurrentMode())
	assert.Equal(t, "rep", h.GetTextInput().Value())
}

func TestDeleteSentinelSkipsConfirmation(t *testing.T) {
	h := New()
	ctx := fakeContext{choice: "None"}
	h.ChangeMode(types.ModeDialog, "", ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlD}, ctx)
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeDialog, h.CurrentMode())
}

func TestEscDismissesAlert(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, fakeContext{alert: true})
	assert.Equal(t, []types.Action{types.DismissAlertAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, fakeContext{})
	assert.Empty(t, actions)
}

func TestGGGoesHome(t *testing.T) {
	h := New()
	ctx := fakeContext{rows: true}

	actions, _ := h.HandleKey(keyRunes("g"), ctx)
	assert.Empty(t, actions)
	actions, _ = h.HandleKey(keyRunes("g"), ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "home"}}, actions)
}
