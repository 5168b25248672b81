package ui

import (
	"github.com/charmbracelet/bubbles/key"

	inputtypes "codesearch/internal/ui/input/types"
)

// keyMap lists the bindings shown in the help bar. Key routing itself lives
// in the input modes; these bindings only describe it.
type keyMap struct {
	mode inputtypes.Mode

	up, down      key.Binding
	detail        key.Binding
	query, target key.Binding
	projects      key.Binding
	search, index key.Binding
	refresh       key.Binding
	copy, view    key.Binding
	help, quit    key.Binding

	runSearch, runIndex, leave key.Binding

	choose, confirm, cancel, remove key.Binding

	yes, no key.Binding
}

type bindingSpec struct {
	keys   []string
	help   string
	desc   string
	assign func(*keyMap, key.Binding)
}

func newKeyMap() *keyMap {
	km := &keyMap{}
	specs := []bindingSpec{
		{[]string{"up", "k"}, "↑/k", "up", func(m *keyMap, b key.Binding) { m.up = b }},
		{[]string{"down", "j"}, "↓/j", "down", func(m *keyMap, b key.Binding) { m.down = b }},
		{[]string{"enter", " "}, "enter", "detail", func(m *keyMap, b key.Binding) { m.detail = b }},
		{[]string{"/", "s"}, "/", "query", func(m *keyMap, b key.Binding) { m.query = b }},
		{[]string{"t"}, "t", "project path", func(m *keyMap, b key.Binding) { m.target = b }},
		{[]string{"p"}, "p", "projects", func(m *keyMap, b key.Binding) { m.projects = b }},
		{[]string{"S"}, "S", "search", func(m *keyMap, b key.Binding) { m.search = b }},
		{[]string{"i"}, "i", "index", func(m *keyMap, b key.Binding) { m.index = b }},
		{[]string{"r"}, "r", "refresh", func(m *keyMap, b key.Binding) { m.refresh = b }},
		{[]string{"y"}, "y", "copy location", func(m *keyMap, b key.Binding) { m.copy = b }},
		{[]string{"v"}, "v", "view results", func(m *keyMap, b key.Binding) { m.view = b }},
		{[]string{"?"}, "?", "help", func(m *keyMap, b key.Binding) { m.help = b }},
		{[]string{"q", "ctrl+c"}, "q", "quit", func(m *keyMap, b key.Binding) { m.quit = b }},
		{[]string{"enter"}, "enter", "search", func(m *keyMap, b key.Binding) { m.runSearch = b }},
		{[]string{"enter"}, "enter", "index", func(m *keyMap, b key.Binding) { m.runIndex = b }},
		{[]string{"esc", "tab"}, "esc", "done", func(m *keyMap, b key.Binding) { m.leave = b }},
		{[]string{"up", "down"}, "↑/↓", "choose", func(m *keyMap, b key.Binding) { m.choose = b }},
		{[]string{"enter"}, "enter", "select", func(m *keyMap, b key.Binding) { m.confirm = b }},
		{[]string{"esc"}, "esc", "cancel", func(m *keyMap, b key.Binding) { m.cancel = b }},
		{[]string{"ctrl+d", "delete"}, "ctrl+d", "delete", func(m *keyMap, b key.Binding) { m.remove = b }},
		{[]string{"y"}, "y", "delete", func(m *keyMap, b key.Binding) { m.yes = b }},
		{[]string{"n", "esc"}, "n", "keep", func(m *keyMap, b key.Binding) { m.no = b }},
	}
	for _, s := range specs {
		s.assign(km, key.NewBinding(key.WithKeys(s.keys...), key.WithHelp(s.help, s.desc)))
	}
	return km
}

// update adapts the help bar to the current mode and session
func (k *keyMap) update(mode inputtypes.Mode, hasRows, loading bool) {
	k.mode = mode
	k.up.SetEnabled(hasRows)
	k.down.SetEnabled(hasRows)
	k.detail.SetEnabled(hasRows)
	k.copy.SetEnabled(hasRows)
	k.view.SetEnabled(hasRows)
	k.index.SetEnabled(!loading)
}

// ShortHelp implements help.KeyMap
func (k *keyMap) ShortHelp() []key.Binding {
	switch k.mode {
	case inputtypes.ModeQuery:
		return []key.Binding{k.runSearch, k.leave}
	case inputtypes.ModeTarget:
		return []key.Binding{k.runIndex, k.leave}
	case inputtypes.ModeDialog:
		return []key.Binding{k.choose, k.confirm, k.cancel, k.remove}
	case inputtypes.ModeDeleteConfirm:
		return []key.Binding{k.yes, k.no}
	default:
		return []key.Binding{k.query, k.target, k.projects, k.index, k.detail, k.copy, k.help, k.quit}
	}
}

// FullHelp implements help.KeyMap
func (k *keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.detail},
		{k.query, k.target, k.projects},
		{k.search, k.index, k.refresh},
		{k.copy, k.view, k.help, k.quit},
	}
}
