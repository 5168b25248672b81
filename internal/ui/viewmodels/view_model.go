package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"codesearch/internal/ui/state"
	"codesearch/internal/ui/views"
)

// ViewModel transforms session state into view-ready data
type ViewModel struct {
	sess             *state.Session
	baseURL          string
	width            int
	height           int
	help             help.Model
	keys             help.KeyMap
	spinner          string
	deleteTarget     string
	dialogProjects   []string
	dialogOffset     int
	dialogHeight     int
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(sess *state.Session, baseURL string, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		sess:             sess,
		baseURL:          baseURL,
		help:             help.New(),
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width - 4
}

// SetHelp sets the key map shown in the help bar
func (vm *ViewModel) SetHelp(keys help.KeyMap) {
	vm.keys = keys
}

// SetSpinner sets the current spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// SetDeleteTarget sets the project awaiting delete confirmation
func (vm *ViewModel) SetDeleteTarget(target string) {
	vm.deleteTarget = target
}

// SetDialogWindow sets the filtered dialog entries and the visible window
func (vm *ViewModel) SetDialogWindow(projects []string, offset, height int) {
	vm.dialogProjects = projects
	vm.dialogOffset = offset
	vm.dialogHeight = height
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode InputMode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	it := vm.inputTransformer

	filter := vm.sess.DialogFilter
	if it.Mode() == InputModeDialog {
		filter = it.GetInputText()
	}

	var helpView string
	if vm.keys != nil {
		helpView = vm.help.View(vm.keys)
	}

	return views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		BaseURL:       vm.baseURL,
		ActiveProject: vm.sess.ActiveProject,
		Query:         vm.sess.Query,
		Target:        vm.sess.Target,
		EditingQuery:  it.EditingQuery(),
		EditingTarget: it.EditingTarget(),
		FieldInput:    it.GetInputText(),
		Rows:          vm.sess.Rows,
		SelectedRow:   vm.sess.SelectedRow,
		ExpandedRow:   vm.sess.ExpandedRow,
		Loading:       vm.sess.Loading,
		IndexTarget:   vm.sess.IndexTarget,
		Searching:     vm.sess.PendingSearches > 0,
		Spinner:       vm.spinner,
		StatusMessage: vm.sess.StatusMessage,
		StatusKind:    vm.sess.StatusKind,
		AlertVisible:  vm.sess.AlertVisible,
		AlertMessage:  vm.sess.AlertMessage,
		Dialog: views.DialogState{
			Open:          vm.sess.DialogOpen,
			Projects:      vm.dialogProjects,
			Choice:        vm.sess.DialogChoice,
			ActiveProject: vm.sess.ActiveProject,
			Offset:        vm.dialogOffset,
			Height:        vm.dialogHeight,
			FilterInput:   filter,
			DeleteTarget:  vm.deleteTarget,
		},
		HelpView: helpView,
	}
}
