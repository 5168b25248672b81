package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// InputMode represents the different input modes
type InputMode int

const (
	InputModeNormal InputMode = iota
	InputModeQuery
	InputModeTarget
	InputModeDialog
	InputModeDeleteConfirm
)

// InputTransformer handles input mode transformations
type InputTransformer struct {
	mode      InputMode
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      InputModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode InputMode) {
	it.mode = mode
}

// Mode returns the current input mode
func (it *InputTransformer) Mode() InputMode {
	return it.mode
}

// GetInputText returns the live editor for the field being edited, if any
func (it *InputTransformer) GetInputText() string {
	switch it.mode {
	case InputModeQuery, InputModeTarget, InputModeDialog:
		return it.textInput.View()
	default:
		return ""
	}
}

// EditingQuery reports whether the query field has focus
func (it *InputTransformer) EditingQuery() bool {
	return it.mode == InputModeQuery
}

// EditingTarget reports whether the project field has focus
func (it *InputTransformer) EditingTarget() bool {
	return it.mode == InputModeTarget
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	switch it.mode {
	case InputModeQuery:
		return "query"
	case InputModeTarget:
		return "target"
	case InputModeDialog:
		return "projects"
	case InputModeDeleteConfirm:
		return "delete-confirm"
	default:
		return ""
	}
}
