package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode // Which mode owns the text
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Session actions
type SearchAction struct{}

func (a SearchAction) Type() string { return "search" }

type IndexAction struct{}

func (a IndexAction) Type() string { return "index" }

type RefreshProjectsAction struct{}

func (a RefreshProjectsAction) Type() string { return "refresh_projects" }

type DismissAlertAction struct{}

func (a DismissAlertAction) Type() string { return "dismiss_alert" }

// Dialog actions
type OpenDialogAction struct{}

func (a OpenDialogAction) Type() string { return "open_dialog" }

type DialogMoveAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a DialogMoveAction) Type() string { return "dialog_move" }

type ConfirmDialogAction struct{}

func (a ConfirmDialogAction) Type() string { return "confirm_dialog" }

type CancelDialogAction struct{}

func (a CancelDialogAction) Type() string { return "cancel_dialog" }

type DeleteProjectAction struct {
	Project string
}

func (a DeleteProjectAction) Type() string { return "delete_project" }

// Result actions
type ToggleDetailAction struct{}

func (a ToggleDetailAction) Type() string { return "toggle_detail" }

type CopyLocationAction struct{}

func (a CopyLocationAction) Type() string { return "copy_location" }

type ViewResultsAction struct{}

func (a ViewResultsAction) Type() string { return "view_results" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
