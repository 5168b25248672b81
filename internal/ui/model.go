package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"codesearch/internal/backend"
	"codesearch/internal/eventbus"
	"codesearch/internal/ui/input"
	inputtypes "codesearch/internal/ui/input/types"
	"codesearch/internal/ui/logic"
	"codesearch/internal/ui/session"
	"codesearch/internal/ui/state"
	"codesearch/internal/ui/viewmodels"
	"codesearch/internal/ui/views"
)

// Options configures the UI model
type Options struct {
	BaseURL    string
	Session    session.Options
	ShowDetail bool                // enter/space expands the selected row
	Clipboard  func(string) error // nil disables copying
}

// Model represents the UI state
type Model struct {
	ctrl *session.Controller
	sess *state.Session
	opts Options

	// UI-specific state not in the session
	width       int
	height      int
	inPagerMode bool // tracks if we're currently in pager mode
	spinning    bool

	// Handlers
	rowNav       *logic.Navigator // row cursor over the results
	dialogNav    *logic.Navigator // cursor over the filtered dialog entries
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	keys         *keyMap
	spinner      spinner.Model
	helpRender   *HelpRenderer
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(ctx context.Context, api backend.API, bus eventbus.EventBus, opts Options) *Model {
	ctrl := session.New(ctx, api, bus, opts.Session)

	m := &Model{
		ctrl:         ctrl,
		sess:         ctrl.Session(),
		opts:         opts,
		rowNav:       logic.NewNavigator(10),
		dialogNav:    logic.NewNavigator(8),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		keys:         newKeyMap(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		helpRender:   NewHelpRenderer(),
		pager:        NewPagerOps(),
	}
	m.viewModel = viewmodels.NewViewModel(m.sess, opts.BaseURL, *m.inputHandler.GetTextInput())
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Session exposes the session state
func (m *Model) Session() *state.Session {
	return m.sess
}

// Init loads the project list
func (m *Model) Init() tea.Cmd {
	return m.ctrl.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()

	case tea.KeyMsg:
		ctx := &ModelContext{Session: m.sess}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)
		cmds = append(cmds, cmd)
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}

	case spinner.TickMsg:
		if !m.busy() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false

	case pagerMsg:
		if msg.err != nil {
			slog.Error("ui: pager failed", "title", msg.title, "err", msg.err)
			m.sess.SetStatus(state.StatusError, fmt.Sprintf("Pager failed: %v", msg.err))
		}

	case clipboardMsg:
		if msg.err != nil {
			slog.Error("ui: copy failed", "location", msg.location, "err", msg.err)
			m.sess.SetStatus(state.StatusError, "Copy failed")
		} else {
			m.sess.SetStatus(state.StatusSuccess, fmt.Sprintf("Copied %s", msg.location))
		}

	default:
		if cmd, handled := m.ctrl.Update(msg); handled {
			cmds = append(cmds, cmd)
			m.syncDialog()
			break
		}
		cmds = append(cmds, m.inputHandler.Update(msg))
	}

	cmds = append(cmds, m.startSpinner())
	return m, tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigateRows(a.Direction)

	case inputtypes.UpdateTextAction:
		m.applyText(a.Mode, a.Text)

	case inputtypes.SubmitTextAction:
		m.applyText(a.Mode, a.Text)
		switch a.Mode {
		case inputtypes.ModeQuery:
			return m.ctrl.Search()
		case inputtypes.ModeTarget:
			return m.ctrl.Index()
		}

	case inputtypes.CancelTextAction:
		// the field keeps what was typed

	case inputtypes.SearchAction:
		return m.ctrl.Search()

	case inputtypes.IndexAction:
		return m.ctrl.Index()

	case inputtypes.RefreshProjectsAction:
		return m.ctrl.RefreshProjects()

	case inputtypes.DismissAlertAction:
		m.ctrl.DismissAlert()

	case inputtypes.OpenDialogAction:
		cmd := m.ctrl.OpenDialog()
		m.syncDialog()
		return cmd

	case inputtypes.DialogMoveAction:
		m.moveDialog(a.Direction)

	case inputtypes.ConfirmDialogAction:
		m.ctrl.ConfirmDialog()

	case inputtypes.CancelDialogAction:
		m.ctrl.CancelDialog()

	case inputtypes.DeleteProjectAction:
		m.ctrl.ChooseInDialog(a.Project)
		return m.ctrl.DeleteChoice()

	case inputtypes.ToggleDetailAction:
		if m.opts.ShowDetail {
			m.ctrl.ToggleDetail()
		}

	case inputtypes.CopyLocationAction:
		return m.copyLocation()

	case inputtypes.ViewResultsAction:
		return m.showInPager("results", m.resultsReport())

	case inputtypes.ToggleHelpAction:
		return m.showInPager("help", m.helpRender.RenderHelpContentPlain())

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

func (m *Model) applyText(mode inputtypes.Mode, text string) {
	switch mode {
	case inputtypes.ModeQuery:
		m.ctrl.SetQuery(text)
	case inputtypes.ModeTarget:
		m.ctrl.SetTarget(text)
	case inputtypes.ModeDialog:
		m.ctrl.SetDialogFilter(text)
		m.syncDialog()
	}
}

func (m *Model) navigateRows(direction string) {
	m.rowNav.Reset(len(m.sess.Rows), m.sess.SelectedRow)
	switch direction {
	case "up":
		m.rowNav.MoveUp()
	case "down":
		m.rowNav.MoveDown()
	case "pageup":
		m.rowNav.PageUp()
	case "pagedown":
		m.rowNav.PageDown()
	case "home":
		m.rowNav.GoToTop()
	case "end":
		m.rowNav.GoToBottom()
	}
	m.ctrl.SelectRow(m.rowNav.GetSelectedIndex())
}

// syncDialog keeps the dialog cursor on the current choice. When the filter
// hides the choice, the first visible entry is chosen instead.
func (m *Model) syncDialog() {
	if !m.sess.DialogOpen {
		return
	}
	visible := m.ctrl.VisibleProjects()
	idx := logic.IndexOf(visible, m.sess.DialogChoice)
	if idx < 0 && len(visible) > 0 {
		idx = 0
		m.ctrl.ChooseInDialog(visible[0])
	}
	m.dialogNav.Reset(len(visible), idx)
}

func (m *Model) moveDialog(direction string) {
	visible := m.ctrl.VisibleProjects()
	if len(visible) == 0 {
		return
	}
	m.dialogNav.Reset(len(visible), logic.IndexOf(visible, m.sess.DialogChoice))
	switch direction {
	case "up":
		m.dialogNav.MoveUp()
	case "down":
		m.dialogNav.MoveDown()
	case "home":
		m.dialogNav.GoToTop()
	case "end":
		m.dialogNav.GoToBottom()
	}
	m.ctrl.ChooseInDialog(visible[m.dialogNav.GetSelectedIndex()])
}

func (m *Model) copyLocation() tea.Cmd {
	row, ok := m.sess.SelectedRowData()
	if !ok {
		return nil
	}
	if m.opts.Clipboard == nil {
		m.sess.SetStatus(state.StatusError, "Clipboard unavailable")
		return nil
	}
	location := row.Location()
	copyFn := m.opts.Clipboard
	return func() tea.Msg {
		return clipboardMsg{location: location, err: copyFn(location)}
	}
}

func (m *Model) resultsReport() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Query:   %s\nProject: %s\n\n", m.sess.Query, m.sess.Target)
	b.WriteString(views.RenderMatchTable(m.sess.Rows))
	return b.String()
}

// showInPager returns a command that hands the terminal to the ov pager,
// pausing and resuming rendering around it
func (m *Model) showInPager(title, content string) tea.Cmd {
	if !m.pager.Available() {
		m.sess.SetStatus(state.StatusError, "Pager unavailable")
		return nil
	}
	program := m.program
	pager := m.pager
	return func() tea.Msg {
		program.Send(pauseRenderingMsg{})
		err := pager.ShowInPager(content)
		program.Send(resumeRenderingMsg{})
		return pagerMsg{title: title, err: err}
	}
}

func (m *Model) busy() bool {
	return m.sess.Loading || m.sess.PendingSearches > 0
}

func (m *Model) startSpinner() tea.Cmd {
	if m.spinning || !m.busy() {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

// updateViewportHeight sizes the row and dialog cursors to the terminal
func (m *Model) updateViewportHeight() {
	rows := m.height - 12
	if rows < 1 {
		rows = 1
	}
	m.rowNav.SetViewportHeight(rows)

	dialog := m.height - 16
	if dialog < 3 {
		dialog = 3
	}
	if dialog > 12 {
		dialog = 12
	}
	m.dialogNav.SetViewportHeight(dialog)
}

func (m *Model) inputMode() viewmodels.InputMode {
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeQuery:
		return viewmodels.InputModeQuery
	case inputtypes.ModeTarget:
		return viewmodels.InputModeTarget
	case inputtypes.ModeDialog:
		return viewmodels.InputModeDialog
	case inputtypes.ModeDeleteConfirm:
		return viewmodels.InputModeDeleteConfirm
	default:
		return viewmodels.InputModeNormal
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	m.keys.update(m.inputHandler.CurrentMode(), len(m.sess.Rows) > 0, m.sess.Loading)
	m.keys.detail.SetEnabled(m.opts.ShowDetail && len(m.sess.Rows) > 0)
	m.keys.copy.SetEnabled(m.opts.Clipboard != nil && len(m.sess.Rows) > 0)

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetInputMode(m.inputMode())
	m.viewModel.UpdateTextInput(*m.inputHandler.GetTextInput())
	m.viewModel.SetSpinner(m.spinner.View())
	m.viewModel.SetHelp(m.keys)
	m.viewModel.SetDeleteTarget(m.inputHandler.PendingDelete())

	visible := m.ctrl.VisibleProjects()
	offset, end := m.dialogNav.Window()
	m.viewModel.SetDialogWindow(visible, offset, end-offset)

	return m.renderer.Render(m.viewModel.BuildViewState())
}
