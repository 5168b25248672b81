package session

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"codesearch/internal/backend"
	"codesearch/internal/domain"
	"codesearch/internal/eventbus"
	"codesearch/internal/ui/logic"
	"codesearch/internal/ui/services/indexing"
	"codesearch/internal/ui/services/registry"
	"codesearch/internal/ui/services/search"
	"codesearch/internal/ui/state"
)

// AlertExpiredMsg is delivered when an alert's auto-hide timer fires
type AlertExpiredMsg struct {
	Token uint64
}

// Options tunes the controller
type Options struct {
	AlertTimeout        time.Duration // 0 keeps alerts until dismissed
	DiscardStaleResults bool
}

// DefaultOptions mirrors the default configuration
func DefaultOptions() Options {
	return Options{AlertTimeout: 6 * time.Second, DiscardStaleResults: true}
}

// Controller owns the session state and turns user intents and backend
// outcomes into state changes. It must only be used from the Bubble Tea
// update loop.
type Controller struct {
	sess     *state.Session
	bus      eventbus.EventBus
	registry *registry.Service
	indexing *indexing.Service
	search   *search.Service
	opts     Options
}

// New creates a controller over a fresh session
func New(ctx context.Context, api backend.API, bus eventbus.EventBus, opts Options) *Controller {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Controller{
		sess:     state.NewSession(),
		bus:      bus,
		registry: registry.NewService(ctx, api, bus),
		indexing: indexing.NewService(ctx, api, bus),
		search:   search.NewService(ctx, api, bus, opts.DiscardStaleResults),
		opts:     opts,
	}
}

// Session exposes the state for rendering
func (c *Controller) Session() *state.Session {
	return c.sess
}

// Init loads the project list
func (c *Controller) Init() tea.Cmd {
	return c.registry.List()
}

// Update applies backend outcomes and timer messages. It reports whether
// msg belonged to the controller.
func (c *Controller) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case registry.ListedMsg:
		return c.registry.HandleListed(c.sess, msg), true
	case registry.DeletedMsg:
		return c.registry.HandleDeleted(c.sess, msg), true
	case indexing.IndexedMsg:
		return c.indexing.HandleIndexed(c.sess, msg, c.registry.List), true
	case search.ResultsMsg:
		return c.search.HandleResults(c.sess, msg), true
	case AlertExpiredMsg:
		if c.sess.ExpireAlert(msg.Token) {
			slog.Debug("session: alert expired", "token", msg.Token)
		}
		return nil, true
	}
	return nil, false
}

// RefreshProjects reloads the registry
func (c *Controller) RefreshProjects() tea.Cmd {
	return c.registry.List()
}

// Dialog

// OpenDialog shows the project dialog preselecting the active project and
// refreshes the registry.
func (c *Controller) OpenDialog() tea.Cmd {
	c.sess.DialogOpen = true
	c.sess.DialogChoice = c.sess.ActiveProject
	c.sess.DialogFilter = ""
	return c.registry.List()
}

// ChooseInDialog moves the dialog selection without committing it
func (c *Controller) ChooseInDialog(id string) {
	if !c.sess.DialogOpen {
		return
	}
	c.sess.DialogChoice = id
}

// SetDialogFilter narrows the listed projects
func (c *Controller) SetDialogFilter(filter string) {
	c.sess.DialogFilter = filter
}

// VisibleProjects returns the registry entries matching the dialog filter
func (c *Controller) VisibleProjects() []string {
	return logic.FilterProjects(c.sess.Registry, c.sess.DialogFilter)
}

// ConfirmDialog commits the dialog choice as the active project. A real
// project is mirrored into the project target field.
func (c *Controller) ConfirmDialog() {
	if !c.sess.DialogOpen {
		return
	}
	choice := c.sess.DialogChoice
	if choice == "" {
		choice = domain.NoProject
	}
	c.sess.ActiveProject = choice
	c.sess.DialogOpen = false
	c.sess.DialogFilter = ""
	if domain.IsProject(choice) {
		c.sess.Target = choice
	}
	slog.Debug("session: project selected", "project", choice)
}

// CancelDialog closes the dialog leaving the active project unchanged
func (c *Controller) CancelDialog() {
	c.sess.DialogOpen = false
	c.sess.DialogFilter = ""
	c.sess.DialogChoice = c.sess.ActiveProject
}

// DeleteChoice deletes the project highlighted in the dialog
func (c *Controller) DeleteChoice() tea.Cmd {
	return c.registry.Delete(c.sess.DialogChoice)
}

// Text fields

// SetQuery updates the query text
func (c *Controller) SetQuery(query string) {
	c.sess.Query = query
}

// SetTarget updates the project target text
func (c *Controller) SetTarget(target string) {
	c.sess.Target = target
}

// Actions

// Search runs the current query against the project target, or raises the
// alert when the input is incomplete.
func (c *Controller) Search() tea.Cmd {
	cmd, err := c.search.Start(c.sess)
	if err != nil {
		return c.rejectInput("search", err)
	}
	return cmd
}

// Index indexes the project target, or raises the alert when it is empty
func (c *Controller) Index() tea.Cmd {
	cmd, err := c.indexing.Start(c.sess)
	if err != nil {
		return c.rejectInput("index", err)
	}
	return cmd
}

// DismissAlert hides the alert
func (c *Controller) DismissAlert() {
	c.sess.DismissAlert()
}

// Results

// SelectRow moves the row cursor
func (c *Controller) SelectRow(index int) {
	if index < 0 || index >= len(c.sess.Rows) {
		return
	}
	if index != c.sess.SelectedRow {
		c.sess.ExpandedRow = -1
	}
	c.sess.SelectedRow = index
}

// ToggleDetail expands or collapses the selected row's detail
func (c *Controller) ToggleDetail() {
	if _, ok := c.sess.SelectedRowData(); !ok {
		return
	}
	if c.sess.ExpandedRow == c.sess.SelectedRow {
		c.sess.ExpandedRow = -1
		return
	}
	c.sess.ExpandedRow = c.sess.SelectedRow
}

func (c *Controller) rejectInput(op string, err error) tea.Cmd {
	slog.Warn("session: input rejected", "operation", op, "err", err)
	c.bus.Publish(domain.InputRejectedEvent{Operation: op, Reason: err})

	token := c.sess.ShowAlert(logic.AlertText)
	if c.opts.AlertTimeout <= 0 {
		return nil
	}
	return tea.Tick(c.opts.AlertTimeout, func(time.Time) tea.Msg {
		return AlertExpiredMsg{Token: token}
	})
}
