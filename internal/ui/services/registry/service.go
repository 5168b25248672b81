package registry

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"codesearch/internal/backend"
	"codesearch/internal/domain"
	"codesearch/internal/eventbus"
	"codesearch/internal/ui/state"
)

// Service keeps the session's project registry in sync with the backend
type Service struct {
	ctx context.Context
	api backend.API
	bus eventbus.EventBus
}

// NewService creates a new registry service
func NewService(ctx context.Context, api backend.API, bus eventbus.EventBus) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Service{ctx: ctx, api: api, bus: bus}
}

// List returns a command fetching the project list
func (s *Service) List() tea.Cmd {
	return func() tea.Msg {
		projects, err := s.api.ListProjects(s.ctx)
		return ListedMsg{Projects: projects, Err: err}
	}
}

// Delete returns a command removing project from the backend.
// The sentinel is never deleted, so it yields no command.
func (s *Service) Delete(project string) tea.Cmd {
	if !domain.IsProject(project) {
		slog.Debug("registry: ignoring delete of non-project", "project", project)
		return nil
	}
	return func() tea.Msg {
		err := s.api.Delete(s.ctx, project)
		return DeletedMsg{Project: project, Err: err}
	}
}

// HandleListed applies a list outcome. A failure leaves the registry untouched.
func (s *Service) HandleListed(sess *state.Session, msg ListedMsg) tea.Cmd {
	if msg.Err != nil {
		slog.Error("registry: list projects failed", "err", msg.Err)
		sess.SetStatus(state.StatusError, "Could not load projects")
		s.bus.Publish(domain.RequestFailedEvent{Operation: "list", Err: msg.Err})
		return nil
	}

	sess.SetRegistry(msg.Projects)
	slog.Debug("registry: projects listed", "count", len(sess.Registry)-1)
	s.bus.Publish(domain.ProjectsListedEvent{Projects: sess.Projects()})
	return nil
}

// HandleDeleted applies a delete outcome. On success the active project
// falls back to the sentinel and the list is refreshed.
func (s *Service) HandleDeleted(sess *state.Session, msg DeletedMsg) tea.Cmd {
	if msg.Err != nil {
		slog.Error("registry: delete project failed", "project", msg.Project, "err", msg.Err)
		sess.SetStatus(state.StatusError, fmt.Sprintf("Could not delete %s", msg.Project))
		s.bus.Publish(domain.RequestFailedEvent{Operation: "delete", Err: msg.Err})
		return nil
	}

	slog.Info("registry: project deleted", "project", msg.Project)
	sess.ResetProject()
	if sess.Target == msg.Project {
		sess.Target = ""
	}
	sess.SetStatus(state.StatusSuccess, fmt.Sprintf("Deleted %s", msg.Project))
	s.bus.Publish(domain.ProjectDeletedEvent{Project: msg.Project})
	return s.List()
}
