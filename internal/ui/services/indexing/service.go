package indexing

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"codesearch/internal/backend"
	"codesearch/internal/domain"
	"codesearch/internal/eventbus"
	"codesearch/internal/ui/logic"
	"codesearch/internal/ui/state"
)

// Service drives indexing of the session's project target
type Service struct {
	ctx context.Context
	api backend.API
	bus eventbus.EventBus
}

// NewService creates a new indexing service
func NewService(ctx context.Context, api backend.API, bus eventbus.EventBus) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Service{ctx: ctx, api: api, bus: bus}
}

// Start validates the project target and, when it passes, closes the dialog,
// sets loading and returns the request command. A validation failure is
// returned without touching the session. While a request is in flight the
// intent is ignored and both results are nil.
func (s *Service) Start(sess *state.Session) (tea.Cmd, error) {
	if sess.Loading {
		slog.Debug("indexing: already in progress, ignoring", "target", sess.IndexTarget)
		return nil, nil
	}

	target := sess.Target
	if err := logic.ValidateIndex(target); err != nil {
		return nil, err
	}

	sess.DialogOpen = false
	sess.Loading = true
	sess.IndexTarget = target
	sess.SetStatus(state.StatusInfo, fmt.Sprintf("Indexing %s", target))
	slog.Info("indexing: started", "target", target)
	s.bus.Publish(domain.IndexStartedEvent{Target: target})

	return func() tea.Msg {
		err := s.api.Index(s.ctx, target)
		return IndexedMsg{Target: target, Err: err}
	}, nil
}

// HandleIndexed applies an indexing outcome. Loading is cleared either way.
// On success the returned command, if any, comes from refresh.
func (s *Service) HandleIndexed(sess *state.Session, msg IndexedMsg, refresh func() tea.Cmd) tea.Cmd {
	sess.Loading = false
	sess.IndexTarget = ""

	if msg.Err != nil {
		slog.Error("indexing: failed", "target", msg.Target, "err", msg.Err)
		sess.SetStatus(state.StatusError, "Indexing failed")
		s.bus.Publish(domain.IndexCompletedEvent{Target: msg.Target, Success: false, Error: msg.Err})
		s.bus.Publish(domain.RequestFailedEvent{Operation: "index", Err: msg.Err})
		return nil
	}

	slog.Info("indexing: completed", "target", msg.Target)
	sess.SetStatus(state.StatusSuccess, fmt.Sprintf("Indexed %s", msg.Target))
	s.bus.Publish(domain.IndexCompletedEvent{Target: msg.Target, Success: true})
	if refresh == nil {
		return nil
	}
	return refresh()
}
