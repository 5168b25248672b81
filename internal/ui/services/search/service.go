package search

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

// Service runs searches and applies their results to the session
type Service struct {
	ctx          context.Context
	api          backend.API
	bus          eventbus.EventBus
	discardStale bool
}

// NewService creates a new search service. With discardStale set, only the
// outcome of the newest issued search is applied; otherwise the last
// completed search wins.
func NewService(ctx context.Context, api backend.API, bus eventbus.EventBus, discardStale bool) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Service{ctx: ctx, api: api, bus: bus, discardStale: discardStale}
}

// Start validates the session's query and project target and returns the
// search command. A validation failure is returned without touching the
// session.
func (s *Service) Start(sess *state.Session) (tea.Cmd, error) {
	query, project := sess.Query, sess.Target
	if err := logic.ValidateSearch(query, project); err != nil {
		return nil, err
	}

	sess.SearchSeq++
	seq := sess.SearchSeq
	sess.PendingSearches++
	slog.Debug("search: started", "seq", seq, "query", query, "project", project)
	s.bus.Publish(domain.SearchStartedEvent{Seq: seq, Query: query, Project: project})

	return func() tea.Msg {
		matches, err := s.api.Search(s.ctx, query, project)
		return ResultsMsg{Seq: seq, Query: query, Project: project, Matches: matches, Err: err}
	}, nil
}

// HandleResults applies a search outcome. Successful results replace the
// rows wholesale; failures leave them untouched.
func (s *Service) HandleResults(sess *state.Session, msg ResultsMsg) tea.Cmd {
	if sess.PendingSearches > 0 {
		sess.PendingSearches--
	}

	if s.discardStale && msg.Seq != sess.SearchSeq {
		slog.Info("search: discarding stale outcome", "seq", msg.Seq, "latest", sess.SearchSeq, "failed", msg.Err != nil)
		return nil
	}

	if msg.Err != nil {
		slog.Error("search: failed", "seq", msg.Seq, "query", msg.Query, "project", msg.Project, "err", msg.Err)
		sess.SetStatus(state.StatusError, "Search failed")
		s.bus.Publish(domain.RequestFailedEvent{Operation: "search", Err: msg.Err})
		return nil
	}

	sess.SetRows(logic.MapResults(msg.Matches))
	sess.SetStatus(state.StatusSuccess, matchSummary(len(msg.Matches)))
	slog.Debug("search: applied", "seq", msg.Seq, "matches", len(msg.Matches))
	s.bus.Publish(domain.SearchCompletedEvent{
		Seq:        msg.Seq,
		Query:      msg.Query,
		Project:    msg.Project,
		MatchCount: len(msg.Matches),
	})
	return nil
}

func matchSummary(n int) string {
	switch n {
	case 0:
		return "No matches"
	case 1:
		return "1 match"
	default:
		return fmt.Sprintf("%d matches", n)
	}
}
