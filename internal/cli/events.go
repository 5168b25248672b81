package cli

import (
	"log/slog"

	"codesearch/internal/domain"
	"codesearch/internal/eventbus"
)

// recordEvents logs every domain event published on bus
func recordEvents(bus eventbus.EventBus) func() {
	return eventbus.SubscribeAll(bus, func(e eventbus.DomainEvent) {
		switch ev := e.(type) {
		case domain.RequestFailedEvent:
			slog.Warn("event", "type", e.Type(), "operation", ev.Operation, "err", ev.Err)
		case domain.InputRejectedEvent:
			slog.Info("event", "type", e.Type(), "operation", ev.Operation, "reason", ev.Reason)
		case domain.IndexCompletedEvent:
			slog.Info("event", "type", e.Type(), "target", ev.Target, "success", ev.Success)
		case domain.SearchCompletedEvent:
			slog.Info("event", "type", e.Type(), "seq", ev.Seq, "query", ev.Query, "project", ev.Project, "matches", ev.MatchCount)
		case domain.ProjectsListedEvent:
			slog.Debug("event", "type", e.Type(), "projects", len(ev.Projects))
		default:
			slog.Debug("event", "type", e.Type())
		}
	})
}
