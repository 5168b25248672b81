package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"codesearch/internal/domain"
	"codesearch/internal/logging"
	"codesearch/internal/ui/logic"
)

func (r *runner) projects(ctx context.Context, cmd *cli.Command) error {
	e, err := r.setup(cmd, logging.ModeCLI)
	if err != nil {
		return err
	}
	defer e.close()

	ids, err := e.api.ListProjects(ctx)
	if err != nil {
		e.bus.Publish(domain.RequestFailedEvent{Operation: "list", Err: err})
		return backendError("list projects", err)
	}

	projects := domain.NormalizeProjects(ids)
	e.bus.Publish(domain.ProjectsListedEvent{Projects: projects})

	return writeProjects(cmd.Root().Writer, e.out, projects)
}

func (r *runner) index(ctx context.Context, cmd *cli.Command) error {
	target := strings.Join(cmd.Args().Slice(), " ")
	if err := logic.ValidateIndex(target); err != nil {
		return usageError(fmt.Errorf("index: %w", err))
	}

	e, err := r.setup(cmd, logging.ModeCLI)
	if err != nil {
		return err
	}
	defer e.close()

	e.bus.Publish(domain.IndexStartedEvent{Target: target})
	if err := e.api.Index(ctx, target); err != nil {
		e.bus.Publish(domain.IndexCompletedEvent{Target: target, Success: false, Error: err})
		e.bus.Publish(domain.RequestFailedEvent{Operation: "index", Err: err})
		return backendError("index", err)
	}
	e.bus.Publish(domain.IndexCompletedEvent{Target: target, Success: true})

	return writeStatus(cmd.Root().Writer, e.out, fmt.Sprintf("Indexed %s", target), map[string]string{"target": target})
}

func (r *runner) search(ctx context.Context, cmd *cli.Command) error {
	query := strings.Join(cmd.Args().Slice(), " ")
	project := cmd.String("project")
	if err := logic.ValidateSearch(query, project); err != nil {
		return usageError(fmt.Errorf("search: %w", err))
	}

	e, err := r.setup(cmd, logging.ModeCLI)
	if err != nil {
		return err
	}
	defer e.close()

	e.bus.Publish(domain.SearchStartedEvent{Seq: 1, Query: query, Project: project})
	matches, err := e.api.Search(ctx, query, project)
	if err != nil {
		e.bus.Publish(domain.RequestFailedEvent{Operation: "search", Err: err})
		return backendError("search", err)
	}
	e.bus.Publish(domain.SearchCompletedEvent{Seq: 1, Query: query, Project: project, MatchCount: len(matches)})

	return writeRows(cmd.Root().Writer, e.out, logic.MapResults(matches))
}

func (r *runner) delete(ctx context.Context, cmd *cli.Command) error {
	project := strings.Join(cmd.Args().Slice(), " ")
	if !domain.IsProject(project) {
		return usageError(errors.New("delete: a project name is required"))
	}

	e, err := r.setup(cmd, logging.ModeCLI)
	if err != nil {
		return err
	}
	defer e.close()

	if err := e.api.Delete(ctx, project); err != nil {
		e.bus.Publish(domain.RequestFailedEvent{Operation: "delete", Err: err})
		return backendError("delete", err)
	}
	slog.Info("cli: project deleted", "project", project)
	e.bus.Publish(domain.ProjectDeletedEvent{Project: project})

	return writeStatus(cmd.Root().Writer, e.out, fmt.Sprintf("Deleted %s", project), map[string]string{"project": project})
}
