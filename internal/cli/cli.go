// Package cli builds the codesearch command tree: the interactive client
// plus headless commands over the same backend client, validator and row
// mapper.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"codesearch/internal/app"
	"codesearch/internal/backend"
	"codesearch/internal/config"
	"codesearch/internal/eventbus"
	"codesearch/internal/logging"
)

// Exit codes
const (
	ExitBackend = 1 // the backend failed or answered with an error
	ExitUsage   = 2 // bad configuration, flags or arguments
)

// Dependencies are the process-level collaborators of the command tree
type Dependencies struct {
	Version    string
	Stdout     io.Writer
	Stderr     io.Writer
	Environ    func() []string
	HTTPClient *http.Client
	RunTUI     func(ctx context.Context, opts app.Options) error
}

// DefaultDependencies wires the real process environment
func DefaultDependencies(version string) Dependencies {
	return Dependencies{
		Version: version,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Environ: os.Environ,
		RunTUI:  app.Run,
	}
}

// Run parses args and executes the selected command
func Run(ctx context.Context, args []string, deps Dependencies) error {
	return NewApp(deps).Run(ctx, args)
}

// NewApp constructs the root command
func NewApp(deps Dependencies) *cli.Command {
	if deps.Stdout == nil {
		deps.Stdout = io.Discard
	}
	if deps.Stderr == nil {
		deps.Stderr = io.Discard
	}
	if deps.Environ == nil {
		deps.Environ = func() []string { return nil }
	}
	if deps.RunTUI == nil {
		deps.RunTUI = app.Run
	}

	r := &runner{deps: deps}
	return &cli.Command{
		Name:      "codesearch",
		Usage:     "index code repositories and search their functions and classes",
		Version:   deps.Version,
		Writer:    deps.Stdout,
		ErrWriter: deps.Stderr,
		Flags:     globalFlags(),
		Action:    r.tui,
		Commands: []*cli.Command{
			{
				Name:   "tui",
				Usage:  "start the interactive client (default)",
				Action: r.tui,
			},
			{
				Name:    "projects",
				Aliases: []string{"ls"},
				Usage:   "list indexed projects",
				Action:  r.projects,
			},
			{
				Name:      "index",
				Usage:     "index a repository URL or local path",
				ArgsUsage: "<target>",
				Action:    r.index,
			},
			{
				Name:      "search",
				Usage:     "search an indexed project",
				ArgsUsage: "<query...>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "project", Aliases: []string{"p"}, Usage: "project to search"},
				},
				Action: r.search,
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "delete an indexed project",
				ArgsUsage: "<project>",
				Action:    r.delete,
			},
			configCommand(r),
		},
		// main reports errors and picks the exit code
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "config file path"},
		&cli.StringFlag{Name: "server", Aliases: []string{"s"}, Usage: "backend base URL"},
		&cli.DurationFlag{Name: "timeout", Usage: "request timeout (0 = none)"},
		&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		&cli.StringFlag{Name: "log-file", Usage: "log file path"},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: string(formatTable), Usage: "output format: table, json or yaml"},
	}
}

// runner carries the dependencies into command actions
type runner struct {
	deps Dependencies
}

// env is the per-invocation state shared by the actions
type env struct {
	cfg      *config.Config
	svc      config.ConfigService
	api      backend.API
	bus      eventbus.EventBus
	out      format
	closeLog func() error
}

func (e *env) close() {
	e.bus.Close()
	if e.closeLog != nil {
		_ = e.closeLog()
	}
}

// loadConfig resolves the effective configuration:
// defaults < file < environment < flags
func (r *runner) loadConfig(cmd *cli.Command) (*config.Config, config.ConfigService, error) {
	svc := config.NewConfigService()
	if path := cmd.String("config"); path != "" {
		svc = config.NewConfigServiceAt(path)
	}

	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.ApplyEnv(r.deps.Environ()); err != nil {
		return nil, nil, err
	}

	if cmd.IsSet("server") {
		cfg.Server.BaseURL = cmd.String("server")
	}
	if cmd.IsSet("timeout") {
		cfg.Server.Timeout = config.Duration{Duration: cmd.Duration("timeout")}
	}
	if cmd.IsSet("log-level") {
		level := cmd.String("log-level")
		cfg.Logging.Level = &level
	}
	if cmd.IsSet("log-file") {
		file := cmd.String("log-file")
		cfg.Logging.File = &file
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, svc, nil
}

func (r *runner) setup(cmd *cli.Command, mode logging.Mode) (*env, error) {
	out, err := parseFormat(cmd.String("output"))
	if err != nil {
		return nil, usageError(err)
	}

	cfg, svc, err := r.loadConfig(cmd)
	if err != nil {
		return nil, usageError(fmt.Errorf("config: %w", err))
	}

	closeLog, err := logging.Init(cfg.Logging, logging.InitOptions{
		App:     "codesearch",
		Version: r.deps.Version,
		Mode:    mode,
	})
	if err != nil {
		return nil, usageError(fmt.Errorf("logging: %w", err))
	}

	api, err := backend.New(backend.Options{
		BaseURL:    cfg.Server.BaseURL,
		Timeout:    cfg.Server.Timeout.Duration,
		IndexField: cfg.Server.IndexField,
		HTTPClient: r.deps.HTTPClient,
	})
	if err != nil {
		if closeLog != nil {
			_ = closeLog()
		}
		return nil, usageError(err)
	}

	bus := eventbus.NewSync()
	if mode == logging.ModeTUI {
		bus = eventbus.New()
	}
	recordEvents(bus)

	slog.Debug("cli: configured", "command", cmd.Name, "server", cfg.Server.BaseURL, "config", svc.Path())
	return &env{cfg: cfg, svc: svc, api: api, bus: bus, out: out, closeLog: closeLog}, nil
}

func (r *runner) tui(ctx context.Context, cmd *cli.Command) error {
	e, err := r.setup(cmd, logging.ModeTUI)
	if err != nil {
		return err
	}
	defer e.close()

	started := time.Now()
	err = r.deps.RunTUI(ctx, app.Options{Config: e.cfg, API: e.api, Bus: e.bus})
	slog.Info("cli: interactive session ended", "duration", time.Since(started).Round(time.Millisecond))
	if err != nil {
		return cli.Exit(fmt.Sprintf("tui: %v", err), ExitBackend)
	}
	return nil
}

func usageError(err error) error {
	return cli.Exit(err.Error(), ExitUsage)
}

func backendError(op string, err error) error {
	return cli.Exit(fmt.Sprintf("%s: %v", op, err), ExitBackend)
}
