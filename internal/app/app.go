// Package app wires the interactive client: backend, event bus, Bubble Tea
// program, pager and clipboard.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"codesearch/internal/backend"
	"codesearch/internal/config"
	"codesearch/internal/eventbus"
	"codesearch/internal/ui"
	"codesearch/internal/ui/session"
)

// Options holds everything the interactive client needs
type Options struct {
	Config *config.Config
	API    backend.API
	Bus    eventbus.EventBus

	// ProgramOptions are appended to the defaults; tests use them to swap
	// the terminal for buffers.
	ProgramOptions []tea.ProgramOption
}

// NewModel builds the UI model from the configuration
func NewModel(ctx context.Context, opts Options) *ui.Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return ui.NewModel(ctx, opts.API, opts.Bus, ui.Options{
		BaseURL: cfg.Server.BaseURL,
		Session: session.Options{
			AlertTimeout:        cfg.UI.AlertTimeout.Duration,
			DiscardStaleResults: cfg.UI.DiscardStaleResults,
		},
		ShowDetail: cfg.UI.ShowDetail,
		Clipboard:  clipboardWriter(),
	})
}

// Run starts the full-screen client and blocks until it exits
func Run(ctx context.Context, opts Options) error {
	if opts.API == nil {
		return errors.New("app: backend is nil")
	}
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}

	model := NewModel(ctx, opts)

	programOpts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts.ProgramOptions...)
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	slog.Info("app: starting", "server", opts.Config.Server.BaseURL)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		slog.Info("app: interrupted")
		return nil
	}
	if err != nil {
		return err
	}
	slog.Info("app: exited")
	return nil
}

func clipboardWriter() func(string) error {
	if clipboard.Unsupported {
		slog.Debug("app: clipboard unsupported on this system")
		return nil
	}
	return clipboard.WriteAll
}
