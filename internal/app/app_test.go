package app

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codesearch/internal/backend/backendtest"
	"codesearch/internal/config"
	"codesearch/internal/eventbus"
)

func TestNewModelUsesConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.BaseURL = "http://search.internal:8080"

	m := NewModel(context.Background(), Options{Config: cfg, API: &backendtest.Fake{}})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})

	assert.Contains(t, m.View(), "http://search.internal:8080")
}

func TestRunRequiresBackend(t *testing.T) {
	err := Run(context.Background(), Options{})
	assert.Error(t, err)
}

func TestRunQuitsOnKey(t *testing.T) {
	api := &backendtest.Fake{Projects: []string{"repoA"}}
	var out bytes.Buffer

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := Run(ctx, Options{
		API: api,
		Bus: eventbus.NewSync(),
		ProgramOptions: []tea.ProgramOption{
			tea.WithInput(strings.NewReader("q")),
			tea.WithOutput(&out),
		},
	})

	require.NoError(t, err)
}
