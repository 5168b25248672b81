package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"codesearch/internal/app"
)

type fakeServer struct {
	mu       sync.Mutex
	forms    map[string]url.Values
	status   int
	projects string
	matches  string
}

func newFakeServer(t *testing.T) (*fakeServer, string) {
	t.Helper()
	fs := &fakeServer{
		forms:    map[string]url.Values{},
		status:   http.StatusOK,
		projects: `{"0":"repoA","1":"repoB"}`,
		matches:  `{"0":{"class_name":"A","function_name":"f","filepath":"x.py","line_number":3},"1":{"class_name":null,"function_name":"g","filepath":"y.js","line_number":10}}`,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		form, _ := url.ParseQuery(string(raw))

		fs.mu.Lock()
		fs.forms[r.Method+" "+r.URL.Path] = form
		status := fs.status
		fs.mu.Unlock()

		w.WriteHeader(status)
		switch r.URL.Path {
		case "/":
			_, _ = io.WriteString(w, fs.projects)
		case "/search":
			_, _ = io.WriteString(w, fs.matches)
		default:
			_, _ = io.WriteString(w, `{}`)
		}
	}))
	t.Cleanup(srv.Close)
	return fs, srv.URL
}

func (fs *fakeServer) form(key string) (url.Values, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	v, ok := fs.forms[key]
	return v, ok
}

type harness struct {
	dir     string
	environ []string
	tuiOpts *app.Options
}

func newHarness(t *testing.T) *harness {
	dir := t.TempDir()
	return &harness{
		dir:     dir,
		environ: []string{"CODESEARCH_LOG_FILE=" + filepath.Join(dir, "codesearch.log")},
	}
}

func (h *harness) configPath() string {
	return filepath.Join(h.dir, "config.toml")
}

func (h *harness) run(args ...string) (string, error) {
	var out bytes.Buffer
	deps := Dependencies{
		Version: "test",
		Stdout:  &out,
		Stderr:  io.Discard,
		Environ: func() []string { return h.environ },
		RunTUI: func(_ context.Context, opts app.Options) error {
			h.tuiOpts = &opts
			return nil
		},
	}
	full := append([]string{"codesearch", "--config", h.configPath()}, args...)
	err := Run(context.Background(), full, deps)
	return out.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var ec cli.ExitCoder
	require.ErrorAs(t, err, &ec)
	return ec.ExitCode()
}

func TestProjectsTable(t *testing.T) {
	_, base := newFakeServer(t)
	h := newHarness(t)

	out, err := h.run("--server", base, "projects")
	require.NoError(t, err)
	assert.Equal(t, "repoA\nrepoB\n", out)
}

func TestProjectsJSON(t *testing.T) {
	_, base := newFakeServer(t)
	h := newHarness(t)

	out, err := h.run("--server", base, "--output", "json", "projects")
	require.NoError(t, err)

	var projects []string
	require.NoError(t, json.Unmarshal([]byte(out), &projects))
	assert.Equal(t, []string{"repoA", "repoB"}, projects)
}

func TestSearchTable(t *testing.T) {
	fs, base := newFakeServer(t)
	h := newHarness(t)

	out, err := h.run("--server", base, "search", "--project", "repoA", "parse", "args")
	require.NoError(t, err)
	assert.Contains(t, out, "A.f()")
	assert.Contains(t, out, "y.js")

	form, ok := fs.form("POST /search")
	require.True(t, ok)
	assert.Equal(t, "parse args", form.Get("query"))
	assert.Equal(t, "repoA", form.Get("url"))
}

func TestSearchYAML(t *testing.T) {
	_, base := newFakeServer(t)
	h := newHarness(t)

	out, err := h.run("--server", base, "-o", "yaml", "search", "-p", "repoA", "parse")
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "f()", rows[0]["func_name"])
	assert.Equal(t, "g()", rows[1]["func_name"])
}

func TestSearchRequiresProject(t *testing.T) {
	fs, base := newFakeServer(t)
	h := newHarness(t)

	_, err := h.run("--server", base, "search", "parse")
	assert.Equal(t, ExitUsage, exitCode(t, err))

	_, called := fs.form("POST /search")
	assert.False(t, called)
}

func TestSearchRejectsSentinelProject(t *testing.T) {
	_, base := newFakeServer(t)
	h := newHarness(t)

	_, err := h.run("--server", base, "search", "-p", "None", "parse")
	assert.Equal(t, ExitUsage, exitCode(t, err))
}

func TestIndexPostsTarget(t *testing.T) {
	fs, base := newFakeServer(t)
	h := newHarness(t)

	out, err := h.run("--server", base, "index", "https://github.com/u/r")
	require.NoError(t, err)
	assert.Equal(t, "Indexed https://github.com/u/r\n", out)

	form, ok := fs.form("POST /encode")
	require.True(t, ok)
	assert.Equal(t, "https://github.com/u/r", form.Get("url"))
}

func TestIndexWithoutTarget(t *testing.T) {
	_, base := newFakeServer(t)
	h := newHarness(t)

	_, err := h.run("--server", base, "index")
	assert.Equal(t, ExitUsage, exitCode(t, err))
}

func TestBackendFailureExitCode(t *testing.T) {
	fs, base := newFakeServer(t)
	fs.status = http.StatusInternalServerError
	h := newHarness(t)

	_, err := h.run("--server", base, "index", "repoA")
	assert.Equal(t, ExitBackend, exitCode(t, err))
}

func TestDeleteProject(t *testing.T) {
	fs, base := newFakeServer(t)
	h := newHarness(t)

	out, err := h.run("--server", base, "delete", "repoA")
	require.NoError(t, err)
	assert.Equal(t, "Deleted repoA\n", out)

	form, ok := fs.form("DELETE /delete")
	require.True(t, ok)
	assert.Equal(t, "repoA", form.Get("url"))
}

func TestDeleteSentinelRefused(t *testing.T) {
	fs, base := newFakeServer(t)
	h := newHarness(t)

	_, err := h.run("--server", base, "delete", "None")
	assert.Equal(t, ExitUsage, exitCode(t, err))

	_, called := fs.form("DELETE /delete")
	assert.False(t, called)
}

func TestInvalidServerURL(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("--server", "ftp://example.com", "projects")
	assert.Equal(t, ExitUsage, exitCode(t, err))
}

func TestUnknownOutputFormat(t *testing.T) {
	_, base := newFakeServer(t)
	h := newHarness(t)

	_, err := h.run("--server", base, "-o", "xml", "projects")
	assert.Equal(t, ExitUsage, exitCode(t, err))
}

func TestDefaultActionStartsTUI(t *testing.T) {
	h := newHarness(t)
	h.environ = append(h.environ, "CODESEARCH_SERVER=http://search.example:9000")

	_, err := h.run()
	require.NoError(t, err)
	require.NotNil(t, h.tuiOpts)
	assert.Equal(t, "http://search.example:9000", h.tuiOpts.Config.Server.BaseURL)
	assert.NotNil(t, h.tuiOpts.API)
	assert.NotNil(t, h.tuiOpts.Bus)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	h := newHarness(t)
	h.environ = append(h.environ, "CODESEARCH_SERVER=http://from-env:1")

	_, err := h.run("--server", "http://from-flag:2", "tui")
	require.NoError(t, err)
	require.NotNil(t, h.tuiOpts)
	assert.Equal(t, "http://from-flag:2", h.tuiOpts.Config.Server.BaseURL)
}

func TestConfigInitAndShow(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, h.configPath())
	_, statErr := os.Stat(h.configPath())
	require.NoError(t, statErr)

	_, err = h.run("config", "init")
	assert.Equal(t, ExitUsage, exitCode(t, err))

	_, err = h.run("config", "init", "--force")
	require.NoError(t, err)

	out, err = h.run("--server", "http://override:1234", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "base_url")
	assert.Contains(t, out, "http://override:1234")
}

func TestConfigShowJSON(t *testing.T) {
	h := newHarness(t)

	out, err := h.run("-o", "json", "config", "show")
	require.NoError(t, err)

	var shown map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "http://localhost:5000", shown["server"]["base_url"])
	assert.Equal(t, "6s", shown["ui"]["alert_timeout"])
}

func TestConfigFileIsRead(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(h.configPath(), []byte("[server]\nbase_url = \"http://from-file:7\"\n"), 0o644))

	_, err := h.run("tui")
	require.NoError(t, err)
	assert.Equal(t, "http://from-file:7", h.tuiOpts.Config.Server.BaseURL)
}

func TestConfigFileUnknownKey(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(h.configPath(), []byte("[server]\nbogus = 1\n"), 0o644))

	_, err := h.run("projects")
	assert.Equal(t, ExitUsage, exitCode(t, err))
}
