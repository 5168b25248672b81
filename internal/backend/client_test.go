package backend

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codesearch/internal/domain"
)

type recorded struct {
	method      string
	path        string
	contentType string
	form        url.Values
}

func newServer(t *testing.T, status int, body string) (*Client, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		form, _ := url.ParseQuery(string(raw))
		calls = append(calls, recorded{
			method:      r.Method,
			path:        r.URL.Path,
			contentType: r.Header.Get("Content-Type"),
			form:        form,
		})
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	c, err := New(Options{BaseURL: srv.URL})
	require.NoError(t, err)
	return c, &calls
}

func TestNewRejectsRelativeURL(t *testing.T) {
	_, err := New(Options{BaseURL: "localhost:5000"})
	require.Error(t, err)
}

func TestListProjectsKeepsDocumentOrder(t *testing.T) {
	c, calls := newServer(t, http.StatusOK, `{"b":"proj2","a":"proj1","c":"/home/me/proj3"}`)

	projects, err := c.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"proj2", "proj1", "/home/me/proj3"}, projects)

	require.Len(t, *calls, 1)
	assert.Equal(t, http.MethodGet, (*calls)[0].method)
	assert.Equal(t, "/", (*calls)[0].path)
}

func TestListProjectsAcceptsArray(t *testing.T) {
	c, _ := newServer(t, http.StatusOK, `["x","y"]`)

	projects, err := c.ListProjects(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, projects)
}

func TestListProjectsRejectsNonStringValues(t *testing.T) {
	c, _ := newServer(t, http.StatusOK, `{"a":1}`)

	_, err := c.ListProjects(context.Background())
	require.ErrorIs(t, err, ErrMalformedPayload)
}

func TestSearchSendsFormAndOrdersNumericKeys(t *testing.T) {
	body := `{
		"0": {"class_name":"A","function_name":"first","filepath":"a.py","line_number":3},
		"1": {"class_name":"","function_name":"second","filepath":"b.py","line_number":"7"},
		"10": {"class_name":"C","function_name":"eleventh","filepath":"k.py","line_number":1},
		"2": {"class_name":null,"function_name":"third","filepath":"c.py","line_number":9}
	}`
	c, calls := newServer(t, http.StatusOK, body)

	matches, err := c.Search(context.Background(), "parse tokens", "repoA")
	require.NoError(t, err)
	require.Len(t, matches, 4)
	assert.Equal(t, domain.Match{ClassName: "A", FunctionName: "first", FilePath: "a.py", LineNumber: 3}, matches[0])
	assert.Equal(t, 7, matches[1].LineNumber)
	assert.Equal(t, "third", matches[2].FunctionName)
	assert.Equal(t, "", matches[2].ClassName)
	assert.Equal(t, "eleventh", matches[3].FunctionName)

	call := (*calls)[0]
	assert.Equal(t, http.MethodPost, call.method)
	assert.Equal(t, "/search", call.path)
	assert.Equal(t, "application/x-www-form-urlencoded", call.contentType)
	assert.Equal(t, "parse tokens", call.form.Get("query"))
	assert.Equal(t, "repoA", call.form.Get("url"))
}

func TestSearchEmptyObjectIsNoMatches(t *testing.T) {
	c, _ := newServer(t, http.StatusOK, `{}`)

	matches, err := c.Search(context.Background(), "q", "p")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSearchMalformedPayload(t *testing.T) {
	for name, body := range map[string]string{
		"not json":         `<html>`,
		"scalar":           `42`,
		"missing function": `{"0":{"filepath":"a.py","line_number":1}}`,
		"bad line":         `{"0":{"function_name":"f","filepath":"a.py","line_number":"x"}}`,
		"zero line":        `{"0":{"function_name":"f","filepath":"a.py","line_number":0}}`,
		"negative line":    `{"0":{"function_name":"f","filepath":"a.py","line_number":-7}}`,
		"zero line string": `{"0":{"function_name":"f","filepath":"a.py","line_number":"0"}}`,
		"trailing":         `{} {}`,
		"empty":            ``,
	} {
		t.Run(name, func(t *testing.T) {
			c, _ := newServer(t, http.StatusOK, body)
			_, err := c.Search(context.Background(), "q", "p")
			require.ErrorIs(t, err, ErrMalformedPayload)
			assert.False(t, errors.Is(err, ErrRequestFailed))
		})
	}
}

func TestNon2xxIsRequestFailed(t *testing.T) {
	c, _ := newServer(t, http.StatusInternalServerError, `oops`)

	err := c.Index(context.Background(), "/tmp/repo")
	require.ErrorIs(t, err, ErrRequestFailed)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.Status)
	assert.Equal(t, "/encode", reqErr.Path)
}

func TestIndexUsesConfiguredField(t *testing.T) {
	var form url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		_, _ = io.WriteString(w, "Encoding complete")
	}))
	defer srv.Close()

	c, err := New(Options{BaseURL: srv.URL, IndexField: "project_path"})
	require.NoError(t, err)
	require.NoError(t, c.Index(context.Background(), "/src/repoA"))
	assert.Equal(t, "/src/repoA", form.Get("project_path"))
	assert.Empty(t, form.Get("url"))
}

func TestDeleteSendsURLField(t *testing.T) {
	c, calls := newServer(t, http.StatusOK, ``)

	require.NoError(t, c.Delete(context.Background(), "repoA"))
	assert.Equal(t, http.MethodDelete, (*calls)[0].method)
	assert.Equal(t, "/delete", (*calls)[0].path)
	assert.Equal(t, "repoA", (*calls)[0].form.Get("url"))
}

func TestTransportFailureIsRequestFailed(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := New(Options{BaseURL: base, Timeout: time.Second})
	require.NoError(t, err)

	_, err = c.ListProjects(context.Background())
	require.ErrorIs(t, err, ErrRequestFailed)
}
