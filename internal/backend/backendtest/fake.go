// Package backendtest provides an in-memory backend.API for tests.
package backendtest

import (
	"context"
	"sync"

	"codesearch/internal/backend"
	"codesearch/internal/domain"
)

var _ backend.API = (*Fake)(nil)

// Call records one API invocation
type Call struct {
	Op      string // "list", "index", "search", "delete"
	Query   string
	Project string
}

// Fake is a scripted backend.API. Zero values answer with empty successes.
type Fake struct {
	mu    sync.Mutex
	calls []Call

	Projects    []string
	ListErr     error
	IndexErr    error
	DeleteErr   error
	SearchErr   error
	SearchFunc  func(query, project string) ([]domain.Match, error)
	SearchReply []domain.Match
}

func (f *Fake) record(c Call) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

// Calls returns a copy of every recorded call
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// CallsFor returns recorded calls of one operation
func (f *Fake) CallsFor(op string) []Call {
	var out []Call
	for _, c := range f.Calls() {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func (f *Fake) ListProjects(ctx context.Context) ([]string, error) {
	f.record(Call{Op: "list"})
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return append([]string(nil), f.Projects...), nil
}

func (f *Fake) Index(ctx context.Context, target string) error {
	f.record(Call{Op: "index", Project: target})
	return f.IndexErr
}

func (f *Fake) Search(ctx context.Context, query, project string) ([]domain.Match, error) {
	f.record(Call{Op: "search", Query: query, Project: project})
	if f.SearchFunc != nil {
		return f.SearchFunc(query, project)
	}
	if f.SearchErr != nil {
		return nil, f.SearchErr
	}
	return f.SearchReply, nil
}

func (f *Fake) Delete(ctx context.Context, project string) error {
	f.record(Call{Op: "delete", Project: project})
	return f.DeleteErr
}
