package state

import (
	"codesearch/internal/domain"
)

// StatusKind classifies the status line message
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// Session contains all state of one client session. Only the Bubble Tea
// update loop mutates it.
type Session struct {
	// Project selection
	ActiveProject string   // defaults to domain.NoProject
	Registry      []string // always starts with domain.NoProject

	// Text fields
	Query  string
	Target string // project target used for indexing and searching

	// Results
	Rows        []domain.Row
	SelectedRow int
	ExpandedRow int // -1 when no detail is shown

	// Dialog
	DialogOpen   bool
	DialogChoice string
	DialogFilter string

	// Indexing
	Loading     bool
	IndexTarget string // target of the in-flight indexing request

	// Alert
	AlertVisible bool
	AlertMessage string
	AlertToken   uint64 // bumped every time an alert is raised

	// Search sequencing
	SearchSeq       uint64 // last issued search
	PendingSearches int

	// Status line
	StatusMessage string
	StatusKind    StatusKind
}

// NewSession creates the initial session state
func NewSession() *Session {
	return &Session{
		ActiveProject: domain.NoProject,
		Registry:      []string{domain.NoProject},
		Rows:          []domain.Row{},
		ExpandedRow:   -1,
		DialogChoice:  domain.NoProject,
	}
}

// SetRegistry replaces the registry snapshot with ids. The sentinel is put
// first, ids equal to the sentinel are dropped and duplicates collapse to
// their first occurrence.
func (s *Session) SetRegistry(ids []string) {
	s.Registry = append([]string{domain.NoProject}, domain.NormalizeProjects(ids)...)
}

// Projects returns the registry without the sentinel
func (s *Session) Projects() []string {
	if len(s.Registry) <= 1 {
		return nil
	}
	return append([]string(nil), s.Registry[1:]...)
}

// SetRows replaces the result rows and resets row selection
func (s *Session) SetRows(rows []domain.Row) {
	if rows == nil {
		rows = []domain.Row{}
	}
	s.Rows = rows
	s.SelectedRow = 0
	s.ExpandedRow = -1
}

// SelectedRowData returns the currently selected row, if any
func (s *Session) SelectedRowData() (domain.Row, bool) {
	if s.SelectedRow < 0 || s.SelectedRow >= len(s.Rows) {
		return domain.Row{}, false
	}
	return s.Rows[s.SelectedRow], true
}

// ShowAlert raises the alert and returns the token identifying this raise
func (s *Session) ShowAlert(message string) uint64 {
	s.AlertToken++
	s.AlertVisible = true
	s.AlertMessage = message
	return s.AlertToken
}

// DismissAlert hides the alert
func (s *Session) DismissAlert() {
	s.AlertVisible = false
	s.AlertMessage = ""
}

// ExpireAlert hides the alert only if token matches the latest raise
func (s *Session) ExpireAlert(token uint64) bool {
	if !s.AlertVisible || token != s.AlertToken {
		return false
	}
	s.DismissAlert()
	return true
}

// SetStatus updates the status line
func (s *Session) SetStatus(kind StatusKind, message string) {
	s.StatusKind = kind
	s.StatusMessage = message
}

// ResetProject makes the sentinel the active project and dialog choice
func (s *Session) ResetProject() {
	s.ActiveProject = domain.NoProject
	s.DialogChoice = domain.NoProject
}
