package logic

import (
	"errors"
	"strings"

	"codesearch/internal/domain"
)

// Reasons a user input can be rejected
var (
	ErrMissingQuery   = errors.New("missing query")
	ErrMissingProject = errors.New("missing project")
	ErrMissingTarget  = errors.New("missing project target")
)

// AlertText is shown for every rejected input
const AlertText = "Input not specified"

// ValidationError carries every reason an input was rejected.
// A single ValidationError maps to a single alert.
type ValidationError struct {
	Reasons []error
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Reasons))
	for i, r := range e.Reasons {
		parts[i] = r.Error()
	}
	return "invalid input: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() []error {
	return e.Reasons
}

// ValidateSearch checks a query and its target project.
// The project fails when it is empty or the NoProject sentinel.
func ValidateSearch(query, project string) error {
	var reasons []error
	if len(query) == 0 {
		reasons = append(reasons, ErrMissingQuery)
	}
	if !domain.IsProject(project) {
		reasons = append(reasons, ErrMissingProject)
	}
	if len(reasons) > 0 {
		return &ValidationError{Reasons: reasons}
	}
	return nil
}

// ValidateIndex checks the project target before indexing
func ValidateIndex(target string) error {
	if len(target) == 0 {
		return &ValidationError{Reasons: []error{ErrMissingTarget}}
	}
	return nil
}
