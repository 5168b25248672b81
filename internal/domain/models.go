package domain

import (
	"fmt"
	"strconv"
)

// NoProject is the reserved identifier meaning "no project selected".
// It is never deleted and never sent to the backend as a search target.
const NoProject = "None"

// Detail field identities within a row
const (
	DetailFilePath   = 1
	DetailLineNumber = 2
)

// Match is a single search hit as returned by the backend
type Match struct {
	ClassName    string `json:"class_name" yaml:"class_name"`
	FunctionName string `json:"function_name" yaml:"function_name"`
	FilePath     string `json:"filepath" yaml:"filepath"`
	LineNumber   int    `json:"line_number" yaml:"line_number"`
}

// Location formats the match as path:line
func (m Match) Location() string {
	return fmt.Sprintf("%s:%d", m.FilePath, m.LineNumber)
}

// Row is the display model derived from one Match
type Row struct {
	ID        int      `json:"id" yaml:"id"`
	ClassName string   `json:"class_name" yaml:"class_name"`
	FuncName  string   `json:"func_name" yaml:"func_name"` // function name with "()" appended
	Detail    []Detail `json:"desc" yaml:"desc"`
}

// Detail is one labelled, expandable field of a Row
type Detail struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Label pairs the class name with the function name
func (r Row) Label() string {
	if r.ClassName == "" {
		return r.FuncName
	}
	return r.ClassName + "." + r.FuncName
}

// FilePath returns the value of the file path detail
func (r Row) FilePath() string {
	return r.detailValue(DetailFilePath)
}

// LineNumber returns the line number detail, or 0 if it is missing
func (r Row) LineNumber() int {
	n, err := strconv.Atoi(r.detailValue(DetailLineNumber))
	if err != nil {
		return 0
	}
	return n
}

// Location formats the row as path:line
func (r Row) Location() string {
	return fmt.Sprintf("%s:%d", r.FilePath(), r.LineNumber())
}

func (r Row) detailValue(id int) string {
	for _, d := range r.Detail {
		if d.ID == id {
			return d.Value
		}
	}
	return ""
}

// IsProject reports whether id names a real project
func IsProject(id string) bool {
	return id != "" && id != NoProject
}

// NormalizeProjects returns ids in backend order with duplicates collapsed to
// their first occurrence and any literal NoProject dropped.
func NormalizeProjects(ids []string) []string {
	projects := make([]string, 0, len(ids))
	seen := map[string]bool{NoProject: true}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		projects = append(projects, id)
	}
	return projects
}
