package logic

import (
	"strconv"

	"codesearch/internal/domain"
)

// Detail field labels
const (
	DetailFilePathName   = "File Path"
	DetailLineNumberName = "Line Number"
)

// MapResults converts backend matches into display rows. Row IDs are the
// 0-based positions in matches; input order is preserved.
func MapResults(matches []domain.Match) []domain.Row {
	rows := make([]domain.Row, len(matches))
	for i, m := range matches {
		rows[i] = domain.Row{
			ID:        i,
			ClassName: m.ClassName,
			FuncName:  m.FunctionName + "()",
			Detail: []domain.Detail{
				{ID: domain.DetailFilePath, Name: DetailFilePathName, Value: m.FilePath},
				{ID: domain.DetailLineNumber, Name: DetailLineNumberName, Value: strconv.Itoa(m.LineNumber)},
			},
		}
	}
	return rows
}
