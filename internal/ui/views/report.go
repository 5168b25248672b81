package views

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"codesearch/internal/domain"
)

// RenderMatchTable renders rows as a bordered table for the pager and the
// command line.
func RenderMatchTable(rows []domain.Row) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("241"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("#", "Function", "File", "Line")

	for _, r := range rows {
		t.Row(strconv.Itoa(r.ID+1), r.Label(), r.FilePath(), strconv.Itoa(r.LineNumber()))
	}
	return t.String()
}
