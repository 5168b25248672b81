package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"codesearch/internal/domain"
)

// ResultsRenderer renders the match table and the expanded detail
type ResultsRenderer struct {
	styles *Styles
	table  table.Model
}

// NewResultsRenderer creates a new results renderer
func NewResultsRenderer(styles *Styles) *ResultsRenderer {
	t := table.New(
		table.WithColumns(resultColumns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(styles.Table)
	return &ResultsRenderer{styles: styles, table: t}
}

func resultColumns(width int) []table.Column {
	// #, function, location; the function column takes what is left
	idW, locW := 4, 40
	if width < 80 {
		locW = 24
	}
	funcW := width - idW - locW - 6
	if funcW < 16 {
		funcW = 16
	}
	return []table.Column{
		{Title: "#", Width: idW},
		{Title: "Function", Width: funcW},
		{Title: "Location", Width: locW},
	}
}

// TableRows converts display rows into table rows
func TableRows(rows []domain.Row) []table.Row {
	out := make([]table.Row, len(rows))
	for i, r := range rows {
		out[i] = table.Row{fmt.Sprintf("%d", r.ID+1), r.Label(), r.Location()}
	}
	return out
}

// RenderResults renders the table sized to width x height with the cursor on selected
func (rr *ResultsRenderer) RenderResults(rows []domain.Row, selected, width, height int) string {
	if len(rows) == 0 {
		return rr.styles.Dim.Render("No results. Press / to enter a query, p to pick a project.")
	}
	width = orDefaultWidth(width)
	// header and its border take two lines
	height -= 2
	if height < 1 {
		height = 1
	}
	rr.table.SetColumns(resultColumns(width))
	rr.table.SetRows(TableRows(rows))
	rr.table.SetWidth(width)
	rr.table.SetHeight(height)
	rr.table.SetCursor(selected)
	return rr.table.View()
}

// RenderDetail renders the labelled detail fields of row
func (rr *ResultsRenderer) RenderDetail(row domain.Row, width int) string {
	var b strings.Builder
	b.WriteString(rr.styles.Highlight.Render(row.Label()))
	for _, d := range row.Detail {
		b.WriteString("\n")
		b.WriteString(rr.styles.DetailName.Render(d.Name))
		b.WriteString(d.Value)
	}
	box := rr.styles.DetailBox
	if width > 4 {
		box = box.Width(width - 2)
	}
	return box.Render(b.String())
}


func orDefaultWidth(width int) int {
	if width <= 0 {
		return 80
	}
	return width
}
