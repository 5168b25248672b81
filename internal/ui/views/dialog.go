package views

import (
	"fmt"
	"strings"

	"codesearch/internal/domain"
)

// DialogState is the project dialog as seen by the renderer
type DialogState struct {
	Open          bool
	Projects      []string // entries matching the filter, sentinel included
	Choice        string
	ActiveProject string
	Offset        int
	Height        int
	FilterInput   string
	DeleteTarget  string // set while a delete waits for confirmation
}

// DialogRenderer renders the project selection dialog
type DialogRenderer struct {
	styles *Styles
}

// NewDialogRenderer creates a new dialog renderer
func NewDialogRenderer(styles *Styles) *DialogRenderer {
	return &DialogRenderer{styles: styles}
}

// RenderDialog renders the dialog body; the caller adds the frame
func (dr *DialogRenderer) RenderDialog(ds DialogState, width int) string {
	maxItem := width - 16
	if maxItem < 20 {
		maxItem = 20
	}

	var lines []string
	lines = append(lines, dr.styles.DialogTitle.Render("Select project"))
	lines = append(lines, dr.styles.Label.Render("Filter:")+ds.FilterInput)
	lines = append(lines, "")

	height := ds.Height
	if height < 1 {
		height = len(ds.Projects)
	}
	end := ds.Offset + height
	if end > len(ds.Projects) {
		end = len(ds.Projects)
	}
	if ds.Offset > 0 {
		lines = append(lines, dr.styles.Scroll.Render(fmt.Sprintf("↑ %d more above", ds.Offset)))
	}
	for i := ds.Offset; i < end; i++ {
		lines = append(lines, dr.renderItem(ds.Projects[i], ds, maxItem))
	}
	if end < len(ds.Projects) {
		lines = append(lines, dr.styles.Scroll.Render(fmt.Sprintf("↓ %d more below", len(ds.Projects)-end)))
	}

	lines = append(lines, "")
	if ds.DeleteTarget != "" {
		lines = append(lines, dr.styles.Confirm.Render(fmt.Sprintf("Delete '%s'? (y/n)", ds.DeleteTarget)))
	} else {
		lines = append(lines, dr.styles.Help.Render("enter select • esc cancel • ctrl+d delete"))
	}
	return strings.Join(lines, "\n")
}

func (dr *DialogRenderer) renderItem(id string, ds DialogState, maxWidth int) string {
	label := id
	if len([]rune(label)) > maxWidth {
		r := []rune(label)
		label = "…" + string(r[len(r)-maxWidth+1:])
	}
	if id == domain.NoProject {
		label = dr.styles.Dim.Render(label)
	}

	marker := "  "
	if id == ds.ActiveProject && domain.IsProject(id) {
		marker = "● "
	}
	if id == ds.Choice {
		return dr.styles.Highlight.Render("› ") + marker + dr.styles.SelectionBg.Render(label)
	}
	return "  " + marker + label
}
