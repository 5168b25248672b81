package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"codesearch/internal/domain"
	"codesearch/internal/ui/state"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	BaseURL       string
	ActiveProject string

	// Text fields; FieldInput is the live editor for the field being edited
	Query         string
	Target        string
	EditingQuery  bool
	EditingTarget bool
	FieldInput    string

	Rows        []domain.Row
	SelectedRow int
	ExpandedRow int

	Loading     bool
	IndexTarget string
	Searching   bool
	Spinner     string

	StatusMessage string
	StatusKind    state.StatusKind

	AlertVisible bool
	AlertMessage string

	Dialog DialogState

	HelpView string
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	resultsRender *ResultsRenderer
	dialogRender  *DialogRenderer
	popupRender   *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		resultsRender: NewResultsRenderer(styles),
		dialogRender:  NewDialogRenderer(styles),
		popupRender:   NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	width := orDefaultWidth(vs.Width)
	innerWidth := width - 4 // main container padding
	availableLines := vs.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}

	var top []string
	top = append(top, r.renderTitle(vs, innerWidth))
	top = append(top, r.renderField("Project", vs.Target, "repository URL or local path", vs.EditingTarget, vs.FieldInput, r.activeSuffix(vs)))
	top = append(top, r.renderField("Query", vs.Query, "function or class name", vs.EditingQuery, vs.FieldInput, ""))
	top = append(top, "")

	var bottom []string
	if vs.AlertVisible {
		bottom = append(bottom, r.styles.Alert.Render(vs.AlertMessage)+" "+r.styles.Dim.Render("esc to dismiss"))
	}
	bottom = append(bottom, r.renderStatus(vs))
	if vs.HelpView != "" {
		bottom = append(bottom, vs.HelpView)
	}

	var detail string
	if row, ok := expandedRow(vs); ok {
		detail = r.resultsRender.RenderDetail(row, innerWidth)
	}

	detailHeight := 0
	if detail != "" {
		detailHeight = lipgloss.Height(detail)
	}
	tableHeight := availableLines - len(top) - len(bottom) - detailHeight
	results := r.resultsRender.RenderResults(vs.Rows, vs.SelectedRow, innerWidth, tableHeight)

	content := &strings.Builder{}
	content.WriteString(strings.Join(top, "\n"))
	content.WriteString("\n")
	content.WriteString(results)
	if detail != "" {
		content.WriteString("\n")
		content.WriteString(detail)
	}

	// push the status area to the bottom
	used := strings.Count(content.String(), "\n") + 1
	if pad := availableLines - used - len(bottom); pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n")
	content.WriteString(strings.Join(bottom, "\n"))

	mainStyle := r.styles.Main.MaxHeight(vs.Height)
	finalContent := mainStyle.Render(content.String())

	if vs.Dialog.Open {
		dialog := r.dialogRender.RenderDialog(vs.Dialog, innerWidth)
		return r.popupRender.RenderPopupOverlay(finalContent, dialog, vs.Height, vs.Width, r.styles.DialogBox)
	}
	return finalContent
}

func expandedRow(vs ViewState) (domain.Row, bool) {
	if vs.ExpandedRow < 0 || vs.ExpandedRow >= len(vs.Rows) {
		return domain.Row{}, false
	}
	return vs.Rows[vs.ExpandedRow], true
}

func (r *Renderer) renderTitle(vs ViewState, width int) string {
	logo := r.styles.Title.Render("codesearch")

	var indicators []string
	if vs.Loading {
		indicators = append(indicators, fmt.Sprintf("%s Indexing %s", vs.Spinner, vs.IndexTarget))
	}
	if vs.Searching {
		indicators = append(indicators, fmt.Sprintf("%s Searching", vs.Spinner))
	}
	right := r.styles.Subtitle.Render(vs.BaseURL)
	if len(indicators) > 0 {
		right = r.styles.StatusLoading.Render(strings.Join(indicators, " | ")) + "  " + right
	}

	padding := width - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) activeSuffix(vs ViewState) string {
	if !domain.IsProject(vs.ActiveProject) {
		return ""
	}
	return r.styles.Dim.Render(fmt.Sprintf("  (active: %s)", vs.ActiveProject))
}

func (r *Renderer) renderField(label, value, placeholder string, editing bool, editor, suffix string) string {
	if editing {
		return r.styles.LabelFocused.Render(label+":") + r.styles.FieldFocused.Render(editor) + suffix
	}
	shown := r.styles.Field.Render(value)
	if value == "" {
		shown = r.styles.Dim.Render(placeholder)
	}
	return r.styles.Label.Render(label+":") + shown + suffix
}

func (r *Renderer) renderStatus(vs ViewState) string {
	if vs.StatusMessage == "" {
		return r.styles.Dim.Render(fmt.Sprintf("%d results", len(vs.Rows)))
	}
	switch vs.StatusKind {
	case state.StatusError:
		return r.styles.StatusError.Render(vs.StatusMessage)
	case state.StatusSuccess:
		return r.styles.StatusSuccess.Render(vs.StatusMessage)
	default:
		if vs.Loading {
			return r.styles.StatusLoading.Render(vs.StatusMessage)
		}
		return r.styles.StatusInfo.Render(vs.StatusMessage)
	}
}
