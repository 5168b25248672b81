package views

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Label         lipgloss.Style
	LabelFocused  lipgloss.Style
	Field         lipgloss.Style
	FieldFocused  lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	DetailBox     lipgloss.Style
	DetailName    lipgloss.Style
	DialogBox     lipgloss.Style
	DialogTitle   lipgloss.Style
	Alert         lipgloss.Style
	Confirm       lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
	SelectionBg   lipgloss.Style
	Table         table.Styles
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	tableStyles := table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("241")).
		BorderBottom(true).
		Bold(true)
	tableStyles.Selected = tableStyles.Selected.
		Foreground(lipgloss.Color("226")).
		Background(lipgloss.Color("238")).
		Bold(true)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Subtitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(9),
		LabelFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true).Width(9),
		Field:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		FieldFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Dim:          lipgloss.NewStyle().Faint(true),
		Help:         lipgloss.NewStyle().Faint(true),
		Main:         lipgloss.NewStyle().Padding(1, 2),
		Scroll:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		DetailBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		DetailName: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Width(12),
		DialogBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Alert: lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("203")).
			Padding(0, 1),
		Confirm:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Table:         tableStyles,
	}
}
