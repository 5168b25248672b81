package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

var errNoProgram = errors.New("program not set")

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Results", []helpEntry{
		{"↑/↓, j/k", "Move between matches"},
		{"PgUp/PgDn", "Page up/down"},
		{"gg/G", "Go to first/last match"},
		{"Enter, Space", "Show or hide file path and line number"},
		{"y", "Copy path:line of the selected match"},
		{"v", "Open all matches in the pager"},
	}},
	{"Search", []helpEntry{
		{"/, s", "Edit the query (Enter searches)"},
		{"S", "Search again"},
	}},
	{"Projects", []helpEntry{
		{"t", "Edit the project path or repository URL (Enter indexes)"},
		{"i", "Index the project path"},
		{"p", "Choose an indexed project"},
		{"r", "Reload the project list"},
	}},
	{"Project dialog", []helpEntry{
		{"type", "Filter projects"},
		{"↑/↓, ctrl+p/n", "Move the selection"},
		{"Enter", "Select"},
		{"Esc", "Cancel"},
		{"ctrl+d, Del", "Delete the highlighted project"},
	}},
	{"Other", []helpEntry{
		{"Esc, x", "Dismiss the alert"},
		{"?", "Show this help"},
		{"q", "Quit"},
	}},
}

// RenderHelpContentPlain generates help content with colors for pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(16)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("codesearch Help"))
	help.WriteString("\n")

	for _, section := range helpSections {
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, e := range section.entries {
			help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(e.keys), descStyle.Render(e.desc)))
		}
	}

	return strings.TrimRight(help.String(), "\n")
}

// PagerOps shows long content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Available reports whether the pager can take over the terminal
func (p *PagerOps) Available() bool {
	return p.program != nil
}

// ShowInPager shows content using ov pager
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
