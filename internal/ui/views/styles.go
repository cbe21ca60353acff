package views

import (
	"github.com/charmbracelet/lipgloss"

	"statustable/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Label         lipgloss.Style
	Value         lipgloss.Style
	Cursor        lipgloss.Style
	Checked       lipgloss.Style
	Notice        lipgloss.Style
	NoticeBox     lipgloss.Style
	Prompt        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Summary       lipgloss.Style
	StatusLine    lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	TableHeader   lipgloss.Style
	TableCell     lipgloss.Style
	TableSelected lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Cursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Checked: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // yellow
		NoticeBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(0, 1),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Help:   lipgloss.NewStyle().Faint(true),
		Main:   lipgloss.NewStyle().Padding(1, 2),
		Summary: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		StatusLine:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("240")),
		TableCell: lipgloss.NewStyle().Padding(0, 1),
		TableSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true),
	}
}

// StatusColor returns the color used for a finding status
func StatusColor(code domain.StatusCode) string {
	switch code {
	case domain.StatusNew:
		return "203" // red
	case domain.StatusChanged:
		return "214" // yellow
	case domain.StatusOpen:
		return "208" // orange
	case domain.StatusNoIssue, domain.StatusClosed:
		return "78" // green
	case domain.StatusGone:
		return "241" // gray
	case domain.StatusMasked:
		return "99" // purple
	default:
		return "252"
	}
}
