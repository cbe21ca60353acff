package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"statustable/internal/domain"
)

// ViewState contains all the state needed for rendering the screen
type ViewState struct {
	Width         int
	Height        int
	Workspaces    []domain.Workspace
	WorkspaceID   domain.WorkspaceID
	Scans         []domain.ScanRef
	ScanCursor    int
	Selection     domain.ScanSelection
	WidgetContent string
	Loading       bool
	StatusMessage string
	StatusIsError bool
	Prompt        string // rendered prompt input, empty when not prompting
	HelpView      string
	ReadyMarker   string
}

// Renderer handles the screen around the widget
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &Renderer{styles: styles}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n\n")

	content.WriteString(r.renderWorkspaceLine(state))
	content.WriteString("\n")
	content.WriteString(r.renderScanLine(state))
	content.WriteString("\n\n")

	content.WriteString(state.WidgetContent)
	content.WriteString("\n")

	if state.Prompt != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Prompt.Render(state.Prompt))
		content.WriteString("\n")
	}

	if state.StatusMessage != "" {
		content.WriteString("\n")
		if state.StatusIsError {
			content.WriteString(r.styles.StatusError.Render(state.StatusMessage))
		} else {
			content.WriteString(r.styles.StatusLine.Render(state.StatusMessage))
		}
		content.WriteString("\n")
	}

	if state.HelpView != "" {
		// push help to the bottom when there is room
		current := strings.Count(content.String(), "\n") + 1
		available := state.Height - 2
		helpLines := lipgloss.Height(state.HelpView)
		if pad := available - current - helpLines; pad > 0 {
			content.WriteString(strings.Repeat("\n", pad))
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("statustable")
	if state.ReadyMarker != "" {
		logo += " " + r.styles.Dim.Render(state.ReadyMarker)
	}
	if !state.Loading {
		return logo
	}

	spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	frame := int(time.Now().UnixMilli()/80) % len(spinner)
	right := r.styles.StatusLoading.Render(fmt.Sprintf("%s Loading findings", spinner[frame]))

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderWorkspaceLine(state ViewState) string {
	name := r.styles.Dim.Render("none")
	for _, ws := range state.Workspaces {
		if ws.ID == state.WorkspaceID {
			name = r.styles.Value.Render(ws.Name)
			break
		}
	}
	if len(state.Workspaces) == 0 {
		name = r.styles.Dim.Render("no workspaces in database")
	}
	return r.styles.Label.Render("Workspace: ") + "‹ " + name + " ›"
}

func (r *Renderer) renderScanLine(state ViewState) string {
	label := r.styles.Label.Render("Scans:     ")
	if !state.WorkspaceID.Valid() {
		return label + r.styles.Dim.Render("select a workspace first")
	}
	if len(state.Scans) == 0 {
		return label + r.styles.Dim.Render("no scans in this workspace")
	}

	parts := make([]string, 0, len(state.Scans))
	for i, scan := range state.Scans {
		box := "[ ]"
		if state.Selection.Contains(scan.ID) {
			box = r.styles.Checked.Render("[x]")
		}
		name := scan.Name
		if i == state.ScanCursor {
			name = r.styles.Cursor.Render("›" + name)
		}
		parts = append(parts, box+" "+name)
	}

	line := label + strings.Join(parts, "  ")
	if !state.Selection.Selected() {
		line += "  " + r.styles.Dim.Render("(none selected)")
	}
	return line
}
