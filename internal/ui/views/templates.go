package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/m-mizutani/goerr/v2"

	"statustable/internal/domain"
	"statustable/internal/widget/statustable"
)

// statusKeys lists the control key bound to each known status
var statusKeys = []struct {
	Key    string
	Status domain.StatusCode
}{
	{"1", domain.StatusNew},
	{"2", domain.StatusChanged},
	{"3", domain.StatusOpen},
	{"4", domain.StatusNoIssue},
	{"5", domain.StatusGone},
	{"6", domain.StatusClosed},
	{"9", domain.StatusMasked},
}

// StatusForKey returns the status bound to a control key
func StatusForKey(key string) (domain.StatusCode, bool) {
	for _, sk := range statusKeys {
		if sk.Key == key {
			return sk.Status, true
		}
	}
	return "", false
}

// KeyForStatus returns the control key of a status, or "" for unknown codes
func KeyForStatus(code domain.StatusCode) string {
	for _, sk := range statusKeys {
		if sk.Status == code {
			return sk.Key
		}
	}
	return ""
}

// Templates renders the status table widget templates as terminal text
type Templates struct {
	styles *Styles
}

// NewTemplates creates the widget templates
func NewTemplates(styles *Styles) *Templates {
	if styles == nil {
		styles = NewStyles()
	}
	return &Templates{styles: styles}
}

// Render implements statustable.Templates
func (t *Templates) Render(name statustable.TemplateName, findings []domain.Finding, vars statustable.Vars) (string, error) {
	switch name {
	case statustable.TemplateInit:
		return t.renderInit(findings, vars), nil
	case statustable.TemplateError:
		return t.renderError(vars), nil
	default:
		return "", goerr.New("unknown template", goerr.V("name", string(name)))
	}
}

// renderError tells the user what is missing and keeps the current status visible
func (t *Templates) renderError(vars statustable.Vars) string {
	var b strings.Builder
	b.WriteString(t.styles.Notice.Render("No workspace or scans selected"))
	b.WriteString("\n")
	b.WriteString(t.styles.Dim.Render("Pick a workspace with h/l and at least one scan with space."))
	b.WriteString("\n\n")
	b.WriteString(t.styles.Label.Render("Status: "))
	b.WriteString(t.statusText(vars.Status))
	return t.styles.NoticeBox.Render(b.String())
}

// renderInit shows one row per status with the number of findings in the
// selected scans
func (t *Templates) renderInit(findings []domain.Finding, vars statustable.Vars) string {
	counts := make(map[domain.StatusCode]int)
	inScope := 0
	for _, f := range findings {
		if !vars.Scans.Contains(f.ScanID) {
			continue
		}
		counts[f.Status]++
		inScope++
	}

	codes := domain.KnownStatuses()
	if !vars.Status.Known() {
		codes = append(codes, vars.Status)
	}

	rows := make([]table.Row, 0, len(codes))
	cursor := 0
	for i, code := range codes {
		if code == vars.Status {
			cursor = i
		}
		key := KeyForStatus(code)
		if key == "" {
			key = ":"
		}
		rows = append(rows, table.Row{
			key,
			code.Label(),
			code.String(),
			strconv.Itoa(counts[code]),
		})
	}

	tbl := table.New(
		table.WithColumns([]table.Column{
			{Title: "Key", Width: 3},
			{Title: "Status", Width: 12},
			{Title: "Code", Width: 6},
			{Title: "Findings", Width: 8},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
		table.WithFocused(true),
	)
	st := table.DefaultStyles()
	st.Header = t.styles.TableHeader
	st.Cell = t.styles.TableCell
	st.Selected = t.styles.TableSelected
	tbl.SetStyles(st)
	tbl.SetCursor(cursor)

	summary := fmt.Sprintf("%d findings in %d selected scan(s), %d with status %s",
		inScope, vars.Scans.Len(), counts[vars.Status], vars.Status.Label())

	return lipgloss.JoinVertical(lipgloss.Left,
		tbl.View(),
		t.styles.Summary.Render(summary),
	)
}

func (t *Templates) statusText(code domain.StatusCode) string {
	style := t.styles.Value.Foreground(lipgloss.Color(StatusColor(code)))
	if code.Known() {
		return style.Render(fmt.Sprintf("%s (%s)", code.Label(), code.String()))
	}
	return style.Render(fmt.Sprintf("%q", code.String()))
}

var _ statustable.Templates = (*Templates)(nil)
