package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"statustable/internal/domain"
	"statustable/internal/logic"
)

// ovCommand runs the ov pager through tea.Exec, which releases the
// terminal while it runs
type ovCommand struct {
	content string
}

func (c *ovCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov talks to the tty directly
func (c *ovCommand) SetStdin(io.Reader)  {}
func (c *ovCommand) SetStdout(io.Writer) {}
func (c *ovCommand) SetStderr(io.Writer) {}

func openPager(content string) tea.Cmd {
	return tea.Exec(&ovCommand{content: content}, func(err error) tea.Msg {
		return pagerDoneMsg{err: err}
	})
}

// pagerContent is the widget content followed by the findings of the
// selected scans
func pagerContent(widget string, findings []domain.Finding, scans domain.ScanSelection) string {
	var b strings.Builder
	b.WriteString(widget)
	b.WriteString("\n\n")

	if !scans.Selected() {
		b.WriteString("No scans selected.\n")
		return b.String()
	}

	names := make(map[domain.ScanID]string, scans.Len())
	for _, ref := range scans.Refs() {
		names[ref.ID] = ref.Name
	}

	selected := logic.FilterByScans(findings, scans)
	fmt.Fprintf(&b, "%-6s  %-16s  %-10s  %-8s  %-18s  %-3s  %s\n",
		"ID", "Scan", "Status", "Port", "Host", "Sev", "Plugin")
	for _, f := range selected {
		fmt.Fprintf(&b, "%-6d  %-16s  %-10s  %-8s  %-18s  %-3d  %s\n",
			f.ID, names[f.ScanID], f.Status.Label(), f.Port, f.Host, f.Severity, f.Plugin)
	}
	if len(selected) == 0 {
		b.WriteString("(no findings)\n")
	}
	return b.String()
}
