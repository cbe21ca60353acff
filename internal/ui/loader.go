package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/m-mizutani/goerr/v2"

	"statustable/internal/domain"
	"statustable/internal/logic"
)

func loadWorkspaces(ctx context.Context, src logic.FindingSource) tea.Cmd {
	return func() tea.Msg {
		workspaces, err := src.Workspaces(ctx)
		if err != nil {
			return workspacesLoadedMsg{err: goerr.Wrap(err, "failed to load workspaces")}
		}
		return workspacesLoadedMsg{workspaces: workspaces}
	}
}

func loadWorkspace(ctx context.Context, src logic.FindingSource, ws domain.WorkspaceID) tea.Cmd {
	return func() tea.Msg {
		scans, err := src.Scans(ctx, ws)
		if err != nil {
			return workspaceLoadedMsg{workspace: ws, err: err}
		}
		findings, err := src.Findings(ctx, ws)
		if err != nil {
			return workspaceLoadedMsg{workspace: ws, err: err}
		}
		return workspaceLoadedMsg{workspace: ws, scans: scans, findings: findings}
	}
}
