package ui

import (
	"time"

	"statustable/internal/domain"
	"statustable/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for animations
type tickMsg time.Time

// workspacesLoadedMsg carries the workspace list
type workspacesLoadedMsg struct {
	workspaces []domain.Workspace
	err        error
}

// workspaceLoadedMsg carries the scans and findings of one workspace
type workspaceLoadedMsg struct {
	workspace domain.WorkspaceID
	scans     []domain.ScanRef
	findings  []domain.Finding
	err       error
}

// pagerDoneMsg is sent when the pager exits
type pagerDoneMsg struct {
	err error
}
