package logic

import (
	"context"

	"statustable/internal/domain"
)

// FindingModel is the query side of the finding data model
type FindingModel interface {
	FindAll() []domain.Finding
}

// FindingSource loads workspaces, scans and findings from storage
type FindingSource interface {
	Workspaces(ctx context.Context) ([]domain.Workspace, error)
	Scans(ctx context.Context, workspace domain.WorkspaceID) ([]domain.ScanRef, error)
	Findings(ctx context.Context, workspace domain.WorkspaceID) ([]domain.Finding, error)
}
