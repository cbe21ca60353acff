package sqlite

import (
	"context"
	"database/sql"

	"github.com/m-mizutani/goerr/v2"

	"statustable/internal/domain"
	"statustable/internal/logic"
)

// Store reads workspaces, scans and findings from the database
type Store struct {
	db *sql.DB
}

// NewStore creates a store on a migrated database
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

var _ logic.FindingSource = (*Store)(nil)

// Workspaces returns all workspaces ordered by name
func (s *Store) Workspaces(ctx context.Context) ([]domain.Workspace, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM workspaces ORDER BY name, id`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query workspaces")
	}
	defer rows.Close()

	var out []domain.Workspace
	for rows.Next() {
		var ws domain.Workspace
		var id int64
		if err := rows.Scan(&id, &ws.Name); err != nil {
			return nil, goerr.Wrap(err, "failed to scan workspace row")
		}
		ws.ID = domain.WorkspaceID(id)
		out = append(out, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to read workspaces")
	}
	return out, nil
}

// Scans returns the scans of a workspace ordered by name
func (s *Store) Scans(ctx context.Context, ws domain.WorkspaceID) ([]domain.ScanRef, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, workspace_id, name FROM scans WHERE workspace_id = ? ORDER BY name, id`, int64(ws))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query scans", goerr.V("workspace", ws))
	}
	defer rows.Close()

	var out []domain.ScanRef
	for rows.Next() {
		var ref domain.ScanRef
		var id, wsID int64
		if err := rows.Scan(&id, &wsID, &ref.Name); err != nil {
			return nil, goerr.Wrap(err, "failed to scan scan row")
		}
		ref.ID = domain.ScanID(id)
		ref.WorkspaceID = domain.WorkspaceID(wsID)
		out = append(out, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to read scans", goerr.V("workspace", ws))
	}
	return out, nil
}

// Findings returns every finding of a workspace, across all its scans
func (s *Store) Findings(ctx context.Context, ws domain.WorkspaceID) ([]domain.Finding, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, workspace_id, scan_id, host, port, plugin, severity, status, find, remark
		FROM findings
		WHERE workspace_id = ?
		ORDER BY id`, int64(ws))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query findings", goerr.V("workspace", ws))
	}
	defer rows.Close()

	var out []domain.Finding
	for rows.Next() {
		var f domain.Finding
		var wsID, scanID int64
		var status string
		if err := rows.Scan(&f.ID, &wsID, &scanID, &f.Host, &f.Port, &f.Plugin, &f.Severity, &status, &f.Find, &f.Remark); err != nil {
			return nil, goerr.Wrap(err, "failed to scan finding row")
		}
		f.WorkspaceID = domain.WorkspaceID(wsID)
		f.ScanID = domain.ScanID(scanID)
		f.Status = domain.StatusCode(status)
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to read findings", goerr.V("workspace", ws))
	}
	return out, nil
}
