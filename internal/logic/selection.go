package logic

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"

	"statustable/internal/domain"
)

// ResolveScans turns configured scan ids into a present selection.
// Ids the workspace does not know are kept with a placeholder name.
func ResolveScans(ctx context.Context, src FindingSource, ws domain.WorkspaceID, ids []domain.ScanID) (domain.ScanSelection, error) {
	byID := make(map[domain.ScanID]domain.ScanRef)
	if ws.Valid() && len(ids) > 0 {
		scans, err := src.Scans(ctx, ws)
		if err != nil {
			return domain.NoScans(), goerr.Wrap(err, "failed to resolve scans", goerr.V("workspace", ws))
		}
		for _, sc := range scans {
			byID[sc.ID] = sc
		}
	}

	refs := make([]domain.ScanRef, 0, len(ids))
	for _, id := range ids {
		ref, ok := byID[id]
		if !ok {
			ref = domain.ScanRef{ID: id, WorkspaceID: ws, Name: fmt.Sprintf("#%d", id)}
		}
		refs = append(refs, ref)
	}
	return domain.SelectScans(refs...), nil
}

// FilterByScans returns the findings that belong to the selected scans
func FilterByScans(findings []domain.Finding, scans domain.ScanSelection) []domain.Finding {
	out := make([]domain.Finding, 0, len(findings))
	for _, f := range findings {
		if scans.Contains(f.ScanID) {
			out = append(out, f)
		}
	}
	return out
}
