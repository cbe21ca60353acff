package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statustable/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "data", "findings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, Migrate(db))
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	version, dirty, err := SchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	// the connection survives migrating
	require.NoError(t, db.Ping())
}

func TestEmptyDatabase(t *testing.T) {
	db := openTestDB(t)
	store := NewStore(db)
	ctx := context.Background()

	workspaces, err := store.Workspaces(ctx)
	require.NoError(t, err)
	assert.Empty(t, workspaces)

	findings, err := store.Findings(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestSeedAndQuery(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	stats, err := Seed(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, SeedStats{Workspaces: 2, Scans: 3, Findings: 3 * findingsPerScan}, stats)

	store := NewStore(db)

	workspaces, err := store.Workspaces(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Workspace{{ID: 1, Name: "corp-dmz"}, {ID: 2, Name: "lab"}}, workspaces)

	scans, err := store.Scans(ctx, 1)
	require.NoError(t, err)
	require.Len(t, scans, 2)
	assert.Equal(t, "daily-ports", scans[0].Name)
	assert.Equal(t, "weekly-nessus", scans[1].Name)
	for _, sc := range scans {
		assert.Equal(t, domain.WorkspaceID(1), sc.WorkspaceID)
	}

	findings, err := store.Findings(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, findings, 2*findingsPerScan)
	for _, f := range findings {
		assert.Equal(t, domain.WorkspaceID(1), f.WorkspaceID)
		assert.True(t, f.Status.Known(), "seeded status %q", f.Status)
		assert.NotEmpty(t, f.Host)
	}

	lab, err := store.Findings(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, lab, findingsPerScan)
}

func TestSeedTwiceIsNoop(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := Seed(ctx, db)
	require.NoError(t, err)

	stats, err := Seed(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, SeedStats{}, stats)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM findings`).Scan(&count))
	assert.Equal(t, 3*findingsPerScan, count)
}

func TestRawStatusSurvivesStorage(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO workspaces(id, name) VALUES(5, 'custom')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO scans(id, workspace_id, name) VALUES(50, 5, 'manual')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO findings(workspace_id, scan_id, host, status) VALUES(5, 50, 'h1', 'abc')`)
	require.NoError(t, err)

	findings, err := NewStore(db).Findings(ctx, 5)
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, domain.StatusCode("abc"), findings[0].Status)
	assert.Equal(t, domain.ScanID(50), findings[0].ScanID)
}
