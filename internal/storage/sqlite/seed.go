package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"

	"github.com/m-mizutani/goerr/v2"

	"statustable/internal/domain"
)

// SeedStats reports what Seed inserted
type SeedStats struct {
	Workspaces int
	Scans      int
	Findings   int
}

var seedWorkspaces = []struct {
	id   int64
	name string
}{
	{1, "corp-dmz"},
	{2, "lab"},
}

var seedScans = []struct {
	id, workspaceID int64
	name            string
}{
	{1, 1, "weekly-nessus"},
	{2, 1, "daily-ports"},
	{3, 2, "lab-openvas"},
}

// findingsPerScan is the number of demo findings created for each scan
const findingsPerScan = 24

// Seed fills the database with demo data. Running it again is a no-op.
func Seed(ctx context.Context, db *sql.DB) (SeedStats, error) {
	var stats SeedStats

	err := withTx(db, func(tx *sql.Tx) error {
		for _, ws := range seedWorkspaces {
			res, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO workspaces(id, name) VALUES(?, ?)`, ws.id, ws.name)
			if err != nil {
				return goerr.Wrap(err, "failed to seed workspace", goerr.V("name", ws.name))
			}
			stats.Workspaces += affected(res)
		}

		for _, sc := range seedScans {
			res, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO scans(id, workspace_id, name) VALUES(?, ?, ?)`,
				sc.id, sc.workspaceID, sc.name)
			if err != nil {
				return goerr.Wrap(err, "failed to seed scan", goerr.V("name", sc.name))
			}
			stats.Scans += affected(res)
		}

		var count int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM findings`).Scan(&count); err != nil {
			return goerr.Wrap(err, "failed to count findings")
		}
		if count > 0 {
			return nil
		}

		n, err := seedFindings(ctx, tx)
		if err != nil {
			return err
		}
		stats.Findings = n
		return nil
	})
	if err != nil {
		return SeedStats{}, err
	}
	return stats, nil
}

func seedFindings(ctx context.Context, tx *sql.Tx) (int, error) {
	rng := rand.New(rand.NewSource(7))
	plugins := []string{"ssl-weak-cipher", "ssh-version", "http-trace", "smb-signing", "dns-recursion", "ntp-monlist"}
	ports := []string{"22/tcp", "25/tcp", "53/udp", "80/tcp", "123/udp", "443/tcp", "445/tcp"}
	statuses := domain.KnownStatuses()

	n := 0
	for _, sc := range seedScans {
		for i := 0; i < findingsPerScan; i++ {
			host := fmt.Sprintf("10.%d.0.%d", sc.workspaceID, 10+rng.Intn(20))
			plugin := plugins[rng.Intn(len(plugins))]
			_, err := tx.ExecContext(ctx, `
				INSERT INTO findings(workspace_id, scan_id, host, port, plugin, severity, status, find, remark)
				VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				sc.workspaceID, sc.id, host,
				ports[rng.Intn(len(ports))],
				plugin,
				rng.Intn(5),
				string(statuses[rng.Intn(len(statuses))]),
				fmt.Sprintf("%s reported on %s", plugin, host),
				"",
			)
			if err != nil {
				return n, goerr.Wrap(err, "failed to seed finding", goerr.V("scan", sc.name))
			}
			n++
		}
	}
	return n, nil
}

func affected(res sql.Result) int {
	n, err := res.RowsAffected()
	if err != nil {
		return 0
	}
	return int(n)
}
