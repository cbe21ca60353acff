package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statustable/internal/config"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

type testEnv struct {
	dir        string
	configPath string
	dbPath     string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	dir := t.TempDir()
	return testEnv{
		dir:        dir,
		configPath: filepath.Join(dir, "config.toml"),
		dbPath:     filepath.Join(dir, "findings.db"),
	}
}

func (e testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	full := append([]string{
		"statustable",
		"--log-format", "json",
		"--log-level", "error",
		"--config", e.configPath,
		"--db", e.dbPath,
	}, args...)

	err := newApp(&stdout, &stderr).Run(context.Background(), full)
	return ansiRE.ReplaceAllString(stdout.String(), ""), err
}

func TestMigrateCommand(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "schema version 1")

	_, err = os.Stat(env.dbPath)
	assert.NoError(t, err)
}

func TestSeedCommandIsIdempotent(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 2 workspaces, 3 scans, 72 findings")

	out, err = env.run(t, "seed")
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 0 workspaces, 0 scans, 0 findings")
}

func TestRenderWithoutSelection(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run(t, "seed")
	require.NoError(t, err)

	out, err := env.run(t, "render")
	require.NoError(t, err)
	assert.Contains(t, out, "No workspace or scans selected")
	assert.Contains(t, out, "New (1)")
}

func TestRenderWorkspaceWithoutScans(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run(t, "seed")
	require.NoError(t, err)

	out, err := env.run(t, "--workspace", "1", "--status", "3", "render")
	require.NoError(t, err)
	assert.Contains(t, out, "No workspace or scans selected")
	assert.Contains(t, out, "Open (3)")
}

func TestRenderPopulated(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run(t, "seed")
	require.NoError(t, err)

	out, err := env.run(t, "--workspace", "1", "--scan", "1", "--scan", "2", "render")
	require.NoError(t, err)
	assert.Contains(t, out, "48 findings in 2 selected scan(s)")
	assert.NotContains(t, out, "No workspace or scans selected")
}

func TestRenderFromConfigFile(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run(t, "seed")
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	cfg.Database.Path = env.dbPath
	cfg.Widget.Workspace = 2
	cfg.Widget.Scans = &[]int64{}
	cfg.Widget.Status = "abc"
	require.NoError(t, config.Save(cfg, env.configPath))

	out, err := env.run(t, "render")
	require.NoError(t, err)
	assert.Contains(t, out, "0 findings in 0 selected scan(s), 0 with status abc")
}

func TestInitConfig(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "init-config")
	require.NoError(t, err)
	assert.Contains(t, out, env.configPath)

	cfg, err := config.Load(env.configPath)
	require.NoError(t, err)
	assert.Equal(t, env.dbPath, cfg.Database.Path)
	assert.Equal(t, -1, cfg.Widget.Workspace)

	_, err = env.run(t, "init-config")
	assert.Error(t, err)

	_, err = env.run(t, "init-config", "--force")
	assert.NoError(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	env := newTestEnv(t)
	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run(context.Background(), []string{
		"statustable", "--log-level", "loud", "--config", env.configPath, "migrate",
	})
	assert.Error(t, err)
}
