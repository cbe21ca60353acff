package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statustable/internal/domain"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.Database.Path, cfg.Database.Path)
	assert.Equal(t, int(domain.NoWorkspace), cfg.Widget.Workspace)
	assert.Equal(t, "1", cfg.Widget.Status)
	assert.False(t, cfg.Widget.HasScans())
	assert.Nil(t, cfg.Widget.ScanIDs())
	assert.True(t, cfg.UI.AltScreen)
}

func TestLoadFromFile(t *testing.T) {
	path := writeFile(t, `
[database]
path = "/tmp/findings.db"

[widget]
workspace = 5
scans = [1, 3]
status = "3"

[ui]
alt_screen = false
remember_selection = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/findings.db", cfg.Database.Path)
	assert.Equal(t, 5, cfg.Widget.Workspace)
	assert.True(t, cfg.Widget.HasScans())
	assert.Equal(t, []domain.ScanID{1, 3}, cfg.Widget.ScanIDs())
	assert.Equal(t, "3", cfg.Widget.Status)
	assert.False(t, cfg.UI.AltScreen)
	assert.True(t, cfg.UI.RememberSelection)
}

func TestEmptyScanListIsASelection(t *testing.T) {
	path := writeFile(t, `
[widget]
workspace = 2
scans = []
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Widget.HasScans())
	assert.Empty(t, cfg.Widget.ScanIDs())
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, `
[database]
path = "/from/file.db"
`)
	t.Setenv("STATUSTABLE_DATABASE_PATH", "/from/env.db")
	t.Setenv("STATUSTABLE_WIDGET_WORKSPACE", "9")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.Database.Path)
	assert.Equal(t, 9, cfg.Widget.Workspace)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := writeFile(t, "[database\npath = ")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsEmptyStatus(t *testing.T) {
	path := writeFile(t, `
[widget]
status = ""
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveKeepsSelectionSemantics(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Database.Path = filepath.Join(dir, "findings.db")
	cfg.Widget.SetSelection(4, domain.SelectScans())
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, loaded.Widget.Workspace)
	assert.True(t, loaded.Widget.HasScans(), "an empty selection must survive a save")

	cfg.Widget.SetSelection(domain.NoWorkspace, domain.NoScans())
	require.NoError(t, Save(cfg, path))

	loaded, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, -1, loaded.Widget.Workspace)
	assert.False(t, loaded.Widget.HasScans())
}

func TestSetSelection(t *testing.T) {
	var w WidgetConfig
	w.SetSelection(3, domain.SelectScans(domain.ScanRef{ID: 7}, domain.ScanRef{ID: 8}))

	assert.Equal(t, 3, w.Workspace)
	require.NotNil(t, w.Scans)
	assert.Equal(t, []int64{7, 8}, *w.Scans)
}
