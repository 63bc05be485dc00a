package configpaths

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCandidatePathsUserFirst(t *testing.T) {
	tests := []struct {
		user     string
		wantJSON bool
		wantYAML bool
		wantTOML bool
	}{
		{user: "/tmp/a.json", wantJSON: true},
		{user: "/tmp/a.yml", wantYAML: true},
		{user: "/tmp/a.yaml", wantYAML: true},
		{user: "/tmp/a.toml", wantTOML: true},
		{user: "/tmp/noext", wantJSON: true},
	}
	for _, tt := range tests {
		t.Run(tt.user, func(t *testing.T) {
			j, y, to := ConfigCandidatePaths(tt.user)
			assert.Equal(t, tt.wantJSON, j[0] == tt.user)
			assert.Equal(t, tt.wantYAML, y[0] == tt.user)
			assert.Equal(t, tt.wantTOML, to[0] == tt.user)
		})
	}
}

func TestConfigCandidatePathsOrder(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix config locations")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	wd, err := os.Getwd()
	require.NoError(t, err)

	j, y, to := ConfigCandidatePaths("")
	assert.Equal(t, filepath.Join(wd, "zmkexport.json"), j[0])
	assert.Contains(t, j, filepath.Join(xdg, "zmkexport", "export.json"))
	assert.Contains(t, y, filepath.Join(xdg, "zmkexport", "config.yml"))
	assert.Equal(t, filepath.Join(systemConfigDir, "info.toml"), to[len(to)-1])
	assert.Less(t, slices.Index(j, filepath.Join(wd, "config.json")), slices.Index(j, filepath.Join(xdg, "zmkexport", "config.json")))
}

func TestDefaultNamedConfigPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix config locations")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	p, err := DefaultNamedConfigPath("export", "yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, "zmkexport", "export.yaml"), p)

	p, err = DefaultNamedConfigPath("export", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, "zmkexport", "export.json"), p)
}

func TestEnsureDir(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "a", "b", "c.json")
	require.NoError(t, EnsureDir(dest))
	assert.DirExists(t, filepath.Dir(dest))
}
