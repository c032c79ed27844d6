package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/railcat/railcat/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEnsureDirs(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping file system test in short mode")
	}
	tmpDir := t.TempDir()

	// repeated calls are fine
	for range 3 {
		require.NoError(t, EnsureDirs(tmpDir))
	}

	dirs := []string{
		filepath.Join(tmpDir, ".config", "railcat"),
		filepath.Join(tmpDir, ".local", "share", "railcat"),
		filepath.Join(tmpDir, ".local", "share", "railcat", "logs"),
	}
	for _, v := range dirs {
		info, err := os.Stat(v)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), v)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
	}
}

func TestTouchDir(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping file system test in short mode")
	}
	tmpDir := t.TempDir()

	file := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	err := touchDir(filepath.Join(file, "sub"))
	assert.Error(t, err, "cannot create a directory inside a file")

	require.NoError(t, touchDir(filepath.Join(tmpDir, "a", "b")))
}

func TestEnsureConfigFile(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping file system test in short mode")
	}
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))
	require.NoError(t, EnsureConfigFile(tmpDir))

	configPath := filepath.Join(tmpDir, ".config", "railcat", "config.yaml")
	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(content))

	// user changes are kept
	custom := "# Custom config\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(configPath, []byte(custom), 0644))
	require.NoError(t, EnsureConfigFile(tmpDir))
	content, err = os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, custom, string(content))
}

// TestConfigYAML_Defaults verifies the embedded file carries the same
// defaults as config.New.
func TestConfigYAML_Defaults(t *testing.T) {
	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(ConfigYAML), &cfg))

	def := config.New()
	assert.Equal(t, def.Store, cfg.Store)
	assert.Equal(t, def.Log, cfg.Log)
	assert.Equal(t, def.AutoCreateStations(), cfg.AutoCreateStations())
	assert.Equal(t, def.SeedEmpty(), cfg.SeedEmpty())
	require.NotNil(t, cfg.Catalogue.Seed)
}
