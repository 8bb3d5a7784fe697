package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultCatalogRepo, cfg.CatalogRepo)
	assert.Equal(t, "none", cfg.Compression)
	assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
}

func TestLoadConfig_OverlaysFileOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "default_platform: arch\ncompression: xz\ncache_ttl: 30m\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "arch", cfg.DefaultPlatform)
	assert.Equal(t, "xz", cfg.Compression)
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
	assert.Equal(t, DefaultCatalogBranch, cfg.CatalogBranch)
}

func TestLoadConfig_EnvOverridesOutputDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: /from/file\n"), 0644))
	t.Setenv("PACKSTACK_OUTPUT_DIR", "/from/env")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.OutputDir)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("compression: [unterminated\n"), 0644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.DefaultPlatform = "fedora"

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "fedora", loaded.DefaultPlatform)
}

func TestItemVariants(t *testing.T) {
	size := 12.5
	curated := &CuratedPackage{Identifier: "git", Name: "Git", SizeMB: &size}
	discovered := &DiscoveredPackage{Identifier: "ripgrep", Name: "ripgrep"}

	items := []Item{curated, discovered}
	assert.Equal(t, "git", items[0].ID())
	assert.Equal(t, 12.5, items[0].Size())
	assert.Equal(t, "ripgrep", items[1].Title())
	assert.Zero(t, items[1].Size())
}

func TestCategoryAndManager(t *testing.T) {
	assert.True(t, CategoryDesign.IsValid())
	assert.False(t, Category("toys").IsValid())
	assert.Equal(t, "Web Browsers", CategoryBrowsers.DisplayName())
	assert.True(t, ManagerSnap.IsValid())
	assert.False(t, ManagerKind("nix").IsValid())
}
