// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultCatalogRepo hosts the community catalog entries
	DefaultCatalogRepo = "https://github.com/arc-language/packstack"

	// DefaultCatalogBranch is the branch cloned by catalog sync
	DefaultCatalogBranch = "main"

	// DefaultCacheTTL bounds how long parsed community entries are reused
	DefaultCacheTTL = 24 * time.Hour
)

// Config holds packstack configuration
type Config struct {
	DefaultPlatform string        `yaml:"default_platform"`
	OutputDir       string        `yaml:"output_dir"`
	CommunityDir    string        `yaml:"community_dir"`
	CatalogRepo     string        `yaml:"catalog_repo"`
	CatalogBranch   string        `yaml:"catalog_branch"`
	Compression     string        `yaml:"compression"`
	CacheTTL        time.Duration `yaml:"cache_ttl"`
	Debug           bool          `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultPlatform: "", // Auto-detect
		OutputDir:       getDefaultOutputDir(),
		CommunityDir:    filepath.Join(xdg.DataHome, "packstack", "community"),
		CatalogRepo:     DefaultCatalogRepo,
		CatalogBranch:   DefaultCatalogBranch,
		Compression:     "none",
		CacheTTL:        DefaultCacheTTL,
		Debug:           false,
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/packstack/config.yaml
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "packstack", "config.yaml")
}

// LoadConfig loads configuration from file.
// A missing file yields the default configuration.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Environment wins over the file
	if dir := os.Getenv("PACKSTACK_OUTPUT_DIR"); dir != "" {
		cfg.OutputDir = dir
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func getDefaultOutputDir() string {
	if dir := os.Getenv("PACKSTACK_OUTPUT_DIR"); dir != "" {
		return dir
	}

	wd, err := os.Getwd()
	if err != nil {
		return "."
	}

	return wd
}
