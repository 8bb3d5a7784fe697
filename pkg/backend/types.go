// pkg/backend/types.go
package backend

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/arc-language/packstack/pkg/core"
	"github.com/arc-language/packstack/pkg/extract"
	"github.com/arc-language/packstack/pkg/logging"
	"github.com/arc-language/packstack/pkg/platform"
	"github.com/arc-language/packstack/pkg/script"
)

// EmptyPlaceholder is returned instead of a script when nothing is selected
const EmptyPlaceholder = "# No apps selected for installation\n"

// Backend generates installation scripts for one package manager
type Backend interface {
	// Name returns the package manager the backend drives
	Name() string

	// Platforms lists the platform ids the backend serves
	Platforms() []platform.ID

	// Generate renders the script installing items on the given platform.
	// Items without an identifier for the platform are listed as skipped.
	Generate(items []core.Item, id platform.ID) string
}

// Config holds configuration shared by all backends
type Config struct {
	// Now stamps the generation time into scripts
	Now func() time.Time

	// Logger receives routing diagnostics
	Logger zerolog.Logger
}

// Option customizes a Config
type Option func(*Config)

// WithClock fixes the clock used for the embedded timestamp
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		c.Now = now
	}
}

// WithLogger replaces the backend logger
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Now:    time.Now,
		Logger: logging.GetLogger("backend"),
	}
}

// NewConfig applies opts over the defaults
func NewConfig(opts ...Option) *Config {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// meta resolves items for id and records the ones that have no identifier
func (c *Config) meta(items []core.Item, id platform.ID) ([]string, script.Meta) {
	ids, skipped := extract.Identifiers(items, id)
	if len(skipped) > 0 {
		c.Logger.Debug().
			Str("platform", string(id)).
			Strs("skipped", extract.Titles(skipped)).
			Msg("Items without an install command")
	}
	return ids, script.Meta{
		Generated: c.Now(),
		Skipped:   extract.Titles(skipped),
	}
}
