// Package packstack generates idempotent installation scripts for a
// selection of apps on a target platform.
package packstack

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arc-language/packstack/pkg/backend"
	"github.com/arc-language/packstack/pkg/cache"
	"github.com/arc-language/packstack/pkg/catalog"
	"github.com/arc-language/packstack/pkg/core"
	"github.com/arc-language/packstack/pkg/index"
	"github.com/arc-language/packstack/pkg/logging"
	"github.com/arc-language/packstack/pkg/packaging"
	"github.com/arc-language/packstack/pkg/platform"
	"github.com/arc-language/packstack/pkg/registry"
)

// Re-export core types for convenience
type (
	Item              = core.Item
	CuratedPackage    = core.CuratedPackage
	DiscoveredPackage = core.DiscoveredPackage
	GeneratedScript   = core.GeneratedScript
	Config            = core.Config
	Platform          = platform.ID
)

// Re-export platform constants
const (
	Windows = platform.Windows
	MacOS   = platform.MacOS
	Linux   = platform.Linux
	Ubuntu  = platform.Ubuntu
	Arch    = platform.Arch
	Debian  = platform.Debian
	Fedora  = platform.Fedora
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Stack ties the catalog, the script generators and packaging together
type Stack struct {
	config      *core.Config
	catalog     *catalog.Catalog
	registry    *registry.Registry
	backendOpts []backend.Option
	logger      zerolog.Logger
}

// Option customizes a Stack
type Option func(*Stack)

// WithBackendOptions passes opts to every generation call
func WithBackendOptions(opts ...backend.Option) Option {
	return func(s *Stack) {
		s.backendOpts = append(s.backendOpts, opts...)
	}
}

// WithCatalog replaces the embedded core catalog
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Stack) {
		s.catalog = c
	}
}

// New creates a Stack. Community entries found under config.CommunityDir
// are merged into the catalog.
func New(ctx context.Context, config *core.Config, opts ...Option) (*Stack, error) {
	if config == nil {
		config = core.DefaultConfig()
	}

	s := &Stack{
		config: config,
		logger: logging.GetLogger("packstack"),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.catalog == nil {
		c, err := catalog.Default()
		if err != nil {
			return nil, &Error{Op: "load catalog", Err: err}
		}
		s.catalog = c
	}

	reg, err := registry.New(config.CommunityDir, cache.Config{DefaultTTL: config.CacheTTL})
	if err != nil {
		return nil, &Error{Op: "open registry", Err: err}
	}
	s.registry = reg

	if err := s.loadCommunity(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Stack) loadCommunity(ctx context.Context) error {
	merged, err := s.catalog.WithCommunity(ctx, s.registry)
	if err != nil {
		return &Error{Op: "load community catalog", Err: err}
	}
	s.catalog = merged
	return nil
}

// Config returns the configuration the stack was created with
func (s *Stack) Config() *core.Config {
	return s.config
}

// Catalog returns the merged catalog
func (s *Stack) Catalog() *catalog.Catalog {
	return s.catalog
}

// ResolvePlatform parses name. An empty name falls back to the configured
// default platform and then to the host.
func (s *Stack) ResolvePlatform(name string) (platform.ID, error) {
	if name == "" {
		name = s.config.DefaultPlatform
	}
	if name == "" {
		id := platform.Detect()
		s.logger.Debug().Str("platform", string(id)).Msg("Detected host platform")
		return id, nil
	}

	id, err := platform.Parse(name)
	if err != nil {
		return "", &Error{Op: "resolve platform", Platform: platform.ID(name), Err: fmt.Errorf("%w: %v", ErrPlatformNotSupported, err)}
	}
	return id, nil
}

// Select looks up catalog ids. Every id must exist.
func (s *Stack) Select(ids []string) ([]core.Item, error) {
	found, unknown := s.catalog.Lookup(ids)
	if len(unknown) > 0 {
		return nil, &Error{Op: "select", Package: strings.Join(unknown, ", "), Err: ErrPackageNotFound}
	}
	return core.Items(found), nil
}

// Resolve turns a selection into an ordered, duplicate free item list
func (s *Stack) Resolve(sel *Selection) ([]core.Item, error) {
	items, err := s.Select(sel.Apps)
	if err != nil {
		return nil, err
	}

	for _, pkg := range sel.Packages {
		if strings.TrimSpace(pkg.Identifier) == "" {
			return nil, &Error{Op: "select", Package: pkg.Name, Err: ErrInvalidPackage}
		}
		items = append(items, pkg)
	}

	return Dedupe(items), nil
}

// Dedupe drops repeated items, keeping the first occurrence. Curated and
// discovered items never collide with each other.
func Dedupe(items []core.Item) []core.Item {
	type key struct {
		curated bool
		id      string
	}
	seen := make(map[key]bool, len(items))

	out := make([]core.Item, 0, len(items))
	for _, item := range items {
		_, curated := item.(*core.CuratedPackage)
		k := key{curated: curated, id: item.ID()}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, item)
	}
	return out
}

// Generate builds the installation script for items on p
func (s *Stack) Generate(items []core.Item, p platform.ID) *core.GeneratedScript {
	done := logging.LogOperationStart(s.logger, "generate")
	defer done()

	return packaging.Build(items, p, s.backendOpts...)
}

// Save writes script into dir using the configured compression unless c
// is given
func (s *Stack) Save(script *core.GeneratedScript, dir string, c ...packaging.Compression) (string, error) {
	compression := s.config.Compression
	if len(c) > 0 {
		compression = string(c[0])
	}

	format, err := packaging.ParseCompression(compression)
	if err != nil {
		return "", &Error{Op: "save", Package: script.Filename, Err: err}
	}

	if dir == "" {
		dir = s.config.OutputDir
	}
	path, err := packaging.SaveCompressed(script, dir, format)
	if err != nil {
		return "", &Error{Op: "save", Package: script.Filename, Err: err}
	}
	return path, nil
}

// Command returns the one-line command installing items on p
func (s *Stack) Command(items []core.Item, p platform.ID) (string, error) {
	cmd := packaging.OneLiner(items, p)
	if cmd == "" {
		return "", &Error{Op: "command", Platform: p, Err: ErrNoSelection}
	}
	return cmd, nil
}

// Share encodes the catalog ids of items into a share hash
func (s *Stack) Share(items []core.Item) string {
	var ids []string
	for _, item := range items {
		if _, ok := item.(*core.CuratedPackage); ok {
			ids = append(ids, item.ID())
		}
	}
	return catalog.EncodeShare(ids)
}

// Shared decodes a share hash into catalog items, ignoring unknown ids
func (s *Stack) Shared(hash string) ([]core.Item, error) {
	ids := s.catalog.DecodeShareKnown(hash)
	if len(ids) == 0 {
		return nil, &Error{Op: "decode share", Err: ErrNoSelection}
	}
	return s.Select(ids)
}

// Sync updates the community catalog from its repository and reloads it
func (s *Stack) Sync(ctx context.Context, progress io.Writer) (int, error) {
	opts := index.DefaultOptions(s.config)
	opts.Progress = progress

	n, err := index.Sync(ctx, opts)
	if err != nil {
		return 0, &Error{Op: "sync", Err: err}
	}

	s.registry.Invalidate()
	base, err := catalog.Default()
	if err != nil {
		return 0, &Error{Op: "load catalog", Err: err}
	}
	s.catalog = base
	if err := s.loadCommunity(ctx); err != nil {
		return 0, err
	}
	return n, nil
}

// IsNotFound reports whether err means a package was not found
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPackageNotFound) || errors.Is(err, registry.ErrNotFound)
}
