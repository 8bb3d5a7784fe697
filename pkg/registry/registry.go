// pkg/registry/registry.go
package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/arc-language/packstack/pkg/cache"
	"github.com/arc-language/packstack/pkg/core"
	"github.com/arc-language/packstack/pkg/extract"
	"github.com/arc-language/packstack/pkg/logging"
	"github.com/arc-language/packstack/pkg/platform"
)

// EntryFile is the file holding one community entry
const EntryFile = "index.toml"

var (
	// ErrNotSynced is returned when the community directory does not exist
	ErrNotSynced = errors.New("registry: community catalog not found, run catalog sync first")

	// ErrNotFound is returned for ids without an entry
	ErrNotFound = errors.New("registry: entry not found")
)

// Registry provides lookup into a directory of community entries laid
// out as <dir>/<id>/index.toml
type Registry struct {
	dir     string
	entries *cache.Cache[*core.CuratedPackage]
	logger  zerolog.Logger
}

// New creates a Registry over dir. Parsed entries are kept according to
// cacheConfig.
func New(dir string, cacheConfig cache.Config, opts ...cache.Option) (*Registry, error) {
	if cacheConfig.Prefix == "" {
		cacheConfig.Prefix = "community:"
	}
	entries, err := cache.New[*core.CuratedPackage](cacheConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}

	return &Registry{
		dir:     dir,
		entries: entries,
		logger:  logging.GetLogger("registry"),
	}, nil
}

// Dir returns the community directory
func (r *Registry) Dir() string {
	return r.dir
}

// List returns the ids of all entries, sorted
func (r *Registry) List() ([]string, error) {
	dirs, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotSynced
		}
		return nil, fmt.Errorf("registry: reading %s: %w", r.dir, err)
	}

	var ids []string
	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(r.dir, d.Name(), EntryFile)); err == nil {
			ids = append(ids, d.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Load reads and parses <dir>/<id>/index.toml. Results are cached.
func (r *Registry) Load(id string) (*core.CuratedPackage, error) {
	return r.entries.GetOrLoad(id, func() (*core.CuratedPackage, error) {
		return r.read(id)
	})
}

// Resolve returns the identifier the entry installs under on p
func (r *Registry) Resolve(id string, p platform.ID) (string, error) {
	entry, err := r.Load(id)
	if err != nil {
		return "", err
	}

	ident := extract.Identifier(entry, p)
	if ident == "" {
		return "", fmt.Errorf("registry: package '%s' has no install command for platform '%s'", id, p)
	}
	return ident, nil
}

// Invalidate drops cached entries so the next Load rereads the files
func (r *Registry) Invalidate() {
	r.entries.Clear()
}

func (r *Registry) read(id string) (*core.CuratedPackage, error) {
	if _, err := os.Stat(r.dir); os.IsNotExist(err) {
		return nil, ErrNotSynced
	}

	path := filepath.Join(r.dir, id, EntryFile)
	r.logger.Debug().Str("path", path).Msg("Reading community entry")

	data, err := os.ReadFile(path)
	if err != nil {
		if _, statErr := os.Stat(filepath.Dir(path)); statErr == nil {
			return nil, fmt.Errorf("registry: found package '%s' directory, but missing %s", id, EntryFile)
		}
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	var entry core.CuratedPackage
	if _, err := toml.Decode(string(data), &entry); err != nil {
		return nil, fmt.Errorf("registry: failed to parse '%s': %w", id, err)
	}
	if entry.Identifier == "" {
		entry.Identifier = id
	}
	if entry.Source == "" {
		entry.Source = "community"
	}

	return &entry, nil
}
