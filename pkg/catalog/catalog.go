// Package catalog holds the curated app catalog: the embedded core list
// plus validated community entries.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/arc-language/packstack/pkg/core"
	"github.com/arc-language/packstack/pkg/extract"
	"github.com/arc-language/packstack/pkg/platform"
)

//go:embed apps.yaml
var coreApps []byte

// SourceCore marks entries shipped with the binary
const SourceCore = "core"

type file struct {
	Apps []*core.CuratedPackage `yaml:"apps"`
}

// Catalog is an immutable, ordered set of curated packages
type Catalog struct {
	apps []*core.CuratedPackage
	byID map[string]*core.CuratedPackage
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded core catalog, parsed once per process
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(coreApps)
	})
	return defaultCatalog, defaultErr
}

// Parse reads a catalog document with a top level "apps" list
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	for _, app := range f.Apps {
		if app.Source == "" {
			app.Source = SourceCore
		}
	}
	return New(f.Apps)
}

// New builds a catalog from apps. Ids must be unique.
func New(apps []*core.CuratedPackage) (*Catalog, error) {
	c := &Catalog{
		apps: make([]*core.CuratedPackage, 0, len(apps)),
		byID: make(map[string]*core.CuratedPackage, len(apps)),
	}
	for _, app := range apps {
		if app == nil || app.Identifier == "" {
			return nil, fmt.Errorf("catalog entry without id")
		}
		if _, dup := c.byID[app.Identifier]; dup {
			return nil, fmt.Errorf("duplicate catalog id %q", app.Identifier)
		}
		c.apps = append(c.apps, app)
		c.byID[app.Identifier] = app
	}
	return c, nil
}

// Len returns the number of apps
func (c *Catalog) Len() int {
	return len(c.apps)
}

// All returns every app in catalog order
func (c *Catalog) All() []*core.CuratedPackage {
	out := make([]*core.CuratedPackage, len(c.apps))
	copy(out, c.apps)
	return out
}

// Get returns the app with id
func (c *Catalog) Get(id string) (*core.CuratedPackage, bool) {
	app, ok := c.byID[id]
	return app, ok
}

// Lookup resolves ids in order. Unknown ids are returned separately.
func (c *Catalog) Lookup(ids []string) (found []*core.CuratedPackage, unknown []string) {
	for _, id := range ids {
		if app, ok := c.byID[id]; ok {
			found = append(found, app)
		} else {
			unknown = append(unknown, id)
		}
	}
	return found, unknown
}

// Filter narrows a listing. Zero fields match everything.
type Filter struct {
	Platform platform.ID
	Category core.Category
	// Query matches name or description, case-insensitively
	Query string
}

// Filter returns the apps matching f in catalog order
func (c *Catalog) Filter(f Filter) []*core.CuratedPackage {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	var out []*core.CuratedPackage
	for _, app := range c.apps {
		if f.Platform != "" && !Available(app, f.Platform) {
			continue
		}
		if f.Category != "" && app.Category != f.Category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(app.Name), query) &&
			!strings.Contains(strings.ToLower(app.Description), query) {
			continue
		}
		out = append(out, app)
	}
	return out
}

// Available reports whether app has an install command for id, counting
// the generic Linux command for distributions
func Available(app *core.CuratedPackage, id platform.ID) bool {
	return extract.Command(app, id) != ""
}

// Categories returns the categories present in the catalog, sorted
func (c *Catalog) Categories() []core.Category {
	seen := map[core.Category]bool{}
	for _, app := range c.apps {
		seen[app.Category] = true
	}
	out := make([]core.Category, 0, len(seen))
	for cat := range seen {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
