// pkg/catalog/community.go
package catalog

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/arc-language/packstack/pkg/core"
	"github.com/arc-language/packstack/pkg/logging"
	"github.com/arc-language/packstack/pkg/registry"
)

// Source lists and loads community entries
type Source interface {
	List() ([]string, error)
	Load(id string) (*core.CuratedPackage, error)
}

// WithCommunity returns a catalog holding c's apps followed by the valid
// entries of src. Entries that fail to load or validate, or that reuse a
// core id, are skipped with a warning. An unsynced source adds nothing.
func (c *Catalog) WithCommunity(ctx context.Context, src Source) (*Catalog, error) {
	logger := logging.GetLogger("catalog")

	ids, err := src.List()
	if errors.Is(err, registry.ErrNotSynced) {
		logger.Debug().Msg("No community catalog, using core apps only")
		return c, nil
	}
	if err != nil {
		return nil, err
	}

	loaded := make([]*core.CuratedPackage, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			app, err := src.Load(id)
			if err != nil {
				logger.Warn().Err(err).Str("id", id).Msg("Skipping community entry")
				return nil
			}
			if err := Validate(app); err != nil {
				logger.Warn().Err(err).Str("id", id).Msg("Skipping community entry")
				return nil
			}
			loaded[i] = app
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	apps := c.All()
	for _, app := range loaded {
		if app == nil {
			continue
		}
		if _, exists := c.byID[app.Identifier]; exists {
			logger.Warn().Str("id", app.Identifier).Msg("Community entry conflicts with a core app, skipping")
			continue
		}
		apps = append(apps, app)
	}
	return New(apps)
}
