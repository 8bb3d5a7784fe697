// pkg/backend/brew.go
package backend

import (
	"github.com/arc-language/packstack/pkg/brew"
	"github.com/arc-language/packstack/pkg/core"
	"github.com/arc-language/packstack/pkg/extract"
	"github.com/arc-language/packstack/pkg/platform"
	"github.com/arc-language/packstack/pkg/script"
)

// BrewBackend generates bash scripts driving Homebrew
type BrewBackend struct {
	config *Config
}

// NewBrewBackend creates a new Homebrew backend
func NewBrewBackend(config *Config) *BrewBackend {
	if config == nil {
		config = DefaultConfig()
	}
	return &BrewBackend{config: config}
}

func (b *BrewBackend) Name() string {
	return brew.Binary
}

func (b *BrewBackend) Platforms() []platform.ID {
	return []platform.ID{platform.MacOS}
}

func (b *BrewBackend) Generate(items []core.Item, id platform.ID) string {
	var (
		pkgs    []brew.Package
		skipped []core.Item
	)
	for _, item := range items {
		name := extract.Identifier(item, id)
		if name == "" {
			skipped = append(skipped, item)
			continue
		}
		pkgs = append(pkgs, brew.Package{Name: name, Cask: isCask(item, id)})
	}

	return brew.Generate(pkgs, script.Meta{
		Generated: b.config.Now(),
		Skipped:   extract.Titles(skipped),
	})
}

// isCask uses the --cask flag of curated commands and repository
// metadata or the name heuristic for discovered packages
func isCask(item core.Item, id platform.ID) bool {
	switch it := item.(type) {
	case *core.CuratedPackage:
		_, cask := brew.ParseInstallCommand(extract.Command(it, id))
		return cask
	case *core.DiscoveredPackage:
		return brew.IsCask(it.Repository, it.Name, it.Identifier)
	default:
		return false
	}
}
