// pkg/core/package.go
package core

import (
	"github.com/arc-language/packstack/pkg/platform"
)

// Item is anything that can be selected for installation.
// It is implemented only by *CuratedPackage and *DiscoveredPackage; callers
// switch on the concrete type when they need variant specific data.
type Item interface {
	// ID returns the catalog id or the package manager identifier
	ID() string
	// Title returns the display name
	Title() string
	// Size returns the estimated download size in MB, zero when unknown
	Size() float64

	sealed()
}

// CuratedPackage is an entry of the static app catalog
type CuratedPackage struct {
	Identifier  string                          `yaml:"id" toml:"id"`
	Name        string                          `yaml:"name" toml:"name"`
	Description string                          `yaml:"description" toml:"description"`
	Category    Category                        `yaml:"category" toml:"category"`
	Website     string                          `yaml:"website,omitempty" toml:"website"`
	Platforms   map[platform.ID]PlatformInstall `yaml:"platforms" toml:"platforms"`
	SizeMB      *float64                        `yaml:"size_mb,omitempty" toml:"size_mb"`
	Popularity  int                             `yaml:"popularity,omitempty" toml:"popularity"`

	// Community submission metadata
	Source      string `yaml:"source,omitempty" toml:"source"`
	Contributor string `yaml:"contributor,omitempty" toml:"contributor"`
	Verified    bool   `yaml:"verified,omitempty" toml:"verified"`
}

// PlatformInstall describes how a curated package is installed on one platform
type PlatformInstall struct {
	Type        ManagerKind `yaml:"type" toml:"type"`
	Command     string      `yaml:"command" toml:"command"`
	PackageName string      `yaml:"package_name,omitempty" toml:"package_name"`
	DirectURL   string      `yaml:"direct_url,omitempty" toml:"direct_url"`
}

func (p *CuratedPackage) ID() string    { return p.Identifier }
func (p *CuratedPackage) Title() string { return p.Name }
func (p *CuratedPackage) Size() float64 { return sizeOf(p.SizeMB) }
func (p *CuratedPackage) sealed()       {}

// DiscoveredPackage is a search result from a package registry.
// It carries the package manager identifier directly.
type DiscoveredPackage struct {
	Identifier  string      `yaml:"identifier" json:"identifier"`
	Name        string      `yaml:"name" json:"name"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string      `yaml:"version,omitempty" json:"version,omitempty"`
	Homepage    string      `yaml:"homepage,omitempty" json:"homepage,omitempty"`
	Manager     ManagerKind `yaml:"package_manager" json:"packageManager"`
	// Repository is the source channel, e.g. "cask" or "formula" for Homebrew
	Repository string   `yaml:"repository,omitempty" json:"repository,omitempty"`
	SizeMB     *float64 `yaml:"size_mb,omitempty" json:"size,omitempty"`
}

func (p *DiscoveredPackage) ID() string    { return p.Identifier }
func (p *DiscoveredPackage) Title() string { return p.Name }
func (p *DiscoveredPackage) Size() float64 { return sizeOf(p.SizeMB) }
func (p *DiscoveredPackage) sealed()       {}

// Items converts a slice of curated packages to items
func Items[T Item](pkgs []T) []Item {
	items := make([]Item, len(pkgs))
	for i, p := range pkgs {
		items[i] = p
	}
	return items
}

func sizeOf(mb *float64) float64 {
	if mb == nil {
		return 0
	}
	return *mb
}

// GeneratedScript is the result of one generation call
type GeneratedScript struct {
	Platform platform.ID
	Filename string
	MIMEType string
	Content  string
}
