// pkg/backend/dnf.go
package backend

import (
	"github.com/arc-language/packstack/pkg/core"
	"github.com/arc-language/packstack/pkg/dnf"
	"github.com/arc-language/packstack/pkg/platform"
)

// DnfBackend generates bash scripts for Fedora
type DnfBackend struct {
	config *Config
}

// NewDnfBackend creates a new dnf backend
func NewDnfBackend(config *Config) *DnfBackend {
	if config == nil {
		config = DefaultConfig()
	}
	return &DnfBackend{config: config}
}

func (b *DnfBackend) Name() string {
	return "dnf"
}

func (b *DnfBackend) Platforms() []platform.ID {
	return []platform.ID{platform.Fedora}
}

func (b *DnfBackend) Generate(items []core.Item, id platform.ID) string {
	ids, meta := b.config.meta(items, id)
	return dnf.Generate(ids, meta)
}
