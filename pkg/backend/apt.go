// pkg/backend/apt.go
package backend

import (
	"github.com/arc-language/packstack/pkg/apt"
	"github.com/arc-language/packstack/pkg/core"
	"github.com/arc-language/packstack/pkg/platform"
)

// AptBackend generates bash scripts for the Debian family
type AptBackend struct {
	config *Config
}

// NewAptBackend creates a new apt backend
func NewAptBackend(config *Config) *AptBackend {
	if config == nil {
		config = DefaultConfig()
	}
	return &AptBackend{config: config}
}

func (b *AptBackend) Name() string {
	return "apt"
}

func (b *AptBackend) Platforms() []platform.ID {
	return []platform.ID{platform.Ubuntu, platform.Debian, platform.Linux}
}

// Generate renders an apt script. Debian keeps its own commands; every
// other id is treated as Ubuntu.
func (b *AptBackend) Generate(items []core.Item, id platform.ID) string {
	if id != platform.Debian {
		id = platform.Ubuntu
	}
	ids, meta := b.config.meta(items, id)
	return apt.Generate(id.DisplayName(), ids, meta)
}
