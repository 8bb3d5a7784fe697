// pkg/backend/pacman.go
package backend

import (
	"github.com/arc-language/packstack/pkg/core"
	"github.com/arc-language/packstack/pkg/pacman"
	"github.com/arc-language/packstack/pkg/platform"
)

// PacmanBackend generates bash scripts for Arch Linux with AUR fallback
type PacmanBackend struct {
	config *Config
}

// NewPacmanBackend creates a new pacman backend
func NewPacmanBackend(config *Config) *PacmanBackend {
	if config == nil {
		config = DefaultConfig()
	}
	return &PacmanBackend{config: config}
}

func (b *PacmanBackend) Name() string {
	return pacman.Binary
}

func (b *PacmanBackend) Platforms() []platform.ID {
	return []platform.ID{platform.Arch}
}

func (b *PacmanBackend) Generate(items []core.Item, id platform.ID) string {
	ids, meta := b.config.meta(items, id)
	return pacman.Generate(ids, meta)
}
